package config

import (
	"fmt"

	"emi-calculator/logger"
)

// Config is the main application configuration struct.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Logging LoggingConfig `mapstructure:"logging"`
	Shell   ShellConfig   `mapstructure:"shell"`
	Loan    LoanConfig    `mapstructure:"loan"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type ShellConfig struct {
	Prompt string `mapstructure:"prompt"`
}

// LoanConfig carries form values supplied up front. They stay raw text; the
// engine does the parsing.
type LoanConfig struct {
	Principal string `mapstructure:"principal"`
	Rate      string `mapstructure:"rate"`
	Tenure    string `mapstructure:"tenure"`
}

// Complete reports whether all three values were given, which selects
// one-shot mode.
func (l LoanConfig) Complete() bool {
	return l.Principal != "" && l.Rate != "" && l.Tenure != ""
}

func validateConfig(cfg *Config) error {
	if _, err := logger.ParseLevel(cfg.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	switch cfg.Logging.Format {
	case logger.FormatJSON, logger.FormatConsole:
	default:
		return fmt.Errorf("logging.format: unknown format %q", cfg.Logging.Format)
	}
	return nil
}
