package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "EMI"

// flag name -> config key
var flagKeys = map[string]string{
	"log-level":  "logging.level",
	"log-format": "logging.format",
	"prompt":     "shell.prompt",
	"principal":  "loan.principal",
	"rate":       "loan.rate",
	"tenure":     "loan.tenure",
}

// NewFlagSet declares the command-line flags understood by Load.
func NewFlagSet(name string) *pflag.FlagSet {
	flags := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flags.String("config", "", "path to a YAML config file")
	flags.String("env-file", ".env", "dotenv file loaded before reading the environment")
	flags.String("log-level", "", "debug, info, warn or error")
	flags.String("log-format", "", "json or console")
	flags.String("prompt", "", "interactive prompt")
	flags.String("principal", "", "loan amount")
	flags.String("rate", "", "interest rate, percent per annum")
	flags.String("tenure", "", "loan tenure in years")
	return flags
}

// Load resolves the configuration from, lowest precedence first: defaults,
// the YAML file, the dotenv file, EMI_* environment variables and flags.
// flags may be nil.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	applyDefaults(v)

	configFile, envFile := "", ".env"
	if flags != nil {
		configFile, _ = flags.GetString("config")
		envFile, _ = flags.GetString("env-file")
	}

	if err := loadEnvFile(envFile); err != nil {
		return nil, err
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("emi")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "emi-calculator")
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("shell.prompt", "emi> ")
	v.SetDefault("loan.principal", "")
	v.SetDefault("loan.rate", "")
	v.SetDefault("loan.tenure", "")
}

// loadEnvFile copies the dotenv file into the process environment without
// overriding variables that are already set. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}
