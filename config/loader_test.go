package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// parseFlags disables the dotenv file unless the caller passes --env-file.
func parseFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := NewFlagSet("emi")
	require.NoError(t, flags.Parse(append([]string{"--env-file="}, args...)))
	return flags
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(parseFlags(t))

	require.NoError(t, err)
	assert.Equal(t, "emi-calculator", cfg.App.Name)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "emi> ", cfg.Shell.Prompt)
	assert.Equal(t, LoanConfig{}, cfg.Loan)
	assert.False(t, cfg.Loan.Complete())
}

func TestLoad_NilFlags(t *testing.T) {
	cfg, err := Load(nil)

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := writeFile(t, "emi.yaml", `
app:
  name: loan-desk
logging:
  level: info
  format: json
loan:
  principal: 100000
  rate: 10
  tenure: 5
`)

	cfg, err := Load(parseFlags(t, "--config", path))

	require.NoError(t, err)
	assert.Equal(t, "loan-desk", cfg.App.Name)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, LoanConfig{Principal: "100000", Rate: "10", Tenure: "5"}, cfg.Loan)
	assert.True(t, cfg.Loan.Complete())
}

func TestLoad_MissingConfigFile(t *testing.T) {
	_, err := Load(parseFlags(t, "--config", filepath.Join(t.TempDir(), "nope.yaml")))

	assert.Error(t, err)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeFile(t, "emi.yaml", `
logging:
  level: error
shell:
  prompt: "file> "
`)
	t.Setenv("EMI_LOGGING_LEVEL", "info")
	t.Setenv("EMI_SHELL_PROMPT", "env> ")

	cfg, err := Load(parseFlags(t, "--config", path, "--prompt", "flag> "))

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Logging.Level, "env overrides file")
	assert.Equal(t, "flag> ", cfg.Shell.Prompt, "flag overrides env")
}

func TestLoad_EnvFile(t *testing.T) {
	envFile := writeFile(t, "test.env", "EMI_LOAN_PRINCIPAL=250000\nEMI_LOAN_RATE=7.25\n")
	t.Cleanup(func() {
		os.Unsetenv("EMI_LOAN_PRINCIPAL")
		os.Unsetenv("EMI_LOAN_RATE")
	})

	cfg, err := Load(parseFlags(t, "--env-file", envFile, "--tenure", "15"))

	require.NoError(t, err)
	assert.Equal(t, LoanConfig{Principal: "250000", Rate: "7.25", Tenure: "15"}, cfg.Loan)
}

func TestLoad_MissingEnvFileIsIgnored(t *testing.T) {
	_, err := Load(parseFlags(t, "--env-file", filepath.Join(t.TempDir(), "absent.env")))

	assert.NoError(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown level", []string{"--log-level", "loud"}},
		{"unknown format", []string{"--log-format", "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(parseFlags(t, tt.args...))
			assert.Error(t, err)
		})
	}
}
