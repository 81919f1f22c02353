package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupEnv sets environment variables for the duration of the test.
// An empty value clears the variable.
func setupEnv(t *testing.T, envVars map[string]string) {
	t.Helper()
	for name, value := range envVars {
		t.Setenv(name, value)
		if value == "" {
			require.NoError(t, os.Unsetenv(name), "Failed to unset environment variable %s", name)
		}
	}
}

// TestLoadDefaults verifies that Load falls back to default values when no
// environment variables or config file are present.
func TestLoadDefaults(t *testing.T) {
	setupEnv(t, map[string]string{
		"QUIZ_LOG_LEVEL":      "",
		"QUIZ_LOG_FORMAT":     "",
		"QUIZ_SAMPLE_ENABLED": "",
	})

	cfg, err := LoadFrom(t.TempDir())

	require.NoError(t, err, "LoadFrom() should not return an error with default values")
	require.NotNil(t, cfg, "LoadFrom() should return a non-nil config")
	assert.Equal(t, "info", cfg.Log.Level, "Default log level should be 'info'")
	assert.Equal(t, "json", cfg.Log.Format, "Default log format should be 'json'")
	assert.True(t, cfg.Sample.Enabled, "Sample question should be enabled by default")
}

// TestLoadFromEnv verifies that environment variables are read.
func TestLoadFromEnv(t *testing.T) {
	setupEnv(t, map[string]string{
		"QUIZ_LOG_LEVEL":      "debug",
		"QUIZ_LOG_FORMAT":     "text",
		"QUIZ_SAMPLE_ENABLED": "false",
	})

	cfg, err := LoadFrom(t.TempDir())

	require.NoError(t, err, "LoadFrom() should not return an error with valid environment variables")
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.Sample.Enabled)
}

// TestLoadFromFile verifies that config.yaml is read and that environment
// variables take precedence over it.
func TestLoadFromFile(t *testing.T) {
	setupEnv(t, map[string]string{
		"QUIZ_LOG_LEVEL":      "",
		"QUIZ_LOG_FORMAT":     "text",
		"QUIZ_SAMPLE_ENABLED": "",
	})

	dir := t.TempDir()
	content := "log:\n  level: warn\n  format: json\nsample:\n  enabled: false\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o600))

	cfg, err := LoadFrom(dir)

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level, "Log level should come from the config file")
	assert.Equal(t, "text", cfg.Log.Format, "Environment should override the config file")
	assert.False(t, cfg.Sample.Enabled)
}

// TestLoadValidationErrors verifies that invalid values are rejected.
func TestLoadValidationErrors(t *testing.T) {
	testCases := []struct {
		name           string
		envVars        map[string]string
		errorSubstring string
	}{
		{
			name: "Invalid log level",
			envVars: map[string]string{
				"QUIZ_LOG_LEVEL":  "verbose",
				"QUIZ_LOG_FORMAT": "json",
			},
			errorSubstring: "validation failed",
		},
		{
			name: "Invalid log format",
			envVars: map[string]string{
				"QUIZ_LOG_LEVEL":  "info",
				"QUIZ_LOG_FORMAT": "xml",
			},
			errorSubstring: "validation failed",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setupEnv(t, tc.envVars)

			cfg, err := LoadFrom(t.TempDir())

			require.Error(t, err, "LoadFrom() should return an error with invalid configuration")
			assert.Contains(t, err.Error(), tc.errorSubstring)
			assert.Nil(t, cfg, "Config should be nil when an error occurs")
		})
	}
}

// TestLoadMalformedFile verifies that a broken config file is reported.
func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("log: [unclosed"), 0o600))

	cfg, err := LoadFrom(dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
	assert.Nil(t, cfg)
}
