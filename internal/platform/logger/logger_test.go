// Package logger_test contains tests for the logger package
package logger_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/scry-quiz/internal/config"
	"github.com/phrazzld/scry-quiz/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreDefault puts back the default slog logger after a test that calls Setup.
func restoreDefault(t *testing.T) {
	t.Helper()
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
}

func TestSetupJSON(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	l, err := logger.SetupWithWriter(config.LogConfig{Level: "info", Format: "json"}, &buf)
	require.NoError(t, err)
	require.NotNil(t, l)

	l.Debug("hidden")
	l.Info("visible", "weight", 5)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1, "debug records should be filtered at info level")

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "visible", entry["msg"])
	assert.EqualValues(t, 5, entry["weight"])
}

func TestSetupSetsDefault(t *testing.T) {
	restoreDefault(t)
	var buf bytes.Buffer

	l, err := logger.SetupWithWriter(config.LogConfig{Level: "DEBUG", Format: "text"}, &buf)
	require.NoError(t, err)
	assert.Same(t, l, slog.Default())

	slog.Debug("through default", "topic", "Geography")
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "topic=Geography")
}

func TestSetupRejectsUnknownValues(t *testing.T) {
	restoreDefault(t)

	_, err := logger.SetupWithWriter(config.LogConfig{Level: "verbose", Format: "json"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown log level")

	_, err = logger.SetupWithWriter(config.LogConfig{Level: "info", Format: "xml"}, &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown log format")
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"Info":  slog.LevelInfo,
		"WARN":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for name, want := range tests {
		got, err := logger.ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := logger.ParseLevel("fatal")
	assert.Error(t, err)
}
