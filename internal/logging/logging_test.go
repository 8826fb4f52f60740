package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_FieldNames(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "rbuid", "staging", "info")

	logger.Warn("sub-score unavailable", slog.String("component", "scour"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "WARN", line["severity"])
	assert.Equal(t, "sub-score unavailable", line["message"])
	assert.Equal(t, "rbuid", line["service"])
	assert.Equal(t, "staging", line["env"])
	assert.Equal(t, "scour", line["component"])
	assert.Contains(t, line, "timestamp")
	assert.NotContains(t, line, "msg")
}

func TestNew_OmitsEmptyEnv(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "rbuid", " ", "info").Info("started")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.NotContains(t, line, "env")
}

func TestNew_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, "rbuid", "", "warn")

	logger.Info("hidden")
	assert.Zero(t, buf.Len())

	logger.Error("shown")
	assert.NotZero(t, buf.Len())
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}
