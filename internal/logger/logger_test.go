package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aep-proxy/internal/config"
)

func TestSetup_JSON(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	var buf bytes.Buffer
	require.NoError(t, Setup(config.LogConfig{Level: "debug", Format: "json"}, &buf))

	slog.Debug("hello", "key", "value")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "value", line["key"])
}

func TestSetup_LevelFilters(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	var buf bytes.Buffer
	require.NoError(t, Setup(config.LogConfig{Level: "warn", Format: "text"}, &buf))

	slog.Info("dropped")
	assert.Empty(t, buf.String())

	slog.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestSetup_Invalid(t *testing.T) {
	assert.Error(t, Setup(config.LogConfig{Level: "loud", Format: "json"}, &bytes.Buffer{}))
	assert.Error(t, Setup(config.LogConfig{Level: "info", Format: "xml"}, &bytes.Buffer{}))
}
