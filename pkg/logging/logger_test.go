package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNew_JSONOnNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "debug", Format: "auto", Output: &buf})

	logger.Debug("animation started", "component", "progressbar")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "animation started", record["msg"])
	assert.Equal(t, "progressbar", record["component"])
}

func TestNew_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "warn", Format: "text", Output: &buf})

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestPrettyHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewPrettyHandler(&buf, slog.LevelInfo)).
		With("theme", "dark").
		WithGroup("tick")

	logger.Info("reloaded", "count", 3)
	logger.Debug("dropped")

	out := buf.String()
	assert.Equal(t, 1, strings.Count(out, "\n"))
	assert.Contains(t, out, "reloaded")
	assert.Contains(t, out, "theme")
	assert.Contains(t, out, "tick.count")
}

func TestDefault(t *testing.T) {
	t.Cleanup(func() { SetDefault(nil) })

	var buf bytes.Buffer
	SetDefault(New(Config{Format: "text", Output: &buf}))
	Default().Info("hello")
	assert.Contains(t, buf.String(), "hello")

	SetDefault(nil)
	assert.NotNil(t, Default())
}
