package telemetry

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/MatusOllah/slogcolor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfoWritesJSONFields(t *testing.T) {
	var buf bytes.Buffer
	prev := Logger()
	SetLogger(NewLogger(&buf, FormatJSON, slog.LevelInfo))
	t.Cleanup(func() { SetLogger(prev) })

	Info("session.created", map[string]any{"step": 0, "session": "abc"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "session.created", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "abc", entry["session"])
	assert.EqualValues(t, 0, entry["step"])
}

func TestLevelFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, FormatJSON, slog.LevelWarn)
	logger.Info("ignored")
	assert.Zero(t, buf.Len())
	logger.Warn("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestTextFormatIsNotJSON(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, "TEXT", slog.LevelInfo).Info("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestTextLoggersKeepTheirOwnLevel(t *testing.T) {
	defaultLevel := slogcolor.DefaultOptions.Level
	defaultColor := slogcolor.DefaultOptions.MsgColor

	var quiet, verbose bytes.Buffer
	errorsOnly := NewLogger(&quiet, FormatText, slog.LevelError)
	NewLogger(&verbose, FormatText, slog.LevelDebug).Debug("verbose")

	errorsOnly.Info("dropped")
	assert.Zero(t, quiet.Len())
	assert.Contains(t, verbose.String(), "verbose")
	assert.Equal(t, defaultLevel, slogcolor.DefaultOptions.Level)
	assert.Equal(t, defaultColor, slogcolor.DefaultOptions.MsgColor)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, ParseLevel(" WARNING "))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("nonsense"))
}
