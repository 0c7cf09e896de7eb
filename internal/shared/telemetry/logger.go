package telemetry

import (
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/MatusOllah/slogcolor"
	"github.com/fatih/color"
)

// Formats accepted by Setup.
const (
	FormatJSON = "json"
	FormatText = "text"
)

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(NewLogger(os.Stdout, FormatJSON, slog.LevelInfo))
}

// NewLogger builds a structured logger. FormatText produces colored
// human-readable output for local development; anything else emits JSON.
func NewLogger(w io.Writer, format string, level slog.Level) *slog.Logger {
	if strings.EqualFold(strings.TrimSpace(format), FormatText) {
		opts := *slogcolor.DefaultOptions
		opts.Level = level
		opts.MsgColor = color.New(color.FgMagenta)
		opts.SrcFileMode = slogcolor.Nop
		return slog.New(slogcolor.NewHandler(w, &opts))
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Setup replaces the process logger and returns it.
func Setup(format string, level slog.Level) *slog.Logger {
	logger := NewLogger(os.Stdout, format, level)
	SetLogger(logger)
	return logger
}

// SetLogger replaces the process logger. A nil logger is ignored.
func SetLogger(logger *slog.Logger) {
	if logger != nil {
		current.Store(logger)
	}
}

// Logger returns the process logger.
func Logger() *slog.Logger {
	return current.Load()
}

// Info writes an info-level log line with the given fields.
func Info(msg string, fields map[string]any) {
	Logger().Info(msg, attrs(fields)...)
}

// Warn writes a warn-level log line with the given fields.
func Warn(msg string, fields map[string]any) {
	Logger().Warn(msg, attrs(fields)...)
}

// Error writes an error-level log line with the given fields.
func Error(msg string, fields map[string]any) {
	Logger().Error(msg, attrs(fields)...)
}

// attrs flattens fields in key order so output is stable.
func attrs(fields map[string]any) []any {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]any, 0, len(keys))
	for _, k := range keys {
		out = append(out, slog.Any(k, fields[k]))
	}
	return out
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
