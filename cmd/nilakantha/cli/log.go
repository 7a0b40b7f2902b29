package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// slogLevel maps the log-level flag value to a slog.Level.
func slogLevel(level string) (slog.Level, error) {
	normalized := strings.ToLower(strings.TrimSpace(level))

	switch normalized {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log-level %q: expected debug, info, warn, or error", level)
	}
}

// slogHandler returns a [slog.Handler] writing to w in the given format.
func slogHandler(w io.Writer, format string, level slog.Level) (slog.Handler, error) {
	normalized := strings.ToLower(strings.TrimSpace(format))

	switch normalized {
	case "json":
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}), nil
	case "logfmt":
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}), nil
	case "text":
		return tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
			NoColor:    true,
		}), nil
	case "color":
		return tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.TimeOnly,
		}), nil
	default:
		return nil, fmt.Errorf("invalid log-fmt %q: expected text, color, json or logfmt", format)
	}
}

// newLogger builds a logger from the log-fmt and log-level flag values.
func newLogger(w io.Writer, format, level string) (*slog.Logger, error) {
	lvl, err := slogLevel(level)
	if err != nil {
		return nil, err
	}
	handler, err := slogHandler(w, format, lvl)
	if err != nil {
		return nil, err
	}
	return slog.New(handler), nil
}
