package main

import (
	"io"
	"log/slog"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/hpn/ai-text-polisher/internal/config"
	"github.com/hpn/ai-text-polisher/internal/security"
)

// newLogger builds the process logger. The json format uses slog's JSON
// handler and text uses a colorized charm logger. Both are wrapped so keys
// and tokens never reach the output.
func newLogger(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	level := parseLevel(cfg.Level)

	var inner slog.Handler
	switch cfg.Format {
	case "json":
		inner = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	default:
		inner = charmlog.NewWithOptions(w, charmlog.Options{
			ReportTimestamp: true,
			TimeFormat:      time.TimeOnly,
			Level:           charmlog.Level(level),
			Prefix:          "polisher",
		})
	}

	return slog.New(security.NewRedactedHandler(inner))
}

// parseLevel converts a configured level name; unknown names mean info.
func parseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
