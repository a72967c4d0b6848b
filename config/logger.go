package config

import (
	"io"
	"log/slog"
	"os"
)

// NewLogger returns a slog.Logger configured from the environment and log level.
// Production uses JSON handler; otherwise text handler.
// LogLevel may be: debug, info, warn, error (default: info).
func NewLogger(cfg *Config) *slog.Logger {
	return newLogger(os.Stdout, cfg.Environment, cfg.LogLevel)
}

func newLogger(w io.Writer, env, levelName string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(levelName)}
	if env == "production" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	switch s {
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
