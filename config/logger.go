package config

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

const serviceName = "hackhub"

// NewLogger builds the process logger for env (Config.Environment). LOG_FORMAT picks "json" or
// "text"; when unset, production logs JSON and every other environment logs text. LOG_LEVEL
// accepts slog level names such as debug, warn or info+2 and falls back to info.
func NewLogger(env string) *slog.Logger {
	return newLogger(os.Stdout, env, os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
}

func newLogger(w io.Writer, env, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		if env == "production" {
			handler = slog.NewJSONHandler(w, opts)
		} else {
			handler = slog.NewTextHandler(w, opts)
		}
	}
	return slog.New(handler).With("service", serviceName, "env", env)
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return level
}
