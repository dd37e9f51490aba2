package logger

import (
	"log/slog"
	"os"
	"strings"
)

// New returns the process-wide structured logger. JSON to stdout so log
// shippers can parse it; level comes from LOG_LEVEL (default info).
func New() *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
