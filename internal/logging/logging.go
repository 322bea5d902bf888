package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Logger is the shared structured logger.
var Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Init строит общий логгер. Уровень берётся из level, а если он пуст — из LOG_LEVEL.
func Init(w io.Writer, level string) *slog.Logger {
	if strings.TrimSpace(level) == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(level),
		AddSource: true,
	}
	Logger = slog.New(slog.NewTextHandler(w, opts))
	slog.SetDefault(Logger)
	return Logger
}

// ParseLevel: debug|info|warn|error, всё прочее — info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
