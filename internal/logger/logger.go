// internal/logger/logger.go
package logger

import (
	"io"
	"log/slog"
	"strings"
)

// New создает текстовый логгер с file:line и делает его логгером по умолчанию.
func New(w io.Writer, level string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     ParseLevel(level),
		AddSource: true,
	}
	l := slog.New(slog.NewTextHandler(w, opts))
	slog.SetDefault(l)
	return l
}

// ParseLevel понимает debug|info|warn|error, все остальное считается info.
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
