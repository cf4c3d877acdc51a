package dynvec

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with dynvec-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogRealloc logs a buffer reallocation.
func (l *Logger) LogRealloc(op string, fromCap, toCap int, err error) {
	if err != nil {
		l.Warn("reallocation refused",
			"op", op,
			"from", fromCap,
			"to", toCap,
			"bytes", formatBytes(toCap),
			"error", err,
		)
		return
	}
	l.Debug("reallocation completed",
		"op", op,
		"from", fromCap,
		"to", toCap,
		"bytes", formatBytes(toCap),
	)
}

// LogRelease logs a buffer release.
func (l *Logger) LogRelease(capacity int) {
	l.Debug("buffer released",
		"capacity", capacity,
		"bytes", formatBytes(capacity),
	)
}
