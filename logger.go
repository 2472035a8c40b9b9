package smallvec

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with smallvec-specific context.
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
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithName adds a name field to the logger (useful to tell vectors apart).
func (l *Logger) WithName(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("vector", name),
	}
}

// LogGrow logs a capacity increase.
func (l *Logger) LogGrow(fromCap, toCap, size int, fromInline bool) {
	l.Debug("storage grown",
		"from_capacity", fromCap,
		"to_capacity", toCap,
		"size", size,
		"from_inline", fromInline,
	)
}

// LogShrink logs a migration from a heap block back to inline storage.
func (l *Logger) LogShrink(fromCap, toCap, size int) {
	l.Debug("storage shrunk to inline",
		"from_capacity", fromCap,
		"to_capacity", toCap,
		"size", size,
	)
}

// LogAllocFailure logs a rejected heap growth.
func (l *Logger) LogAllocFailure(requested, size int, err error) {
	l.Warn("heap growth failed",
		"requested_capacity", requested,
		"size", size,
		"error", err,
	)
}
