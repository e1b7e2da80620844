// Package logx provides the structured logger used across the service.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with convenience constructors and Fatal.
type Logger struct {
	*slog.Logger
}

// New creates a logger writing text records at the given level.
func New(level slog.Level, output io.Writer) *Logger {
	if output == nil {
		output = os.Stdout
	}

	handler := slog.NewTextHandler(output, &slog.HandlerOptions{Level: level})

	return &Logger{Logger: slog.New(handler)}
}

// NewDefault creates a logger with INFO level.
func NewDefault() *Logger {
	return New(slog.LevelInfo, os.Stdout)
}

// NewQuiet creates a logger with WARN level (suppresses info/debug).
func NewQuiet() *Logger {
	return New(slog.LevelWarn, os.Stdout)
}

// NewVerbose creates a logger with DEBUG level.
func NewVerbose() *Logger {
	return New(slog.LevelDebug, os.Stdout)
}

// Fatal logs at ERROR level and exits with code 1.
func (l *Logger) Fatal(msg string, args ...any) {
	l.Error(msg, args...)
	os.Exit(1)
}

// Fatalf formats and logs at ERROR level, then exits with code 1.
func (l *Logger) Fatalf(format string, args ...any) {
	l.Error(fmt.Sprintf(format, args...))
	os.Exit(1)
}
