package logger

import (
	"io"
	"log/slog"
	"os"
)

// ConsoleLogger is an implementation of Logger that logs text lines to a terminal stream.
type ConsoleLogger struct {
	logger *slog.Logger
}

// NewConsoleLogger creates a new console logger writing to stderr with the specified log level.
// Stdout is left to the command output.
func NewConsoleLogger(level string) Logger {
	return NewConsoleLoggerWithWriter(level, os.Stderr)
}

// NewConsoleLoggerWithWriter creates a console logger writing to w.
func NewConsoleLoggerWithWriter(level string, w io.Writer) Logger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(level),
	}
	handler := slog.NewTextHandler(w, opts)

	return &ConsoleLogger{logger: slog.New(handler)}
}

// Debug logs a debug message.
func (l *ConsoleLogger) Debug(args ...interface{}) {
	l.logger.Debug(formatArgs(args...))
}

// Info logs an informational message.
func (l *ConsoleLogger) Info(args ...interface{}) {
	l.logger.Info(formatArgs(args...))
}

// Warn logs a warning message.
func (l *ConsoleLogger) Warn(args ...interface{}) {
	l.logger.Warn(formatArgs(args...))
}

// Error logs an error message.
func (l *ConsoleLogger) Error(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
}

// Fatal logs a fatal message and exits.
func (l *ConsoleLogger) Fatal(args ...interface{}) {
	l.logger.Error(formatArgs(args...))
	os.Exit(1)
}

// Panic logs a panic message and panics.
func (l *ConsoleLogger) Panic(args ...interface{}) {
	msg := formatArgs(args...)
	l.logger.Error(msg)
	panic(msg)
}
