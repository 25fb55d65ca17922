package logger

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/ingver/rsa/internal/pkg/config"
)

var (
	loggerInstance Logger
	loggerErr      error
	loggerOnce     sync.Once
)

// InitLogger builds the process-wide logger on the first call. Later calls
// return the first result and ignore their settings.
func InitLogger(settings *config.LoggerSettings) error {
	loggerOnce.Do(func() {
		loggerInstance, loggerErr = NewLogger(settings)
	})
	return loggerErr
}

// GetLogger returns the initialized logger instance.
func GetLogger() (Logger, error) {
	if loggerInstance == nil {
		return nil, fmt.Errorf("logger not initialized: call InitLogger first")
	}
	return loggerInstance, nil
}

// NewLogger builds a logger from settings without touching the process-wide instance.
func NewLogger(settings *config.LoggerSettings) (Logger, error) {
	if settings == nil {
		return nil, fmt.Errorf("invalid config: logger settings are nil")
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	switch settings.LogType {
	case config.LogTypeConsole:
		return NewConsoleLogger(settings.LogLevel), nil
	case config.LogTypeFile:
		return NewFileLogger(settings.LogLevel, settings.FilePath, settings.MaxSize, settings.MaxBackups, settings.MaxAge), nil
	default:
		return nil, fmt.Errorf("unsupported log type: %s", settings.LogType)
	}
}

// parseLevel has no critical level to map to, so critical logs at error.
func parseLevel(level string) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelWarning:
		return slog.LevelWarn
	case config.LogLevelError, config.LogLevelCritical:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func formatArgs(args ...interface{}) string {
	return fmt.Sprint(args...)
}
