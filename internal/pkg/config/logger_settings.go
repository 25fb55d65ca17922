package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Log level constants. Critical records are written at error level.
const (
	LogLevelInfo     = "info"
	LogLevelDebug    = "debug"
	LogLevelError    = "error"
	LogLevelWarning  = "warning"
	LogLevelCritical = "critical"
)

// Log type constants
const (
	LogTypeConsole = "console"
	LogTypeFile    = "file"
)

// Rotation defaults applied by InitializeRestConfig when a file logger leaves them unset.
const (
	DefaultLogMaxSizeMB  = 10
	DefaultLogMaxBackups = 3
	DefaultLogMaxAgeDays = 28
)

// Rotation bounds accepted for the file logger.
const (
	maxLogSizeMB  = 100
	maxLogBackups = 10
	maxLogAgeDays = 365
)

// LoggerSettings selects where service and CLI logs go.
// The rotation fields only apply to the file logger.
type LoggerSettings struct {
	LogLevel   string `mapstructure:"log_level" validate:"required,oneof=info debug error warning critical"`
	LogType    string `mapstructure:"log_type" validate:"required,oneof=console file"`
	FilePath   string `mapstructure:"file_path" validate:"required_if=LogType file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// NewLoggerSettings returns console settings at the given level.
func NewLoggerSettings(level string) *LoggerSettings {
	return &LoggerSettings{
		LogLevel: level,
		LogType:  LogTypeConsole,
	}
}

// Validate checks that all fields in LoggerSettings are valid
func (s *LoggerSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for LoggerSettings: %w", err)
	}

	if s.LogType != LogTypeFile {
		return nil
	}

	bounds := []struct {
		field string
		value int
		max   int
	}{
		{"max_size", s.MaxSize, maxLogSizeMB},
		{"max_backups", s.MaxBackups, maxLogBackups},
		{"max_age", s.MaxAge, maxLogAgeDays},
	}
	for _, b := range bounds {
		if b.value < 1 || b.value > b.max {
			return fmt.Errorf("file logger %s must be between 1 and %d, got %d", b.field, b.max, b.value)
		}
	}

	return nil
}
