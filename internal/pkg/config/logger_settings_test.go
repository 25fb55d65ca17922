//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fileLoggerSettings(path string) *LoggerSettings {
	return &LoggerSettings{
		LogLevel:   LogLevelInfo,
		LogType:    LogTypeFile,
		FilePath:   path,
		MaxSize:    DefaultLogMaxSizeMB,
		MaxBackups: DefaultLogMaxBackups,
		MaxAge:     DefaultLogMaxAgeDays,
	}
}

func TestNewLoggerSettings(t *testing.T) {
	for _, level := range []string{LogLevelDebug, LogLevelInfo, LogLevelWarning, LogLevelError, LogLevelCritical} {
		s := NewLoggerSettings(level)
		assert.Equal(t, LogTypeConsole, s.LogType)
		assert.NoError(t, s.Validate(), "level %s", level)
	}

	assert.Error(t, NewLoggerSettings("trace").Validate())
	assert.Error(t, NewLoggerSettings("").Validate())
}

func TestLoggerSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(s *LoggerSettings)
		expectedError string
	}{
		{"rotated key service log", func(s *LoggerSettings) {}, ""},
		{"critical file log", func(s *LoggerSettings) { s.LogLevel = LogLevelCritical }, ""},
		{"upper bounds", func(s *LoggerSettings) { s.MaxSize, s.MaxBackups, s.MaxAge = 100, 10, 365 }, ""},
		{"missing path", func(s *LoggerSettings) { s.FilePath = "" }, "FilePath"},
		{"unknown type", func(s *LoggerSettings) { s.LogType = "syslog" }, "LogType"},
		{"zero size", func(s *LoggerSettings) { s.MaxSize = 0 }, "max_size"},
		{"oversized", func(s *LoggerSettings) { s.MaxSize = 101 }, "max_size"},
		{"too many backups", func(s *LoggerSettings) { s.MaxBackups = 11 }, "max_backups"},
		{"zero age", func(s *LoggerSettings) { s.MaxAge = 0 }, "max_age"},
		{"console ignores rotation", func(s *LoggerSettings) { s.LogType = LogTypeConsole; s.FilePath = ""; s.MaxSize = 0 }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := fileLoggerSettings("/var/log/rsa/rsa-rest-api.log")
			tt.mutate(s)

			err := s.Validate()
			if tt.expectedError == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}
