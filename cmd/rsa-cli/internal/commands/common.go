package commands

import (
	"fmt"

	"github.com/ingver/rsa/internal/pkg/config"
	"github.com/ingver/rsa/internal/pkg/logger"
)

func setupLogger() (logger.Logger, error) {
	if err := logger.InitLogger(config.NewLoggerSettings(config.LogLevelInfo)); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}
