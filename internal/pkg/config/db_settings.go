package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Database type constants
const (
	PostgresDbType = "postgres"
	SqliteDbType   = "sqlite"
)

// DatabaseSettings selects and configures the key record store.
// For sqlite an empty DSN means an in-memory database; for postgres Name is created on demand.
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=postgres sqlite"`
	DSN  string `mapstructure:"dsn"`
	Name string `mapstructure:"name"`
}

// Validate checks that the database settings are complete for the selected type
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	if s.Type == PostgresDbType && s.DSN == "" {
		return fmt.Errorf("dsn is required for postgres")
	}

	return nil
}
