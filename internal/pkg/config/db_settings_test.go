//go:build unit
// +build unit

package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDatabaseSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *DatabaseSettings
		expectedError bool
	}{
		{
			name: "valid postgres settings",
			settings: &DatabaseSettings{
				Type: PostgresDbType,
				DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
				Name: "rsa_keys",
			},
			expectedError: false,
		},
		{
			name: "sqlite in memory",
			settings: &DatabaseSettings{
				Type: SqliteDbType,
			},
			expectedError: false,
		},
		{
			name: "missing type",
			settings: &DatabaseSettings{
				DSN: "file:keys.db",
			},
			expectedError: true,
		},
		{
			name: "unsupported type",
			settings: &DatabaseSettings{
				Type: "mysql",
				DSN:  "user:password@tcp(localhost:3306)/dbname",
			},
			expectedError: true,
		},
		{
			name: "postgres without DSN",
			settings: &DatabaseSettings{
				Type: PostgresDbType,
				Name: "rsa_keys",
			},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()

			if tt.expectedError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
