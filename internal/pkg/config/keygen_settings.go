package config

import (
	"errors"
	"fmt"

	"github.com/ingver/rsa/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// Key generation defaults
const (
	DefaultKeySize             = 1024
	DefaultPrimalityRounds     = 100
	DefaultMaxIterations       = 1_000_000
	DefaultMaxDistinctAttempts = 64
)

// KeyGenSettings tunes the prime search and key derivation.
// A zero Seed seeds every random source from the clock.
type KeyGenSettings struct {
	KeySize             int   `mapstructure:"key_size" validate:"required,rsaKeySize"`
	Rounds              int   `mapstructure:"rounds" validate:"required,min=1,max=1000"`
	MaxIterations       int   `mapstructure:"max_iterations" validate:"required,min=1"`
	MaxDistinctAttempts int   `mapstructure:"max_distinct_attempts" validate:"required,min=1"`
	Seed                int64 `mapstructure:"seed"`
}

// NewKeyGenSettings returns settings populated with the defaults.
func NewKeyGenSettings() *KeyGenSettings {
	return &KeyGenSettings{
		KeySize:             DefaultKeySize,
		Rounds:              DefaultPrimalityRounds,
		MaxIterations:       DefaultMaxIterations,
		MaxDistinctAttempts: DefaultMaxDistinctAttempts,
	}
}

// Validate checks that all fields in KeyGenSettings are valid
func (s *KeyGenSettings) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("rsaKeySize", validators.KeySizeValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed for KeyGenSettings: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
