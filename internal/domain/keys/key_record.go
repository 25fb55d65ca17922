package keys

import (
	"errors"
	"fmt"
	"time"

	"github.com/ingver/rsa/internal/domain/cryptoalg"
	"github.com/ingver/rsa/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// ErrKeyNotFound is returned when no key record exists for an ID.
var ErrKeyNotFound = errors.New("key not found")

// KeyHalf selects the public (e, n) or private (d, n) half of a key pair.
type KeyHalf string

const (
	KeyHalfPublic  KeyHalf = "public"
	KeyHalfPrivate KeyHalf = "private"
)

// KeyRecord entity
type KeyRecord struct {
	ID              string             `validate:"required,uuid4"`
	KeySize         int                `validate:"required,rsaKeySize"`
	KeyPair         *cryptoalg.KeyPair `validate:"required"`
	DateTimeCreated time.Time          `validate:"required"`
}

// Key returns the requested half of the stored key pair.
func (k *KeyRecord) Key(half KeyHalf) (cryptoalg.Key, error) {
	switch half {
	case KeyHalfPublic:
		return k.KeyPair.PublicKey(), nil
	case KeyHalfPrivate:
		return k.KeyPair.PrivateKey(), nil
	default:
		return cryptoalg.Key{}, fmt.Errorf("unknown key half %q", half)
	}
}

// Validate for validating KeyRecord struct
func (k *KeyRecord) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("rsaKeySize", validators.KeySizeValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(k)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	kp := k.KeyPair
	if kp.PublicExponent == nil || kp.PrivateExponent == nil || kp.Modulus == nil {
		return fmt.Errorf("validation failed: %w: key pair is incomplete", cryptoalg.ErrMalformedKey)
	}
	if kp.Modulus.Sign() <= 0 {
		return fmt.Errorf("validation failed: %w: modulus must be positive", cryptoalg.ErrMalformedKey)
	}

	return nil
}
