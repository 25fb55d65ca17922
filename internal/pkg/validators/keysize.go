package validators

import (
	"github.com/go-playground/validator/v10"
)

// Bounds for RSA modulus sizes in bits.
const (
	MinKeySize = 6
	MaxKeySize = 16384
)

// IsValidKeySize reports whether keySize can be split evenly into two distinct primes of equal size.
func IsValidKeySize(keySize int64) bool {
	return keySize >= MinKeySize && keySize <= MaxKeySize && keySize%2 == 0
}

// KeySizeValidation validates an RSA key size field: even and within [MinKeySize, MaxKeySize].
func KeySizeValidation(fl validator.FieldLevel) bool {
	return IsValidKeySize(fl.Field().Int())
}
