package cryptography

import (
	"fmt"
	"math/big"

	"github.com/ingver/rsa/internal/domain/cryptoalg"
)

// TransformEngine computes input^exponent mod modulus with range checks on both sides.
// Encryption passes e, decryption passes d.
type TransformEngine struct {
	exp func(z, x, y, m *big.Int) *big.Int
}

// NewTransformEngine creates a TransformEngine backed by math/big.
func NewTransformEngine() *TransformEngine {
	return &TransformEngine{exp: (*big.Int).Exp}
}

// Transform rejects input outside [0, modulus) with ErrInputOutOfRange and reports a result
// outside that range as ErrFatalInvariant.
func (t *TransformEngine) Transform(input, exponent, modulus *big.Int) (*big.Int, error) {
	if modulus == nil || modulus.Sign() <= 0 {
		return nil, fmt.Errorf("%w: modulus must be positive", cryptoalg.ErrInputOutOfRange)
	}
	if exponent == nil || exponent.Sign() < 0 {
		return nil, fmt.Errorf("%w: exponent must be non-negative", cryptoalg.ErrMalformedKey)
	}
	if input == nil || input.Sign() < 0 || input.Cmp(modulus) >= 0 {
		return nil, fmt.Errorf("%w: input must be in [0, modulus) for a %d-bit modulus", cryptoalg.ErrInputOutOfRange, modulus.BitLen())
	}

	result := t.exp(new(big.Int), input, exponent, modulus)
	if result == nil || result.Sign() < 0 || result.Cmp(modulus) >= 0 {
		return nil, fmt.Errorf("%w: modular exponentiation returned a value outside [0, modulus)", cryptoalg.ErrFatalInvariant)
	}
	return result, nil
}
