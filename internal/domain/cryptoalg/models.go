package cryptoalg

import (
	"fmt"
	"math/big"
)

// DefaultPublicExponent is the fixed public exponent e.
const DefaultPublicExponent = 65537

// Key is one half of a key pair: an exponent together with the modulus.
type Key struct {
	Exponent *big.Int
	Modulus  *big.Int
}

// Validate checks that both numbers are present and the modulus is positive.
func (k Key) Validate() error {
	if k.Exponent == nil || k.Modulus == nil {
		return fmt.Errorf("%w: exponent and modulus are required", ErrMalformedKey)
	}
	if k.Exponent.Sign() < 0 || k.Modulus.Sign() <= 0 {
		return fmt.Errorf("%w: exponent must be non-negative and modulus positive", ErrMalformedKey)
	}
	return nil
}

// KeyPair holds the public exponent e, the private exponent d and the modulus n.
// It is immutable once derived.
type KeyPair struct {
	PublicExponent  *big.Int
	PrivateExponent *big.Int
	Modulus         *big.Int
}

// PublicKey returns the (e, n) half.
func (kp *KeyPair) PublicKey() Key {
	return Key{Exponent: new(big.Int).Set(kp.PublicExponent), Modulus: new(big.Int).Set(kp.Modulus)}
}

// PrivateKey returns the (d, n) half.
func (kp *KeyPair) PrivateKey() Key {
	return Key{Exponent: new(big.Int).Set(kp.PrivateExponent), Modulus: new(big.Int).Set(kp.Modulus)}
}

// BitLen returns the bit length of the modulus.
func (kp *KeyPair) BitLen() int {
	return kp.Modulus.BitLen()
}

// EncodingKind selects how a payload is mapped to and from an integer.
type EncodingKind string

const (
	// EncodingRaw interprets the payload bytes as a big-endian magnitude.
	EncodingRaw EncodingKind = "raw"
	// EncodingHex reads and writes the payload as hex-ASCII text, two digits per byte.
	EncodingHex EncodingKind = "hex"
)

// ParseEncodingKind maps a user supplied name to an EncodingKind.
func ParseEncodingKind(s string) (EncodingKind, error) {
	switch EncodingKind(s) {
	case EncodingRaw, EncodingHex:
		return EncodingKind(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedEncoding, s)
	}
}
