package cryptoalg

import "errors"

var (
	// ErrInvalidBitLength is returned for a non-positive, too small or odd key length.
	ErrInvalidBitLength = errors.New("invalid bit length")

	// ErrInvalidPrimes is returned when two primes cannot form a modulus (equal, or below 3).
	ErrInvalidPrimes = errors.New("invalid primes")

	// ErrNoInverse is returned when the public exponent is not invertible modulo lambda.
	ErrNoInverse = errors.New("public exponent has no inverse modulo lambda")

	// ErrInputOutOfRange is returned when a payload integer is not in [0, modulus).
	ErrInputOutOfRange = errors.New("input out of range for modulus")

	// ErrFatalInvariant signals a postcondition violation in the arithmetic backend.
	// It must never be retried.
	ErrFatalInvariant = errors.New("fatal invariant violation")

	// ErrPrimeSearchExhausted is returned when the prime search exceeds its iteration cap.
	ErrPrimeSearchExhausted = errors.New("prime search exhausted")

	// ErrUnsupportedEncoding is returned for an unknown EncodingKind.
	ErrUnsupportedEncoding = errors.New("unsupported encoding")

	// ErrMalformedPayload is returned when a payload cannot be decoded under its encoding.
	ErrMalformedPayload = errors.New("malformed payload")

	// ErrMalformedKey is returned when a key file does not hold two decimal lines.
	ErrMalformedKey = errors.New("malformed key")
)
