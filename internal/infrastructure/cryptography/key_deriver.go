package cryptography

import (
	"fmt"
	"math/big"

	"github.com/ingver/rsa/internal/domain/cryptoalg"
)

// DefaultMaxDistinctAttempts caps how often q is regenerated while it equals p.
const DefaultMaxDistinctAttempts = 64

// minKeyBitLength is the smallest modulus that splits into two distinct primes of equal size.
// 3 is the only 2-bit prime, so 4-bit moduli cannot be built.
const minKeyBitLength = 6

// KeyDeriver turns two primes of half the key length into an RSA key pair with e = 65537.
type KeyDeriver struct {
	primes              cryptoalg.PrimeGenerator
	maxDistinctAttempts int
}

// NewKeyDeriver creates a deriver drawing its primes from primes.
// A non-positive maxDistinctAttempts selects DefaultMaxDistinctAttempts.
func NewKeyDeriver(primes cryptoalg.PrimeGenerator, maxDistinctAttempts int) *KeyDeriver {
	if maxDistinctAttempts <= 0 {
		maxDistinctAttempts = DefaultMaxDistinctAttempts
	}
	return &KeyDeriver{
		primes:              primes,
		maxDistinctAttempts: maxDistinctAttempts,
	}
}

// DeriveKeys generates two distinct primes of keyBitLength/2 bits and derives the key pair from them.
func (d *KeyDeriver) DeriveKeys(keyBitLength int) (*cryptoalg.KeyPair, error) {
	if keyBitLength < minKeyBitLength || keyBitLength%2 != 0 {
		return nil, fmt.Errorf("%w: key size must be even and at least %d, got %d", cryptoalg.ErrInvalidBitLength, minKeyBitLength, keyBitLength)
	}
	half := keyBitLength / 2

	p, err := d.primes.GeneratePrime(half)
	if err != nil {
		return nil, fmt.Errorf("failed to generate p: %w", err)
	}
	q, err := d.primes.GeneratePrime(half)
	if err != nil {
		return nil, fmt.Errorf("failed to generate q: %w", err)
	}

	for attempts := 1; p.Cmp(q) == 0; attempts++ {
		if attempts >= d.maxDistinctAttempts {
			return nil, fmt.Errorf("%w: no distinct %d-bit primes after %d attempts", cryptoalg.ErrPrimeSearchExhausted, half, attempts)
		}
		q, err = d.primes.GeneratePrime(half)
		if err != nil {
			return nil, fmt.Errorf("failed to generate q: %w", err)
		}
	}

	return d.DeriveFromPrimes(p, q)
}

// DeriveFromPrimes computes n = p*q, lambda = (p-1)(q-1) and d = e^-1 mod lambda.
// It fails with ErrNoInverse when gcd(e, lambda) != 1; that case is not retried.
func (d *KeyDeriver) DeriveFromPrimes(p, q *big.Int) (*cryptoalg.KeyPair, error) {
	if p == nil || q == nil || p.Cmp(bigThree) < 0 || q.Cmp(bigThree) < 0 {
		return nil, fmt.Errorf("%w: primes must be at least 3", cryptoalg.ErrInvalidPrimes)
	}
	if p.Cmp(q) == 0 {
		return nil, fmt.Errorf("%w: p and q must be distinct", cryptoalg.ErrInvalidPrimes)
	}

	n := new(big.Int).Mul(p, q)
	lambda := new(big.Int).Mul(
		new(big.Int).Sub(p, bigOne),
		new(big.Int).Sub(q, bigOne),
	)

	e := big.NewInt(cryptoalg.DefaultPublicExponent)
	privateExponent := new(big.Int).ModInverse(e, lambda)
	if privateExponent == nil {
		return nil, fmt.Errorf("%w: gcd(%s, %s) != 1", cryptoalg.ErrNoInverse, e, lambda)
	}

	return &cryptoalg.KeyPair{
		PublicExponent:  e,
		PrivateExponent: privateExponent,
		Modulus:         n,
	}, nil
}
