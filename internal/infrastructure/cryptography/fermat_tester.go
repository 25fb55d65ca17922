package cryptography

import (
	"math/big"

	"github.com/ingver/rsa/internal/domain/cryptoalg"
)

// DefaultRounds is the number of Fermat trials used when none is configured.
const DefaultRounds = 100

var (
	bigOne   = big.NewInt(1)
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
)

// FermatTester implements the Fermat probable-prime test.
// Carmichael numbers and other Fermat liars can pass; primes never fail.
type FermatTester struct {
	random cryptoalg.RandomSource
}

// NewFermatTester creates a tester drawing its witnesses from random.
func NewFermatTester(random cryptoalg.RandomSource) *FermatTester {
	return &FermatTester{random: random}
}

// IsProbablyPrime runs rounds independent trials against n. Values below 3 are reported
// as not prime; rounds below 1 run a single trial.
func (t *FermatTester) IsProbablyPrime(n *big.Int, rounds int) bool {
	if n == nil || n.Cmp(bigThree) < 0 {
		return false
	}
	if rounds < 1 {
		rounds = 1
	}

	nMinusOne := new(big.Int).Sub(n, bigOne)
	nMinusTwo := new(big.Int).Sub(n, bigTwo)
	limbs := len(n.Bits())

	gcd := new(big.Int)
	residue := new(big.Int)
	for i := 0; i < rounds; i++ {
		a := t.witness(limbs, nMinusTwo)

		if gcd.GCD(nil, nil, a, n).Cmp(bigOne) != 0 {
			return false
		}
		if residue.Exp(a, nMinusOne, n).Cmp(bigOne) != 0 {
			return false
		}
	}
	return true
}

// witness returns a value in [2, n-1]: random limbs reduced modulo n-2, plus 2.
func (t *FermatTester) witness(limbs int, nMinusTwo *big.Int) *big.Int {
	words := make([]big.Word, limbs)
	for i := range words {
		words[i] = t.random.NextLimb()
	}

	a := new(big.Int).SetBits(words)
	a.Mod(a, nMinusTwo)
	return a.Add(a, bigTwo)
}
