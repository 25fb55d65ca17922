package cryptography

import (
	"fmt"
	"math/big"
	"math/bits"

	"github.com/ingver/rsa/internal/domain/cryptoalg"
)

// DefaultMaxIterations caps the number of primality tests of a single prime search.
const DefaultMaxIterations = 1_000_000

// PrimeSearchStats describes the work done by one prime search.
type PrimeSearchStats struct {
	// Candidates is the number of random candidates drawn.
	Candidates int
	// Tests is the number of primality tests run, one per visited odd number.
	Tests int
}

// PrimeGenerator searches for primes of an exact bit length: a random odd candidate with the
// top bit set, stepped by 2 until the primality tester accepts it.
type PrimeGenerator struct {
	random        cryptoalg.RandomSource
	tester        cryptoalg.PrimalityTester
	rounds        int
	maxIterations int
}

// PrimeGeneratorOption configures a PrimeGenerator.
type PrimeGeneratorOption func(*PrimeGenerator)

// WithRounds sets the number of primality test rounds per candidate.
func WithRounds(rounds int) PrimeGeneratorOption {
	return func(g *PrimeGenerator) {
		if rounds > 0 {
			g.rounds = rounds
		}
	}
}

// WithMaxIterations sets the cap on primality tests per search.
func WithMaxIterations(maxIterations int) PrimeGeneratorOption {
	return func(g *PrimeGenerator) {
		if maxIterations > 0 {
			g.maxIterations = maxIterations
		}
	}
}

// NewPrimeGenerator creates a generator that seeds candidates from random and checks them with tester.
func NewPrimeGenerator(random cryptoalg.RandomSource, tester cryptoalg.PrimalityTester, opts ...PrimeGeneratorOption) *PrimeGenerator {
	g := &PrimeGenerator{
		random:        random,
		tester:        tester,
		rounds:        DefaultRounds,
		maxIterations: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GeneratePrime returns a probable prime of exactly bitLength bits.
func (g *PrimeGenerator) GeneratePrime(bitLength int) (*big.Int, error) {
	p, _, err := g.GeneratePrimeWithStats(bitLength)
	return p, err
}

// GeneratePrimeWithStats is GeneratePrime that also reports how much searching was needed.
// It fails with ErrPrimeSearchExhausted once the configured number of tests is spent.
func (g *PrimeGenerator) GeneratePrimeWithStats(bitLength int) (*big.Int, PrimeSearchStats, error) {
	var stats PrimeSearchStats
	if bitLength < 2 {
		return nil, stats, fmt.Errorf("%w: prime size must be at least 2 bits, got %d", cryptoalg.ErrInvalidBitLength, bitLength)
	}

	candidate := g.drawCandidate(bitLength)
	stats.Candidates++

	for {
		if stats.Tests >= g.maxIterations {
			return nil, stats, fmt.Errorf("%w: no %d-bit prime after %d tests", cryptoalg.ErrPrimeSearchExhausted, bitLength, stats.Tests)
		}

		stats.Tests++
		if g.tester.IsProbablyPrime(candidate, g.rounds) {
			return candidate, stats, nil
		}

		candidate.Add(candidate, bigTwo)
		// stepping past the top of the range would change the bit length
		if candidate.BitLen() > bitLength {
			candidate = g.drawCandidate(bitLength)
			stats.Candidates++
		}
	}
}

// drawCandidate builds a random odd number of exactly bitLength bits.
// Words are least significant first, matching big.Int.SetBits.
func (g *PrimeGenerator) drawCandidate(bitLength int) *big.Int {
	count := (bitLength + bits.UintSize - 1) / bits.UintSize
	mask := ^big.Word(0) >> uint(count*bits.UintSize-bitLength)
	topBit := big.Word(1) << uint((bitLength-1)%bits.UintSize)

	words := make([]big.Word, count)
	for i := range words {
		words[i] = g.random.NextLimb()
	}

	last := count - 1
	if count == 1 {
		for words[0]&topBit == 0 || words[0]&1 == 0 {
			words[0] = g.random.NextLimb()
		}
	} else {
		for words[last]&topBit == 0 {
			words[last] = g.random.NextLimb()
		}
		for words[0]&1 == 0 {
			words[0] = g.random.NextLimb()
		}
	}
	words[last] &= mask

	return new(big.Int).SetBits(words)
}
