//go:build unit
// +build unit

package cryptography

import (
	"fmt"
	"math/big"
)

// sequenceSource replays words in order, starting over once exhausted.
type sequenceSource struct {
	words []big.Word
	next  int
}

func (s *sequenceSource) NextLimb() big.Word {
	w := s.words[s.next%len(s.words)]
	s.next++
	return w
}

// stubTester accepts whatever accept says and counts its calls.
type stubTester struct {
	accept func(n *big.Int) bool
	calls  int
}

func (t *stubTester) IsProbablyPrime(n *big.Int, _ int) bool {
	t.calls++
	return t.accept(n)
}

// fixedPrimeGenerator hands out a fixed list of primes regardless of the requested size.
type fixedPrimeGenerator struct {
	primes []int64
	calls  int
	err    error
}

func (g *fixedPrimeGenerator) GeneratePrime(_ int) (*big.Int, error) {
	if g.err != nil {
		return nil, g.err
	}
	if len(g.primes) == 0 {
		return nil, fmt.Errorf("no primes configured")
	}
	idx := g.calls
	if idx >= len(g.primes) {
		idx = len(g.primes) - 1
	}
	g.calls++
	return big.NewInt(g.primes[idx]), nil
}

func mustBigInt(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("bad decimal literal " + s)
	}
	return n
}
