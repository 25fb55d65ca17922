package cryptography

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
	"math/bits"
	"math/rand"
	"time"

	"github.com/ingver/rsa/internal/domain/cryptoalg"
)

// wordBytes is the width of a big.Word in bytes.
const wordBytes = bits.UintSize / 8

// seededSource draws words from an explicitly owned math/rand generator.
type seededSource struct {
	rng *rand.Rand
}

// NewSeededRandomSource returns a deterministic RandomSource for the given seed.
// Two sources created with the same seed yield the same word sequence.
func NewSeededRandomSource(seed int64) cryptoalg.RandomSource {
	return &seededSource{rng: rand.New(rand.NewSource(seed))}
}

// NewTimeSeededRandomSource returns a RandomSource seeded from the wall clock.
func NewTimeSeededRandomSource() cryptoalg.RandomSource {
	return NewSeededRandomSource(time.Now().UnixNano())
}

func (s *seededSource) NextLimb() big.Word {
	return big.Word(s.rng.Uint64())
}

// readerSource draws words from an io.Reader such as crypto/rand.Reader.
type readerSource struct {
	r   io.Reader
	buf [8]byte
}

// NewReaderRandomSource returns a RandomSource reading from r.
// NextLimb panics if r fails, which crypto/rand.Reader does not do in practice.
func NewReaderRandomSource(r io.Reader) cryptoalg.RandomSource {
	return &readerSource{r: r}
}

func (s *readerSource) NextLimb() big.Word {
	if _, err := io.ReadFull(s.r, s.buf[:wordBytes]); err != nil {
		panic(fmt.Sprintf("random source: failed to read %d bytes: %v", wordBytes, err))
	}
	if wordBytes == 4 {
		return big.Word(binary.LittleEndian.Uint32(s.buf[:4]))
	}
	return big.Word(binary.LittleEndian.Uint64(s.buf[:8]))
}
