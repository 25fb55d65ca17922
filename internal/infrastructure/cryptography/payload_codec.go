package cryptography

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"math/big"

	"github.com/ingver/rsa/internal/domain/cryptoalg"
)

// NewPayloadCodec returns the codec for kind.
//
// Both codecs map a payload to the big-endian magnitude of its bytes, so leading zero
// bytes do not survive a round trip: 0x00 0x41 and 0x41 encode to the same integer.
// Callers that need exact lengths must pad or length-prefix the payload themselves.
func NewPayloadCodec(kind cryptoalg.EncodingKind) (cryptoalg.PayloadCodec, error) {
	switch kind {
	case cryptoalg.EncodingRaw:
		return rawCodec{}, nil
	case cryptoalg.EncodingHex:
		return hexCodec{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", cryptoalg.ErrUnsupportedEncoding, kind)
	}
}

// rawCodec reinterprets payload bytes as an integer.
type rawCodec struct{}

func (rawCodec) Kind() cryptoalg.EncodingKind {
	return cryptoalg.EncodingRaw
}

func (rawCodec) Encode(payload []byte) (*big.Int, error) {
	return new(big.Int).SetBytes(payload), nil
}

func (rawCodec) Decode(value *big.Int) ([]byte, error) {
	if value == nil || value.Sign() < 0 {
		return nil, fmt.Errorf("%w: cannot decode a negative or missing value", cryptoalg.ErrMalformedPayload)
	}
	return value.Bytes(), nil
}

// hexCodec reads and writes payloads as hex text, two digits per byte.
type hexCodec struct{}

func (hexCodec) Kind() cryptoalg.EncodingKind {
	return cryptoalg.EncodingHex
}

func (hexCodec) Encode(payload []byte) (*big.Int, error) {
	text := bytes.TrimSpace(payload)
	raw := make([]byte, hex.DecodedLen(len(text)))
	if _, err := hex.Decode(raw, text); err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoalg.ErrMalformedPayload, err)
	}
	return new(big.Int).SetBytes(raw), nil
}

func (hexCodec) Decode(value *big.Int) ([]byte, error) {
	raw, err := rawCodec{}.Decode(value)
	if err != nil {
		return nil, err
	}
	out := make([]byte, hex.EncodedLen(len(raw)))
	hex.Encode(out, raw)
	return out, nil
}
