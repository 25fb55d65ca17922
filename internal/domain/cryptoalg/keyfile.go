package cryptoalg

import (
	"bytes"
	"fmt"
	"math/big"
	"strings"
)

// MarshalKey renders a key half in the key file layout: the decimal exponent on the
// first line and the decimal modulus on the second.
func MarshalKey(k Key) ([]byte, error) {
	if err := k.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(k.Exponent.String())
	buf.WriteByte('\n')
	buf.WriteString(k.Modulus.String())
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// UnmarshalKey parses the key file layout written by MarshalKey.
func UnmarshalKey(data []byte) (Key, error) {
	lines := strings.Fields(string(data))
	if len(lines) != 2 {
		return Key{}, fmt.Errorf("%w: expected 2 lines, got %d", ErrMalformedKey, len(lines))
	}

	exponent, ok := new(big.Int).SetString(lines[0], 10)
	if !ok {
		return Key{}, fmt.Errorf("%w: exponent %q is not a decimal number", ErrMalformedKey, lines[0])
	}
	modulus, ok := new(big.Int).SetString(lines[1], 10)
	if !ok {
		return Key{}, fmt.Errorf("%w: modulus %q is not a decimal number", ErrMalformedKey, lines[1])
	}

	k := Key{Exponent: exponent, Modulus: modulus}
	if err := k.Validate(); err != nil {
		return Key{}, err
	}
	return k, nil
}
