//go:build unit
// +build unit

package cryptoalg

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyPair_Halves(t *testing.T) {
	kp := &KeyPair{
		PublicExponent:  big.NewInt(DefaultPublicExponent),
		PrivateExponent: big.NewInt(531121893052905593),
		Modulus:         big.NewInt(655359999157953307),
	}

	pub := kp.PublicKey()
	priv := kp.PrivateKey()

	assert.Equal(t, 0, pub.Exponent.Cmp(kp.PublicExponent))
	assert.Equal(t, 0, priv.Exponent.Cmp(kp.PrivateExponent))
	assert.Equal(t, 0, pub.Modulus.Cmp(priv.Modulus))
	assert.Equal(t, 60, kp.BitLen())

	// halves are copies
	pub.Modulus.SetInt64(1)
	assert.Equal(t, int64(655359999157953307), kp.Modulus.Int64())
}

func TestKey_Validate(t *testing.T) {
	tests := []struct {
		name      string
		key       Key
		shouldErr bool
	}{
		{"valid", Key{Exponent: big.NewInt(3), Modulus: big.NewInt(33)}, false},
		{"zero exponent", Key{Exponent: big.NewInt(0), Modulus: big.NewInt(33)}, false},
		{"missing exponent", Key{Modulus: big.NewInt(33)}, true},
		{"missing modulus", Key{Exponent: big.NewInt(3)}, true},
		{"zero modulus", Key{Exponent: big.NewInt(3), Modulus: big.NewInt(0)}, true},
		{"negative exponent", Key{Exponent: big.NewInt(-3), Modulus: big.NewInt(33)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.key.Validate()
			if tt.shouldErr {
				require.ErrorIs(t, err, ErrMalformedKey)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestParseEncodingKind(t *testing.T) {
	kind, err := ParseEncodingKind("raw")
	require.NoError(t, err)
	assert.Equal(t, EncodingRaw, kind)

	kind, err = ParseEncodingKind("hex")
	require.NoError(t, err)
	assert.Equal(t, EncodingHex, kind)

	_, err = ParseEncodingKind("base64")
	assert.ErrorIs(t, err, ErrUnsupportedEncoding)
}

func TestMarshalUnmarshalKey(t *testing.T) {
	key := Key{Exponent: big.NewInt(65537), Modulus: big.NewInt(655359999157953307)}

	data, err := MarshalKey(key)
	require.NoError(t, err)
	assert.Equal(t, "65537\n655359999157953307\n", string(data))

	parsed, err := UnmarshalKey(data)
	require.NoError(t, err)
	assert.Equal(t, 0, parsed.Exponent.Cmp(key.Exponent))
	assert.Equal(t, 0, parsed.Modulus.Cmp(key.Modulus))
}

func TestUnmarshalKey_Malformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"single line", "65537\n"},
		{"three lines", "1\n2\n3\n"},
		{"non decimal exponent", "0x10001\n33\n"},
		{"non decimal modulus", "3\nabc\n"},
		{"zero modulus", "3\n0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalKey([]byte(tt.data))
			assert.ErrorIs(t, err, ErrMalformedKey)
		})
	}
}

func TestUnmarshalKey_ToleratesCRLF(t *testing.T) {
	parsed, err := UnmarshalKey([]byte("3\r\n33\r\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), parsed.Exponent.Int64())
	assert.Equal(t, int64(33), parsed.Modulus.Int64())
}
