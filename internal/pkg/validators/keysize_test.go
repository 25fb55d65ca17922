//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keySizeHolder struct {
	KeySize int `validate:"rsaKeySize"`
}

func TestKeySizeValidation(t *testing.T) {
	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("rsaKeySize", KeySizeValidation))

	tests := []struct {
		keySize int
		valid   bool
	}{
		{6, true},
		{64, true},
		{2048, true},
		{MaxKeySize, true},
		{0, false},
		{2, false},
		{4, false},
		{-64, false},
		{65, false},
		{MaxKeySize + 2, false},
	}

	for _, tt := range tests {
		err := validate.Struct(keySizeHolder{KeySize: tt.keySize})
		if tt.valid {
			assert.NoError(t, err, "key size %d", tt.keySize)
		} else {
			assert.Error(t, err, "key size %d", tt.keySize)
		}
	}
}
