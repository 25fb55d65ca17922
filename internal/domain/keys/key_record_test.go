//go:build unit
// +build unit

package keys

import (
	"math/big"
	"testing"
	"time"

	"github.com/ingver/rsa/internal/domain/cryptoalg"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRecord() *KeyRecord {
	return &KeyRecord{
		ID:      uuid.NewString(),
		KeySize: 60,
		KeyPair: &cryptoalg.KeyPair{
			PublicExponent:  big.NewInt(cryptoalg.DefaultPublicExponent),
			PrivateExponent: big.NewInt(531121893052905593),
			Modulus:         big.NewInt(655359999157953307),
		},
		DateTimeCreated: time.Now(),
	}
}

func TestKeyRecordValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *KeyRecord)
		wantErr bool
	}{
		{"valid", func(_ *KeyRecord) {}, false},
		{"missing id", func(r *KeyRecord) { r.ID = "" }, true},
		{"id not a uuid", func(r *KeyRecord) { r.ID = "key-1" }, true},
		{"odd key size", func(r *KeyRecord) { r.KeySize = 61 }, true},
		{"key size too small", func(r *KeyRecord) { r.KeySize = 2 }, true},
		{"missing key pair", func(r *KeyRecord) { r.KeyPair = nil }, true},
		{"missing modulus", func(r *KeyRecord) { r.KeyPair.Modulus = nil }, true},
		{"zero modulus", func(r *KeyRecord) { r.KeyPair.Modulus = big.NewInt(0) }, true},
		{"missing creation time", func(r *KeyRecord) { r.DateTimeCreated = time.Time{} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record := validRecord()
			tt.mutate(record)

			err := record.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestKeyRecord_Key(t *testing.T) {
	record := validRecord()

	public, err := record.Key(KeyHalfPublic)
	require.NoError(t, err)
	assert.Equal(t, int64(cryptoalg.DefaultPublicExponent), public.Exponent.Int64())
	assert.Equal(t, 0, public.Modulus.Cmp(record.KeyPair.Modulus))

	private, err := record.Key(KeyHalfPrivate)
	require.NoError(t, err)
	assert.Equal(t, 0, private.Exponent.Cmp(record.KeyPair.PrivateExponent))

	_, err = record.Key(KeyHalf("both"))
	assert.Error(t, err)
}

func TestKeyRecordQueryValidation(t *testing.T) {
	tests := []struct {
		name    string
		query   KeyRecordQuery
		wantErr bool
	}{
		{"empty", KeyRecordQuery{}, false},
		{"paged and sorted", KeyRecordQuery{Limit: 10, Offset: 5, SortBy: "date_time_created", SortOrder: "desc"}, false},
		{"negative limit", KeyRecordQuery{Limit: -1}, true},
		{"negative offset", KeyRecordQuery{Offset: -1}, true},
		{"unknown sort column", KeyRecordQuery{SortBy: "modulus; DROP TABLE"}, true},
		{"unknown sort order", KeyRecordQuery{SortOrder: "up"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
