package models

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ingver/rsa/internal/domain/cryptoalg"
	"github.com/ingver/rsa/internal/domain/keys"
)

// KeyPairModel is the GORM database model for RSA key pairs (infrastructure concern).
// Big integers are stored as decimal text so both SQLite and PostgreSQL hold them losslessly.
type KeyPairModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	KeySize         int       `gorm:"not null;index"`
	PublicExponent  string    `gorm:"not null;type:text"`
	PrivateExponent string    `gorm:"not null;type:text"`
	Modulus         string    `gorm:"not null;type:text"`
	DateTimeCreated time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (KeyPairModel) TableName() string {
	return "rsa_key_pairs"
}

// ToDomain converts GORM model to domain entity
func (m *KeyPairModel) ToDomain() (*keys.KeyRecord, error) {
	e, err := parseDecimal("public exponent", m.PublicExponent)
	if err != nil {
		return nil, err
	}
	d, err := parseDecimal("private exponent", m.PrivateExponent)
	if err != nil {
		return nil, err
	}
	n, err := parseDecimal("modulus", m.Modulus)
	if err != nil {
		return nil, err
	}

	return &keys.KeyRecord{
		ID:      m.ID,
		KeySize: m.KeySize,
		KeyPair: &cryptoalg.KeyPair{
			PublicExponent:  e,
			PrivateExponent: d,
			Modulus:         n,
		},
		DateTimeCreated: m.DateTimeCreated,
	}, nil
}

// FromDomain converts domain entity to GORM model
func (m *KeyPairModel) FromDomain(r *keys.KeyRecord) {
	m.ID = r.ID
	m.KeySize = r.KeySize
	m.PublicExponent = r.KeyPair.PublicExponent.String()
	m.PrivateExponent = r.KeyPair.PrivateExponent.String()
	m.Modulus = r.KeyPair.Modulus.String()
	m.DateTimeCreated = r.DateTimeCreated
}

func parseDecimal(field, value string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, fmt.Errorf("%w: stored %s %q is not a decimal number", cryptoalg.ErrMalformedKey, field, value)
	}
	return n, nil
}
