//go:build integration
// +build integration

package persistence

import (
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/ingver/rsa/internal/domain/cryptoalg"
	"github.com/ingver/rsa/internal/domain/keys"
	"github.com/ingver/rsa/internal/pkg/config"
	"github.com/ingver/rsa/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB          *gorm.DB
	KeyPairRepo keys.KeyRecordRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	repo, err := NewGormKeyPairRepository(db, testutil.SetupTestLogger(t))
	require.NoError(t, err, "Failed to create key pair repository")

	return &TestContext{
		DB:          db,
		KeyPairRepo: repo,
	}
}

// CreateTestKeyRecord creates a key record around a fixed 60-bit key pair
func CreateTestKeyRecord(t *testing.T, keySize int, created time.Time) *keys.KeyRecord {
	t.Helper()

	return &keys.KeyRecord{
		ID:      uuid.NewString(),
		KeySize: keySize,
		KeyPair: &cryptoalg.KeyPair{
			PublicExponent:  big.NewInt(cryptoalg.DefaultPublicExponent),
			PrivateExponent: big.NewInt(531121893052905593),
			Modulus:         big.NewInt(655359999157953307),
		},
		DateTimeCreated: created,
	}
}
