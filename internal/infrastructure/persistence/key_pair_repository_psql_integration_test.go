//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/ingver/rsa/internal/domain/keys"
	"github.com/ingver/rsa/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyPairPostgresRepository_CreateAndGet(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)
	record := CreateTestKeyRecord(t, 60, time.Now())

	require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), record))

	fetched, err := ctx.KeyPairRepo.GetByID(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.KeyPair.Modulus.String(), fetched.KeyPair.Modulus.String())
}

func TestKeyPairPostgresRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)
	record := CreateTestKeyRecord(t, 60, time.Now())

	require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), record))
	require.NoError(t, ctx.KeyPairRepo.DeleteByID(context.Background(), record.ID))

	_, err := ctx.KeyPairRepo.GetByID(context.Background(), record.ID)
	assert.ErrorIs(t, err, keys.ErrKeyNotFound)
}
