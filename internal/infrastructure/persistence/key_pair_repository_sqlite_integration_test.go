//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/ingver/rsa/internal/domain/keys"
	"github.com/ingver/rsa/internal/infrastructure/persistence/models"
	"github.com/ingver/rsa/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyPairSqliteRepository_Create(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	record := CreateTestKeyRecord(t, 60, time.Now())

	err := ctx.KeyPairRepo.Create(context.Background(), record)
	require.NoError(t, err)

	var model models.KeyPairModel
	require.NoError(t, ctx.DB.First(&model, "id = ?", record.ID).Error)
	assert.Equal(t, "655359999157953307", model.Modulus)
	assert.Equal(t, "531121893052905593", model.PrivateExponent)
}

func TestKeyPairSqliteRepository_Create_ValidationError(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	err := ctx.KeyPairRepo.Create(context.Background(), &keys.KeyRecord{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestKeyPairSqliteRepository_GetByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	record := CreateTestKeyRecord(t, 60, time.Now())
	require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), record))

	fetched, err := ctx.KeyPairRepo.GetByID(context.Background(), record.ID)
	require.NoError(t, err)

	assert.Equal(t, record.ID, fetched.ID)
	assert.Equal(t, 60, fetched.KeySize)
	assert.Equal(t, 0, record.KeyPair.Modulus.Cmp(fetched.KeyPair.Modulus))
	assert.Equal(t, 0, record.KeyPair.PrivateExponent.Cmp(fetched.KeyPair.PrivateExponent))
	assert.Equal(t, 0, record.KeyPair.PublicExponent.Cmp(fetched.KeyPair.PublicExponent))
}

func TestKeyPairSqliteRepository_GetByID_NotFound(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.KeyPairRepo.GetByID(context.Background(), "non-existent-id")
	assert.ErrorIs(t, err, keys.ErrKeyNotFound)
}

func TestKeyPairSqliteRepository_List(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	base := time.Now().Add(-time.Hour)

	require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), CreateTestKeyRecord(t, 60, base)))
	require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), CreateTestKeyRecord(t, 64, base.Add(time.Minute))))
	require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), CreateTestKeyRecord(t, 64, base.Add(2*time.Minute))))

	all, err := ctx.KeyPairRepo.List(context.Background(), nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	bySize, err := ctx.KeyPairRepo.List(context.Background(), &keys.KeyRecordQuery{KeySize: 64})
	require.NoError(t, err)
	assert.Len(t, bySize, 2)

	paged, err := ctx.KeyPairRepo.List(context.Background(), &keys.KeyRecordQuery{
		SortBy:    "date_time_created",
		SortOrder: "desc",
		Limit:     1,
		Offset:    1,
	})
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, 64, paged[0].KeySize)
	assert.WithinDuration(t, base.Add(time.Minute), paged[0].DateTimeCreated, time.Second)
}

func TestKeyPairSqliteRepository_List_InvalidQuery(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	_, err := ctx.KeyPairRepo.List(context.Background(), &keys.KeyRecordQuery{Limit: -1})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid query parameters")
}

func TestKeyPairSqliteRepository_DeleteByID(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)
	record := CreateTestKeyRecord(t, 60, time.Now())
	require.NoError(t, ctx.KeyPairRepo.Create(context.Background(), record))

	require.NoError(t, ctx.KeyPairRepo.DeleteByID(context.Background(), record.ID))

	_, err := ctx.KeyPairRepo.GetByID(context.Background(), record.ID)
	assert.ErrorIs(t, err, keys.ErrKeyNotFound)

	err = ctx.KeyPairRepo.DeleteByID(context.Background(), record.ID)
	assert.ErrorIs(t, err, keys.ErrKeyNotFound)
}
