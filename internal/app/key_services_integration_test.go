//go:build integration
// +build integration

package app

import (
	"context"
	"strings"
	"testing"

	"github.com/ingver/rsa/internal/domain/cryptoalg"
	"github.com/ingver/rsa/internal/domain/keys"
	"github.com/ingver/rsa/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyGenerationService_Generate(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	record, err := services.KeyGenerationService.Generate(ctx, 64)
	require.NoError(t, err)

	assert.Equal(t, 64, record.KeySize)
	assert.Equal(t, int64(cryptoalg.DefaultPublicExponent), record.KeyPair.PublicExponent.Int64())

	stored, err := services.KeyMetadataService.GetByID(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, record.KeyPair.Modulus.Cmp(stored.KeyPair.Modulus))
}

func TestKeyGenerationService_Generate_InvalidKeySize(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.KeyGenerationService.Generate(context.Background(), 63)
	assert.ErrorIs(t, err, cryptoalg.ErrInvalidBitLength)
}

func TestKeyGenerationService_GenerateBatch(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	records, err := services.KeyGenerationService.GenerateBatch(ctx, 64, 5)
	require.NoError(t, err)
	require.Len(t, records, 5)

	moduli := make(map[string]struct{})
	for _, record := range records {
		moduli[record.KeyPair.Modulus.String()] = struct{}{}
	}
	assert.Len(t, moduli, 5, "every worker draws from its own random source")

	listed, err := services.KeyMetadataService.List(ctx, keys.NewKeyRecordQuery())
	require.NoError(t, err)
	assert.Len(t, listed, 5)
}

func TestKeyGenerationService_GenerateBatch_SuccessiveBatchesDiffer(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	first, err := services.KeyGenerationService.GenerateBatch(ctx, 64, 2)
	require.NoError(t, err)
	second, err := services.KeyGenerationService.GenerateBatch(ctx, 64, 2)
	require.NoError(t, err)

	single, err := services.KeyGenerationService.Generate(ctx, 64)
	require.NoError(t, err)

	moduli := make(map[string]struct{})
	for _, record := range append(append(first, second...), single) {
		moduli[record.KeyPair.Modulus.String()] = struct{}{}
	}
	assert.Len(t, moduli, 5)
}

func TestKeyGenerationService_GenerateBatch_InvalidCount(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)

	_, err := services.KeyGenerationService.GenerateBatch(context.Background(), 64, 0)
	assert.Error(t, err)

	_, err = services.KeyGenerationService.GenerateBatch(context.Background(), 64, MaxBatchSize+1)
	assert.Error(t, err)
}

func TestKeyMetadataService_DeleteByID(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	record, err := services.KeyGenerationService.Generate(ctx, 32)
	require.NoError(t, err)

	require.NoError(t, services.KeyMetadataService.DeleteByID(ctx, record.ID))

	_, err = services.KeyMetadataService.GetByID(ctx, record.ID)
	assert.ErrorIs(t, err, keys.ErrKeyNotFound)
}

func TestKeyDownloadService_DownloadByID(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	record, err := services.KeyGenerationService.Generate(ctx, 64)
	require.NoError(t, err)

	public, err := services.KeyDownloadService.DownloadByID(ctx, record.ID, keys.KeyHalfPublic)
	require.NoError(t, err)
	assert.Equal(t, "65537\n"+record.KeyPair.Modulus.String()+"\n", string(public))

	private, err := services.KeyDownloadService.DownloadByID(ctx, record.ID, keys.KeyHalfPrivate)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(private), record.KeyPair.PrivateExponent.String()+"\n"))

	_, err = services.KeyDownloadService.DownloadByID(ctx, "missing", keys.KeyHalfPublic)
	assert.ErrorIs(t, err, keys.ErrKeyNotFound)
}

func TestTransformService_RoundTrip(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	record, err := services.KeyGenerationService.Generate(ctx, 64)
	require.NoError(t, err)

	ciphertext, err := services.TransformService.Encrypt(ctx, record.ID, []byte("AB"), cryptoalg.EncodingRaw)
	require.NoError(t, err)

	plaintext, err := services.TransformService.Decrypt(ctx, record.ID, ciphertext, cryptoalg.EncodingRaw)
	require.NoError(t, err)
	assert.Equal(t, []byte("AB"), plaintext)

	_, err = services.TransformService.Encrypt(ctx, record.ID, []byte("a payload far longer than the modulus"), cryptoalg.EncodingRaw)
	assert.ErrorIs(t, err, cryptoalg.ErrInputOutOfRange)

	_, err = services.TransformService.Encrypt(ctx, "missing", []byte("AB"), cryptoalg.EncodingRaw)
	assert.ErrorIs(t, err, keys.ErrKeyNotFound)
}
