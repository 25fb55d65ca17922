//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/ingver/rsa/internal/domain/keys"
	"github.com/ingver/rsa/internal/infrastructure/cryptography"
	"github.com/ingver/rsa/internal/infrastructure/persistence"
	"github.com/ingver/rsa/internal/pkg/config"
	"github.com/ingver/rsa/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	KeyGenerationService keys.KeyGenerationService
	KeyMetadataService   keys.KeyMetadataService
	KeyDownloadService   keys.KeyDownloadService
	TransformService     keys.TransformService

	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	settings := config.NewKeyGenSettings()
	settings.Rounds = 20
	settings.Seed = 7

	generationService, err := NewKeyGenerationService(dbContext.KeyPairRepo, settings, logger)
	require.NoError(t, err, "Failed to create key generation service")

	metadataService, err := NewKeyMetadataService(dbContext.KeyPairRepo, logger)
	require.NoError(t, err, "Failed to create key metadata service")

	downloadService, err := NewKeyDownloadService(dbContext.KeyPairRepo, logger)
	require.NoError(t, err, "Failed to create key download service")

	processor, err := cryptography.NewRSAProcessor(cryptography.NewSeededRandomSource(settings.Seed), settings, logger)
	require.NoError(t, err, "Failed to create RSA processor")

	transformService, err := NewTransformService(dbContext.KeyPairRepo, processor, logger)
	require.NoError(t, err, "Failed to create transform service")

	return &TestServices{
		KeyGenerationService: generationService,
		KeyMetadataService:   metadataService,
		KeyDownloadService:   downloadService,
		TransformService:     transformService,
		DBContext:            dbContext,
	}
}
