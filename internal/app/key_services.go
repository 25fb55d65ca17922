package app

import (
	"context"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/ingver/rsa/internal/domain/cryptoalg"
	"github.com/ingver/rsa/internal/domain/keys"
	"github.com/ingver/rsa/internal/infrastructure/cryptography"
	"github.com/ingver/rsa/internal/pkg/config"
	"github.com/ingver/rsa/internal/pkg/logger"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// MaxBatchSize caps how many key pairs a single GenerateBatch call derives.
const MaxBatchSize = 64

// keyGenerationService implements the KeyGenerationService interface
type keyGenerationService struct {
	keyRepo   keys.KeyRecordRepository
	processor cryptoalg.RSAProcessor
	settings  *config.KeyGenSettings
	logger    logger.Logger

	seedsMu sync.Mutex
	seeds   cryptoalg.RandomSource
}

// NewKeyGenerationService creates a new keyGenerationService instance.
// Single generations share one processor. Every batch worker builds its own
// processor around a source seeded from the service-owned seed stream, so
// successive batches never repeat key pairs.
func NewKeyGenerationService(keyRepo keys.KeyRecordRepository, settings *config.KeyGenSettings, logger logger.Logger) (keys.KeyGenerationService, error) {
	if settings == nil {
		settings = config.NewKeyGenSettings()
	}

	processor, err := cryptography.NewRSAProcessor(newRandomSource(settings.Seed), settings, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	return &keyGenerationService{
		keyRepo:   keyRepo,
		processor: processor,
		settings:  settings,
		logger:    logger,
		seeds:     newRandomSource(settings.Seed),
	}, nil
}

// newRandomSource seeds deterministically when seed is set and from the clock otherwise.
func newRandomSource(seed int64) cryptoalg.RandomSource {
	if seed != 0 {
		return cryptography.NewSeededRandomSource(seed)
	}
	return cryptography.NewTimeSeededRandomSource()
}

// nextSeeds draws count worker seeds from the seed stream.
func (s *keyGenerationService) nextSeeds(count int) []int64 {
	s.seedsMu.Lock()
	defer s.seedsMu.Unlock()

	seeds := make([]int64, count)
	for i := range seeds {
		seeds[i] = int64(s.seeds.NextLimb())
	}
	return seeds
}

// Generate derives one key pair and stores it.
func (s *keyGenerationService) Generate(ctx context.Context, keySize int) (*keys.KeyRecord, error) {
	keyPair, err := s.processor.GenerateKeys(keySize)
	if err != nil {
		return nil, err
	}

	record, err := s.store(ctx, keySize, keyPair)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// GenerateBatch derives count key pairs in parallel, bounded by the number of CPUs.
func (s *keyGenerationService) GenerateBatch(ctx context.Context, keySize, count int) ([]*keys.KeyRecord, error) {
	if count < 1 || count > MaxBatchSize {
		return nil, fmt.Errorf("batch size must be between 1 and %d, got %d", MaxBatchSize, count)
	}

	seeds := s.nextSeeds(count)

	keyPairs := make([]*cryptoalg.KeyPair, count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i := 0; i < count; i++ {
		i := i
		seed := seeds[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			processor, err := cryptography.NewRSAProcessor(cryptography.NewSeededRandomSource(seed), s.settings, s.logger)
			if err != nil {
				return err
			}
			keyPair, err := processor.GenerateKeys(keySize)
			if err != nil {
				return err
			}
			keyPairs[i] = keyPair
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch generation failed: %w", err)
	}

	records := make([]*keys.KeyRecord, 0, count)
	for _, keyPair := range keyPairs {
		record, err := s.store(ctx, keySize, keyPair)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	s.logger.Info(fmt.Sprintf("Generated a batch of %d key pairs", count))
	return records, nil
}

func (s *keyGenerationService) store(ctx context.Context, keySize int, keyPair *cryptoalg.KeyPair) (*keys.KeyRecord, error) {
	record := &keys.KeyRecord{
		ID:              uuid.NewString(),
		KeySize:         keySize,
		KeyPair:         keyPair,
		DateTimeCreated: time.Now().UTC(),
	}

	if err := s.keyRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to store key pair: %w", err)
	}
	return record, nil
}

// keyMetadataService implements the KeyMetadataService interface
type keyMetadataService struct {
	keyRepo keys.KeyRecordRepository
	logger  logger.Logger
}

// NewKeyMetadataService creates a new keyMetadataService instance
func NewKeyMetadataService(keyRepo keys.KeyRecordRepository, logger logger.Logger) (keys.KeyMetadataService, error) {
	return &keyMetadataService{
		keyRepo: keyRepo,
		logger:  logger,
	}, nil
}

// List retrieves all key records based on a query.
func (s *keyMetadataService) List(ctx context.Context, query *keys.KeyRecordQuery) ([]*keys.KeyRecord, error) {
	records, err := s.keyRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return records, nil
}

// GetByID retrieves a key record by its ID.
func (s *keyMetadataService) GetByID(ctx context.Context, keyID string) (*keys.KeyRecord, error) {
	record, err := s.keyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return record, nil
}

// DeleteByID deletes a key record by its ID.
func (s *keyMetadataService) DeleteByID(ctx context.Context, keyID string) error {
	if err := s.keyRepo.DeleteByID(ctx, keyID); err != nil {
		return fmt.Errorf("failed to delete key pair: %w", err)
	}
	return nil
}

// keyDownloadService implements the KeyDownloadService interface
type keyDownloadService struct {
	keyRepo keys.KeyRecordRepository
	logger  logger.Logger
}

// NewKeyDownloadService creates a new keyDownloadService instance
func NewKeyDownloadService(keyRepo keys.KeyRecordRepository, logger logger.Logger) (keys.KeyDownloadService, error) {
	return &keyDownloadService{
		keyRepo: keyRepo,
		logger:  logger,
	}, nil
}

// DownloadByID renders one half of a stored key pair as a key file.
func (s *keyDownloadService) DownloadByID(ctx context.Context, keyID string, half keys.KeyHalf) ([]byte, error) {
	record, err := s.keyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	key, err := record.Key(half)
	if err != nil {
		return nil, err
	}
	return cryptoalg.MarshalKey(key)
}

// transformService implements the TransformService interface
type transformService struct {
	keyRepo   keys.KeyRecordRepository
	processor cryptoalg.RSAProcessor
	logger    logger.Logger
}

// NewTransformService creates a new transformService instance
func NewTransformService(keyRepo keys.KeyRecordRepository, processor cryptoalg.RSAProcessor, logger logger.Logger) (keys.TransformService, error) {
	if processor == nil {
		return nil, fmt.Errorf("RSA processor cannot be nil")
	}
	return &transformService{
		keyRepo:   keyRepo,
		processor: processor,
		logger:    logger,
	}, nil
}

// Encrypt transforms payload with the public half of the stored key pair.
func (s *transformService) Encrypt(ctx context.Context, keyID string, payload []byte, kind cryptoalg.EncodingKind) ([]byte, error) {
	record, err := s.keyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return s.processor.Encrypt(payload, record.KeyPair.PublicKey(), kind)
}

// Decrypt transforms payload with the private half of the stored key pair.
func (s *transformService) Decrypt(ctx context.Context, keyID string, payload []byte, kind cryptoalg.EncodingKind) ([]byte, error) {
	record, err := s.keyRepo.GetByID(ctx, keyID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return s.processor.Decrypt(payload, record.KeyPair.PrivateKey(), kind)
}
