package keys

import (
	"context"

	"github.com/ingver/rsa/internal/domain/cryptoalg"
)

// KeyGenerationService defines methods for generating and storing RSA key pairs.
type KeyGenerationService interface {
	// Generate derives a single key pair of keySize bits and persists it.
	// It returns the stored KeyRecord and any error encountered during generation.
	Generate(ctx context.Context, keySize int) (*KeyRecord, error)

	// GenerateBatch derives count key pairs concurrently and persists them.
	// Either all records are returned or the first error encountered.
	GenerateBatch(ctx context.Context, keySize, count int) ([]*KeyRecord, error)
}

// KeyMetadataService defines methods for listing, fetching and deleting stored key pairs.
type KeyMetadataService interface {
	// List retrieves stored key records considering a query filter when set.
	List(ctx context.Context, query *KeyRecordQuery) ([]*KeyRecord, error)

	// GetByID retrieves a key record by its unique ID.
	GetByID(ctx context.Context, keyID string) (*KeyRecord, error)

	// DeleteByID deletes a key record by ID.
	DeleteByID(ctx context.Context, keyID string) error
}

// KeyDownloadService defines methods for exporting one half of a stored key pair.
type KeyDownloadService interface {
	// DownloadByID returns the requested half in the two-line key file format.
	DownloadByID(ctx context.Context, keyID string, half KeyHalf) ([]byte, error)
}

// TransformService defines methods for encrypting and decrypting payloads with a stored key pair.
type TransformService interface {
	Encrypt(ctx context.Context, keyID string, payload []byte, kind cryptoalg.EncodingKind) ([]byte, error)
	Decrypt(ctx context.Context, keyID string, payload []byte, kind cryptoalg.EncodingKind) ([]byte, error)
}

// KeyRecordRepository defines the interface for KeyRecord-related operations
type KeyRecordRepository interface {
	Create(ctx context.Context, record *KeyRecord) error
	List(ctx context.Context, query *KeyRecordQuery) ([]*KeyRecord, error)
	GetByID(ctx context.Context, keyID string) (*KeyRecord, error)
	DeleteByID(ctx context.Context, keyID string) error
}
