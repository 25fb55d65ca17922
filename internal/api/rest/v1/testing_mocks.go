//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/ingver/rsa/internal/domain/cryptoalg"
	"github.com/ingver/rsa/internal/domain/keys"

	"github.com/stretchr/testify/mock"
)

// MockKeyGenerationService is a mock implementation of KeyGenerationService
type MockKeyGenerationService struct {
	mock.Mock
}

func (m *MockKeyGenerationService) Generate(ctx context.Context, keySize int) (*keys.KeyRecord, error) {
	args := m.Called(ctx, keySize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyRecord), args.Error(1)
}

func (m *MockKeyGenerationService) GenerateBatch(ctx context.Context, keySize, count int) ([]*keys.KeyRecord, error) {
	args := m.Called(ctx, keySize, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyRecord), args.Error(1)
}

// MockKeyMetadataService is a mock implementation of KeyMetadataService
type MockKeyMetadataService struct {
	mock.Mock
}

func (m *MockKeyMetadataService) List(ctx context.Context, query *keys.KeyRecordQuery) ([]*keys.KeyRecord, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*keys.KeyRecord), args.Error(1)
}

func (m *MockKeyMetadataService) GetByID(ctx context.Context, keyID string) (*keys.KeyRecord, error) {
	args := m.Called(ctx, keyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.KeyRecord), args.Error(1)
}

func (m *MockKeyMetadataService) DeleteByID(ctx context.Context, keyID string) error {
	args := m.Called(ctx, keyID)
	return args.Error(0)
}

// MockKeyDownloadService is a mock implementation of KeyDownloadService
type MockKeyDownloadService struct {
	mock.Mock
}

func (m *MockKeyDownloadService) DownloadByID(ctx context.Context, keyID string, half keys.KeyHalf) ([]byte, error) {
	args := m.Called(ctx, keyID, half)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockTransformService is a mock implementation of TransformService
type MockTransformService struct {
	mock.Mock
}

func (m *MockTransformService) Encrypt(ctx context.Context, keyID string, payload []byte, kind cryptoalg.EncodingKind) ([]byte, error) {
	args := m.Called(ctx, keyID, payload, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockTransformService) Decrypt(ctx context.Context, keyID string, payload []byte, kind cryptoalg.EncodingKind) ([]byte, error) {
	args := m.Called(ctx, keyID, payload, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}
