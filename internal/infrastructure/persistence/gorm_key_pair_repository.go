package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/ingver/rsa/internal/domain/keys"
	"github.com/ingver/rsa/internal/infrastructure/persistence/models"
	"github.com/ingver/rsa/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormKeyPairRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormKeyPairRepository creates a new GORM-based KeyRecordRepository implementation
func NewGormKeyPairRepository(db *gorm.DB, logger logger.Logger) (keys.KeyRecordRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection cannot be nil")
	}
	return &gormKeyPairRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormKeyPairRepository) Create(ctx context.Context, record *keys.KeyRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.KeyPairModel{}
	model.FromDomain(record)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create key pair: %w", err)
	}

	r.logger.Info("Created key pair with id ", record.ID)
	return nil
}

func (r *gormKeyPairRepository) List(ctx context.Context, query *keys.KeyRecordQuery) ([]*keys.KeyRecord, error) {
	if query == nil {
		query = keys.NewKeyRecordQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.KeyPairModel
	dbQuery := r.db.WithContext(ctx).Model(&models.KeyPairModel{})

	if query.KeySize > 0 {
		dbQuery = dbQuery.Where("key_size = ?", query.KeySize)
	}
	if !query.DateTimeCreated.IsZero() {
		dbQuery = dbQuery.Where("date_time_created >= ?", query.DateTimeCreated)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch key pairs: %w", err)
	}

	records := make([]*keys.KeyRecord, 0, len(modelList))
	for _, model := range modelList {
		record, err := model.ToDomain()
		if err != nil {
			return nil, fmt.Errorf("failed to decode key pair %s: %w", model.ID, err)
		}
		records = append(records, record)
	}

	return records, nil
}

func (r *gormKeyPairRepository) GetByID(ctx context.Context, keyID string) (*keys.KeyRecord, error) {
	var model models.KeyPairModel
	if err := r.db.WithContext(ctx).Where("id = ?", keyID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("key pair with ID %s: %w", keyID, keys.ErrKeyNotFound)
		}
		return nil, fmt.Errorf("failed to fetch key pair: %w", err)
	}

	record, err := model.ToDomain()
	if err != nil {
		return nil, fmt.Errorf("failed to decode key pair %s: %w", keyID, err)
	}
	return record, nil
}

func (r *gormKeyPairRepository) DeleteByID(ctx context.Context, keyID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", keyID).Delete(&models.KeyPairModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete key pair: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("key pair with ID %s: %w", keyID, keys.ErrKeyNotFound)
	}

	r.logger.Info("Deleted key pair with id ", keyID)
	return nil
}
