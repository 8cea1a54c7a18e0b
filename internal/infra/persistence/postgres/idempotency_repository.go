package postgres

import (
	"context"

	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"
	"canteen/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// idempotencyRepository implements the repository.IdempotencyRepository interface.
type idempotencyRepository struct {
	db *gorm.DB
}

// NewIdempotencyRepository is the constructor for idempotencyRepository.
func NewIdempotencyRepository(db *gorm.DB) repository.IdempotencyRepository {
	return &idempotencyRepository{
		db: db,
	}
}

// FindByKey retrieves the record stored under a key.
func (repo *idempotencyRepository) FindByKey(ctx context.Context, key string) (*entity.IdempotencyRecord, error) {
	var recM model.IdempotencyKeyModel

	if err := repo.db.WithContext(ctx).
		Where("key = ?", key).
		First(&recM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrIdempotencyKeyNotFound
		}

		return nil, errors.Wrap(err, "failed to find idempotency record")
	}

	return toIdempotencyDomain(&recM), nil
}

// Create persists a new idempotency record.
func (repo *idempotencyRepository) Create(ctx context.Context, rec *entity.IdempotencyRecord) error {
	recM := fromIdempotencyDomain(rec)

	if err := repo.db.WithContext(ctx).Create(recM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateIdempotencyKey
		}

		return errors.Wrap(err, "failed to create idempotency record")
	}

	rec.CreatedAt = recM.CreatedAt

	return nil
}

// --- Mapper Functions ---

// toIdempotencyDomain converts a GORM IdempotencyKeyModel to a domain IdempotencyRecord entity.
func toIdempotencyDomain(data *model.IdempotencyKeyModel) *entity.IdempotencyRecord {
	if data == nil {
		return nil
	}

	return &entity.IdempotencyRecord{
		Key:         data.Key,
		Kind:        entity.IdempotencyKind(data.Kind),
		AccountID:   data.AccountID,
		ReferenceID: data.ReferenceID,
		CreatedAt:   data.CreatedAt,
	}
}

// fromIdempotencyDomain converts a domain IdempotencyRecord entity to a GORM IdempotencyKeyModel.
func fromIdempotencyDomain(data *entity.IdempotencyRecord) *model.IdempotencyKeyModel {
	if data == nil {
		return nil
	}

	return &model.IdempotencyKeyModel{
		Key:         data.Key,
		Kind:        string(data.Kind),
		AccountID:   data.AccountID,
		ReferenceID: data.ReferenceID,
		CreatedAt:   data.CreatedAt,
	}
}
