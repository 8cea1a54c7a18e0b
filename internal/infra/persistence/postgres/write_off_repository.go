package postgres

import (
	"context"
	"time"

	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"
	"canteen/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// writeOffRepository implements the repository.WriteOffRepository interface.
type writeOffRepository struct {
	db *gorm.DB
}

// NewWriteOffRepository is the constructor for writeOffRepository.
func NewWriteOffRepository(db *gorm.DB) repository.WriteOffRepository {
	return &writeOffRepository{
		db: db,
	}
}

// Create persists a write-off record.
func (repo *writeOffRepository) Create(ctx context.Context, wo *entity.WriteOff) error {
	woM := fromWriteOffDomain(wo)

	if err := repo.db.WithContext(ctx).Create(woM).Error; err != nil {
		return errors.Wrap(err, "failed to create write-off")
	}

	// Update the entity with generated values
	wo.ID = woM.ID
	wo.CreatedAt = woM.CreatedAt

	return nil
}

// ListInRange retrieves write-offs created within [from, to), newest first.
func (repo *writeOffRepository) ListInRange(ctx context.Context, from, to time.Time) ([]*entity.WriteOff, error) {
	var woModels []*model.WriteOffModel

	if err := repo.db.WithContext(ctx).
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at DESC").
		Find(&woModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list write-offs in range")
	}

	writeOffs := make([]*entity.WriteOff, 0, len(woModels))
	for _, woM := range woModels {
		writeOffs = append(writeOffs, toWriteOffDomain(woM))
	}

	return writeOffs, nil
}

// --- Mapper Functions ---

// toWriteOffDomain converts a GORM WriteOffModel to a domain WriteOff entity.
func toWriteOffDomain(data *model.WriteOffModel) *entity.WriteOff {
	if data == nil {
		return nil
	}

	return &entity.WriteOff{
		ID:           data.ID,
		IngredientID: data.IngredientID,
		Quantity:     data.Quantity,
		Unit:         data.Unit,
		Reason:       data.Reason,
		ActorID:      data.ActorID,
		CreatedAt:    data.CreatedAt,
	}
}

// fromWriteOffDomain converts a domain WriteOff entity to a GORM WriteOffModel.
func fromWriteOffDomain(data *entity.WriteOff) *model.WriteOffModel {
	if data == nil {
		return nil
	}

	return &model.WriteOffModel{
		ID:           data.ID,
		IngredientID: data.IngredientID,
		Quantity:     data.Quantity,
		Unit:         data.Unit,
		Reason:       data.Reason,
		ActorID:      data.ActorID,
		CreatedAt:    data.CreatedAt,
	}
}
