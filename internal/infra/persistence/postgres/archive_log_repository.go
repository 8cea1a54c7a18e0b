package postgres

import (
	"context"

	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"
	"canteen/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// archiveLogRepository implements the repository.ArchiveLogRepository interface.
type archiveLogRepository struct {
	db *gorm.DB
}

// NewArchiveLogRepository is the constructor for archiveLogRepository.
func NewArchiveLogRepository(db *gorm.DB) repository.ArchiveLogRepository {
	return &archiveLogRepository{
		db: db,
	}
}

// Create persists a new archive log entry.
func (repo *archiveLogRepository) Create(ctx context.Context, log *entity.ArchiveLog) error {
	logM := fromArchiveLogDomain(log)

	if err := repo.db.WithContext(ctx).Create(logM).Error; err != nil {
		return errors.Wrap(err, "failed to create archive log")
	}

	// Update the entity with generated values
	log.ID = logM.ID
	log.CreatedAt = logM.CreatedAt

	return nil
}

// List retrieves all archive log entries, newest first.
func (repo *archiveLogRepository) List(ctx context.Context) ([]*entity.ArchiveLog, error) {
	var logModels []*model.ArchiveLogModel

	if err := repo.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&logModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list archive logs")
	}

	logs := make([]*entity.ArchiveLog, 0, len(logModels))
	for _, logM := range logModels {
		logs = append(logs, toArchiveLogDomain(logM))
	}

	return logs, nil
}

// --- Mapper Functions ---

// toArchiveLogDomain converts a GORM ArchiveLogModel to a domain ArchiveLog entity.
func toArchiveLogDomain(data *model.ArchiveLogModel) *entity.ArchiveLog {
	if data == nil {
		return nil
	}

	return &entity.ArchiveLog{
		ID:           data.ID,
		AccountID:    data.AccountID,
		AccountEmail: data.AccountEmail,
		AccountName:  data.AccountName,
		ActorID:      data.ActorID,
		RefundAmount: data.RefundAmount,
		Reason:       data.Reason,
		CreatedAt:    data.CreatedAt,
	}
}

// fromArchiveLogDomain converts a domain ArchiveLog entity to a GORM ArchiveLogModel.
func fromArchiveLogDomain(data *entity.ArchiveLog) *model.ArchiveLogModel {
	if data == nil {
		return nil
	}

	return &model.ArchiveLogModel{
		ID:           data.ID,
		AccountID:    data.AccountID,
		AccountEmail: data.AccountEmail,
		AccountName:  data.AccountName,
		ActorID:      data.ActorID,
		RefundAmount: data.RefundAmount,
		Reason:       data.Reason,
		CreatedAt:    data.CreatedAt,
	}
}
