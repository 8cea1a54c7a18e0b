package postgres

import (
	"context"

	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"
	"canteen/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// Create persists a new notification.
func (repo *notificationRepository) Create(ctx context.Context, n *entity.Notification) error {
	notificationM := fromNotificationDomain(n)

	if err := repo.db.WithContext(ctx).Create(notificationM).Error; err != nil {
		return errors.Wrap(err, "failed to create notification")
	}

	// Update the entity with generated values
	n.ID = notificationM.ID
	n.CreatedAt = notificationM.CreatedAt

	return nil
}

// ListByAccount retrieves notifications for an account, newest first,
// bounded by limit.
func (repo *notificationRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]*entity.Notification, error) {
	var notificationModels []*model.NotificationModel

	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list notifications by account")
	}

	notifications := make([]*entity.Notification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// CountUnread returns the number of unread notifications for an account.
func (repo *notificationRepository) CountUnread(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("account_id = ? AND read = false", accountID).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count unread notifications")
	}

	return count, nil
}

// MarkRead marks a single notification of an account as read.
func (repo *notificationRepository) MarkRead(ctx context.Context, accountID, notificationID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("id = ? AND account_id = ?", notificationID, accountID).
		Update("read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead marks every unread notification of an account as read.
func (repo *notificationRepository) MarkAllRead(ctx context.Context, accountID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Model(&model.NotificationModel{}).
		Where("account_id = ? AND read = false", accountID).
		Update("read", true).Error; err != nil {
		return errors.Wrap(err, "failed to mark all notifications read")
	}

	return nil
}

// Delete removes a single notification of an account.
func (repo *notificationRepository) Delete(ctx context.Context, accountID, notificationID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND account_id = ?", notificationID, accountID).
		Delete(&model.NotificationModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete notification")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM NotificationModel to a domain Notification entity.
func toNotificationDomain(data *model.NotificationModel) *entity.Notification {
	if data == nil {
		return nil
	}

	return &entity.Notification{
		ID:        data.ID,
		AccountID: data.AccountID,
		Severity:  entity.Severity(data.Severity),
		Title:     data.Title,
		Message:   data.Message,
		Read:      data.Read,
		OrderID:   data.OrderID,
		RequestID: data.RequestID,
		CreatedAt: data.CreatedAt,
	}
}

// fromNotificationDomain converts a domain Notification entity to a GORM NotificationModel.
func fromNotificationDomain(data *entity.Notification) *model.NotificationModel {
	if data == nil {
		return nil
	}

	return &model.NotificationModel{
		ID:        data.ID,
		AccountID: data.AccountID,
		Severity:  string(data.Severity),
		Title:     data.Title,
		Message:   data.Message,
		Read:      data.Read,
		OrderID:   data.OrderID,
		RequestID: data.RequestID,
		CreatedAt: data.CreatedAt,
	}
}
