package usecase

import (
	"context"

	"canteen/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for in-app notification use cases
type NotificationUsecase interface {
	// List retrieves the most recent notifications of an account.
	List(ctx context.Context, accountID uuid.UUID, limit int) ([]*entity.Notification, error)

	// UnreadCount returns the number of unread notifications.
	UnreadCount(ctx context.Context, accountID uuid.UUID) (int64, error)

	// MarkRead marks one notification of the account as read.
	MarkRead(ctx context.Context, accountID, notificationID uuid.UUID) error

	// MarkAllRead marks every notification of the account as read.
	MarkAllRead(ctx context.Context, accountID uuid.UUID) error

	// Delete removes one notification of the account.
	Delete(ctx context.Context, accountID, notificationID uuid.UUID) error
}
