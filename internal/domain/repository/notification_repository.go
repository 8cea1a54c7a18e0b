package repository

import (
	"context"

	"canteen/internal/domain/entity"
	"canteen/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository defines in-app notification database operations.
type NotificationRepository interface {
	// Create persists a new notification.
	Create(ctx context.Context, n *entity.Notification) error

	// ListByAccount retrieves notifications for an account, newest first,
	// bounded by limit.
	ListByAccount(ctx context.Context, accountID uuid.UUID, limit int) ([]*entity.Notification, error)

	// CountUnread returns the number of unread notifications for an account.
	CountUnread(ctx context.Context, accountID uuid.UUID) (int64, error)

	// MarkRead marks a single notification of an account as read.
	MarkRead(ctx context.Context, accountID, notificationID uuid.UUID) error

	// MarkAllRead marks every unread notification of an account as read.
	MarkAllRead(ctx context.Context, accountID uuid.UUID) error

	// Delete removes a single notification of an account.
	Delete(ctx context.Context, accountID, notificationID uuid.UUID) error
}
