package impl

import (
	"context"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	"canteen/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// defaultNotificationLimit bounds a listing when the caller does not.
const defaultNotificationLimit = 50

type notificationService struct {
	txManager repository.TransactionManager
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{txManager: params.TxManager}
}

// List retrieves the most recent notifications of an account.
func (s *notificationService) List(ctx context.Context, accountID uuid.UUID, limit int) ([]*entity.Notification, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}

	var notifications []*entity.Notification

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		found, err := txRepos.NotificationRepo().ListByAccount(ctx, accountID, limit)
		if err != nil {
			return errors.Wrap(err, "failed to list notifications")
		}
		notifications = found

		return nil
	})
	if err != nil {
		return nil, err
	}

	return notifications, nil
}

// UnreadCount returns the number of unread notifications.
func (s *notificationService) UnreadCount(ctx context.Context, accountID uuid.UUID) (int64, error) {
	var count int64

	err := s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		found, err := txRepos.NotificationRepo().CountUnread(ctx, accountID)
		if err != nil {
			return errors.Wrap(err, "failed to count unread notifications")
		}
		count = found

		return nil
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

// MarkRead marks one notification of the account as read.
func (s *notificationService) MarkRead(ctx context.Context, accountID, notificationID uuid.UUID) error {
	return s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		if err := txRepos.NotificationRepo().MarkRead(ctx, accountID, notificationID); err != nil {
			if errors.Is(err, repository.ErrNotificationNotFound) {
				return domainerrors.ErrValidationFailed.WithDetails("notification not found for this account")
			}

			return errors.Wrap(err, "failed to mark notification read")
		}

		return nil
	})
}

// MarkAllRead marks every notification of the account as read.
func (s *notificationService) MarkAllRead(ctx context.Context, accountID uuid.UUID) error {
	return s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		if err := txRepos.NotificationRepo().MarkAllRead(ctx, accountID); err != nil {
			return errors.Wrap(err, "failed to mark notifications read")
		}

		return nil
	})
}

// Delete removes one notification of the account.
func (s *notificationService) Delete(ctx context.Context, accountID, notificationID uuid.UUID) error {
	return s.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		if err := txRepos.NotificationRepo().Delete(ctx, accountID, notificationID); err != nil {
			if errors.Is(err, repository.ErrNotificationNotFound) {
				return domainerrors.ErrValidationFailed.WithDetails("notification not found for this account")
			}

			return errors.Wrap(err, "failed to delete notification")
		}

		return nil
	})
}
