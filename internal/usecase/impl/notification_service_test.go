package impl

import (
	"context"
	"testing"

	"canteen/internal/domain/entity"
	domainerrors "canteen/internal/domain/errors"
	"canteen/internal/domain/repository"
	mockRepo "canteen/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_List_AppliesDefaultLimit(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	notifRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(NotificationServiceParams{TxManager: newTxManager(t, factory)})

	ctx := context.Background()
	accountID := uuid.New()

	factory.EXPECT().NotificationRepo().Return(notifRepo)
	notifRepo.EXPECT().ListByAccount(ctx, accountID, defaultNotificationLimit).
		Return([]*entity.Notification{{ID: uuid.New(), AccountID: accountID}}, nil)

	notifications, err := service.List(ctx, accountID, 0)
	require.NoError(t, err)
	assert.Len(t, notifications, 1)
}

func TestNotificationService_UnreadCount(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	notifRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(NotificationServiceParams{TxManager: newTxManager(t, factory)})

	ctx := context.Background()
	accountID := uuid.New()

	factory.EXPECT().NotificationRepo().Return(notifRepo)
	notifRepo.EXPECT().CountUnread(ctx, accountID).Return(int64(3), nil)

	count, err := service.UnreadCount(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)
}

func TestNotificationService_Delete_UnknownNotification(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	notifRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(NotificationServiceParams{TxManager: newTxManager(t, factory)})

	ctx := context.Background()
	accountID := uuid.New()
	notificationID := uuid.New()

	factory.EXPECT().NotificationRepo().Return(notifRepo)
	notifRepo.EXPECT().Delete(ctx, accountID, notificationID).
		Return(repository.ErrNotificationNotFound)

	err := service.Delete(ctx, accountID, notificationID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	notifRepo := mockRepo.NewMockNotificationRepository(t)
	service := NewNotificationService(NotificationServiceParams{TxManager: newTxManager(t, factory)})

	ctx := context.Background()
	accountID := uuid.New()

	factory.EXPECT().NotificationRepo().Return(notifRepo)
	notifRepo.EXPECT().MarkAllRead(ctx, accountID).Return(nil)

	require.NoError(t, service.MarkAllRead(ctx, accountID))
}
