package pubsub

import (
	"context"
	"log/slog"
	"time"

	"canteen/internal/domain/entity"
	"canteen/internal/domain/repository"
	"canteen/internal/domain/service"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// persistentNotifier implements service.Notifier. Every event is stored as
// an in-app notification row and then handed to the configured publisher for
// external delivery. Both steps are best-effort: a failure is logged and
// swallowed so the business operation that fired the event is never rolled
// back because of a notification.
type persistentNotifier struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// NotifierParams holds dependencies for the Notifier, injected by Fx
type NotifierParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewNotifier is the constructor for persistentNotifier.
func NewNotifier(params NotifierParams) service.Notifier {
	return &persistentNotifier{
		txManager: params.TxManager,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

// Notify delivers a single event.
func (n *persistentNotifier) Notify(ctx context.Context, event service.Event) {
	n.deliver(ctx, event.AccountID, event)
}

// NotifyRole delivers the same event body to every active account holding
// the given role.
func (n *persistentNotifier) NotifyRole(ctx context.Context, role entity.Role, event service.Event) {
	var accounts []*entity.Account
	err := n.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		var listErr error
		accounts, listErr = txRepos.AccountRepo().ListByRole(ctx, role)

		return listErr
	})
	if err != nil {
		n.logger.WarnContext(ctx, "failed to resolve notification audience",
			slog.String("role", string(role)),
			slog.Any("error", err),
		)

		return
	}

	for _, account := range accounts {
		n.deliver(ctx, account.ID, event)
	}
}

func (n *persistentNotifier) deliver(ctx context.Context, accountID uuid.UUID, event service.Event) {
	notification := &entity.Notification{
		ID:        uuid.New(),
		AccountID: accountID,
		Severity:  event.Severity,
		Title:     event.Title,
		Message:   event.Message,
		OrderID:   event.OrderID,
		RequestID: event.RequestID,
		CreatedAt: time.Now().UTC(),
	}

	err := n.txManager.Execute(ctx, func(txRepos repository.RepositoryFactory) error {
		return txRepos.NotificationRepo().Create(ctx, notification)
	})
	if err != nil {
		n.logger.WarnContext(ctx, "failed to store notification",
			slog.String("accountID", accountID.String()),
			slog.String("title", event.Title),
			slog.Any("error", err),
		)

		return
	}

	if err := n.publisher.PublishNotificationEvent(ctx, toNotificationEvent(notification)); err != nil {
		n.logger.WarnContext(ctx, "failed to publish notification event",
			slog.String("notificationID", notification.ID.String()),
			slog.Any("error", err),
		)
	}
}

func toNotificationEvent(n *entity.Notification) *service.NotificationEvent {
	event := &service.NotificationEvent{
		NotificationID: n.ID.String(),
		AccountID:      n.AccountID.String(),
		Severity:       string(n.Severity),
		Title:          n.Title,
		Message:        n.Message,
		CreatedAt:      n.CreatedAt,
	}
	if n.OrderID != nil {
		event.OrderID = n.OrderID.String()
	}
	if n.RequestID != nil {
		event.RequestID = n.RequestID.String()
	}

	return event
}
