package service

import (
	"context"
	"time"
)

// NotificationEvent is the wire payload published for every stored
// notification so external channels (mail, push) can fan it out.
type NotificationEvent struct {
	NotificationID string    `json:"notification_id"`
	AccountID      string    `json:"account_id"`
	Severity       string    `json:"severity"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	OrderID        string    `json:"order_id,omitempty"`
	RequestID      string    `json:"request_id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// EventPublisher publishes notification events to an external transport.
type EventPublisher interface {
	// PublishNotificationEvent publishes an event for external delivery.
	PublishNotificationEvent(ctx context.Context, event *NotificationEvent) error

	// Close releases publisher resources.
	Close() error
}
