// Package service defines domain-level service contracts that are
// implemented by infrastructure adapters.
package service

import (
	"context"

	"canteen/internal/domain/entity"

	"github.com/google/uuid"
)

// Event is a notification payload addressed to a single account.
type Event struct {
	AccountID uuid.UUID
	Severity  entity.Severity
	Title     string
	Message   string
	OrderID   *uuid.UUID
	RequestID *uuid.UUID
}

// Notifier delivers in-app notifications to accounts. Delivery is
// best-effort and must never fail the business operation that
// triggered it.
type Notifier interface {
	// Notify delivers a single event.
	Notify(ctx context.Context, event Event)

	// NotifyRole delivers the same event body to every active account
	// holding the given role.
	NotifyRole(ctx context.Context, role entity.Role, event Event)
}
