package repository

import (
	"context"

	"canteen/internal/domain/entity"
	"canteen/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// SubscriptionRepository defines meal-bundle database operations.
type SubscriptionRepository interface {
	// Create persists a new subscription with its generated order IDs.
	Create(ctx context.Context, sub *entity.Subscription) error

	// FindByID retrieves a subscription by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Subscription, error)

	// FindActiveByAccount retrieves the active subscription of an account,
	// if any.
	FindActiveByAccount(ctx context.Context, accountID uuid.UUID) (*entity.Subscription, error)

	// Deactivate clears the active flag of a subscription.
	Deactivate(ctx context.Context, id uuid.UUID) error
}
