package usecase

import (
	"context"
	"time"

	"canteen/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PurchaseSlotInput carries the parameters of a single-meal purchase.
type PurchaseSlotInput struct {
	AccountID      uuid.UUID
	Day            entity.DayOfWeek
	Meal           entity.MealType
	IdempotencyKey string
}

// CancelOrderInput carries the parameters of an order cancellation.
type CancelOrderInput struct {
	ActorID        uuid.UUID
	ActorRole      entity.Role
	OrderID        uuid.UUID
	IdempotencyKey string
}

// CancelOrderResult reports the refund applied by a cancellation.
type CancelOrderResult struct {
	Order    *entity.Order
	Refund   decimal.Decimal
	Replayed bool
}

// OrderUsecase defines the interface for meal order use cases
type OrderUsecase interface {
	// PurchaseSlot pays for a single meal slot, freezing the catalog
	// snapshot and debiting the account atomically.
	PurchaseSlot(ctx context.Context, input PurchaseSlotInput) (*entity.Order, error)

	// MarkCollected records that the kitchen handed out an order today,
	// deducting its frozen recipe from stock all-or-nothing.
	MarkCollected(ctx context.Context, staffID uuid.UUID, orderID uuid.UUID) (*entity.Order, error)

	// ConfirmConsumption records the buyer's confirmation of a collected order.
	ConfirmConsumption(ctx context.Context, accountID uuid.UUID, orderID uuid.UUID) (*entity.Order, error)

	// CancelOrder cancels a paid, uncollected order and refunds its frozen
	// price. Owners may cancel their own orders; admins may cancel any.
	CancelOrder(ctx context.Context, input CancelOrderInput) (*CancelOrderResult, error)

	// GetAccountOrders retrieves all orders of an account, newest first.
	GetAccountOrders(ctx context.Context, accountID uuid.UUID) ([]*entity.Order, error)

	// GetServingQueue retrieves the paid orders due on a serving date,
	// used by the kitchen hand-out view.
	GetServingQueue(ctx context.Context, servingDate time.Time) ([]*entity.Order, error)
}
