package usecase

import (
	"context"
	"time"

	"canteen/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BundleQuoteInput carries the parameters of a bundle price quote.
type BundleQuoteInput struct {
	AccountID uuid.UUID
	DaysCount int
	Selection entity.BundleSelection
}

// SkippedSlot describes a bundle slot omitted because it is already paid.
type SkippedSlot struct {
	Date time.Time          `json:"date"`
	Day  entity.DayOfWeek   `json:"day"`
	Meal entity.MealType    `json:"meal"`
	Name string             `json:"name"`
}

// BundleQuote is the advisory result of a quote recomputation. The
// total reflects current catalog prices of the slots that would
// actually be created.
type BundleQuote struct {
	DaysCount  int
	Selection  entity.BundleSelection
	StartDate  time.Time
	Shifted    bool
	MealCount  int
	TotalPrice decimal.Decimal
	Skipped    []SkippedSlot
}

// PurchaseBundleInput carries the parameters of a bundle purchase.
type PurchaseBundleInput struct {
	AccountID      uuid.UUID
	DaysCount      int
	Selection      entity.BundleSelection
	IdempotencyKey string
}

// PurchaseBundleResult reports what a bundle purchase actually created.
// Created is zero, with a nil Subscription, when every selected slot in
// the window was already paid.
type PurchaseBundleResult struct {
	Subscription *entity.Subscription
	Created      int
	TotalCharged decimal.Decimal
	Skipped      []SkippedSlot
	Replayed     bool
}

// CancelBundleInput carries the parameters of a bundle cancellation.
type CancelBundleInput struct {
	ActorID        uuid.UUID
	SubscriptionID uuid.UUID
	IdempotencyKey string
}

// CancelBundleResult reports the per-order refunds of a cancellation.
type CancelBundleResult struct {
	Subscription    *entity.Subscription
	CancelledOrders int
	RefundTotal     decimal.Decimal
	Replayed        bool
}

// BundleUsecase defines the interface for meal bundle use cases
type BundleUsecase interface {
	// Quote recomputes the advisory price of a bundle selection without
	// any side effects.
	Quote(ctx context.Context, input BundleQuoteInput) (*BundleQuote, error)

	// Purchase walks the bundle window, creates an order per unpaid
	// selected slot, and debits the aggregate price in one transaction.
	Purchase(ctx context.Context, input PurchaseBundleInput) (*PurchaseBundleResult, error)

	// Cancel revokes an active bundle, cancelling every still-cancellable
	// member order with a per-order refund. Admin operation.
	Cancel(ctx context.Context, input CancelBundleInput) (*CancelBundleResult, error)

	// GetActiveBundle retrieves the active bundle of an account, if any.
	GetActiveBundle(ctx context.Context, accountID uuid.UUID) (*entity.Subscription, error)
}
