package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus is the coarse order state; the collected/confirmed flags
// refine the Paid state.
type OrderStatus string

const (
	OrderPaid      OrderStatus = "paid"
	OrderCancelled OrderStatus = "cancelled"
)

// PaymentSource tags how an order was paid for.
type PaymentSource string

const (
	SourceSingle PaymentSource = "single"
	SourceBundle PaymentSource = "bundle"
)

// Order is one paid meal slot for one account on one serving date.
//
// MealName, MealPrice and Recipe are a frozen snapshot of the catalog entry
// at purchase time. They are write-once: later menu or price edits never
// change what was sold, what is owed back on cancellation, or what the
// kitchen deducts at serving time.
type Order struct {
	ID          uuid.UUID       `json:"id"`
	AccountID   uuid.UUID       `json:"account_id"`
	Slot        Slot            `json:"slot"`
	ServingDate time.Time       `json:"serving_date"` // date only, UTC midnight
	Status      OrderStatus     `json:"status"`
	MealName    string          `json:"meal_name"`
	MealPrice   decimal.Decimal `json:"meal_price"`
	Recipe      []RecipeLine    `json:"recipe"`
	Source      PaymentSource   `json:"payment_source"`

	Collected      bool       `json:"collected"`
	CollectedAt    *time.Time `json:"collected_at,omitempty"`
	BuyerConfirmed bool       `json:"buyer_confirmed"`
	ConfirmedAt    *time.Time `json:"confirmed_at,omitempty"`

	PaidAt    time.Time `json:"paid_at"`
	CreatedAt time.Time `json:"created_at"`
}

// FullyConsumed reports whether both the kitchen and the buyer have signed
// off the serving. Downstream features (reviews) require this.
func (o *Order) FullyConsumed() bool {
	return o.Collected && o.BuyerConfirmed
}

// Cancellable reports whether the order may still be cancelled for a refund.
// Served food cannot be un-served.
func (o *Order) Cancellable() bool {
	return o.Status == OrderPaid && !o.Collected
}
