package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MealSelection is which servings of one weekday a bundle covers.
type MealSelection struct {
	Breakfast bool `json:"breakfast"`
	Lunch     bool `json:"lunch"`
}

// BundleSelection maps each school day to the servings selected for it.
// Days absent from the map are not covered.
type BundleSelection map[DayOfWeek]MealSelection

// Includes reports whether the selection covers the given slot.
func (s BundleSelection) Includes(slot Slot) bool {
	sel, ok := s[slot.Day]
	if !ok {
		return false
	}
	if slot.Meal == Breakfast {
		return sel.Breakfast
	}

	return sel.Lunch
}

// Empty reports whether no serving at all is selected.
func (s BundleSelection) Empty() bool {
	for _, sel := range s {
		if sel.Breakfast || sel.Lunch {
			return false
		}
	}

	return true
}

// Subscription is a multi-day bundle of meal slots bought in one ledger
// transaction. TotalPrice and MealCount reflect the orders actually created
// after deduplicating slots already paid individually, never the advisory
// quote. OrderIDs pins the generated orders explicitly so cancellation does
// not re-derive membership from the date range.
type Subscription struct {
	ID         uuid.UUID       `json:"id"`
	AccountID  uuid.UUID       `json:"account_id"`
	DaysCount  int             `json:"days_count"`
	Selection  BundleSelection `json:"selection"`
	TotalPrice decimal.Decimal `json:"total_price"`
	MealCount  int             `json:"meal_count"`
	OrderIDs   []uuid.UUID     `json:"order_ids"`
	StartDate  time.Time       `json:"start_date"`  // first covered serving date
	ExpiresAt  time.Time       `json:"expires_at"`  // last covered serving date
	Active     bool            `json:"active"`
	CreatedAt  time.Time       `json:"created_at"`
}
