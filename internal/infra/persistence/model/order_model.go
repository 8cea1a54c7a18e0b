package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
//
// MealName, MealPrice and Recipe are the frozen purchase-time snapshot and
// are never updated after insert. The partial unique index on
// (account_id, day, meal_type, serving_date) where status = 'paid' is what
// makes double-purchase of a slot impossible at the storage level.
type OrderModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Day            string          `gorm:"type:text;not null"`
	MealType       string          `gorm:"type:text;not null"`
	ServingDate    time.Time       `gorm:"type:date;not null;index"`
	Status         string          `gorm:"type:text;not null;index"`
	MealName       string          `gorm:"type:text;not null"`
	MealPrice      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Recipe         datatypes.JSON  `gorm:"type:jsonb;not null"`
	PaymentSource  string          `gorm:"type:text;not null"`
	Collected      bool            `gorm:"not null;default:false"`
	CollectedAt    *time.Time
	BuyerConfirmed bool `gorm:"not null;default:false"`
	ConfirmedAt    *time.Time
	PaidAt         time.Time `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
