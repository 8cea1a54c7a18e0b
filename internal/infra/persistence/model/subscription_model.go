package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// SubscriptionModel is the GORM-specific struct for the 'subscriptions'
// table. Selection and OrderIDs are stored as JSON; OrderIDs pins the orders
// the bundle created so cancellation does not re-derive membership.
type SubscriptionModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	DaysCount  int             `gorm:"not null"`
	Selection  datatypes.JSON  `gorm:"type:jsonb;not null"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	MealCount  int             `gorm:"not null"`
	OrderIDs   datatypes.JSON  `gorm:"type:jsonb;not null"`
	StartDate  time.Time       `gorm:"type:date;not null"`
	ExpiresAt  time.Time       `gorm:"type:date;not null"`
	Active     bool            `gorm:"not null;default:true;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionModel) TableName() string {
	return "subscriptions"
}
