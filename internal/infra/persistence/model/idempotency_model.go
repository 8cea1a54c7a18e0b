package model

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyKeyModel is the GORM-specific struct for the 'idempotency_keys'
// table. The key itself is the primary key, so a retried mutation that races
// its first attempt fails the insert instead of running twice.
type IdempotencyKeyModel struct {
	Key         string    `gorm:"type:text;primary_key"`
	Kind        string    `gorm:"type:text;not null"`
	AccountID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ReferenceID uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (IdempotencyKeyModel) TableName() string {
	return "idempotency_keys"
}
