package model

import (
	"time"

	"github.com/google/uuid"
)

// PurchaseRequestModel is the GORM-specific struct for the
// 'purchase_requests' table.
type PurchaseRequestModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RequesterID    uuid.UUID `gorm:"type:uuid;not null;index"`
	IngredientName string    `gorm:"type:text;not null"`
	Quantity       float64   `gorm:"not null"`
	Unit           string    `gorm:"type:text;not null"`
	Status         string    `gorm:"type:text;not null;index"`
	DecidedBy      *uuid.UUID `gorm:"type:uuid"`
	DecidedAt      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (PurchaseRequestModel) TableName() string {
	return "purchase_requests"
}

// WriteOffModel is the GORM-specific struct for the 'write_offs' table.
// Rows are append-only; the table is the audit journal for manual stock
// decrements.
type WriteOffModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	IngredientID uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity     float64   `gorm:"not null"`
	Unit         string    `gorm:"type:text;not null"`
	Reason       string    `gorm:"type:text;not null"`
	ActorID      uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt    time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (WriteOffModel) TableName() string {
	return "write_offs"
}
