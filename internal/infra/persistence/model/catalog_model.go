package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// IngredientModel is the GORM-specific struct for the 'ingredients' table.
type IngredientModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string          `gorm:"type:text;not null;uniqueIndex"`
	PricePerUnit decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (IngredientModel) TableName() string {
	return "ingredients"
}

// StockModel is the GORM-specific struct for the 'stocks' table.
// One row per ingredient; quantity is kept non-negative by the services.
type StockModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	IngredientID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Quantity     float64   `gorm:"not null;default:0"`
	Unit         string    `gorm:"type:text;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (StockModel) TableName() string {
	return "stocks"
}

// MealDefinitionModel is the GORM-specific struct for the 'meal_definitions'
// table. Recipe is the live recipe as a JSON array; orders copy it at
// purchase time, so edits here never touch sold orders.
type MealDefinitionModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Day       string          `gorm:"type:text;not null;uniqueIndex:idx_meal_definitions_slot"`
	MealType  string          `gorm:"type:text;not null;uniqueIndex:idx_meal_definitions_slot"`
	Name      string          `gorm:"type:text;not null"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Recipe    datatypes.JSON  `gorm:"type:jsonb;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (MealDefinitionModel) TableName() string {
	return "meal_definitions"
}
