package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DayOfWeek is a school day the weekly menu is keyed by. Weekends are not
// served, so saturday/sunday never appear here.
type DayOfWeek string

const (
	Monday    DayOfWeek = "monday"
	Tuesday   DayOfWeek = "tuesday"
	Wednesday DayOfWeek = "wednesday"
	Thursday  DayOfWeek = "thursday"
	Friday    DayOfWeek = "friday"
)

// SchoolDays lists the serviceable days in calendar order.
var SchoolDays = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday}

// Valid reports whether d is one of the five school days.
func (d DayOfWeek) Valid() bool {
	switch d {
	case Monday, Tuesday, Wednesday, Thursday, Friday:
		return true
	}

	return false
}

// Ordinal returns the zero-based position within the school week
// (Monday = 0). Callers must check Valid first; an unknown day returns -1.
func (d DayOfWeek) Ordinal() int {
	for i, day := range SchoolDays {
		if day == d {
			return i
		}
	}

	return -1
}

// MealType distinguishes the two daily servings.
type MealType string

const (
	Breakfast MealType = "breakfast"
	Lunch     MealType = "lunch"
)

// MealTypes lists the servings in serving order.
var MealTypes = []MealType{Breakfast, Lunch}

// Valid reports whether m is a known meal type.
func (m MealType) Valid() bool {
	return m == Breakfast || m == Lunch
}

// Slot identifies one purchasable meal instance in the weekly catalog.
type Slot struct {
	Day  DayOfWeek `json:"day"`
	Meal MealType  `json:"meal_type"`
}

// Valid reports whether both halves of the slot are known values.
func (s Slot) Valid() bool {
	return s.Day.Valid() && s.Meal.Valid()
}

// Ingredient is a raw product the kitchen stocks and meals are made of.
// Created lazily when a menu edit first names it. PricePerUnit is the live
// costing price; it never affects already-sold orders.
type Ingredient struct {
	ID           uuid.UUID       `json:"id"`
	Name         string          `json:"name"` // unique
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
}

// Stock is the on-hand quantity for one ingredient. Quantity never drops
// below zero; fulfillment, write-offs and procurement are the only mutators.
type Stock struct {
	ID           uuid.UUID `json:"id"`
	IngredientID uuid.UUID `json:"ingredient_id"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RecipeLine is one (ingredient, quantity, unit) requirement. Ingredients are
// referenced by their unique name so the same type serves both the live
// catalog recipe and the frozen order snapshot.
type RecipeLine struct {
	IngredientName string  `json:"name"`
	Quantity       float64 `json:"qty"`
	Unit           string  `json:"unit"`
}

// MealDefinition is the current catalog entry for a slot: display name,
// price and ordered recipe. Mutable at any time; orders copy it at purchase
// and never read it again.
type MealDefinition struct {
	ID        uuid.UUID       `json:"id"`
	Slot      Slot            `json:"slot"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Recipe    []RecipeLine    `json:"recipe"`
	UpdatedAt time.Time       `json:"updated_at"`
}
