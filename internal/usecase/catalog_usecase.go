package usecase

import (
	"context"

	"canteen/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UpsertMealInput carries a full meal definition for one slot.
type UpsertMealInput struct {
	ActorID uuid.UUID
	Day     entity.DayOfWeek
	Meal    entity.MealType
	Name    string
	Price   decimal.Decimal
	Recipe  []entity.RecipeLine
}

// CatalogUsecase defines the interface for menu management use cases
type CatalogUsecase interface {
	// GetWeeklyMenu retrieves the full school-week menu.
	GetWeeklyMenu(ctx context.Context) ([]*entity.MealDefinition, error)

	// GetMeal retrieves the meal defined for a single slot.
	GetMeal(ctx context.Context, slot entity.Slot) (*entity.MealDefinition, error)

	// UpsertMeal replaces the definition of a slot, lazily creating any
	// ingredient the recipe names. Existing order snapshots are untouched.
	UpsertMeal(ctx context.Context, input UpsertMealInput) (*entity.MealDefinition, error)

	// ListIngredients retrieves every known ingredient with its price.
	ListIngredients(ctx context.Context) ([]*entity.Ingredient, error)

	// SetIngredientPrice updates the live costing price of an ingredient.
	SetIngredientPrice(ctx context.Context, actorID uuid.UUID, ingredientName string, price decimal.Decimal) (*entity.Ingredient, error)
}
