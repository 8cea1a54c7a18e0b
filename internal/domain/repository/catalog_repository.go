package repository

import (
	"context"

	"canteen/internal/domain/entity"
	"canteen/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Domain-specific errors for catalog persistence.
var (
	// ErrMealNotFound is returned when no meal is defined for a slot.
	ErrMealNotFound = errors.New("meal definition not found")
	// ErrIngredientNotFound is returned when an ingredient is not found.
	ErrIngredientNotFound = errors.New("ingredient not found")
)

// CatalogRepository defines weekly-menu and ingredient database operations.
type CatalogRepository interface {
	// FindMeal retrieves the meal definition for a slot, recipe included.
	FindMeal(ctx context.Context, slot entity.Slot) (*entity.MealDefinition, error)

	// ListMeals retrieves every defined meal with its recipe.
	ListMeals(ctx context.Context) ([]*entity.MealDefinition, error)

	// UpsertMeal creates or replaces the meal definition for its slot,
	// recipe lines included. Ingredients named by the recipe must already
	// exist.
	UpsertMeal(ctx context.Context, meal *entity.MealDefinition) error

	// FindIngredientByName retrieves an ingredient by its unique name.
	FindIngredientByName(ctx context.Context, name string) (*entity.Ingredient, error)

	// EnsureIngredient returns the ingredient with the given name, creating
	// it with a zero price if it does not exist yet.
	EnsureIngredient(ctx context.Context, name string) (*entity.Ingredient, error)

	// ListIngredients retrieves all ingredients ordered by name.
	ListIngredients(ctx context.Context) ([]*entity.Ingredient, error)

	// SetIngredientPrice updates the live costing price of an ingredient.
	SetIngredientPrice(ctx context.Context, id uuid.UUID, price decimal.Decimal) error
}
