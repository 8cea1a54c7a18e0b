package repository

import (
	"context"

	"canteen/internal/domain/entity"
	"canteen/internal/errors"

	"github.com/google/uuid"
)

// ErrStockNotFound is returned when an ingredient has no stock row.
var ErrStockNotFound = errors.New("stock row not found")

// StockRepository defines per-ingredient stock operations. The deduction
// path (LockByIngredientNames then SetQuantity) must run inside a single
// transaction: the lock serializes concurrent fulfillments per ingredient
// so two of them cannot both observe stale sufficiency.
type StockRepository interface {
	// LockByIngredientNames retrieves the stock rows for the given
	// ingredient names and locks them for the remainder of the surrounding
	// transaction. Rows are locked in a deterministic (name) order to keep
	// concurrent fulfillments from deadlocking. Names without a stock row
	// are simply absent from the result.
	LockByIngredientNames(ctx context.Context, names []string) (map[string]*entity.Stock, error)

	// SetQuantity overwrites the quantity of a previously locked stock row.
	SetQuantity(ctx context.Context, id uuid.UUID, quantity float64) error

	// Credit increases stock for an ingredient, creating the row (with the
	// given unit) if it does not exist yet.
	Credit(ctx context.Context, ingredientID uuid.UUID, qty float64, unit string) error

	// FindByIngredientID retrieves the stock row for one ingredient.
	FindByIngredientID(ctx context.Context, ingredientID uuid.UUID) (*entity.Stock, error)

	// FindByIngredientIDForUpdate retrieves the stock row for one ingredient
	// and locks it for the remainder of the surrounding transaction.
	FindByIngredientIDForUpdate(ctx context.Context, ingredientID uuid.UUID) (*entity.Stock, error)

	// ListAll retrieves every stock row.
	ListAll(ctx context.Context) ([]*entity.Stock, error)
}
