package usecase

import (
	"context"

	"canteen/internal/domain/entity"

	"github.com/google/uuid"
)

// StockLine joins a stock row with its ingredient for listings.
type StockLine struct {
	Ingredient entity.Ingredient
	Stock      *entity.Stock
}

// WriteOffInput carries the parameters of a manual stock write-off.
type WriteOffInput struct {
	ActorID        uuid.UUID
	IngredientName string
	Quantity       float64
	Unit           string
	Reason         string
}

// PurchaseRequestInput carries one line of a procurement request.
type PurchaseRequestInput struct {
	RequesterID    uuid.UUID
	IngredientName string
	Quantity       float64
	Unit           string
}

// InventoryUsecase defines the interface for stock and procurement use cases
type InventoryUsecase interface {
	// ListStock retrieves every ingredient with its current stock level.
	ListStock(ctx context.Context) ([]StockLine, error)

	// SetStockQuantity overwrites the stock level of an ingredient.
	// Admin operation.
	SetStockQuantity(ctx context.Context, actorID uuid.UUID, ingredientName string, quantity float64, unit string) (*entity.Stock, error)

	// WriteOff removes spoiled or wasted stock and journals the removal.
	WriteOff(ctx context.Context, input WriteOffInput) (*entity.WriteOff, error)

	// RequestPurchase files procurement requests, one per input line.
	RequestPurchase(ctx context.Context, inputs []PurchaseRequestInput) ([]*entity.PurchaseRequest, error)

	// DecideRequest approves or rejects a pending request. Approval
	// credits stock exactly once, creating the ingredient if needed.
	DecideRequest(ctx context.Context, adminID uuid.UUID, requestID uuid.UUID, approve bool) (*entity.PurchaseRequest, error)

	// ListPendingRequests retrieves requests awaiting a decision.
	ListPendingRequests(ctx context.Context) ([]*entity.PurchaseRequest, error)

	// ListAccountRequests retrieves the requests filed by an account.
	ListAccountRequests(ctx context.Context, requesterID uuid.UUID) ([]*entity.PurchaseRequest, error)
}
