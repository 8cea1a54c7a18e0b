package repository

import (
	"context"
	"time"

	"canteen/internal/domain/entity"
	"canteen/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for procurement persistence.
var (
	// ErrRequestNotFound is returned when a purchase request is not found.
	ErrRequestNotFound = errors.New("purchase request not found")
)

// ProcurementRepository defines purchase-request database operations.
type ProcurementRepository interface {
	// Create persists a new purchase request.
	Create(ctx context.Context, req *entity.PurchaseRequest) error

	// FindByID retrieves a purchase request by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseRequest, error)

	// FindByIDForUpdate retrieves a purchase request by ID with a row lock,
	// so a decision can be applied exactly once.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.PurchaseRequest, error)

	// Decide records the outcome of a pending request.
	Decide(ctx context.Context, id uuid.UUID, status entity.RequestStatus, decidedBy uuid.UUID, decidedAt time.Time) error

	// ListPending retrieves all requests awaiting a decision, oldest first.
	ListPending(ctx context.Context) ([]*entity.PurchaseRequest, error)

	// ListByRequester retrieves all requests created by an account, newest first.
	ListByRequester(ctx context.Context, requesterID uuid.UUID) ([]*entity.PurchaseRequest, error)

	// ListApprovedInRange retrieves approved requests decided within
	// [from, to), used by spend reporting.
	ListApprovedInRange(ctx context.Context, from, to time.Time) ([]*entity.PurchaseRequest, error)
}

// WriteOffRepository defines stock write-off journal operations.
type WriteOffRepository interface {
	// Create persists a write-off record.
	Create(ctx context.Context, wo *entity.WriteOff) error

	// ListInRange retrieves write-offs created within [from, to), newest first.
	ListInRange(ctx context.Context, from, to time.Time) ([]*entity.WriteOff, error)
}
