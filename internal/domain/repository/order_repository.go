package repository

import (
	"context"
	"time"

	"canteen/internal/domain/entity"
	"canteen/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines order persistence. The snapshot fields of an order
// are written once by Create and never updated; the state-transition methods
// only touch status and the collected/confirmed flags.
type OrderRepository interface {
	// Create persists a new order with its frozen snapshot.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByIDForUpdate retrieves an order and locks its row for the
	// remainder of the surrounding transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindPaid retrieves the active paid order for (account, meal type,
	// serving date), if any.
	FindPaid(ctx context.Context, accountID uuid.UUID, meal entity.MealType, servingDate time.Time) (*entity.Order, error)

	// ListByAccount retrieves all orders of an account, newest first.
	ListByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Order, error)

	// ListPaidByServingDate retrieves all paid orders for one serving date
	// (the kitchen queue).
	ListPaidByServingDate(ctx context.Context, servingDate time.Time) ([]*entity.Order, error)

	// ListPaidInRange retrieves all paid orders with a serving date within
	// [from, to] inclusive.
	ListPaidInRange(ctx context.Context, from, to time.Time) ([]*entity.Order, error)

	// ListCancellableByAccount retrieves the paid, uncollected orders of an
	// account and locks them for the remainder of the surrounding
	// transaction.
	ListCancellableByAccount(ctx context.Context, accountID uuid.UUID) ([]*entity.Order, error)

	// MarkCollected flags the order as collected at the given time.
	MarkCollected(ctx context.Context, id uuid.UUID, at time.Time) error

	// MarkConfirmed flags the order as buyer-confirmed at the given time.
	MarkConfirmed(ctx context.Context, id uuid.UUID, at time.Time) error

	// Cancel transitions the order status to cancelled.
	Cancel(ctx context.Context, id uuid.UUID) error
}
