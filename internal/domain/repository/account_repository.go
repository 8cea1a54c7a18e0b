// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"canteen/internal/domain/entity"
	"canteen/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Domain-specific errors for account persistence.
var (
	// ErrAccountNotFound is returned when an account is not found.
	ErrAccountNotFound = errors.New("account not found")
)

// AccountRepository defines account-related database operations. Balance
// writes happen through SetBalance on a row previously locked with
// FindByIDForUpdate, inside a TransactionManager.Execute callback.
type AccountRepository interface {
	// FindByID retrieves an account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByIDForUpdate retrieves an account and locks its row for the
	// remainder of the surrounding transaction.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// SetBalance overwrites the account balance.
	SetBalance(ctx context.Context, id uuid.UUID, balance decimal.Decimal) error

	// SetState transitions the account lifecycle state.
	SetState(ctx context.Context, id uuid.UUID, state entity.AccountState, by uuid.UUID) error

	// ListByRole retrieves all active accounts with the given role.
	ListByRole(ctx context.Context, role entity.Role) ([]*entity.Account, error)

	// ListArchived retrieves all archived accounts.
	ListArchived(ctx context.Context) ([]*entity.Account, error)

	// CountActiveByRole counts active accounts with the given role.
	CountActiveByRole(ctx context.Context, role entity.Role) (int64, error)
}

// ArchiveLogRepository persists account archival audit records.
type ArchiveLogRepository interface {
	// Create persists a new archive log entry.
	Create(ctx context.Context, log *entity.ArchiveLog) error

	// List retrieves all archive log entries, newest first.
	List(ctx context.Context) ([]*entity.ArchiveLog, error)
}
