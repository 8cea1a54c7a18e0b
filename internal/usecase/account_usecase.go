package usecase

import (
	"context"

	"canteen/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TopupInput carries the parameters of a balance top-up.
type TopupInput struct {
	ActorID   uuid.UUID
	ActorRole entity.Role
	AccountID uuid.UUID
	Amount    decimal.Decimal
}

// ArchiveAccountInput carries the parameters of an account archival.
type ArchiveAccountInput struct {
	AdminID   uuid.UUID
	AccountID uuid.UUID
	Reason    string
}

// ArchiveAccountResult reports what the archival unwound.
type ArchiveAccountResult struct {
	Account         *entity.Account
	CancelledOrders int
	RefundTotal     decimal.Decimal
	BundleRevoked   bool
}

// AccountUsecase defines the interface for account and ledger use cases
type AccountUsecase interface {
	// GetAccount retrieves an account's profile and balance.
	GetAccount(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)

	// Topup credits an account balance. Students may top up only their
	// own account; admins may top up any.
	Topup(ctx context.Context, input TopupInput) (*entity.Account, error)

	// Archive retires an account: refunds every cancellable order,
	// deactivates any active bundle, and writes an audit record.
	Archive(ctx context.Context, input ArchiveAccountInput) (*ArchiveAccountResult, error)

	// ListByRole retrieves active accounts holding a role.
	ListByRole(ctx context.Context, role entity.Role) ([]*entity.Account, error)

	// ListArchived retrieves archived accounts with their audit records.
	ListArchived(ctx context.Context) ([]*entity.Account, []*entity.ArchiveLog, error)
}
