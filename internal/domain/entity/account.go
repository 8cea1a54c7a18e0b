// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Role identifies what a caller is allowed to do. It is supplied by the
// identity collaborator on every request; the services re-check it.
type Role string

const (
	RoleStudent Role = "student"
	RoleStaff   Role = "staff"
	RoleAdmin   Role = "admin"
)

// AccountState is the explicit lifecycle state of an account.
// Archived accounts keep their history but can no longer transact.
type AccountState string

const (
	AccountActive   AccountState = "active"
	AccountArchived AccountState = "archived"
)

// Account represents a balance-holding user of the canteen.
// Credentials live with the identity collaborator; the core only ever
// reads the profile fields and mutates the balance and lifecycle state.
type Account struct {
	ID         uuid.UUID       `json:"id"`
	FullName   string          `json:"full_name"`
	Email      string          `json:"email"`
	Role       Role            `json:"role"`
	ClassName  string          `json:"class_name,omitempty"`
	Balance    decimal.Decimal `json:"balance"` // must never go negative
	Allergy    string          `json:"allergy,omitempty"`
	State      AccountState    `json:"state"`
	ArchivedAt *time.Time      `json:"archived_at,omitempty"`
	ArchivedBy *uuid.UUID      `json:"archived_by,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// Active reports whether the account may transact.
func (a *Account) Active() bool {
	return a.State == AccountActive
}

// ArchiveLog records an account archival with the refund issued, for audit.
type ArchiveLog struct {
	ID           uuid.UUID       `json:"id"`
	AccountID    uuid.UUID       `json:"account_id"`
	AccountEmail string          `json:"account_email"`
	AccountName  string          `json:"account_name"`
	ActorID      uuid.UUID       `json:"actor_id"`
	RefundAmount decimal.Decimal `json:"refund_amount"`
	Reason       string          `json:"reason,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}
