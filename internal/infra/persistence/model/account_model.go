// Package model contains the GORM-specific structs for the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountModel is the GORM-specific struct for the 'accounts' table.
// Credentials are not stored here; the identity collaborator owns them.
type AccountModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	FullName   string          `gorm:"type:text;not null"`
	Email      string          `gorm:"type:text;not null;uniqueIndex"`
	Role       string          `gorm:"type:text;not null;index"`
	ClassName  string          `gorm:"type:text"`
	Balance    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Allergy    string          `gorm:"type:text"`
	State      string          `gorm:"type:text;not null;default:'active';index"`
	ArchivedAt *time.Time
	ArchivedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}

// ArchiveLogModel is the GORM-specific struct for the 'archive_logs' table.
// One row per account archival, written in the archiving transaction.
type ArchiveLogModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	AccountEmail string          `gorm:"type:text;not null"`
	AccountName  string          `gorm:"type:text;not null"`
	ActorID      uuid.UUID       `gorm:"type:uuid;not null"`
	RefundAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Reason       string          `gorm:"type:text"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ArchiveLogModel) TableName() string {
	return "archive_logs"
}
