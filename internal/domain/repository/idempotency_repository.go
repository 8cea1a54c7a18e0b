package repository

import (
	"context"

	"canteen/internal/domain/entity"
	"canteen/internal/errors"
)

// Domain-specific errors for idempotency persistence.
var (
	// ErrIdempotencyKeyNotFound is returned when no record exists for a key.
	ErrIdempotencyKeyNotFound = errors.New("idempotency key not found")
	// ErrDuplicateIdempotencyKey is returned when a key is inserted twice.
	ErrDuplicateIdempotencyKey = errors.New("duplicate idempotency key")
)

// IdempotencyRepository defines idempotency-key database operations.
// Keys are recorded inside the same transaction as the operation they
// guard, so a replayed request sees the stored reference.
type IdempotencyRepository interface {
	// FindByKey retrieves the record stored under a key.
	FindByKey(ctx context.Context, key string) (*entity.IdempotencyRecord, error)

	// Create persists a new idempotency record. Returns
	// ErrDuplicateIdempotencyKey when the key already exists.
	Create(ctx context.Context, rec *entity.IdempotencyRecord) error
}
