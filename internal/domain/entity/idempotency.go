package entity

import (
	"time"

	"github.com/google/uuid"
)

// IdempotencyKind names the mutating operation a key protects.
type IdempotencyKind string

const (
	IdemPurchaseSlot   IdempotencyKind = "purchase_slot"
	IdemPurchaseBundle IdempotencyKind = "purchase_bundle"
	IdemCancelOrder    IdempotencyKind = "cancel_order"
	IdemCancelBundle   IdempotencyKind = "cancel_bundle"
)

// IdempotencyRecord pins a client-supplied key to the entity a mutating
// request produced. A retry carrying the same key returns the recorded
// result instead of debiting or refunding a second time. The record is
// written inside the same transaction as the mutation it guards.
type IdempotencyRecord struct {
	Key         string          `json:"key"` // unique
	Kind        IdempotencyKind `json:"kind"`
	AccountID   uuid.UUID       `json:"account_id"`
	ReferenceID uuid.UUID       `json:"reference_id"`
	CreatedAt   time.Time       `json:"created_at"`
}
