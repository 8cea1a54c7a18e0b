package entity

import (
	"time"

	"github.com/google/uuid"
)

// RequestStatus is the approval state of a purchase request.
type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// PurchaseRequest is a staff request to replenish one ingredient. Approval
// is the only procurement path that credits stock, and it fires exactly once:
// a request leaves Pending at most one time.
type PurchaseRequest struct {
	ID             uuid.UUID     `json:"id"`
	RequesterID    uuid.UUID     `json:"requester_id"`
	IngredientName string        `json:"ingredient_name"`
	Quantity       float64       `json:"quantity"`
	Unit           string        `json:"unit"`
	Status         RequestStatus `json:"status"`
	DecidedBy      *uuid.UUID    `json:"decided_by,omitempty"`
	DecidedAt      *time.Time    `json:"decided_at,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
}

// WriteOff is a manual stock decrement with an audit trail, independent of
// any order.
type WriteOff struct {
	ID           uuid.UUID `json:"id"`
	IngredientID uuid.UUID `json:"ingredient_id"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	Reason       string    `json:"reason"`
	ActorID      uuid.UUID `json:"actor_id"`
	CreatedAt    time.Time `json:"created_at"`
}
