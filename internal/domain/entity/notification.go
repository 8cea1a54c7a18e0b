package entity

import (
	"time"

	"github.com/google/uuid"
)

// Severity classifies a notification for display purposes.
type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is an in-app message for one account, written after a core
// state transition commits. Delivery to external channels is handled by the
// dispatcher collaborator and is best-effort.
type Notification struct {
	ID        uuid.UUID  `json:"id"`
	AccountID uuid.UUID  `json:"account_id"`
	Severity  Severity   `json:"severity"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Read      bool       `json:"read"`
	OrderID   *uuid.UUID `json:"order_id,omitempty"`
	RequestID *uuid.UUID `json:"request_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
