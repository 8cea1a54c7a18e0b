// Package delivery defines the transport-agnostic server contract.
package delivery

import "context"

// Delivery is a server that accepts requests until its context ends.
type Delivery interface {
	Serve(ctx context.Context) error
}
