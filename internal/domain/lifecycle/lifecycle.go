// Package lifecycle holds shared timeouts for start/stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of infrastructure
// components (HTTP server drain, DB pool close, publisher flush).
const DefaultTimeout = 15 * time.Second
