// Package lifecycle holds shared constants for component start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds graceful startup and shutdown of deliveries and
// infrastructure clients.
const DefaultTimeout = 10 * time.Second
