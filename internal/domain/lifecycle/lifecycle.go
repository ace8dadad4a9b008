// Package lifecycle holds process-wide start and stop bounds.
package lifecycle

import "time"

// DefaultTimeout bounds each start hook and the graceful shutdown of servers.
const DefaultTimeout = 10 * time.Second
