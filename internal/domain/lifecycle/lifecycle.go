// Package lifecycle holds shared shutdown constants.
package lifecycle

import "time"

// DefaultTimeout bounds graceful-shutdown work during fx OnStop hooks.
const DefaultTimeout = 10 * time.Second
