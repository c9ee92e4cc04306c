// Package delivery defines the contract every transport surface implements.
package delivery

import "context"

// Delivery is a long-running transport (HTTP server, worker, ...) started
// by the entry point and stopped through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
