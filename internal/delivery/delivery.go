// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a running transport (HTTP server, worker, ...) managed by the
// application lifecycle.
type Delivery interface {
	// Serve blocks until the transport stops or the context is cancelled.
	Serve(ctx context.Context) error
}
