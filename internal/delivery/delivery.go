// Package delivery defines the contract every transport entrypoint satisfies.
package delivery

import "context"

// Delivery is a running entrypoint, e.g. the HTTP server.
type Delivery interface {
	Serve(ctx context.Context) error
}
