// Package delivery defines the contract every transport entry point
// (HTTP server, workers) fulfils so main can start them uniformly.
package delivery

import "context"

// Delivery is a runnable transport. Serve blocks until the transport stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
