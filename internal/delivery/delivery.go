// Package delivery defines the contract for transport servers started by the application container.
package delivery

import "context"

// Delivery is implemented by every transport server (HTTP API, worker).
// Serve blocks until the server stops or ctx is cancelled.
type Delivery interface {
	Serve(ctx context.Context) error
}
