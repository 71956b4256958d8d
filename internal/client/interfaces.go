package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until ctx is
	// cancelled or a fatal error occurs.
	Run(ctx context.Context) error
}
