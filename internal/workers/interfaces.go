// Package workers groups the client's background jobs behind a single
// start/stop lifecycle so the application runtime can manage them as one
// unit.
package workers

import (
	"context"
	"time"
)

// Job is a background worker with a ticker-driven lifecycle. The service
// layer's verify and reconcile jobs satisfy it.
type Job interface {
	// Start launches the job's goroutine, ticking every interval until
	// ctx is cancelled or Stop is called.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and blocks until it has.
	Stop()
}
