package workers

import (
	"context"
	"time"
)

// Entry pairs a job with the tick interval it should run at.
type Entry struct {
	Job      Job
	Interval time.Duration
}

// Workers runs a set of background jobs as a unit.
type Workers struct {
	entries []Entry
}

// New returns a Workers aggregate over the given entries.
func New(entries ...Entry) *Workers {
	return &Workers{entries: entries}
}

// Start launches every job in registration order.
func (w *Workers) Start(ctx context.Context) {
	for _, e := range w.entries {
		e.Job.Start(ctx, e.Interval)
	}
}

// Stop stops every job in reverse registration order and blocks until all
// have exited.
func (w *Workers) Stop() {
	for i := len(w.entries) - 1; i >= 0; i-- {
		w.entries[i].Job.Stop()
	}
}
