package service

import (
	"context"
	"sync"
	"time"

	"github.com/hmdissanayake/tank-watch/internal/logger"
)

type reconcileJob struct {
	data   DataService
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewReconcileJob creates a reconcileJob that replays queued remote writes
// on a ticker. The job is idle until Start is called.
func NewReconcileJob(data DataService, log *logger.Logger) ReconcileJob {
	return &reconcileJob{data: data, logger: log}
}

// Start implements ReconcileJob. It stops any previously running job, then
// launches a background goroutine that calls Reconcile every interval. If
// interval is zero or negative it defaults to 1 minute. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *reconcileJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.data.Reconcile(jobCtx); err != nil {
					j.logger.Debug().Str("func", "Start").Err(err).Msg("reconcile pass incomplete")
				}
			}
		}
	}()
}

// Stop implements ReconcileJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call
// when the job is not running.
func (j *reconcileJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
