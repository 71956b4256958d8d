package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/hmdissanayake/tank-watch/internal/logger"
)

type verifyJob struct {
	orchestrator OrchestratorService
	frames       FrameSource
	logger       *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewVerifyJob creates a verifyJob that captures a frame and attempts a
// verification on a ticker. The job is idle until Start is called.
func NewVerifyJob(orchestrator OrchestratorService, frames FrameSource, log *logger.Logger) VerifyJob {
	return &verifyJob{orchestrator: orchestrator, frames: frames, logger: log}
}

// Start implements VerifyJob. It stops any previously running job, then
// launches a background goroutine that owns the camera session for its
// whole lifetime: opened before the first tick, closed when the goroutine
// exits. If interval is zero or negative it defaults to 4 seconds. The
// goroutine exits on successful authentication, on a corrupt vault, when
// ctx is cancelled, or when Stop is called.
func (j *verifyJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 4 * time.Second
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		if err := j.frames.Open(jobCtx); err != nil {
			j.logger.Error().Str("func", "Start").Err(err).Msg("camera session open failed")
			return
		}
		defer func() {
			if err := j.frames.Close(); err != nil {
				j.logger.Warn().Str("func", "Start").Err(err).Msg("camera session close failed")
			}
		}()

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if done := j.attempt(jobCtx); done {
					return
				}
			}
		}
	}()
}

// attempt runs one capture+verify round. It reports true when the job
// should stop ticking: the operator is authenticated or the vault is
// corrupt beyond retrying.
func (j *verifyJob) attempt(ctx context.Context) bool {
	image, err := j.frames.Capture(ctx)
	if err != nil {
		j.logger.Debug().Str("func", "attempt").Err(err).Msg("frame capture failed")
		return false
	}

	_, err = j.orchestrator.Verify(ctx, image)
	switch {
	case err == nil:
		j.logger.Info().Str("func", "attempt").Msg("verification succeeded, job done")
		return true
	case errors.Is(err, ErrVerifyBusy):
		// Overlapping tick; the in-flight attempt wins.
		return false
	case errors.Is(err, ErrVaultCorrupt):
		j.logger.Error().Str("func", "attempt").Err(err).Msg("vault corrupt, re-enrollment required")
		return true
	default:
		j.logger.Debug().Str("func", "attempt").Err(err).Msg("verification attempt failed")
		return false
	}
}

// Stop implements VerifyJob. It cancels the background goroutine's context
// and blocks until the goroutine has fully exited. Safe to call when the
// job is not running (no-op in that case).
func (j *verifyJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
