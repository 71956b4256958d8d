package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmdissanayake/tank-watch/internal/logger"
	"github.com/hmdissanayake/tank-watch/models"
)

// spyFrameSource counts camera session calls and serves a fixed frame.
type spyFrameSource struct {
	opens    atomic.Int64
	closes   atomic.Int64
	captures atomic.Int64

	openErr    error
	captureErr error
}

func (s *spyFrameSource) Open(context.Context) error {
	s.opens.Add(1)
	return s.openErr
}

func (s *spyFrameSource) Capture(context.Context) ([]byte, error) {
	s.captures.Add(1)
	if s.captureErr != nil {
		return nil, s.captureErr
	}
	return []byte("frame"), nil
}

func (s *spyFrameSource) Close() error {
	s.closes.Add(1)
	return nil
}

// spyOrchestrator counts Verify calls and returns a scripted error.
type spyOrchestrator struct {
	calls atomic.Int64
	err   error
}

func (s *spyOrchestrator) Init(context.Context) (models.AuthState, error) {
	return models.StateVerifying, nil
}

func (s *spyOrchestrator) State() models.AuthState { return models.StateVerifying }

func (s *spyOrchestrator) CurrentProfile() (models.Profile, bool) {
	return models.Profile{}, false
}

func (s *spyOrchestrator) Enroll(context.Context, models.EnrollmentInput) (models.Profile, error) {
	return models.Profile{}, nil
}

func (s *spyOrchestrator) Verify(context.Context, []byte) (models.Profile, error) {
	s.calls.Add(1)
	return models.Profile{}, s.err
}

func (s *spyOrchestrator) Reset(context.Context, bool) error { return nil }

// ── Start / Stop ─────────────────────────────────────────────────────────────

func TestVerifyJob_Start_TicksUntilSuccess(t *testing.T) {
	orch := &spyOrchestrator{} // Verify succeeds immediately
	frames := &spyFrameSource{}
	job := NewVerifyJob(orch, frames, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	// First successful verification ends the job; later ticks must not
	// call Verify again.
	assert.Equal(t, int64(1), orch.calls.Load())
	assert.Equal(t, int64(1), frames.opens.Load())
	assert.Equal(t, int64(1), frames.closes.Load())
}

func TestVerifyJob_SoftFailures_KeepTicking(t *testing.T) {
	orch := &spyOrchestrator{err: ErrGateRejected}
	frames := &spyFrameSource{}
	job := NewVerifyJob(orch, frames, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := orch.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "soft failure keeps the job polling, got %d calls", got)
}

func TestVerifyJob_VaultCorrupt_StopsTicking(t *testing.T) {
	orch := &spyOrchestrator{err: ErrVaultCorrupt}
	frames := &spyFrameSource{}
	job := NewVerifyJob(orch, frames, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(1), orch.calls.Load(), "corrupt vault is terminal, no retries")
	assert.Equal(t, int64(1), frames.closes.Load())
}

func TestVerifyJob_BusyTicks_AreDropped(t *testing.T) {
	orch := &spyOrchestrator{err: ErrVerifyBusy}
	frames := &spyFrameSource{}
	job := NewVerifyJob(orch, frames, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	// Busy results do not end the job; ticks keep coming.
	assert.Greater(t, orch.calls.Load(), int64(1))
}

func TestVerifyJob_CaptureFailure_SkipsVerify(t *testing.T) {
	orch := &spyOrchestrator{}
	frames := &spyFrameSource{captureErr: assert.AnError}
	job := NewVerifyJob(orch, frames, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.Greater(t, frames.captures.Load(), int64(0))
	assert.Equal(t, int64(0), orch.calls.Load(), "no frame, no verify call")
}

func TestVerifyJob_OpenFailure_ExitsWithoutTicking(t *testing.T) {
	orch := &spyOrchestrator{}
	frames := &spyFrameSource{openErr: assert.AnError}
	job := NewVerifyJob(orch, frames, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(35 * time.Millisecond)
	job.Stop()

	assert.Equal(t, int64(0), frames.captures.Load())
	assert.Equal(t, int64(0), frames.closes.Load(), "session never opened, nothing to close")
}

func TestVerifyJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewVerifyJob(&spyOrchestrator{}, &spyFrameSource{}, logger.Nop())
	assert.NotPanics(t, func() { job.Stop() })
}

func TestVerifyJob_DoubleStop_NoPanic(t *testing.T) {
	orch := &spyOrchestrator{err: ErrGateRejected}
	job := NewVerifyJob(orch, &spyFrameSource{}, logger.Nop())

	job.Start(context.Background(), 10*time.Millisecond)
	job.Stop()
	assert.NotPanics(t, func() { job.Stop() })
}

func TestVerifyJob_Start_DefaultInterval(t *testing.T) {
	orch := &spyOrchestrator{}
	job := NewVerifyJob(orch, &spyFrameSource{}, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	// interval <= 0 defaults to 4s, so nothing fires within 20ms
	job.Start(ctx, 0)
	time.Sleep(20 * time.Millisecond)
	cancel()
	job.Stop()

	assert.Equal(t, int64(0), orch.calls.Load())
}

func TestVerifyJob_ContextCancel_StopsJob(t *testing.T) {
	orch := &spyOrchestrator{err: ErrGateRejected}
	job := NewVerifyJob(orch, &spyFrameSource{}, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		job.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after context cancellation")
	}
}

func TestVerifyJob_Restart_StopsPrevious(t *testing.T) {
	orch := &spyOrchestrator{err: ErrGateRejected}
	frames := &spyFrameSource{}
	job := NewVerifyJob(orch, frames, logger.Nop())
	ctx := context.Background()

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	callsBefore := orch.calls.Load()
	require.Greater(t, callsBefore, int64(0))

	job.Start(ctx, 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	job.Stop()

	assert.Greater(t, orch.calls.Load(), callsBefore)
	// Each Start opens a fresh camera session after closing the old one.
	assert.Equal(t, int64(2), frames.opens.Load())
	assert.Equal(t, int64(2), frames.closes.Load())
}
