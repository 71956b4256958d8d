// Package service contains the client-side business logic of tank-watch:
// the device vault, the profile resolver, the biometric gate, the
// enrollment/login orchestrator, the reservoir data service with its local
// cache fallback, and the background verify and reconcile jobs.
//
// Services depend only on the interfaces of internal/adapter and
// internal/store, never on a concrete transport or database.
package service

import (
	"context"
	"time"

	"github.com/hmdissanayake/tank-watch/internal/store"
	"github.com/hmdissanayake/tank-watch/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// VaultService is the device-bound credential vault. The presence of the
// committed blob is the sole signal that the device is enrolled.
type VaultService interface {
	// IsEnrolled reports whether a committed credential blob exists.
	IsEnrolled(ctx context.Context) (bool, error)

	// Store persists the pair as the committed blob, replacing any
	// previous one.
	Store(ctx context.Context, pair models.CredentialPair) error

	// Load returns the committed pair. Returns [ErrVaultEmpty] when no
	// blob exists and [ErrVaultCorrupt] when the blob fails to decode.
	Load(ctx context.Context) (models.CredentialPair, error)

	// Clear removes the committed blob and any staged one. Only the
	// explicit, operator-confirmed reset path calls it.
	Clear(ctx context.Context) error

	// Stage writes the pair to a staging slot without touching the
	// committed blob. Enrollment stages first and commits only after the
	// post-registration sign-in succeeds, so a late failure never leaves
	// credentials the remote side does not accept.
	Stage(ctx context.Context, pair models.CredentialPair) error

	// Commit promotes the staged pair to the committed blob and clears
	// the staging slot. Returns [ErrNoStagedCredentials] when nothing is
	// staged.
	Commit(ctx context.Context) error

	// Discard drops the staged pair, if any.
	Discard(ctx context.Context) error
}

// ProfileService resolves the operator profile for an authenticated user.
type ProfileService interface {
	// Resolve polls the remote profiles table for userID with a short
	// fixed backoff, because the row is created by a trigger and may lag
	// the sign-up by a moment. When all attempts fail and fallback
	// metadata is available, a degraded profile is synthesized from it
	// with the role defaulting to DATA_ENTRY_WORKER; otherwise
	// [ErrProfileUnavailable] is returned.
	Resolve(ctx context.Context, userID string, fallback *models.ProfileMetadata) (models.Profile, error)
}

// GateService is the biometric gate in front of every credential use.
type GateService interface {
	// Authorize submits a captured frame for a model verdict. A negative
	// verdict is returned in the value, not as an error.
	Authorize(ctx context.Context, image []byte) (models.GateVerdict, error)
}

// OrchestratorService drives the device lifecycle
// StateUninitialized → {StateEnrolling | StateVerifying} →
// StateAuthenticated.
type OrchestratorService interface {
	// Init determines the starting state: a still-usable cached session
	// restores StateAuthenticated directly, otherwise vault presence
	// selects StateVerifying and absence StateEnrolling.
	Init(ctx context.Context) (models.AuthState, error)

	// State returns the current lifecycle state.
	State() models.AuthState

	// CurrentProfile returns the resolved profile while authenticated.
	CurrentProfile() (models.Profile, bool)

	// Enroll performs the first-run flow: gate authorization, synthetic
	// credential generation, remote sign-up, staged vault write, sign-in
	// with profile resolution, and finally the vault commit. Any failure
	// after staging discards the staged pair, so the flow either
	// completes fully or leaves the device unenrolled. Soft gate
	// rejections wrap [ErrGateRejected]; everything else wraps
	// [ErrEnrollmentFailed] and keeps the state at StateEnrolling.
	Enroll(ctx context.Context, input models.EnrollmentInput) (models.Profile, error)

	// Verify performs one login attempt: gate authorization, vault load,
	// remote sign-in, profile resolution. Gate rejections and transient
	// remote failures are soft and leave the state at StateVerifying;
	// [ErrVaultCorrupt] is terminal and requires a re-enroll. At most one
	// attempt runs at a time; overlapping calls return [ErrVerifyBusy].
	Verify(ctx context.Context, image []byte) (models.Profile, error)

	// Reset clears the vault and signs out, returning the device to
	// StateEnrolling. Requires confirmed=true; the remote account is
	// intentionally left orphaned.
	Reset(ctx context.Context, confirmed bool) error
}

// DataService manages reservoir entries across the remote database and the
// device-local cache.
type DataService interface {
	// List reads entries remote-first and falls back to the cache on any
	// remote failure, flagging the missing-table case separately.
	List(ctx context.Context) (models.ListResult, error)

	// Search lists cached entries matching the filter, for browsing
	// while offline.
	Search(ctx context.Context, filter store.ListFilter) ([]models.ReservoirRecord, error)

	// Add validates the record, optionally gates it on a geofence
	// verdict for the reported device position, inserts it remotely
	// best-effort, and always mirrors it into the local cache. A failed
	// remote insert is queued for replay by the reconcile job.
	Add(ctx context.Context, record models.ReservoirRecord, position *models.Coordinates) error

	// Delete removes the entry remotely best-effort and always from the
	// cache. A failed remote delete is queued for replay.
	Delete(ctx context.Context, id string) error

	// Reconcile replays queued remote writes oldest-first, stopping at
	// the first failure so order is preserved.
	Reconcile(ctx context.Context) error
}

// InsightService produces model-generated text over reservoir data.
type InsightService interface {
	// Summarize returns a short dashboard summary over the records.
	Summarize(ctx context.Context, records []models.ReservoirRecord) (string, error)

	// AnalyzeEntry asks the model for a search-grounded assessment of a
	// single reading and returns the record with its analysis and
	// grounding-URL fields populated. The enriched record is mirrored
	// into the cache so the assessment survives offline.
	AnalyzeEntry(ctx context.Context, record models.ReservoirRecord) (models.ReservoirRecord, error)
}

// FrameSource delivers captured camera frames to the verify job. The job
// owns the session: Open before the first Capture, Close when the job
// stops.
type FrameSource interface {
	// Open acquires the camera session.
	Open(ctx context.Context) error

	// Capture returns one frame as JPEG or PNG bytes.
	Capture(ctx context.Context) ([]byte, error)

	// Close releases the camera session.
	Close() error
}

// VerifyJob is the background worker that periodically captures a frame
// and attempts verification while the device is in StateVerifying.
type VerifyJob interface {
	// Start launches the background goroutine, capturing and verifying
	// every interval until authentication succeeds, a terminal error
	// occurs, ctx is cancelled, or Stop is called. Any previously
	// running job is stopped first.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and blocks until it has.
	Stop()
}

// ReconcileJob is the background worker that periodically replays queued
// remote writes.
type ReconcileJob interface {
	// Start launches the background goroutine, reconciling every
	// interval until ctx is cancelled or Stop is called.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and blocks until it has.
	Stop()
}
