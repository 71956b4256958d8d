// Package adapter provides transport-layer abstractions for the three
// remote capabilities the tank-watch client depends on: the hosted auth
// service, the hosted database, and the vision/language model.
//
// Service code never talks to a wire protocol directly; it consumes the
// [AuthAdapter], [RemoteStore], and [AIAdapter] interfaces. The REST
// implementations in this package map transport-level failures to the
// sentinel values defined in errors.go so that callers can use [errors.Is]
// for transport-agnostic error handling (e.g. [ErrTableMissing] for a
// missing relation, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/hmdissanayake/tank-watch/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapters_mock.go -package=mock

// AuthAdapter is the credential-pair capability of the hosted auth service.
type AuthAdapter interface {
	// SignUp registers a new synthetic account and attaches the profile
	// metadata to it. On success the returned session is also cached in
	// the adapter so data-layer requests carry its access token.
	SignUp(ctx context.Context, pair models.CredentialPair, meta models.ProfileMetadata) (models.AuthSession, error)

	// SignInWithPassword authenticates an existing pair. On success the
	// session is cached like in SignUp.
	SignInWithPassword(ctx context.Context, pair models.CredentialPair) (models.AuthSession, error)

	// RefreshSession exchanges the cached refresh token for a fresh
	// session, replacing the cached one. Returns [ErrUnauthorized]
	// (wrapped) when no session is cached or the token was revoked.
	RefreshSession(ctx context.Context) (models.AuthSession, error)

	// SignOut invalidates the cached session server-side and clears it
	// locally. Safe to call without an active session.
	SignOut(ctx context.Context) error

	// Session returns the cached session and whether one is present.
	Session() (models.AuthSession, bool)

	// AccessToken returns the cached bearer token, or "" when signed out.
	// Implements [TokenSource] for the data layer.
	AccessToken() string
}

// TokenSource supplies the bearer token attached to data-layer requests.
// [AuthAdapter] implementations satisfy it.
type TokenSource interface {
	AccessToken() string
}

// RemoteStore is the typed-record capability of the hosted database.
// Two implementations exist: the REST one in this package and a direct
// pgx-backed one in internal/store for deployments with database access.
type RemoteStore interface {
	// ListRecords returns all reservoir entries, newest first.
	// Returns [ErrTableMissing] (wrapped) when the reservoir_entries
	// relation does not exist — a setup problem the dashboard surfaces
	// separately from plain unreachability.
	ListRecords(ctx context.Context) ([]models.ReservoirRecord, error)

	// InsertRecord stores a new reservoir entry.
	InsertRecord(ctx context.Context, record models.ReservoirRecord) error

	// DeleteRecord removes the entry with the given id. Deleting an id
	// that does not exist is not an error.
	DeleteRecord(ctx context.Context, id string) error

	// GetProfile fetches the profiles row for userID.
	// Returns [ErrProfileNotFound] (wrapped) when no row is visible yet,
	// which the profile resolver treats as a retryable race.
	GetProfile(ctx context.Context, userID string) (models.Profile, error)
}

// AIAdapter is the model capability: authorization verdicts for captured
// faces, location verdicts for geofencing, and text insight over metrics.
type AIAdapter interface {
	// AuthorizeFace submits the captured frame and returns the model's
	// constrained-JSON verdict. A rejection is expressed in the verdict,
	// not as an error; errors mean the call itself failed.
	AuthorizeFace(ctx context.Context, image []byte) (models.GateVerdict, error)

	// VerifyLocation asks whether the device position plausibly matches
	// the named reservoir site.
	VerifyLocation(ctx context.Context, position models.Coordinates, siteName string) (models.LocationVerdict, error)

	// SummarizeMetrics produces a short dashboard summary over the given
	// records.
	SummarizeMetrics(ctx context.Context, records []models.ReservoirRecord) (string, error)

	// AnalyzeEntry produces a search-grounded assessment of one reading.
	// The second return value is the first grounding source URL, or ""
	// when the model answered without grounding.
	AnalyzeEntry(ctx context.Context, record models.ReservoirRecord) (analysis string, groundingURL string, err error)
}
