package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hmdissanayake/tank-watch/internal/adapter"
	"github.com/hmdissanayake/tank-watch/internal/crypto"
	"github.com/hmdissanayake/tank-watch/internal/logger"
	"github.com/hmdissanayake/tank-watch/models"
)

type orchestratorService struct {
	vault    VaultService
	profiles ProfileService
	gate     GateService
	auth     adapter.AuthAdapter
	creds    crypto.CredentialFactory
	logger   *logger.Logger

	mu      sync.RWMutex
	state   models.AuthState
	profile models.Profile

	// verifyMu admits one verification attempt at a time; overlapping
	// ticks from the verify job are dropped via TryLock.
	verifyMu sync.Mutex
}

// NewOrchestratorService builds the lifecycle state machine. The returned
// service starts in StateUninitialized; call Init before anything else.
func NewOrchestratorService(
	vault VaultService,
	profiles ProfileService,
	gate GateService,
	auth adapter.AuthAdapter,
	creds crypto.CredentialFactory,
	log *logger.Logger,
) OrchestratorService {
	return &orchestratorService{
		vault:    vault,
		profiles: profiles,
		gate:     gate,
		auth:     auth,
		creds:    creds,
		logger:   log,
		state:    models.StateUninitialized,
	}
}

func (o *orchestratorService) State() models.AuthState {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.state
}

func (o *orchestratorService) CurrentProfile() (models.Profile, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.profile, o.state == models.StateAuthenticated
}

func (o *orchestratorService) Init(ctx context.Context) (models.AuthState, error) {
	if state, ok := o.tryRestoreSession(ctx); ok {
		return state, nil
	}

	enrolled, err := o.vault.IsEnrolled(ctx)
	if err != nil {
		return models.StateUninitialized, fmt.Errorf("inspect vault: %w", err)
	}

	next := models.StateEnrolling
	if enrolled {
		next = models.StateVerifying
	}
	o.setState(next, models.Profile{})

	o.logger.Info().Str("func", "Init").Str("state", string(next)).Msg("lifecycle initialised")
	return next, nil
}

// tryRestoreSession reuses a cached session instead of forcing a biometric
// round-trip: a still-valid token is used as is, an expired one is
// refreshed once. Any failure falls through to vault-based init.
func (o *orchestratorService) tryRestoreSession(ctx context.Context) (models.AuthState, bool) {
	session, ok := o.auth.Session()
	if !ok {
		return models.StateUninitialized, false
	}

	if !session.Valid() {
		refreshed, err := o.auth.RefreshSession(ctx)
		if err != nil {
			o.logger.Debug().Str("func", "Init").Err(err).Msg("session refresh failed")
			return models.StateUninitialized, false
		}
		session = refreshed
	}

	profile, err := o.profiles.Resolve(ctx, session.UserID, &session.Metadata)
	if err != nil {
		o.logger.Debug().Str("func", "Init").Err(err).Msg("profile resolve on restore failed")
		return models.StateUninitialized, false
	}

	o.setState(models.StateAuthenticated, profile)
	o.logger.Info().Str("func", "Init").Str("user_id", session.UserID).Msg("session restored")
	return models.StateAuthenticated, true
}

func (o *orchestratorService) Enroll(ctx context.Context, input models.EnrollmentInput) (models.Profile, error) {
	if s := o.State(); s != models.StateEnrolling {
		return models.Profile{}, fmt.Errorf("%w: enroll from %s", ErrInvalidState, s)
	}

	verdict, err := o.gate.Authorize(ctx, input.Image)
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: %v", ErrEnrollmentFailed, err)
	}
	if !verdict.Authorized {
		return models.Profile{}, fmt.Errorf("%w: %s", ErrGateRejected, verdict.Reason)
	}

	pair, err := o.creds.NewPair()
	if err != nil {
		return models.Profile{}, fmt.Errorf("%w: generate credentials: %v", ErrEnrollmentFailed, err)
	}

	meta := models.ProfileMetadata{
		Name:      input.Name,
		Role:      string(input.Role),
		AvatarURL: input.AvatarURL,
	}
	if _, err = o.auth.SignUp(ctx, pair, meta); err != nil {
		return models.Profile{}, fmt.Errorf("%w: sign up: %v", ErrEnrollmentFailed, err)
	}

	if err = o.vault.Stage(ctx, pair); err != nil {
		return models.Profile{}, fmt.Errorf("%w: stage vault: %v", ErrEnrollmentFailed, err)
	}

	// From here on a failure must discard the staged pair, otherwise a
	// half-enrolled device would look enrolled on the next start.
	session, err := o.auth.SignInWithPassword(ctx, pair)
	if err != nil {
		o.discardStaged(ctx)
		return models.Profile{}, fmt.Errorf("%w: post-enrollment sign in: %v", ErrEnrollmentFailed, err)
	}

	profile, err := o.profiles.Resolve(ctx, session.UserID, &session.Metadata)
	if err != nil {
		o.discardStaged(ctx)
		return models.Profile{}, fmt.Errorf("%w: resolve profile: %v", ErrEnrollmentFailed, err)
	}

	if err = o.vault.Commit(ctx); err != nil {
		o.discardStaged(ctx)
		return models.Profile{}, fmt.Errorf("%w: commit vault: %v", ErrEnrollmentFailed, err)
	}

	o.setState(models.StateAuthenticated, profile)
	o.logger.Info().
		Str("func", "Enroll").
		Str("user_id", session.UserID).
		Str("role", string(profile.Role)).
		Msg("device enrolled")

	return profile, nil
}

func (o *orchestratorService) Verify(ctx context.Context, image []byte) (models.Profile, error) {
	if !o.verifyMu.TryLock() {
		return models.Profile{}, ErrVerifyBusy
	}
	defer o.verifyMu.Unlock()

	if s := o.State(); s != models.StateVerifying {
		return models.Profile{}, fmt.Errorf("%w: verify from %s", ErrInvalidState, s)
	}

	verdict, err := o.gate.Authorize(ctx, image)
	if err != nil {
		// Transient model failure; the next tick retries.
		return models.Profile{}, fmt.Errorf("gate call during verify: %w", err)
	}
	if !verdict.Authorized {
		return models.Profile{}, fmt.Errorf("%w: %s", ErrGateRejected, verdict.Reason)
	}

	pair, err := o.vault.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrVaultCorrupt) {
			// Terminal: only a confirmed reset and re-enrollment recovers.
			return models.Profile{}, err
		}
		return models.Profile{}, fmt.Errorf("load vault during verify: %w", err)
	}

	session, err := o.auth.SignInWithPassword(ctx, pair)
	if err != nil {
		return models.Profile{}, fmt.Errorf("sign in during verify: %w", err)
	}

	profile, err := o.profiles.Resolve(ctx, session.UserID, &session.Metadata)
	if err != nil {
		return models.Profile{}, fmt.Errorf("resolve profile during verify: %w", err)
	}

	o.setState(models.StateAuthenticated, profile)
	o.logger.Info().
		Str("func", "Verify").
		Str("user_id", session.UserID).
		Msg("operator verified")

	return profile, nil
}

func (o *orchestratorService) Reset(ctx context.Context, confirmed bool) error {
	if !confirmed {
		return ErrResetNotConfirmed
	}

	if err := o.vault.Clear(ctx); err != nil {
		return fmt.Errorf("clear vault on reset: %w", err)
	}

	// The remote account stays orphaned on purpose: credentials are
	// synthetic and unrecoverable once the vault is gone.
	if err := o.auth.SignOut(ctx); err != nil {
		o.logger.Warn().Str("func", "Reset").Err(err).Msg("remote sign-out failed")
	}

	o.setState(models.StateEnrolling, models.Profile{})
	o.logger.Info().Str("func", "Reset").Msg("device reset to enrolling")
	return nil
}

func (o *orchestratorService) discardStaged(ctx context.Context) {
	if err := o.vault.Discard(ctx); err != nil {
		o.logger.Error().Str("func", "Enroll").Err(err).Msg("discard staged credentials failed")
	}
}

func (o *orchestratorService) setState(state models.AuthState, profile models.Profile) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.state = state
	o.profile = profile
}
