package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hmdissanayake/tank-watch/internal/logger"
	"github.com/hmdissanayake/tank-watch/internal/mock"
	"github.com/hmdissanayake/tank-watch/models"
)

// newTestOrchestrator wires the orchestrator with mocked collaborators.
func newTestOrchestrator(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*orchestratorService,
	*mock.MockVaultService,
	*mock.MockProfileService,
	*mock.MockGateService,
	*mock.MockAuthAdapter,
	*mock.MockCredentialFactory,
) {
	t.Helper()
	vault := mock.NewMockVaultService(ctrl)
	profiles := mock.NewMockProfileService(ctrl)
	gate := mock.NewMockGateService(ctrl)
	auth := mock.NewMockAuthAdapter(ctrl)
	creds := mock.NewMockCredentialFactory(ctrl)

	svc := NewOrchestratorService(vault, profiles, gate, auth, creds, logger.Nop()).(*orchestratorService)
	return svc, vault, profiles, gate, auth, creds
}

func testSession() models.AuthSession {
	return models.AuthSession{
		UserID:       testUserID,
		AccessToken:  "header.payload.sig",
		RefreshToken: "refresh-token",
		ExpiresAt:    time.Now().Add(time.Hour),
		Metadata:     models.ProfileMetadata{Name: "J. Perera", Role: "ADMIN"},
	}
}

// ── Init ─────────────────────────────────────────────────────────────────────

func TestOrchestrator_Init_VaultPresent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, vault, _, _, auth, _ := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	auth.EXPECT().Session().Return(models.AuthSession{}, false)
	vault.EXPECT().IsEnrolled(ctx).Return(true, nil)

	state, err := svc.Init(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StateVerifying, state)
	assert.Equal(t, models.StateVerifying, svc.State())
}

func TestOrchestrator_Init_VaultAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, vault, _, _, auth, _ := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	auth.EXPECT().Session().Return(models.AuthSession{}, false)
	vault.EXPECT().IsEnrolled(ctx).Return(false, nil)

	state, err := svc.Init(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StateEnrolling, state)
}

func TestOrchestrator_Init_RestoresValidSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, profiles, _, auth, _ := newTestOrchestrator(t, ctrl)
	ctx := context.Background()
	session := testSession()

	want := models.Profile{ID: testUserID, Name: "J. Perera", Role: models.RoleAdmin}

	auth.EXPECT().Session().Return(session, true)
	profiles.EXPECT().Resolve(ctx, testUserID, &session.Metadata).Return(want, nil)

	state, err := svc.Init(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StateAuthenticated, state)

	got, ok := svc.CurrentProfile()
	require.True(t, ok)
	assert.Equal(t, want, got)
}

func TestOrchestrator_Init_RefreshesExpiredSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, profiles, _, auth, _ := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	expired := testSession()
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	fresh := testSession()

	gomock.InOrder(
		auth.EXPECT().Session().Return(expired, true),
		auth.EXPECT().RefreshSession(ctx).Return(fresh, nil),
		profiles.EXPECT().Resolve(ctx, testUserID, &fresh.Metadata).
			Return(models.Profile{ID: testUserID, Role: models.RoleAdmin}, nil),
	)

	state, err := svc.Init(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StateAuthenticated, state)
}

func TestOrchestrator_Init_RefreshFails_FallsBackToVault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, vault, _, _, auth, _ := newTestOrchestrator(t, ctrl)
	ctx := context.Background()

	expired := testSession()
	expired.ExpiresAt = time.Now().Add(-time.Minute)

	gomock.InOrder(
		auth.EXPECT().Session().Return(expired, true),
		auth.EXPECT().RefreshSession(ctx).Return(models.AuthSession{}, errors.New("refresh token revoked")),
		vault.EXPECT().IsEnrolled(ctx).Return(true, nil),
	)

	state, err := svc.Init(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.StateVerifying, state)
}

// ── Enroll ───────────────────────────────────────────────────────────────────

func enrollInput() models.EnrollmentInput {
	return models.EnrollmentInput{
		Name:  "J. Perera",
		Role:  models.RoleAdmin,
		Image: []byte("captured-frame"),
	}
}

func TestOrchestrator_Enroll_HappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, vault, profiles, gate, auth, creds := newTestOrchestrator(t, ctrl)
	svc.setState(models.StateEnrolling, models.Profile{})
	ctx := context.Background()

	input := enrollInput()
	pair := testPair()
	session := testSession()
	want := models.Profile{ID: testUserID, Name: "J. Perera", Role: models.RoleAdmin}

	gomock.InOrder(
		gate.EXPECT().Authorize(ctx, input.Image).Return(models.GateVerdict{Authorized: true}, nil),
		creds.EXPECT().NewPair().Return(pair, nil),
		auth.EXPECT().SignUp(ctx, pair, models.ProfileMetadata{Name: "J. Perera", Role: "ADMIN"}).
			Return(session, nil),
		vault.EXPECT().Stage(ctx, pair).Return(nil),
		auth.EXPECT().SignInWithPassword(ctx, pair).Return(session, nil),
		profiles.EXPECT().Resolve(ctx, testUserID, &session.Metadata).Return(want, nil),
		vault.EXPECT().Commit(ctx).Return(nil),
	)

	got, err := svc.Enroll(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, models.StateAuthenticated, svc.State())
}

func TestOrchestrator_Enroll_WrongState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _, _ := newTestOrchestrator(t, ctrl)
	svc.setState(models.StateVerifying, models.Profile{})

	_, err := svc.Enroll(context.Background(), enrollInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestOrchestrator_Enroll_GateRejects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, gate, _, _ := newTestOrchestrator(t, ctrl)
	svc.setState(models.StateEnrolling, models.Profile{})
	ctx := context.Background()

	gate.EXPECT().Authorize(ctx, gomock.Any()).
		Return(models.GateVerdict{Authorized: false, Reason: "no face detected"}, nil)

	_, err := svc.Enroll(ctx, enrollInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGateRejected)
	assert.Contains(t, err.Error(), "no face detected")
	assert.Equal(t, models.StateEnrolling, svc.State())
}

func TestOrchestrator_Enroll_SignUpFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, gate, auth, creds := newTestOrchestrator(t, ctrl)
	svc.setState(models.StateEnrolling, models.Profile{})
	ctx := context.Background()
	pair := testPair()

	gomock.InOrder(
		gate.EXPECT().Authorize(ctx, gomock.Any()).Return(models.GateVerdict{Authorized: true}, nil),
		creds.EXPECT().NewPair().Return(pair, nil),
		auth.EXPECT().SignUp(ctx, pair, gomock.Any()).
			Return(models.AuthSession{}, errors.New("email rate limit exceeded")),
	)

	_, err := svc.Enroll(ctx, enrollInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEnrollmentFailed)
	assert.Equal(t, models.StateEnrolling, svc.State())
}

// A sign-in failure after the vault write must discard the staged pair,
// otherwise the device would look enrolled with credentials the remote
// side never accepted.
func TestOrchestrator_Enroll_SignInFails_DiscardsStaged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, vault, _, gate, auth, creds := newTestOrchestrator(t, ctrl)
	svc.setState(models.StateEnrolling, models.Profile{})
	ctx := context.Background()
	pair := testPair()
	session := testSession()

	gomock.InOrder(
		gate.EXPECT().Authorize(ctx, gomock.Any()).Return(models.GateVerdict{Authorized: true}, nil),
		creds.EXPECT().NewPair().Return(pair, nil),
		auth.EXPECT().SignUp(ctx, pair, gomock.Any()).Return(session, nil),
		vault.EXPECT().Stage(ctx, pair).Return(nil),
		auth.EXPECT().SignInWithPassword(ctx, pair).
			Return(models.AuthSession{}, errors.New("invalid login credentials")),
		vault.EXPECT().Discard(ctx).Return(nil),
	)

	_, err := svc.Enroll(ctx, enrollInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEnrollmentFailed)
	assert.Equal(t, models.StateEnrolling, svc.State())
}

func TestOrchestrator_Enroll_CommitFails_DiscardsStaged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, vault, profiles, gate, auth, creds := newTestOrchestrator(t, ctrl)
	svc.setState(models.StateEnrolling, models.Profile{})
	ctx := context.Background()
	pair := testPair()
	session := testSession()

	gomock.InOrder(
		gate.EXPECT().Authorize(ctx, gomock.Any()).Return(models.GateVerdict{Authorized: true}, nil),
		creds.EXPECT().NewPair().Return(pair, nil),
		auth.EXPECT().SignUp(ctx, pair, gomock.Any()).Return(session, nil),
		vault.EXPECT().Stage(ctx, pair).Return(nil),
		auth.EXPECT().SignInWithPassword(ctx, pair).Return(session, nil),
		profiles.EXPECT().Resolve(ctx, testUserID, gomock.Any()).
			Return(models.Profile{ID: testUserID}, nil),
		vault.EXPECT().Commit(ctx).Return(errors.New("database is locked")),
		vault.EXPECT().Discard(ctx).Return(nil),
	)

	_, err := svc.Enroll(ctx, enrollInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrEnrollmentFailed)
}

// ── Verify ───────────────────────────────────────────────────────────────────

func TestOrchestrator_Verify_HappyPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, vault, profiles, gate, auth, _ := newTestOrchestrator(t, ctrl)
	svc.setState(models.StateVerifying, models.Profile{})
	ctx := context.Background()
	pair := testPair()
	session := testSession()
	image := []byte("frame")

	want := models.Profile{ID: testUserID, Name: "J. Perera", Role: models.RoleAdmin}

	gomock.InOrder(
		gate.EXPECT().Authorize(ctx, image).Return(models.GateVerdict{Authorized: true}, nil),
		vault.EXPECT().Load(ctx).Return(pair, nil),
		auth.EXPECT().SignInWithPassword(ctx, pair).Return(session, nil),
		profiles.EXPECT().Resolve(ctx, testUserID, &session.Metadata).Return(want, nil),
	)

	got, err := svc.Verify(ctx, image)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, models.StateAuthenticated, svc.State())
}

func TestOrchestrator_Verify_GateRejects_StaysVerifying(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, gate, _, _ := newTestOrchestrator(t, ctrl)
	svc.setState(models.StateVerifying, models.Profile{})
	ctx := context.Background()

	gate.EXPECT().Authorize(ctx, gomock.Any()).
		Return(models.GateVerdict{Authorized: false, Reason: "adjust position"}, nil)

	_, err := svc.Verify(ctx, []byte("frame"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrGateRejected)
	assert.Equal(t, models.StateVerifying, svc.State())
}

func TestOrchestrator_Verify_VaultCorrupt_IsTerminal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, vault, _, gate, _, _ := newTestOrchestrator(t, ctrl)
	svc.setState(models.StateVerifying, models.Profile{})
	ctx := context.Background()

	gomock.InOrder(
		gate.EXPECT().Authorize(ctx, gomock.Any()).Return(models.GateVerdict{Authorized: true}, nil),
		vault.EXPECT().Load(ctx).Return(models.CredentialPair{}, ErrVaultCorrupt),
	)

	_, err := svc.Verify(ctx, []byte("frame"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrVaultCorrupt)
}

func TestOrchestrator_Verify_SignInFails_StaysVerifying(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, vault, _, gate, auth, _ := newTestOrchestrator(t, ctrl)
	svc.setState(models.StateVerifying, models.Profile{})
	ctx := context.Background()
	pair := testPair()

	gomock.InOrder(
		gate.EXPECT().Authorize(ctx, gomock.Any()).Return(models.GateVerdict{Authorized: true}, nil),
		vault.EXPECT().Load(ctx).Return(pair, nil),
		auth.EXPECT().SignInWithPassword(ctx, pair).
			Return(models.AuthSession{}, errors.New("connection reset by peer")),
	)

	_, err := svc.Verify(ctx, []byte("frame"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrVaultCorrupt)
	assert.Equal(t, models.StateVerifying, svc.State())
}

// One verification at a time: a second call while the first is in flight
// is dropped with ErrVerifyBusy.
func TestOrchestrator_Verify_SingleInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, gate, _, _ := newTestOrchestrator(t, ctrl)
	svc.setState(models.StateVerifying, models.Profile{})
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})

	gate.EXPECT().Authorize(ctx, gomock.Any()).DoAndReturn(
		func(context.Context, []byte) (models.GateVerdict, error) {
			close(entered)
			<-release
			return models.GateVerdict{Authorized: false, Reason: "blocked for test"}, nil
		},
	)

	firstDone := make(chan error, 1)
	go func() {
		_, err := svc.Verify(ctx, []byte("frame-1"))
		firstDone <- err
	}()

	<-entered
	_, err := svc.Verify(ctx, []byte("frame-2"))
	assert.ErrorIs(t, err, ErrVerifyBusy)

	close(release)
	require.Error(t, <-firstDone)
}

// ── Reset ────────────────────────────────────────────────────────────────────

func TestOrchestrator_Reset_RequiresConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, _, _, _ := newTestOrchestrator(t, ctrl)

	err := svc.Reset(context.Background(), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrResetNotConfirmed)
}

func TestOrchestrator_Reset_ClearsVaultAndSignsOut(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, vault, _, _, auth, _ := newTestOrchestrator(t, ctrl)
	svc.setState(models.StateAuthenticated, models.Profile{ID: testUserID})
	ctx := context.Background()

	gomock.InOrder(
		vault.EXPECT().Clear(ctx).Return(nil),
		auth.EXPECT().SignOut(ctx).Return(nil),
	)

	require.NoError(t, svc.Reset(ctx, true))
	assert.Equal(t, models.StateEnrolling, svc.State())

	_, ok := svc.CurrentProfile()
	assert.False(t, ok)
}

func TestOrchestrator_Reset_ToleratesSignOutError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, vault, _, _, auth, _ := newTestOrchestrator(t, ctrl)
	svc.setState(models.StateAuthenticated, models.Profile{ID: testUserID})
	ctx := context.Background()

	gomock.InOrder(
		vault.EXPECT().Clear(ctx).Return(nil),
		auth.EXPECT().SignOut(ctx).Return(errors.New("network is unreachable")),
	)

	require.NoError(t, svc.Reset(ctx, true))
	assert.Equal(t, models.StateEnrolling, svc.State())
}
