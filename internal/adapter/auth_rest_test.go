package adapter

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hmdissanayake/tank-watch/internal/config"
	"github.com/hmdissanayake/tank-watch/internal/logger"
	"github.com/hmdissanayake/tank-watch/models"
)

// unsignedToken builds a syntactically valid JWT carrying the given subject.
// The adapter never verifies signatures, so "signature" is fine.
func unsignedToken(t *testing.T, sub string) string {
	t.Helper()
	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	payload := base64.RawURLEncoding.EncodeToString([]byte(fmt.Sprintf(`{"sub":%q}`, sub)))
	return header + "." + payload + ".signature"
}

func newTestAuthAdapter(t *testing.T, serverURL string) *restAuthAdapter {
	t.Helper()
	cfg := config.Remote{
		BaseURL:        serverURL,
		APIKey:         "test-api-key",
		RequestTimeout: 5 * time.Second,
	}

	a, err := NewRESTAuthAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*restAuthAdapter)
}

// ── SignUp ──────────────────────────────────────────────────────────────────

func TestSignUp_Success(t *testing.T) {
	pair := models.CredentialPair{Email: "device-1-abc@device.tankwatch.invalid", Password: "secret"}
	meta := models.ProfileMetadata{Name: "J. Perera", Role: "ADMIN"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/v1/signup", r.URL.Path)
		assert.Equal(t, "test-api-key", r.Header.Get("apikey"))

		var body struct {
			Email    string                 `json:"email"`
			Password string                 `json:"password"`
			Data     models.ProfileMetadata `json:"data"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, pair.Email, body.Email)
		assert.Equal(t, "J. Perera", body.Data.Name)
		assert.Equal(t, "ADMIN", body.Data.Role)

		resp := authResponse{
			AccessToken:  unsignedToken(t, "user-uuid-1"),
			RefreshToken: "refresh-1",
			ExpiresIn:    3600,
			User:         authUser{ID: "user-uuid-1", UserMetadata: meta},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	a := newTestAuthAdapter(t, srv.URL)
	session, err := a.SignUp(context.Background(), pair, meta)

	require.NoError(t, err)
	assert.Equal(t, "user-uuid-1", session.UserID)
	assert.Equal(t, "J. Perera", session.Metadata.Name)
	assert.True(t, session.Valid())
	assert.NotEmpty(t, a.AccessToken())
}

func TestSignUp_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"Database error saving new user"}`))
	}))
	defer srv.Close()

	a := newTestAuthAdapter(t, srv.URL)
	_, err := a.SignUp(context.Background(), models.CredentialPair{Email: "x", Password: "y"}, models.ProfileMetadata{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
	assert.Empty(t, a.AccessToken())
}

// ── SignInWithPassword ──────────────────────────────────────────────────────

func TestSignInWithPassword_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))

		resp := authResponse{
			AccessToken: unsignedToken(t, "user-uuid-2"),
			ExpiresIn:   3600,
			User:        authUser{ID: "user-uuid-2"},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	a := newTestAuthAdapter(t, srv.URL)
	session, err := a.SignInWithPassword(context.Background(), models.CredentialPair{Email: "x", Password: "y"})

	require.NoError(t, err)
	assert.Equal(t, "user-uuid-2", session.UserID)

	cached, ok := a.Session()
	assert.True(t, ok)
	assert.Equal(t, session.UserID, cached.UserID)
}

func TestSignInWithPassword_BadCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Invalid login credentials"}`))
	}))
	defer srv.Close()

	a := newTestAuthAdapter(t, srv.URL)
	_, err := a.SignInWithPassword(context.Background(), models.CredentialPair{Email: "x", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
}

// ── RefreshSession ──────────────────────────────────────────────────────────

func TestRefreshSession_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "refresh_token", r.URL.Query().Get("grant_type"))

		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "refresh-old", body.RefreshToken)

		resp := authResponse{
			AccessToken:  unsignedToken(t, "user-uuid-3"),
			RefreshToken: "refresh-new",
			ExpiresIn:    3600,
			User:         authUser{ID: "user-uuid-3"},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	a := newTestAuthAdapter(t, srv.URL)
	a.setSession(models.AuthSession{
		UserID:       "user-uuid-3",
		AccessToken:  "stale",
		RefreshToken: "refresh-old",
		ExpiresAt:    time.Now().Add(-time.Minute),
	})

	session, err := a.RefreshSession(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "user-uuid-3", session.UserID)
	assert.Equal(t, "refresh-new", session.RefreshToken)
	assert.True(t, session.Valid())

	cached, ok := a.Session()
	assert.True(t, ok)
	assert.Equal(t, "refresh-new", cached.RefreshToken)
}

func TestRefreshSession_NoCachedSession(t *testing.T) {
	a := newTestAuthAdapter(t, "http://localhost:1")

	_, err := a.RefreshSession(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRefreshSession_TokenRevoked(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid Refresh Token"}`))
	}))
	defer srv.Close()

	a := newTestAuthAdapter(t, srv.URL)
	a.setSession(models.AuthSession{UserID: "u", RefreshToken: "revoked"})

	_, err := a.RefreshSession(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── SignOut ─────────────────────────────────────────────────────────────────

func TestSignOut_ClearsSessionEvenWithoutOne(t *testing.T) {
	a := newTestAuthAdapter(t, "http://localhost:1")

	// No session cached: must not hit the network at all.
	require.NoError(t, a.SignOut(context.Background()))

	_, ok := a.Session()
	assert.False(t, ok)
}

func TestSessionFromResponse_NoToken(t *testing.T) {
	a := newTestAuthAdapter(t, "http://localhost:1")

	_, err := a.sessionFromResponse([]byte(`{"user":{"id":"u"}}`))
	require.Error(t, err)
}
