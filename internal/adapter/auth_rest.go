package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/hmdissanayake/tank-watch/internal/config"
	"github.com/hmdissanayake/tank-watch/internal/logger"
	"github.com/hmdissanayake/tank-watch/models"
)

type restAuthAdapter struct {
	client *resty.Client
	apiKey string

	mu      sync.RWMutex
	session models.AuthSession
	active  bool

	logger *logger.Logger
}

// NewRESTAuthAdapter constructs the REST implementation of [AuthAdapter]
// against the hosted auth endpoint under cfg.BaseURL. Every request carries
// the project API key; authenticated requests additionally carry the cached
// session's bearer token.
//
// Returns an error if cfg.BaseURL is empty.
func NewRESTAuthAdapter(cfg config.Remote, log *logger.Logger) (AuthAdapter, error) {
	if strings.TrimSpace(cfg.BaseURL) == "" {
		return nil, errors.New("empty remote base url")
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout).
		SetHeader("apikey", cfg.APIKey)

	return &restAuthAdapter{client: cli, apiKey: cfg.APIKey, logger: log}, nil
}

// authResponse is the wire shape of a successful sign-up or token exchange.
type authResponse struct {
	AccessToken  string   `json:"access_token"`
	RefreshToken string   `json:"refresh_token"`
	ExpiresIn    int64    `json:"expires_in"`
	User         authUser `json:"user"`
}

type authUser struct {
	ID           string                 `json:"id"`
	Email        string                 `json:"email"`
	UserMetadata models.ProfileMetadata `json:"user_metadata"`
}

func (a *restAuthAdapter) SignUp(ctx context.Context, pair models.CredentialPair, meta models.ProfileMetadata) (models.AuthSession, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"email":    pair.Email,
			"password": pair.Password,
			"data":     meta,
		}).
		Post("/auth/v1/signup")
	if err != nil {
		return models.AuthSession{}, fmt.Errorf("signup request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthSession{}, err
	}

	session, err := a.sessionFromResponse(resp.Body())
	if err != nil {
		return models.AuthSession{}, fmt.Errorf("signup decode session: %w", err)
	}

	a.setSession(session)
	return session, nil
}

func (a *restAuthAdapter) SignInWithPassword(ctx context.Context, pair models.CredentialPair) (models.AuthSession, error) {
	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("grant_type", "password").
		SetBody(map[string]string{
			"email":    pair.Email,
			"password": pair.Password,
		}).
		Post("/auth/v1/token")
	if err != nil {
		return models.AuthSession{}, fmt.Errorf("signin request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthSession{}, err
	}

	session, err := a.sessionFromResponse(resp.Body())
	if err != nil {
		return models.AuthSession{}, fmt.Errorf("signin decode session: %w", err)
	}

	a.setSession(session)
	return session, nil
}

func (a *restAuthAdapter) RefreshSession(ctx context.Context) (models.AuthSession, error) {
	current, ok := a.Session()
	if !ok || current.RefreshToken == "" {
		return models.AuthSession{}, fmt.Errorf("%w: no session to refresh", ErrUnauthorized)
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetQueryParam("grant_type", "refresh_token").
		SetBody(map[string]string{
			"refresh_token": current.RefreshToken,
		}).
		Post("/auth/v1/token")
	if err != nil {
		return models.AuthSession{}, fmt.Errorf("refresh request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthSession{}, err
	}

	session, err := a.sessionFromResponse(resp.Body())
	if err != nil {
		return models.AuthSession{}, fmt.Errorf("refresh decode session: %w", err)
	}

	a.setSession(session)
	return session, nil
}

func (a *restAuthAdapter) SignOut(ctx context.Context) error {
	token := a.AccessToken()
	a.clearSession()

	if token == "" {
		return nil
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+token).
		Post("/auth/v1/logout")
	if err != nil {
		return fmt.Errorf("signout request: %w", err)
	}

	return mapHTTPError(resp)
}

func (a *restAuthAdapter) Session() (models.AuthSession, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.session, a.active
}

func (a *restAuthAdapter) AccessToken() string {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if !a.active {
		return ""
	}
	return a.session.AccessToken
}

func (a *restAuthAdapter) setSession(session models.AuthSession) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session = session
	a.active = true
}

func (a *restAuthAdapter) clearSession() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.session = models.AuthSession{}
	a.active = false
}

func (a *restAuthAdapter) sessionFromResponse(body []byte) (models.AuthSession, error) {
	var ar authResponse
	if err := json.Unmarshal(body, &ar); err != nil {
		return models.AuthSession{}, err
	}
	if ar.AccessToken == "" {
		return models.AuthSession{}, errors.New("response carries no access token")
	}

	userID, err := parseUserIDFromJWT(ar.AccessToken)
	if err != nil {
		// The token is opaque to us beyond the sub claim; fall back to
		// the embedded user object.
		userID = ar.User.ID
	}
	if userID == "" {
		return models.AuthSession{}, errors.New("response carries no user id")
	}

	return models.AuthSession{
		UserID:       userID,
		AccessToken:  ar.AccessToken,
		RefreshToken: ar.RefreshToken,
		ExpiresAt:    time.Now().Add(time.Duration(ar.ExpiresIn) * time.Second),
		Metadata:     ar.User.UserMetadata,
	}, nil
}

func parseUserIDFromJWT(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", errors.New("empty subject claim")
	}

	return sub, nil
}
