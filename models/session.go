package models

import "time"

// AuthSession is the result of a successful sign-up or sign-in against the
// remote auth service.
type AuthSession struct {
	// UserID is the account identifier extracted from the access token's
	// "sub" claim.
	UserID string `json:"user_id"`

	// AccessToken is the bearer token attached to subsequent data-layer
	// requests.
	AccessToken string `json:"access_token"`

	// RefreshToken allows the session to be renewed without a new
	// biometric round-trip.
	RefreshToken string `json:"refresh_token"`

	// ExpiresAt is when AccessToken stops being accepted.
	ExpiresAt time.Time `json:"expires_at"`

	// Metadata carries the profile fields attached at sign-up. Used as
	// the fallback source when the profiles row is not yet readable.
	Metadata ProfileMetadata `json:"metadata"`
}

// Valid reports whether the session still carries a usable access token.
func (s AuthSession) Valid() bool {
	return s.AccessToken != "" && time.Now().Before(s.ExpiresAt)
}
