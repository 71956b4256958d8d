package models

// Profile is the display identity of an enrolled operator, resolved from
// the remote profiles table after a successful authentication.
type Profile struct {
	// ID is the auth-session user identifier (UUID issued by the remote
	// auth service). It is also the primary key of the profiles row.
	ID string `json:"id"`

	// Name is the operator's display name entered at enrollment.
	Name string `json:"name"`

	// Role is the operator's access level.
	Role Role `json:"role"`

	// AvatarURL is an optional link to the operator's avatar image.
	AvatarURL string `json:"avatar_url,omitempty"`

	// Degraded marks a profile synthesized from auth-session metadata
	// because the profiles row was not yet readable. Logged, never shown.
	Degraded bool `json:"-"`
}

// ProfileMetadata is the subset of profile fields attached to the auth
// account at sign-up. It serves as the fallback source when the profiles
// row is not yet visible after account creation.
type ProfileMetadata struct {
	// Name is the operator's display name.
	Name string `json:"name"`

	// Role is the raw role string; may be empty when the metadata was
	// written by an older client.
	Role string `json:"role,omitempty"`

	// AvatarURL is an optional avatar link.
	AvatarURL string `json:"avatar_url,omitempty"`
}

// TableName returns the name of the remote table
// associated with the Profile model.
func (p Profile) TableName() string {
	return "profiles"
}
