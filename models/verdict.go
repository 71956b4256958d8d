package models

// GateVerdict is the outcome of a biometric authorization call.
// The vision model returns it as constrained JSON; no local policy is
// layered on top of the decision.
type GateVerdict struct {
	// Authorized is the model's accept/reject decision.
	Authorized bool `json:"authorized"`

	// Reason is a short operator-facing explanation, e.g. "no face
	// detected" or "face partially out of frame".
	Reason string `json:"reason"`
}

// LocationVerdict is the outcome of a geofence check: whether a reported
// device position plausibly matches the named reservoir site.
type LocationVerdict struct {
	// Within is the model's decision that the position is at the site.
	Within bool `json:"within"`

	// Reason explains a negative decision, e.g. distance from the site.
	Reason string `json:"reason"`
}

// EnrollmentInput collects everything the enroll flow needs from the
// operator on first run.
type EnrollmentInput struct {
	// Name is the operator's display name.
	Name string

	// Role is the requested access level.
	Role Role

	// AvatarURL is an optional avatar link stored with the profile.
	AvatarURL string

	// Image is the captured face frame, JPEG or PNG bytes.
	Image []byte
}
