package models

// CredentialPair is the synthetic login credential generated once per
// device at enrollment. It is opaque to the operator: the email and
// password are random values never shown in any UI.
//
// The pair is serialized and base64-encoded into the local vault; its
// presence there is the sole signal that the device is enrolled.
type CredentialPair struct {
	// Email is the synthetic account identifier registered with the
	// remote auth service.
	Email string `json:"email"`

	// Password is the high-entropy secret paired with Email.
	// Generated from the OS CSPRNG, never derived from operator input.
	Password string `json:"password"`
}

// Empty reports whether the pair is missing either component.
// A partially decoded pair is treated the same as a corrupt vault blob.
func (c CredentialPair) Empty() bool {
	return c.Email == "" || c.Password == ""
}
