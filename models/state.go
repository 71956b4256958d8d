package models

// AuthState is the device's position in the enrollment/login lifecycle.
type AuthState string

const (
	// StateUninitialized is the state before the vault has been inspected.
	StateUninitialized AuthState = "UNINITIALIZED"

	// StateEnrolling means the device has no vault entry and is waiting
	// for a first-run enrollment.
	StateEnrolling AuthState = "ENROLLING"

	// StateVerifying means credentials exist and the device is polling
	// for a successful biometric verification.
	StateVerifying AuthState = "VERIFYING"

	// StateAuthenticated means a session is active and a profile is
	// resolved.
	StateAuthenticated AuthState = "AUTHENTICATED"
)
