package service

import "errors"

var (
	// ErrVaultCorrupt means the stored credential blob failed to decode.
	// Terminal for the current enrollment: the operator must re-enroll.
	ErrVaultCorrupt = errors.New("vault credential blob is corrupt")

	// ErrVaultEmpty means a load was attempted with no stored credentials.
	ErrVaultEmpty = errors.New("vault holds no credentials")

	// ErrNoStagedCredentials means Commit was called without a prior Stage.
	ErrNoStagedCredentials = errors.New("no staged credentials to commit")

	ErrProfileUnavailable = errors.New("profile unavailable")
	ErrEnrollmentFailed   = errors.New("enrollment failed")

	// ErrGateRejected is the soft outcome of a negative model verdict.
	// The capture can simply be retried on the next tick.
	ErrGateRejected = errors.New("capture rejected by biometric gate")

	// ErrVerifyBusy is returned when a verification attempt is already in
	// flight; the overlapping attempt is dropped, not queued.
	ErrVerifyBusy = errors.New("verification already in flight")

	ErrResetNotConfirmed = errors.New("reset requires explicit confirmation")
	ErrInvalidState      = errors.New("operation not allowed in current state")

	// ErrGeofenceRejected is the soft outcome of a negative location
	// verdict on submission.
	ErrGeofenceRejected = errors.New("reported position does not match the reservoir site")

	ErrNothingToSummarize = errors.New("no records to summarize")
)
