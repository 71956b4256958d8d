package adapter

import "errors"

var (
	// ErrUnauthorized means the request carried no valid credentials or
	// token. During polling verify this is a soft condition.
	ErrUnauthorized = errors.New("client unauthorized")

	// ErrTableMissing means the remote relation does not exist
	// (SQLSTATE 42P01). A configuration problem, not connectivity loss.
	ErrTableMissing = errors.New("remote table missing")

	// ErrProfileNotFound means no profiles row is visible for the user
	// yet. Retryable: the row may appear once the sign-up trigger runs.
	ErrProfileNotFound = errors.New("profile not found")

	// ErrBadRequest maps HTTP 400 responses.
	ErrBadRequest = errors.New("bad request")

	// ErrInternalServerError maps HTTP 5xx responses.
	ErrInternalServerError = errors.New("remote internal error")
)
