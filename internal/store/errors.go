package store

import "errors"

var (
	// ErrVaultKeyNotFound is returned by [VaultRepository.Get] when the
	// requested key has never been stored or was cleared.
	ErrVaultKeyNotFound = errors.New("vault key not found")
)
