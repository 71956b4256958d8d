package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidRemoteConfigs indicates invalid remote service settings
	// (for example, missing base URL, API key, or an unknown mode).
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidAIConfigs indicates invalid model service settings
	// (for example, a missing API key).
	ErrInvalidAIConfigs = errors.New("invalid ai configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
