package config

import "time"

// applyDefaults fills in values that have a sensible fallback so a minimal
// deployment only has to provide the two API keys and the base URL.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Remote.Mode == "" {
		cfg.Remote.Mode = RemoteModeREST
	}
	if cfg.Remote.RequestTimeout <= 0 {
		cfg.Remote.RequestTimeout = 15 * time.Second
	}
	if cfg.AI.Model == "" {
		cfg.AI.Model = "gemini-2.5-flash"
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = "tankwatch.db"
	}
	if cfg.Camera.SpoolDir == "" {
		cfg.Camera.SpoolDir = "frames"
	}
	if cfg.Workers.VerifyInterval <= 0 {
		cfg.Workers.VerifyInterval = 4 * time.Second
	}
	if cfg.Workers.ReconcileInterval <= 0 {
		cfg.Workers.ReconcileInterval = time.Minute
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// client invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Remote.BaseURL == "" || cfg.Remote.APIKey == "" {
		return ErrInvalidRemoteConfigs
	}

	switch cfg.Remote.Mode {
	case RemoteModeREST:
	case RemoteModePostgres:
		if cfg.Remote.PostgresDSN == "" {
			return ErrInvalidRemoteConfigs
		}
	default:
		return ErrInvalidRemoteConfigs
	}

	if cfg.AI.APIKey == "" {
		return ErrInvalidAIConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}
