package config

import (
	"time"
)

// RemoteMode selects how the data layer reaches the remote database.
type RemoteMode string

const (
	// RemoteModeREST talks to the hosted REST endpoint (PostgREST-style)
	// with the project API key. This is the default field deployment.
	RemoteModeREST RemoteMode = "rest"

	// RemoteModePostgres connects straight to the database over a DSN.
	// Used by office deployments with direct database access.
	RemoteModePostgres RemoteMode = "postgres"
)

// StructuredConfig is the top-level configuration container for the
// tank-watch client. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Remote holds connection settings for the hosted auth/database
	// service.
	Remote Remote `envPrefix:"REMOTE_"`

	// AI holds settings for the hosted vision/language model used by the
	// biometric gate, the geofence check, and insight summaries.
	AI AI `envPrefix:"AI_"`

	// Storage holds the device-local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds intervals for the background verify and reconcile
	// jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Camera holds the capture settings for the biometric frame source.
	Camera Camera `envPrefix:"CAMERA_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Remote holds connection settings for the hosted auth/database service.
type Remote struct {
	// BaseURL is the project base URL, e.g. "https://xyz.supabase.co".
	// Env: REMOTE_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// APIKey is the project anon key sent with every request.
	// Env: REMOTE_API_KEY
	APIKey string `env:"API_KEY"`

	// Mode selects the data backend: "rest" (default) or "postgres".
	// Env: REMOTE_MODE
	Mode RemoteMode `env:"MODE"`

	// PostgresDSN is the direct database connection string, required only
	// when Mode is "postgres".
	// Env: REMOTE_POSTGRES_DSN
	PostgresDSN string `env:"POSTGRES_DSN"`

	// RequestTimeout is the per-request deadline for remote calls
	// (e.g. "15s").
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// AI holds settings for the hosted model service.
type AI struct {
	// APIKey authenticates against the model API.
	// Env: AI_API_KEY
	APIKey string `env:"API_KEY"`

	// Model is the model identifier used for all calls
	// (e.g. "gemini-2.5-flash").
	// Env: AI_MODEL
	Model string `env:"MODEL"`
}

// Storage holds the device-local persistence settings.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database that backs
// the vault and the reservoir cache.
type DB struct {
	// DSN is the SQLite file path, e.g. "tankwatch.db".
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Camera holds the capture settings for the biometric frame source. The
// device camera integration drops captured frames into a spool directory;
// the verify job reads the newest one on each tick.
type Camera struct {
	// SpoolDir is the directory the camera integration writes frames to.
	// Env: CAMERA_SPOOL_DIR
	SpoolDir string `env:"SPOOL_DIR"`
}

// Workers holds intervals for the background jobs.
type Workers struct {
	// VerifyInterval is how often the verify job re-arms a biometric
	// attempt while the device sits in the verifying state.
	// Env: WORKERS_VERIFY_INTERVAL
	VerifyInterval time.Duration `env:"VERIFY_INTERVAL"`

	// ReconcileInterval is how often queued remote writes are replayed.
	// Env: WORKERS_RECONCILE_INTERVAL
	ReconcileInterval time.Duration `env:"RECONCILE_INTERVAL"`
}

// GetClientConfig loads, merges, and validates the client configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetClientConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
