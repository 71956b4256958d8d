package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-remote-url base URL of the hosted auth/database service
//	-remote-key project API key
//	-remote-mode remote data backend: "rest" or "postgres"
//	-d direct database DSN (postgres mode only)
//	-ai-key model API key
//	-ai-model model identifier
//	-local-db local SQLite file path
//	-camera-spool camera frame spool directory
//	-verify-interval verify job interval (e.g. "4s")
//	-reconcile-interval reconcile job interval (e.g. "1m")
//	-request-timeout remote request timeout (e.g. "15s")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var remoteURL string
	var remoteKey string
	var remoteMode string
	var postgresDSN string
	var aiKey string
	var aiModel string
	var localDSN string
	var cameraSpoolDir string
	var verifyInterval time.Duration
	var reconcileInterval time.Duration
	var requestTimeout time.Duration
	var jsonConfigPath string

	flag.StringVar(&remoteURL, "remote-url", "", "Remote service base URL")
	flag.StringVar(&remoteKey, "remote-key", "", "Remote service API key")
	flag.StringVar(&remoteMode, "remote-mode", "", "Remote data backend: rest|postgres")
	flag.StringVar(&postgresDSN, "d", "", "Direct database DSN")
	flag.StringVar(&aiKey, "ai-key", "", "Model API key")
	flag.StringVar(&aiModel, "ai-model", "", "Model identifier")
	flag.StringVar(&localDSN, "local-db", "", "Local SQLite file path")
	flag.StringVar(&cameraSpoolDir, "camera-spool", "", "Camera frame spool directory")
	flag.DurationVar(&verifyInterval, "verify-interval", 0, "Verify job interval (e.g., 4s)")
	flag.DurationVar(&reconcileInterval, "reconcile-interval", 0, "Reconcile job interval (e.g., 1m)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Remote request timeout (e.g., 15s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		Remote: Remote{
			BaseURL:        remoteURL,
			APIKey:         remoteKey,
			Mode:           RemoteMode(remoteMode),
			PostgresDSN:    postgresDSN,
			RequestTimeout: requestTimeout,
		},
		AI: AI{
			APIKey: aiKey,
			Model:  aiModel,
		},
		Storage: Storage{
			DB: DB{
				DSN: localDSN,
			},
		},
		Workers: Workers{
			VerifyInterval:    verifyInterval,
			ReconcileInterval: reconcileInterval,
		},
		Camera: Camera{
			SpoolDir: cameraSpoolDir,
		},
		JSONFilePath: jsonConfigPath,
	}
}
