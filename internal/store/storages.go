package store

import (
	"context"
	"fmt"

	"github.com/hmdissanayake/tank-watch/internal/config"
	"github.com/hmdissanayake/tank-watch/internal/logger"
)

// ClientStorages groups all device-local repositories into a single value
// that can be passed around the service layer.
type ClientStorages struct {
	// VaultRepository is the keyed blob store holding the credential pair.
	VaultRepository VaultRepository

	// CacheRepository is the local mirror of reservoir entries.
	CacheRepository CacheRepository

	// PendingOpsRepository is the write-ahead queue of failed remote
	// writes awaiting replay.
	PendingOpsRepository PendingOpsRepository
}

// NewClientStorages initialises the device-local storage layer using the
// supplied configuration and logger. It performs the following steps:
//  1. Opens an SQLite connection to the file path specified in cfg.DB.DSN,
//     creating the database file if it does not yet exist.
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.Storage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		VaultRepository:      NewVaultRepository(db, logger),
		CacheRepository:      NewCacheRepository(db, logger),
		PendingOpsRepository: NewPendingOpsRepository(db, logger),
	}, nil
}
