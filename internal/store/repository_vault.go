package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hmdissanayake/tank-watch/internal/logger"
)

const (
	getVaultValue = `
		SELECT value
		FROM vault
		WHERE key = $1;`

	putVaultValue = `
		INSERT INTO vault (key, value, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at;`

	deleteVaultValue = `
		DELETE FROM vault
		WHERE key = $1;`

	existsVaultValue = `
		SELECT COUNT(1)
		FROM vault
		WHERE key = $1;`
)

type vaultRepository struct {
	*DB
	logger *logger.Logger
}

func NewVaultRepository(db *DB, logger *logger.Logger) VaultRepository {
	return &vaultRepository{
		DB:     db,
		logger: logger,
	}
}

func (v *vaultRepository) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	var value string
	err := v.DB.QueryRowContext(ctx, getVaultValue, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", fmt.Errorf("%w: %s", ErrVaultKeyNotFound, key)
	}
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.Get").
			Str("key", key).
			Msg("failed to query vault value")
		return "", fmt.Errorf("failed to query vault value: %w", err)
	}

	return value, nil
}

func (v *vaultRepository) Put(ctx context.Context, key string, value string) error {
	log := logger.FromContext(ctx)

	_, err := v.DB.ExecContext(ctx, putVaultValue, key, value, time.Now().UTC())
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.Put").
			Str("key", key).
			Msg("failed to upsert vault value")
		return fmt.Errorf("failed to upsert vault value: %w", err)
	}

	return nil
}

func (v *vaultRepository) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	_, err := v.DB.ExecContext(ctx, deleteVaultValue, key)
	if err != nil {
		log.Err(err).
			Str("func", "vaultRepository.Delete").
			Str("key", key).
			Msg("failed to delete vault value")
		return fmt.Errorf("failed to delete vault value: %w", err)
	}

	return nil
}

func (v *vaultRepository) Exists(ctx context.Context, key string) (bool, error) {
	log := logger.FromContext(ctx)

	var count int
	if err := v.DB.QueryRowContext(ctx, existsVaultValue, key).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "vaultRepository.Exists").
			Str("key", key).
			Msg("failed to query vault key presence")
		return false, fmt.Errorf("failed to query vault key presence: %w", err)
	}

	return count > 0, nil
}
