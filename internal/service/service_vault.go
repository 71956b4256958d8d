package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/hmdissanayake/tank-watch/internal/logger"
	"github.com/hmdissanayake/tank-watch/internal/store"
	"github.com/hmdissanayake/tank-watch/models"
)

const (
	vaultKey       = "credentials"
	vaultStagedKey = "credentials.staged"
)

type vaultService struct {
	repo   store.VaultRepository
	logger *logger.Logger
}

// NewVaultService wraps the keyed blob repository with the credential
// encoding and staging semantics of the device vault.
func NewVaultService(repo store.VaultRepository, log *logger.Logger) VaultService {
	return &vaultService{repo: repo, logger: log}
}

func (v *vaultService) IsEnrolled(ctx context.Context) (bool, error) {
	exists, err := v.repo.Exists(ctx, vaultKey)
	if err != nil {
		return false, fmt.Errorf("check vault blob: %w", err)
	}
	return exists, nil
}

func (v *vaultService) Store(ctx context.Context, pair models.CredentialPair) error {
	blob, err := encodePair(pair)
	if err != nil {
		return fmt.Errorf("encode credential pair: %w", err)
	}
	if err = v.repo.Put(ctx, vaultKey, blob); err != nil {
		return fmt.Errorf("store credential pair: %w", err)
	}
	return nil
}

func (v *vaultService) Load(ctx context.Context) (models.CredentialPair, error) {
	blob, err := v.repo.Get(ctx, vaultKey)
	if err != nil {
		if errors.Is(err, store.ErrVaultKeyNotFound) {
			return models.CredentialPair{}, fmt.Errorf("%w: %v", ErrVaultEmpty, err)
		}
		return models.CredentialPair{}, fmt.Errorf("read vault blob: %w", err)
	}

	pair, err := decodePair(blob)
	if err != nil {
		v.logger.Error().Str("func", "Load").Err(err).Msg("vault blob failed to decode")
		return models.CredentialPair{}, fmt.Errorf("%w: %v", ErrVaultCorrupt, err)
	}
	return pair, nil
}

func (v *vaultService) Clear(ctx context.Context) error {
	if err := v.repo.Delete(ctx, vaultKey); err != nil {
		return fmt.Errorf("clear vault blob: %w", err)
	}
	if err := v.repo.Delete(ctx, vaultStagedKey); err != nil {
		return fmt.Errorf("clear staged blob: %w", err)
	}
	return nil
}

func (v *vaultService) Stage(ctx context.Context, pair models.CredentialPair) error {
	blob, err := encodePair(pair)
	if err != nil {
		return fmt.Errorf("encode staged pair: %w", err)
	}
	if err = v.repo.Put(ctx, vaultStagedKey, blob); err != nil {
		return fmt.Errorf("stage credential pair: %w", err)
	}
	return nil
}

func (v *vaultService) Commit(ctx context.Context) error {
	blob, err := v.repo.Get(ctx, vaultStagedKey)
	if err != nil {
		if errors.Is(err, store.ErrVaultKeyNotFound) {
			return fmt.Errorf("%w: %v", ErrNoStagedCredentials, err)
		}
		return fmt.Errorf("read staged blob: %w", err)
	}

	if err = v.repo.Put(ctx, vaultKey, blob); err != nil {
		return fmt.Errorf("promote staged blob: %w", err)
	}
	if err = v.repo.Delete(ctx, vaultStagedKey); err != nil {
		return fmt.Errorf("drop staged blob after commit: %w", err)
	}
	return nil
}

func (v *vaultService) Discard(ctx context.Context) error {
	if err := v.repo.Delete(ctx, vaultStagedKey); err != nil {
		return fmt.Errorf("discard staged blob: %w", err)
	}
	return nil
}

// Blobs are JSON-serialised then base64-encoded for safe storage as TEXT.
func encodePair(pair models.CredentialPair) (string, error) {
	raw, err := json.Marshal(pair)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

func decodePair(blob string) (models.CredentialPair, error) {
	raw, err := base64.StdEncoding.DecodeString(blob)
	if err != nil {
		return models.CredentialPair{}, err
	}

	var pair models.CredentialPair
	if err = json.Unmarshal(raw, &pair); err != nil {
		return models.CredentialPair{}, err
	}
	if pair.Empty() {
		return models.CredentialPair{}, errors.New("decoded pair is empty")
	}
	return pair, nil
}
