package service

import (
	"context"
	"fmt"
	"time"

	"github.com/hmdissanayake/tank-watch/internal/adapter"
	"github.com/hmdissanayake/tank-watch/internal/logger"
	"github.com/hmdissanayake/tank-watch/models"
)

const (
	profileResolveAttempts = 5
	profileResolveBackoff  = 500 * time.Millisecond
)

type profileService struct {
	remote  adapter.RemoteStore
	logger  *logger.Logger
	backoff time.Duration
}

// NewProfileService builds the resolver polling the remote profiles table.
func NewProfileService(remote adapter.RemoteStore, log *logger.Logger) ProfileService {
	return &profileService{remote: remote, logger: log, backoff: profileResolveBackoff}
}

func (p *profileService) Resolve(ctx context.Context, userID string, fallback *models.ProfileMetadata) (models.Profile, error) {
	var lastErr error
	for attempt := 1; attempt <= profileResolveAttempts; attempt++ {
		profile, err := p.remote.GetProfile(ctx, userID)
		if err == nil {
			return profile, nil
		}
		lastErr = err
		p.logger.Debug().
			Str("func", "Resolve").
			Str("user_id", userID).
			Int("attempt", attempt).
			Err(err).
			Msg("profile not readable yet")

		if attempt == profileResolveAttempts {
			break
		}
		if err = sleepCtx(ctx, p.backoff); err != nil {
			return models.Profile{}, fmt.Errorf("resolve profile: %w", err)
		}
	}

	if fallback != nil {
		p.logger.Warn().
			Str("func", "Resolve").
			Str("user_id", userID).
			Err(lastErr).
			Msg("profiles row unavailable, falling back to session metadata")

		return models.Profile{
			ID:        userID,
			Name:      fallback.Name,
			Role:      models.ParseRole(fallback.Role),
			AvatarURL: fallback.AvatarURL,
			Degraded:  true,
		}, nil
	}

	return models.Profile{}, fmt.Errorf("%w: %v", ErrProfileUnavailable, lastErr)
}

// sleepCtx waits for d unless ctx is cancelled first.
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
