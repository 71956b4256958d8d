package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/hmdissanayake/tank-watch/internal/adapter"
	"github.com/hmdissanayake/tank-watch/internal/logger"
	"github.com/hmdissanayake/tank-watch/models"
)

type gateService struct {
	ai     adapter.AIAdapter
	logger *logger.Logger
}

// NewGateService builds the biometric gate on top of the model adapter.
func NewGateService(ai adapter.AIAdapter, log *logger.Logger) GateService {
	return &gateService{ai: ai, logger: log}
}

func (g *gateService) Authorize(ctx context.Context, image []byte) (models.GateVerdict, error) {
	if len(image) == 0 {
		return models.GateVerdict{}, errors.New("empty capture frame")
	}

	verdict, err := g.ai.AuthorizeFace(ctx, image)
	if err != nil {
		return models.GateVerdict{}, fmt.Errorf("gate authorization call: %w", err)
	}

	g.logger.Debug().
		Str("func", "Authorize").
		Bool("authorized", verdict.Authorized).
		Str("reason", verdict.Reason).
		Msg("gate verdict")

	return verdict, nil
}
