package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/hmdissanayake/tank-watch/internal/config"
	"github.com/hmdissanayake/tank-watch/internal/logger"
	"github.com/hmdissanayake/tank-watch/internal/service"
	"github.com/hmdissanayake/tank-watch/internal/workers"
	"github.com/hmdissanayake/tank-watch/models"
)

// App is the headless client runtime. It determines the device's lifecycle
// state on startup and keeps the right background jobs running until the
// process is told to exit.
type App struct {
	services *service.ClientServices
	cfg      config.Workers
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, cfg config.Workers, log *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("nil client services")
	}
	return &App{services: services, cfg: cfg, logger: log}, nil
}

// Run implements [Client]. It initialises the device state, starts the
// reconcile job unconditionally and the verify job only while the device
// needs to authenticate, then blocks until ctx is cancelled. All jobs are
// stopped before Run returns.
func (a *App) Run(ctx context.Context) error {
	state, err := a.services.OrchestratorService.Init(ctx)
	if err != nil {
		return fmt.Errorf("init device state: %w", err)
	}

	entries := []workers.Entry{
		{Job: a.services.ReconcileJob, Interval: a.cfg.ReconcileInterval},
	}

	switch state {
	case models.StateVerifying:
		a.logger.Info().Str("func", "Run").Msg("device enrolled, starting verification")
		entries = append(entries, workers.Entry{Job: a.services.VerifyJob, Interval: a.cfg.VerifyInterval})
	case models.StateEnrolling:
		// Enrollment needs an operator in front of the device; the front
		// end drives it through OrchestratorService.Enroll.
		a.logger.Info().Str("func", "Run").Msg("device not enrolled, waiting for operator enrollment")
	case models.StateAuthenticated:
		profile, _ := a.services.OrchestratorService.CurrentProfile()
		a.logger.Info().Str("func", "Run").Str("name", profile.Name).Msg("session restored")
	}

	jobs := workers.New(entries...)
	jobs.Start(ctx)
	defer jobs.Stop()

	<-ctx.Done()
	a.logger.Info().Str("func", "Run").Msg("shutting down")
	return nil
}
