package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/hmdissanayake/tank-watch/internal/adapter"
	"github.com/hmdissanayake/tank-watch/internal/client"
	"github.com/hmdissanayake/tank-watch/internal/config"
	"github.com/hmdissanayake/tank-watch/internal/logger"
	"github.com/hmdissanayake/tank-watch/internal/service"
	"github.com/hmdissanayake/tank-watch/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("tank-watch-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	auth, err := adapter.NewRESTAuthAdapter(cfg.Remote, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create auth adapter")
	}

	remote, err := newRemoteStore(ctx, cfg.Remote, auth, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote store")
	}

	ai, err := adapter.NewGeminiAdapter(ctx, cfg.AI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create model adapter")
	}

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	frames := client.NewSpoolFrameSource(cfg.Camera.SpoolDir, log)
	services := service.NewClientServices(storages, auth, remote, ai, frames, log)

	app, err := client.NewApp(services, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

// newRemoteStore selects the data backend: the hosted REST endpoint by
// default, or a direct database connection when configured.
func newRemoteStore(ctx context.Context, cfg config.Remote, tokens adapter.TokenSource, log *logger.Logger) (adapter.RemoteStore, error) {
	switch cfg.Mode {
	case config.RemoteModePostgres:
		return store.NewPostgresRemoteStore(ctx, cfg, log)
	default:
		return adapter.NewRESTRemoteStore(cfg, tokens, log)
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
