package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/noah-isme/school-services/internal/config"
	"github.com/noah-isme/school-services/internal/logger"
	"github.com/noah-isme/school-services/internal/models"
	"github.com/noah-isme/school-services/internal/server"
)

func main() {
	cfg, err := config.Load(config.ServiceReservations)
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	appLogger := logger.Setup(cfg.AppName, cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rt, err := server.Open(ctx, cfg, appLogger, models.ReservationsModels()...)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to initialise runtime")
	}
	defer rt.Close()

	deps, orphans := server.Reservations(rt)
	stopWatching, err := orphans.Start()
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to subscribe to roster deletions")
	}
	defer stopWatching()

	app := server.Mount(cfg, appLogger, deps)
	if err := server.Run(ctx, app, cfg.HTTPAddress(), appLogger); err != nil {
		appLogger.Error().Err(err).Msg("server exited with error")
	}
}
