package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/playstack/game-catalog-service/internal/config"
	"github.com/playstack/game-catalog-service/internal/logging"
	"github.com/playstack/game-catalog-service/internal/server"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}
	os.Exit(run())
}

func run() int {
	dotEnvErr := config.LoadDotEnv(config.DotEnvPath())

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "game-catalog-service",
		Version: appVersion,
	})
	if dotEnvErr != nil {
		logging.Warn(logger, "failed to load .env", "error", dotEnvErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, cfg, logger)
	if err != nil {
		logging.Error(logger, "server startup failed", err)
		return 1
	}
	srv.Run(ctx, stop)
	return 0
}
