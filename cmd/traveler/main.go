package main

import (
	"context"
	"fmt"
	"os"
	"traveler-service/internal/adapters/repositories"
	"traveler-service/internal/cli"
	"traveler-service/internal/config"
	"traveler-service/internal/platform/obs"
	"traveler-service/internal/services"
)

var version = "dev"

func main() {
	config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		fail(err)
	}

	// Keep stdout clean for machine-readable output.
	logger, err := obs.NewLogger(os.Stderr, config.Get("LOG_LEVEL", "warn"), cfg.LogFormat)
	if err != nil {
		fail(err)
	}
	ctx := logger.WithContext(context.Background())

	store, err := repositories.OpenStore(cfg)
	if err != nil {
		fail(err)
	}
	if cfg.DBDriver == config.StoreMemory {
		if _, err := repositories.InitAndSeed(ctx, store, cfg.SeedPath); err != nil {
			fail(err)
		}
	}

	deps := cli.Dependencies{
		Resolver: services.NewResolver(store.Places),
		Version:  version,
	}

	exitCode := cli.Execute(ctx, os.Args[1:], deps, os.Stdout, os.Stderr)
	store.Close()
	os.Exit(exitCode)
}

func fail(err error) {
	_, _ = fmt.Fprintln(os.Stderr, err.Error())
	os.Exit(1)
}
