package main

import (
	"context"
	"os"
	"traveler-service/internal/adapters/repositories"
	"traveler-service/internal/config"
	"traveler-service/internal/platform/obs"

	"github.com/rs/zerolog/log"
)

func main() {
	loadedEnv := config.LoadDotEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if cfg.DBDriver == config.StoreMemory {
		log.Fatal().Msg("dbtool requires DB_DRIVER=sqlite or DB_DRIVER=pgx")
	}

	logger, err := obs.NewLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatal().Err(err).Msg("init logger")
	}
	if !loadedEnv {
		logger.Info().Msg("No .env file found (using environment variables)")
	}

	store, err := repositories.OpenStore(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("open store")
	}
	defer store.Close()

	logger.Info().Msg("Initializing database schema and seeding places...")
	n, err := repositories.InitAndSeed(logger.WithContext(context.Background()), store, cfg.SeedPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("init and seed failed")
	}
	logger.Info().Int("places", n).Str("seed_path", cfg.SeedPath).Msg("Seeding complete.")
}
