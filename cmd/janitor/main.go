package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/hashclash/storage/internal/config"
	"github.com/hashclash/storage/internal/logger"
	"github.com/hashclash/storage/internal/store"
	"github.com/hashclash/storage/internal/workers"
	"github.com/hashclash/storage/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("hash-clash-janitor")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, err := store.NewRepositories(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}
	defer repos.Close()

	if err = migrations.Migrate(repos.DB().DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	if cfg.Workers.CleanupInterval <= 0 {
		log.Info().Msg("cleanup interval is not set, nothing to run")
		return
	}

	janitor := workers.NewJanitor(ctx, repos.TempCodeRepository, cfg.Workers.CleanupInterval, log)
	workers.NewWorkers(janitor).Run()
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
