// Package main wipes the database and fills it with generated demo data.
// It is meant for local development, never for a live environment.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/andrerobles/backoffice/internal/config"
	"github.com/andrerobles/backoffice/internal/seed"
	"github.com/andrerobles/backoffice/internal/store"
	"github.com/andrerobles/backoffice/pkg/bootstrap"
	"github.com/andrerobles/backoffice/pkg/config/configloader"
)

const serviceName = "seeder"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("application run failed: %v", err)
		os.Exit(1)
	}
	log.Println("database seeded")
}

// run applies migrations, then replaces all stored data with a fresh demo set.
func run(ctx context.Context) error {
	cfg, cfgErr := configloader.Load[*config.SeederConfig](serviceName)
	if cfgErr != nil {
		return fmt.Errorf("failed to load configuration: %w", cfgErr)
	}
	log.Printf("Configuration loaded: %v", cfg)

	logger := bootstrap.NewLogger(cfg.Log.Level)
	slog.SetDefault(logger)

	if err := store.ApplyMigrations(cfg.Database.URL); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	logger.Info("Database migrations applied")

	dbPool, err := bootstrap.NewDbPool(ctx, cfg.Database.URL, cfg.Database.Timeout)
	if err != nil {
		return fmt.Errorf("failed to create database connection pool: %w", err)
	}
	defer dbPool.Close()

	seeder := seed.NewSeeder(
		store.NewPgCategoryStore(dbPool),
		store.NewPgProductStore(dbPool),
		store.NewPgOrderStore(dbPool),
		logger,
	)
	return seeder.Run(ctx)
}
