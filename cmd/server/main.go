// Package main runs the back-office HTTP API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/andrerobles/backoffice/internal/app"
	"github.com/andrerobles/backoffice/internal/config"
	"github.com/andrerobles/backoffice/internal/store"
	"github.com/andrerobles/backoffice/pkg/bootstrap"
	"github.com/andrerobles/backoffice/pkg/config/configloader"
	"github.com/andrerobles/backoffice/pkg/messaging"
	"github.com/andrerobles/backoffice/pkg/nats"
	"golang.org/x/sync/errgroup"
)

const serviceName = "backoffice"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("application run failed: %v", err)
		os.Exit(1)
	}
	log.Println("application stopped gracefully")
}

// run initializes the application, applies migrations, and starts the HTTP
// and ops servers.
func run(ctx context.Context) error {
	cfg, cfgErr := configloader.Load[*config.ServerConfig](serviceName)
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
	logger.Info("Successfully connected to the database!")

	natsConn, err := bootstrap.NewNatsClient(cfg.Nats.Url, cfg.Nats.Timeout)
	if err != nil {
		return fmt.Errorf("failed to create NATS connection: %w", err)
	}
	defer natsConn.Close()
	js, err := bootstrap.NewJetStream(natsConn)
	if err != nil {
		return fmt.Errorf("failed to get JetStream context: %w", err)
	}
	if err := nats.EnsureStream(ctx, js, "ORDERS", []string{messaging.OrdersCreatedSubject}); err != nil {
		return fmt.Errorf("failed to ensure orders stream: %w", err)
	}

	deps := app.SetupDependencies(dbPool, nats.NewNatsPublisher(js), logger)
	httpServer := app.SetupHttpServer(deps, cfg)

	g, gCtx := errgroup.WithContext(ctx)

	// Start the HTTP server
	g.Go(func() error {
		logger.Info("HTTP server listening", slog.String("addr", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})
	// gracefully shutdown HTTP server on context cancellation
	g.Go(func() error {
		<-gCtx.Done()
		logger.Info("Shutting down HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown.Timeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	// Start the ops server if enabled
	if cfg.Ops.Enabled {
		opsServer := app.SetupOpsServer(deps, cfg.Ops.Addr)
		g.Go(func() error {
			logger.Info("Ops server listening", slog.String("addr", opsServer.Addr))
			if err := opsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("ops server failed: %w", err)
			}
			return nil
		})
		// gracefully shutdown ops server on context cancellation
		g.Go(func() error {
			<-gCtx.Done()
			logger.Info("Shutting down ops server...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Shutdown.Timeout)
			defer cancel()
			return opsServer.Shutdown(shutdownCtx)
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("errgroup encountered an error: %w", err)
	}
	return nil
}
