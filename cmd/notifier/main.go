// Package main runs the order notification relay.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/andrerobles/backoffice/internal/config"
	"github.com/andrerobles/backoffice/internal/notifier"
	"github.com/andrerobles/backoffice/pkg/bootstrap"
	"github.com/andrerobles/backoffice/pkg/config/configloader"
	"github.com/andrerobles/backoffice/pkg/messaging"
	"github.com/andrerobles/backoffice/pkg/nats"
	"golang.org/x/sync/errgroup"
)

const serviceName = "notifier"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("application run failed: %v", err)
		os.Exit(1)
	}
	log.Println("application stopped gracefully")
}

// run connects to NATS, ensures both streams exist, and starts the relay
// workers.
func run(ctx context.Context) error {
	cfg, cfgErr := configloader.Load[*config.NotifierConfig](serviceName)
	if cfgErr != nil {
		return fmt.Errorf("failed to load configuration: %w", cfgErr)
	}
	log.Printf("Configuration loaded: %v", cfg)

	logger := bootstrap.NewLogger(cfg.Log.Level)
	slog.SetDefault(logger)

	natsConn, err := bootstrap.NewNatsClient(cfg.Nats.Url, cfg.Nats.Timeout)
	if err != nil {
		return fmt.Errorf("failed to create NATS connection: %w", err)
	}
	defer natsConn.Close()
	js, err := bootstrap.NewJetStream(natsConn)
	if err != nil {
		return fmt.Errorf("failed to get JetStream context: %w", err)
	}
	if err := nats.EnsureStream(ctx, js, cfg.Subscriber.Stream, []string{messaging.OrdersCreatedSubject}); err != nil {
		return fmt.Errorf("failed to ensure orders stream: %w", err)
	}
	if err := nats.EnsureStream(ctx, js, "NOTIFICATIONS", []string{messaging.OrderNotificationsSubject}); err != nil {
		return fmt.Errorf("failed to ensure notifications stream: %w", err)
	}

	relay := notifier.NewRelay(nats.NewNatsPublisher(js), logger)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("notification relay started")
		err := notifier.Start(gCtx, js, cfg.Subscriber, relay, logger)
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("relay failed", slog.Any("error", err))
			return err
		}
		logger.Info("relay stopped gracefully.")
		return nil
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("errgroup encountered an error: %w", err)
	}
	return nil
}
