// Package main runs the scheduled sales report job.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/andrerobles/backoffice/internal/config"
	"github.com/andrerobles/backoffice/internal/report"
	"github.com/andrerobles/backoffice/pkg/bootstrap"
	"github.com/andrerobles/backoffice/pkg/config/configloader"
)

const serviceName = "reporter"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("application run failed: %v", err)
		os.Exit(1)
	}
	log.Println("application stopped gracefully")
}

// run generates one report immediately, then on every interval tick until
// the context is cancelled.
func run(ctx context.Context) error {
	cfg, cfgErr := configloader.Load[*config.ReporterConfig](serviceName)
	if cfgErr != nil {
		return fmt.Errorf("failed to load configuration: %w", cfgErr)
	}
	log.Printf("Configuration loaded: %v", cfg)

	logger := bootstrap.NewLogger(cfg.Log.Level)
	slog.SetDefault(logger)

	client := report.NewHTTPOrdersClient(cfg.Api.URL, cfg.Api.Key, cfg.Api.Timeout)
	generator := report.NewGenerator(client, logger)

	generate(ctx, generator, logger)

	ticker := time.NewTicker(cfg.Report.Interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			generate(ctx, generator, logger)
		}
	}
}

func generate(ctx context.Context, generator *report.Generator, logger *slog.Logger) {
	envelope := generator.Run(ctx)
	out, err := json.Marshal(envelope)
	if err != nil {
		logger.Error("failed to encode report envelope", slog.Any("error", err))
		return
	}
	fmt.Println(string(out))
}
