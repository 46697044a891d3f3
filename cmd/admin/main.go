// Package main runs a terminal client for managing the back-office data.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/andrerobles/backoffice/internal/admin"
	"github.com/andrerobles/backoffice/internal/config"
	"github.com/andrerobles/backoffice/pkg/bootstrap"
	"github.com/andrerobles/backoffice/pkg/config/configloader"
)

const serviceName = "admin"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Printf("application run failed: %v", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, cfgErr := configloader.Load[*config.AdminConfig](serviceName)
	if cfgErr != nil {
		return fmt.Errorf("failed to load configuration: %w", cfgErr)
	}

	logger := bootstrap.NewLogger(cfg.Log.Level)
	slog.SetDefault(logger)

	scanner := bufio.NewScanner(os.Stdin)
	notifier := admin.NewNotifier(admin.DefaultNoticeTTL)
	confirm := func(prompt string) bool {
		fmt.Printf("%s [y/N]: ", prompt)
		if !scanner.Scan() {
			return false
		}
		answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
		return answer == "y" || answer == "yes"
	}

	drivers := map[string]driver{
		"categories": newCategoryDriver(cfg, notifier, confirm, logger),
		"products":   newProductDriver(cfg, notifier, confirm, logger),
		"orders":     newOrderDriver(cfg, notifier, confirm, logger),
	}

	current := "categories"
	fmt.Println("Back-office admin. Commands: use <entity> | list | add | edit <id> | delete <id> | quit")
	for {
		fmt.Printf("%s> ", current)
		if !scanner.Scan() {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		var err error
		switch cmd {
		case "quit", "exit":
			return nil
		case "use":
			if len(args) != 1 {
				fmt.Println("usage: use categories|products|orders")
				continue
			}
			if _, ok := drivers[args[0]]; !ok {
				fmt.Printf("unknown entity %q\n", args[0])
				continue
			}
			current = args[0]
		case "list":
			err = drivers[current].List(ctx)
		case "add":
			err = drivers[current].Add(ctx, scanner)
		case "edit":
			if len(args) != 1 {
				fmt.Println("usage: edit <id>")
				continue
			}
			err = drivers[current].Edit(ctx, args[0], scanner)
		case "delete":
			if len(args) != 1 {
				fmt.Println("usage: delete <id>")
				continue
			}
			err = drivers[current].Delete(ctx, args[0])
		default:
			fmt.Printf("unknown command %q\n", cmd)
			continue
		}
		if err != nil {
			logger.Debug("command failed", slog.String("command", cmd), slog.Any("error", err))
		}
		if notice := notifier.Current(); notice != nil {
			prefix := "ok"
			if notice.IsErr {
				prefix = "error"
			}
			fmt.Printf("[%s] %s\n", prefix, notice.Text)
		}
	}
}
