// Package main implements the entry point for the numera server, which
// serves numerology profiles, compatibility scores and forecasts over a
// JSON HTTP API.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/phrazzld/numera/internal/config"
	"github.com/phrazzld/numera/internal/platform/logger"
	"github.com/prometheus/client_golang/prometheus"
)

// main is the entry point for the numera server.
// It loads configuration, sets up logging, wires dependencies and runs the
// HTTP server until SIGINT or SIGTERM.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatalf("numera server failed: %v", err)
	}
}

// run initializes the application and serves until ctx is canceled.
func run(ctx context.Context) error {
	cfg, err := initializeApp()
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	app, err := newApplication(cfg, slog.Default(), prometheus.NewRegistry())
	if err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}

	return app.Run(ctx)
}

// initializeApp loads configuration and sets up structured logging.
// Returns the loaded config and any initialization error.
func initializeApp() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if _, err = logger.Setup(cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"metrics_enabled", cfg.Metrics.Enabled,
		"config_file", os.Getenv(config.ConfigFileEnv))

	return cfg, nil
}
