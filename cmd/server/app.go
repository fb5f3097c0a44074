package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/numera/internal/config"
	"github.com/phrazzld/numera/internal/domain/numerology"
	"github.com/phrazzld/numera/internal/platform/metrics"
	"github.com/phrazzld/numera/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// application holds all the shared application dependencies to simplify management.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger   *slog.Logger
	registry *prometheus.Registry
	metrics  *metrics.Metrics

	// Service interfaces
	engine            numerology.Engine
	numerologyService service.NumerologyService
}

// newApplication creates a new application instance with all dependencies initialized.
// Collectors are registered on registry, which the /metrics route then serves.
func newApplication(cfg *config.Config, logger *slog.Logger, registry *prometheus.Registry) (*application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	app := &application{
		config:   cfg,
		logger:   logger,
		registry: registry,
	}

	if cfg.Metrics.Enabled {
		registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		app.metrics = metrics.New(registry)
	}

	app.engine = numerology.NewEngineWithParams(engineParams(cfg.Engine))

	var err error
	app.numerologyService, err = service.NewNumerologyService(
		app.engine,
		app.metrics,
		time.Now,
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create numerology service: %w", err)
	}

	logger.Info("Application initialized successfully",
		"lucky_dates_limit", cfg.Engine.LuckyDatesLimit)
	return app, nil
}

// engineParams converts the engine configuration section to engine parameters.
func engineParams(cfg config.EngineConfig) *numerology.Params {
	return numerology.NewParams(numerology.ParamsConfig{
		ExcellentScore:        cfg.CompatibilityExcellent,
		GoodScore:             cfg.CompatibilityGood,
		ModerateScore:         cfg.CompatibilityModerate,
		LuckyDatesLimit:       cfg.LuckyDatesLimit,
		BestDayScore:          cfg.BestDayScore,
		ChallengeDayScore:     cfg.ChallengeDayScore,
		BiorhythmCriticalBand: cfg.BiorhythmCriticalBand,
	})
}

// Run starts the application server and blocks until ctx is canceled.
// It returns an error if the server fails to start or to shut down.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
