package main

import (
	"testing"

	"github.com/phrazzld/numera/internal/config"
	"github.com/phrazzld/numera/internal/domain/numerology"
	"github.com/phrazzld/numera/internal/platform/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig returns a valid configuration matching the built-in defaults.
func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "debug", ShutdownTimeoutSeconds: 2},
		Engine: config.EngineConfig{
			LuckyDatesLimit:        5,
			BestDayScore:           80,
			ChallengeDayScore:      50,
			CompatibilityExcellent: 85,
			CompatibilityGood:      70,
			CompatibilityModerate:  55,
			BiorhythmCriticalBand:  10,
		},
		Metrics: config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

func TestNewApplication(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		app, err := newApplication(nil, nil, nil)
		assert.Error(t, err)
		assert.Nil(t, app)
	})

	t.Run("metrics enabled", func(t *testing.T) {
		log, buf := logger.GetTestLogger(t)
		app, err := newApplication(testConfig(), log, prometheus.NewRegistry())

		require.NoError(t, err)
		assert.NotNil(t, app.engine)
		assert.NotNil(t, app.numerologyService)
		assert.NotNil(t, app.metrics)
		logger.AssertLogContains(t, buf, "Application initialized successfully")
	})

	t.Run("metrics disabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.Metrics.Enabled = false

		app, err := newApplication(cfg, nil, nil)

		require.NoError(t, err)
		assert.Nil(t, app.metrics)
	})
}

func TestEngineParams(t *testing.T) {
	cfg := testConfig().Engine
	cfg.LuckyDatesLimit = 3
	cfg.CompatibilityExcellent = 90

	params := engineParams(cfg)

	assert.Equal(t, 3, params.LuckyDatesLimit)
	assert.Equal(t, 90, params.ExcellentScore)
	assert.Equal(t, 70, params.GoodScore)
	assert.Equal(t, numerology.NewDefaultParams().BiorhythmCriticalBand, params.BiorhythmCriticalBand)
}
