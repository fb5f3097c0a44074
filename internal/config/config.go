package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server  ServerConfig  `mapstructure:"server" validate:"required"`
	Engine  EngineConfig  `mapstructure:"engine" validate:"required"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// Graceful shutdown budget for in-flight requests
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"required,gt=0"`
}

// EngineConfig tunes the numerology engine's classification thresholds.
// Every rule of the engine itself is fixed.
type EngineConfig struct {
	LuckyDatesLimit        int `mapstructure:"lucky_dates_limit" validate:"required,min=1,max=31"`
	BestDayScore           int `mapstructure:"best_day_score" validate:"required,min=1,max=100,gtfield=ChallengeDayScore"`
	ChallengeDayScore      int `mapstructure:"challenge_day_score" validate:"required,min=1,max=100"`
	CompatibilityExcellent int `mapstructure:"compatibility_excellent" validate:"required,max=100,gtfield=CompatibilityGood"`
	CompatibilityGood      int `mapstructure:"compatibility_good" validate:"required,max=100,gtfield=CompatibilityModerate"`
	CompatibilityModerate  int `mapstructure:"compatibility_moderate" validate:"required,min=1,max=100"`
	BiorhythmCriticalBand  int `mapstructure:"biorhythm_critical_band" validate:"required,min=1,max=100"`
}

// MetricsConfig controls the prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path" validate:"required,startswith=/"`
}
