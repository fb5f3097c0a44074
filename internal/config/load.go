package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment variable the application reads.
const EnvPrefix = "NUMERA"

// ConfigFileEnv names the environment variable that points at an explicit config file.
const ConfigFileEnv = EnvPrefix + "_CONFIG_FILE"

// settings lists every configuration key with its default value.
var settings = []struct {
	key   string
	value interface{}
}{
	{"server.port", 8080},
	{"server.log_level", "info"},
	{"server.shutdown_timeout_seconds", 10},
	{"engine.lucky_dates_limit", 5},
	{"engine.best_day_score", 80},
	{"engine.challenge_day_score", 50},
	{"engine.compatibility_excellent", 85},
	{"engine.compatibility_good", 70},
	{"engine.compatibility_moderate", 55},
	{"engine.biorhythm_critical_band", 10},
	{"metrics.enabled", true},
	{"metrics.path", "/metrics"},
}

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// The file is taken from NUMERA_CONFIG_FILE, or config.yaml in the working
// directory when that variable is unset; a missing config.yaml is not an error.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	return LoadFromFile(os.Getenv(ConfigFileEnv))
}

// LoadFromFile is Load with an explicit config file path. An empty path
// searches the working directory for config.yaml instead.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()

	for _, s := range settings {
		v.SetDefault(s.key, s.value)
	}

	v.SetConfigType("yaml")
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only covers keys viper already knows, so bind every key explicitly
	for _, s := range settings {
		envVar := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(s.key, ".", "_"))
		if err := v.BindEnv(s.key, envVar); err != nil {
			return nil, fmt.Errorf("error binding environment variable %s: %w", envVar, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}
