package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix is the prefix for all environment variables read by Load,
// e.g. TASKAPI_SERVER_PORT or TASKAPI_DATABASE_HOST.
const envPrefix = "TASKAPI"

// Load reads configuration from environment variables, applying defaults
// for anything not set. Returns a populated Config struct or an error if
// parsing or validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults match the docker-compose development environment.
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "taskdb")
	v.SetDefault("database.user", "admin")
	v.SetDefault("database.password", "admin123")
	v.SetDefault("cache.host", "localhost")
	v.SetDefault("cache.port", 6379)
	v.SetDefault("cache.password", "")
	v.SetDefault("cache.db", 0)

	// Environment variables take precedence over defaults. Nested keys map
	// to underscore-separated variables: cache.host -> TASKAPI_CACHE_HOST.
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
