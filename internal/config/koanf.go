package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

// DefaultConfigPaths are searched in order when CONFIG_PATH is not set.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/lightbnb/config.yaml",
}

// envMappings maps environment variable names (lower-cased) to config paths.
var envMappings = map[string]string{
	"database_url":           "database.url",
	"db_host":                "database.host",
	"db_port":                "database.port",
	"db_name":                "database.name",
	"db_user":                "database.user",
	"db_password":            "database.password",
	"redis_addr":             "redis.addr",
	"redis_password":         "redis.password",
	"redis_db":               "redis.db",
	"redis_breaker_failures": "redis.breaker_failures",
	"redis_breaker_timeout":  "redis.breaker_timeout",
	"jwt_secret":             "auth.jwt_secret",
	"token_ttl":              "auth.token_ttl",
	"http_addr":              "server.addr",
	"login_rate":             "server.login_rate",
	"login_burst":            "server.login_burst",
	"log_level":              "logging.level",
	"log_format":             "logging.format",
	"listing_page_size":      "listing.page_size",
	"reservations_limit":     "listing.reservations_limit",
	"seed_workers":           "seed.workers",
	"seed_fixture":           "seed.fixture",
}

// Load reads the configuration. Precedence: env > file > defaults.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path := findConfigFile(); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// envTransformFunc returns "" for variables that are not ours, which makes
// the env provider skip them.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
