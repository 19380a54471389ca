// Package config loads settings in three layers: built-in defaults, an
// optional YAML file, then environment variables.
package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"
)

type Config struct {
	Database DatabaseConfig `koanf:"database"`
	Redis    RedisConfig    `koanf:"redis"`
	Auth     AuthConfig     `koanf:"auth"`
	Server   ServerConfig   `koanf:"server"`
	Logging  LoggingConfig  `koanf:"logging"`
	Listing  ListingConfig  `koanf:"listing"`
	Seed     SeedConfig     `koanf:"seed"`
}

// DatabaseConfig describes the Postgres connection. URL, when set, wins over
// the individual fields.
type DatabaseConfig struct {
	URL      string `koanf:"url"`
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Name     string `koanf:"name"`
	User     string `koanf:"user"`
	Password string `koanf:"password"`
}

// RedisConfig also tunes the circuit breaker in front of the token denylist.
type RedisConfig struct {
	Addr            string        `koanf:"addr"`
	Password        string        `koanf:"password"`
	DB              int           `koanf:"db"`
	BreakerFailures uint32        `koanf:"breaker_failures"`
	BreakerTimeout  time.Duration `koanf:"breaker_timeout"`
}

type AuthConfig struct {
	JWTSecret string        `koanf:"jwt_secret"`
	TokenTTL  time.Duration `koanf:"token_ttl"`
}

// ServerConfig.LoginRate is requests per second per client on the account
// endpoints; zero disables limiting.
type ServerConfig struct {
	Addr       string  `koanf:"addr"`
	LoginRate  float64 `koanf:"login_rate"`
	LoginBurst int     `koanf:"login_burst"`
}

type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ListingConfig holds the result caps used by the HTTP layer.
type ListingConfig struct {
	PageSize          int `koanf:"page_size"`
	ReservationsLimit int `koanf:"reservations_limit"`
}

// SeedConfig drives cmd/seed. An empty Fixture selects the built-in fixture.
type SeedConfig struct {
	Workers int    `koanf:"workers"`
	Fixture string `koanf:"fixture"`
}

func defaultConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			Name:     "lightbnb",
			User:     "vagrant",
			Password: "123",
		},
		Redis: RedisConfig{
			Addr:            "localhost:6379",
			BreakerFailures: 5,
			BreakerTimeout:  30 * time.Second,
		},
		Auth: AuthConfig{
			TokenTTL: 24 * time.Hour,
		},
		Server: ServerConfig{
			Addr:       ":8080",
			LoginRate:  1,
			LoginBurst: 5,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Listing: ListingConfig{
			PageSize:          20,
			ReservationsLimit: 10,
		},
		Seed: SeedConfig{
			Workers: 4,
		},
	}
}

// ConnString returns the pgx connection string.
func (d DatabaseConfig) ConnString() string {
	if d.URL != "" {
		return d.URL
	}
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.User, d.Password),
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
		Path:   "/" + d.Name,
	}
	return u.String()
}

// Validate reports settings that cannot work.
func (c *Config) Validate() error {
	var errs []error
	if c.Database.URL == "" && (c.Database.Host == "" || c.Database.Name == "") {
		errs = append(errs, errors.New("database: host and name are required when url is empty"))
	}
	if c.Redis.DB < 0 {
		errs = append(errs, fmt.Errorf("redis: db must be >= 0, got %d", c.Redis.DB))
	}
	if c.Server.LoginRate < 0 {
		errs = append(errs, fmt.Errorf("server: login_rate must be >= 0, got %g", c.Server.LoginRate))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("auth: token_ttl must be positive, got %s", c.Auth.TokenTTL))
	}
	if c.Listing.PageSize <= 0 {
		errs = append(errs, fmt.Errorf("listing: page_size must be positive, got %d", c.Listing.PageSize))
	}
	if c.Listing.ReservationsLimit <= 0 {
		errs = append(errs, fmt.Errorf("listing: reservations_limit must be positive, got %d", c.Listing.ReservationsLimit))
	}
	if c.Seed.Workers <= 0 {
		errs = append(errs, fmt.Errorf("seed: workers must be positive, got %d", c.Seed.Workers))
	}
	return errors.Join(errs...)
}

// String masks secrets.
func (c *Config) String() string {
	return fmt.Sprintf("Config{DB: %s@%s:%d/%s, Redis: %s/%d, HTTP: %s, Auth: *** (masked) ***}",
		c.Database.User, c.Database.Host, c.Database.Port, c.Database.Name,
		c.Redis.Addr, c.Redis.DB, c.Server.Addr)
}
