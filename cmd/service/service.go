// @title        LightBnB API
// @version      1.0
// @description  Property listings, guest reservations and accounts for LightBnB
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"lightbnb/internal/cache"
	"lightbnb/internal/config"
	"lightbnb/internal/database"
	"lightbnb/internal/logging"
	"lightbnb/internal/metrics"
	"lightbnb/internal/router"
	"lightbnb/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "lightbnb/docs"

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	loadConfig     = config.Load
	newPgxPool     = database.NewPgxPool
	newRedisClient = cache.NewRedisClient
	startServer    = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc       = os.Exit
)

func requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			ev := logging.Info()
			if v.Error != nil {
				ev = logging.Error().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	})
}

func newServer(cfg *config.Config, db database.DB, rdb cache.Cache) *echo.Echo {
	denylist := cache.NewBreaker(rdb, cache.BreakerConfig{
		FailureThreshold: cfg.Redis.BreakerFailures,
		Timeout:          cfg.Redis.BreakerTimeout,
	})
	tokens := service.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, denylist)

	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(requestLogger())
	e.Use(middleware.Recover())
	e.Use(metrics.Middleware())

	router.Setup(e, db, rdb, tokens, router.Options{
		PageSize:          cfg.Listing.PageSize,
		ReservationsLimit: cfg.Listing.ReservationsLimit,
		LoginRate:         cfg.Server.LoginRate,
		LoginBurst:        cfg.Server.LoginBurst,
	})

	e.GET("/metrics", metrics.Handler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return e
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.Auth.JWTSecret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
	logging.Info().Stringer("config", cfg).Msg("starting")

	db, err := newPgxPool(context.Background(), cfg.Database.ConnString())
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	rdb, err := newRedisClient(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	defer rdb.Close()

	e := newServer(cfg, db, rdb)
	return startServer(e, cfg.Server.Addr)
}

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("service stopped")
		exitFunc(1)
	}
}
