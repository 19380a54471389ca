// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequests counts handled requests by route template and status.
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lightbnb_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lightbnb_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "route"},
	)

	// RepositoryErrors counts database failures swallowed by the repository.
	// Labels:
	//   - op: repository function name, e.g. "GetAllProperties"
	RepositoryErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lightbnb_repository_errors_total",
			Help: "Total number of failed repository queries",
		},
		[]string{"op"},
	)

	// LoginAttempts counts logins by outcome: "success" or "failure".
	LoginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lightbnb_login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"outcome"},
	)

	// DenylistBreakerState is 0 closed, 1 half-open, 2 open.
	DenylistBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "lightbnb_denylist_breaker_state",
			Help: "State of the token denylist circuit breaker",
		},
	)
)

// Middleware records HTTPRequests and HTTPDuration for every request.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if he, ok := err.(*echo.HTTPError); ok {
				status = he.Code
			} else if err != nil {
				status = 500
			}
			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			HTTPRequests.WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).Inc()
			HTTPDuration.WithLabelValues(c.Request().Method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// Handler serves the default registry in the Prometheus text format.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
