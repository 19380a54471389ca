package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(Middleware())
	e.GET("/api/things/:id", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	e.GET("/api/fail", func(c echo.Context) error { return echo.NewHTTPError(http.StatusUnauthorized) })

	okBefore := testutil.ToFloat64(HTTPRequests.WithLabelValues(http.MethodGet, "/api/things/:id", "204"))
	failBefore := testutil.ToFloat64(HTTPRequests.WithLabelValues(http.MethodGet, "/api/fail", "401"))

	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/things/1", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/things/2", nil))
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/fail", nil))

	require.Equal(t, okBefore+2, testutil.ToFloat64(HTTPRequests.WithLabelValues(http.MethodGet, "/api/things/:id", "204")))
	require.Equal(t, failBefore+1, testutil.ToFloat64(HTTPRequests.WithLabelValues(http.MethodGet, "/api/fail", "401")))
}

func TestHandler(t *testing.T) {
	RepositoryErrors.WithLabelValues("AddUser").Inc()

	e := echo.New()
	e.GET("/metrics", Handler())
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `lightbnb_repository_errors_total{op="AddUser"}`)
}
