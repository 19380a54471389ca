// File: internal/router/router.go
package router

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"lightbnb/internal/cache"
	"lightbnb/internal/database"
	"lightbnb/internal/handler"
	"lightbnb/internal/handler/properties"
	"lightbnb/internal/handler/reservations"
	"lightbnb/internal/handler/users"
	"lightbnb/internal/middleware"
	"lightbnb/internal/service"
)

// Options carries the listing defaults used by the handlers and the
// per-client limit on the account endpoints. LoginRate <= 0 disables it.
type Options struct {
	PageSize          int
	ReservationsLimit int
	LoginRate         float64
	LoginBurst        int
}

func accountLimiter(opts Options) echo.MiddlewareFunc {
	if opts.LoginRate <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	store := echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(opts.LoginRate),
		Burst:     opts.LoginBurst,
		ExpiresIn: 3 * time.Minute,
	})
	return echomw.RateLimiter(store)
}

// Setup registers every route under /api.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, tokens *service.Tokens, opts Options) {
	auth := middleware.RequireAuth(tokens)
	limit := accountLimiter(opts)
	api := e.Group("/api")

	api.GET("/ping", handler.PingHandler(db, rdb))

	// accounts
	api.POST("/users", users.CreateUserHandler(db, tokens), limit)
	api.POST("/users/login", users.LoginHandler(db, tokens), limit)
	api.POST("/users/logout", users.LogoutHandler(tokens), auth)
	api.GET("/users/me", users.GetMyUserHandler(db), auth)

	api.GET("/properties", properties.SearchPropertiesHandler(db, opts.PageSize))
	api.POST("/properties", properties.CreatePropertyHandler(db), auth)

	api.GET("/reservations", reservations.ListReservationsHandler(db, opts.ReservationsLimit), auth)
}
