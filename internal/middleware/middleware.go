package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"lightbnb/internal/service"

	"github.com/labstack/echo/v4"
)

const ContextUserKey = "user"

// TokenVerifier is satisfied by *service.Tokens.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*service.Claims, error)
}

func extractClaims(c echo.Context, v TokenVerifier) (*service.Claims, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	claims, err := v.Verify(c.Request().Context(), parts[1])
	if errors.Is(err, service.ErrTokenRevoked) {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
	}
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	return claims, nil
}

// RequireAuth stores the verified *service.Claims under ContextUserKey.
func RequireAuth(v TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, v)
			if err != nil {
				return err
			}
			c.Set(ContextUserKey, claims)
			return next(c)
		}
	}
}

// CurrentClaims returns the claims set by RequireAuth, or nil.
func CurrentClaims(c echo.Context) *service.Claims {
	claims, _ := c.Get(ContextUserKey).(*service.Claims)
	return claims
}
