package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"lightbnb/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct {
	claims *service.Claims
	err    error
	got    string
}

func (s *stubVerifier) Verify(_ context.Context, token string) (*service.Claims, error) {
	s.got = token
	return s.claims, s.err
}

func newContext(auth string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var he *echo.HTTPError
	require.True(t, errors.As(err, &he))
	return he.Code
}

func TestExtractClaims(t *testing.T) {
	ok := &stubVerifier{claims: &service.Claims{UserID: 1}}

	ctx, _ := newContext("")
	_, err := extractClaims(ctx, ok)
	require.Equal(t, http.StatusUnauthorized, statusOf(t, err))

	ctx, _ = newContext("BadHeader")
	_, err = extractClaims(ctx, ok)
	require.Equal(t, http.StatusUnauthorized, statusOf(t, err))

	ctx, _ = newContext("Bearer invalid")
	_, err = extractClaims(ctx, &stubVerifier{err: errors.New("malformed")})
	require.Equal(t, http.StatusUnauthorized, statusOf(t, err))

	ctx, _ = newContext("Bearer old")
	_, err = extractClaims(ctx, &stubVerifier{err: service.ErrTokenRevoked})
	require.Contains(t, err.Error(), "token revoked")

	ctx, _ = newContext("bearer tok")
	claims, err := extractClaims(ctx, ok)
	require.NoError(t, err)
	require.Equal(t, 1, claims.UserID)
	require.Equal(t, "tok", ok.got)
}

func TestRequireAuth(t *testing.T) {
	v := &stubVerifier{claims: &service.Claims{UserID: 2}}

	ctx, rec := newContext("Bearer tok")
	called := false
	h := RequireAuth(v)(func(c echo.Context) error {
		called = true
		require.Equal(t, 2, CurrentClaims(c).UserID)
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, h(ctx))
	require.True(t, called)
	require.Equal(t, http.StatusOK, rec.Code)

	ctx, _ = newContext("")
	called = false
	err := RequireAuth(v)(func(echo.Context) error { called = true; return nil })(ctx)
	require.Error(t, err)
	require.False(t, called)
}

func TestCurrentClaimsMissing(t *testing.T) {
	ctx, _ := newContext("")
	require.Nil(t, CurrentClaims(ctx))
}
