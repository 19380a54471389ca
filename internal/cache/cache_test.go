package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestFakeCache(t *testing.T) {
	c := &FakeCache{}
	require.Panics(t, func() { c.Get(context.Background(), "k") })
	require.Panics(t, func() { c.Set(context.Background(), "k", 1, 0) })
	require.Panics(t, func() { c.Ping(context.Background()) })
	require.NoError(t, c.Close())

	c.CloseFn = func() error { return errors.New("close") }
	require.EqualError(t, c.Close(), "close")
}

func TestRevokeToken(t *testing.T) {
	t.Run("stores with ttl", func(t *testing.T) {
		var gotKey string
		var gotTTL time.Duration
		c := &FakeCache{SetFn: func(_ context.Context, key string, _ any, ttl time.Duration) *redis.StatusCmd {
			gotKey, gotTTL = key, ttl
			return redis.NewStatusResult("OK", nil)
		}}
		require.NoError(t, RevokeToken(context.Background(), c, "abc", time.Minute))
		require.Equal(t, "lightbnb:revoked:abc", gotKey)
		require.Equal(t, time.Minute, gotTTL)
	})

	t.Run("expired token skipped", func(t *testing.T) {
		c := &FakeCache{}
		require.NoError(t, RevokeToken(context.Background(), c, "abc", 0))
	})

	t.Run("set error", func(t *testing.T) {
		c := &FakeCache{SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("", errors.New("down"))
		}}
		require.Error(t, RevokeToken(context.Background(), c, "abc", time.Minute))
	})
}

func TestIsRevoked(t *testing.T) {
	get := func(err error) *FakeCache {
		return &FakeCache{GetFn: func(context.Context, string) *redis.StringCmd {
			return redis.NewStringResult("1", err)
		}}
	}

	revoked, err := IsRevoked(context.Background(), get(nil), "a")
	require.NoError(t, err)
	require.True(t, revoked)

	revoked, err = IsRevoked(context.Background(), get(redis.Nil), "a")
	require.NoError(t, err)
	require.False(t, revoked)

	_, err = IsRevoked(context.Background(), get(errors.New("down")), "a")
	require.Error(t, err)
}
