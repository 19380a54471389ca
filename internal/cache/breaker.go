package cache

import (
	"context"
	"errors"
	"time"

	"lightbnb/internal/logging"
	"lightbnb/internal/metrics"

	"github.com/redis/go-redis/v9"
	gobreaker "github.com/sony/gobreaker/v2"
)

// BreakerConfig tunes the circuit breaker in front of Redis.
type BreakerConfig struct {
	FailureThreshold uint32
	Timeout          time.Duration
}

// Breaker guards Get and Set with a circuit breaker. While the breaker is
// open commands fail fast with gobreaker.ErrOpenState. redis.Nil is a
// normal answer and never counts as a failure.
type Breaker struct {
	Cache
	cb *gobreaker.CircuitBreaker[any]
}

func NewBreaker(c Cache, cfg BreakerConfig) *Breaker {
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}
	settings := gobreaker.Settings{
		Name:    "redis-denylist",
		Timeout: cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, redis.Nil)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.DenylistBreakerState.Set(float64(to))
			logging.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).Msg("circuit breaker state changed")
		},
	}
	return &Breaker{Cache: c, cb: gobreaker.NewCircuitBreaker[any](settings)}
}

// State returns "closed", "half-open" or "open".
func (b *Breaker) State() string {
	return b.cb.State().String()
}

func (b *Breaker) Get(ctx context.Context, key string) *redis.StringCmd {
	res, err := b.cb.Execute(func() (any, error) {
		cmd := b.Cache.Get(ctx, key)
		return cmd, cmd.Err()
	})
	if cmd, ok := res.(*redis.StringCmd); ok {
		return cmd
	}
	return redis.NewStringResult("", err)
}

func (b *Breaker) Set(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
	res, err := b.cb.Execute(func() (any, error) {
		cmd := b.Cache.Set(ctx, key, value, ttl)
		return cmd, cmd.Err()
	})
	if cmd, ok := res.(*redis.StatusCmd); ok {
		return cmd
	}
	return redis.NewStatusResult("", err)
}
