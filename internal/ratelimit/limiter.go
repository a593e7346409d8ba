package ratelimit

import (
	"context"
	"fmt"
	"math/rand/v2"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/suitter-labs/suitter-indexer/internal/adapter"
	"github.com/suitter-labs/suitter-indexer/internal/logger"
)

const DEFAULT_KEY_PREFIX = "suitter:limiter:"

// Config holds the request budget for one upstream provider
type Config struct {
	RequestsPerSecond int
	Burst             int
	KeyPrefix         string
}

// Limiter blocks callers until a request token for a provider is available
//
//go:generate mockgen -source=limiter.go -destination=../mocks/ratelimit.go -package=mocks -mock_names=Limiter=MockLimiter
type Limiter interface {
	// Wait blocks until a token for key is acquired or ctx is done
	Wait(ctx context.Context, key string) error
}

type limiter struct {
	config         Config
	distributed    adapter.RedisRateLimiter
	local          *rate.Limiter
	clock          adapter.Clock
	redisAvailable atomic.Bool
}

// NewLimiter creates a limiter. With a distributed limiter the budget is shared
// through redis across instances, falling back to a process-local token bucket
// when redis errors. A nil distributed limiter gives a local-only limiter.
func NewLimiter(cfg Config, distributed adapter.RedisRateLimiter, clock adapter.Clock) (Limiter, error) {
	if cfg.RequestsPerSecond <= 0 {
		return nil, fmt.Errorf("requests_per_second must be positive")
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerSecond
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = DEFAULT_KEY_PREFIX
	}

	l := &limiter{
		config:      cfg,
		distributed: distributed,
		local:       rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		clock:       clock,
	}
	l.redisAvailable.Store(distributed != nil)
	return l, nil
}

func (l *limiter) Wait(ctx context.Context, key string) error {
	for l.redisAvailable.Load() {
		res, err := l.distributed.Allow(ctx, l.config.KeyPrefix+key, redis_rate.Limit{
			Rate:   l.config.RequestsPerSecond,
			Burst:  l.config.Burst,
			Period: time.Second,
		})
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			l.redisAvailable.Store(false)
			logger.WarnCtx(ctx, "Redis rate limiter error, falling back to local",
				zap.String("key", key),
				zap.Error(err))
			break
		}
		if res.Allowed > 0 {
			return nil
		}

		// spread retries over 50-150% of the advertised wait
		jitter := time.Duration(float64(res.RetryAfter) * (0.5 + rand.Float64())) //nolint:gosec
		logger.DebugCtx(ctx, "Rate limit token unavailable, waiting",
			zap.String("key", key),
			zap.Duration("retry_after", jitter))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.clock.After(jitter):
		}
	}

	return l.local.Wait(ctx)
}

// transport waits for a token before every round trip
type transport struct {
	base    http.RoundTripper
	limiter Limiter
	key     string
}

// NewTransport wraps base so that every round trip draws from the budget for key
func NewTransport(base http.RoundTripper, limiter Limiter, key string) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &transport{base: base, limiter: limiter, key: key}
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context(), t.key); err != nil {
		if req.Body != nil {
			_ = req.Body.Close()
		}
		return nil, fmt.Errorf("failed to acquire rate limit token: %w", err)
	}
	return t.base.RoundTrip(req)
}
