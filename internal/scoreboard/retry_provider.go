package scoreboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"pressbox-service/internal/domain"
	"pressbox-service/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultInitialDelay  = 200 * time.Millisecond
)

// retryingProvider wraps a Provider with exponential backoff retries.
// Rate-limit responses override the backoff with the upstream Retry-After.
type retryingProvider struct {
	inner        Provider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	initialDelay time.Duration
}

// NewRetryingProvider wraps the given provider with retries.
// If maxAttempts/initialDelay are <= 0, defaults are used.
func NewRetryingProvider(inner Provider, logger *slog.Logger, recorder *metrics.Recorder, name string, maxAttempts int, initialDelay time.Duration) Provider {
	if name == "" {
		name = "scoreboard"
	}
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initialDelay <= 0 {
		initialDelay = defaultInitialDelay
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      recorder,
		providerName: name,
		maxAttempts:  maxAttempts,
		initialDelay: initialDelay,
	}
}

// rateLimitBackOff defers to the wrapped policy unless an upstream
// Retry-After is pending, in which case that delay wins once.
type rateLimitBackOff struct {
	backoff.BackOff
	retryAfter time.Duration
}

func (b *rateLimitBackOff) NextBackOff() time.Duration {
	if b.retryAfter > 0 {
		d := b.retryAfter
		b.retryAfter = 0
		return d
	}
	return b.BackOff.NextBackOff()
}

func (b *rateLimitBackOff) Reset() {
	b.retryAfter = 0
	b.BackOff.Reset()
}

func (r *retryingProvider) FetchGames(ctx context.Context, sport domain.Sport) ([]domain.Game, error) {
	if r.inner == nil {
		return nil, ErrProviderUnavailable
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.initialDelay
	rl := &rateLimitBackOff{BackOff: bo}
	policy := backoff.WithContext(backoff.WithMaxRetries(rl, uint64(r.maxAttempts-1)), ctx)

	attempt := 0
	var games []domain.Game
	operation := func() error {
		attempt++
		start := time.Now()
		fetched, err := r.inner.FetchGames(ctx, sport)
		r.metrics.RecordProviderAttempt(r.providerName, time.Since(start), err)
		if err == nil {
			games = fetched
			return nil
		}

		if rlErr, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.providerName, rlErr.RetryAfter)
			if rlErr.RetryAfter > 0 {
				rl.retryAfter = rlErr.RetryAfter
				r.logWarn("provider rate limited", "retry_after", rlErr.RetryAfter, "attempt", attempt)
				return err
			}
		}
		r.logWarn("provider fetch retry", "attempt", attempt, "max_attempts", r.maxAttempts, "err", err)
		return err
	}

	if err := backoff.Retry(operation, policy); err != nil {
		r.logWarn("provider fetch failed", "attempts", attempt, "err", err)
		return nil, err
	}
	return games, nil
}

func (r *retryingProvider) logWarn(msg string, args ...any) {
	if r.logger != nil {
		r.logger.Warn(msg, append(args, slog.String("provider", r.providerName))...)
	}
}
