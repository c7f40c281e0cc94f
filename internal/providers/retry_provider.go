package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/umpire-auditor/internal/domain/games"
	"github.com/preston-bernstein/umpire-auditor/internal/logging"
	"github.com/preston-bernstein/umpire-auditor/internal/metrics"
)

const (
	defaultRetryAttempts = 3
	defaultBackoff       = 200 * time.Millisecond
)

// retryingProvider wraps a GameProvider with exponential backoff and metrics.
type retryingProvider struct {
	inner        GameProvider
	logger       *slog.Logger
	metrics      *metrics.Recorder
	providerName string
	maxAttempts  int
	newBackOff   func() backoff.BackOff
}

// NewRetryingProvider wraps the given provider with retries. If maxAttempts/initial are <= 0, defaults are used.
func NewRetryingProvider(inner GameProvider, logger *slog.Logger, rec *metrics.Recorder, name string, maxAttempts int, initial time.Duration) GameProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if initial <= 0 {
		initial = defaultBackoff
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if name == "" {
		name = "provider"
	}
	return &retryingProvider{
		inner:        inner,
		logger:       logger,
		metrics:      rec,
		providerName: name,
		maxAttempts:  maxAttempts,
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.InitialInterval = initial
			b.MaxElapsedTime = 0
			b.Reset()
			return b
		},
	}
}

func (r *retryingProvider) FetchSchedule(ctx context.Context, date string) ([]int, error) {
	return withRetry(ctx, r, func(ctx context.Context) ([]int, error) {
		return r.inner.FetchSchedule(ctx, date)
	}, slog.String(logging.FieldDate, date))
}

func (r *retryingProvider) FetchGame(ctx context.Context, gameID int) (games.Feed, error) {
	return withRetry(ctx, r, func(ctx context.Context) (games.Feed, error) {
		return r.inner.FetchGame(ctx, gameID)
	}, slog.Int(logging.FieldGameID, gameID))
}

func withRetry[T any](ctx context.Context, r *retryingProvider, call func(context.Context) (T, error), attr slog.Attr) (T, error) {
	var out T
	if r == nil || r.inner == nil {
		return out, ErrProviderUnavailable
	}

	policy := &retryAfterBackOff{next: r.newBackOff()}
	b := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(r.maxAttempts-1)), ctx)
	logger := logging.FromContext(ctx, r.logger).With(slog.String(logging.FieldProvider, r.providerName))

	attempt := 0
	op := func() error {
		attempt++
		start := time.Now()
		v, err := call(ctx)
		r.metrics.RecordProviderAttempt(r.providerName, time.Since(start), err)
		if err == nil {
			out = v
			return nil
		}
		if rl, ok := AsRateLimitError(err); ok {
			r.metrics.RecordRateLimit(r.providerName, rl.RetryAfter)
			policy.retryAfter = rl.RetryAfter
		}
		if !IsRetryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}
	notify := func(err error, delay time.Duration) {
		logger.WarnContext(ctx, "provider fetch retry",
			"attempt", attempt, "max_attempts", r.maxAttempts, "delay", delay, logging.Err(err), attr)
	}

	if err := backoff.RetryNotify(op, b, notify); err != nil {
		logger.WarnContext(ctx, "provider fetch failed",
			"attempts", attempt, logging.Err(err), attr)
		var zero T
		return zero, err
	}
	return out, nil
}

// retryAfterBackOff prefers an upstream Retry-After over the computed delay for the next attempt.
type retryAfterBackOff struct {
	next       backoff.BackOff
	retryAfter time.Duration
}

func (b *retryAfterBackOff) NextBackOff() time.Duration {
	delay := b.next.NextBackOff()
	if delay == backoff.Stop {
		return delay
	}
	if b.retryAfter > 0 {
		delay, b.retryAfter = b.retryAfter, 0
	}
	return delay
}

func (b *retryAfterBackOff) Reset() {
	b.retryAfter = 0
	b.next.Reset()
}
