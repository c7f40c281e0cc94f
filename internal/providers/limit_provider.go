package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/umpire-auditor/internal/domain/games"
	"github.com/preston-bernstein/umpire-auditor/internal/logging"
)

// rateLimitedProvider wraps a GameProvider and enforces a minimum interval between calls.
type rateLimitedProvider struct {
	next     GameProvider
	interval time.Duration
	ticker   *time.Ticker
	logger   *slog.Logger
}

// NewRateLimitedProvider returns a GameProvider that limits calls to the given interval.
// Calls block until the interval elapses to avoid exceeding upstream quotas.
func NewRateLimitedProvider(next GameProvider, interval time.Duration, logger *slog.Logger) GameProvider {
	if interval <= 0 {
		interval = time.Minute
	}
	return &rateLimitedProvider{
		next:     next,
		interval: interval,
		ticker:   time.NewTicker(interval),
		logger:   logger,
	}
}

func (p *rateLimitedProvider) FetchSchedule(ctx context.Context, date string) ([]int, error) {
	if err := p.wait(ctx); err != nil {
		return nil, err
	}
	logging.Debug(p.logger, "rate-limited schedule fetch", slog.String(logging.FieldProvider, p.Name()), slog.String(logging.FieldDate, date))
	return p.next.FetchSchedule(ctx, date)
}

func (p *rateLimitedProvider) FetchGame(ctx context.Context, gameID int) (games.Feed, error) {
	if err := p.wait(ctx); err != nil {
		return games.Feed{}, err
	}
	logging.Debug(p.logger, "rate-limited game fetch", slog.String(logging.FieldProvider, p.Name()), slog.Int(logging.FieldGameID, gameID))
	return p.next.FetchGame(ctx, gameID)
}

// Name reports the wrapped provider's name when it has one.
func (p *rateLimitedProvider) Name() string {
	if named, ok := p.next.(interface{ Name() string }); ok {
		return named.Name()
	}
	return "rate-limited"
}

// Close stops the underlying ticker.
func (p *rateLimitedProvider) Close() {
	if p != nil && p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *rateLimitedProvider) wait(ctx context.Context) error {
	if p == nil || p.next == nil {
		if p != nil {
			logging.Warn(p.logger, "provider unavailable", slog.String(logging.FieldProvider, p.Name()))
		}
		return ErrProviderUnavailable
	}
	select {
	case <-ctx.Done():
		logging.Warn(p.logger, "rate-limited fetch canceled", slog.String(logging.FieldProvider, p.Name()))
		return ctx.Err()
	case <-p.ticker.C:
		return nil
	}
}
