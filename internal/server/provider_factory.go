package server

import (
	"log/slog"

	"github.com/preston-bernstein/umpire-auditor/internal/config"
	"github.com/preston-bernstein/umpire-auditor/internal/metrics"
	"github.com/preston-bernstein/umpire-auditor/internal/providers"
)

// providerFactory assembles the provider with shared wrappers (rate limit + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

// build returns the wrapped provider and a func that releases the limiter's ticker.
// The fixture provider is local, so only the upstream client is rate limited.
func (f providerFactory) build(cfg config.Config) (providers.GameProvider, func()) {
	base := selectProvider(cfg, f.logger)
	name := providerName(cfg.Provider, base)

	release := func() {}
	next := base
	if cfg.Provider != config.ProviderFixture {
		next = providers.NewRateLimitedProvider(base, cfg.MLBStats.MinInterval, f.logger)
		if rl, ok := next.(interface{ Close() }); ok {
			release = rl.Close
		}
	}
	return providers.NewRetryingProvider(next, f.logger, f.metrics, name, cfg.MLBStats.MaxAttempts, cfg.MLBStats.InitialBackoff), release
}
