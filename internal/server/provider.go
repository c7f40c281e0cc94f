package server

import (
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/umpire-auditor/internal/config"
	"github.com/preston-bernstein/umpire-auditor/internal/providers"
	"github.com/preston-bernstein/umpire-auditor/internal/providers/fixture"
	"github.com/preston-bernstein/umpire-auditor/internal/providers/mlbstats"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.GameProvider {
	switch cfg.Provider {
	case config.ProviderFixture:
		return fixture.New()
	case config.ProviderMLBStats, "":
		return mlbstats.NewClient(mlbstats.Config{
			BaseURL:    cfg.MLBStats.BaseURL,
			UserAgent:  cfg.MLBStats.UserAgent,
			HTTPClient: &http.Client{Timeout: cfg.MLBStats.Timeout},
		})
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to fixture", slog.String("provider", cfg.Provider))
		}
		return fixture.New()
	}
}
