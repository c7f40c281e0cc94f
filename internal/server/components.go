package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/umpire-auditor/internal/audit"
	"github.com/preston-bernstein/umpire-auditor/internal/config"
	"github.com/preston-bernstein/umpire-auditor/internal/metrics"
	"github.com/preston-bernstein/umpire-auditor/internal/providers"
	"github.com/preston-bernstein/umpire-auditor/internal/report"
	"github.com/preston-bernstein/umpire-auditor/internal/store"
)

// Components is the audit wiring shared by the server and the batch commands.
type Components struct {
	Provider providers.GameProvider
	Store    store.Store
	Auditor  *audit.Service
	Runner   *audit.Runner
	Reports  *report.Service

	release func()
}

// Build opens the store and assembles the provider chain, auditor and runner.
func Build(ctx context.Context, cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*Components, error) {
	st, err := store.Open(ctx, store.Config{
		Driver:       cfg.Database.Driver,
		DSN:          cfg.Database.DSN,
		MaxOpenConns: cfg.Database.MaxOpenConns,
		PingTimeout:  cfg.Database.PingTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	provider, release := newProviderFactory(logger, recorder).build(cfg)
	return assemble(cfg, logger, recorder, provider, st, release), nil
}

func assemble(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder, provider providers.GameProvider, st store.Store, release func()) *Components {
	auditor := audit.NewService(provider, st, logger, recorder, audit.Options{
		GameTypes:              cfg.Grading.GameTypes,
		BadDataThresholdInches: cfg.Grading.BadDataThresholdInches,
	})
	return &Components{
		Provider: provider,
		Store:    st,
		Auditor:  auditor,
		Runner:   audit.NewRunner(provider, auditor, cfg.Audit.Workers, logger),
		Reports:  report.NewService(st),
		release:  release,
	}
}

// Close stops the provider limiter and closes the store.
func (c *Components) Close() error {
	if c == nil {
		return nil
	}
	if c.release != nil {
		c.release()
	}
	if c.Store == nil {
		return nil
	}
	if err := c.Store.Close(); err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	return nil
}
