package server

import (
	"context"
	"testing"

	"github.com/preston-bernstein/umpire-auditor/internal/config"
	"github.com/preston-bernstein/umpire-auditor/internal/providers/fixture"
	"github.com/preston-bernstein/umpire-auditor/internal/providers/mlbstats"
)

func TestSelectProvider(t *testing.T) {
	if _, ok := selectProvider(config.Config{Provider: config.ProviderFixture}, nil).(*fixture.Provider); !ok {
		t.Fatalf("expected fixture provider")
	}
	if _, ok := selectProvider(config.Config{Provider: config.ProviderMLBStats}, nil).(*mlbstats.Client); !ok {
		t.Fatalf("expected mlbstats client")
	}
	if _, ok := selectProvider(config.Config{Provider: "unknown"}, nil).(*fixture.Provider); !ok {
		t.Fatalf("expected fixture fallback for unknown provider")
	}
}

func TestProviderName(t *testing.T) {
	if got := providerName("", mlbstats.NewClient(mlbstats.Config{})); got != "mlbstats" {
		t.Fatalf("expected self-reported name, got %q", got)
	}
	if got := providerName("Fixture", fixture.New()); got != "fixture" {
		t.Fatalf("expected lower-cased config name, got %q", got)
	}
	if got := providerName("", nil); got != "provider" {
		t.Fatalf("expected generic name, got %q", got)
	}
}

func TestProviderFactoryBuildsFixtureChain(t *testing.T) {
	cfg := config.Default()
	cfg.Provider = config.ProviderFixture

	prov, release := newProviderFactory(nil, nil).build(cfg)
	defer release()

	ids, err := prov.FetchSchedule(context.Background(), fixture.Date)
	if err != nil || len(ids) != 3 {
		t.Fatalf("expected fixture schedule through wrappers, got %v err %v", ids, err)
	}
}

func TestProviderFactoryRateLimitsUpstream(t *testing.T) {
	cfg := config.Default()
	prov, release := newProviderFactory(nil, nil).build(cfg)
	if prov == nil {
		t.Fatalf("expected provider")
	}
	// releasing twice must not panic
	release()
	release()
}
