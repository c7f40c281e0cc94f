package providers

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRateLimitedProviderBlocksUntilTick(t *testing.T) {
	inner := &flakeyProvider{}
	rl := NewRateLimitedProvider(inner, 5*time.Millisecond, nil).(*rateLimitedProvider)
	defer rl.Close()

	start := time.Now()
	if _, err := rl.FetchSchedule(context.Background(), "2024-01-01"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := rl.FetchGame(context.Background(), 1); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	elapsed := time.Since(start)
	if elapsed < 10*time.Millisecond {
		t.Fatalf("expected calls to wait for ticker, elapsed %s", elapsed)
	}
	if inner.calls != 2 {
		t.Fatalf("expected inner provider called twice, got %d", inner.calls)
	}
}

func TestRateLimitedProviderRespectsCanceledContext(t *testing.T) {
	inner := &flakeyProvider{}
	rl := NewRateLimitedProvider(inner, time.Minute, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := rl.FetchGame(ctx, 1); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context canceled error, got %v", err)
	}
	if inner.calls != 0 {
		t.Fatalf("expected inner provider not called on canceled context")
	}
}

func TestRateLimitedProviderHandlesNilInner(t *testing.T) {
	var inner GameProvider
	rl := NewRateLimitedProvider(inner, time.Millisecond, nil)

	_, err := rl.FetchSchedule(context.Background(), "2024-01-01")
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestRateLimitedProviderDefaultsInterval(t *testing.T) {
	rl := NewRateLimitedProvider(&flakeyProvider{}, 0, nil).(*rateLimitedProvider)
	if rl.interval != time.Minute {
		t.Fatalf("expected default interval 1m, got %s", rl.interval)
	}
	rl.Close()
}

type namedProvider struct{ flakeyProvider }

func (namedProvider) Name() string { return "statsapi" }

func TestRateLimitedProviderNamesAfterInner(t *testing.T) {
	named := NewRateLimitedProvider(&namedProvider{}, time.Millisecond, nil).(*rateLimitedProvider)
	defer named.Close()
	if named.Name() != "statsapi" {
		t.Fatalf("expected inner name, got %s", named.Name())
	}

	anon := NewRateLimitedProvider(&flakeyProvider{}, time.Millisecond, nil).(*rateLimitedProvider)
	defer anon.Close()
	if anon.Name() != "rate-limited" {
		t.Fatalf("expected fallback name, got %s", anon.Name())
	}
}
