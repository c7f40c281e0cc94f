package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/preston-bernstein/umpire-auditor/internal/domain/games"
	"github.com/preston-bernstein/umpire-auditor/internal/metrics"
)

type flakeyProvider struct {
	failures int
	err      error
	calls    int
}

func (f *flakeyProvider) fail() error {
	f.calls++
	if f.calls <= f.failures {
		if f.err != nil {
			return f.err
		}
		return errors.New("boom")
	}
	return nil
}

func (f *flakeyProvider) FetchSchedule(ctx context.Context, date string) ([]int, error) {
	if err := f.fail(); err != nil {
		return nil, err
	}
	return []int{745001}, nil
}

func (f *flakeyProvider) FetchGame(ctx context.Context, gameID int) (games.Feed, error) {
	if err := f.fail(); err != nil {
		return games.Feed{}, err
	}
	return games.Feed{GameID: gameID}, nil
}

func noDelay(p GameProvider) *retryingProvider {
	rp := p.(*retryingProvider)
	rp.newBackOff = func() backoff.BackOff { return &backoff.ZeroBackOff{} }
	return rp
}

func TestRetryingProviderRetriesAndSucceeds(t *testing.T) {
	fp := &flakeyProvider{failures: 2}
	rp := noDelay(NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 3, time.Millisecond))

	ids, err := rp.FetchSchedule(context.Background(), "2024-06-02")
	if err != nil {
		t.Fatalf("expected success, got error %v", err)
	}
	if len(ids) != 1 || ids[0] != 745001 {
		t.Fatalf("unexpected ids %+v", ids)
	}
	if fp.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", fp.calls)
	}
}

func TestRetryingProviderStopsAfterMaxAttempts(t *testing.T) {
	fp := &flakeyProvider{failures: 5}
	rp := noDelay(NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 2, time.Millisecond))

	_, err := rp.FetchGame(context.Background(), 1)
	if err == nil {
		t.Fatal("expected error after retries")
	}
	if fp.calls != 2 {
		t.Fatalf("expected 2 attempts, got %d", fp.calls)
	}
}

func TestRetryingProviderDoesNotRetryClientErrors(t *testing.T) {
	fp := &flakeyProvider{failures: 5, err: &StatusError{Provider: "p", StatusCode: 404}}
	rp := noDelay(NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 4, time.Millisecond))

	_, err := rp.FetchGame(context.Background(), 1)
	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.StatusCode != 404 {
		t.Fatalf("expected the 404 to surface, got %v", err)
	}
	if fp.calls != 1 {
		t.Fatalf("expected a single attempt, got %d", fp.calls)
	}
}

func TestRetryingProviderRespectsContextCancel(t *testing.T) {
	fp := &flakeyProvider{failures: 5}
	rp := NewRetryingProvider(fp, nil, metrics.NewRecorder(), "flakey", 3, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := rp.FetchSchedule(ctx, "2024-06-02")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
	if fp.calls > 1 {
		t.Fatalf("expected no retries after cancellation, got %d calls", fp.calls)
	}
}

func TestRetryingProviderRecordsRateLimitMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	fp := &flakeyProvider{failures: 1, err: &RateLimitError{Provider: "test", StatusCode: 429, RetryAfter: time.Millisecond}}
	rp := noDelay(NewRetryingProvider(fp, nil, rec, "rl", 2, time.Millisecond))

	feed, err := rp.FetchGame(context.Background(), 7)
	if err != nil {
		t.Fatalf("expected success after retry, got %v", err)
	}
	if feed.GameID != 7 {
		t.Fatalf("unexpected feed %+v", feed)
	}
	if got := rec.RateLimitHits("rl"); got != 1 {
		t.Fatalf("expected 1 rate limit hit, got %d", got)
	}
	if got := rec.ProviderCalls("rl"); got != 2 {
		t.Fatalf("expected 2 provider calls, got %d", got)
	}
	if got := rec.ProviderErrors("rl"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastRetryAfter("rl"); got != time.Millisecond {
		t.Fatalf("expected retry-after recorded, got %s", got)
	}
}

func TestRetryAfterOverridesComputedDelay(t *testing.T) {
	b := &retryAfterBackOff{next: backoff.NewConstantBackOff(50 * time.Millisecond)}
	if got := b.NextBackOff(); got != 50*time.Millisecond {
		t.Fatalf("expected computed delay, got %s", got)
	}
	b.retryAfter = 3 * time.Second
	if got := b.NextBackOff(); got != 3*time.Second {
		t.Fatalf("expected retry-after delay, got %s", got)
	}
	if got := b.NextBackOff(); got != 50*time.Millisecond {
		t.Fatalf("retry-after applies once, got %s", got)
	}

	stopped := &retryAfterBackOff{next: &backoff.StopBackOff{}, retryAfter: time.Second}
	if got := stopped.NextBackOff(); got != backoff.Stop {
		t.Fatalf("expected stop to win, got %s", got)
	}
}

func TestNewRetryingProviderDefaults(t *testing.T) {
	rp := NewRetryingProvider(nil, nil, metrics.NewRecorder(), "", 0, 0).(*retryingProvider)
	if rp.providerName != "provider" {
		t.Fatalf("expected fallback provider name, got %s", rp.providerName)
	}
	if rp.maxAttempts != defaultRetryAttempts {
		t.Fatalf("expected default attempts, got %d", rp.maxAttempts)
	}
	exp, ok := rp.newBackOff().(*backoff.ExponentialBackOff)
	if !ok || exp.InitialInterval != defaultBackoff {
		t.Fatalf("expected exponential backoff starting at default interval")
	}
	if _, err := rp.FetchSchedule(context.Background(), ""); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
