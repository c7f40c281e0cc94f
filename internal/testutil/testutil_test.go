package testutil

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/umpire-auditor/internal/domain/games"
	"github.com/preston-bernstein/umpire-auditor/internal/providers"
	"github.com/preston-bernstein/umpire-auditor/internal/providers/fixture"
	"github.com/preston-bernstein/umpire-auditor/internal/store"
)

func TestClockHelpers(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	if got := NowAt(now)(); !got.Equal(now) {
		t.Fatalf("expected fixed time, got %v", got)
	}
	if got := MustParseDate("2024-06-02"); !got.Equal(time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected date %v", got)
	}
	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic on invalid date")
		}
	}()
	MustParseDate("06/02/2024")
}

func TestServeHelpers(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"auth":"` + r.Header.Get("Authorization") + `"}`))
	})

	rr := Serve(handler, http.MethodPost, "/test", strings.NewReader("{}"))
	AssertStatus(t, rr, http.StatusCreated)

	rr = ServeRequest(handler, BearerRequest(http.MethodPost, "/admin", "secret"))
	var body map[string]string
	DecodeJSON(t, rr, &body)
	if body["auth"] != "Bearer secret" {
		t.Fatalf("expected bearer header, got %q", body["auth"])
	}
	if got := BearerRequest(http.MethodGet, "/", "").Header.Get("Authorization"); got != "" {
		t.Fatalf("expected no header for empty token, got %q", got)
	}
}

func TestHTTPHelperErrorFormatting(t *testing.T) {
	rr := httptest.NewRecorder()
	rr.WriteHeader(http.StatusBadRequest)
	rr.WriteString(strings.Repeat("x", 600))

	if err := statusError(rr, http.StatusOK); err == nil {
		t.Fatalf("expected status error")
	} else if !strings.Contains(err.Error(), "body=") || !strings.HasSuffix(err.Error(), "...") {
		t.Fatalf("expected truncated body snippet in error, got %v", err)
	}

	rr = httptest.NewRecorder()
	rr.WriteHeader(http.StatusOK)
	if err := statusError(rr, http.StatusOK); err != nil {
		t.Fatalf("expected nil error when status matches, got %v", err)
	}

	rr = httptest.NewRecorder()
	rr.WriteString("not-json")
	var dest map[string]any
	if err := decodeJSONBody(rr, &dest); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestServerStubs(t *testing.T) {
	p := &StubPoller{Err: errors.New("stop")}
	p.Start(context.Background())
	if err := p.Stop(context.Background()); !errors.Is(err, p.Err) {
		t.Fatalf("expected stop error")
	}
	if starts, stops := p.Counts(); starts != 1 || stops != 1 {
		t.Fatalf("unexpected call counts %d/%d", starts, stops)
	}
	p.StatusVal.ConsecutiveFailures = 2
	if p.Status().ConsecutiveFailures != 2 {
		t.Fatalf("expected status passthrough")
	}

	sh := &StubHTTPServer{AddrVal: ":1", ListenErr: errors.New("boom"), ShutdownErr: errors.New("down")}
	_ = sh.ListenAndServe()
	_ = sh.Shutdown(context.Background())
	if sh.ListenCalls != 1 || sh.ShutdownCalls != 1 || sh.Addr() != ":1" {
		t.Fatalf("expected listen/shutdown calls, got %+v", sh)
	}

	b := &BlockingHTTPServer{Unblock: make(chan struct{})}
	if err := b.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("expected closed listen error for blocking server")
	}
	done := make(chan error, 1)
	go func() { done <- b.Shutdown(context.Background()) }()
	close(b.Unblock)
	if err := <-done; err != nil {
		t.Fatalf("expected nil shutdown err, got %v", err)
	}
	if b.ShutdownCalls != 1 {
		t.Fatalf("expected shutdown called once")
	}
}

func TestLoggerAndMetricsHelpers(t *testing.T) {
	logger, buf := NewBufferLogger()
	logger.Debug("hello", "k", "v")
	logger.Info("second")
	if len(buf.Records()) != 2 {
		t.Fatalf("expected two records, got %s", buf.String())
	}
	rec0, ok := buf.Find("hello")
	if !ok || rec0["k"] != "v" {
		t.Fatalf("expected hello record with attr, got %v", rec0)
	}
	if _, ok := buf.Find("missing"); ok {
		t.Fatalf("expected no match for unlogged message")
	}
	rec, shutdown := NewRecorderWithShutdown()
	if rec == nil || shutdown == nil {
		t.Fatalf("expected recorder and shutdown")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("expected nil shutdown error, got %v", err)
	}
}

func TestProviderHelpers(t *testing.T) {
	ctx := context.Background()

	p := &StubProvider{
		Schedule: map[string][]int{"2024-06-02": {7}},
		Feeds:    map[int]games.Feed{7: {GameID: 7}},
	}
	if ids, _ := p.FetchSchedule(ctx, "2024-06-02"); len(ids) != 1 {
		t.Fatalf("expected scheduled id")
	}
	if feed, err := p.FetchGame(ctx, 7); err != nil || feed.GameID != 7 {
		t.Fatalf("expected feed, got %+v err %v", feed, err)
	}
	if _, err := p.FetchGame(ctx, 8); err == nil {
		t.Fatalf("expected error for unknown game")
	}
	if p.Calls.Load() != 3 {
		t.Fatalf("expected 3 calls, got %d", p.Calls.Load())
	}

	errProv := ErrProvider{Err: errors.New("boom")}
	if _, err := errProv.FetchGame(ctx, 1); !errors.Is(err, errProv.Err) {
		t.Fatalf("expected error passthrough")
	}
	if _, err := (UnavailableProvider{}).FetchSchedule(ctx, ""); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected provider unavailable")
	}
}

func TestAuditedStoreHoldsFixtureGame(t *testing.T) {
	s := NewAuditedStore(t)
	card, err := s.Scorecard(context.Background(), fixture.GameRegular)
	if err != nil || !card.HasData() {
		t.Fatalf("expected audited scorecard, got %+v err %v", card, err)
	}
	graded, err := s.Pitches(context.Background(), store.PitchFilter{GameID: fixture.GameRegular})
	if err != nil || len(graded) != 8 {
		t.Fatalf("expected 8 graded pitches, got %d err %v", len(graded), err)
	}
}
