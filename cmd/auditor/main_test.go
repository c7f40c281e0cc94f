package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/preston-bernstein/umpire-auditor/internal/audit"
	"github.com/preston-bernstein/umpire-auditor/internal/config"
)

func fixtureApp(t *testing.T) (*app, *bytes.Buffer) {
	t.Helper()
	var out, logs bytes.Buffer
	a := newApp(&out, &logs)
	a.loadConfig = func() (config.Config, error) {
		cfg := config.Default()
		cfg.Provider = config.ProviderFixture
		cfg.Metrics.Enabled = false
		return cfg, nil
	}
	return a, &out
}

func execute(a *app, args ...string) error {
	root := newRootCmd(a)
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	return root.ExecuteContext(context.Background())
}

func TestGameCommandAuditsFixture(t *testing.T) {
	a, out := fixtureApp(t)
	if err := execute(a, "game", "1001"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got gameOutput
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if got.GameID != 1001 || got.Graded != 8 || got.Incorrect != 4 || got.Ejections != 1 {
		t.Fatalf("unexpected game output %+v", got)
	}
}

func TestGameCommandRejectsBadID(t *testing.T) {
	a, _ := fixtureApp(t)
	if err := execute(a, "game", "abc"); err == nil {
		t.Fatalf("expected error for non-numeric id")
	}
	if err := execute(a, "game"); err == nil {
		t.Fatalf("expected error for missing id")
	}
}

func TestRunCommandAuditsRange(t *testing.T) {
	a, out := fixtureApp(t)
	if err := execute(a, "run", "--start-date", "2024-06-01", "--end-date", "2024-06-02"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var summary audit.Summary
	if err := json.Unmarshal(out.Bytes(), &summary); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if len(summary.Dates) != 2 || summary.Games != 3 || summary.Audited != 1 || summary.Skipped != 2 {
		t.Fatalf("unexpected summary %+v", summary)
	}
}

func TestRunCommandRejectsBadDates(t *testing.T) {
	a, _ := fixtureApp(t)
	if err := execute(a, "run", "--start-date", "06-01-2024"); err == nil {
		t.Fatalf("expected parse error")
	}
	if err := execute(a, "run", "--start-date", "2024-06-03", "--end-date", "2024-06-02"); !errors.Is(err, errBadRange) {
		t.Fatalf("expected range error, got %v", err)
	}
}

func TestConfigErrorsSurface(t *testing.T) {
	a, _ := fixtureApp(t)
	a.loadConfig = func() (config.Config, error) { return config.Config{}, config.ErrInvalidConfig }
	if err := execute(a, "game", "1001"); !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("expected config error, got %v", err)
	}
}

func TestDateRangeDefaultsToYesterdayAndTodayInZone(t *testing.T) {
	a, _ := fixtureApp(t)
	// 05:00 UTC on June 2 is still June 1 on the west coast.
	a.now = func() time.Time { return time.Date(2024, 6, 2, 5, 0, 0, 0, time.UTC) }

	from, to, err := a.dateRange("", "", "America/Los_Angeles")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if from.Format(time.DateOnly) != "2024-05-31" || to.Format(time.DateOnly) != "2024-06-01" {
		t.Fatalf("unexpected default range %s..%s", from.Format(time.DateOnly), to.Format(time.DateOnly))
	}

	from, to, err = a.dateRange("", "2024-07-04", "America/Los_Angeles")
	if err != nil || from.Format(time.DateOnly) != "2024-07-03" || to.Format(time.DateOnly) != "2024-07-04" {
		t.Fatalf("expected the day before an explicit end, got %s..%s err %v", from, to, err)
	}
}
