package server

import (
	"context"
	"testing"

	"github.com/preston-bernstein/umpire-auditor/internal/providers/fixture"
	"github.com/preston-bernstein/umpire-auditor/internal/store"
	"github.com/preston-bernstein/umpire-auditor/internal/testutil"
)

func TestBuildWiresRunnerIntoSQLite(t *testing.T) {
	cfg := fixtureConfig()
	cfg.Database.Driver = store.DriverSQLite
	cfg.Database.DSN = ":memory:"

	comps, err := Build(context.Background(), cfg, nil, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer comps.Close()

	day := testutil.MustParseDate(fixture.Date)
	summary, err := comps.Runner.Run(context.Background(), day, day)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if summary.Audited != 1 || summary.Skipped != 2 {
		t.Fatalf("unexpected summary %+v", summary)
	}

	rates, err := comps.Reports.Umpires(context.Background(), store.Range{}, 0)
	if err != nil || len(rates) != 1 {
		t.Fatalf("expected one umpire from sqlite, got %v err %v", rates, err)
	}
}

func TestBuildHonoursGradingConfig(t *testing.T) {
	cfg := fixtureConfig()
	cfg.Grading.GameTypes = []string{"S"}

	comps, err := Build(context.Background(), cfg, nil, nil)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer comps.Close()

	res, err := comps.Auditor.AuditGame(context.Background(), fixture.GameRegular)
	if err != nil {
		t.Fatalf("audit: %v", err)
	}
	if !res.Excluded() {
		t.Fatalf("expected regular season game excluded when only spring is graded")
	}
}

func TestComponentsCloseIsNilSafe(t *testing.T) {
	var c *Components
	if err := c.Close(); err != nil {
		t.Fatalf("expected nil close, got %v", err)
	}
	if err := (&Components{}).Close(); err != nil {
		t.Fatalf("expected nil close for empty components, got %v", err)
	}
}
