package testutil

import (
	"context"
	"testing"

	"github.com/preston-bernstein/umpire-auditor/internal/audit"
	"github.com/preston-bernstein/umpire-auditor/internal/providers/fixture"
	"github.com/preston-bernstein/umpire-auditor/internal/report"
	"github.com/preston-bernstein/umpire-auditor/internal/store"
)

// NewAuditedStore returns a memory store holding the audited fixture regular-season game.
func NewAuditedStore(t *testing.T) *store.MemoryStore {
	t.Helper()
	s := store.NewMemoryStore()
	svc := audit.NewService(fixture.New(), s, nil, nil, audit.Options{})
	if _, err := svc.AuditGame(context.Background(), fixture.GameRegular); err != nil {
		t.Fatalf("audit fixture game: %v", err)
	}
	return s
}

// NewReportService wraps NewAuditedStore in a report service.
func NewReportService(t *testing.T) *report.Service {
	t.Helper()
	return report.NewService(NewAuditedStore(t))
}
