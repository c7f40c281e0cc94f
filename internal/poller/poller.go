package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/umpire-auditor/internal/audit"
	"github.com/preston-bernstein/umpire-auditor/internal/logging"
	"github.com/preston-bernstein/umpire-auditor/internal/metrics"
	"github.com/preston-bernstein/umpire-auditor/internal/timeutil"
)

const defaultInterval = time.Hour

// BatchRunner audits every game scheduled over a date range.
type BatchRunner interface {
	Run(ctx context.Context, from, to time.Time) (audit.Summary, error)
}

// maxConsecutiveFailures is how many failed cycles in a row flip readiness off.
const maxConsecutiveFailures = 3

// Poller re-audits yesterday and today on an interval so late-finishing games are picked up.
type Poller struct {
	runner   BatchRunner
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	loc      *time.Location
	now      func() time.Time

	mu       sync.Mutex
	started  bool
	stop     chan struct{}
	stopped  chan struct{}
	stopOnce sync.Once

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the audit loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
	LastSummary         audit.Summary
}

// IsReady reports whether a cycle has succeeded and the loop is not failing repeatedly.
func (s Status) IsReady() bool {
	return !s.LastSuccess.IsZero() && s.ConsecutiveFailures < maxConsecutiveFailures
}

// New constructs a Poller. A nil location means UTC.
func New(runner BatchRunner, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration, loc *time.Location) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Poller{
		runner:   runner,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		loc:      loc,
		now:      time.Now,
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// Start launches the loop once. The first cycle runs immediately.
// Starting a stopped poller is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.started {
		return
	}
	select {
	case <-p.stop:
		return
	default:
	}
	p.started = true
	go p.loop(ctx)
}

func (p *Poller) loop(ctx context.Context) {
	defer close(p.stopped)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	logging.Info(p.logger, "audit schedule started", slog.String("interval", p.interval.String()))
	p.runOnce(ctx)
	for {
		select {
		case <-ctx.Done():
			logging.Info(p.logger, "audit schedule stopped", logging.FieldReason, "context done")
			return
		case <-p.stop:
			logging.Info(p.logger, "audit schedule stopped", logging.FieldReason, "stop requested")
			return
		case <-ticker.C:
			p.runOnce(ctx)
		}
	}
}

// Stop signals the loop and waits for a cycle in flight to finish.
// It returns ctx's error if the wait outlives ctx.
func (p *Poller) Stop(ctx context.Context) error {
	p.stopOnce.Do(func() { close(p.stop) })

	p.mu.Lock()
	started := p.started
	p.mu.Unlock()
	if !started {
		return nil
	}
	select {
	case <-p.stopped:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (p *Poller) runOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)
	yesterday, today := timeutil.RecentDays(p.now(), p.loc)

	summary, err := p.runner.Run(ctx, yesterday, today)
	elapsed := time.Since(start)
	if p.metrics != nil {
		p.metrics.RecordScheduleCycle(elapsed, err)
	}
	if err != nil {
		p.recordFailure(err, start, summary)
		logging.Error(p.logger, "scheduled audit failed", err,
			logging.FieldRunID, summary.RunID,
			"failed", summary.Failed,
			logging.FieldDurationMS, elapsed.Milliseconds(),
		)
		return
	}

	p.recordSuccess(start, summary)
	logging.Info(p.logger, "scheduled audit complete",
		logging.FieldRunID, summary.RunID,
		logging.FieldCount, summary.Games,
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time, summary audit.Summary) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
	p.status.LastSummary = summary
}

func (p *Poller) recordFailure(err error, at time.Time, summary audit.Summary) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
	p.status.LastSummary = summary
}

// Status returns a snapshot of the loop's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
