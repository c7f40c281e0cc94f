package audit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/umpire-auditor/internal/logging"
	"github.com/preston-bernstein/umpire-auditor/internal/providers"
	"github.com/preston-bernstein/umpire-auditor/internal/timeutil"
)

const defaultWorkers = 4

// GameAuditor audits a single game.
type GameAuditor interface {
	AuditGame(ctx context.Context, gameID int) (Result, error)
}

// Summary totals one batch run.
type Summary struct {
	RunID     string        `json:"runId"`
	Dates     []string      `json:"dates"`
	Games     int           `json:"games"`
	Audited   int           `json:"audited"`
	Skipped   int           `json:"skipped"`
	Failed    int           `json:"failed"`
	Pitches   int           `json:"pitches"`
	Incorrect int           `json:"incorrect"`
	Ejections int           `json:"ejections"`
	Duration  time.Duration `json:"durationNs"`
}

func (s *Summary) add(res Result) {
	if res.Excluded() {
		s.Skipped++
		return
	}
	s.Audited++
	s.Pitches += len(res.Pitches)
	s.Incorrect += res.Incorrect()
	s.Ejections += len(res.Ejections)
}

// Runner audits every scheduled game over a date range on a bounded worker pool.
type Runner struct {
	schedule providers.GameProvider
	auditor  GameAuditor
	workers  int
	logger   *slog.Logger
	now      func() time.Time
	newRunID func() string
}

// NewRunner builds a Runner. workers below one fall back to the default.
func NewRunner(schedule providers.GameProvider, auditor GameAuditor, workers int, logger *slog.Logger) *Runner {
	if workers < 1 {
		workers = defaultWorkers
	}
	return &Runner{
		schedule: schedule,
		auditor:  auditor,
		workers:  workers,
		logger:   logger,
		now:      time.Now,
		newRunID: uuid.NewString,
	}
}

// Run audits every game scheduled from one date to another, inclusive. A failing
// date or game does not stop the others; every failure is joined into the error.
func (r *Runner) Run(ctx context.Context, from, to time.Time) (Summary, error) {
	start := r.now()
	summary := Summary{RunID: r.newRunID(), Dates: timeutil.DatesBetween(from, to)}
	logger := r.logger
	if logger != nil {
		logger = logger.With(logging.FieldRunID, summary.RunID)
	}
	ctx = logging.WithLogger(ctx, logger)

	if r.schedule == nil || r.auditor == nil {
		return summary, providers.ErrProviderUnavailable
	}

	logging.Info(logger, "audit run started",
		"from", timeutil.FormatDate(from),
		"to", timeutil.FormatDate(to),
		logging.FieldCount, len(summary.Dates),
	)

	ids, errs := r.gameIDs(ctx, logger, summary.Dates)
	summary.Games = len(ids)

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(r.workers)
	for _, id := range ids {
		if ctx.Err() != nil {
			mu.Lock()
			errs = append(errs, ctx.Err())
			mu.Unlock()
			break
		}
		g.Go(func() error {
			res, err := r.auditor.AuditGame(ctx, id)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				summary.Failed++
				errs = append(errs, fmt.Errorf("game %d: %w", id, err))
				logging.Error(logger, "game audit failed", err, logging.FieldGameID, id)
				return nil
			}
			summary.add(res)
			return nil
		})
	}
	_ = g.Wait()

	summary.Duration = r.now().Sub(start)
	logging.Info(logger, "audit run finished",
		logging.FieldCount, summary.Games,
		"audited", summary.Audited,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
		logging.FieldDurationMS, summary.Duration.Milliseconds(),
	)
	return summary, errors.Join(errs...)
}

// gameIDs collects each date's schedule in date order, dropping repeats.
func (r *Runner) gameIDs(ctx context.Context, logger *slog.Logger, dates []string) ([]int, []error) {
	var (
		ids  []int
		errs []error
	)
	seen := make(map[int]struct{})
	for _, date := range dates {
		scheduled, err := r.schedule.FetchSchedule(ctx, date)
		if err != nil {
			logging.Error(logger, "schedule fetch failed", err, logging.FieldDate, date)
			errs = append(errs, fmt.Errorf("schedule %s: %w", date, err))
			continue
		}
		for _, id := range scheduled {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	return ids, errs
}
