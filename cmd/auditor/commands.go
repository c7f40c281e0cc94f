package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/umpire-auditor/internal/config"
	"github.com/preston-bernstein/umpire-auditor/internal/logging"
	"github.com/preston-bernstein/umpire-auditor/internal/metrics"
	"github.com/preston-bernstein/umpire-auditor/internal/server"
	"github.com/preston-bernstein/umpire-auditor/internal/timeutil"
)

var errBadRange = errors.New("end date is before start date")

func newRunCmd(a *app) *cobra.Command {
	var startDate, endDate string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Audit every game scheduled over a date range",
		Long:  "Audit every game scheduled from --start-date to --end-date inclusive. Both default to the audit timezone: yesterday through today.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := a.setup()
			if err != nil {
				return err
			}
			from, to, err := a.dateRange(startDate, endDate, cfg.Audit.Timezone)
			if err != nil {
				return err
			}

			comps, err := server.Build(cmd.Context(), cfg, logger, metrics.NewRecorder())
			if err != nil {
				return err
			}
			defer comps.Close()

			summary, runErr := comps.Runner.Run(cmd.Context(), from, to)
			if err := a.print(summary); err != nil {
				return err
			}
			return runErr
		},
	}
	cmd.Flags().StringVar(&startDate, "start-date", "", "first date to audit (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "last date to audit (YYYY-MM-DD)")
	return cmd
}

func newGameCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "game <id>",
		Short: "Audit a single game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid game id %q", args[0])
			}
			cfg, logger, err := a.setup()
			if err != nil {
				return err
			}

			comps, err := server.Build(cmd.Context(), cfg, logger, metrics.NewRecorder())
			if err != nil {
				return err
			}
			defer comps.Close()

			res, err := comps.Auditor.AuditGame(cmd.Context(), id)
			if err != nil {
				return err
			}
			return a.print(gameOutput{
				GameID:         res.GameID,
				Date:           res.Date,
				Skipped:        res.Skipped,
				Graded:         len(res.Pitches),
				Incorrect:      res.Incorrect(),
				Ejections:      len(res.Ejections),
				Culled:         res.Culled,
				SkippedPitches: res.SkippedPitches,
				Scorecard:      res.Scorecard,
			})
		},
	}
}

func newServeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the reporting API and run the scheduled audit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := a.setup()
			if err != nil {
				return err
			}
			ctx, stop := context.WithCancel(cmd.Context())
			defer stop()

			srv, err := server.New(ctx, cfg, logger)
			if err != nil {
				return err
			}
			srv.Run(ctx, stop)
			return nil
		},
	}
}

type gameOutput struct {
	GameID         int            `json:"gameId"`
	Date           string         `json:"date,omitempty"`
	Skipped        string         `json:"skipped,omitempty"`
	Graded         int            `json:"graded"`
	Incorrect      int            `json:"incorrect"`
	Ejections      int            `json:"ejections"`
	Culled         int            `json:"culled"`
	SkippedPitches map[string]int `json:"skippedPitches,omitempty"`
	Scorecard      any            `json:"scorecard,omitempty"`
}

func (a *app) setup() (config.Config, *slog.Logger, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return config.Config{}, nil, err
	}
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Service: "umpire-auditor",
		Version: appVersion,
		Output:  a.logOut,
	})
	return cfg, logger, nil
}

// dateRange resolves the run window. Missing dates default to yesterday and today in tz.
func (a *app) dateRange(start, end, tz string) (time.Time, time.Time, error) {
	yesterday, today := timeutil.RecentDays(a.now(), timeutil.Location(tz))

	to := today
	if end != "" {
		parsed, err := timeutil.ParseDate(end)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --end-date %q: %w", end, err)
		}
		to = parsed
	}
	from := to.AddDate(0, 0, -1)
	if end == "" {
		from = yesterday
	}
	if start != "" {
		parsed, err := timeutil.ParseDate(start)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --start-date %q: %w", start, err)
		}
		from = parsed
	}
	if timeutil.FormatDate(to) < timeutil.FormatDate(from) {
		return time.Time{}, time.Time{}, errBadRange
	}
	return from, to, nil
}

func (a *app) print(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
