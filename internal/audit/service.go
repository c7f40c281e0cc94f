// Package audit runs the per-game grading pipeline and persists its output.
package audit

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/preston-bernstein/umpire-auditor/internal/domain/ejections"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/games"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/pitches"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/players"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/umpires"
	"github.com/preston-bernstein/umpire-auditor/internal/engine/catchers"
	ejectionengine "github.com/preston-bernstein/umpire-auditor/internal/engine/ejections"
	"github.com/preston-bernstein/umpire-auditor/internal/engine/grader"
	"github.com/preston-bernstein/umpire-auditor/internal/engine/scorecard"
	"github.com/preston-bernstein/umpire-auditor/internal/logging"
	"github.com/preston-bernstein/umpire-auditor/internal/metrics"
	"github.com/preston-bernstein/umpire-auditor/internal/providers"
	"github.com/preston-bernstein/umpire-auditor/internal/store"
)

// Reasons a whole game is excluded before grading.
const (
	ReasonGameType      = "game_type"
	ReasonNoOfficials   = "no_officials"
	ReasonNoPlateUmpire = "no_plate_umpire"
)

// Reasons a single pitch is left ungraded.
const (
	SkipNotCalled          = "not_called"
	SkipMissingCoordinates = "missing_coordinates"
	SkipMissingTimestamp   = "missing_timestamp"
	SkipNoDescription      = "no_description"
)

// DefaultGameTypes are regular season plus every postseason round.
var DefaultGameTypes = []string{"R", "F", "D", "L", "W"}

// Options tune which games are audited and how pitches are graded.
type Options struct {
	GameTypes              []string
	BadDataThresholdInches float64
}

// Result describes one game's audit. Skipped is set, and nothing is persisted,
// when the game was excluded.
type Result struct {
	GameID         int
	Date           string
	Skipped        string
	Scorecard      games.Scorecard
	Pitches        []pitches.Graded
	Ejections      []ejections.Ejection
	SkippedPitches map[string]int
	Culled         int
}

// Excluded reports whether the game was skipped before grading.
func (r Result) Excluded() bool {
	return r.Skipped != ""
}

// Incorrect counts the blown calls in the result.
func (r Result) Incorrect() int {
	n := 0
	for _, p := range r.Pitches {
		if !p.CorrectCall {
			n++
		}
	}
	return n
}

// Service audits individual games.
type Service struct {
	provider  providers.GameProvider
	sink      store.Sink
	grader    grader.Grader
	gameTypes map[string]struct{}
	logger    *slog.Logger
	metrics   *metrics.Recorder
	now       func() time.Time
}

// NewService wires a Service. A nil recorder or logger disables that concern.
func NewService(provider providers.GameProvider, sink store.Sink, logger *slog.Logger, recorder *metrics.Recorder, opts Options) *Service {
	types := opts.GameTypes
	if len(types) == 0 {
		types = DefaultGameTypes
	}
	allowed := make(map[string]struct{}, len(types))
	for _, t := range types {
		allowed[t] = struct{}{}
	}
	return &Service{
		provider:  provider,
		sink:      sink,
		grader:    grader.New(opts.BadDataThresholdInches),
		gameTypes: allowed,
		logger:    logger,
		metrics:   recorder,
		now:       time.Now,
	}
}

// AuditGame fetches, grades and persists one game. Upstream and storage failures
// are returned; exclusions are reported through Result.Skipped.
func (s *Service) AuditGame(ctx context.Context, gameID int) (Result, error) {
	start := s.now()
	logger := logging.FromContext(ctx, s.logger)
	if logger != nil {
		logger = logger.With(logging.FieldGameID, gameID)
	}
	res := Result{GameID: gameID}

	if s.provider == nil {
		return res, providers.ErrProviderUnavailable
	}
	feed, err := s.provider.FetchGame(ctx, gameID)
	if err != nil {
		s.metrics.RecordGameFailed(s.now().Sub(start))
		return res, fmt.Errorf("fetch game %d: %w", gameID, err)
	}
	res.Date = feed.OfficialDate

	gameCtx, reason := s.gameContext(gameID, feed)
	if reason != "" {
		res.Skipped = reason
		s.metrics.RecordGameSkipped(reason)
		logging.Info(logger, "game skipped", logging.FieldReason, reason, logging.FieldDate, res.Date)
		return res, nil
	}

	if err := s.persistRoster(ctx, feed, gameCtx); err != nil {
		s.metrics.RecordGameFailed(s.now().Sub(start))
		return res, err
	}

	res.Pitches, res.SkippedPitches = s.grade(feed, gameCtx)
	res.Ejections = ejectionengine.Extract(feed, gameCtx)
	res.Scorecard = scorecard.Aggregate(gameCtx, res.Pitches)

	culled, err := s.persistAudit(ctx, res)
	if err != nil {
		s.metrics.RecordGameFailed(s.now().Sub(start))
		return res, err
	}
	res.Culled = culled

	elapsed := s.now().Sub(start)
	for reason, n := range res.SkippedPitches {
		s.metrics.RecordPitchesSkipped(reason, n)
	}
	s.metrics.RecordGameAudited(elapsed, len(res.Pitches), res.Incorrect(), len(res.Ejections))
	logging.Info(logger, "game audited",
		logging.FieldDate, res.Date,
		logging.FieldCount, len(res.Pitches),
		"incorrect", res.Incorrect(),
		"ejections", len(res.Ejections),
		"culled", culled,
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
	return res, nil
}

// gameContext resolves the plate umpire and clubs, or the reason the game is excluded.
func (s *Service) gameContext(gameID int, feed games.Feed) (games.Context, string) {
	if _, ok := s.gameTypes[feed.Type]; !ok {
		return games.Context{}, ReasonGameType
	}
	if len(feed.Officials) == 0 {
		return games.Context{}, ReasonNoOfficials
	}
	var plate *umpires.Umpire
	for _, o := range feed.Officials {
		if o.Role == umpires.RoleHomePlate {
			plate = &umpires.Umpire{ID: o.ID, Name: o.Name}
			break
		}
	}
	if plate == nil {
		return games.Context{}, ReasonNoPlateUmpire
	}
	return games.Context{
		GameID:    gameID,
		GameDate:  feed.OfficialDate,
		GameType:  feed.Type,
		Umpire:    *plate,
		Home:      feed.Home,
		Away:      feed.Away,
		Broadcast: feed.Broadcast,
	}, ""
}

func (s *Service) grade(feed games.Feed, gameCtx games.Context) ([]pitches.Graded, map[string]int) {
	lookup := catchers.ForFeed(feed)
	skipped := make(map[string]int)
	graded := make([]pitches.Graded, 0)

	for _, play := range feed.Plays {
		if play.Description == nil {
			for _, e := range play.Events {
				if e.IsPitch {
					skipped[SkipNoDescription]++
				}
			}
			continue
		}
		for _, ev := range grader.EventsFromPlay(gameCtx.GameID, play) {
			p, err := s.grader.Grade(ev, lookup)
			if err != nil {
				skipped[skipReason(err)]++
				continue
			}
			graded = append(graded, grader.Attach(p, gameCtx))
		}
	}
	return graded, skipped
}

func skipReason(err error) string {
	switch {
	case errors.Is(err, grader.ErrNotCalled):
		return SkipNotCalled
	case errors.Is(err, grader.ErrMissingCoordinates):
		return SkipMissingCoordinates
	case errors.Is(err, grader.ErrMissingTimestamp):
		return SkipMissingTimestamp
	default:
		return "other"
	}
}

func (s *Service) persistRoster(ctx context.Context, feed games.Feed, gameCtx games.Context) error {
	if s.sink == nil {
		return nil
	}
	if err := s.sink.UpsertUmpires(ctx, gameCtx.Umpire); err != nil {
		return fmt.Errorf("upsert umpire: %w", err)
	}
	if err := s.sink.UpsertTeams(ctx, feed.Home, feed.Away); err != nil {
		return fmt.Errorf("upsert teams: %w", err)
	}
	roster := make([]players.Player, 0, len(feed.People))
	for _, p := range feed.People {
		if p.IsPlayer || p.BatSide != "" {
			roster = append(roster, p.Player)
		}
	}
	if err := s.sink.UpsertPlayers(ctx, roster...); err != nil {
		return fmt.Errorf("upsert players: %w", err)
	}
	return nil
}

func (s *Service) persistAudit(ctx context.Context, res Result) (int, error) {
	if s.sink == nil {
		return 0, nil
	}
	if err := s.sink.UpsertScorecard(ctx, res.Scorecard); err != nil {
		return 0, fmt.Errorf("upsert scorecard: %w", err)
	}
	if err := s.sink.UpsertPitches(ctx, res.Pitches...); err != nil {
		return 0, fmt.Errorf("upsert pitches: %w", err)
	}
	if err := s.sink.UpsertEjections(ctx, res.Ejections...); err != nil {
		return 0, fmt.Errorf("upsert ejections: %w", err)
	}

	keep := make([]string, 0, len(res.Pitches))
	for _, p := range res.Pitches {
		keep = append(keep, p.ID)
	}
	culled, err := s.sink.CullPitches(ctx, res.GameID, keep)
	if err != nil {
		return 0, fmt.Errorf("cull pitches: %w", err)
	}
	return culled, nil
}
