// Package store persists audit output and serves it back to the reporting layer.
package store

import (
	"context"
	"errors"

	"github.com/preston-bernstein/umpire-auditor/internal/domain/ejections"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/games"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/pitches"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/players"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/teams"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/umpires"
)

// ErrNotFound is returned when a keyed lookup has no row.
var ErrNotFound = errors.New("store: not found")

// Sink receives audit output. Every write is an upsert keyed by the record id.
type Sink interface {
	UpsertUmpires(ctx context.Context, u ...umpires.Umpire) error
	UpsertTeams(ctx context.Context, t ...teams.Team) error
	UpsertPlayers(ctx context.Context, p ...players.Player) error
	UpsertScorecard(ctx context.Context, card games.Scorecard) error
	UpsertPitches(ctx context.Context, p ...pitches.Graded) error
	UpsertEjections(ctx context.Context, e ...ejections.Ejection) error
	// CullPitches deletes the game's pitches whose ids are not in keep and returns how many went.
	CullPitches(ctx context.Context, gameID int, keep []string) (int, error)
}

// Reader serves persisted records to the reporting layer.
type Reader interface {
	Scorecards(ctx context.Context, r Range) ([]games.Scorecard, error)
	Scorecard(ctx context.Context, gameID int) (games.Scorecard, error)
	Pitches(ctx context.Context, f PitchFilter) ([]pitches.Graded, error)
	Ejections(ctx context.Context, r Range) ([]ejections.Ejection, error)
	Players(ctx context.Context) ([]players.Player, error)
}

// Store is a Sink that can also be read and closed.
type Store interface {
	Sink
	Reader
	Close() error
}

// Range bounds records by official game date, inclusive. Empty ends are open.
type Range struct {
	From string
	To   string
}

// Contains reports whether date (YYYY-MM-DD) falls inside the range.
func (r Range) Contains(date string) bool {
	if r.From != "" && date < r.From {
		return false
	}
	if r.To != "" && date > r.To {
		return false
	}
	return true
}

// PitchFilter narrows a pitch query. Zero values match everything.
type PitchFilter struct {
	Range
	GameID          int
	IncorrectOnly   bool
	BlownStrikeouts bool
	BlownWalks      bool
}

// Match reports whether p passes the filter.
func (f PitchFilter) Match(p pitches.Graded) bool {
	if !f.Contains(p.GameDate) {
		return false
	}
	if f.GameID != 0 && p.GameID != f.GameID {
		return false
	}
	if f.IncorrectOnly && p.CorrectCall {
		return false
	}
	if f.BlownStrikeouts && !p.BlownStrikeout {
		return false
	}
	if f.BlownWalks && !p.BlownWalk {
		return false
	}
	return true
}
