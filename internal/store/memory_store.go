package store

import (
	"context"
	"sort"
	"sync"

	"github.com/preston-bernstein/umpire-auditor/internal/domain/ejections"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/games"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/pitches"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/players"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/teams"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/umpires"
)

// MemoryStore keeps every record in thread-safe maps. It backs dry runs and tests.
type MemoryStore struct {
	mu         sync.RWMutex
	umpires    map[int]umpires.Umpire
	teams      map[int]teams.Team
	players    map[int]players.Player
	scorecards map[int]games.Scorecard
	pitches    map[string]pitches.Graded
	ejections  map[string]ejections.Ejection
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		umpires:    make(map[int]umpires.Umpire),
		teams:      make(map[int]teams.Team),
		players:    make(map[int]players.Player),
		scorecards: make(map[int]games.Scorecard),
		pitches:    make(map[string]pitches.Graded),
		ejections:  make(map[string]ejections.Ejection),
	}
}

func (s *MemoryStore) UpsertUmpires(_ context.Context, in ...umpires.Umpire) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range in {
		s.umpires[u.ID] = u
	}
	return nil
}

func (s *MemoryStore) UpsertTeams(_ context.Context, in ...teams.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, t := range in {
		s.teams[t.ID] = t
	}
	return nil
}

func (s *MemoryStore) UpsertPlayers(_ context.Context, in ...players.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range in {
		s.players[p.ID] = p
	}
	return nil
}

func (s *MemoryStore) UpsertScorecard(_ context.Context, card games.Scorecard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scorecards[card.ID] = card
	return nil
}

func (s *MemoryStore) UpsertPitches(_ context.Context, in ...pitches.Graded) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range in {
		s.pitches[p.ID] = p
	}
	return nil
}

func (s *MemoryStore) UpsertEjections(_ context.Context, in ...ejections.Ejection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range in {
		s.ejections[e.ID] = e
	}
	return nil
}

func (s *MemoryStore) CullPitches(_ context.Context, gameID int, keep []string) (int, error) {
	keepSet := make(map[string]struct{}, len(keep))
	for _, id := range keep {
		keepSet[id] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	removed := 0
	for id, p := range s.pitches {
		if p.GameID != gameID {
			continue
		}
		if _, ok := keepSet[id]; ok {
			continue
		}
		delete(s.pitches, id)
		removed++
	}
	return removed, nil
}

// Scorecards returns scorecards in the range ordered by date then game id.
func (s *MemoryStore) Scorecards(_ context.Context, r Range) ([]games.Scorecard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]games.Scorecard, 0, len(s.scorecards))
	for _, c := range s.scorecards {
		if r.Contains(c.GameDate) {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].GameDate != out[j].GameDate {
			return out[i].GameDate < out[j].GameDate
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *MemoryStore) Scorecard(_ context.Context, gameID int) (games.Scorecard, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	card, ok := s.scorecards[gameID]
	if !ok {
		return games.Scorecard{}, ErrNotFound
	}
	return card, nil
}

// Pitches returns matching pitches ordered by game, start time then id.
func (s *MemoryStore) Pitches(_ context.Context, f PitchFilter) ([]pitches.Graded, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]pitches.Graded, 0)
	for _, p := range s.pitches {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return pitchLess(out[i], out[j]) })
	return out, nil
}

// Ejections returns ejections in the range ordered by date then id.
func (s *MemoryStore) Ejections(_ context.Context, r Range) ([]ejections.Ejection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]ejections.Ejection, 0)
	for _, e := range s.ejections {
		if r.Contains(e.GameDate) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].GameDate != out[j].GameDate {
			return out[i].GameDate < out[j].GameDate
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Players returns every stored player ordered by id.
func (s *MemoryStore) Players(_ context.Context) ([]players.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]players.Player, 0, len(s.players))
	for _, p := range s.players {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Umpire returns a stored umpire.
func (s *MemoryStore) Umpire(id int) (umpires.Umpire, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.umpires[id]
	return u, ok
}

// Team returns a stored team.
func (s *MemoryStore) Team(id int) (teams.Team, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.teams[id]
	return t, ok
}

// Player returns a stored player.
func (s *MemoryStore) Player(id int) (players.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.players[id]
	return p, ok
}

// Close is a no-op.
func (s *MemoryStore) Close() error { return nil }

func pitchLess(a, b pitches.Graded) bool {
	if a.GameID != b.GameID {
		return a.GameID < b.GameID
	}
	switch {
	case a.StartTime != nil && b.StartTime != nil && !a.StartTime.Equal(*b.StartTime):
		return a.StartTime.Before(*b.StartTime)
	case a.StartTime == nil && b.StartTime != nil:
		return false
	case a.StartTime != nil && b.StartTime == nil:
		return true
	}
	return a.ID < b.ID
}
