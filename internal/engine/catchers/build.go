package catchers

import (
	"sort"
	"time"

	"github.com/preston-bernstein/umpire-auditor/internal/domain/games"
)

// Substitution is a player entering the game at catcher.
type Substitution struct {
	At       time.Time
	PlayerID int
}

// Build creates a resolver for one team. Substitutions for players outside the
// team's roster are ignored; the rest are applied in chronological order.
func Build(starting *int, roster map[int]struct{}, subs []Substitution) *Resolver {
	own := make([]Substitution, 0, len(subs))
	for _, s := range subs {
		if _, ok := roster[s.PlayerID]; ok {
			own = append(own, s)
		}
	}
	sort.SliceStable(own, func(i, j int) bool {
		return own[i].At.Before(own[j].At)
	})

	r := New(starting)
	for _, s := range own {
		id := s.PlayerID
		// sorted input never goes backwards
		_ = r.Substitute(s.At, &id)
	}
	return r
}

// StartingCatcher returns the catcher in the lineup who neither came off the
// bench nor sat on it. If the roster lists several, the last one wins. It
// returns nil when the roster names none.
func StartingCatcher(roster []games.RosterEntry) *int {
	var starter *int
	for _, entry := range roster {
		if entry.Position == games.PositionCatcher && !entry.IsSubstitute && !entry.IsOnBench {
			id := entry.PlayerID
			starter = &id
		}
	}
	return starter
}

// RosterIDs returns the set of player ids on a boxscore roster.
func RosterIDs(roster []games.RosterEntry) map[int]struct{} {
	ids := make(map[int]struct{}, len(roster))
	for _, entry := range roster {
		ids[entry.PlayerID] = struct{}{}
	}
	return ids
}

// Substitutions collects every catcher substitution in the game's plays.
// Events without a player or a timestamp are skipped.
func Substitutions(plays []games.Play) []Substitution {
	var subs []Substitution
	for _, play := range plays {
		for _, ev := range play.Events {
			if !ev.IsSubstitution || ev.Position != games.PositionCatcher {
				continue
			}
			if ev.PlayerID == nil || ev.StartTime == nil {
				continue
			}
			subs = append(subs, Substitution{At: *ev.StartTime, PlayerID: *ev.PlayerID})
		}
	}
	return subs
}

// Pair holds the resolvers for both clubs in one game.
type Pair struct {
	Home *Resolver
	Away *Resolver
}

// ForFeed builds both teams' resolvers from a game feed.
func ForFeed(feed games.Feed) Pair {
	subs := Substitutions(feed.Plays)
	return Pair{
		Home: Build(StartingCatcher(feed.HomeRoster), RosterIDs(feed.HomeRoster), subs),
		Away: Build(StartingCatcher(feed.AwayRoster), RosterIDs(feed.AwayRoster), subs),
	}
}

// CatcherAt looks up the fielding team's catcher for a pitch thrown in the given half.
func (p Pair) CatcherAt(half games.Half, t time.Time) *int {
	r := p.Away
	if half.Fielding() == games.SideHome {
		r = p.Home
	}
	if r == nil {
		return nil
	}
	return r.CatcherAt(t)
}
