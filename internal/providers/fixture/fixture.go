package fixture

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/preston-bernstein/umpire-auditor/internal/domain/games"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/players"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/teams"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/umpires"
)

// Fixture game ids.
const (
	GameRegular = 1001
	GameRainout = 1002
	GameSpring  = 1003
)

// Date is the official date of every fixture game.
const Date = "2024-06-02"

// ErrUnknownGame is returned for ids the fixture does not carry.
var ErrUnknownGame = errors.New("fixture: unknown game")

var (
	home = teams.Team{ID: 147, Name: "New York Yankees", Abbreviation: "NYY"}
	away = teams.Team{ID: 111, Name: "Boston Red Sox", Abbreviation: "BOS"}

	plateUmpire = umpires.Umpire{ID: 427, Name: "Fixture Plate Umpire"}
	firstBase   = umpires.Umpire{ID: 428, Name: "Fixture First Base Umpire"}
)

// Player ids used by the regular-season fixture.
const (
	HomeCatcher    = 10
	HomeSubCatcher = 11
	HomePitcher    = 20
	AwayCatcher    = 30
	AwayBatter     = 31
	AwayPitcher    = 40
	EjectedCoach   = 98
	NonPlayer      = 99
)

// Provider returns a static set of games useful for local testing and bootstrapping.
type Provider struct {
	first time.Time
}

// New creates a fixture provider.
func New() *Provider {
	return &Provider{
		first: time.Date(2024, 6, 2, 23, 5, 0, 0, time.UTC),
	}
}

// FetchSchedule returns the same three fixture games for any date.
func (p *Provider) FetchSchedule(ctx context.Context, date string) ([]int, error) {
	_ = ctx
	_ = date
	return []int{GameRegular, GameRainout, GameSpring}, nil
}

// FetchGame returns a deterministic feed for a fixture id.
func (p *Provider) FetchGame(ctx context.Context, gameID int) (games.Feed, error) {
	_ = ctx
	switch gameID {
	case GameRegular:
		return p.regular(), nil
	case GameRainout:
		feed := p.header(GameRainout, "R")
		return feed, nil
	case GameSpring:
		feed := p.header(GameSpring, "S")
		feed.Officials = officials()
		return feed, nil
	default:
		return games.Feed{}, fmt.Errorf("%w: %d", ErrUnknownGame, gameID)
	}
}

func (p *Provider) header(id int, gameType string) games.Feed {
	return games.Feed{
		GameID:       id,
		Type:         gameType,
		OfficialDate: Date,
		Home:         home,
		Away:         away,
	}
}

func officials() []games.Official {
	return []games.Official{
		{ID: firstBase.ID, Name: firstBase.Name, Role: "First Base"},
		{ID: plateUmpire.ID, Name: plateUmpire.Name, Role: umpires.RoleHomePlate},
	}
}

// regular is a two-inning game with a catcher change, an ejection, and one of
// every kind of skipped pitch.
func (p *Provider) regular() games.Feed {
	feed := p.header(GameRegular, "R")
	feed.Officials = officials()

	anchor := p.first.Add(-10 * time.Minute)
	homeMedia := "fixture-home-media"
	feed.Broadcast = games.Broadcast{HomeStart: &anchor, HomeMediaID: &homeMedia}

	feed.People = []games.Person{
		person(HomeCatcher, "Home Catcher", "R"),
		person(HomeSubCatcher, "Home Backup Catcher", "R"),
		person(HomePitcher, "Home Pitcher", "L"),
		person(AwayCatcher, "Away Catcher", "R"),
		person(AwayBatter, "Away Batter", "L"),
		person(AwayPitcher, "Away Pitcher", "R"),
		{Player: players.Player{ID: EjectedCoach, Name: "Away Manager"}},
		{Player: players.Player{ID: NonPlayer, Name: "Bullpen Coach"}},
	}
	feed.HomeRoster = []games.RosterEntry{
		{PlayerID: HomeCatcher, Position: games.PositionCatcher},
		{PlayerID: HomeSubCatcher, Position: games.PositionCatcher, IsSubstitute: true},
		{PlayerID: HomePitcher, Position: "Pitcher"},
	}
	feed.AwayRoster = []games.RosterEntry{
		{PlayerID: AwayCatcher, Position: games.PositionCatcher},
		{PlayerID: AwayBatter, Position: "Shortstop"},
		{PlayerID: AwayPitcher, Position: "Pitcher"},
	}

	clock := p.first
	next := func() *time.Time {
		t := clock
		clock = clock.Add(20 * time.Second)
		return &t
	}

	feed.Plays = []games.Play{
		{
			Description: str("Away Batter walks."),
			Inning:      1, Half: games.HalfTop, BatSide: "L",
			BatterID: AwayBatter, PitcherID: HomePitcher,
			Events: []games.PlayEvent{
				pitch("1-1", "B", 1, 0, 0.1, 2.5, next()),
				pitch("1-2", "C", 1, 1, 0.0, 2.5, next()),
				pitch("1-3", "S", 1, 2, 0.3, 2.8, next()),
				pitch("1-4", "B", 2, 2, 1.5, 2.5, next()),
				untracked("1-5", "B", 3, 2, next()),
				pitch("1-6", "B", 4, 2, 0.2, 2.0, next()),
			},
		},
		{
			Inning: 1, Half: games.HalfTop, BatSide: "R",
			BatterID: AwayCatcher, PitcherID: HomePitcher,
			Events: []games.PlayEvent{
				pitch("2-1", "C", 0, 1, 0.0, 2.5, next()),
			},
		},
		{
			Description: str("Home Catcher called out on strikes."),
			Inning:      1, Half: games.HalfBottom, Outs: 1, BatSide: "R",
			BatterID: HomeCatcher, PitcherID: AwayPitcher,
			Events: []games.PlayEvent{
				pitch("3-1", "C", 0, 1, 0.0, 2.4, next()),
				pitch("3-2", "C", 0, 2, -0.4, 3.0, next()),
				pitch("3-3", "C", 0, 3, 1.2, 2.5, next()),
				{
					EventType:   "ejection",
					Description: str("Away Manager ejected by HP umpire."),
					StartTime:   next(),
					PlayerID:    intp(EjectedCoach),
					UmpireID:    intp(plateUmpire.ID),
				},
			},
		},
		{
			Description: str("Away Catcher grounds out."),
			Inning:      2, Half: games.HalfTop, Outs: 2, BatSide: "R",
			BatterID: AwayCatcher, PitcherID: HomePitcher,
			Events: []games.PlayEvent{
				{
					IsSubstitution: true,
					EventType:      "defensive_switch",
					Description:    str("Home Backup Catcher replaces Home Catcher."),
					StartTime:      next(),
					Position:       games.PositionCatcher,
					PlayerID:       intp(HomeSubCatcher),
				},
				pitch("4-1", "C", 0, 1, 2.0, 2.5, next()),
				pitch("4-2", "X", 0, 1, 0.0, 2.5, next()),
			},
		},
	}
	return feed
}

func person(id int, name, batSide string) games.Person {
	return games.Person{Player: players.Player{ID: id, Name: name}, IsPlayer: true, BatSide: batSide}
}

func pitch(id, code string, balls, strikes int, px, pz float64, at *time.Time) games.PlayEvent {
	ev := untracked(id, code, balls, strikes, at)
	ev.Pitch.Px = &px
	ev.Pitch.Pz = &pz
	return ev
}

func untracked(id, code string, balls, strikes int, at *time.Time) games.PlayEvent {
	end := at.Add(2 * time.Second)
	return games.PlayEvent{
		IsPitch:   true,
		PlayID:    fmt.Sprintf("fixture-%s", id),
		Balls:     balls,
		Strikes:   strikes,
		Code:      code,
		StartTime: at,
		EndTime:   &end,
		Pitch:     &games.PitchData{ZoneTop: f64(3.5), ZoneBottom: f64(1.5)},
	}
}

func str(s string) *string { return &s }

func intp(v int) *int { return &v }

func f64(v float64) *float64 { return &v }
