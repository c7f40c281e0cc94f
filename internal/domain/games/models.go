package games

import (
	"time"

	"github.com/preston-bernstein/umpire-auditor/internal/domain/players"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/teams"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/umpires"
)

// Half identifies the half of an inning a play belongs to.
type Half string

const (
	HalfTop    Half = "top"
	HalfBottom Half = "bottom"
)

// Side identifies the home or away club.
type Side string

const (
	SideHome Side = "home"
	SideAway Side = "away"
)

// Batting returns the side at bat. Anything other than the top half is treated as the bottom.
func (h Half) Batting() Side {
	if h == HalfTop {
		return SideAway
	}
	return SideHome
}

// Fielding returns the side in the field, whose catcher receives the pitch.
func (h Half) Fielding() Side {
	if h == HalfTop {
		return SideHome
	}
	return SideAway
}

// PositionCatcher is the boxscore position name used for catchers.
const PositionCatcher = "Catcher"

// Feed is the provider-normalized play-by-play payload for one game.
type Feed struct {
	GameID       int
	Type         string
	OfficialDate string
	Home         teams.Team
	Away         teams.Team
	Officials    []Official
	People       []Person
	HomeRoster   []RosterEntry
	AwayRoster   []RosterEntry
	Plays        []Play
	Broadcast    Broadcast
}

// Official is an umpire assignment for the game.
type Official struct {
	ID   int
	Name string
	Role string
}

// Person is an entry from the game's people directory.
type Person struct {
	players.Player
	IsPlayer bool
	BatSide  string
}

// RosterEntry is a boxscore line for one player on one side.
type RosterEntry struct {
	PlayerID     int
	Position     string
	IsSubstitute bool
	IsOnBench    bool
}

// Play is a single plate appearance and the events inside it.
type Play struct {
	Description *string
	Inning      int
	Half        Half
	Outs        int
	BatSide     string
	BatterID    int
	PitcherID   int
	Events      []PlayEvent
}

// PlayEvent is one sub-event of a play: a pitch, a substitution, an ejection, and so on.
// Balls and Strikes hold the count after the event.
type PlayEvent struct {
	IsPitch        bool
	IsSubstitution bool
	PlayID         string
	Balls          int
	Strikes        int
	Code           string
	EventType      string
	Description    *string
	StartTime      *time.Time
	EndTime        *time.Time
	Pitch          *PitchData
	Position       string
	PlayerID       *int
	UmpireID       *int
}

// PitchData carries the tracked location and the batter's zone for a pitch.
type PitchData struct {
	ZoneTop    *float64
	ZoneBottom *float64
	Px         *float64
	Pz         *float64
}

// Broadcast holds the optional reference clocks used for human-readable offsets.
type Broadcast struct {
	HomeStart   *time.Time
	AwayStart   *time.Time
	HomeMediaID *string
	AwayMediaID *string
}

// Context is the game/umpire/team context attached to every output record.
type Context struct {
	GameID    int
	GameDate  string
	GameType  string
	Umpire    umpires.Umpire
	Home      teams.Team
	Away      teams.Team
	Broadcast Broadcast
}

// Team returns the club playing on the given side.
func (c Context) Team(side Side) teams.Team {
	if side == SideHome {
		return c.Home
	}
	return c.Away
}

// Scorecard summarizes one umpire's calls in one game.
// Counts are nil when the game had no graded pitches.
type Scorecard struct {
	ID               int      `json:"id"`
	GameDate         string   `json:"gameDate"`
	GameType         string   `json:"gameType"`
	HomeTeam         string   `json:"homeTeam"`
	AwayTeam         string   `json:"awayTeam"`
	HomeTeamID       int      `json:"homeTeamId"`
	AwayTeamID       int      `json:"awayTeamId"`
	UmpireID         int      `json:"umpireId"`
	UmpireName       string   `json:"umpireName"`
	CorrectCalls     *int     `json:"correctCalls"`
	IncorrectCalls   *int     `json:"incorrectCalls"`
	TotalCalls       *int     `json:"totalCalls"`
	CallsBenefitHome *int     `json:"callsBenefitHome"`
	CallsBenefitAway *int     `json:"callsBenefitAway"`
	CorrectCallRate  *float64 `json:"correctCallRate"`
}

// HasData reports whether the scorecard was built from at least one graded pitch.
func (s Scorecard) HasData() bool {
	return s.TotalCalls != nil
}
