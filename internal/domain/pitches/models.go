package pitches

import (
	"time"

	"github.com/preston-bernstein/umpire-auditor/internal/domain/games"
)

// Call is the umpire's recorded call code.
type Call string

const (
	CallBall   Call = "B"
	CallStrike Call = "C"
)

// Benefit names the side that gained from a blown call.
type Benefit string

const (
	BenefitHome Benefit = "home"
	BenefitAway Benefit = "away"
	BenefitNone Benefit = "none"
)

// BenefitFor maps a game side to its benefit label.
func BenefitFor(side games.Side) Benefit {
	if side == games.SideHome {
		return BenefitHome
	}
	return BenefitAway
}

// Role names the player type that gained from a blown call.
type Role string

const (
	RoleBatter  Role = "batter"
	RolePitcher Role = "pitcher"
	RoleNone    Role = "none"
)

// Event is a single pitch read from the feed. Balls and Strikes are the count before the pitch.
type Event struct {
	ID              string     `json:"id"`
	GameID          int        `json:"gameId"`
	PlayDescription string     `json:"playDescription"`
	Inning          int        `json:"inning"`
	Half            games.Half `json:"inningHalf"`
	Outs            int        `json:"outs"`
	BatSide         string     `json:"batSide"`
	BatterID        int        `json:"batterId"`
	PitcherID       int        `json:"pitcherId"`
	Balls           int        `json:"balls"`
	Strikes         int        `json:"strikes"`
	Code            Call       `json:"code"`
	Px              *float64   `json:"px"`
	Pz              *float64   `json:"pz"`
	ZoneTop         *float64   `json:"szTop"`
	ZoneBottom      *float64   `json:"szBottom"`
	StartTime       *time.Time `json:"datetimeStart"`
	EndTime         *time.Time `json:"datetimeEnd,omitempty"`
}

// Offsets are the broadcast-relative positions of a pitch, when anchors are known.
type Offsets struct {
	TimestampStartHome *string `json:"timestampStartHome"`
	TimestampStartAway *string `json:"timestampStartAway"`
	StartSecondsHome   *int    `json:"startSecondsHome"`
	StartSecondsAway   *int    `json:"startSecondsAway"`
	TimestampEndHome   *string `json:"timestampEndHome"`
	TimestampEndAway   *string `json:"timestampEndAway"`
}

// Graded is the audit result for one called pitch.
type Graded struct {
	Event
	Offsets

	CorrectCall       bool     `json:"correctCall"`
	XMiss             *float64 `json:"xMiss"`
	YMiss             *float64 `json:"yMiss"`
	TotalMiss         *float64 `json:"totalMiss"`
	TotalMissInches   *float64 `json:"totalMissIn"`
	HomeAwayBenefit   Benefit  `json:"homeAwayBenefit"`
	PlayerTypeBenefit Role     `json:"playerTypeBenefit"`
	BlownWalk         bool     `json:"blownWalk"`
	BlownStrikeout    bool     `json:"blownStrikeout"`
	PossibleBadData   bool     `json:"possibleBadData"`
	CatcherID         *int     `json:"catcherId"`

	GameDate      string  `json:"gameDate"`
	UmpireID      int     `json:"umpireId"`
	UmpireName    string  `json:"umpireName"`
	HomeTeam      string  `json:"homeTeam"`
	AwayTeam      string  `json:"awayTeam"`
	HomeTeamID    int     `json:"homeTeamId"`
	AwayTeamID    int     `json:"awayTeamId"`
	HomeMediaID   *string `json:"homeMediaId"`
	AwayMediaID   *string `json:"awayMediaId"`
	TeamBenefit   *string `json:"teamBenefit"`
	TeamBenefitID *int    `json:"teamBenefitId"`
	TeamHurt      *string `json:"teamHurt"`
	TeamHurtID    *int    `json:"teamHurtId"`
}
