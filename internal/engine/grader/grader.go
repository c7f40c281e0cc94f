package grader

import (
	"errors"
	"math"
	"time"

	"github.com/preston-bernstein/umpire-auditor/internal/domain/games"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/pitches"
	"github.com/preston-bernstein/umpire-auditor/internal/engine/zone"
	"github.com/preston-bernstein/umpire-auditor/internal/timeutil"
)

// DefaultBadDataThresholdInches flags blown strikes that miss by more than this.
const DefaultBadDataThresholdInches = 7.0

var (
	ErrNotCalled          = errors.New("grader: pitch was not a called ball or strike")
	ErrMissingCoordinates = errors.New("grader: pitch has no tracked location or zone")
	ErrMissingTimestamp   = errors.New("grader: pitch has no start time")
)

// CatcherLookup resolves the catcher receiving a pitch.
type CatcherLookup interface {
	CatcherAt(half games.Half, t time.Time) *int
}

// Grader turns pitch events into graded calls.
type Grader struct {
	BadDataThresholdInches float64
}

// New returns a Grader, falling back to the default threshold when threshold is not positive.
func New(threshold float64) Grader {
	if threshold <= 0 {
		threshold = DefaultBadDataThresholdInches
	}
	return Grader{BadDataThresholdInches: threshold}
}

// Grade judges a single called pitch. The result is a pure function of its inputs.
func (g Grader) Grade(ev pitches.Event, lookup CatcherLookup) (pitches.Graded, error) {
	if ev.Code != pitches.CallBall && ev.Code != pitches.CallStrike {
		return pitches.Graded{}, ErrNotCalled
	}
	if ev.Px == nil || ev.Pz == nil || ev.ZoneTop == nil || ev.ZoneBottom == nil {
		return pitches.Graded{}, ErrMissingCoordinates
	}
	if ev.StartTime == nil {
		return pitches.Graded{}, ErrMissingTimestamp
	}

	threshold := g.BadDataThresholdInches
	if threshold <= 0 {
		threshold = DefaultBadDataThresholdInches
	}

	px, pz := *ev.Px, *ev.Pz
	top, bottom := *ev.ZoneTop, *ev.ZoneBottom
	strike := zone.IsStrike(px, pz, top, bottom)

	out := pitches.Graded{
		Event:             ev,
		HomeAwayBenefit:   pitches.BenefitNone,
		PlayerTypeBenefit: pitches.RoleNone,
	}
	if lookup != nil {
		out.CatcherID = lookup.CatcherAt(ev.Half, *ev.StartTime)
	}

	switch ev.Code {
	case pitches.CallStrike:
		out.CorrectCall = strike
		x := zone.XMiss(px)
		y := zone.YMiss(pz, top, bottom)
		out.XMiss, out.YMiss = &x, &y
		if !out.CorrectCall {
			total := math.Sqrt(x*x + y*y)
			inches := round2(total * 12)
			out.TotalMiss, out.TotalMissInches = &total, &inches
			out.HomeAwayBenefit = pitches.BenefitFor(ev.Half.Fielding())
			out.PlayerTypeBenefit = pitches.RolePitcher
			out.BlownStrikeout = ev.Strikes == 2
			out.PossibleBadData = inches > threshold
		}
	case pitches.CallBall:
		// Balls carry no miss magnitude.
		out.CorrectCall = !strike
		if !out.CorrectCall {
			out.HomeAwayBenefit = pitches.BenefitFor(ev.Half.Batting())
			out.PlayerTypeBenefit = pitches.RoleBatter
			out.BlownWalk = ev.Balls == 3
		}
	}
	return out, nil
}

// Attach copies game context onto a graded pitch and resolves the benefiting club.
func Attach(p pitches.Graded, ctx games.Context) pitches.Graded {
	p.GameID = ctx.GameID
	p.GameDate = ctx.GameDate
	p.UmpireID = ctx.Umpire.ID
	p.UmpireName = ctx.Umpire.Name
	p.HomeTeam = ctx.Home.Abbreviation
	p.AwayTeam = ctx.Away.Abbreviation
	p.HomeTeamID = ctx.Home.ID
	p.AwayTeamID = ctx.Away.ID
	p.HomeMediaID = ctx.Broadcast.HomeMediaID
	p.AwayMediaID = ctx.Broadcast.AwayMediaID
	p.TeamBenefit, p.TeamBenefitID, p.TeamHurt, p.TeamHurtID = nil, nil, nil, nil

	if !p.CorrectCall {
		var benefit, hurt games.Side
		switch p.HomeAwayBenefit {
		case pitches.BenefitHome:
			benefit, hurt = games.SideHome, games.SideAway
		case pitches.BenefitAway:
			benefit, hurt = games.SideAway, games.SideHome
		}
		if benefit != "" {
			b, h := ctx.Team(benefit), ctx.Team(hurt)
			p.TeamBenefit, p.TeamBenefitID = &b.Abbreviation, &b.ID
			p.TeamHurt, p.TeamHurtID = &h.Abbreviation, &h.ID
		}
	}

	if p.StartTime != nil {
		p.Offsets = Offsets(*p.StartTime, p.EndTime, ctx.Broadcast)
	}
	return p
}

// Offsets computes broadcast-relative positions for a pitch.
func Offsets(start time.Time, end *time.Time, b games.Broadcast) pitches.Offsets {
	var o pitches.Offsets
	o.TimestampStartHome, o.StartSecondsHome = timeutil.Offset(start, b.HomeStart)
	o.TimestampStartAway, o.StartSecondsAway = timeutil.Offset(start, b.AwayStart)
	if end != nil {
		o.TimestampEndHome, _ = timeutil.Offset(*end, b.HomeStart)
		o.TimestampEndAway, _ = timeutil.Offset(*end, b.AwayStart)
	}
	return o
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
