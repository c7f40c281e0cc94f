package store

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/preston-bernstein/umpire-auditor/internal/domain/ejections"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/games"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/pitches"
)

// unixMillis stores an optional timestamp as milliseconds since the epoch.
type unixMillis struct {
	t **time.Time
}

func (m unixMillis) Value() (driver.Value, error) {
	if *m.t == nil {
		return nil, nil
	}
	return (*m.t).UnixMilli(), nil
}

func (m unixMillis) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*m.t = nil
	case int64:
		t := time.UnixMilli(v).UTC()
		*m.t = &t
	default:
		return fmt.Errorf("store: cannot scan %T into timestamp", src)
	}
	return nil
}

func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func scorecardArgs(c games.Scorecard) []any {
	return []any{
		c.ID, c.GameDate, c.GameType, c.HomeTeam, c.AwayTeam, c.HomeTeamID, c.AwayTeamID,
		c.UmpireID, c.UmpireName, nullable(c.CorrectCalls), nullable(c.IncorrectCalls), nullable(c.TotalCalls),
		nullable(c.CallsBenefitHome), nullable(c.CallsBenefitAway), nullable(c.CorrectCallRate),
	}
}

func scorecardDest(c *games.Scorecard) []any {
	return []any{
		&c.ID, &c.GameDate, &c.GameType, &c.HomeTeam, &c.AwayTeam, &c.HomeTeamID, &c.AwayTeamID,
		&c.UmpireID, &c.UmpireName, &c.CorrectCalls, &c.IncorrectCalls, &c.TotalCalls,
		&c.CallsBenefitHome, &c.CallsBenefitAway, &c.CorrectCallRate,
	}
}

func pitchArgs(p pitches.Graded) []any {
	start, end := p.StartTime, p.EndTime
	return []any{
		p.ID, p.GameID, p.GameDate, p.PlayDescription, p.Inning, string(p.Half), p.Outs, p.BatSide,
		p.BatterID, p.PitcherID, nullable(p.CatcherID), p.Balls, p.Strikes, string(p.Code),
		nullable(p.Px), nullable(p.Pz), nullable(p.ZoneTop), nullable(p.ZoneBottom),
		unixMillis{&start}, unixMillis{&end}, p.CorrectCall,
		nullable(p.XMiss), nullable(p.YMiss), nullable(p.TotalMiss), nullable(p.TotalMissInches),
		string(p.HomeAwayBenefit), string(p.PlayerTypeBenefit), p.BlownWalk, p.BlownStrikeout, p.PossibleBadData,
		p.UmpireID, p.UmpireName, p.HomeTeam, p.AwayTeam, p.HomeTeamID, p.AwayTeamID,
		nullable(p.TeamBenefit), nullable(p.TeamBenefitID), nullable(p.TeamHurt), nullable(p.TeamHurtID),
		nullable(p.HomeMediaID), nullable(p.AwayMediaID),
		nullable(p.TimestampStartHome), nullable(p.TimestampStartAway),
		nullable(p.StartSecondsHome), nullable(p.StartSecondsAway),
		nullable(p.TimestampEndHome), nullable(p.TimestampEndAway),
	}
}

func pitchDest(p *pitches.Graded) []any {
	return []any{
		&p.ID, &p.GameID, &p.GameDate, &p.PlayDescription, &p.Inning, &p.Half, &p.Outs, &p.BatSide,
		&p.BatterID, &p.PitcherID, &p.CatcherID, &p.Balls, &p.Strikes, &p.Code,
		&p.Px, &p.Pz, &p.ZoneTop, &p.ZoneBottom,
		unixMillis{&p.StartTime}, unixMillis{&p.EndTime}, &p.CorrectCall,
		&p.XMiss, &p.YMiss, &p.TotalMiss, &p.TotalMissInches,
		&p.HomeAwayBenefit, &p.PlayerTypeBenefit, &p.BlownWalk, &p.BlownStrikeout, &p.PossibleBadData,
		&p.UmpireID, &p.UmpireName, &p.HomeTeam, &p.AwayTeam, &p.HomeTeamID, &p.AwayTeamID,
		&p.TeamBenefit, &p.TeamBenefitID, &p.TeamHurt, &p.TeamHurtID,
		&p.HomeMediaID, &p.AwayMediaID,
		&p.TimestampStartHome, &p.TimestampStartAway,
		&p.StartSecondsHome, &p.StartSecondsAway,
		&p.TimestampEndHome, &p.TimestampEndAway,
	}
}

func ejectionArgs(e ejections.Ejection) []any {
	return []any{
		e.ID, e.GameID, e.GameDate, e.Description, e.PlayerID, e.UmpireID, e.UmpireName,
		e.EjectingUmpireID, e.HomeTeam, e.AwayTeam, e.HomeTeamID, e.AwayTeamID,
		nullable(e.TimestampStartHome), nullable(e.TimestampStartAway),
		nullable(e.StartSecondsHome), nullable(e.StartSecondsAway),
		nullable(e.HomeMediaID), nullable(e.AwayMediaID),
	}
}

func ejectionDest(e *ejections.Ejection) []any {
	return []any{
		&e.ID, &e.GameID, &e.GameDate, &e.Description, &e.PlayerID, &e.UmpireID, &e.UmpireName,
		&e.EjectingUmpireID, &e.HomeTeam, &e.AwayTeam, &e.HomeTeamID, &e.AwayTeamID,
		&e.TimestampStartHome, &e.TimestampStartAway,
		&e.StartSecondsHome, &e.StartSecondsAway,
		&e.HomeMediaID, &e.AwayMediaID,
	}
}
