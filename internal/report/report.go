// Package report ranks umpires, teams and players from persisted audit output.
package report

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/preston-bernstein/umpire-auditor/internal/domain/games"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/pitches"
)

// DefaultMinCalls drops umpires with a single graded call from rate rankings.
const DefaultMinCalls = 1

// ErrInvalidRole is returned for a player role other than batter or pitcher.
var ErrInvalidRole = errors.New("report: role must be batter or pitcher")

// UmpireRate is one umpire's accuracy summed over the scorecards in a range.
type UmpireRate struct {
	UmpireID        int     `json:"umpireId"`
	UmpireName      string  `json:"umpireName"`
	Games           int     `json:"games"`
	CorrectCalls    int     `json:"correctCalls"`
	IncorrectCalls  int     `json:"incorrectCalls"`
	TotalCalls      int     `json:"totalCalls"`
	CorrectCallRate float64 `json:"correctCallRate"`
}

// SeasonRate is league-wide accuracy for one calendar year.
type SeasonRate struct {
	Season          string  `json:"season"`
	CorrectCalls    int     `json:"correctCalls"`
	IncorrectCalls  int     `json:"incorrectCalls"`
	TotalCalls      int     `json:"totalCalls"`
	CorrectCallRate float64 `json:"correctCallRate"`
}

// TeamTally counts the blown calls that went for and against a club.
type TeamTally struct {
	TeamID  int    `json:"teamId"`
	Team    string `json:"team"`
	Benefit int    `json:"benefit"`
	Hurt    int    `json:"hurt"`
	Net     int    `json:"net"`
}

// PlayerTally counts the blown calls a batter or pitcher was involved in.
type PlayerTally struct {
	PlayerID        int    `json:"playerId"`
	Name            string `json:"name,omitempty"`
	BlownStrikes    int    `json:"blownStrikes"`
	BlownBalls      int    `json:"blownBalls"`
	XMisses         int    `json:"xMisses"`
	YMisses         int    `json:"yMisses"`
	BlownStrikeouts int    `json:"blownStrikeouts"`
	BlownWalks      int    `json:"blownWalks"`
	Favoured        int    `json:"favoured"`
	Total           int    `json:"total"`
}

// BlownCall is an incorrect call with an optional replay command.
type BlownCall struct {
	pitches.Graded
	Replay *string `json:"replay,omitempty"`
}

// ParseRole maps a query value onto a player role.
func ParseRole(value string) (pitches.Role, error) {
	switch pitches.Role(strings.ToLower(strings.TrimSpace(value))) {
	case pitches.RoleBatter:
		return pitches.RoleBatter, nil
	case pitches.RolePitcher:
		return pitches.RolePitcher, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, value)
	}
}

// UmpireRates sums scorecards per umpire and ranks by correct-call rate.
// Umpires with minCalls or fewer graded calls are dropped.
func UmpireRates(cards []games.Scorecard, minCalls int) []UmpireRate {
	byID := make(map[int]*UmpireRate)
	var order []int
	for _, c := range cards {
		if !c.HasData() {
			continue
		}
		r, ok := byID[c.UmpireID]
		if !ok {
			r = &UmpireRate{UmpireID: c.UmpireID, UmpireName: c.UmpireName}
			byID[c.UmpireID] = r
			order = append(order, c.UmpireID)
		}
		r.Games++
		r.CorrectCalls += deref(c.CorrectCalls)
		r.IncorrectCalls += deref(c.IncorrectCalls)
		r.TotalCalls += deref(c.TotalCalls)
	}

	out := make([]UmpireRate, 0, len(order))
	for _, id := range order {
		r := byID[id]
		if r.TotalCalls <= minCalls {
			continue
		}
		r.CorrectCallRate = rate(r.CorrectCalls, r.TotalCalls)
		out = append(out, *r)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CorrectCallRate != out[j].CorrectCallRate {
			return out[i].CorrectCallRate > out[j].CorrectCallRate
		}
		return out[i].UmpireID < out[j].UmpireID
	})
	return out
}

// SeasonRates sums scorecards per year of the official date.
func SeasonRates(cards []games.Scorecard) []SeasonRate {
	bySeason := make(map[string]*SeasonRate)
	for _, c := range cards {
		if !c.HasData() || len(c.GameDate) < 4 {
			continue
		}
		season := c.GameDate[:4]
		r, ok := bySeason[season]
		if !ok {
			r = &SeasonRate{Season: season}
			bySeason[season] = r
		}
		r.CorrectCalls += deref(c.CorrectCalls)
		r.IncorrectCalls += deref(c.IncorrectCalls)
		r.TotalCalls += deref(c.TotalCalls)
	}

	out := make([]SeasonRate, 0, len(bySeason))
	for _, r := range bySeason {
		r.CorrectCallRate = rate(r.CorrectCalls, r.TotalCalls)
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Season < out[j].Season })
	return out
}

// TeamBenefit nets the blown calls each club gained from against those it lost.
func TeamBenefit(graded []pitches.Graded) []TeamTally {
	byID := make(map[int]*TeamTally)
	tally := func(id *int, name *string) *TeamTally {
		t, ok := byID[*id]
		if !ok {
			t = &TeamTally{TeamID: *id}
			byID[*id] = t
		}
		if name != nil {
			t.Team = *name
		}
		return t
	}

	for _, p := range graded {
		if p.CorrectCall {
			continue
		}
		if p.TeamBenefitID != nil {
			tally(p.TeamBenefitID, p.TeamBenefit).Benefit++
		}
		if p.TeamHurtID != nil {
			tally(p.TeamHurtID, p.TeamHurt).Hurt++
		}
	}

	out := make([]TeamTally, 0, len(byID))
	for _, t := range byID {
		t.Net = t.Benefit - t.Hurt
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Net != out[j].Net {
			return out[i].Net > out[j].Net
		}
		return out[i].TeamID < out[j].TeamID
	})
	return out
}

// BlownStrikeouts returns strike-three calls that should have been balls, worst miss first.
func BlownStrikeouts(graded []pitches.Graded) []pitches.Graded {
	out := filter(graded, func(p pitches.Graded) bool { return p.BlownStrikeout })
	sort.SliceStable(out, func(i, j int) bool {
		return descending(out[i].TotalMiss, out[j].TotalMiss)
	})
	return out
}

// BlownWalks returns ball-four calls that should have been strikes, highest pitch first.
func BlownWalks(graded []pitches.Graded) []pitches.Graded {
	out := filter(graded, func(p pitches.Graded) bool { return p.BlownWalk })
	sort.SliceStable(out, func(i, j int) bool {
		return descending(out[i].Pz, out[j].Pz)
	})
	return out
}

// PlayerBenefit counts blown calls per batter or pitcher. Players are ranked by
// calls that went their way, then by involvement. names may be nil.
func PlayerBenefit(graded []pitches.Graded, role pitches.Role, names map[int]string) []PlayerTally {
	byID := make(map[int]*PlayerTally)
	for _, p := range graded {
		if p.CorrectCall {
			continue
		}
		id := p.BatterID
		if role == pitches.RolePitcher {
			id = p.PitcherID
		}
		t, ok := byID[id]
		if !ok {
			t = &PlayerTally{PlayerID: id, Name: names[id]}
			byID[id] = t
		}

		t.Total++
		switch p.Code {
		case pitches.CallStrike:
			t.BlownStrikes++
		case pitches.CallBall:
			t.BlownBalls++
		}
		if p.XMiss != nil && *p.XMiss > 0 {
			t.XMisses++
		}
		if p.YMiss != nil && *p.YMiss > 0 {
			t.YMisses++
		}
		if p.BlownStrikeout {
			t.BlownStrikeouts++
		}
		if p.BlownWalk {
			t.BlownWalks++
		}
		if p.PlayerTypeBenefit == role {
			t.Favoured++
		}
	}

	out := make([]PlayerTally, 0, len(byID))
	for _, t := range byID {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Favoured != out[j].Favoured {
			return out[i].Favoured > out[j].Favoured
		}
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].PlayerID < out[j].PlayerID
	})
	return out
}

// Replay builds a streamglob download command for the broadcast of the club that
// lost the call. It needs the hurt team and that broadcast's offset.
func Replay(p pitches.Graded) (string, bool) {
	if p.CorrectCall || p.TeamHurt == nil {
		return "", false
	}
	offset := p.StartSecondsHome
	if p.HomeAwayBenefit == pitches.BenefitHome {
		offset = p.StartSecondsAway
	}
	if offset == nil {
		return "", false
	}
	date, err := time.Parse(time.DateOnly, p.GameDate)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("streamglob download://mlb/%s.%s.1:offset=%d", date.Format("01-02-2006"), *p.TeamHurt, *offset), true
}

func withReplay(graded []pitches.Graded) []BlownCall {
	out := make([]BlownCall, 0, len(graded))
	for _, p := range graded {
		call := BlownCall{Graded: p}
		if cmd, ok := Replay(p); ok {
			call.Replay = &cmd
		}
		out = append(out, call)
	}
	return out
}

func filter(graded []pitches.Graded, keep func(pitches.Graded) bool) []pitches.Graded {
	out := make([]pitches.Graded, 0)
	for _, p := range graded {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// descending orders present values high to low and nils last.
func descending(a, b *float64) bool {
	switch {
	case a == nil:
		return false
	case b == nil:
		return true
	default:
		return *a > *b
	}
}

func rate(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total) * 100
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
