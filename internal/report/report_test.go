package report

import (
	"errors"
	"testing"

	"github.com/preston-bernstein/umpire-auditor/internal/domain/games"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/pitches"
)

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }
func strp(v string) *string     { return &v }

func card(id, umpireID int, date string, correct, total int) games.Scorecard {
	return games.Scorecard{
		ID: id, GameDate: date, UmpireID: umpireID, UmpireName: "Ump",
		CorrectCalls: intp(correct), IncorrectCalls: intp(total - correct), TotalCalls: intp(total),
	}
}

func TestUmpireRatesSumsAndRanks(t *testing.T) {
	cards := []games.Scorecard{
		card(1, 7, "2024-06-01", 90, 100),
		card(2, 7, "2024-06-02", 95, 100),
		card(3, 8, "2024-06-01", 98, 100),
		card(4, 9, "2024-06-01", 1, 1),
		{ID: 5, UmpireID: 10, GameDate: "2024-06-01"},
	}

	got := UmpireRates(cards, DefaultMinCalls)
	if len(got) != 2 {
		t.Fatalf("expected 2 umpires above the call floor, got %+v", got)
	}
	if got[0].UmpireID != 8 || got[1].UmpireID != 7 {
		t.Fatalf("expected ranking by rate, got %+v", got)
	}
	if got[1].Games != 2 || got[1].TotalCalls != 200 || got[1].CorrectCallRate != 92.5 {
		t.Fatalf("unexpected sums for umpire 7: %+v", got[1])
	}
}

func TestUmpireRatesFloorIsExclusive(t *testing.T) {
	cards := []games.Scorecard{card(1, 7, "2024-06-01", 5, 10)}
	if got := UmpireRates(cards, 10); len(got) != 0 {
		t.Fatalf("expected umpire at the floor to be dropped, got %+v", got)
	}
	if got := UmpireRates(cards, 9); len(got) != 1 {
		t.Fatalf("expected umpire above the floor to be kept, got %+v", got)
	}
}

func TestSeasonRates(t *testing.T) {
	got := SeasonRates([]games.Scorecard{
		card(1, 7, "2023-09-30", 3, 4),
		card(2, 7, "2024-04-01", 9, 10),
		card(3, 8, "2024-04-02", 10, 10),
	})
	if len(got) != 2 || got[0].Season != "2023" || got[1].Season != "2024" {
		t.Fatalf("unexpected seasons %+v", got)
	}
	if got[1].TotalCalls != 20 || got[1].CorrectCallRate != 95 {
		t.Fatalf("unexpected 2024 totals %+v", got[1])
	}
}

func blown(benefitID int, benefit string, hurtID int, hurt string) pitches.Graded {
	return pitches.Graded{
		TeamBenefitID: intp(benefitID), TeamBenefit: strp(benefit),
		TeamHurtID: intp(hurtID), TeamHurt: strp(hurt),
	}
}

func TestTeamBenefitNetsCalls(t *testing.T) {
	graded := []pitches.Graded{
		blown(147, "NYY", 111, "BOS"),
		blown(147, "NYY", 111, "BOS"),
		blown(111, "BOS", 147, "NYY"),
		{CorrectCall: true},
	}
	got := TeamBenefit(graded)
	if len(got) != 2 {
		t.Fatalf("expected 2 teams, got %+v", got)
	}
	if got[0].Team != "NYY" || got[0].Benefit != 2 || got[0].Hurt != 1 || got[0].Net != 1 {
		t.Fatalf("unexpected NYY tally %+v", got[0])
	}
	if got[1].Net != -1 {
		t.Fatalf("unexpected BOS tally %+v", got[1])
	}
}

func TestBlownStrikeoutsOrderedByMiss(t *testing.T) {
	graded := []pitches.Graded{
		{Event: pitches.Event{ID: "small"}, BlownStrikeout: true, TotalMiss: floatp(0.1)},
		{Event: pitches.Event{ID: "none"}, BlownStrikeout: true},
		{Event: pitches.Event{ID: "big"}, BlownStrikeout: true, TotalMiss: floatp(0.5)},
		{Event: pitches.Event{ID: "walk"}, BlownWalk: true},
	}
	got := BlownStrikeouts(graded)
	ids := []string{got[0].ID, got[1].ID, got[2].ID}
	if len(got) != 3 || ids[0] != "big" || ids[1] != "small" || ids[2] != "none" {
		t.Fatalf("unexpected order %v", ids)
	}
}

func TestBlownWalksOrderedByHeight(t *testing.T) {
	graded := []pitches.Graded{
		{Event: pitches.Event{ID: "low", Pz: floatp(1.6)}, BlownWalk: true},
		{Event: pitches.Event{ID: "high", Pz: floatp(3.4)}, BlownWalk: true},
		{Event: pitches.Event{ID: "k", Pz: floatp(4.0)}, BlownStrikeout: true},
	}
	got := BlownWalks(graded)
	if len(got) != 2 || got[0].ID != "high" || got[1].ID != "low" {
		t.Fatalf("unexpected walks %+v", got)
	}
}

func TestPlayerBenefit(t *testing.T) {
	graded := []pitches.Graded{
		{Event: pitches.Event{BatterID: 1, PitcherID: 9, Code: pitches.CallBall, Balls: 3}, BlownWalk: true, PlayerTypeBenefit: pitches.RoleBatter},
		{Event: pitches.Event{BatterID: 1, PitcherID: 9, Code: pitches.CallStrike}, XMiss: floatp(0.2), YMiss: floatp(0), PlayerTypeBenefit: pitches.RolePitcher},
		{Event: pitches.Event{BatterID: 2, PitcherID: 9, Code: pitches.CallStrike}, XMiss: floatp(0), YMiss: floatp(0.3), BlownStrikeout: true, PlayerTypeBenefit: pitches.RolePitcher},
		{Event: pitches.Event{BatterID: 3, PitcherID: 8, Code: pitches.CallStrike}, CorrectCall: true},
	}

	batters := PlayerBenefit(graded, pitches.RoleBatter, map[int]string{1: "One"})
	if len(batters) != 2 {
		t.Fatalf("expected 2 batters, got %+v", batters)
	}
	first := batters[0]
	if first.PlayerID != 1 || first.Name != "One" || first.Favoured != 1 || first.Total != 2 ||
		first.BlownBalls != 1 || first.BlownStrikes != 1 || first.BlownWalks != 1 || first.XMisses != 1 {
		t.Fatalf("unexpected batter tally %+v", first)
	}

	pitchers := PlayerBenefit(graded, pitches.RolePitcher, nil)
	if len(pitchers) != 1 || pitchers[0].PlayerID != 9 || pitchers[0].Favoured != 2 || pitchers[0].YMisses != 1 || pitchers[0].BlownStrikeouts != 1 {
		t.Fatalf("unexpected pitcher tally %+v", pitchers)
	}
}

func TestParseRole(t *testing.T) {
	if r, err := ParseRole(" Pitcher "); err != nil || r != pitches.RolePitcher {
		t.Fatalf("expected pitcher, got %q %v", r, err)
	}
	if _, err := ParseRole("catcher"); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestReplayUsesHurtBroadcast(t *testing.T) {
	p := pitches.Graded{
		GameDate:        "2024-06-02",
		HomeAwayBenefit: pitches.BenefitHome,
		TeamHurt:        strp("BOS"),
	}
	if _, ok := Replay(p); ok {
		t.Fatal("expected no replay without an away offset")
	}

	p.Offsets.StartSecondsAway = intp(754)
	got, ok := Replay(p)
	if !ok || got != "streamglob download://mlb/06-02-2024.BOS.1:offset=754" {
		t.Fatalf("unexpected replay %q", got)
	}

	p.CorrectCall = true
	if _, ok := Replay(p); ok {
		t.Fatal("correct calls have no replay")
	}
}
