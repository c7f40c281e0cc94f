// Package scorecard rolls graded pitches up into a per-game umpire summary.
package scorecard

import (
	"github.com/preston-bernstein/umpire-auditor/internal/domain/games"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/pitches"
)

// Aggregate builds the game's scorecard. With no graded pitches every count stays nil.
func Aggregate(ctx games.Context, graded []pitches.Graded) games.Scorecard {
	card := games.Scorecard{
		ID:         ctx.GameID,
		GameDate:   ctx.GameDate,
		GameType:   ctx.GameType,
		HomeTeam:   ctx.Home.Abbreviation,
		AwayTeam:   ctx.Away.Abbreviation,
		HomeTeamID: ctx.Home.ID,
		AwayTeamID: ctx.Away.ID,
		UmpireID:   ctx.Umpire.ID,
		UmpireName: ctx.Umpire.Name,
	}
	if len(graded) == 0 {
		return card
	}

	var correct, incorrect, home, away int
	for _, p := range graded {
		if p.CorrectCall {
			correct++
		} else {
			incorrect++
		}
		switch p.HomeAwayBenefit {
		case pitches.BenefitHome:
			home++
		case pitches.BenefitAway:
			away++
		}
	}
	total := len(graded)
	rate := float64(correct) / float64(total) * 100

	card.CorrectCalls = &correct
	card.IncorrectCalls = &incorrect
	card.TotalCalls = &total
	card.CallsBenefitHome = &home
	card.CallsBenefitAway = &away
	card.CorrectCallRate = &rate
	return card
}
