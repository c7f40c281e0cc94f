package grader

import (
	"github.com/preston-bernstein/umpire-auditor/internal/domain/games"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/pitches"
)

// EventsFromPlay flattens a play into pitch events carrying the count before each pitch.
// Non-pitch events are dropped. Plays without a description yield nothing.
func EventsFromPlay(gameID int, play games.Play) []pitches.Event {
	if play.Description == nil {
		return nil
	}

	var (
		out            []pitches.Event
		balls, strikes int
	)
	for _, e := range play.Events {
		if !e.IsPitch {
			continue
		}
		ev := pitches.Event{
			ID:              e.PlayID,
			GameID:          gameID,
			PlayDescription: *play.Description,
			Inning:          play.Inning,
			Half:            play.Half,
			Outs:            play.Outs,
			BatSide:         play.BatSide,
			BatterID:        play.BatterID,
			PitcherID:       play.PitcherID,
			Balls:           balls,
			Strikes:         strikes,
			Code:            pitches.Call(e.Code),
			StartTime:       e.StartTime,
			EndTime:         e.EndTime,
		}
		if e.Pitch != nil {
			ev.ZoneTop = e.Pitch.ZoneTop
			ev.ZoneBottom = e.Pitch.ZoneBottom
			ev.Px = e.Pitch.Px
			ev.Pz = e.Pitch.Pz
		}
		out = append(out, ev)
		balls, strikes = e.Balls, e.Strikes
	}
	return out
}
