package mlbstats

import (
	"sort"
	"time"

	"github.com/preston-bernstein/umpire-auditor/internal/domain/games"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/players"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/teams"
	"github.com/preston-bernstein/umpire-auditor/internal/timeutil"
)

func mapSchedule(payload scheduleResponse) []int {
	var ids []int
	for _, d := range payload.Dates {
		for _, g := range d.Games {
			ids = append(ids, g.GamePk)
		}
	}
	return ids
}

func mapFeed(payload feedResponse) games.Feed {
	gameID := payload.GamePk
	if gameID == 0 {
		gameID = payload.GameData.Game.Pk
	}

	feed := games.Feed{
		GameID:       gameID,
		Type:         payload.GameData.Game.Type,
		OfficialDate: payload.GameData.Datetime.OfficialDate,
		Home:         mapTeam(payload.GameData.Teams.Home),
		Away:         mapTeam(payload.GameData.Teams.Away),
		People:       mapPeople(payload.GameData.Players),
		HomeRoster:   mapRoster(payload.LiveData.Boxscore.Teams.Home),
		AwayRoster:   mapRoster(payload.LiveData.Boxscore.Teams.Away),
	}
	for _, o := range payload.LiveData.Boxscore.Officials {
		feed.Officials = append(feed.Officials, games.Official{
			ID:   o.Official.ID,
			Name: o.Official.FullName,
			Role: o.OfficialType,
		})
	}
	for _, p := range payload.LiveData.Plays.AllPlays {
		feed.Plays = append(feed.Plays, mapPlay(p))
	}
	return feed
}

func mapTeam(t teamResponse) teams.Team {
	return teams.Team{ID: t.ID, Name: t.Name, Abbreviation: t.Abbreviation}
}

// mapPeople returns the game's people sorted by id; upstream keys them in a map.
func mapPeople(in map[string]playerResponse) []games.Person {
	out := make([]games.Person, 0, len(in))
	for _, p := range in {
		person := games.Person{
			Player:   players.Player{ID: p.ID, Name: p.FullName},
			IsPlayer: p.IsPlayer,
		}
		if p.BatSide != nil {
			person.BatSide = p.BatSide.Code
		}
		out = append(out, person)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func mapRoster(team boxscoreTeam) []games.RosterEntry {
	out := make([]games.RosterEntry, 0, len(team.Players))
	for _, p := range team.Players {
		out = append(out, games.RosterEntry{
			PlayerID:     p.Person.ID,
			Position:     p.Position.Name,
			IsSubstitute: p.GameStatus.IsSubstitute,
			IsOnBench:    p.GameStatus.IsOnBench,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out
}

func mapPlay(p playResponse) games.Play {
	play := games.Play{
		Description: p.Result.Description,
		Inning:      p.About.Inning,
		Half:        mapHalf(p.About.HalfInning),
		Outs:        p.Count.Outs,
		BatSide:     p.Matchup.BatSide.Code,
		BatterID:    p.Matchup.Batter.ID,
		PitcherID:   p.Matchup.Pitcher.ID,
		Events:      make([]games.PlayEvent, 0, len(p.PlayEvents)),
	}
	for _, e := range p.PlayEvents {
		play.Events = append(play.Events, mapEvent(e))
	}
	return play
}

func mapHalf(raw string) games.Half {
	if raw == string(games.HalfTop) {
		return games.HalfTop
	}
	return games.HalfBottom
}

func mapEvent(e eventResponse) games.PlayEvent {
	ev := games.PlayEvent{
		IsPitch:        e.IsPitch,
		IsSubstitution: e.IsSubstitution,
		PlayID:         e.PlayID,
		Balls:          e.Count.Balls,
		Strikes:        e.Count.Strikes,
		Code:           e.Details.Code,
		EventType:      e.Details.EventType,
		Description:    e.Details.Description,
		StartTime:      parseTime(e.StartTime),
		EndTime:        parseTime(e.EndTime),
	}
	if e.PitchData != nil {
		ev.Pitch = &games.PitchData{
			ZoneTop:    e.PitchData.StrikeZoneTop,
			ZoneBottom: e.PitchData.StrikeZoneBottom,
			Px:         e.PitchData.Coordinates.PX,
			Pz:         e.PitchData.Coordinates.PZ,
		}
	}
	if e.Position != nil {
		ev.Position = e.Position.Name
	}
	if e.Player != nil {
		id := e.Player.ID
		ev.PlayerID = &id
	}
	if e.Umpire != nil {
		id := e.Umpire.ID
		ev.UmpireID = &id
	}
	return ev
}

func parseTime(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	t, err := timeutil.ParseTimestamp(raw)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}
