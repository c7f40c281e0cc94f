package mlbstats

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/preston-bernstein/umpire-auditor/internal/domain/games"
)

func decodeFeed(t *testing.T) games.Feed {
	t.Helper()
	var payload feedResponse
	if err := json.Unmarshal([]byte(feedJSON), &payload); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return mapFeed(payload)
}

func TestMapFeedOfficialsAndRosters(t *testing.T) {
	feed := decodeFeed(t)

	if len(feed.Officials) != 2 || feed.Officials[1].Role != "Home Plate" || feed.Officials[1].ID != 500 {
		t.Fatalf("unexpected officials %+v", feed.Officials)
	}
	if len(feed.HomeRoster) != 2 || feed.HomeRoster[0].PlayerID != 10 || feed.HomeRoster[1].PlayerID != 11 {
		t.Fatalf("expected roster sorted by player id, got %+v", feed.HomeRoster)
	}
	if !feed.HomeRoster[1].IsSubstitute || feed.HomeRoster[0].Position != games.PositionCatcher {
		t.Fatalf("unexpected roster flags %+v", feed.HomeRoster)
	}
	if len(feed.People) != 3 || feed.People[0].ID != 10 || feed.People[2].IsPlayer {
		t.Fatalf("unexpected people %+v", feed.People)
	}
	if feed.People[0].BatSide != "L" || feed.People[2].BatSide != "" {
		t.Fatalf("unexpected bat sides %+v", feed.People)
	}
}

func TestMapFeedPlaysAndEvents(t *testing.T) {
	feed := decodeFeed(t)

	first := feed.Plays[0]
	if first.Description == nil || *first.Description != "Walk." || first.Half != games.HalfTop {
		t.Fatalf("unexpected play %+v", first)
	}
	if first.BatterID != 30 || first.PitcherID != 40 || first.BatSide != "R" {
		t.Fatalf("unexpected matchup %+v", first)
	}

	pitch := first.Events[0]
	if !pitch.IsPitch || pitch.Code != "B" || pitch.Balls != 1 || pitch.PlayID != "p-1" {
		t.Fatalf("unexpected pitch %+v", pitch)
	}
	if pitch.Pitch == nil || *pitch.Pitch.Px != 1.21 || pitch.Pitch.ZoneBottom == nil || *pitch.Pitch.ZoneBottom != 1.6 {
		t.Fatalf("unexpected pitch data %+v", pitch.Pitch)
	}
	want := time.Date(2024, 6, 2, 23, 5, 10, 125_000_000, time.UTC)
	if pitch.StartTime == nil || !pitch.StartTime.Equal(want) || pitch.EndTime == nil {
		t.Fatalf("unexpected times %v %v", pitch.StartTime, pitch.EndTime)
	}

	sub := first.Events[1]
	if !sub.IsSubstitution || sub.Position != games.PositionCatcher || sub.PlayerID == nil || *sub.PlayerID != 11 {
		t.Fatalf("unexpected substitution %+v", sub)
	}

	ejection := first.Events[2]
	if ejection.EventType != "ejection" || ejection.UmpireID == nil || *ejection.UmpireID != 500 {
		t.Fatalf("unexpected ejection %+v", ejection)
	}

	second := feed.Plays[1]
	if second.Description != nil || second.Half != games.HalfBottom {
		t.Fatalf("expected undescribed bottom-half play, got %+v", second)
	}
}

func TestParseTimeRejectsGarbage(t *testing.T) {
	if parseTime("") != nil || parseTime("yesterday") != nil {
		t.Fatal("expected nil for missing or invalid timestamps")
	}
}

func TestMapEventKeepsMissingZoneBoundsNil(t *testing.T) {
	var e eventResponse
	raw := `{"isPitch": true, "playId": "p-9", "details": {"code": "C"}, "pitchData": {"coordinates": {"pX": 0.1, "pZ": 2.2}}}`
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		t.Fatalf("decode event: %v", err)
	}
	ev := mapEvent(e)
	if ev.Pitch == nil || ev.Pitch.Px == nil {
		t.Fatalf("expected tracked location, got %+v", ev.Pitch)
	}
	if ev.Pitch.ZoneTop != nil || ev.Pitch.ZoneBottom != nil {
		t.Fatalf("expected nil zone bounds, got %v %v", ev.Pitch.ZoneTop, ev.Pitch.ZoneBottom)
	}
}
