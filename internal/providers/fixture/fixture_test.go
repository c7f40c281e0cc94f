package fixture

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/umpire-auditor/internal/domain/games"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/umpires"
)

func TestFetchScheduleReturnsAllFixtures(t *testing.T) {
	ids, err := New().FetchSchedule(context.Background(), "2024-06-02")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(ids) != 3 || ids[0] != GameRegular || ids[1] != GameRainout || ids[2] != GameSpring {
		t.Fatalf("unexpected ids %v", ids)
	}
}

func TestRegularGameShape(t *testing.T) {
	feed, err := New().FetchGame(context.Background(), GameRegular)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if feed.Type != "R" || feed.OfficialDate != Date || feed.Home.Abbreviation != "NYY" {
		t.Fatalf("unexpected header %+v", feed)
	}

	var plate int
	for _, o := range feed.Officials {
		if o.Role == umpires.RoleHomePlate {
			plate++
		}
	}
	if plate != 1 {
		t.Fatalf("expected one plate umpire, got %d", plate)
	}

	pitches, withoutDescription := 0, 0
	for _, play := range feed.Plays {
		for _, e := range play.Events {
			if e.IsPitch {
				pitches++
				if play.Description == nil {
					withoutDescription++
				}
			}
		}
	}
	if pitches != 12 || withoutDescription != 1 {
		t.Fatalf("expected 12 pitches with 1 undescribed, got %d/%d", pitches, withoutDescription)
	}

	last := feed.Plays[len(feed.Plays)-1]
	if !last.Events[0].IsSubstitution || last.Events[0].Position != games.PositionCatcher {
		t.Fatalf("expected catcher substitution, got %+v", last.Events[0])
	}
}

func TestFeedsAreDeterministic(t *testing.T) {
	p := New()
	a, _ := p.FetchGame(context.Background(), GameRegular)
	b, _ := p.FetchGame(context.Background(), GameRegular)
	if !a.Plays[0].Events[0].StartTime.Equal(*b.Plays[0].Events[0].StartTime) {
		t.Fatal("expected identical timestamps across fetches")
	}
}

func TestExcludedFixtures(t *testing.T) {
	rainout, _ := New().FetchGame(context.Background(), GameRainout)
	if len(rainout.Officials) != 0 {
		t.Fatal("rainout carries no officials")
	}
	spring, _ := New().FetchGame(context.Background(), GameSpring)
	if spring.Type != "S" || len(spring.Officials) == 0 {
		t.Fatalf("unexpected spring game %+v", spring)
	}
}

func TestUnknownGame(t *testing.T) {
	if _, err := New().FetchGame(context.Background(), 5); !errors.Is(err, ErrUnknownGame) {
		t.Fatalf("expected ErrUnknownGame, got %v", err)
	}
}
