package testutil

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/preston-bernstein/umpire-auditor/internal/domain/games"
	"github.com/preston-bernstein/umpire-auditor/internal/providers"
)

// StubProvider serves canned schedules and feeds. Unknown games yield an error.
type StubProvider struct {
	Schedule map[string][]int
	Feeds    map[int]games.Feed
	Err      error
	Calls    atomic.Int32
}

func (p *StubProvider) FetchSchedule(ctx context.Context, date string) ([]int, error) {
	_ = ctx
	p.Calls.Add(1)
	if p.Err != nil {
		return nil, p.Err
	}
	return p.Schedule[date], nil
}

func (p *StubProvider) FetchGame(ctx context.Context, gameID int) (games.Feed, error) {
	_ = ctx
	p.Calls.Add(1)
	if p.Err != nil {
		return games.Feed{}, p.Err
	}
	feed, ok := p.Feeds[gameID]
	if !ok {
		return games.Feed{}, fmt.Errorf("stub: no feed for game %d", gameID)
	}
	return feed, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchSchedule(ctx context.Context, date string) ([]int, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchGame(ctx context.Context, gameID int) (games.Feed, error) {
	return games.Feed{}, p.Err
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchSchedule(ctx context.Context, date string) ([]int, error) {
	return nil, providers.ErrProviderUnavailable
}

func (UnavailableProvider) FetchGame(ctx context.Context, gameID int) (games.Feed, error) {
	return games.Feed{}, providers.ErrProviderUnavailable
}
