package providers

import (
	"context"

	"github.com/preston-bernstein/umpire-auditor/internal/domain/games"
)

// GameProvider defines how upstream game data is fetched and normalized.
// Dates are YYYY-MM-DD strings.
type GameProvider interface {
	// FetchSchedule returns the game ids scheduled on date.
	FetchSchedule(ctx context.Context, date string) ([]int, error)
	// FetchGame returns the normalized live feed for one game.
	FetchGame(ctx context.Context, gameID int) (games.Feed, error)
}
