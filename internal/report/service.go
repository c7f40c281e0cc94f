package report

import (
	"context"

	"github.com/preston-bernstein/umpire-auditor/internal/domain/ejections"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/games"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/pitches"
	"github.com/preston-bernstein/umpire-auditor/internal/store"
)

// Service answers report queries from a store Reader.
type Service struct {
	reader store.Reader
}

// NewService constructs a Service over reader.
func NewService(reader store.Reader) *Service {
	return &Service{reader: reader}
}

// Scorecard returns one game's scorecard.
func (s *Service) Scorecard(ctx context.Context, gameID int) (games.Scorecard, error) {
	return s.reader.Scorecard(ctx, gameID)
}

// GamePitches returns a game's graded pitches, optionally only the blown ones.
func (s *Service) GamePitches(ctx context.Context, gameID int, incorrectOnly bool) ([]pitches.Graded, error) {
	return s.reader.Pitches(ctx, store.PitchFilter{GameID: gameID, IncorrectOnly: incorrectOnly})
}

// Umpires ranks umpires over the range.
func (s *Service) Umpires(ctx context.Context, r store.Range, minCalls int) ([]UmpireRate, error) {
	cards, err := s.reader.Scorecards(ctx, r)
	if err != nil {
		return nil, err
	}
	return UmpireRates(cards, minCalls), nil
}

// Seasons summarizes accuracy per year over the range.
func (s *Service) Seasons(ctx context.Context, r store.Range) ([]SeasonRate, error) {
	cards, err := s.reader.Scorecards(ctx, r)
	if err != nil {
		return nil, err
	}
	return SeasonRates(cards), nil
}

// Teams nets blown calls per club over the range.
func (s *Service) Teams(ctx context.Context, r store.Range) ([]TeamTally, error) {
	blown, err := s.reader.Pitches(ctx, store.PitchFilter{Range: r, IncorrectOnly: true})
	if err != nil {
		return nil, err
	}
	return TeamBenefit(blown), nil
}

// BlownStrikeouts lists blown strike-three calls over the range.
func (s *Service) BlownStrikeouts(ctx context.Context, r store.Range) ([]BlownCall, error) {
	blown, err := s.reader.Pitches(ctx, store.PitchFilter{Range: r, BlownStrikeouts: true})
	if err != nil {
		return nil, err
	}
	return withReplay(BlownStrikeouts(blown)), nil
}

// BlownWalks lists blown ball-four calls over the range.
func (s *Service) BlownWalks(ctx context.Context, r store.Range) ([]BlownCall, error) {
	blown, err := s.reader.Pitches(ctx, store.PitchFilter{Range: r, BlownWalks: true})
	if err != nil {
		return nil, err
	}
	return withReplay(BlownWalks(blown)), nil
}

// Players ranks batters or pitchers by blown calls over the range.
func (s *Service) Players(ctx context.Context, r store.Range, role pitches.Role) ([]PlayerTally, error) {
	blown, err := s.reader.Pitches(ctx, store.PitchFilter{Range: r, IncorrectOnly: true})
	if err != nil {
		return nil, err
	}
	roster, err := s.reader.Players(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int]string, len(roster))
	for _, p := range roster {
		names[p.ID] = p.Name
	}
	return PlayerBenefit(blown, role, names), nil
}

// Ejections lists ejections over the range.
func (s *Service) Ejections(ctx context.Context, r store.Range) ([]ejections.Ejection, error) {
	return s.reader.Ejections(ctx, r)
}
