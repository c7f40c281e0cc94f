package ejections

// Ejection is a player or coach ejection observed in a game's play events.
// ID is derived from the game, the home-plate umpire and the ejected player so
// re-runs upsert the same row.
type Ejection struct {
	ID                 string  `json:"id"`
	GameID             int     `json:"gameId"`
	GameDate           string  `json:"gameDate"`
	Description        string  `json:"description"`
	PlayerID           int     `json:"playerId"`
	UmpireID           int     `json:"umpireId"`
	UmpireName         string  `json:"umpireName"`
	EjectingUmpireID   int     `json:"ejectingUmpireId"`
	HomeTeam           string  `json:"homeTeam"`
	AwayTeam           string  `json:"awayTeam"`
	HomeTeamID         int     `json:"homeTeamId"`
	AwayTeamID         int     `json:"awayTeamId"`
	TimestampStartHome *string `json:"timestampStartHome"`
	TimestampStartAway *string `json:"timestampStartAway"`
	StartSecondsHome   *int    `json:"startSecondsHome"`
	StartSecondsAway   *int    `json:"startSecondsAway"`
	HomeMediaID        *string `json:"homeMediaId"`
	AwayMediaID        *string `json:"awayMediaId"`
}
