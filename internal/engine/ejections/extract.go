// Package ejections pulls ejection events out of a game feed.
package ejections

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"github.com/preston-bernstein/umpire-auditor/internal/domain/ejections"
	"github.com/preston-bernstein/umpire-auditor/internal/domain/games"
	"github.com/preston-bernstein/umpire-auditor/internal/timeutil"
)

// EventType is the play event type that marks an ejection.
const EventType = "ejection"

// ID derives the stable ejection key from the game, the home-plate umpire and the ejected player.
func ID(gameID, umpireID, playerID int) string {
	key := strconv.Itoa(gameID) + strconv.Itoa(umpireID) + strconv.Itoa(playerID)
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// Extract returns one record per distinct ejection in the feed, in play order.
// Events missing a description, start time, player or umpire are dropped.
func Extract(feed games.Feed, ctx games.Context) []ejections.Ejection {
	var out []ejections.Ejection
	seen := make(map[string]struct{})

	for _, play := range feed.Plays {
		if play.Description == nil {
			continue
		}
		for _, e := range play.Events {
			if e.EventType != EventType {
				continue
			}
			if e.Description == nil || e.StartTime == nil || e.PlayerID == nil || e.UmpireID == nil {
				continue
			}

			id := ID(ctx.GameID, ctx.Umpire.ID, *e.PlayerID)
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}

			rec := ejections.Ejection{
				ID:               id,
				GameID:           ctx.GameID,
				GameDate:         ctx.GameDate,
				Description:      *e.Description,
				PlayerID:         *e.PlayerID,
				UmpireID:         ctx.Umpire.ID,
				UmpireName:       ctx.Umpire.Name,
				EjectingUmpireID: *e.UmpireID,
				HomeTeam:         ctx.Home.Abbreviation,
				AwayTeam:         ctx.Away.Abbreviation,
				HomeTeamID:       ctx.Home.ID,
				AwayTeamID:       ctx.Away.ID,
				HomeMediaID:      ctx.Broadcast.HomeMediaID,
				AwayMediaID:      ctx.Broadcast.AwayMediaID,
			}
			rec.TimestampStartHome, rec.StartSecondsHome = timeutil.Offset(*e.StartTime, ctx.Broadcast.HomeStart)
			rec.TimestampStartAway, rec.StartSecondsAway = timeutil.Offset(*e.StartTime, ctx.Broadcast.AwayStart)
			out = append(out, rec)
		}
	}
	return out
}
