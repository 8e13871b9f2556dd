package rules

import (
	"iter"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/HexTactics/internal/game/core"
)

// WinConditionChecker handles alive-status evaluation and winner determination
type WinConditionChecker struct {
	logger zerolog.Logger
}

// NewWinConditionChecker creates a new win condition checker
func NewWinConditionChecker(logger zerolog.Logger) *WinConditionChecker {
	return &WinConditionChecker{
		logger: logger.With().Str("component", "WinConditionChecker").Logger(),
	}
}

// EvaluateAlive reports, for each player number, whether that player still
// owns a unit or a tile a unit can be built on.
func (wc *WinConditionChecker) EvaluateAlive(players []core.PlayerNumber, tiles iter.Seq[core.Tile], units iter.Seq[core.Unit]) map[core.PlayerNumber]bool {
	alive := make(map[core.PlayerNumber]bool, len(players))
	for _, p := range players {
		alive[p] = false
	}
	for u := range units {
		if _, tracked := alive[u.Owner]; tracked {
			alive[u.Owner] = true
		}
	}
	for t := range tiles {
		if _, tracked := alive[t.Owner]; tracked && t.Terrain.IsBuildSite() {
			alive[t.Owner] = true
		}
	}
	return alive
}

// CheckGameOver determines if the game is over based on the players' alive flags.
// A single survivor wins; nobody alive ends the game without a winner.
// Returns (isGameOver, winner), with winner core.Neutral when there is none.
func (wc *WinConditionChecker) CheckGameOver(players []core.Player) (bool, core.PlayerNumber) {
	aliveCount := 0
	var lastAlive core.PlayerNumber
	for _, p := range players {
		if p.Alive {
			aliveCount++
			lastAlive = p.Number
		}
	}

	switch aliveCount {
	case 0:
		wc.logger.Info().Msg("No winner found, all players eliminated")
		return true, core.Neutral
	case 1:
		wc.logger.Info().Int("winner_player", int(lastAlive)).Msg("Winner determined")
		return true, lastAlive
	default:
		wc.logger.Debug().Int("alive_player_count", aliveCount).Msg("Game continues")
		return false, core.Neutral
	}
}
