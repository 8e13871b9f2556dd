package game

import "github.com/mitchelldurbincs/HexTactics/internal/game/core"

// PlayerStats summarizes one player's holdings
type PlayerStats struct {
	Player     core.PlayerNumber `json:"player"`
	Alive      bool              `json:"alive"`
	Funds      int               `json:"funds"`
	Score      int               `json:"score"`
	Units      int               `json:"units"`
	ArmyValue  int               `json:"army_value"`
	ArmyHealth int               `json:"army_health"`
	Tiles      int               `json:"tiles"`
	Income     int               `json:"income"`
}

// Stats recalculates every player's statistics from the current state.
// Carried units count toward their owner's army.
func (g *Game) Stats() []PlayerStats {
	stats := make([]PlayerStats, len(g.players))
	for i, p := range g.players {
		stats[i] = PlayerStats{Player: p.Number, Alive: p.Alive, Funds: p.Funds, Score: p.Score}
	}
	at := func(owner core.PlayerNumber) *PlayerStats {
		i := int(owner) - 1
		if i < 0 || i >= len(stats) {
			return nil
		}
		return &stats[i]
	}

	for _, u := range g.units {
		if s := at(u.Owner); s != nil {
			s.Units++
			s.ArmyValue += u.Type.Price() * u.Health / core.MaxHealth
			s.ArmyHealth += u.Health
		}
	}
	for _, t := range g.tiles {
		if s := at(t.Owner); s != nil {
			s.Tiles++
			s.Income += t.FundsGenerated(g.rules.FundsPerTile)
		}
	}

	g.logger.Debug().Int("players", len(stats)).Msg("Player stats updated")
	return stats
}
