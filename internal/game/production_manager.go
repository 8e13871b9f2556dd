package game

import (
	"iter"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/HexTactics/internal/game/core"
	"github.com/mitchelldurbincs/HexTactics/internal/game/events"
)

// ProductionManager applies the start-of-turn economy: income, capture
// point regeneration and repairs.
type ProductionManager struct {
	rules  Rules
	gameID string
	logger zerolog.Logger
}

// NewProductionManager creates a new production manager
func NewProductionManager(r Rules, gameID string, logger zerolog.Logger) *ProductionManager {
	return &ProductionManager{
		rules:  r,
		gameID: gameID,
		logger: logger.With().Str("component", "ProductionManager").Logger(),
	}
}

// Income is what player earns from the tiles it owns.
func (pm *ProductionManager) Income(tiles iter.Seq[core.Tile], player core.PlayerNumber) int {
	income := 0
	for t := range tiles {
		if t.Owner == player {
			income += t.FundsGenerated(pm.rules.FundsPerTile)
		}
	}
	return income
}

// startOfTurn stages the economy for the player at index i.
func (pm *ProductionManager) startOfTurn(b *batch, i int) {
	p := b.player(i)

	income := pm.Income(b.eachTile(), p.Number)
	p.Funds += income
	b.setPlayer(i, p)
	b.emit(events.NewFundsEvent(pm.gameID, p.Number, income, p.Funds))

	for u := range b.eachUnit() {
		if u.Owner == p.Number && u.Capturing {
			u.Capturing = false
			b.setUnit(u)
		}
	}

	regenerated := 0
	for t := range b.eachTile() {
		if t.Owner != p.Number || t.CapturePoints >= core.MaxCapturePoints {
			continue
		}
		if occ, ok := b.Unit(t.Unit); t.IsOccupied() && ok && occ.Capturing {
			continue
		}
		points := min(core.MaxCapturePoints, t.CapturePoints+pm.rules.CaptureRegenRate)
		if points == t.CapturePoints {
			continue
		}
		t.CapturePoints = points
		b.setTile(t)
		b.emit(events.NewTileCapturePointRegenEvent(pm.gameID, t.ID, points))
		regenerated++
	}

	repaired := 0
	for t := range b.eachTile() {
		if t.Owner != p.Number || !t.IsOccupied() {
			continue
		}
		u, ok := b.Unit(t.Unit)
		if !ok || u.Owner != p.Number || !u.IsDamaged() || !t.Terrain.CanRepair(u.Type.Class()) {
			continue
		}
		health := min(core.MaxHealth, u.Health+pm.rules.RepairRate)
		if health == u.Health {
			continue
		}
		amount := health - u.Health
		u.Health = health
		b.setUnit(u)
		b.emit(events.NewUnitRepairEvent(pm.gameID, u.ID, t.ID, amount, health))
		repaired++
	}

	pm.logger.Debug().
		Int("player", int(p.Number)).
		Int("income", income).
		Int("funds", p.Funds).
		Int("tiles_regenerated", regenerated).
		Int("units_repaired", repaired).
		Msg("Start of turn production")
}
