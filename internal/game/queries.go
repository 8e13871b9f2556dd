package game

import (
	"slices"

	"github.com/mitchelldurbincs/HexTactics/internal/game/catalog"
	"github.com/mitchelldurbincs/HexTactics/internal/game/core"
	"github.com/mitchelldurbincs/HexTactics/internal/game/rules"
	"github.com/mitchelldurbincs/HexTactics/internal/game/states"
)

func (g *Game) ID() string              { return g.id }
func (g *Game) Rules() Rules            { return g.rules }
func (g *Game) Phase() states.GamePhase { return g.machine.Current() }
func (g *Game) Round() int              { return g.round }
func (g *Game) Turn() int               { return g.turn }

// History returns the phase transitions so far
func (g *Game) History() []states.Transition { return g.machine.History() }

// ActivePlayer returns the player in turn. It is false outside InProgress.
func (g *Game) ActivePlayer() (core.Player, bool) {
	if g.active < 0 {
		return core.Player{}, false
	}
	return g.players[g.active], true
}

// Player looks a player up by number
func (g *Game) Player(n core.PlayerNumber) (core.Player, bool) {
	i := int(n) - 1
	if i < 0 || i >= len(g.players) {
		return core.Player{}, false
	}
	return g.players[i], true
}

// Players returns every player in turn order
func (g *Game) Players() []core.Player {
	return slices.Clone(g.players)
}

// Tiles returns every tile ordered by id
func (g *Game) Tiles() []core.Tile {
	out := make([]core.Tile, len(g.tileOrder))
	for i, id := range g.tileOrder {
		out[i] = g.tiles[id]
	}
	return out
}

// Units returns every unit, carried ones included, ordered by id
func (g *Game) Units() []core.Unit {
	return g.sortedUnits()
}

// Reachable maps every position unit id can move to this turn to the
// cheapest path there. It is empty for units that cannot act.
func (g *Game) Reachable(id core.UnitID) map[core.Position][]core.Position {
	u, ok := g.Unit(id)
	if !ok || u.Moved {
		return map[core.Position][]core.Position{}
	}
	return rules.ReachableSet(g, u)
}

// AttackTargets lists the enemy units id could hit if it fired from pos,
// ordered by id.
func (g *Game) AttackTargets(id core.UnitID, from core.Position) []core.UnitID {
	u, ok := g.Unit(id)
	if !ok {
		return nil
	}
	var targets []core.UnitID
	for _, tid := range g.tileOrder {
		t := g.tiles[tid]
		if !t.IsOccupied() || t.Unit == u.ID {
			continue
		}
		target := g.units[t.Unit]
		if target.Owner == u.Owner {
			continue
		}
		if g.combat.AttackIsLegal(g, u, target, from) {
			targets = append(targets, target.ID)
		}
	}
	slices.Sort(targets)
	return targets
}

// BuildOptions lists the unit types the active player can build and afford
// on the tile at pos right now.
func (g *Game) BuildOptions(pos core.Position) []catalog.UnitType {
	p, ok := g.ActivePlayer()
	if !ok {
		return nil
	}
	t, ok := g.TileAt(pos)
	if !ok || t.Owner != p.Number || t.IsOccupied() {
		return nil
	}
	var out []catalog.UnitType
	for _, ut := range catalog.UnitTypes() {
		if t.Terrain.CanBuild(ut.Class()) && ut.Price() <= p.Funds {
			out = append(out, ut)
		}
	}
	return out
}

// Damage previews the damage attacker would deal to target from pos. It is
// false when the attack is not possible.
func (g *Game) Damage(attacker core.UnitID, from core.Position, target core.UnitID) (int, bool) {
	a, ok := g.Unit(attacker)
	if !ok {
		return 0, false
	}
	d, ok := g.Unit(target)
	if !ok {
		return 0, false
	}
	t, ok := g.UnitTile(target)
	if !ok {
		return 0, false
	}
	return g.combat.ComputeDamage(a, d, from.DistanceTo(t.Position), t.Terrain)
}
