package rules

import (
	"github.com/mitchelldurbincs/HexTactics/internal/game/catalog"
	"github.com/mitchelldurbincs/HexTactics/internal/game/core"
)

// DefaultDefenseStep is the percentage of damage each terrain defense star absorbs.
const DefaultDefenseStep = 10

// Combat resolves damage between two units. The zero value uses no terrain
// reduction at all; use NewCombat for the standard balance.
type Combat struct {
	DefenseStep int
}

// NewCombat returns a Combat with the given defense step percentage
func NewCombat(defenseStep int) Combat {
	return Combat{DefenseStep: defenseStep}
}

// Strike is the outcome of the best weapon an attacker can bring to bear.
type Strike struct {
	Weapon catalog.Weapon
	Damage int
}

// BestStrike picks the attacker weapon dealing the most damage to defender at
// distance, where defender stands on terrain. ok is false when no weapon can
// fire: out of range, no power against the armor, or not deployed when the
// weapon requires it.
func (c Combat) BestStrike(attacker, defender core.Unit, distance int, terrain catalog.Terrain) (strike Strike, ok bool) {
	armor := defender.Type.Armor()
	reduction := max(0, 100-c.DefenseStep*defender.Type.TerrainDefense(terrain))

	for _, w := range attacker.Type.Weapons() {
		if w.Info().RequiresDeployed && !attacker.Deployed {
			continue
		}
		power, hit := w.PowerAgainst(armor)
		if !hit {
			continue
		}
		effect, inRange := w.Effectiveness(distance)
		if !inRange {
			continue
		}

		// power% * effect% * health * reduction%, rounded half up
		damage := (power*effect*attacker.Health*reduction + 500_000) / 1_000_000
		damage = min(damage, defender.Health)
		if !ok || damage > strike.Damage {
			strike = Strike{Weapon: w, Damage: damage}
			ok = true
		}
	}
	return strike, ok
}

// ComputeDamage returns the damage attacker deals to defender, clamped to the
// defender's health, or false if no weapon applies.
func (c Combat) ComputeDamage(attacker, defender core.Unit, distance int, terrain catalog.Terrain) (int, bool) {
	strike, ok := c.BestStrike(attacker, defender, distance, terrain)
	return strike.Damage, ok
}

// AttackIsLegal reports whether attacker, standing at from, can damage
// defender where it currently stands.
func (c Combat) AttackIsLegal(b Board, attacker, defender core.Unit, from core.Position) bool {
	tile, ok := b.UnitTile(defender.ID)
	if !ok {
		return false
	}
	_, ok = c.ComputeDamage(attacker, defender, from.DistanceTo(tile.Position), tile.Terrain)
	return ok
}
