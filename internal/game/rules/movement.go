package rules

import (
	"fmt"

	"github.com/mitchelldurbincs/HexTactics/internal/game/core"
)

// ValidatePath checks that unit may walk path this turn. The first element
// must be the unit's current position; a single-element path means staying
// put. Every error wraps core.ErrInvalidPath.
func ValidatePath(b Board, unit core.Unit, path []core.Position) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty path", core.ErrInvalidPath)
	}

	origin, ok := b.UnitTile(unit.ID)
	if !ok {
		return fmt.Errorf("%w: unit %d is not on the map", core.ErrInvalidPath, unit.ID)
	}
	if path[0] != origin.Position {
		return fmt.Errorf("%w: path starts at %s but unit %d is at %s", core.ErrInvalidPath, path[0], unit.ID, origin.Position)
	}
	if len(path) == 1 {
		return nil
	}
	if unit.Deployed {
		return fmt.Errorf("%w: unit %d is deployed", core.ErrInvalidPath, unit.ID)
	}

	movement := unit.Type.Movement()
	budget := unit.Type.MovePoints()
	spent := 0
	for i := 1; i < len(path); i++ {
		if path[i-1].DistanceTo(path[i]) != 1 {
			return fmt.Errorf("%w: step %d from %s to %s is not adjacent", core.ErrInvalidPath, i, path[i-1], path[i])
		}
		tile, ok := b.TileAt(path[i])
		if !ok {
			return fmt.Errorf("%w: no tile at %s", core.ErrInvalidPath, path[i])
		}
		cost, ok := movement.Cost(tile.Terrain)
		if !ok {
			return fmt.Errorf("%w: %s cannot enter %s at %s", core.ErrInvalidPath, unit.Type, tile.Terrain, path[i])
		}
		spent += cost
		if spent > budget {
			return fmt.Errorf("%w: path costs more than %d move points", core.ErrInvalidPath, budget)
		}
		if blocker, ok := occupant(b, tile); ok && blocker.Owner != unit.Owner {
			return fmt.Errorf("%w: %s blocked by unit %d", core.ErrInvalidPath, path[i], blocker.ID)
		}
	}
	return nil
}

// CanStayAt checks that unit may end its move at pos: the tile must be empty
// or already hold the unit.
func CanStayAt(b Board, unit core.Unit, pos core.Position) error {
	tile, ok := b.TileAt(pos)
	if !ok {
		return fmt.Errorf("%w: no tile at %s", core.ErrInvalidPath, pos)
	}
	if tile.IsOccupied() && tile.Unit != unit.ID {
		return fmt.Errorf("%w: %s is occupied by unit %d", core.ErrInvalidPath, pos, tile.Unit)
	}
	return nil
}

// PathCost sums the movement cost of every tile after the origin. It does
// not validate the path.
func PathCost(b Board, unit core.Unit, path []core.Position) int {
	movement := unit.Type.Movement()
	total := 0
	for i := 1; i < len(path); i++ {
		tile, ok := b.TileAt(path[i])
		if !ok {
			continue
		}
		if cost, ok := movement.Cost(tile.Terrain); ok {
			total += cost
		}
	}
	return total
}
