package rules

import "github.com/mitchelldurbincs/HexTactics/internal/game/core"

// Board is the read-only view of a game the rules are evaluated against.
// Implementations return copies; mutating them has no effect on the game.
type Board interface {
	// TileAt returns the tile at pos, if the map has one there.
	TileAt(pos core.Position) (core.Tile, bool)
	// Unit returns the unit with the given id.
	Unit(id core.UnitID) (core.Unit, bool)
	// UnitTile returns the tile a unit stands on. Carried units have none.
	UnitTile(id core.UnitID) (core.Tile, bool)
	// Bounds is the bounding rectangle of every tile on the map.
	Bounds() core.Rect
}

// occupant returns the unit standing on t, if any.
func occupant(b Board, t core.Tile) (core.Unit, bool) {
	if !t.IsOccupied() {
		return core.Unit{}, false
	}
	return b.Unit(t.Unit)
}
