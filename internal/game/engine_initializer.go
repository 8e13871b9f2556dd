package game

import (
	"fmt"
	"slices"

	"github.com/mitchelldurbincs/HexTactics/internal/game/core"
)

// load validates the entity tables and builds the game's indices from them.
// Every failure wraps core.ErrInvalidMap.
func (g *Game) load(tiles []core.Tile, units []core.Unit, playerCount int) error {
	g.tiles = make(map[core.TileID]core.Tile, len(tiles))
	g.byPos = make(map[core.Position]core.TileID, len(tiles))
	g.units = make(map[core.UnitID]core.Unit, len(units))
	g.unitTile = make(map[core.UnitID]core.TileID, len(units))
	g.tileOrder = g.tileOrder[:0]

	if len(tiles) == 0 {
		return invalidMap("map has no tiles")
	}

	positions := make([]core.Position, 0, len(tiles))
	for _, t := range tiles {
		if err := g.validateTile(t, playerCount); err != nil {
			return err
		}
		g.tiles[t.ID] = t
		g.byPos[t.Position] = t.ID
		g.tileOrder = append(g.tileOrder, t.ID)
		positions = append(positions, t.Position)
	}
	slices.Sort(g.tileOrder)
	g.bounds = core.BoundsOf(positions)

	var maxID core.UnitID
	for _, u := range units {
		if err := validateUnit(u, playerCount); err != nil {
			return err
		}
		if _, dup := g.units[u.ID]; dup {
			return invalidMap("duplicate unit id %d", u.ID)
		}
		g.units[u.ID] = u.Clone()
		maxID = max(maxID, u.ID)
	}
	g.nextUnitID = maxID + 1

	return g.indexUnitLocations()
}

func (g *Game) validateTile(t core.Tile, playerCount int) error {
	switch {
	case t.ID <= 0:
		return invalidMap("tile id %d is not positive", t.ID)
	case !t.Terrain.Valid():
		return invalidMap("tile %d has unknown terrain %d", t.ID, t.Terrain)
	case t.Owner < core.Neutral || int(t.Owner) > playerCount:
		return invalidMap("tile %d owned by unknown player %d", t.ID, t.Owner)
	case t.CapturePoints < 0 || t.CapturePoints > core.MaxCapturePoints:
		return invalidMap("tile %d capture points %d out of range", t.ID, t.CapturePoints)
	case t.Unit < core.NoUnit:
		return invalidMap("tile %d references unit %d", t.ID, t.Unit)
	}
	if _, dup := g.tiles[t.ID]; dup {
		return invalidMap("duplicate tile id %d", t.ID)
	}
	if other, dup := g.byPos[t.Position]; dup {
		return invalidMap("tiles %d and %d both at %s", other, t.ID, t.Position)
	}
	return nil
}

func validateUnit(u core.Unit, playerCount int) error {
	switch {
	case u.ID <= 0:
		return invalidMap("unit id %d is not positive", u.ID)
	case !u.Type.Valid():
		return invalidMap("unit %d has unknown type %d", u.ID, u.Type)
	case u.Health < 1 || u.Health > core.MaxHealth:
		return invalidMap("unit %d health %d out of range", u.ID, u.Health)
	case u.Owner < core.Neutral || int(u.Owner) > playerCount:
		return invalidMap("unit %d owned by unknown player %d", u.ID, u.Owner)
	case len(u.Carried) > u.Type.CargoCapacity():
		return invalidMap("unit %d carries %d units, capacity %d", u.ID, len(u.Carried), u.Type.CargoCapacity())
	}
	return nil
}

// indexUnitLocations checks that every unit is either on exactly one tile or
// aboard exactly one carrier, and records tile locations.
func (g *Game) indexUnitLocations() error {
	placed := make(map[core.UnitID]bool, len(g.units))

	for _, id := range g.tileOrder {
		t := g.tiles[id]
		if !t.IsOccupied() {
			continue
		}
		if _, ok := g.units[t.Unit]; !ok {
			return invalidMap("tile %d references missing unit %d", t.ID, t.Unit)
		}
		if placed[t.Unit] {
			return invalidMap("unit %d placed on more than one tile", t.Unit)
		}
		placed[t.Unit] = true
		g.unitTile[t.Unit] = t.ID
	}

	for _, carrier := range g.sortedUnits() {
		for _, cargoID := range carrier.Carried {
			cargo, ok := g.units[cargoID]
			if !ok {
				return invalidMap("unit %d carries missing unit %d", carrier.ID, cargoID)
			}
			if !carrier.Type.CanCarryClass(cargo.Type.Class()) {
				return invalidMap("unit %d cannot carry %s", carrier.ID, cargo.Type)
			}
			if placed[cargoID] {
				return invalidMap("unit %d is located more than once", cargoID)
			}
			placed[cargoID] = true
		}
	}

	for id := range g.units {
		if !placed[id] {
			return invalidMap("unit %d is neither on a tile nor carried", id)
		}
	}

	return nil
}

func (g *Game) sortedUnits() []core.Unit {
	ids := make([]core.UnitID, 0, len(g.units))
	for id := range g.units {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	out := make([]core.Unit, len(ids))
	for i, id := range ids {
		out[i] = g.units[id].Clone()
	}
	return out
}

func invalidMap(format string, args ...any) error {
	return fmt.Errorf("%w: %s", core.ErrInvalidMap, fmt.Sprintf(format, args...))
}
