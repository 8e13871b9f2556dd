package testutil

import (
	"fmt"

	"github.com/mitchelldurbincs/HexTactics/internal/game/catalog"
	"github.com/mitchelldurbincs/HexTactics/internal/game/core"
)

// Scenario builds the tile and unit tables of a small hand-made map. Tiles
// are laid out row-major with ids starting at 1; every tile starts as neutral
// Plains at full capture points.
type Scenario struct {
	Tiles []core.Tile
	Units []core.Unit

	width, height int
	nextUnit      core.UnitID
}

// NewScenario creates a width x height scenario of empty plains
func NewScenario(width, height int) *Scenario {
	s := &Scenario{width: width, height: height, nextUnit: 1}
	s.Tiles = make([]core.Tile, 0, width*height)
	id := core.TileID(1)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			s.Tiles = append(s.Tiles, core.NewTile(id, catalog.Plains, core.NewPosition(x, y)))
			id++
		}
	}
	return s
}

// Tile returns the tile at pos for direct edits. It panics when pos is off the map.
func (s *Scenario) Tile(pos core.Position) *core.Tile {
	if pos.X < 0 || pos.Y < 0 || pos.X >= s.width || pos.Y >= s.height {
		panic(fmt.Sprintf("testutil: %s is outside the %dx%d scenario", pos, s.width, s.height))
	}
	return &s.Tiles[pos.Y*s.width+pos.X]
}

// TileID returns the id of the tile at pos
func (s *Scenario) TileID(pos core.Position) core.TileID {
	return s.Tile(pos).ID
}

// Terrain sets the terrain of every listed position
func (s *Scenario) Terrain(t catalog.Terrain, positions ...core.Position) *Scenario {
	for _, pos := range positions {
		s.Tile(pos).Terrain = t
	}
	return s
}

// Own assigns the listed tiles to owner
func (s *Scenario) Own(owner core.PlayerNumber, positions ...core.Position) *Scenario {
	for _, pos := range positions {
		s.Tile(pos).Owner = owner
	}
	return s
}

// Place puts a fresh full-health unit on pos and returns its id
func (s *Scenario) Place(pos core.Position, unitType catalog.UnitType, owner core.PlayerNumber) core.UnitID {
	return s.PlaceUnit(pos, core.NewUnit(0, unitType, owner))
}

// PlaceUnit puts u on pos, assigning it the next unit id
func (s *Scenario) PlaceUnit(pos core.Position, u core.Unit) core.UnitID {
	tile := s.Tile(pos)
	if tile.IsOccupied() {
		panic(fmt.Sprintf("testutil: %s already holds unit %d", pos, tile.Unit))
	}
	u.ID = s.allocate()
	tile.Unit = u.ID
	s.Units = append(s.Units, u)
	return u.ID
}

// Load creates a unit aboard carrier and returns its id
func (s *Scenario) Load(carrier core.UnitID, unitType catalog.UnitType, owner core.PlayerNumber) core.UnitID {
	u := core.NewUnit(s.allocate(), unitType, owner)
	for i := range s.Units {
		if s.Units[i].ID == carrier {
			s.Units[i].Carried = append(s.Units[i].Carried, u.ID)
			s.Units = append(s.Units, u)
			return u.ID
		}
	}
	panic(fmt.Sprintf("testutil: no carrier %d", carrier))
}

// Unit returns the unit with id for direct edits
func (s *Scenario) Unit(id core.UnitID) *core.Unit {
	for i := range s.Units {
		if s.Units[i].ID == id {
			return &s.Units[i]
		}
	}
	panic(fmt.Sprintf("testutil: no unit %d", id))
}

func (s *Scenario) allocate() core.UnitID {
	id := s.nextUnit
	s.nextUnit++
	return id
}

// Path builds a path from x, y pairs
func Path(coords ...int) []core.Position {
	if len(coords)%2 != 0 {
		panic("testutil: Path needs x, y pairs")
	}
	path := make([]core.Position, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		path = append(path, core.NewPosition(coords[i], coords[i+1]))
	}
	return path
}

// P is shorthand for core.NewPosition
func P(x, y int) core.Position { return core.NewPosition(x, y) }
