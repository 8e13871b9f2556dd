package rules

import (
	"github.com/mitchelldurbincs/HexTactics/internal/game/catalog"
	"github.com/mitchelldurbincs/HexTactics/internal/game/core"
)

// testBoard is a rectangle of tiles with units placed by position.
type testBoard struct {
	tiles  map[core.Position]core.Tile
	units  map[core.UnitID]core.Unit
	bounds core.Rect
}

func newTestBoard(w, h int) *testBoard {
	b := &testBoard{
		tiles:  map[core.Position]core.Tile{},
		units:  map[core.UnitID]core.Unit{},
		bounds: core.Rect{Min: core.Position{}, Max: core.Position{X: w - 1, Y: h - 1}},
	}
	id := core.TileID(1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			pos := core.NewPosition(x, y)
			b.tiles[pos] = core.NewTile(id, catalog.Plains, pos)
			id++
		}
	}
	return b
}

func (b *testBoard) terrain(t catalog.Terrain, positions ...core.Position) *testBoard {
	for _, pos := range positions {
		tile := b.tiles[pos]
		tile.Terrain = t
		b.tiles[pos] = tile
	}
	return b
}

func (b *testBoard) place(pos core.Position, u core.Unit) core.Unit {
	b.units[u.ID] = u
	tile := b.tiles[pos]
	tile.Unit = u.ID
	b.tiles[pos] = tile
	return u
}

func (b *testBoard) TileAt(pos core.Position) (core.Tile, bool) {
	t, ok := b.tiles[pos]
	return t, ok
}

func (b *testBoard) Unit(id core.UnitID) (core.Unit, bool) {
	u, ok := b.units[id]
	return u, ok
}

func (b *testBoard) UnitTile(id core.UnitID) (core.Tile, bool) {
	for _, t := range b.tiles {
		if t.Unit == id {
			return t, true
		}
	}
	return core.Tile{}, false
}

func (b *testBoard) Bounds() core.Rect { return b.bounds }

func pos(x, y int) core.Position { return core.NewPosition(x, y) }
