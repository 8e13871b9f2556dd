package game

import (
	"iter"
	"maps"
	"slices"

	"github.com/mitchelldurbincs/HexTactics/internal/game/core"
	"github.com/mitchelldurbincs/HexTactics/internal/game/events"
	"github.com/mitchelldurbincs/HexTactics/internal/game/states"
)

// TileAt returns the tile at pos
func (g *Game) TileAt(pos core.Position) (core.Tile, bool) {
	id, ok := g.byPos[pos]
	if !ok {
		return core.Tile{}, false
	}
	return g.tiles[id], true
}

// Tile returns the tile with the given id
func (g *Game) Tile(id core.TileID) (core.Tile, bool) {
	t, ok := g.tiles[id]
	return t, ok
}

// Unit returns a copy of the unit with the given id
func (g *Game) Unit(id core.UnitID) (core.Unit, bool) {
	u, ok := g.units[id]
	if !ok {
		return core.Unit{}, false
	}
	return u.Clone(), true
}

// UnitTile returns the tile a unit stands on; carried units have none
func (g *Game) UnitTile(id core.UnitID) (core.Tile, bool) {
	tid, ok := g.unitTile[id]
	if !ok {
		return core.Tile{}, false
	}
	return g.tiles[tid], true
}

// UnitAt returns the unit standing at pos
func (g *Game) UnitAt(pos core.Position) (core.Unit, bool) {
	t, ok := g.TileAt(pos)
	if !ok || !t.IsOccupied() {
		return core.Unit{}, false
	}
	return g.Unit(t.Unit)
}

// Bounds is the bounding rectangle of the map
func (g *Game) Bounds() core.Rect { return g.bounds }

// batch stages every mutation of one operation. Reads go through the
// overlay so later checks see earlier staged writes; nothing reaches the
// game until commit.
type batch struct {
	g *Game

	tiles   map[core.TileID]core.Tile
	units   map[core.UnitID]core.Unit
	removed map[core.UnitID]bool
	located map[core.UnitID]core.TileID // NoTile when lifted off the map
	players map[int]core.Player

	active     int
	round      int
	turn       int
	nextUnitID core.UnitID
	phase      states.GamePhase
	reason     string

	events []events.Event
}

// noTile marks a staged unit that is no longer on any tile.
const noTile core.TileID = 0

func (g *Game) begin() *batch {
	return &batch{
		g:          g,
		tiles:      map[core.TileID]core.Tile{},
		units:      map[core.UnitID]core.Unit{},
		removed:    map[core.UnitID]bool{},
		located:    map[core.UnitID]core.TileID{},
		players:    map[int]core.Player{},
		active:     g.active,
		round:      g.round,
		turn:       g.turn,
		nextUnitID: g.nextUnitID,
		phase:      g.machine.Current(),
	}
}

func (b *batch) tile(id core.TileID) (core.Tile, bool) {
	if t, ok := b.tiles[id]; ok {
		return t, true
	}
	return b.g.Tile(id)
}

func (b *batch) TileAt(pos core.Position) (core.Tile, bool) {
	id, ok := b.g.byPos[pos]
	if !ok {
		return core.Tile{}, false
	}
	return b.tile(id)
}

func (b *batch) Unit(id core.UnitID) (core.Unit, bool) {
	if b.removed[id] {
		return core.Unit{}, false
	}
	if u, ok := b.units[id]; ok {
		return u.Clone(), true
	}
	return b.g.Unit(id)
}

func (b *batch) UnitTile(id core.UnitID) (core.Tile, bool) {
	if b.removed[id] {
		return core.Tile{}, false
	}
	if tid, ok := b.located[id]; ok {
		if tid == noTile {
			return core.Tile{}, false
		}
		return b.tile(tid)
	}
	return b.g.UnitTile(id)
}

func (b *batch) Bounds() core.Rect { return b.g.bounds }

// setTile stages t and keeps the unit locations consistent with its occupant.
func (b *batch) setTile(t core.Tile) {
	prev, _ := b.tile(t.ID)
	if prev.Unit != t.Unit {
		if prev.Unit != core.NoUnit {
			if at, ok := b.UnitTile(prev.Unit); ok && at.ID == t.ID {
				b.located[prev.Unit] = noTile
			}
		}
		if t.Unit != core.NoUnit {
			b.located[t.Unit] = t.ID
		}
	}
	b.tiles[t.ID] = t
}

func (b *batch) setUnit(u core.Unit) {
	b.units[u.ID] = u.Clone()
}

// removeUnit drops a unit from play. Its tile, if any, must be cleared separately.
func (b *batch) removeUnit(id core.UnitID) {
	delete(b.units, id)
	b.removed[id] = true
}

func (b *batch) allocateUnitID() core.UnitID {
	id := b.nextUnitID
	b.nextUnitID++
	return id
}

func (b *batch) player(i int) core.Player {
	if p, ok := b.players[i]; ok {
		return p
	}
	return b.g.players[i]
}

func (b *batch) setPlayer(i int, p core.Player) {
	b.players[i] = p
}

func (b *batch) playerList() []core.Player {
	out := make([]core.Player, len(b.g.players))
	for i := range out {
		out[i] = b.player(i)
	}
	return out
}

// activePlayer returns the player in turn. Callers must have checked the phase.
func (b *batch) activePlayer() core.Player {
	return b.player(b.active)
}

func (b *batch) transition(to states.GamePhase, reason string) {
	b.phase = to
	b.reason = reason
}

func (b *batch) emit(e events.Event) {
	b.events = append(b.events, e)
}

// unitIDs lists every live unit id in ascending order.
func (b *batch) unitIDs() []core.UnitID {
	ids := slices.Collect(maps.Keys(b.g.units))
	for id := range b.units {
		if _, known := b.g.units[id]; !known {
			ids = append(ids, id)
		}
	}
	ids = slices.DeleteFunc(ids, func(id core.UnitID) bool { return b.removed[id] })
	slices.Sort(ids)
	return ids
}

func (b *batch) eachTile() iter.Seq[core.Tile] {
	return func(yield func(core.Tile) bool) {
		for _, id := range b.g.tileOrder {
			t, _ := b.tile(id)
			if !yield(t) {
				return
			}
		}
	}
}

func (b *batch) eachUnit() iter.Seq[core.Unit] {
	return func(yield func(core.Unit) bool) {
		for _, id := range b.unitIDs() {
			u, _ := b.Unit(id)
			if !yield(u) {
				return
			}
		}
	}
}

// commit applies the staged mutations in one pass and then delivers the
// staged events to sink in order.
func (b *batch) commit(sink events.Sink) error {
	g := b.g
	phaseChanged := b.phase != g.machine.Current()
	if phaseChanged && !g.machine.CanTransitionTo(b.phase) {
		return core.WrapGameStateError(g.turn, g.machine.Current().String(), core.ErrInternal)
	}

	for id, t := range b.tiles {
		g.tiles[id] = t
	}
	for id, u := range b.units {
		g.units[id] = u
	}
	for id := range b.removed {
		delete(g.units, id)
		delete(g.unitTile, id)
	}
	for id, tid := range b.located {
		if b.removed[id] {
			continue
		}
		if tid == noTile {
			delete(g.unitTile, id)
		} else {
			g.unitTile[id] = tid
		}
	}
	for i, p := range b.players {
		g.players[i] = p
	}
	g.active = b.active
	g.round = b.round
	g.turn = b.turn
	g.nextUnitID = b.nextUnitID

	if phaseChanged {
		// Checked above; cannot fail.
		_ = g.machine.TransitionTo(b.phase, b.turn, b.reason)
	}

	if sink == nil {
		sink = events.Discard
	}
	for _, e := range b.events {
		sink.Emit(e)
	}
	return nil
}
