package game

import (
	"fmt"
	"slices"

	"github.com/mitchelldurbincs/HexTactics/internal/game/catalog"
	"github.com/mitchelldurbincs/HexTactics/internal/game/core"
	"github.com/mitchelldurbincs/HexTactics/internal/game/events"
	"github.com/mitchelldurbincs/HexTactics/internal/game/rules"
)

// Build buys a unit of type t on the active player's tile at pos. The new
// unit cannot act until next turn.
func (g *Game) Build(sink events.Sink, pos core.Position, t catalog.UnitType) error {
	return g.execute(sink, "build", func(b *batch) error {
		p := b.activePlayer()
		tile, ok := b.TileAt(pos)
		if !ok {
			return fmt.Errorf("%w: no tile at %s", core.ErrTileNotFound, pos)
		}
		switch {
		case !t.Valid():
			return fmt.Errorf("%w: unknown unit type %d", core.ErrCannotBuild, t)
		case tile.Owner != p.Number:
			return fmt.Errorf("%w: tile %d is not owned by player %d", core.ErrCannotBuild, tile.ID, p.Number)
		case !tile.Terrain.CanBuild(t.Class()):
			return fmt.Errorf("%w: %s cannot be built on %s", core.ErrCannotBuild, t, tile.Terrain)
		case tile.IsOccupied():
			return fmt.Errorf("%w: tile %d is occupied by unit %d", core.ErrCannotBuild, tile.ID, tile.Unit)
		case p.Funds < t.Price():
			return fmt.Errorf("%w: %s costs %d, player %d has %d", core.ErrInsufficientFunds, t, t.Price(), p.Number, p.Funds)
		}

		u := core.NewUnit(b.allocateUnitID(), t, p.Number)
		u.Moved = true
		b.setUnit(u)
		tile.Unit = u.ID
		b.setTile(tile)
		p.Funds -= t.Price()
		b.setPlayer(b.active, p)
		b.emit(events.NewBuildEvent(g.id, tile.ID, u.ID, t, t.Price()))
		return nil
	})
}

// MoveAndWait walks a unit along path and ends its action there.
func (g *Game) MoveAndWait(sink events.Sink, id core.UnitID, path []core.Position) error {
	return g.execute(sink, "move_and_wait", func(b *batch) error {
		u, err := g.walker(b, id, path)
		if err != nil {
			return err
		}
		g.moveAlong(b, u, path, true)
		u.Moved = true
		b.setUnit(u)
		b.emit(events.NewWaitEvent(g.id, u.ID))
		return nil
	})
}

// MoveAndCapture walks a unit onto an enemy or neutral property and
// reduces its capture points by the unit's health, flipping it when they
// run out.
func (g *Game) MoveAndCapture(sink events.Sink, id core.UnitID, path []core.Position) error {
	return g.execute(sink, "move_and_capture", func(b *batch) error {
		u, err := g.walker(b, id, path)
		if err != nil {
			return err
		}
		if !u.Type.CanCapture() {
			return fmt.Errorf("%w: %s cannot capture", core.ErrCannotCapture, u.Type)
		}
		dest, _ := b.TileAt(path[len(path)-1])
		if !dest.Terrain.Has(catalog.Capturable) {
			return fmt.Errorf("%w: %s is not capturable", core.ErrCannotCapture, dest.Terrain)
		}
		if dest.Owner == u.Owner {
			return fmt.Errorf("%w: tile %d already owned by player %d", core.ErrCannotCapture, dest.ID, u.Owner)
		}

		dest = g.moveAlong(b, u, path, true)
		u.Moved = true
		u.Capturing = true
		b.setUnit(u)

		if u.Health >= dest.CapturePoints {
			previous := dest.Owner
			dest.Owner = u.Owner
			dest.CapturePoints = core.MinCapturePoints
			b.setTile(dest)
			b.emit(events.NewCapturedEvent(g.id, u.ID, dest.ID, dest.Owner, previous))
			return nil
		}
		dest.CapturePoints -= u.Health
		b.setTile(dest)
		b.emit(events.NewCaptureEvent(g.id, u.ID, dest.ID, dest.CapturePoints))
		return nil
	})
}

// MoveAndDeploy walks a unit along path and sets it up to fire its
// deployed-only weapons.
func (g *Game) MoveAndDeploy(sink events.Sink, id core.UnitID, path []core.Position) error {
	return g.execute(sink, "move_and_deploy", func(b *batch) error {
		u, err := g.walker(b, id, path)
		if err != nil {
			return err
		}
		if !u.Type.CanDeploy() {
			return fmt.Errorf("%w: %s cannot deploy", core.ErrCannotDeploy, u.Type)
		}
		if u.Deployed {
			return fmt.Errorf("%w: unit %d is already deployed", core.ErrCannotDeploy, u.ID)
		}
		g.moveAlong(b, u, path, true)
		u.Moved = true
		u.Deployed = true
		b.setUnit(u)
		b.emit(events.NewDeployEvent(g.id, u.ID))
		return nil
	})
}

// Undeploy packs a deployed unit up. It spends the unit's action.
func (g *Game) Undeploy(sink events.Sink, id core.UnitID) error {
	return g.execute(sink, "undeploy", func(b *batch) error {
		u, err := g.actor(b, id)
		if err != nil {
			return err
		}
		if !u.Deployed {
			return fmt.Errorf("%w: unit %d is not deployed", core.ErrCannotUndeploy, u.ID)
		}
		u.Deployed = false
		u.Moved = true
		b.setUnit(u)
		b.emit(events.NewUndeployEvent(g.id, u.ID))
		return nil
	})
}

// MoveAndLoadInto walks a unit onto a friendly carrier and boards it.
func (g *Game) MoveAndLoadInto(sink events.Sink, id core.UnitID, path []core.Position) error {
	return g.execute(sink, "move_and_load", func(b *batch) error {
		u, err := g.actor(b, id)
		if err != nil {
			return err
		}
		if err := rules.ValidatePath(b, u, path); err != nil {
			return err
		}
		dest, _ := b.TileAt(path[len(path)-1])
		carrier, ok := b.Unit(dest.Unit)
		switch {
		case !dest.IsOccupied() || !ok || carrier.ID == u.ID:
			return fmt.Errorf("%w: no carrier at %s", core.ErrCannotLoad, dest.Position)
		case carrier.Owner != u.Owner:
			return fmt.Errorf("%w: carrier %d belongs to player %d", core.ErrCannotLoad, carrier.ID, carrier.Owner)
		case !carrier.Type.CanCarryClass(u.Type.Class()):
			return fmt.Errorf("%w: %s cannot carry %s", core.ErrCannotLoad, carrier.Type, u.Type)
		case !carrier.HasCargoSpace():
			return fmt.Errorf("%w: carrier %d is full", core.ErrCannotLoad, carrier.ID)
		}

		g.moveAlong(b, u, path, false)
		carrier.Carried = append(carrier.Carried, u.ID)
		b.setUnit(carrier)
		u.Moved = true
		u.Capturing = false
		b.setUnit(u)
		b.emit(events.NewLoadEvent(g.id, u.ID, carrier.ID))
		return nil
	})
}

// MoveAndUnload walks a carrier along path and drops cargo onto a tile
// adjacent to where the carrier stops.
func (g *Game) MoveAndUnload(sink events.Sink, carrierID core.UnitID, path []core.Position, cargoID core.UnitID, at core.Position) error {
	return g.execute(sink, "move_and_unload", func(b *batch) error {
		carrier, err := g.walker(b, carrierID, path)
		if err != nil {
			return err
		}
		if !carrier.Carries(cargoID) {
			return fmt.Errorf("%w: unit %d is not aboard carrier %d", core.ErrCannotUnload, cargoID, carrier.ID)
		}
		cargo, ok := b.Unit(cargoID)
		if !ok {
			return fmt.Errorf("%w: cargo %d missing from carrier %d", core.ErrInternal, cargoID, carrier.ID)
		}
		dest := path[len(path)-1]
		if dest.DistanceTo(at) != 1 {
			return fmt.Errorf("%w: %s is not adjacent to %s", core.ErrCannotUnload, at, dest)
		}

		g.moveAlong(b, carrier, path, true)
		drop, ok := b.TileAt(at)
		switch {
		case !ok:
			return fmt.Errorf("%w: no tile at %s", core.ErrCannotUnload, at)
		case !cargo.Type.CanTraverse(drop.Terrain):
			return fmt.Errorf("%w: %s cannot stand on %s", core.ErrCannotUnload, cargo.Type, drop.Terrain)
		case drop.IsOccupied():
			return fmt.Errorf("%w: %s is occupied by unit %d", core.ErrCannotUnload, at, drop.Unit)
		}

		carrier.Moved = true
		carrier.Carried = slices.DeleteFunc(carrier.Carried, func(c core.UnitID) bool { return c == cargoID })
		b.setUnit(carrier)
		cargo.Moved = true
		b.setUnit(cargo)
		drop.Unit = cargo.ID
		b.setTile(drop)
		b.emit(events.NewUnloadEvent(g.id, cargo.ID, carrier.ID, drop.ID, at))
		return nil
	})
}

// MoveAndAttack walks a unit along path and fires on target. A surviving
// target returns fire when it can reach the attacker.
func (g *Game) MoveAndAttack(sink events.Sink, id core.UnitID, path []core.Position, targetID core.UnitID) error {
	return g.execute(sink, "move_and_attack", func(b *batch) error {
		u, err := g.walker(b, id, path)
		if err != nil {
			return err
		}
		target, ok := b.Unit(targetID)
		if !ok {
			return fmt.Errorf("%w: target %d", core.ErrUnitNotFound, targetID)
		}
		if target.Owner == u.Owner {
			return fmt.Errorf("%w: unit %d is friendly", core.ErrCannotAttack, target.ID)
		}
		targetTile, ok := b.UnitTile(target.ID)
		if !ok {
			return fmt.Errorf("%w: unit %d is not on the map", core.ErrCannotAttack, target.ID)
		}
		from := path[len(path)-1]
		distance := from.DistanceTo(targetTile.Position)
		damage, ok := g.combat.ComputeDamage(u, target, distance, targetTile.Terrain)
		if !ok {
			return fmt.Errorf("%w: %s cannot hit %s at range %d", core.ErrCannotAttack, u.Type, target.Type, distance)
		}

		firing := g.moveAlong(b, u, path, true)
		u.Moved = true
		target.Health -= damage
		b.emit(events.NewAttackEvent(g.id, u.ID, target.ID, damage, target.Health))

		if target.Health == 0 {
			b.setUnit(u)
			g.destroy(b, target, u)
			return nil
		}
		b.setUnit(target)

		counter, ok := g.combat.ComputeDamage(target, u, distance, firing.Terrain)
		if !ok {
			b.setUnit(u)
			return nil
		}
		u.Health -= counter
		b.emit(events.NewCounterattackEvent(g.id, target.ID, u.ID, counter, u.Health))
		if u.Health == 0 {
			g.destroy(b, u, target)
			return nil
		}
		b.setUnit(u)
		return nil
	})
}

// actor loads a unit that the active player may act with this turn.
func (g *Game) actor(b *batch, id core.UnitID) (core.Unit, error) {
	u, ok := b.Unit(id)
	if !ok {
		return core.Unit{}, fmt.Errorf("%w: %d", core.ErrUnitNotFound, id)
	}
	if p := b.activePlayer(); u.Owner != p.Number {
		return core.Unit{}, fmt.Errorf("%w: unit %d belongs to player %d, player %d is in turn", core.ErrOwnerNotInTurn, u.ID, u.Owner, p.Number)
	}
	if u.Moved {
		return core.Unit{}, fmt.Errorf("%w: unit %d", core.ErrUnitAlreadyMoved, u.ID)
	}
	return u, nil
}

// walker is actor plus the checks shared by every move that ends with the
// unit standing at the end of path.
func (g *Game) walker(b *batch, id core.UnitID, path []core.Position) (core.Unit, error) {
	u, err := g.actor(b, id)
	if err != nil {
		return core.Unit{}, err
	}
	if err := rules.ValidatePath(b, u, path); err != nil {
		return core.Unit{}, err
	}
	if err := rules.CanStayAt(b, u, path[len(path)-1]); err != nil {
		return core.Unit{}, err
	}
	return u, nil
}

// moveAlong stages u leaving its tile for the end of path and emits Move.
// With occupy false the unit is lifted off the map instead, as when it
// boards a carrier. It returns the destination tile as staged.
func (g *Game) moveAlong(b *batch, u core.Unit, path []core.Position, occupy bool) core.Tile {
	origin, _ := b.UnitTile(u.ID)
	dest, _ := b.TileAt(path[len(path)-1])

	if origin.ID != dest.ID || !occupy {
		origin.Unit = core.NoUnit
		b.setTile(origin)
		if occupy {
			dest, _ = b.TileAt(dest.Position)
			dest.Unit = u.ID
			b.setTile(dest)
		}
	}
	if !occupy {
		b.located[u.ID] = noTile
	}
	b.emit(events.NewMoveEvent(g.id, u.ID, path))
	dest, _ = b.TileAt(dest.Position)
	return dest
}

// destroy removes victim and everything it carries, crediting the owner of
// by with the price of each destroyed unit.
func (g *Game) destroy(b *batch, victim, by core.Unit) {
	if t, ok := b.UnitTile(victim.ID); ok {
		t.Unit = core.NoUnit
		b.setTile(t)
	}
	b.removeUnit(victim.ID)
	b.emit(events.NewDestroyedEvent(g.id, victim.ID, by.ID))

	if by.Owner != core.Neutral {
		i := int(by.Owner) - 1
		p := b.player(i)
		p.Score += victim.Type.Price()
		b.setPlayer(i, p)
	}

	for _, cargoID := range victim.Carried {
		if cargo, ok := b.Unit(cargoID); ok {
			g.destroy(b, cargo, by)
		}
	}
}
