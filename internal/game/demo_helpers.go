package game

import (
	"cmp"
	"maps"
	"math/rand"
	"slices"

	"github.com/mitchelldurbincs/HexTactics/internal/game/catalog"
	"github.com/mitchelldurbincs/HexTactics/internal/game/core"
	"github.com/mitchelldurbincs/HexTactics/internal/game/processor"
	"github.com/mitchelldurbincs/HexTactics/internal/game/rules"
)

// RandomAction picks a legal action for the player in turn using only the
// query surface. Attacks and captures are preferred over plain moves, and
// the turn is ended once nothing is left to do. It returns nil when no
// player is in turn. It is a baseline opponent for demos and tests.
func RandomAction(g *Game, rng *rand.Rand) processor.Action {
	p, ok := g.ActivePlayer()
	if !ok {
		return nil
	}

	var preferred, others []processor.Action
	for _, u := range g.Units() {
		if u.Owner != p.Number || u.Moved {
			continue
		}
		if _, onMap := g.UnitTile(u.ID); !onMap {
			continue
		}
		pa, oa := unitOptions(g, p.Number, u)
		preferred = append(preferred, pa...)
		others = append(others, oa...)
	}
	for _, t := range g.Tiles() {
		options := g.BuildOptions(t.Position)
		if len(options) == 0 {
			continue
		}
		others = append(others, &processor.Build{
			Player:   p.Number,
			Position: t.Position,
			UnitType: options[rng.Intn(len(options))],
		})
	}

	switch {
	case len(preferred) > 0 && rng.Float32() < 0.8:
		return preferred[rng.Intn(len(preferred))]
	case len(others) > 0 && rng.Float32() < 0.9:
		return others[rng.Intn(len(others))]
	default:
		return &processor.EndTurn{Player: p.Number}
	}
}

func unitOptions(g *Game, player core.PlayerNumber, u core.Unit) (preferred, others []processor.Action) {
	if u.Deployed {
		origin, _ := g.UnitTile(u.ID)
		for _, target := range g.AttackTargets(u.ID, origin.Position) {
			preferred = append(preferred, &processor.MoveAndAttack{
				Player: player, Unit: u.ID, Path: []core.Position{origin.Position}, Target: target,
			})
		}
		others = append(others, &processor.Undeploy{Player: player, Unit: u.ID})
		return preferred, others
	}

	reachable := g.Reachable(u.ID)
	for _, dest := range sortedPositions(reachable) {
		path := reachable[dest]
		for _, target := range g.AttackTargets(u.ID, dest) {
			preferred = append(preferred, &processor.MoveAndAttack{Player: player, Unit: u.ID, Path: path, Target: target})
		}
		if t, ok := g.TileAt(dest); ok && u.Type.CanCapture() && t.Terrain.Has(catalog.Capturable) && t.Owner != u.Owner {
			preferred = append(preferred, &processor.MoveAndCapture{Player: player, Unit: u.ID, Path: path})
		}
		if u.Type.CanDeploy() {
			others = append(others, &processor.MoveAndDeploy{Player: player, Unit: u.ID, Path: path})
		}
		others = append(others, &processor.MoveAndWait{Player: player, Unit: u.ID, Path: path})
	}
	others = append(others, loadOptions(g, player, u, reachable)...)
	others = append(others, unloadOptions(g, player, u, reachable)...)
	return preferred, others
}

// loadOptions offers one boarding path per friendly carrier with room for u.
func loadOptions(g *Game, player core.PlayerNumber, u core.Unit, reachable map[core.Position][]core.Position) []processor.Action {
	origin, _ := g.UnitTile(u.ID)
	var out []processor.Action
	for _, c := range g.Units() {
		if c.ID == u.ID || c.Owner != u.Owner || !c.HasCargoSpace() || !c.Type.CanCarryClass(u.Type.Class()) {
			continue
		}
		ct, onMap := g.UnitTile(c.ID)
		if !onMap {
			continue
		}
		for _, n := range ct.Position.Neighbors() {
			path, ok := reachable[n]
			if n == origin.Position {
				path, ok = []core.Position{n}, true
			}
			if !ok {
				continue
			}
			path = append(slices.Clone(path), ct.Position)
			if rules.ValidatePath(g, u, path) == nil {
				out = append(out, &processor.MoveAndLoadInto{Player: player, Unit: u.ID, Path: path})
				break
			}
		}
	}
	return out
}

// unloadOptions offers, for every stop of carrier u and every unit aboard,
// the first neighbouring tile the cargo can be dropped on.
func unloadOptions(g *Game, player core.PlayerNumber, u core.Unit, reachable map[core.Position][]core.Position) []processor.Action {
	if len(u.Carried) == 0 {
		return nil
	}
	var out []processor.Action
	for _, dest := range sortedPositions(reachable) {
		for _, cargoID := range u.Carried {
			cargo, ok := g.Unit(cargoID)
			if !ok {
				continue
			}
			for _, n := range dest.Neighbors() {
				t, ok := g.TileAt(n)
				// The carrier's own tile is vacated once it moves on.
				if !ok || !cargo.Type.CanTraverse(t.Terrain) || (t.IsOccupied() && t.Unit != u.ID) {
					continue
				}
				out = append(out, &processor.MoveAndUnload{
					Player: player, Carrier: u.ID, Path: reachable[dest], Cargo: cargoID, At: n,
				})
				break
			}
		}
	}
	return out
}

func sortedPositions(m map[core.Position][]core.Position) []core.Position {
	return slices.SortedFunc(maps.Keys(m), func(a, b core.Position) int {
		return cmp.Or(cmp.Compare(a.Y, b.Y), cmp.Compare(a.X, b.X))
	})
}
