package game

import (
	"github.com/mitchelldurbincs/HexTactics/internal/game/core"
	"github.com/mitchelldurbincs/HexTactics/internal/game/states"
)

// Map is the initial entity table a game is constructed from. Tiles
// reference their occupants by id; carried units are referenced only from
// their carrier's Carried list.
type Map struct {
	Tiles         []core.Tile `json:"tiles"`
	Units         []core.Unit `json:"units"`
	StartingFunds int         `json:"starting_funds"`
}

// Snapshot is the complete serializable state of a game
type Snapshot struct {
	ID         string              `json:"id"`
	Rules      Rules               `json:"rules"`
	Phase      states.GamePhase    `json:"phase"`
	History    []states.Transition `json:"history,omitempty"`
	Tiles      []core.Tile         `json:"tiles"`
	Units      []core.Unit         `json:"units"`
	Players    []core.Player       `json:"players"`
	Active     int                 `json:"active"`
	Round      int                 `json:"round"`
	Turn       int                 `json:"turn"`
	NextUnitID core.UnitID         `json:"next_unit_id"`
}
