package processor

import (
	"github.com/mitchelldurbincs/HexTactics/internal/game/catalog"
	"github.com/mitchelldurbincs/HexTactics/internal/game/core"
	"github.com/mitchelldurbincs/HexTactics/internal/game/events"
)

// Executor is the part of a game the processor drives
type Executor interface {
	ActivePlayer() (core.Player, bool)

	Build(sink events.Sink, pos core.Position, t catalog.UnitType) error
	MoveAndWait(sink events.Sink, unit core.UnitID, path []core.Position) error
	MoveAndCapture(sink events.Sink, unit core.UnitID, path []core.Position) error
	MoveAndDeploy(sink events.Sink, unit core.UnitID, path []core.Position) error
	Undeploy(sink events.Sink, unit core.UnitID) error
	MoveAndLoadInto(sink events.Sink, unit core.UnitID, path []core.Position) error
	MoveAndUnload(sink events.Sink, carrier core.UnitID, path []core.Position, cargo core.UnitID, at core.Position) error
	MoveAndAttack(sink events.Sink, unit core.UnitID, path []core.Position, target core.UnitID) error
	EndTurn(sink events.Sink) error
	Surrender(sink events.Sink) error
}

// Action is one request from a player
type Action interface {
	// PlayerNumber is the player the request claims to come from.
	PlayerNumber() core.PlayerNumber
	Type() string
	Apply(ex Executor, sink events.Sink) error
}

// Action type names
const (
	TypeBuild          = "build"
	TypeMoveAndWait    = "move_and_wait"
	TypeMoveAndCapture = "move_and_capture"
	TypeMoveAndDeploy  = "move_and_deploy"
	TypeUndeploy       = "undeploy"
	TypeMoveAndLoad    = "move_and_load"
	TypeMoveAndUnload  = "move_and_unload"
	TypeMoveAndAttack  = "move_and_attack"
	TypeEndTurn        = "end_turn"
	TypeSurrender      = "surrender"
)

type Build struct {
	Player   core.PlayerNumber `json:"player"`
	Position core.Position     `json:"position"`
	UnitType catalog.UnitType  `json:"unit_type"`
}

func (a *Build) PlayerNumber() core.PlayerNumber { return a.Player }
func (a *Build) Type() string                    { return TypeBuild }
func (a *Build) Apply(ex Executor, sink events.Sink) error {
	return ex.Build(sink, a.Position, a.UnitType)
}

type MoveAndWait struct {
	Player core.PlayerNumber `json:"player"`
	Unit   core.UnitID       `json:"unit"`
	Path   []core.Position   `json:"path"`
}

func (a *MoveAndWait) PlayerNumber() core.PlayerNumber { return a.Player }
func (a *MoveAndWait) Type() string                    { return TypeMoveAndWait }
func (a *MoveAndWait) Apply(ex Executor, sink events.Sink) error {
	return ex.MoveAndWait(sink, a.Unit, a.Path)
}

type MoveAndCapture struct {
	Player core.PlayerNumber `json:"player"`
	Unit   core.UnitID       `json:"unit"`
	Path   []core.Position   `json:"path"`
}

func (a *MoveAndCapture) PlayerNumber() core.PlayerNumber { return a.Player }
func (a *MoveAndCapture) Type() string                    { return TypeMoveAndCapture }
func (a *MoveAndCapture) Apply(ex Executor, sink events.Sink) error {
	return ex.MoveAndCapture(sink, a.Unit, a.Path)
}

type MoveAndDeploy struct {
	Player core.PlayerNumber `json:"player"`
	Unit   core.UnitID       `json:"unit"`
	Path   []core.Position   `json:"path"`
}

func (a *MoveAndDeploy) PlayerNumber() core.PlayerNumber { return a.Player }
func (a *MoveAndDeploy) Type() string                    { return TypeMoveAndDeploy }
func (a *MoveAndDeploy) Apply(ex Executor, sink events.Sink) error {
	return ex.MoveAndDeploy(sink, a.Unit, a.Path)
}

type Undeploy struct {
	Player core.PlayerNumber `json:"player"`
	Unit   core.UnitID       `json:"unit"`
}

func (a *Undeploy) PlayerNumber() core.PlayerNumber { return a.Player }
func (a *Undeploy) Type() string                    { return TypeUndeploy }
func (a *Undeploy) Apply(ex Executor, sink events.Sink) error {
	return ex.Undeploy(sink, a.Unit)
}

type MoveAndLoadInto struct {
	Player core.PlayerNumber `json:"player"`
	Unit   core.UnitID       `json:"unit"`
	Path   []core.Position   `json:"path"`
}

func (a *MoveAndLoadInto) PlayerNumber() core.PlayerNumber { return a.Player }
func (a *MoveAndLoadInto) Type() string                    { return TypeMoveAndLoad }
func (a *MoveAndLoadInto) Apply(ex Executor, sink events.Sink) error {
	return ex.MoveAndLoadInto(sink, a.Unit, a.Path)
}

type MoveAndUnload struct {
	Player  core.PlayerNumber `json:"player"`
	Carrier core.UnitID       `json:"carrier"`
	Path    []core.Position   `json:"path"`
	Cargo   core.UnitID       `json:"cargo"`
	At      core.Position     `json:"at"`
}

func (a *MoveAndUnload) PlayerNumber() core.PlayerNumber { return a.Player }
func (a *MoveAndUnload) Type() string                    { return TypeMoveAndUnload }
func (a *MoveAndUnload) Apply(ex Executor, sink events.Sink) error {
	return ex.MoveAndUnload(sink, a.Carrier, a.Path, a.Cargo, a.At)
}

type MoveAndAttack struct {
	Player core.PlayerNumber `json:"player"`
	Unit   core.UnitID       `json:"unit"`
	Path   []core.Position   `json:"path"`
	Target core.UnitID       `json:"target"`
}

func (a *MoveAndAttack) PlayerNumber() core.PlayerNumber { return a.Player }
func (a *MoveAndAttack) Type() string                    { return TypeMoveAndAttack }
func (a *MoveAndAttack) Apply(ex Executor, sink events.Sink) error {
	return ex.MoveAndAttack(sink, a.Unit, a.Path, a.Target)
}

type EndTurn struct {
	Player core.PlayerNumber `json:"player"`
}

func (a *EndTurn) PlayerNumber() core.PlayerNumber { return a.Player }
func (a *EndTurn) Type() string                    { return TypeEndTurn }
func (a *EndTurn) Apply(ex Executor, sink events.Sink) error {
	return ex.EndTurn(sink)
}

type Surrender struct {
	Player core.PlayerNumber `json:"player"`
}

func (a *Surrender) PlayerNumber() core.PlayerNumber { return a.Player }
func (a *Surrender) Type() string                    { return TypeSurrender }
func (a *Surrender) Apply(ex Executor, sink events.Sink) error {
	return ex.Surrender(sink)
}
