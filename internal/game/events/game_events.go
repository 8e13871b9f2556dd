package events

import (
	"github.com/mitchelldurbincs/HexTactics/internal/game/catalog"
	"github.com/mitchelldurbincs/HexTactics/internal/game/core"
)

// Event type constants
const (
	TypeStartTurn             = "turn.started"
	TypeEndTurn               = "turn.ended"
	TypeFunds                 = "player.funds"
	TypeUnitRepair            = "unit.repaired"
	TypeTileCapturePointRegen = "tile.capture_points_regenerated"
	TypeMove                  = "unit.moved"
	TypeWait                  = "unit.waited"
	TypeBuild                 = "unit.built"
	TypeCapture               = "tile.capturing"
	TypeCaptured              = "tile.captured"
	TypeDeploy                = "unit.deployed"
	TypeUndeploy              = "unit.undeployed"
	TypeLoad                  = "unit.loaded"
	TypeUnload                = "unit.unloaded"
	TypeAttack                = "unit.attacked"
	TypeCounterattack         = "unit.counterattacked"
	TypeDestroyed             = "unit.destroyed"
	TypeWinGame               = "game.won"
	TypeSurrender             = "player.surrendered"
)

// StartTurnEvent is published when a player's turn begins
type StartTurnEvent struct {
	BaseEvent
	Player core.PlayerNumber `json:"player"`
	Round  int               `json:"round"`
	Turn   int               `json:"turn"`
}

// NewStartTurnEvent creates a new StartTurnEvent
func NewStartTurnEvent(gameID string, player core.PlayerNumber, round, turn int) *StartTurnEvent {
	return &StartTurnEvent{BaseEvent: base(TypeStartTurn, gameID), Player: player, Round: round, Turn: turn}
}

// EndTurnEvent is published when a player's turn ends
type EndTurnEvent struct {
	BaseEvent
	Player core.PlayerNumber `json:"player"`
}

// NewEndTurnEvent creates a new EndTurnEvent
func NewEndTurnEvent(gameID string, player core.PlayerNumber) *EndTurnEvent {
	return &EndTurnEvent{BaseEvent: base(TypeEndTurn, gameID), Player: player}
}

// FundsEvent reports the income credited at the start of a turn.
type FundsEvent struct {
	BaseEvent
	Player core.PlayerNumber `json:"player"`
	Amount int               `json:"amount"`
	Total  int               `json:"total"`
}

// NewFundsEvent creates a new FundsEvent
func NewFundsEvent(gameID string, player core.PlayerNumber, amount, total int) *FundsEvent {
	return &FundsEvent{BaseEvent: base(TypeFunds, gameID), Player: player, Amount: amount, Total: total}
}

// UnitRepairEvent is published for each unit healed at the start of a turn.
type UnitRepairEvent struct {
	BaseEvent
	Unit   core.UnitID `json:"unit"`
	Tile   core.TileID `json:"tile"`
	Amount int         `json:"amount"`
	Health int         `json:"health"`
}

// NewUnitRepairEvent creates a new UnitRepairEvent
func NewUnitRepairEvent(gameID string, unit core.UnitID, tile core.TileID, amount, health int) *UnitRepairEvent {
	return &UnitRepairEvent{BaseEvent: base(TypeUnitRepair, gameID), Unit: unit, Tile: tile, Amount: amount, Health: health}
}

// TileCapturePointRegenEvent is published for each tile whose capture points recover.
type TileCapturePointRegenEvent struct {
	BaseEvent
	Tile          core.TileID `json:"tile"`
	CapturePoints int         `json:"capture_points"`
}

// NewTileCapturePointRegenEvent creates a new TileCapturePointRegenEvent
func NewTileCapturePointRegenEvent(gameID string, tile core.TileID, points int) *TileCapturePointRegenEvent {
	return &TileCapturePointRegenEvent{BaseEvent: base(TypeTileCapturePointRegen, gameID), Tile: tile, CapturePoints: points}
}

// MoveEvent is published when a unit walks a path. A single-element path
// means the unit stayed where it was.
type MoveEvent struct {
	BaseEvent
	Unit core.UnitID     `json:"unit"`
	Path []core.Position `json:"path"`
}

// NewMoveEvent creates a new MoveEvent
func NewMoveEvent(gameID string, unit core.UnitID, path []core.Position) *MoveEvent {
	p := make([]core.Position, len(path))
	copy(p, path)
	return &MoveEvent{BaseEvent: base(TypeMove, gameID), Unit: unit, Path: p}
}

// From returns the first position of the path
func (e *MoveEvent) From() core.Position { return e.Path[0] }

// To returns the last position of the path
func (e *MoveEvent) To() core.Position { return e.Path[len(e.Path)-1] }

// WaitEvent is published when a unit ends its action without doing anything else
type WaitEvent struct {
	BaseEvent
	Unit core.UnitID `json:"unit"`
}

// NewWaitEvent creates a new WaitEvent
func NewWaitEvent(gameID string, unit core.UnitID) *WaitEvent {
	return &WaitEvent{BaseEvent: base(TypeWait, gameID), Unit: unit}
}

// BuildEvent is published when a player buys a unit
type BuildEvent struct {
	BaseEvent
	Tile     core.TileID      `json:"tile"`
	Unit     core.UnitID      `json:"unit"`
	UnitType catalog.UnitType `json:"unit_type"`
	Cost     int              `json:"cost"`
}

// NewBuildEvent creates a new BuildEvent
func NewBuildEvent(gameID string, tile core.TileID, unit core.UnitID, unitType catalog.UnitType, cost int) *BuildEvent {
	return &BuildEvent{BaseEvent: base(TypeBuild, gameID), Tile: tile, Unit: unit, UnitType: unitType, Cost: cost}
}

// CaptureEvent reports capture progress that did not flip the tile.
type CaptureEvent struct {
	BaseEvent
	Unit          core.UnitID `json:"unit"`
	Tile          core.TileID `json:"tile"`
	CapturePoints int         `json:"capture_points"`
}

// NewCaptureEvent creates a new CaptureEvent
func NewCaptureEvent(gameID string, unit core.UnitID, tile core.TileID, remaining int) *CaptureEvent {
	return &CaptureEvent{BaseEvent: base(TypeCapture, gameID), Unit: unit, Tile: tile, CapturePoints: remaining}
}

// CapturedEvent is published when a tile changes hands.
type CapturedEvent struct {
	BaseEvent
	Unit          core.UnitID       `json:"unit"`
	Tile          core.TileID       `json:"tile"`
	Owner         core.PlayerNumber `json:"owner"`
	PreviousOwner core.PlayerNumber `json:"previous_owner"`
}

// NewCapturedEvent creates a new CapturedEvent
func NewCapturedEvent(gameID string, unit core.UnitID, tile core.TileID, owner, previous core.PlayerNumber) *CapturedEvent {
	return &CapturedEvent{BaseEvent: base(TypeCaptured, gameID), Unit: unit, Tile: tile, Owner: owner, PreviousOwner: previous}
}

// DeployEvent is published when a unit enters the deployed stance
type DeployEvent struct {
	BaseEvent
	Unit core.UnitID `json:"unit"`
}

// NewDeployEvent creates a new DeployEvent
func NewDeployEvent(gameID string, unit core.UnitID) *DeployEvent {
	return &DeployEvent{BaseEvent: base(TypeDeploy, gameID), Unit: unit}
}

// UndeployEvent is published when a unit leaves the deployed stance
type UndeployEvent struct {
	BaseEvent
	Unit core.UnitID `json:"unit"`
}

// NewUndeployEvent creates a new UndeployEvent
func NewUndeployEvent(gameID string, unit core.UnitID) *UndeployEvent {
	return &UndeployEvent{BaseEvent: base(TypeUndeploy, gameID), Unit: unit}
}

// LoadEvent is published when a unit boards a carrier
type LoadEvent struct {
	BaseEvent
	Unit    core.UnitID `json:"unit"`
	Carrier core.UnitID `json:"carrier"`
}

// NewLoadEvent creates a new LoadEvent
func NewLoadEvent(gameID string, unit, carrier core.UnitID) *LoadEvent {
	return &LoadEvent{BaseEvent: base(TypeLoad, gameID), Unit: unit, Carrier: carrier}
}

// UnloadEvent is published when cargo leaves a carrier
type UnloadEvent struct {
	BaseEvent
	Unit     core.UnitID   `json:"unit"`
	Carrier  core.UnitID   `json:"carrier"`
	Tile     core.TileID   `json:"tile"`
	Position core.Position `json:"position"`
}

// NewUnloadEvent creates a new UnloadEvent
func NewUnloadEvent(gameID string, unit, carrier core.UnitID, tile core.TileID, pos core.Position) *UnloadEvent {
	return &UnloadEvent{BaseEvent: base(TypeUnload, gameID), Unit: unit, Carrier: carrier, Tile: tile, Position: pos}
}

// AttackEvent is published when a unit strikes another
type AttackEvent struct {
	BaseEvent
	Attacker     core.UnitID `json:"attacker"`
	Target       core.UnitID `json:"target"`
	Damage       int         `json:"damage"`
	TargetHealth int         `json:"target_health"`
}

// NewAttackEvent creates a new AttackEvent
func NewAttackEvent(gameID string, attacker, target core.UnitID, damage, targetHealth int) *AttackEvent {
	return &AttackEvent{BaseEvent: base(TypeAttack, gameID), Attacker: attacker, Target: target, Damage: damage, TargetHealth: targetHealth}
}

// CounterattackEvent is published when the target of an attack strikes back
type CounterattackEvent struct {
	BaseEvent
	Attacker     core.UnitID `json:"attacker"`
	Target       core.UnitID `json:"target"`
	Damage       int         `json:"damage"`
	TargetHealth int         `json:"target_health"`
}

// NewCounterattackEvent creates a new CounterattackEvent
func NewCounterattackEvent(gameID string, attacker, target core.UnitID, damage, targetHealth int) *CounterattackEvent {
	return &CounterattackEvent{BaseEvent: base(TypeCounterattack, gameID), Attacker: attacker, Target: target, Damage: damage, TargetHealth: targetHealth}
}

// DestroyedEvent is published when a unit is removed from play
type DestroyedEvent struct {
	BaseEvent
	Unit core.UnitID `json:"unit"`
	By   core.UnitID `json:"by"`
}

// NewDestroyedEvent creates a new DestroyedEvent
func NewDestroyedEvent(gameID string, unit, by core.UnitID) *DestroyedEvent {
	return &DestroyedEvent{BaseEvent: base(TypeDestroyed, gameID), Unit: unit, By: by}
}

// WinGameEvent is published once, when a single player remains alive
type WinGameEvent struct {
	BaseEvent
	Player core.PlayerNumber `json:"player"`
}

// NewWinGameEvent creates a new WinGameEvent
func NewWinGameEvent(gameID string, player core.PlayerNumber) *WinGameEvent {
	return &WinGameEvent{BaseEvent: base(TypeWinGame, gameID), Player: player}
}

// SurrenderEvent is published when a player gives up
type SurrenderEvent struct {
	BaseEvent
	Player core.PlayerNumber `json:"player"`
}

// NewSurrenderEvent creates a new SurrenderEvent
func NewSurrenderEvent(gameID string, player core.PlayerNumber) *SurrenderEvent {
	return &SurrenderEvent{BaseEvent: base(TypeSurrender, gameID), Player: player}
}
