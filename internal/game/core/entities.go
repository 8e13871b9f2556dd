package core

import (
	"slices"

	"github.com/mitchelldurbincs/HexTactics/internal/game/catalog"
)

const (
	MaxHealth        = 10
	MaxCapturePoints = 20
	MinCapturePoints = 1
)

type (
	TileID       int
	UnitID       int
	PlayerNumber int
)

const (
	// NoUnit marks an empty tile.
	NoUnit UnitID = 0
	// Neutral is the owner of tiles and units no player controls.
	Neutral PlayerNumber = 0
)

// Tile is one hex cell of the map.
type Tile struct {
	ID            TileID          `json:"id"`
	Terrain       catalog.Terrain `json:"terrain"`
	Variant       int             `json:"variant,omitempty"`
	Owner         PlayerNumber    `json:"owner,omitempty"`
	CapturePoints int             `json:"capture_points"`
	Unit          UnitID          `json:"unit,omitempty"`
	Position      Position        `json:"position"`
}

// NewTile returns an unowned, empty tile at full capture points.
func NewTile(id TileID, terrain catalog.Terrain, pos Position) Tile {
	return Tile{ID: id, Terrain: terrain, CapturePoints: MaxCapturePoints, Position: pos}
}

func (t Tile) IsNeutral() bool  { return t.Owner == Neutral }
func (t Tile) IsOccupied() bool { return t.Unit != NoUnit }

// FundsGenerated is the income the tile yields at base rate.
func (t Tile) FundsGenerated(baseRate int) int {
	if !t.Terrain.Has(catalog.GeneratesFunds) {
		return 0
	}
	return baseRate * t.CapturePoints / MaxCapturePoints
}

// Unit is a mobile, ownable piece.
type Unit struct {
	ID        UnitID           `json:"id"`
	Type      catalog.UnitType `json:"type"`
	Health    int              `json:"health"`
	Carried   []UnitID         `json:"carried,omitempty"`
	Owner     PlayerNumber     `json:"owner,omitempty"`
	Deployed  bool             `json:"deployed,omitempty"`
	Moved     bool             `json:"moved,omitempty"`
	Capturing bool             `json:"capturing,omitempty"`
}

// NewUnit returns a full-health unit with no flags set.
func NewUnit(id UnitID, unitType catalog.UnitType, owner PlayerNumber) Unit {
	return Unit{ID: id, Type: unitType, Health: MaxHealth, Owner: owner}
}

// Clone returns a copy that shares no memory with u.
func (u Unit) Clone() Unit {
	u.Carried = slices.Clone(u.Carried)
	return u
}

func (u Unit) IsDamaged() bool { return u.Health < MaxHealth }

// Carries reports whether id is aboard u.
func (u Unit) Carries(id UnitID) bool { return slices.Contains(u.Carried, id) }

// HasCargoSpace reports whether u can take one more unit aboard.
func (u Unit) HasCargoSpace() bool { return len(u.Carried) < u.Type.CargoCapacity() }

// Player is a participant in turn order.
type Player struct {
	Number PlayerNumber `json:"number"`
	UserID int64        `json:"user_id"`
	Funds  int          `json:"funds"`
	Score  int          `json:"score"`
	Alive  bool         `json:"alive"`
}
