package catalog

import "fmt"

// MovementType selects a terrain cost table.
type MovementType uint8

const (
	Foot MovementType = iota
	Boots
	Treads
	Tires
	Air
	Ship
	Lander

	movementCount
)

// impassable is stored as 0 in the cost tables.
const impassable = 0

var movementNames = [movementCount]string{"Foot", "Boots", "Treads", "Tires", "Air", "Ship", "Lander"}

// Column order follows the Terrain declaration:
// Plains Road Forest Hills Mountains Swamp Beach Shallows Sea Bridge City Base Airport Port HQ
var movementCosts = [movementCount][terrainCount]int{
	Foot:   {1, 1, 1, 2, 3, 2, 1, 0, 0, 1, 1, 1, 1, 1, 1},
	Boots:  {1, 1, 1, 1, 2, 1, 1, 0, 0, 1, 1, 1, 1, 1, 1},
	Treads: {1, 1, 2, 2, 0, 2, 1, 0, 0, 1, 1, 1, 1, 1, 1},
	Tires:  {2, 1, 3, 3, 0, 0, 2, 0, 0, 1, 1, 1, 1, 1, 1},
	Air:    {1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
	Ship:   {0, 0, 0, 0, 0, 0, 0, 2, 1, 0, 0, 0, 0, 1, 0},
	Lander: {0, 0, 0, 0, 0, 0, 1, 1, 1, 0, 0, 0, 0, 1, 0},
}

// Valid reports whether m is a known movement type.
func (m MovementType) Valid() bool { return m < movementCount }

// Cost returns the movement points needed to enter terrain t.
// ok is false when t is impassable for this movement type.
func (m MovementType) Cost(t Terrain) (cost int, ok bool) {
	if !m.Valid() || !t.Valid() {
		return 0, false
	}
	c := movementCosts[m][t]
	if c == impassable {
		return 0, false
	}
	return c, true
}

// CanEnter reports whether terrain t is passable for m.
func (m MovementType) CanEnter(t Terrain) bool {
	_, ok := m.Cost(t)
	return ok
}

func (m MovementType) String() string {
	if !m.Valid() {
		return fmt.Sprintf("MovementType(%d)", uint8(m))
	}
	return movementNames[m]
}
