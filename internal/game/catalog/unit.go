package catalog

import (
	"fmt"
	"maps"
	"slices"
)

// UnitClass is the broad family a unit type belongs to.
type UnitClass uint8

const (
	ClassInfantry UnitClass = iota
	ClassVehicle
	ClassAerial
	ClassNaval
)

func (c UnitClass) String() string {
	switch c {
	case ClassInfantry:
		return "Infantry"
	case ClassVehicle:
		return "Vehicle"
	case ClassAerial:
		return "Aerial"
	case ClassNaval:
		return "Naval"
	default:
		return fmt.Sprintf("UnitClass(%d)", uint8(c))
	}
}

// UnitType identifies a buildable kind of unit.
type UnitType uint8

const (
	Infantry UnitType = iota
	BazookaTrooper
	Scout
	Tank
	HeavyTank
	Artillery
	AntiAir
	APC
	Helicopter
	Fighter
	Bomber
	Cruiser
	Submarine
	LanderShip

	unitTypeCount
)

// UnitFlag marks capabilities that cannot be derived from weapon or cargo data.
type UnitFlag uint8

const (
	CanCapture UnitFlag = 1 << iota
)

// UnitInfo describes a unit type.
type UnitInfo struct {
	Name          string
	Class         UnitClass
	Movement      MovementType
	MovePoints    int
	Armor         Armor
	Weapons       []Weapon
	Price         int
	Cargo         []UnitClass
	CargoCapacity int
	DefenseBonus  map[Terrain]int
	Flags         UnitFlag
}

var infantryCover = map[Terrain]int{Forest: 1, Mountains: 1}

var unitTypes = [unitTypeCount]UnitInfo{
	Infantry: {
		Name: "Infantry", Class: ClassInfantry, Movement: Foot, MovePoints: 4, Armor: Personnel,
		Weapons: []Weapon{Rifle}, Price: 100, DefenseBonus: infantryCover, Flags: CanCapture,
	},
	BazookaTrooper: {
		Name: "Bazooka", Class: ClassInfantry, Movement: Boots, MovePoints: 3, Armor: Personnel,
		Weapons: []Weapon{Bazooka, Rifle}, Price: 200, DefenseBonus: infantryCover, Flags: CanCapture,
	},
	Scout: {
		Name: "Scout", Class: ClassVehicle, Movement: Tires, MovePoints: 7, Armor: LightArmor,
		Weapons: []Weapon{MachineGun}, Price: 300,
	},
	Tank: {
		Name: "Tank", Class: ClassVehicle, Movement: Treads, MovePoints: 5, Armor: HeavyArmor,
		Weapons: []Weapon{Cannon, MachineGun}, Price: 500,
	},
	HeavyTank: {
		Name: "HeavyTank", Class: ClassVehicle, Movement: Treads, MovePoints: 4, Armor: HeavyArmor,
		Weapons: []Weapon{HeavyCannon, MachineGun}, Price: 900,
	},
	Artillery: {
		Name: "Artillery", Class: ClassVehicle, Movement: Treads, MovePoints: 4, Armor: LightArmor,
		Weapons: []Weapon{Howitzer}, Price: 600,
	},
	AntiAir: {
		Name: "AntiAir", Class: ClassVehicle, Movement: Treads, MovePoints: 5, Armor: LightArmor,
		Weapons: []Weapon{Flak}, Price: 500,
	},
	APC: {
		Name: "APC", Class: ClassVehicle, Movement: Treads, MovePoints: 5, Armor: LightArmor,
		Price: 400, Cargo: []UnitClass{ClassInfantry}, CargoCapacity: 2,
	},
	Helicopter: {
		Name: "Helicopter", Class: ClassAerial, Movement: Air, MovePoints: 6, Armor: AirArmor,
		Weapons: []Weapon{Rockets, MachineGun}, Price: 700,
	},
	Fighter: {
		Name: "Fighter", Class: ClassAerial, Movement: Air, MovePoints: 9, Armor: AirArmor,
		Weapons: []Weapon{AirMissiles}, Price: 1200,
	},
	Bomber: {
		Name: "Bomber", Class: ClassAerial, Movement: Air, MovePoints: 7, Armor: AirArmor,
		Weapons: []Weapon{Bombs}, Price: 1500,
	},
	Cruiser: {
		Name: "Cruiser", Class: ClassNaval, Movement: Ship, MovePoints: 6, Armor: ShipArmor,
		Weapons: []Weapon{NavalGun}, Price: 1200,
	},
	Submarine: {
		Name: "Submarine", Class: ClassNaval, Movement: Ship, MovePoints: 5, Armor: ShipArmor,
		Weapons: []Weapon{Torpedo}, Price: 1000,
	},
	LanderShip: {
		Name: "Lander", Class: ClassNaval, Movement: Lander, MovePoints: 6, Armor: ShipArmor,
		Price: 800, Cargo: []UnitClass{ClassInfantry, ClassVehicle}, CargoCapacity: 2,
	},
}

// UnitTypes returns every unit type in declaration order.
func UnitTypes() []UnitType {
	out := make([]UnitType, 0, unitTypeCount)
	for u := UnitType(0); u < unitTypeCount; u++ {
		out = append(out, u)
	}
	return out
}

// Valid reports whether u is a known unit type.
func (u UnitType) Valid() bool { return u < unitTypeCount }

// Info returns a copy of the descriptor for u.
func (u UnitType) Info() UnitInfo {
	info := u.info()
	info.Weapons = slices.Clone(info.Weapons)
	info.Cargo = slices.Clone(info.Cargo)
	info.DefenseBonus = maps.Clone(info.DefenseBonus)
	return info
}

func (u UnitType) info() UnitInfo {
	if !u.Valid() {
		return UnitInfo{Name: u.String()}
	}
	return unitTypes[u]
}

func (u UnitType) String() string {
	if !u.Valid() {
		return fmt.Sprintf("UnitType(%d)", uint8(u))
	}
	return unitTypes[u].Name
}

// ParseUnitType looks a unit type up by its display name.
func ParseUnitType(name string) (UnitType, bool) {
	for u := UnitType(0); u < unitTypeCount; u++ {
		if unitTypes[u].Name == name {
			return u, true
		}
	}
	return 0, false
}

func (u UnitType) Class() UnitClass           { return u.info().Class }
func (u UnitType) Armor() Armor               { return u.info().Armor }
func (u UnitType) Price() int                 { return u.info().Price }
func (u UnitType) Movement() MovementType     { return u.info().Movement }
func (u UnitType) MovePoints() int            { return u.info().MovePoints }
func (u UnitType) Weapons() []Weapon          { return slices.Clone(u.info().Weapons) }
func (u UnitType) CanCapture() bool           { return u.info().Flags&CanCapture != 0 }
func (u UnitType) CargoCapacity() int         { return u.info().CargoCapacity }
func (u UnitType) CanCarry() bool             { return u.info().CargoCapacity > 0 }
func (u UnitType) CanTraverse(t Terrain) bool { return u.Movement().CanEnter(t) }

// CanDeploy reports whether any of the unit's weapons needs the deployed stance.
func (u UnitType) CanDeploy() bool {
	for _, w := range u.info().Weapons {
		if w.info().RequiresDeployed {
			return true
		}
	}
	return false
}

// CanCarryClass reports whether u accepts cargo of class c.
func (u UnitType) CanCarryClass(c UnitClass) bool {
	return u.CanCarry() && containsClass(u.info().Cargo, c)
}

// TerrainDefense is the defense a unit of type u enjoys on terrain t.
// Aerial units get no cover from the ground.
func (u UnitType) TerrainDefense(t Terrain) int {
	info := u.info()
	if info.Class == ClassAerial {
		return 0
	}
	def := t.info().Defense + info.DefenseBonus[t]
	if def < 0 {
		return 0
	}
	return def
}
