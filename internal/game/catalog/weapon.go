package catalog

import (
	"fmt"
	"maps"
)

// Armor is the category a unit is struck as.
type Armor uint8

const (
	Personnel Armor = iota
	LightArmor
	HeavyArmor
	AirArmor
	ShipArmor

	armorCount
)

var armorNames = [armorCount]string{"Personnel", "LightArmor", "HeavyArmor", "AirArmor", "ShipArmor"}

func (a Armor) String() string {
	if a >= armorCount {
		return fmt.Sprintf("Armor(%d)", uint8(a))
	}
	return armorNames[a]
}

// Weapon identifies an armament.
type Weapon uint8

const (
	Rifle Weapon = iota
	Bazooka
	MachineGun
	Cannon
	HeavyCannon
	Howitzer
	Flak
	AirMissiles
	Rockets
	Bombs
	NavalGun
	Torpedo

	weaponCount
)

// noTarget marks an armor class the weapon cannot engage.
const noTarget = -1

// WeaponInfo describes a weapon. Power is expressed as a percentage of a
// full-health unit destroyed by one full-strength hit.
type WeaponInfo struct {
	Name             string
	Power            [armorCount]int
	Range            map[int]int // distance -> effectiveness percent
	RequiresDeployed bool
}

var weapons = [weaponCount]WeaponInfo{
	Rifle:       {Name: "Rifle", Power: [armorCount]int{55, 15, 5, noTarget, noTarget}, Range: melee()},
	Bazooka:     {Name: "Bazooka", Power: [armorCount]int{60, 55, 35, noTarget, noTarget}, Range: melee()},
	MachineGun:  {Name: "MachineGun", Power: [armorCount]int{70, 35, 10, 10, noTarget}, Range: melee()},
	Cannon:      {Name: "Cannon", Power: [armorCount]int{45, 70, 50, noTarget, 10}, Range: melee()},
	HeavyCannon: {Name: "HeavyCannon", Power: [armorCount]int{60, 90, 75, noTarget, 25}, Range: melee()},
	Howitzer: {
		Name:             "Howitzer",
		Power:            [armorCount]int{90, 75, 65, noTarget, 50},
		Range:            map[int]int{2: 100, 3: 100, 4: 75},
		RequiresDeployed: true,
	},
	Flak:        {Name: "Flak", Power: [armorCount]int{80, 45, 10, 90, noTarget}, Range: melee()},
	AirMissiles: {Name: "AirMissiles", Power: [armorCount]int{noTarget, noTarget, noTarget, 100, noTarget}, Range: melee()},
	Rockets:     {Name: "Rockets", Power: [armorCount]int{60, 65, 55, noTarget, 25}, Range: melee()},
	Bombs:       {Name: "Bombs", Power: [armorCount]int{100, 100, 95, noTarget, 85}, Range: melee()},
	NavalGun:    {Name: "NavalGun", Power: [armorCount]int{60, 65, 55, noTarget, 50}, Range: map[int]int{1: 100, 2: 80, 3: 60}},
	Torpedo:     {Name: "Torpedo", Power: [armorCount]int{noTarget, noTarget, noTarget, noTarget, 90}, Range: melee()},
}

func melee() map[int]int { return map[int]int{1: 100} }

// Valid reports whether w is a known weapon.
func (w Weapon) Valid() bool { return w < weaponCount }

// Info returns a copy of the descriptor for w.
func (w Weapon) Info() WeaponInfo {
	info := w.info()
	info.Range = maps.Clone(info.Range)
	return info
}

func (w Weapon) info() WeaponInfo {
	if !w.Valid() {
		return WeaponInfo{Name: w.String()}
	}
	return weapons[w]
}

func (w Weapon) String() string {
	if !w.Valid() {
		return fmt.Sprintf("Weapon(%d)", uint8(w))
	}
	return weapons[w].Name
}

// PowerAgainst returns the base power against armor a; ok is false when the
// weapon cannot target that armor at all.
func (w Weapon) PowerAgainst(a Armor) (power int, ok bool) {
	if !w.Valid() || a >= armorCount {
		return 0, false
	}
	p := weapons[w].Power[a]
	if p == noTarget {
		return 0, false
	}
	return p, true
}

// Effectiveness returns the percentage of power delivered at distance d.
func (w Weapon) Effectiveness(d int) (percent int, ok bool) {
	if !w.Valid() {
		return 0, false
	}
	percent, ok = weapons[w].Range[d]
	return percent, ok
}

// MaxRange is the farthest distance at which the weapon has any effect.
func (w Weapon) MaxRange() int {
	max := 0
	for d := range w.info().Range {
		if d > max {
			max = d
		}
	}
	return max
}
