package catalog

import (
	"fmt"
	"slices"
)

// Terrain is the kind of ground a tile is made of.
type Terrain uint8

const (
	Plains Terrain = iota
	Road
	Forest
	Hills
	Mountains
	Swamp
	Beach
	Shallows
	Sea
	Bridge
	City
	Base
	Airport
	Port
	HQ

	terrainCount
)

// TerrainFlag marks capabilities of a terrain kind.
type TerrainFlag uint8

const (
	Capturable TerrainFlag = 1 << iota
	GeneratesFunds
	IsHQ
)

// TerrainInfo describes a terrain kind.
type TerrainInfo struct {
	Name    string
	Defense int
	Build   []UnitClass // unit classes that can be built on this terrain
	Repair  []UnitClass // unit classes repaired at the start of the owner's turn
	Flags   TerrainFlag
}

var (
	groundClasses = []UnitClass{ClassInfantry, ClassVehicle}
	buildingFlags = Capturable | GeneratesFunds
)

var terrains = [terrainCount]TerrainInfo{
	Plains:    {Name: "Plains", Defense: 1},
	Road:      {Name: "Road"},
	Forest:    {Name: "Forest", Defense: 2},
	Hills:     {Name: "Hills", Defense: 2},
	Mountains: {Name: "Mountains", Defense: 4},
	Swamp:     {Name: "Swamp"},
	Beach:     {Name: "Beach"},
	Shallows:  {Name: "Shallows"},
	Sea:       {Name: "Sea"},
	Bridge:    {Name: "Bridge"},
	City:      {Name: "City", Defense: 3, Repair: groundClasses, Flags: buildingFlags},
	Base:      {Name: "Base", Defense: 3, Build: groundClasses, Repair: groundClasses, Flags: buildingFlags},
	Airport:   {Name: "Airport", Defense: 3, Build: []UnitClass{ClassAerial}, Repair: []UnitClass{ClassAerial}, Flags: buildingFlags},
	Port:      {Name: "Port", Defense: 3, Build: []UnitClass{ClassNaval}, Repair: []UnitClass{ClassNaval}, Flags: buildingFlags},
	HQ:        {Name: "HQ", Defense: 4, Build: []UnitClass{ClassInfantry}, Repair: groundClasses, Flags: buildingFlags | IsHQ},
}

// Terrains returns every terrain kind in declaration order.
func Terrains() []Terrain {
	out := make([]Terrain, 0, terrainCount)
	for t := Terrain(0); t < terrainCount; t++ {
		out = append(out, t)
	}
	return out
}

// Valid reports whether t is a known terrain kind.
func (t Terrain) Valid() bool { return t < terrainCount }

// Info returns a copy of the descriptor for t. Unknown values map to an
// impassable, featureless descriptor.
func (t Terrain) Info() TerrainInfo {
	info := t.info()
	info.Build = slices.Clone(info.Build)
	info.Repair = slices.Clone(info.Repair)
	return info
}

func (t Terrain) info() TerrainInfo {
	if !t.Valid() {
		return TerrainInfo{Name: t.String()}
	}
	return terrains[t]
}

func (t Terrain) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Terrain(%d)", uint8(t))
	}
	return terrains[t].Name
}

// Has reports whether the terrain carries the given flag.
func (t Terrain) Has(flag TerrainFlag) bool { return t.info().Flags&flag != 0 }

// CanBuild reports whether units of class c may be built on t.
func (t Terrain) CanBuild(c UnitClass) bool { return containsClass(t.info().Build, c) }

// CanRepair reports whether units of class c are repaired on t.
func (t Terrain) CanRepair(c UnitClass) bool { return containsClass(t.info().Repair, c) }

// IsBuildSite reports whether anything at all can be built on t.
func (t Terrain) IsBuildSite() bool { return len(t.info().Build) > 0 }

func containsClass(classes []UnitClass, c UnitClass) bool {
	for _, cl := range classes {
		if cl == c {
			return true
		}
	}
	return false
}
