package mapgen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/mitchelldurbincs/HexTactics/internal/config"
	"github.com/mitchelldurbincs/HexTactics/internal/game"
	"github.com/mitchelldurbincs/HexTactics/internal/game/catalog"
	"github.com/mitchelldurbincs/HexTactics/internal/game/core"
)

// ErrNoLocation is returned when a feature cannot be placed anywhere on the map.
var ErrNoLocation = errors.New("no valid location")

// MapConfig holds configuration for map generation
type MapConfig struct {
	Width         int
	Height        int
	PlayerCount   int
	StartingFunds int
	CityRatio     int // 1 neutral city per N tiles, 0 for none
	ForestRatio   int // 1 forest per N tiles, 0 for none
	MountainRatio int // 1 mountain per N tiles, 0 for none
	WaterRatio    int // 1 sea tile per N tiles, 0 for none
	MinHQSpacing  int
	MinVeinLength int
	MaxVeinLength int
}

// DefaultMapConfig returns a sensible default configuration
func DefaultMapConfig(w, h, players int) MapConfig {
	return MapConfig{
		Width:         w,
		Height:        h,
		PlayerCount:   players,
		StartingFunds: 1000,
		CityRatio:     12,
		ForestRatio:   6,
		MountainRatio: 14,
		WaterRatio:    10,
		MinHQSpacing:  5,
		MinVeinLength: 2,
		MaxVeinLength: max(2, w/4),
	}
}

// ConfigFromSettings builds a MapConfig from loaded configuration
func ConfigFromSettings(c config.MapgenConfig) MapConfig {
	mc := DefaultMapConfig(c.Width, c.Height, c.Players)
	mc.StartingFunds = c.StartingFunds
	mc.CityRatio = c.CityRatio
	mc.ForestRatio = c.ForestRatio
	mc.MountainRatio = c.MountainRatio
	mc.WaterRatio = c.WaterRatio
	return mc
}

// Validate checks that a map can be laid out with this configuration
func (c MapConfig) Validate() error {
	switch {
	case c.Width < 4 || c.Height < 4:
		return fmt.Errorf("map must be at least 4x4, got %dx%d", c.Width, c.Height)
	case c.PlayerCount < 1:
		return fmt.Errorf("need at least one player, got %d", c.PlayerCount)
	case c.StartingFunds < 0:
		return fmt.Errorf("starting funds must be non-negative, got %d", c.StartingFunds)
	case c.CityRatio < 0 || c.ForestRatio < 0 || c.MountainRatio < 0 || c.WaterRatio < 0:
		return errors.New("feature ratios must be non-negative")
	case c.MinVeinLength < 1 || c.MaxVeinLength < c.MinVeinLength:
		return fmt.Errorf("invalid vein length range %d..%d", c.MinVeinLength, c.MaxVeinLength)
	}
	return nil
}

// Generator handles map generation with deterministic RNG
type Generator struct {
	config MapConfig
	rng    *rand.Rand
}

// NewGenerator creates a new map generator
func NewGenerator(config MapConfig, rng *rand.Rand) *Generator {
	return &Generator{
		config: config,
		rng:    rng,
	}
}

// HQPlacement tracks where a player's headquarters and starting units went
type HQPlacement struct {
	Player core.PlayerNumber
	HQ     core.Position
	Base   core.Position
	Unit   core.UnitID
}

// layout is the map under construction, indexed by position.
type layout struct {
	w, h  int
	tiles []core.Tile
}

func (l *layout) inBounds(p core.Position) bool {
	return p.X >= 0 && p.X < l.w && p.Y >= 0 && p.Y < l.h
}

func (l *layout) at(p core.Position) *core.Tile {
	return &l.tiles[p.Y*l.w+p.X]
}

// GenerateMap lays out terrain, places one HQ, base and infantry per player
// and scatters neutral cities.
func (g *Generator) GenerateMap() (game.Map, []HQPlacement, error) {
	if err := g.config.Validate(); err != nil {
		return game.Map{}, nil, fmt.Errorf("invalid map config: %w", err)
	}

	l := &layout{w: g.config.Width, h: g.config.Height}
	for y := 0; y < l.h; y++ {
		for x := 0; x < l.w; x++ {
			id := core.TileID(len(l.tiles) + 1)
			l.tiles = append(l.tiles, core.NewTile(id, catalog.Plains, core.NewPosition(x, y)))
		}
	}

	g.placeWater(l)
	g.placeMountains(l)
	g.scatter(l, catalog.Forest, g.want(g.config.ForestRatio))

	placements, err := g.placeHQs(l)
	if err != nil {
		return game.Map{}, nil, err
	}
	g.scatter(l, catalog.City, g.want(g.config.CityRatio))

	units := make([]core.Unit, 0, len(placements))
	for i := range placements {
		u := core.NewUnit(core.UnitID(i+1), catalog.Infantry, placements[i].Player)
		l.at(placements[i].HQ).Unit = u.ID
		placements[i].Unit = u.ID
		units = append(units, u)
	}

	return game.Map{Tiles: l.tiles, Units: units, StartingFunds: g.config.StartingFunds}, placements, nil
}

func (g *Generator) want(ratio int) int {
	if ratio <= 0 {
		return 0
	}
	return (g.config.Width * g.config.Height) / ratio
}

func (g *Generator) randomPosition() core.Position {
	return core.NewPosition(g.rng.Intn(g.config.Width), g.rng.Intn(g.config.Height))
}

// placeWater grows lakes outward from random seeds until enough sea is laid.
func (g *Generator) placeWater(l *layout) {
	want := g.want(g.config.WaterRatio)
	placed := 0
	maxAttempts := want * 10
	for attempts := 0; placed < want && attempts < maxAttempts; attempts++ {
		p := g.randomPosition()
		size := g.config.MinVeinLength + g.rng.Intn(g.config.MaxVeinLength-g.config.MinVeinLength+1)
		for step := 0; step < size && placed < want; step++ {
			t := l.at(p)
			if t.Terrain == catalog.Plains {
				t.Terrain = catalog.Sea
				placed++
			}
			next := p.Move(core.Direction(g.rng.Intn(6)))
			if l.inBounds(next) {
				p = next
			}
		}
	}
}

// placeMountains lays mountain veins by random walk.
func (g *Generator) placeMountains(l *layout) {
	want := g.want(g.config.MountainRatio)
	placed := 0
	maxAttempts := want * 10
	for attempts := 0; placed < want && attempts < maxAttempts; attempts++ {
		p := g.randomPosition()
		dir := core.Direction(g.rng.Intn(6))
		length := g.config.MinVeinLength + g.rng.Intn(g.config.MaxVeinLength-g.config.MinVeinLength+1)
		for step := 0; step < length && placed < want && l.inBounds(p); step++ {
			t := l.at(p)
			if t.Terrain == catalog.Plains {
				t.Terrain = catalog.Mountains
				placed++
			}
			// Veins wander a little but keep a general heading.
			if g.rng.Intn(3) == 0 {
				dir = core.Direction((int(dir) + 5 + g.rng.Intn(3)) % 6)
			}
			p = p.Move(dir)
		}
	}
}

// scatter turns up to want random neutral plains or forest tiles into terrain.
func (g *Generator) scatter(l *layout, terrain catalog.Terrain, want int) {
	placed := 0
	maxAttempts := want * 10
	for attempts := 0; placed < want && attempts < maxAttempts; attempts++ {
		t := l.at(g.randomPosition())
		if t.IsNeutral() && (t.Terrain == catalog.Plains || t.Terrain == catalog.Forest) {
			t.Terrain = terrain
			placed++
		}
	}
}

func (g *Generator) placeHQs(l *layout) ([]HQPlacement, error) {
	placements := make([]HQPlacement, 0, g.config.PlayerCount)
	for i := 0; i < g.config.PlayerCount; i++ {
		player := core.PlayerNumber(i + 1)
		hq, err := g.findHQLocation(l, placements)
		if err != nil {
			return nil, fmt.Errorf("player %d HQ: %w", player, err)
		}
		base, err := g.findBaseLocation(l, hq)
		if err != nil {
			return nil, fmt.Errorf("player %d base: %w", player, err)
		}

		for _, p := range []struct {
			pos     core.Position
			terrain catalog.Terrain
		}{{hq, catalog.HQ}, {base, catalog.Base}} {
			t := l.at(p.pos)
			t.Terrain = p.terrain
			t.Owner = player
			t.CapturePoints = core.MaxCapturePoints
		}
		placements = append(placements, HQPlacement{Player: player, HQ: hq, Base: base})
	}
	return placements, nil
}

// hqCandidate reports whether p can hold an HQ: inside the border so every
// neighbour exists, on open ground, and not already claimed.
func hqCandidate(l *layout, p core.Position) bool {
	if p.X < 1 || p.X > l.w-2 || p.Y < 1 || p.Y > l.h-2 {
		return false
	}
	t := l.at(p)
	return t.IsNeutral() && (t.Terrain == catalog.Plains || t.Terrain == catalog.Forest) && !claimedNearby(l, p)
}

func claimedNearby(l *layout, p core.Position) bool {
	for _, n := range p.Neighbors() {
		if l.inBounds(n) && !l.at(n).IsNeutral() {
			return true
		}
	}
	return false
}

func (g *Generator) findHQLocation(l *layout, existing []HQPlacement) (core.Position, error) {
	maxAttempts := l.w * l.h

	for attempts := 0; attempts < maxAttempts; attempts++ {
		p := g.randomPosition()
		if !hqCandidate(l, p) {
			continue
		}
		spaced := true
		for _, other := range existing {
			if p.DistanceTo(other.HQ) < g.config.MinHQSpacing {
				spaced = false
				break
			}
		}
		if spaced {
			return p, nil
		}
	}

	// Fallback: any valid spot, ignoring spacing
	for _, t := range l.tiles {
		if hqCandidate(l, t.Position) {
			return t.Position, nil
		}
	}
	return core.Position{}, ErrNoLocation
}

func (g *Generator) findBaseLocation(l *layout, hq core.Position) (core.Position, error) {
	var options []core.Position
	for _, n := range hq.Neighbors() {
		if t := l.at(n); t.IsNeutral() && t.Terrain != catalog.City {
			options = append(options, n)
		}
	}
	if len(options) == 0 {
		return core.Position{}, ErrNoLocation
	}
	return options[g.rng.Intn(len(options))], nil
}
