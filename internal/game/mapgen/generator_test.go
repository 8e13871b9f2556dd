package mapgen

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/HexTactics/internal/config"
	"github.com/mitchelldurbincs/HexTactics/internal/game"
	"github.com/mitchelldurbincs/HexTactics/internal/game/catalog"
	"github.com/mitchelldurbincs/HexTactics/internal/game/core"
)

// newTestRNG provides a random number generator with a fixed seed for deterministic tests.
func newTestRNG() *rand.Rand {
	return rand.New(rand.NewSource(12345))
}

func countTerrain(m game.Map, t catalog.Terrain) int {
	n := 0
	for _, tile := range m.Tiles {
		if tile.Terrain == t {
			n++
		}
	}
	return n
}

func TestDefaultMapConfig(t *testing.T) {
	w, h, players := 20, 15, 2
	c := DefaultMapConfig(w, h, players)

	assert.Equal(t, w, c.Width)
	assert.Equal(t, h, c.Height)
	assert.Equal(t, players, c.PlayerCount)
	assert.Equal(t, 1000, c.StartingFunds)
	assert.Equal(t, 12, c.CityRatio)
	assert.Equal(t, 5, c.MinHQSpacing)
	assert.Equal(t, 2, c.MinVeinLength)
	assert.Equal(t, w/4, c.MaxVeinLength)
	assert.NoError(t, c.Validate())

	assert.Equal(t, 2, DefaultMapConfig(4, 4, 1).MaxVeinLength, "vein length floor on tiny maps")
}

func TestConfigFromSettings(t *testing.T) {
	c := ConfigFromSettings(config.MapgenConfig{
		Width: 18, Height: 9, Players: 3, StartingFunds: 250,
		CityRatio: 4, ForestRatio: 0, MountainRatio: 7, WaterRatio: 3,
	})

	assert.Equal(t, 18, c.Width)
	assert.Equal(t, 9, c.Height)
	assert.Equal(t, 3, c.PlayerCount)
	assert.Equal(t, 250, c.StartingFunds)
	assert.Equal(t, 4, c.CityRatio)
	assert.Equal(t, 0, c.ForestRatio)
	assert.Equal(t, 7, c.MountainRatio)
	assert.Equal(t, 3, c.WaterRatio)
	assert.Equal(t, DefaultMapConfig(18, 9, 3).MinHQSpacing, c.MinHQSpacing)
}

func TestMapConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *MapConfig)
	}{
		{"TooNarrow", func(c *MapConfig) { c.Width = 3 }},
		{"TooShort", func(c *MapConfig) { c.Height = 2 }},
		{"NoPlayers", func(c *MapConfig) { c.PlayerCount = 0 }},
		{"NegativeFunds", func(c *MapConfig) { c.StartingFunds = -1 }},
		{"NegativeRatio", func(c *MapConfig) { c.WaterRatio = -2 }},
		{"EmptyVeins", func(c *MapConfig) { c.MinVeinLength = 0 }},
		{"InvertedVeins", func(c *MapConfig) { c.MaxVeinLength = 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultMapConfig(12, 12, 2)
			tt.mutate(&c)
			assert.Error(t, c.Validate())

			_, _, err := NewGenerator(c, newTestRNG()).GenerateMap()
			assert.Error(t, err)
		})
	}
}

func TestNewGenerator(t *testing.T) {
	c := DefaultMapConfig(10, 10, 1)
	rng := newTestRNG()
	generator := NewGenerator(c, rng)

	require.NotNil(t, generator)
	assert.Equal(t, c, generator.config)
	assert.Same(t, rng, generator.rng)
}

func TestGenerateMap_Layout(t *testing.T) {
	c := DefaultMapConfig(16, 12, 2)
	m, _, err := NewGenerator(c, newTestRNG()).GenerateMap()
	require.NoError(t, err)

	require.Len(t, m.Tiles, 16*12)
	for i, tile := range m.Tiles {
		assert.Equal(t, core.TileID(i+1), tile.ID, "tile ids are row-major from 1")
		assert.Equal(t, core.NewPosition(i%16, i/16), tile.Position)
	}
	assert.Equal(t, c.StartingFunds, m.StartingFunds)
	assert.Positive(t, countTerrain(m, catalog.Sea))
	assert.Positive(t, countTerrain(m, catalog.Mountains))
	assert.Positive(t, countTerrain(m, catalog.Forest))
	assert.Positive(t, countTerrain(m, catalog.City))
	assert.Equal(t, 2, countTerrain(m, catalog.HQ))
	assert.Equal(t, 2, countTerrain(m, catalog.Base))
	assert.LessOrEqual(t, countTerrain(m, catalog.City), 16*12/c.CityRatio)
}

func TestGenerateMap_Placements(t *testing.T) {
	for _, players := range []int{1, 2, 4} {
		c := DefaultMapConfig(20, 20, players)
		m, placements, err := NewGenerator(c, newTestRNG()).GenerateMap()
		require.NoError(t, err)
		require.Len(t, placements, players)
		require.Len(t, m.Units, players)

		at := func(pos core.Position) core.Tile { return m.Tiles[pos.Y*c.Width+pos.X] }
		for i, pl := range placements {
			assert.Equal(t, core.PlayerNumber(i+1), pl.Player)

			hq := at(pl.HQ)
			assert.Equal(t, catalog.HQ, hq.Terrain)
			assert.Equal(t, pl.Player, hq.Owner)
			assert.Equal(t, core.MaxCapturePoints, hq.CapturePoints)
			assert.Equal(t, pl.Unit, hq.Unit, "starting infantry stands on the HQ")

			base := at(pl.Base)
			assert.Equal(t, catalog.Base, base.Terrain)
			assert.Equal(t, pl.Player, base.Owner)
			assert.Equal(t, 1, pl.HQ.DistanceTo(pl.Base))
			assert.False(t, base.IsOccupied())

			u := m.Units[i]
			assert.Equal(t, pl.Unit, u.ID)
			assert.Equal(t, core.UnitID(i+1), u.ID)
			assert.Equal(t, catalog.Infantry, u.Type)
			assert.Equal(t, pl.Player, u.Owner)

			for _, other := range placements[:i] {
				assert.Greater(t, pl.HQ.DistanceTo(other.HQ), 1, "HQs never touch")
			}
		}
	}
}

func TestGenerateMap_HQSpacing(t *testing.T) {
	c := DefaultMapConfig(24, 24, 2)
	_, placements, err := NewGenerator(c, newTestRNG()).GenerateMap()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, placements[0].HQ.DistanceTo(placements[1].HQ), c.MinHQSpacing)
}

func TestGenerateMap_Deterministic(t *testing.T) {
	c := DefaultMapConfig(14, 10, 3)
	m1, p1, err := NewGenerator(c, rand.New(rand.NewSource(7))).GenerateMap()
	require.NoError(t, err)
	m2, p2, err := NewGenerator(c, rand.New(rand.NewSource(7))).GenerateMap()
	require.NoError(t, err)

	assert.Equal(t, m1, m2)
	assert.Equal(t, p1, p2)

	m3, _, err := NewGenerator(c, rand.New(rand.NewSource(8))).GenerateMap()
	require.NoError(t, err)
	assert.NotEqual(t, m1.Tiles, m3.Tiles, "different seeds give different maps")
}

func TestGenerateMap_NoFeatures(t *testing.T) {
	c := DefaultMapConfig(8, 8, 2)
	c.CityRatio, c.ForestRatio, c.MountainRatio, c.WaterRatio = 0, 0, 0, 0
	c.MinHQSpacing = 3
	m, _, err := NewGenerator(c, newTestRNG()).GenerateMap()
	require.NoError(t, err)

	assert.Equal(t, 8*8-4, countTerrain(m, catalog.Plains))
	assert.Zero(t, countTerrain(m, catalog.City))
}

func TestGenerateMap_Crowded(t *testing.T) {
	// A 4x4 map only has room for HQs in its 2x2 interior.
	c := DefaultMapConfig(4, 4, 4)
	c.CityRatio, c.ForestRatio, c.MountainRatio, c.WaterRatio = 0, 0, 0, 0
	_, _, err := NewGenerator(c, newTestRNG()).GenerateMap()
	assert.ErrorIs(t, err, ErrNoLocation)
}

func TestGenerateMap_Playable(t *testing.T) {
	c := DefaultMapConfig(16, 12, 2)
	m, _, err := NewGenerator(c, newTestRNG()).GenerateMap()
	require.NoError(t, err)

	g, err := game.New(m, []int64{1, 2})
	require.NoError(t, err)
	require.NoError(t, g.Start(nil))

	p1, ok := g.ActivePlayer()
	require.True(t, ok)
	assert.Greater(t, p1.Funds, c.StartingFunds, "owned HQ and base yield income")
}
