package rules

import (
	"maps"
	"slices"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/mitchelldurbincs/HexTactics/internal/game/catalog"
	"github.com/mitchelldurbincs/HexTactics/internal/game/core"
)

func TestEvaluateAlive(t *testing.T) {
	wc := NewWinConditionChecker(zerolog.Nop())

	tiles := []core.Tile{
		{ID: 1, Terrain: catalog.Base, Owner: 1},
		{ID: 2, Terrain: catalog.City, Owner: 2},
		{ID: 3, Terrain: catalog.Airport, Owner: 3},
		{ID: 4, Terrain: catalog.Plains},
	}
	units := []core.Unit{
		core.NewUnit(1, catalog.Infantry, 4),
		core.NewUnit(2, catalog.Infantry, core.Neutral),
	}

	alive := wc.EvaluateAlive([]core.PlayerNumber{1, 2, 3, 4, 5}, slices.Values(tiles), slices.Values(units))

	assert.Equal(t, map[core.PlayerNumber]bool{
		1: true,  // base
		2: false, // a city cannot build
		3: true,  // airport
		4: true,  // unit
		5: false, // nothing
	}, alive)
	assert.NotContains(t, slices.Collect(maps.Keys(alive)), core.Neutral)
}

func TestCheckGameOver(t *testing.T) {
	wc := NewWinConditionChecker(zerolog.Nop())

	tests := []struct {
		name     string
		alive    []bool
		over     bool
		expected core.PlayerNumber
	}{
		{"TwoAlive", []bool{true, true, false}, false, core.Neutral},
		{"OneAlive", []bool{false, false, true}, true, 3},
		{"NoneAlive", []bool{false, false}, true, core.Neutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			players := make([]core.Player, len(tt.alive))
			for i, a := range tt.alive {
				players[i] = core.Player{Number: core.PlayerNumber(i + 1), Alive: a}
			}
			over, winner := wc.CheckGameOver(players)
			assert.Equal(t, tt.over, over)
			assert.Equal(t, tt.expected, winner)
		})
	}
}
