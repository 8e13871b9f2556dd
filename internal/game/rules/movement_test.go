package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/HexTactics/internal/game/catalog"
	"github.com/mitchelldurbincs/HexTactics/internal/game/core"
)

func TestValidatePath(t *testing.T) {
	b := newTestBoard(6, 3)
	b.terrain(catalog.Sea, pos(0, 2))
	inf := b.place(pos(0, 0), core.NewUnit(1, catalog.Infantry, 1))
	b.place(pos(2, 1), core.NewUnit(2, catalog.Infantry, 1))
	b.place(pos(3, 1), core.NewUnit(3, catalog.Infantry, 2))

	tests := []struct {
		name    string
		path    []core.Position
		wantErr bool
	}{
		{"Stay", []core.Position{pos(0, 0)}, false},
		{"Empty", nil, true},
		{"StayWrongOrigin", []core.Position{pos(1, 0)}, true},
		{"WrongOrigin", []core.Position{pos(1, 0), pos(2, 0)}, true},
		{"FullBudget", []core.Position{pos(0, 0), pos(1, 0), pos(2, 0), pos(3, 0), pos(4, 0)}, false},
		{"OverBudget", []core.Position{pos(0, 0), pos(1, 0), pos(2, 0), pos(3, 0), pos(4, 0), pos(5, 0)}, true},
		{"NotAdjacent", []core.Position{pos(0, 0), pos(2, 0)}, true},
		{"ZeroThenJump", []core.Position{pos(0, 0), pos(0, 0), pos(2, 0)}, true},
		{"Impassable", []core.Position{pos(0, 0), pos(0, 1), pos(0, 2)}, true},
		{"OffMap", []core.Position{pos(0, 0), pos(-1, 0)}, true},
		{"ThroughFriendly", []core.Position{pos(0, 0), pos(1, 0), pos(2, 0), pos(2, 1), pos(1, 2)}, false},
		{"IntoEnemy", []core.Position{pos(0, 0), pos(1, 0), pos(2, 0), pos(3, 0), pos(3, 1)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePath(b, inf, tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, core.ErrInvalidPath)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidatePath_TerrainCost(t *testing.T) {
	b := newTestBoard(5, 1)
	b.terrain(catalog.Mountains, pos(1, 0))
	inf := b.place(pos(0, 0), core.NewUnit(1, catalog.Infantry, 1))

	// mountain (3) + plains (1) fits the budget of 4
	assert.NoError(t, ValidatePath(b, inf, []core.Position{pos(0, 0), pos(1, 0), pos(2, 0)}))
	assert.Equal(t, 4, PathCost(b, inf, []core.Position{pos(0, 0), pos(1, 0), pos(2, 0)}))
	assert.Error(t, ValidatePath(b, inf, []core.Position{pos(0, 0), pos(1, 0), pos(2, 0), pos(3, 0)}))

	tank := b.place(pos(4, 0), core.NewUnit(2, catalog.Tank, 1))
	assert.ErrorIs(t, ValidatePath(b, tank, []core.Position{pos(4, 0), pos(3, 0), pos(2, 0), pos(1, 0)}), core.ErrInvalidPath,
		"treads cannot enter mountains")
}

func TestValidatePath_DeployedCannotMove(t *testing.T) {
	b := newTestBoard(3, 1)
	art := core.NewUnit(1, catalog.Artillery, 1)
	art.Deployed = true
	b.place(pos(0, 0), art)

	assert.NoError(t, ValidatePath(b, art, []core.Position{pos(0, 0)}))
	assert.ErrorIs(t, ValidatePath(b, art, []core.Position{pos(0, 0), pos(1, 0)}), core.ErrInvalidPath)
}

func TestValidatePath_NeutralUnitsBlock(t *testing.T) {
	b := newTestBoard(3, 1)
	inf := b.place(pos(0, 0), core.NewUnit(1, catalog.Infantry, 1))
	b.place(pos(1, 0), core.NewUnit(2, catalog.Infantry, core.Neutral))

	assert.ErrorIs(t, ValidatePath(b, inf, []core.Position{pos(0, 0), pos(1, 0), pos(2, 0)}), core.ErrInvalidPath)
}

func TestValidatePath_CarriedUnit(t *testing.T) {
	b := newTestBoard(3, 1)
	cargo := core.NewUnit(5, catalog.Infantry, 1)
	b.units[cargo.ID] = cargo

	assert.ErrorIs(t, ValidatePath(b, cargo, []core.Position{pos(0, 0)}), core.ErrInvalidPath)
}

func TestCanStayAt(t *testing.T) {
	b := newTestBoard(3, 1)
	inf := b.place(pos(0, 0), core.NewUnit(1, catalog.Infantry, 1))
	b.place(pos(1, 0), core.NewUnit(2, catalog.Infantry, 1))

	assert.NoError(t, CanStayAt(b, inf, pos(0, 0)), "own tile")
	assert.NoError(t, CanStayAt(b, inf, pos(2, 0)), "empty tile")
	assert.ErrorIs(t, CanStayAt(b, inf, pos(1, 0)), core.ErrInvalidPath, "friendly occupied")
	assert.ErrorIs(t, CanStayAt(b, inf, pos(9, 9)), core.ErrInvalidPath, "off map")
}

func TestReachableSet_OpenField(t *testing.T) {
	b := newTestBoard(6, 3)
	inf := b.place(pos(0, 0), core.NewUnit(1, catalog.Infantry, 1))

	reach := ReachableSet(b, inf)

	for p := range b.tiles {
		d := pos(0, 0).DistanceTo(p)
		path, ok := reach[p]
		if d > 4 {
			assert.False(t, ok, "%s is beyond the budget", p)
			continue
		}
		require.True(t, ok, "%s should be reachable", p)
		assert.Len(t, path, d+1, "path to %s should be shortest", p)
		assert.NoError(t, ValidatePath(b, inf, path))
		assert.NoError(t, CanStayAt(b, inf, p))
	}
	assert.Equal(t, []core.Position{pos(0, 0)}, reach[pos(0, 0)])
}

func TestReachableSet_PassThroughFriendly(t *testing.T) {
	b := newTestBoard(4, 2)
	b.terrain(catalog.Sea, pos(0, 1), pos(1, 1), pos(2, 1), pos(3, 1))
	inf := b.place(pos(0, 0), core.NewUnit(1, catalog.Infantry, 1))
	b.place(pos(1, 0), core.NewUnit(2, catalog.Tank, 1))

	reach := ReachableSet(b, inf)

	assert.NotContains(t, reach, pos(1, 0), "cannot stop on a friendly unit")
	require.Contains(t, reach, pos(2, 0))
	assert.Equal(t, []core.Position{pos(0, 0), pos(1, 0), pos(2, 0)}, reach[pos(2, 0)])
	assert.Contains(t, reach, pos(3, 0))
}

func TestReachableSet_EnemyBlocks(t *testing.T) {
	b := newTestBoard(4, 2)
	b.terrain(catalog.Sea, pos(0, 1), pos(1, 1), pos(2, 1), pos(3, 1))
	inf := b.place(pos(0, 0), core.NewUnit(1, catalog.Infantry, 1))
	b.place(pos(1, 0), core.NewUnit(2, catalog.Infantry, 2))

	reach := ReachableSet(b, inf)

	assert.Len(t, reach, 1)
	assert.Contains(t, reach, pos(0, 0))
}

func TestReachableSet_CheapestPathWins(t *testing.T) {
	// The direct route east crosses a mountain. A three-step detour
	// through the row below is cheaper and must be found.
	b := newTestBoard(6, 3)
	b.terrain(catalog.Mountains, pos(1, 0))
	inf := b.place(pos(0, 0), core.NewUnit(1, catalog.Infantry, 1))

	reach := ReachableSet(b, inf)

	require.Contains(t, reach, pos(2, 0))
	assert.Equal(t, 3, PathCost(b, inf, reach[pos(2, 0)]))
	require.Contains(t, reach, pos(3, 0))
	assert.Equal(t, 4, PathCost(b, inf, reach[pos(3, 0)]))
	for _, path := range reach {
		assert.NoError(t, ValidatePath(b, inf, path))
	}
}

func TestReachableSet_Deployed(t *testing.T) {
	b := newTestBoard(3, 3)
	art := core.NewUnit(1, catalog.Artillery, 1)
	art.Deployed = true
	b.place(pos(1, 1), art)

	reach := ReachableSet(b, art)

	assert.Equal(t, map[core.Position][]core.Position{pos(1, 1): {pos(1, 1)}}, reach)
}

func TestReachableSet_NotOnMap(t *testing.T) {
	b := newTestBoard(2, 2)
	assert.Empty(t, ReachableSet(b, core.NewUnit(9, catalog.Infantry, 1)))
}
