package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/HexTactics/internal/game/catalog"
	"github.com/mitchelldurbincs/HexTactics/internal/game/core"
	"github.com/mitchelldurbincs/HexTactics/internal/game/events"
	"github.com/mitchelldurbincs/HexTactics/internal/game/states"
	"github.com/mitchelldurbincs/HexTactics/internal/testutil"
)

func snapshotScenario() *testutil.Scenario {
	s := testutil.NewScenario(5, 3).
		Terrain(catalog.Base, p(0, 0)).
		Terrain(catalog.City, p(4, 2)).
		Own(1, p(0, 0)).
		Own(2, p(4, 2))
	s.Place(p(1, 0), catalog.Infantry, 1)
	apc := s.Place(p(1, 1), catalog.APC, 1)
	s.Load(apc, catalog.Infantry, 1)
	s.Place(p(3, 1), catalog.Infantry, 2)
	return s
}

func TestSnapshot_RoundTrip(t *testing.T) {
	g, rec := startedGame(t, snapshotScenario(), 500)
	require.NoError(t, g.MoveAndWait(rec, 1, testutil.Path(1, 0, 2, 0)))

	data, err := json.Marshal(g.Snapshot())
	require.NoError(t, err)

	var decoded Snapshot
	require.NoError(t, json.Unmarshal(data, &decoded))
	restored, err := Restore(decoded)
	require.NoError(t, err)

	assert.Equal(t, g.Snapshot(), restored.Snapshot())
	assert.Equal(t, testGameID, restored.ID())
	assert.Equal(t, states.PhaseInProgress, restored.Phase())
	assert.Len(t, restored.History(), 1)

	// Both games answer the next action identically.
	a, b := events.NewRecorder(), events.NewRecorder()
	require.NoError(t, g.MoveAndUnload(a, 2, testutil.Path(1, 1, 2, 1), 3, p(2, 2)))
	require.NoError(t, restored.MoveAndUnload(b, 2, testutil.Path(1, 1, 2, 1), 3, p(2, 2)))
	assert.Equal(t, a.Events(), b.Events())
	assert.Equal(t, g.Snapshot(), restored.Snapshot())

	require.NoError(t, g.Build(nil, p(0, 0), catalog.Infantry))
	require.NoError(t, restored.Build(nil, p(0, 0), catalog.Infantry))
	assert.Equal(t, g.Snapshot(), restored.Snapshot(), "unit ids stay in step")
}

func TestSnapshot_IsDetached(t *testing.T) {
	g, _ := startedGame(t, snapshotScenario(), 0)
	snap := g.Snapshot()

	snap.Tiles[0].Owner = 2
	snap.Players[0].Funds = 99999
	for i := range snap.Units {
		if len(snap.Units[i].Carried) > 0 {
			snap.Units[i].Carried[0] = 42
		}
	}

	fresh := g.Snapshot()
	assert.Equal(t, core.PlayerNumber(1), fresh.Tiles[0].Owner)
	assert.NotEqual(t, 99999, fresh.Players[0].Funds)
	apc, _ := g.Unit(2)
	assert.Equal(t, []core.UnitID{3}, apc.Carried)
}

func TestRestore_Pregame(t *testing.T) {
	g, err := New(mapOf(snapshotScenario(), 100), []int64{1, 2}, WithID(testGameID))
	require.NoError(t, err)

	restored, err := Restore(g.Snapshot())
	require.NoError(t, err)
	assert.Equal(t, states.PhasePregame, restored.Phase())
	require.NoError(t, restored.Start(nil))
	assert.Equal(t, 1, restored.Turn())
}

func TestRestore_Invalid(t *testing.T) {
	g, _ := startedGame(t, snapshotScenario(), 0)

	tests := []struct {
		name   string
		mutate func(s *Snapshot)
	}{
		{"UnknownPhase", func(s *Snapshot) { s.Phase = states.GamePhase(9) }},
		{"NoPlayers", func(s *Snapshot) { s.Players = nil }},
		{"PlayerNumbering", func(s *Snapshot) { s.Players[1].Number = 5 }},
		{"NegativeFunds", func(s *Snapshot) { s.Players[0].Funds = -1 }},
		{"ActiveOutOfRange", func(s *Snapshot) { s.Active = 2 }},
		{"ActiveWhenFinished", func(s *Snapshot) { s.Phase = states.PhaseFinished }},
		{"StaleNextUnitID", func(s *Snapshot) { s.NextUnitID = 2 }},
		{"BadRules", func(s *Snapshot) { s.Rules.DefenseStep = 200 }},
		{"MissingOccupant", func(s *Snapshot) { s.Tiles[0].Unit = 77 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := g.Snapshot()
			tt.mutate(&snap)
			_, err := Restore(snap)
			assert.ErrorIs(t, err, core.ErrInvalidMap)
		})
	}
}
