package game

import (
	"fmt"
	"slices"

	"github.com/mitchelldurbincs/HexTactics/internal/game/core"
	"github.com/mitchelldurbincs/HexTactics/internal/game/states"
)

// Snapshot captures the full state of the game. The result shares no
// memory with g.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		ID:         g.id,
		Rules:      g.rules,
		Phase:      g.machine.Current(),
		History:    g.machine.History(),
		Tiles:      g.Tiles(),
		Units:      g.sortedUnits(),
		Players:    g.Players(),
		Active:     g.active,
		Round:      g.round,
		Turn:       g.turn,
		NextUnitID: g.nextUnitID,
	}
}

// Restore rebuilds a game from a snapshot, recomputing every index. The
// snapshot's id and rules win over WithID and WithRules.
func Restore(s Snapshot, opts ...Option) (*Game, error) {
	opts = append(opts, WithID(s.ID), WithRules(s.Rules))
	o := buildOptions(opts)
	if err := o.rules.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", core.ErrInvalidMap, err)
	}
	if !s.Phase.Valid() {
		return nil, invalidMap("unknown phase %d", s.Phase)
	}
	if len(s.Players) == 0 {
		return nil, invalidMap("no players")
	}
	for i, p := range s.Players {
		if p.Number != core.PlayerNumber(i+1) {
			return nil, invalidMap("player at index %d has number %d", i, p.Number)
		}
		if p.Funds < 0 {
			return nil, invalidMap("player %d has negative funds", p.Number)
		}
	}
	inTurn := s.Phase == states.PhaseInProgress
	if inTurn && (s.Active < 0 || s.Active >= len(s.Players)) {
		return nil, invalidMap("active player index %d out of range", s.Active)
	}
	if !inTurn && s.Active != -1 {
		return nil, invalidMap("active player %d set outside play", s.Active)
	}

	g := newGame(o)
	if err := g.load(s.Tiles, s.Units, len(s.Players)); err != nil {
		return nil, err
	}
	if s.NextUnitID < g.nextUnitID {
		return nil, invalidMap("next unit id %d is not above every unit id", s.NextUnitID)
	}
	g.nextUnitID = s.NextUnitID
	g.players = slices.Clone(s.Players)
	g.active = s.Active
	g.round = s.Round
	g.turn = s.Turn
	g.machine.Restore(s.Phase, s.History)

	g.logger.Info().
		Str("phase", s.Phase.String()).
		Int("turn", s.Turn).
		Msg("Game restored")
	return g, nil
}
