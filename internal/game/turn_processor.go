package game

import (
	"github.com/mitchelldurbincs/HexTactics/internal/game/core"
	"github.com/mitchelldurbincs/HexTactics/internal/game/events"
	"github.com/mitchelldurbincs/HexTactics/internal/game/states"
)

// Start moves the game from Pregame to InProgress and begins the first
// player's turn.
func (g *Game) Start(sink events.Sink) error {
	phase := g.machine.Current()
	if phase != states.PhasePregame {
		return core.WrapGameStateError(g.turn, phase.String(), core.ErrGameAlreadyStarted)
	}

	b := g.begin()
	b.transition(states.PhaseInProgress, "game started")
	b.round = 1
	b.active = 0
	g.startTurn(b)

	if err := b.commit(sink); err != nil {
		return err
	}
	g.logger.Info().
		Int("players", len(g.players)).
		Int("first_player", int(g.players[g.active].Number)).
		Msg("Game started")
	return nil
}

// EndTurn finishes the active player's turn and either starts the next
// alive player's turn or ends the game.
func (g *Game) EndTurn(sink events.Sink) error {
	if err := g.requireInProgress(); err != nil {
		return err
	}
	b := g.begin()
	g.finishTurn(b)
	return g.commitTurn(b, sink)
}

// Surrender hands every tile and unit of the active player to neutral and
// ends their turn.
func (g *Game) Surrender(sink events.Sink) error {
	if err := g.requireInProgress(); err != nil {
		return err
	}
	b := g.begin()
	player := b.activePlayer().Number

	for t := range b.eachTile() {
		if t.Owner == player {
			t.Owner = core.Neutral
			b.setTile(t)
		}
	}
	for u := range b.eachUnit() {
		if u.Owner == player {
			u.Owner = core.Neutral
			u.Capturing = false
			b.setUnit(u)
		}
	}
	b.emit(events.NewSurrenderEvent(g.id, player))
	turn := b.turn

	g.finishTurn(b)
	if err := g.commitTurn(b, sink); err != nil {
		return err
	}
	g.logger.Info().Int("player", int(player)).Int("turn", turn).Msg("Player surrendered")
	return nil
}

func (g *Game) commitTurn(b *batch, sink events.Sink) error {
	if err := b.commit(sink); err != nil {
		return err
	}
	if g.machine.Current().IsTerminal() {
		g.logger.Info().Int("round", g.round).Int("turn", g.turn).Msg("Game finished")
	}
	return nil
}

// startTurn stages the beginning of the active player's turn.
func (g *Game) startTurn(b *batch) {
	b.turn++
	p := b.activePlayer()
	b.emit(events.NewStartTurnEvent(g.id, p.Number, b.round, b.turn))
	g.production.startOfTurn(b, b.active)
}

// finishTurn stages the end of the active player's turn.
func (g *Game) finishTurn(b *batch) {
	current := b.activePlayer().Number

	for u := range b.eachUnit() {
		if u.Moved {
			u.Moved = false
			b.setUnit(u)
		}
	}
	b.emit(events.NewEndTurnEvent(g.id, current))

	players := b.playerList()
	numbers := make([]core.PlayerNumber, len(players))
	for i, p := range players {
		numbers[i] = p.Number
	}
	alive := g.win.EvaluateAlive(numbers, b.eachTile(), b.eachUnit())
	for i, p := range players {
		if p.Alive != alive[p.Number] {
			p.Alive = alive[p.Number]
			b.setPlayer(i, p)
			players[i] = p
			if !p.Alive {
				g.logger.Info().Int("player", int(p.Number)).Msg("Player eliminated")
			}
		}
	}

	if over, winner := g.win.CheckGameOver(players); over {
		reason := "no players left"
		if winner != core.Neutral {
			b.emit(events.NewWinGameEvent(g.id, winner))
			reason = "last player standing"
		}
		b.transition(states.PhaseFinished, reason)
		b.active = -1
		return
	}

	next := nextAlive(players, b.active)
	if next <= b.active {
		b.round++
	}
	b.active = next
	g.startTurn(b)
}

// nextAlive returns the index of the first alive player after from, cycling.
// The caller guarantees at least one player is alive.
func nextAlive(players []core.Player, from int) int {
	for step := 1; step <= len(players); step++ {
		i := (from + step) % len(players)
		if players[i].Alive {
			return i
		}
	}
	return from
}
