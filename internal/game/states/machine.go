package states

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Transition represents a state transition in the history
type Transition struct {
	From   GamePhase `json:"from"`
	To     GamePhase `json:"to"`
	Turn   int       `json:"turn"`
	Reason string    `json:"reason"`
}

// Machine tracks the phase of one game. It is not safe for concurrent use;
// the owning game serializes access.
type Machine struct {
	current GamePhase
	history []Transition
	logger  zerolog.Logger
}

// NewMachine creates a machine positioned at phase
func NewMachine(phase GamePhase, logger zerolog.Logger) *Machine {
	return &Machine{
		current: phase,
		logger:  logger.With().Str("component", "state_machine").Logger(),
	}
}

// Current returns the current game phase
func (m *Machine) Current() GamePhase {
	return m.current
}

// CanTransitionTo checks if a transition to the target phase is allowed
func (m *Machine) CanTransitionTo(target GamePhase) bool {
	return m.current.CanTransitionTo(target)
}

// TransitionTo moves the machine to target, recording the turn at which it happened
func (m *Machine) TransitionTo(target GamePhase, turn int, reason string) error {
	if !m.current.CanTransitionTo(target) {
		return fmt.Errorf("invalid transition from %s to %s", m.current, target)
	}

	m.history = append(m.history, Transition{From: m.current, To: target, Turn: turn, Reason: reason})
	previous := m.current
	m.current = target

	m.logger.Info().
		Str("from_phase", previous.String()).
		Str("to_phase", target.String()).
		Int("turn", turn).
		Str("reason", reason).
		Msg("State transition completed")
	return nil
}

// History returns a copy of the transition history
func (m *Machine) History() []Transition {
	history := make([]Transition, len(m.history))
	copy(history, m.history)
	return history
}

// Restore replaces the machine's phase and history, for rebuilding a game from a snapshot
func (m *Machine) Restore(phase GamePhase, history []Transition) {
	m.current = phase
	m.history = append(m.history[:0], history...)
}
