package states

import "fmt"

// GamePhase represents the current phase of a game
type GamePhase int

const (
	// PhasePregame - Game constructed from a map, no turn started yet
	PhasePregame GamePhase = iota

	// PhaseInProgress - Exactly one player is in turn
	PhaseInProgress

	// PhaseFinished - Final state, the game never changes again
	PhaseFinished
)

// String returns the string representation of a GamePhase
func (p GamePhase) String() string {
	switch p {
	case PhasePregame:
		return "Pregame"
	case PhaseInProgress:
		return "InProgress"
	case PhaseFinished:
		return "Finished"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// Valid reports whether p is one of the defined phases
func (p GamePhase) Valid() bool {
	return p >= PhasePregame && p <= PhaseFinished
}

// IsTerminal returns true if the phase represents a terminal state
func (p GamePhase) IsTerminal() bool {
	return p == PhaseFinished
}

// CanReceiveActions returns true if the game can process player actions in this phase
func (p GamePhase) CanReceiveActions() bool {
	return p == PhaseInProgress
}

// AllowedTransitions returns the valid phases this phase can transition to
func (p GamePhase) AllowedTransitions() []GamePhase {
	switch p {
	case PhasePregame:
		return []GamePhase{PhaseInProgress}
	case PhaseInProgress:
		return []GamePhase{PhaseFinished}
	default:
		return []GamePhase{}
	}
}

// CanTransitionTo checks if a transition from this phase to the target phase is allowed
func (p GamePhase) CanTransitionTo(target GamePhase) bool {
	for _, phase := range p.AllowedTransitions() {
		if phase == target {
			return true
		}
	}
	return false
}

// ParsePhase converts a string to a GamePhase
func ParsePhase(s string) (GamePhase, error) {
	switch s {
	case "Pregame":
		return PhasePregame, nil
	case "InProgress":
		return PhaseInProgress, nil
	case "Finished":
		return PhaseFinished, nil
	default:
		return PhasePregame, fmt.Errorf("unknown game phase %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (p GamePhase) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid game phase %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *GamePhase) UnmarshalText(text []byte) error {
	parsed, err := ParsePhase(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
