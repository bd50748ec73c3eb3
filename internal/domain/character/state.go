package character

import "fmt"

// State is the locomotion/combat state that selects the current animation.
type State int

const (
	Idle State = iota
	Jump
	Fall
	Move
	Hit
	Attack
)

// States lists every state an archetype must animate.
var States = []State{Idle, Jump, Fall, Move, Hit, Attack}

// String returns the config name of the state.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Jump:
		return "jump"
	case Fall:
		return "fall"
	case Move:
		return "move"
	case Hit:
		return "hit"
	case Attack:
		return "attack"
	default:
		return "unknown"
	}
}

// ParseState converts a config name into a State.
func ParseState(name string) (State, error) {
	for _, s := range States {
		if s.String() == name {
			return s, nil
		}
	}
	return Idle, fmt.Errorf("unknown character state %q", name)
}
