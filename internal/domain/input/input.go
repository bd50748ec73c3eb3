// Package input defines the logical actions a player can trigger and a
// synchronous event bus that delivers them to subscribers.
package input

import "fmt"

// Action is a logical control, independent of the physical key bound to it.
type Action string

const (
	ActionStart  Action = "start"
	ActionJump   Action = "jump"
	ActionLeft   Action = "left"
	ActionRight  Action = "right"
	ActionAttack Action = "attack"
	ActionDebug  Action = "debug"
)

// Actions lists every known action in binding order.
var Actions = []Action{ActionStart, ActionJump, ActionLeft, ActionRight, ActionAttack, ActionDebug}

// ParseAction converts a config or replay name into an Action.
func ParseAction(name string) (Action, error) {
	for _, a := range Actions {
		if string(a) == name {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown action %q", name)
}

// Event is a press or release of an action.
type Event struct {
	Action  Action
	Pressed bool
}

// Press returns a press event for a.
func Press(a Action) Event {
	return Event{Action: a, Pressed: true}
}

// Release returns a release event for a.
func Release(a Action) Event {
	return Event{Action: a}
}

// Handler receives input events.
type Handler func(Event)

// Source delivers input events to subscribers.
// The returned function removes the subscription.
type Source interface {
	Subscribe(h Handler) (unsubscribe func())
}
