// Package keyboard turns ebiten key transitions into input events.
package keyboard

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/samurai-duel/internal/domain/input"
)

// ParseKey looks up an ebiten key by its name, such as "Space" or "ArrowUp".
func ParseKey(name string) (ebiten.Key, error) {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

type binding struct {
	action input.Action
	keys   []ebiten.Key
}

// Keymap binds keys to actions. One key may serve several actions.
type Keymap struct {
	bindings []binding
}

// NewKeymap builds a keymap from key names per action name.
func NewKeymap(names map[string][]string) (*Keymap, error) {
	for name := range names {
		if _, err := input.ParseAction(name); err != nil {
			return nil, err
		}
	}

	km := &Keymap{}
	for _, a := range input.Actions {
		var keys []ebiten.Key
		for _, n := range names[string(a)] {
			k, err := ParseKey(n)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", a, err)
			}
			keys = append(keys, k)
		}
		if len(keys) > 0 {
			km.bindings = append(km.bindings, binding{action: a, keys: keys})
		}
	}
	return km, nil
}

// Poll returns this tick's key transitions as events, in action order.
func (k *Keymap) Poll() []input.Event {
	return k.events(inpututil.IsKeyJustPressed, inpututil.IsKeyJustReleased)
}

func (k *Keymap) events(pressed, released func(ebiten.Key) bool) []input.Event {
	var events []input.Event
	for _, b := range k.bindings {
		var down, up bool
		for _, key := range b.keys {
			down = down || pressed(key)
			up = up || released(key)
		}
		if down {
			events = append(events, input.Press(b.action))
		}
		if up {
			events = append(events, input.Release(b.action))
		}
	}
	return events
}
