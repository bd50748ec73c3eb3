package character

import (
	"fmt"

	"github.com/younwookim/samurai-duel/internal/domain/geom"
	"github.com/younwookim/samurai-duel/internal/domain/sprite"
)

// FrameAreas holds the area offsets of an animation, relative to the
// character position and authored for a right-facing character.
type FrameAreas struct {
	// All applies to every frame without an entry in Frames.
	All *geom.Rect
	// Frames overrides All for individual frames.
	Frames map[int]geom.Rect
}

// At returns the offsets active on frame.
func (f FrameAreas) At(frame int) (geom.Rect, bool) {
	if r, ok := f.Frames[frame]; ok {
		return r, true
	}
	if f.All != nil {
		return *f.All, true
	}
	return geom.Rect{}, false
}

// Animation is one image set of a state together with its area tables.
type Animation struct {
	Image  sprite.ImageAttr
	Hit    FrameAreas
	Attack FrameAreas
}

// Archetype is the static content of a fighter: every state's animations.
// States may carry several variants; Attack variants alternate per swing.
type Archetype struct {
	Name   string
	States map[State][]Animation
}

// Validate checks that every state has at least one animation with a source.
func (a *Archetype) Validate() error {
	if a == nil {
		return fmt.Errorf("archetype is required")
	}
	for _, s := range States {
		variants := a.States[s]
		if len(variants) == 0 {
			return fmt.Errorf("%s: no %s animation", a.Name, s)
		}
		for i, anim := range variants {
			if anim.Image.Source == nil {
				return fmt.Errorf("%s: %s variant %d: %w", a.Name, s, i, sprite.ErrNoImageSource)
			}
		}
	}
	return nil
}

// Variants returns the number of animations for s.
func (a *Archetype) Variants(s State) int {
	return len(a.States[s])
}

func (a *Archetype) animation(s State, variant int) (*Animation, bool) {
	variants := a.States[s]
	if variant < 0 || variant >= len(variants) {
		return nil, false
	}
	return &variants[variant], true
}
