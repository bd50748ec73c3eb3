// Package camera provides sprite effectors that pan and zoom the arena
// around a moving origin.
package camera

import (
	"math"

	"github.com/younwookim/samurai-duel/internal/domain/geom"
	"github.com/younwookim/samurai-duel/internal/domain/sprite"
)

// Movement is a zoom rate around an origin in canvas pixels.
type Movement struct {
	Origin geom.Vec
	Rate   float64
}

// MovementFunc computes the movement for the frame being drawn.
type MovementFunc func() Movement

// Positioner is anything the camera can follow.
type Positioner interface {
	Position() geom.Vec
}

// NewEffector zooms by rate around origin. Sprites measured from the right
// or bottom canvas edge are zoomed in mirrored coordinates so they stay
// anchored to that edge.
func NewEffector(calc MovementFunc) sprite.Effector {
	return sprite.Effector{
		X: func(s *sprite.Sprite, v float64) float64 {
			m := calc()
			return zoom(v, m.Origin.X, m.Rate, s.Canvas().Width, s.Basis().FromRight())
		},
		Y: func(s *sprite.Sprite, v float64) float64 {
			m := calc()
			return zoom(v, m.Origin.Y, m.Rate, s.Canvas().Height, s.Basis().FromBottom())
		},
		Width: func(_ *sprite.Sprite, v float64) float64 {
			return v * calc().Rate
		},
		Height: func(_ *sprite.Sprite, v float64) float64 {
			return v * calc().Rate
		},
	}
}

func zoom(v, origin, rate, extent float64, mirrored bool) float64 {
	shift := origin*rate - origin
	if mirrored {
		return extent - extent*rate + v*rate + shift
	}
	return v*rate - shift
}

// Follow keeps both fighters in view: the origin is their midpoint and the
// rate grows as they close in, between 1 and maxRate.
func Follow(canvasWidth float64, a, b Positioner, minRate, maxRate float64) MovementFunc {
	return func() Movement {
		pa, pb := a.Position(), b.Position()
		dx := math.Abs(pa.X - pb.X)
		rate := math.Max(1, math.Min(canvasWidth/dx*minRate, maxRate))
		return Movement{
			Origin: geom.Vec{X: (pa.X + pb.X) / 2, Y: (pa.Y + pb.Y) / 2},
			Rate:   rate,
		}
	}
}
