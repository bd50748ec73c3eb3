// Package physics integrates a single body under gravity against a flat floor
// and the two arena walls.
package physics

import "github.com/younwookim/samurai-duel/internal/domain/geom"

// Bounds is the playable region: x in [0, Width], feet at or above Floor.
type Bounds struct {
	Floor float64
	Width float64
}

// Step reports what happened during one integration.
type Step struct {
	Landed  bool
	HitWall bool
}

// Body holds velocity and the gravity applied while airborne.
type Body struct {
	Velocity geom.Vec
	Gravity  float64
}

// Airborne reports whether pos is above the floor.
func (b Bounds) Airborne(pos geom.Vec) bool {
	return pos.Y < b.Floor
}

// Integrate advances pos by one tick and returns the new position.
//
// A tick whose current velocity would carry the body past the floor zeroes
// both velocity axes and snaps to the floor. Otherwise an airborne body
// accelerates under gravity. A tick that would leave the walls zeroes
// horizontal velocity.
func (b *Body) Integrate(pos geom.Vec, bounds Bounds) (geom.Vec, Step) {
	var step Step

	if pos.Y+b.Velocity.Y > bounds.Floor {
		b.Velocity = geom.Vec{}
		pos.Y = bounds.Floor
		step.Landed = true
	} else if bounds.Airborne(pos) {
		b.Velocity.Y += b.Gravity
	}

	if next := pos.X + b.Velocity.X; next < 0 || next > bounds.Width {
		b.Velocity.X = 0
		step.HitWall = true
	}

	pos.X += b.Velocity.X
	pos.Y += b.Velocity.Y
	return pos, step
}
