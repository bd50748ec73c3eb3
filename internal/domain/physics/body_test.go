package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/younwookim/samurai-duel/internal/domain/geom"
)

var testBounds = Bounds{Floor: 450, Width: 1024}

func TestBody_GravityWhileAirborne(t *testing.T) {
	b := &Body{Gravity: 0.2}

	pos, step := b.Integrate(geom.Vec{X: 100, Y: 50}, testBounds)

	assert.False(t, step.Landed)
	assert.InDelta(t, 0.2, b.Velocity.Y, 1e-9)
	assert.InDelta(t, 50.2, pos.Y, 1e-9)
}

func TestBody_Landing(t *testing.T) {
	b := &Body{Gravity: 0.2, Velocity: geom.Vec{X: 5, Y: 9}}

	pos, step := b.Integrate(geom.Vec{X: 100, Y: 445}, testBounds)

	assert.True(t, step.Landed)
	assert.Equal(t, geom.Vec{}, b.Velocity, "landing zeroes both axes before moving")
	assert.Equal(t, geom.Vec{X: 100, Y: 450}, pos)
}

func TestBody_LandingIsIdempotent(t *testing.T) {
	b := &Body{Gravity: 0.2}
	pos := geom.Vec{X: 300, Y: 450}

	for i := 0; i < 100; i++ {
		var step Step
		pos, step = b.Integrate(pos, testBounds)
		assert.False(t, step.Landed)
	}

	assert.Equal(t, geom.Vec{X: 300, Y: 450}, pos)
	assert.Equal(t, geom.Vec{}, b.Velocity)
}

func TestBody_Walls(t *testing.T) {
	tests := []struct {
		name  string
		x, vx float64
		wall  bool
		wantX float64
	}{
		{"left wall", 2, -5, true, 2},
		{"right wall", 1022, 5, true, 1022},
		{"exactly at right wall", 1019, 5, false, 1024},
		{"free", 500, 5, false, 505},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Body{Gravity: 0.2, Velocity: geom.Vec{X: tt.vx}}

			pos, step := b.Integrate(geom.Vec{X: tt.x, Y: 450}, testBounds)

			assert.Equal(t, tt.wall, step.HitWall)
			assert.Equal(t, tt.wantX, pos.X)
			if tt.wall {
				assert.Zero(t, b.Velocity.X)
			}
		})
	}
}

func TestBody_JumpArc(t *testing.T) {
	b := &Body{Gravity: 0.2, Velocity: geom.Vec{Y: -10}}
	pos := geom.Vec{X: 200, Y: 450}

	prev := b.Velocity.Y
	ticks := 0
	for {
		var step Step
		airborne := testBounds.Airborne(pos)
		pos, step = b.Integrate(pos, testBounds)
		ticks++
		if step.Landed {
			break
		}
		if airborne {
			assert.Greater(t, b.Velocity.Y, prev, "vertical velocity must strictly increase")
		}
		prev = b.Velocity.Y
		if ticks > 1000 {
			t.Fatal("body never landed")
		}
	}

	assert.Equal(t, 450.0, pos.Y)
	assert.Equal(t, geom.Vec{}, b.Velocity)
}

func TestBody_FloorTestUsesVelocityBeforeGravity(t *testing.T) {
	b := &Body{Gravity: 0.2, Velocity: geom.Vec{Y: 0.9}}

	pos, step := b.Integrate(geom.Vec{X: 100, Y: 449}, testBounds)

	assert.False(t, step.Landed, "449 + 0.9 does not cross the floor")
	assert.InDelta(t, 1.1, b.Velocity.Y, 1e-9)
	assert.InDelta(t, 450.1, pos.Y, 1e-9)

	pos, step = b.Integrate(pos, testBounds)

	assert.True(t, step.Landed)
	assert.Equal(t, geom.Vec{}, b.Velocity)
	assert.Equal(t, testBounds.Floor, pos.Y)
}

func TestBody_SettlesOnFloor(t *testing.T) {
	b := &Body{Gravity: 0.2}
	pos := geom.Vec{X: 100, Y: 449}

	landings := 0
	for i := 0; i < 20; i++ {
		var step Step
		pos, step = b.Integrate(pos, testBounds)
		if step.Landed {
			landings++
		}
		assert.Less(t, pos.Y, testBounds.Floor+1, "tick %d", i)
	}

	assert.Equal(t, 1, landings)
	assert.Equal(t, testBounds.Floor, pos.Y)
	assert.Equal(t, geom.Vec{}, b.Velocity)
}
