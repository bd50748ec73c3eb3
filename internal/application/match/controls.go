package match

import "github.com/younwookim/samurai-duel/internal/domain/input"

// Fighter is the set of intents a player can issue.
type Fighter interface {
	Jump()
	MoveLeft()
	MoveRight()
	StopMove()
	Attack()
}

// Controls turns input events into fighter intents. Releasing one direction
// while the other is still held walks that way instead of stopping.
type Controls struct {
	fighter     Fighter
	left, right bool
}

// NewControls creates controls for f.
func NewControls(f Fighter) *Controls {
	return &Controls{fighter: f}
}

// Handle applies one input event.
func (c *Controls) Handle(ev input.Event) {
	switch ev.Action {
	case input.ActionJump:
		if ev.Pressed {
			c.fighter.Jump()
		}
	case input.ActionAttack:
		if ev.Pressed {
			c.fighter.Attack()
		}
	case input.ActionLeft:
		c.left = ev.Pressed
		c.steer(ev.Pressed, c.fighter.MoveLeft, c.right, c.fighter.MoveRight)
	case input.ActionRight:
		c.right = ev.Pressed
		c.steer(ev.Pressed, c.fighter.MoveRight, c.left, c.fighter.MoveLeft)
	}
}

func (c *Controls) steer(pressed bool, move func(), otherHeld bool, other func()) {
	switch {
	case pressed:
		move()
	case otherHeld:
		other()
	default:
		c.fighter.StopMove()
	}
}
