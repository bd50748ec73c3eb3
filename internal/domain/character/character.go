// Package character implements a fighter: a sprite driven by a physics body
// and a state machine, with frame-indexed hit and attack areas.
package character

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/younwookim/samurai-duel/internal/domain/clock"
	"github.com/younwookim/samurai-duel/internal/domain/geom"
	"github.com/younwookim/samurai-duel/internal/domain/physics"
	"github.com/younwookim/samurai-duel/internal/domain/sprite"
)

// HealthIndicator displays a character's remaining health, e.g. "80%".
type HealthIndicator interface {
	SetHealth(percent string)
}

// Tuning holds the movement and combat constants of a fighter.
type Tuning struct {
	Gravity      float64
	JumpVelocity float64
	MoveSpeed    float64
	FullHealth   int
	AttackDamage int
	// AttackDelay is the wind-up before a swing can connect.
	AttackDelay time.Duration
}

// DefaultTuning returns the stock fighter constants.
func DefaultTuning() Tuning {
	return Tuning{
		Gravity:      0.2,
		JumpVelocity: -10,
		MoveSpeed:    5,
		FullHealth:   100,
		AttackDamage: 20,
		AttackDelay:  100 * time.Millisecond,
	}
}

// Options configures a new Character.
type Options struct {
	Name      string
	Surface   sprite.Surface
	Clock     clock.Clock
	Canvas    geom.Size
	Bounds    physics.Bounds
	Position  geom.Vec
	Direction sprite.Direction
	Archetype *Archetype
	Tuning    Tuning
	Health    HealthIndicator
	Logger    *log.Logger
}

// Character is a fighter in the arena.
type Character struct {
	name      string
	sprite    *sprite.Sprite
	body      physics.Body
	bounds    physics.Bounds
	archetype *Archetype
	tuning    Tuning
	clock     clock.Clock
	indicator HealthIndicator
	logger    *log.Logger

	state       State
	variant     int
	nextVariant int

	health int

	attackAt  time.Time
	attacking bool

	lastHit AttackID
	wasHit  bool

	enemy *Character
}

// New creates a character at full health in the Idle state.
func New(opts Options) (*Character, error) {
	if err := opts.Archetype.Validate(); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", opts.Name, err)
	}
	if opts.Clock == nil {
		return nil, errors.New("character clock is required")
	}
	if opts.Tuning.FullHealth <= 0 {
		return nil, fmt.Errorf("failed to create %s: full health must be positive", opts.Name)
	}

	idle, _ := opts.Archetype.animation(Idle, 0)
	s, err := sprite.New(sprite.Options{
		Surface:   opts.Surface,
		Clock:     opts.Clock,
		Canvas:    opts.Canvas,
		Position:  opts.Position,
		Basis:     sprite.Center,
		Direction: opts.Direction,
		Image:     idle.Image,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s sprite: %w", opts.Name, err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	c := &Character{
		name:      opts.Name,
		sprite:    s,
		body:      physics.Body{Gravity: opts.Tuning.Gravity},
		bounds:    opts.Bounds,
		archetype: opts.Archetype,
		tuning:    opts.Tuning,
		clock:     opts.Clock,
		indicator: opts.Health,
		logger:    logger,
		state:     Idle,
		health:    opts.Tuning.FullHealth,
	}
	c.reportHealth()
	return c, nil
}

// Pair makes a and b each other's enemy.
func Pair(a, b *Character) {
	a.enemy = b
	b.enemy = a
}

// Name returns the character name.
func (c *Character) Name() string { return c.name }

// Sprite returns the character's sprite.
func (c *Character) Sprite() *sprite.Sprite { return c.sprite }

// Position returns the character center.
func (c *Character) Position() geom.Vec { return c.sprite.Position() }

// Velocity returns the current velocity.
func (c *Character) Velocity() geom.Vec { return c.body.Velocity }

// Health returns the remaining health.
func (c *Character) Health() int { return c.health }

// State returns the current state.
func (c *Character) State() State { return c.state }

// Variant returns the animation variant of the current state.
func (c *Character) Variant() int { return c.variant }

// Facing returns the way the character faces.
func (c *Character) Facing() sprite.Direction { return c.sprite.Direction() }

// Enemy returns the bound opponent, or nil.
func (c *Character) Enemy() *Character { return c.enemy }

// IsAirborne reports whether the character is above the floor.
func (c *Character) IsAirborne() bool {
	return c.bounds.Airborne(c.sprite.Position())
}

func (c *Character) animation() *Animation {
	anim, _ := c.archetype.animation(c.state, c.variant)
	return anim
}

// setState switches the animation. Re-entering the active state and variant
// is a no-op unless force is set.
func (c *Character) setState(s State, variant int, force bool) {
	if !force && s == c.state && variant == c.variant {
		return
	}
	anim, ok := c.archetype.animation(s, variant)
	if !ok {
		panic(fmt.Sprintf("%s: no %s variant %d", c.name, s, variant))
	}
	if err := c.sprite.SetImage(anim.Image); err != nil {
		panic(fmt.Sprintf("%s: %s variant %d: %v", c.name, s, variant, err))
	}
	c.state = s
	c.variant = variant
}

// Jump launches a grounded character, cancelling any attack in flight.
func (c *Character) Jump() {
	if c.IsAirborne() {
		return
	}
	c.attacking = false
	c.setState(Jump, 0, false)
	c.body.Velocity.Y = c.tuning.JumpVelocity
}

// MoveLeft starts walking left.
func (c *Character) MoveLeft() {
	c.move(-c.tuning.MoveSpeed)
}

// MoveRight starts walking right.
func (c *Character) MoveRight() {
	c.move(c.tuning.MoveSpeed)
}

func (c *Character) move(vx float64) {
	if c.IsAirborne() || c.attacking {
		return
	}
	c.setState(Move, 0, false)
	c.body.Velocity.X = vx
}

// StopMove halts a grounded character.
func (c *Character) StopMove() {
	if c.IsAirborne() || c.attacking {
		return
	}
	c.setState(Idle, 0, false)
	c.body.Velocity.X = 0
}

// Attack starts the next attack variant in sequence.
func (c *Character) Attack() {
	if c.attacking {
		return
	}
	variant := c.nextVariant
	if n := c.archetype.Variants(Attack); n > 0 {
		c.nextVariant = (variant + 1) % n
	}
	c.startAttack(variant)
}

// AttackWith starts a specific attack variant. It reports false when the
// variant does not exist or an attack is already in flight.
func (c *Character) AttackWith(variant int) bool {
	if c.attacking || variant < 0 || variant >= c.archetype.Variants(Attack) {
		return false
	}
	c.startAttack(variant)
	return true
}

func (c *Character) startAttack(variant int) {
	c.attackAt = c.clock.Now()
	c.attacking = true
	c.setState(Attack, variant, true)
	if !c.IsAirborne() {
		c.body.Velocity.X = 0
	}
}

// AttackID identifies the swing in flight; it changes with every attack.
func (c *Character) AttackID() AttackID {
	return AttackID(c.attackAt.UnixMilli())
}

func (c *Character) attackElapsed() time.Duration {
	return c.clock.Now().Sub(c.attackAt)
}

func (c *Character) attackDuration() time.Duration {
	return c.sprite.Image().AnimationDuration
}

// IsAttacking reports whether the swing is past its wind-up and can connect.
func (c *Character) IsAttacking() bool {
	if !c.attacking || c.state != Attack {
		return false
	}
	elapsed := c.attackElapsed()
	return elapsed > c.tuning.AttackDelay && elapsed <= c.attackDuration()
}

// IsFinishedAttack reports whether the swing in flight has run its course.
func (c *Character) IsFinishedAttack() bool {
	return c.attacking && c.attackElapsed() > c.attackDuration()
}

// FinishAttack ends the swing and returns to locomotion.
func (c *Character) FinishAttack() {
	c.attacking = false
	c.settle()
}

// settle picks the locomotion state matching the current motion.
func (c *Character) settle() {
	switch {
	case c.IsAirborne() && c.body.Velocity.Y > 0:
		c.setState(Fall, 0, false)
	case c.IsAirborne():
		c.setState(Jump, 0, false)
	case c.body.Velocity.X != 0:
		c.setState(Move, 0, false)
	default:
		c.setState(Idle, 0, false)
	}
}

// flinchOver reports whether the hit animation has played once.
func (c *Character) flinchOver() bool {
	img := c.sprite.Image()
	play := img.PlayDuration()
	if play == 0 {
		play = img.AnimationDuration
	}
	return c.sprite.Elapsed() > play
}

// Update advances the character by one frame: physics, facing, animation,
// combat, then attack completion.
func (c *Character) Update() {
	pos, step := c.body.Integrate(c.sprite.Position(), c.bounds)
	c.sprite.SetPosition(pos)

	switch {
	case step.Landed:
		c.attacking = false
		c.setState(Idle, 0, false)
	case c.IsAirborne() && !c.attacking:
		if c.body.Velocity.Y > 0 {
			c.setState(Fall, 0, false)
		} else {
			c.setState(Jump, 0, false)
		}
	}
	if step.HitWall && !c.IsAirborne() && c.state == Move {
		c.setState(Idle, 0, false)
	}
	if c.state == Hit && c.flinchOver() {
		c.settle()
	}

	if c.enemy != nil {
		c.faceEnemy()
	}

	c.sprite.Update()

	if c.enemy != nil {
		c.strike()
	}

	if c.IsFinishedAttack() {
		c.FinishAttack()
	}
}
