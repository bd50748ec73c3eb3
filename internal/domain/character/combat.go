package character

import (
	"strconv"

	"github.com/younwookim/samurai-duel/internal/domain/geom"
	"github.com/younwookim/samurai-duel/internal/domain/sprite"
)

// AttackID identifies one swing for damage de-duplication.
type AttackID int64

func (c *Character) area(offsets geom.Rect) geom.Rect {
	sign := c.Facing().Sign()
	p := c.Position()
	return geom.Rect{
		Left:   p.X + offsets.Left*sign,
		Top:    p.Y + offsets.Top,
		Right:  p.X + offsets.Right*sign,
		Bottom: p.Y + offsets.Bottom,
	}.Normalize()
}

// HitArea returns the vulnerable region on the current frame, if any.
func (c *Character) HitArea() (geom.Rect, bool) {
	offsets, ok := c.animation().Hit.At(c.sprite.Frame())
	if !ok {
		return geom.Rect{}, false
	}
	return c.area(offsets), true
}

// AttackArea returns the striking region on the current frame, if any.
func (c *Character) AttackArea() (geom.Rect, bool) {
	offsets, ok := c.animation().Attack.At(c.sprite.Frame())
	if !ok {
		return geom.Rect{}, false
	}
	return c.area(offsets), true
}

func (c *Character) faceEnemy() {
	if c.enemy.Position().X > c.Position().X {
		c.sprite.SetDirection(sprite.Right)
	} else {
		c.sprite.SetDirection(sprite.Left)
	}
}

func (c *Character) strike() {
	if !c.IsAttacking() {
		return
	}
	attack, ok := c.AttackArea()
	if !ok {
		return
	}
	hit, ok := c.enemy.HitArea()
	if !ok {
		return
	}
	if attack.Overlaps(hit) {
		c.enemy.TakeDamage(c.AttackID(), c.tuning.AttackDamage)
	}
}

// TakeDamage applies damage from swing id. Repeated ids are ignored.
// A surviving, grounded defender that is not attacking flinches.
func (c *Character) TakeDamage(id AttackID, damage int) {
	if c.wasHit && id == c.lastHit {
		return
	}
	c.lastHit = id
	c.wasHit = true
	alive := c.health > 0

	c.health -= damage
	if c.health < 0 {
		c.health = 0
	}
	c.reportHealth()

	if c.health == 0 {
		if alive {
			c.logger.Printf("%s is dead", c.name)
		}
		return
	}
	if !c.IsAirborne() && !c.attacking {
		c.setState(Hit, 0, true)
	}
}

// IsDead reports whether health is exhausted.
func (c *Character) IsDead() bool {
	return c.health <= 0
}

func (c *Character) reportHealth() {
	if c.indicator == nil {
		return
	}
	percent := float64(c.health) * 100 / float64(c.tuning.FullHealth)
	c.indicator.SetHealth(strconv.FormatFloat(percent, 'f', -1, 64) + "%")
}
