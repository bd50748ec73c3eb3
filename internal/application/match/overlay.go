package match

import (
	"image/color"

	"github.com/younwookim/samurai-duel/internal/domain/character"
)

var (
	hitAreaColor    = color.RGBA{0, 200, 0, 96}
	attackAreaColor = color.RGBA{220, 0, 0, 128}
)

func (m *Match) drawAreas() {
	for _, c := range []*character.Character{m.player, m.enemy} {
		project := c.Sprite().Project
		if r, ok := c.HitArea(); ok {
			m.deps.Surface.FillRect(project(r), hitAreaColor)
		}
		if !c.IsAttacking() {
			continue
		}
		if r, ok := c.AttackArea(); ok {
			m.deps.Surface.FillRect(project(r), attackAreaColor)
		}
	}
}
