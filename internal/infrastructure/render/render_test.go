package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/samurai-duel/internal/domain/geom"
	"github.com/younwookim/samurai-duel/internal/domain/sprite"
)

func TestPlacement(t *testing.T) {
	src := geom.Rect{Left: 200, Top: 0, Right: 400, Bottom: 200}
	dst := geom.Rect{Left: 10, Top: 20, Right: 410, Bottom: 420}

	t.Run("scales onto dst", func(t *testing.T) {
		m := placement(src, dst, false)
		x, y := m.Apply(0, 0)
		assert.Equal(t, 10.0, x)
		assert.Equal(t, 20.0, y)
		x, y = m.Apply(200, 200)
		assert.Equal(t, 410.0, x)
		assert.Equal(t, 420.0, y)
	})

	t.Run("mirrored flips horizontally", func(t *testing.T) {
		m := placement(src, dst, true)
		x, _ := m.Apply(0, 0)
		assert.Equal(t, 410.0, x)
		x, _ = m.Apply(200, 0)
		assert.Equal(t, 10.0, x)
	})
}

func TestPixelRect(t *testing.T) {
	assert.Equal(t, image.Rect(118, 0, 236, 128), pixelRect(geom.Rect{Left: 117.6, Top: 0.2, Right: 236, Bottom: 127.5}))
}

func TestSketch(t *testing.T) {
	tint := color.RGBA{100, 50, 25, 255}

	t.Run("fighter stays within its frame", func(t *testing.T) {
		a := sprite.Art{
			Kind: sprite.ArtFighter, Pose: "attack", Frames: 6, FrameWidth: 200, FrameHeight: 200, Tint: tint,
			Body:    geom.Rect{Left: 90, Top: 80, Right: 110, Bottom: 115},
			Strikes: map[int]geom.Rect{4: {Left: 90, Top: 55, Right: 185, Bottom: 115}},
		}
		for n := 0; n < a.Frames; n++ {
			paints := Sketch(a, n)
			frame := geom.Rect{Left: float64(n * 200), Right: float64((n + 1) * 200), Bottom: 200}
			for _, p := range paints {
				assert.GreaterOrEqual(t, p.Rect.Left, frame.Left, "frame %d", n)
				assert.LessOrEqual(t, p.Rect.Right, frame.Right, "frame %d", n)
			}
			if n == 4 {
				require.Len(t, paints, 3)
				assert.Equal(t, bladeColor, paints[2].Color)
				assert.Equal(t, 890.0, paints[2].Rect.Left)
			} else {
				assert.Len(t, paints, 2)
			}
		}
	})

	t.Run("hit flashes", func(t *testing.T) {
		a := sprite.Art{Kind: sprite.ArtFighter, Pose: "hit", Frames: 4, FrameWidth: 100, FrameHeight: 100, Tint: tint}
		assert.NotEqual(t, tint, Sketch(a, 0)[0].Color)
		assert.Equal(t, tint, Sketch(a, 1)[0].Color)
	})

	t.Run("backdrop ground", func(t *testing.T) {
		a := sprite.Art{Kind: sprite.ArtBackdrop, Frames: 1, FrameWidth: 1024, FrameHeight: 576, Tint: tint, Ground: 450}
		paints := Sketch(a, 0)
		require.Len(t, paints, 2)
		assert.Equal(t, 450.0, paints[1].Rect.Top)
		assert.Equal(t, color.RGBA{50, 25, 12, 255}, paints[1].Color)
	})
}

func TestShade(t *testing.T) {
	assert.Equal(t, color.RGBA{255, 200, 20, 128}, shade(color.RGBA{200, 100, 10, 128}, 2))
}

func TestBar(t *testing.T) {
	var b Bar
	b.SetHealth("80%")
	assert.InDelta(t, 0.8, b.Ratio(), 1e-9)
	b.SetHealth("garbage")
	assert.InDelta(t, 0.8, b.Ratio(), 1e-9)
	b.SetHealth("140%")
	assert.Equal(t, 1.0, b.Ratio())
	b.SetHealth("0%")
	assert.Zero(t, b.Ratio())
	b.SetHealth("33.333333333333336%")
	assert.InDelta(t, 1.0/3, b.Ratio(), 1e-9)
}

func TestBarLayout(t *testing.T) {
	player, enemy := BarLayout(1024, 20, 100, 0.5, 0.25)

	assert.Equal(t, rect{x: 20, y: 20, w: 442, h: 30}, player.back)
	assert.Equal(t, rect{x: 241, y: 20, w: 221, h: 30}, player.health)
	assert.Equal(t, rect{x: 562, y: 20, w: 442, h: 30}, enemy.back)
	assert.Equal(t, rect{x: 562, y: 20, w: 110.5, h: 30}, enemy.health)
}

func TestHUDSinks(t *testing.T) {
	var h HUD
	h.StartScreen.SetVisible(true)
	h.Timer.SetText("42")
	h.Result.SetText("DRAW")

	assert.True(t, h.StartScreen.Visible())
	assert.False(t, h.Indicators.Visible())
	assert.Equal(t, "42", h.Timer.Text())
	assert.Equal(t, "DRAW", h.Result.Text())
}
