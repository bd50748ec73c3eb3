package headless

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/samurai-duel/internal/domain/geom"
	"github.com/younwookim/samurai-duel/internal/domain/sprite"
)

func TestProvider_Provide(t *testing.T) {
	p := &Provider{Missing: map[string]bool{"gone": true}}

	b, err := p.Provide(sprite.Art{Key: "idle", Frames: 8, FrameWidth: 200, FrameHeight: 100})
	require.NoError(t, err)
	assert.Equal(t, 1600, b.Bounds().Dx())
	assert.Equal(t, 100, b.Bounds().Dy())

	_, err = p.Provide(sprite.Art{Key: "gone", Frames: 1, FrameWidth: 1, FrameHeight: 1})
	assert.ErrorIs(t, err, sprite.ErrNoImageSource)

	_, err = p.Provide(sprite.Art{Key: "empty"})
	assert.Error(t, err)

	assert.Equal(t, []string{"idle"}, p.Loaded())
}

func TestSurface_RecordsPerFrame(t *testing.T) {
	s := &Surface{}
	s.DrawImage(Bitmap{Key: "a"}, geom.Rect{}, geom.Rect{}, false)
	s.Fill(color.Black)
	s.DrawImage(Bitmap{Key: "b"}, geom.Rect{}, geom.Rect{}, true)
	s.FillRect(geom.Rect{Right: 1, Bottom: 1}, color.White)

	assert.Equal(t, 1, s.Fills)
	assert.Equal(t, []string{"b"}, s.Keys())
	assert.True(t, s.Draws[0].Mirrored)
	assert.Len(t, s.Rects, 1)
}

func TestSinks(t *testing.T) {
	toggle := &Toggle{}
	toggle.SetVisible(true)
	assert.True(t, toggle.Visible)
	assert.Equal(t, 1, toggle.Changes)

	text := &Text{}
	text.SetText("60")
	text.SetText("59")
	assert.Equal(t, "59", text.Value)
	assert.Equal(t, []string{"60", "59"}, text.History)

	health := &Health{}
	health.SetHealth("80%")
	assert.Equal(t, "80%", health.Percent)
}
