// Package headless provides window-free implementations of the draw surface,
// image provider and HUD sinks, used for replays without a display and in
// tests.
package headless

import (
	"fmt"
	"image"
	"image/color"

	"github.com/younwookim/samurai-duel/internal/domain/geom"
	"github.com/younwookim/samurai-duel/internal/domain/sprite"
)

// Bitmap is a sized image with no pixels.
type Bitmap struct {
	Key    string
	Width  int
	Height int
}

// Bounds implements sprite.Bitmap.
func (b Bitmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.Width, b.Height)
}

// Provider produces pixel-less bitmaps sized from the art description.
type Provider struct {
	// Missing lists keys that fail to load.
	Missing map[string]bool
	loaded  []string
}

// Provide implements sprite.Provider.
func (p *Provider) Provide(a sprite.Art) (sprite.Bitmap, error) {
	if p.Missing[a.Key] {
		return nil, fmt.Errorf("image %q: %w", a.Key, sprite.ErrNoImageSource)
	}
	if a.Width() <= 0 || a.FrameHeight <= 0 {
		return nil, fmt.Errorf("image %q has no size", a.Key)
	}
	p.loaded = append(p.loaded, a.Key)
	return Bitmap{Key: a.Key, Width: a.Width(), Height: a.FrameHeight}, nil
}

// Loaded returns the keys provided so far, in order.
func (p *Provider) Loaded() []string {
	return p.loaded
}

// Draw is one recorded DrawImage call.
type Draw struct {
	Key      string
	Src, Dst geom.Rect
	Mirrored bool
}

// Surface records draw calls since the last Fill.
type Surface struct {
	Fills int
	Draws []Draw
	Rects []geom.Rect
}

// Fill implements sprite.Surface and starts a new frame.
func (s *Surface) Fill(color.Color) {
	s.Fills++
	s.Draws = s.Draws[:0]
	s.Rects = s.Rects[:0]
}

// DrawImage implements sprite.Surface.
func (s *Surface) DrawImage(b sprite.Bitmap, src, dst geom.Rect, mirrored bool) {
	key := ""
	if hb, ok := b.(Bitmap); ok {
		key = hb.Key
	}
	s.Draws = append(s.Draws, Draw{Key: key, Src: src, Dst: dst, Mirrored: mirrored})
}

// FillRect implements sprite.Surface.
func (s *Surface) FillRect(r geom.Rect, _ color.Color) {
	s.Rects = append(s.Rects, r)
}

// Keys returns the bitmap keys drawn in the current frame, in order.
func (s *Surface) Keys() []string {
	keys := make([]string, len(s.Draws))
	for i, d := range s.Draws {
		keys[i] = d.Key
	}
	return keys
}

// Toggle records visibility.
type Toggle struct {
	Visible bool
	Changes int
}

// SetVisible implements match.Toggle.
func (t *Toggle) SetVisible(v bool) {
	t.Visible = v
	t.Changes++
}

// Text records the last text set.
type Text struct {
	Value   string
	History []string
}

// SetText implements match.TextSink.
func (t *Text) SetText(s string) {
	t.Value = s
	t.History = append(t.History, s)
}

// Health records the last health percentage.
type Health struct {
	Percent string
}

// SetHealth implements character.HealthIndicator.
func (h *Health) SetHealth(percent string) {
	h.Percent = percent
}
