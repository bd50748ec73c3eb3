// Package render draws the match with ebiten: an offscreen canvas surface,
// generated placeholder artwork and the HUD.
package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/samurai-duel/internal/domain/geom"
	"github.com/younwookim/samurai-duel/internal/domain/sprite"
)

// Surface implements sprite.Surface on an offscreen canvas at the logical
// arena size.
type Surface struct {
	canvas *ebiten.Image
	op     ebiten.DrawImageOptions
}

// NewSurface creates a surface with a canvas of w x h pixels.
func NewSurface(w, h int) *Surface {
	return &Surface{canvas: ebiten.NewImage(w, h)}
}

// Canvas returns the image sprites are drawn into.
func (s *Surface) Canvas() *ebiten.Image {
	return s.canvas
}

// Fill clears the canvas.
func (s *Surface) Fill(c color.Color) {
	s.canvas.Fill(c)
}

// DrawImage draws the src region of b stretched over dst. Bitmaps that are
// not ebiten images are skipped.
func (s *Surface) DrawImage(b sprite.Bitmap, src, dst geom.Rect, mirrored bool) {
	img, ok := b.(*ebiten.Image)
	if !ok {
		return
	}
	sw, sh := src.Width(), src.Height()
	if sw <= 0 || sh <= 0 {
		return
	}

	sub := img.SubImage(pixelRect(src)).(*ebiten.Image)
	s.op.GeoM = placement(src, dst, mirrored)
	s.op.Filter = ebiten.FilterNearest
	s.canvas.DrawImage(sub, &s.op)
}

// FillRect fills r in canvas coordinates.
func (s *Surface) FillRect(r geom.Rect, c color.Color) {
	r = r.Normalize()
	vector.FillRect(s.canvas, float32(r.Left), float32(r.Top), float32(r.Width()), float32(r.Height()), c, false)
}

// Blit draws the canvas onto screen, scaled to fit.
func (s *Surface) Blit(screen *ebiten.Image) {
	sb, cb := screen.Bounds(), s.canvas.Bounds()
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(sb.Dx())/float64(cb.Dx()), float64(sb.Dy())/float64(cb.Dy()))
	screen.DrawImage(s.canvas, &op)
}

// placement maps an image of src size onto dst, flipping horizontally when
// mirrored.
func placement(src, dst geom.Rect, mirrored bool) ebiten.GeoM {
	var m ebiten.GeoM
	sw, sh := src.Width(), src.Height()
	if mirrored {
		m.Scale(-1, 1)
		m.Translate(sw, 0)
	}
	m.Scale(dst.Width()/sw, dst.Height()/sh)
	m.Translate(dst.Left, dst.Top)
	return m
}

func pixelRect(r geom.Rect) image.Rectangle {
	return image.Rect(
		int(math.Round(r.Left)), int(math.Round(r.Top)),
		int(math.Round(r.Right)), int(math.Round(r.Bottom)),
	)
}
