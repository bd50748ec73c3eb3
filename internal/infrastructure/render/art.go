package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/samurai-duel/internal/domain/geom"
	"github.com/younwookim/samurai-duel/internal/domain/sprite"
)

var bladeColor = color.RGBA{235, 235, 245, 255}

// Paint is one filled rectangle of a generated frame, in strip pixels.
type Paint struct {
	Rect  geom.Rect
	Color color.RGBA
}

// Provider generates placeholder frame strips from art descriptions.
// Strips are cached by key.
type Provider struct {
	cache map[string]*ebiten.Image
}

// NewProvider creates an empty provider.
func NewProvider() *Provider {
	return &Provider{cache: make(map[string]*ebiten.Image)}
}

// Provide implements sprite.Provider.
func (p *Provider) Provide(a sprite.Art) (sprite.Bitmap, error) {
	if a.Frames <= 0 || a.FrameWidth <= 0 || a.FrameHeight <= 0 {
		return nil, fmt.Errorf("image %q: frames and frame size must be positive", a.Key)
	}
	if img, ok := p.cache[a.Key]; ok {
		return img, nil
	}

	img := ebiten.NewImage(a.Width(), a.FrameHeight)
	for n := 0; n < a.Frames; n++ {
		for _, pt := range Sketch(a, n) {
			r := pt.Rect
			vector.FillRect(img, float32(r.Left), float32(r.Top), float32(r.Width()), float32(r.Height()), pt.Color, false)
		}
	}
	p.cache[a.Key] = img
	return img, nil
}

// Sketch lays out frame n of a.
func Sketch(a sprite.Art, n int) []Paint {
	frame := geom.Rect{
		Left:   float64(n * a.FrameWidth),
		Right:  float64((n + 1) * a.FrameWidth),
		Bottom: float64(a.FrameHeight),
	}
	switch a.Kind {
	case sprite.ArtFighter:
		return sketchFighter(a, n, frame)
	case sprite.ArtBackdrop:
		return sketchBackdrop(a, frame)
	default:
		return sketchProp(a, n, frame)
	}
}

func sketchFighter(a sprite.Art, n int, frame geom.Rect) []Paint {
	body := a.Body
	if body == (geom.Rect{}) {
		w, h := frame.Width(), frame.Height()
		body = geom.Rect{Left: w * 0.4, Top: h * 0.3, Right: w * 0.6, Bottom: h * 0.6}
	}

	tint := a.Tint
	var dy float64
	switch a.Pose {
	case "idle":
		dy = math.Round(2 * math.Sin(2*math.Pi*float64(n)/float64(a.Frames)))
	case "move", "run":
		dy = float64(n % 2)
	case "jump":
		dy = -4
	case "fall":
		dy = 2
	case "hit", "takeHit":
		if n%2 == 0 {
			tint = shade(tint, 1.6)
		}
	}
	body = body.Translate(geom.Vec{X: frame.Left, Y: dy})

	headW := body.Width() * 0.6
	cx := (body.Left + body.Right) / 2
	head := geom.Rect{Left: cx - headW/2, Top: body.Top - headW, Right: cx + headW/2, Bottom: body.Top}

	paints := []Paint{
		{Rect: body, Color: tint},
		{Rect: head, Color: shade(tint, 1.25)},
	}
	if s, ok := a.Strikes[n]; ok {
		paints = append(paints, Paint{Rect: s.Translate(geom.Vec{X: frame.Left}), Color: bladeColor})
	}
	return paints
}

func sketchBackdrop(a sprite.Art, frame geom.Rect) []Paint {
	ground := a.Ground
	if ground <= 0 || ground > frame.Bottom {
		ground = frame.Bottom * 0.8
	}
	return []Paint{
		{Rect: frame, Color: a.Tint},
		{Rect: geom.Rect{Left: frame.Left, Top: ground, Right: frame.Right, Bottom: frame.Bottom}, Color: shade(a.Tint, 0.5)},
	}
}

func sketchProp(a sprite.Art, n int, frame geom.Rect) []Paint {
	w, h := frame.Width(), frame.Height()
	box := geom.Rect{Left: frame.Left + w*0.1, Top: h * 0.2, Right: frame.Right - w*0.1, Bottom: h}
	win := geom.Rect{Left: frame.Left + w*0.35, Top: h * 0.45, Right: frame.Left + w*0.65, Bottom: h * 0.7}
	glow := 1.4
	if n%2 == 1 {
		glow = 1.8
	}
	return []Paint{
		{Rect: box, Color: a.Tint},
		{Rect: win, Color: shade(a.Tint, glow)},
	}
}

// shade scales the color channels by f, clamped to 255.
func shade(c color.RGBA, f float64) color.RGBA {
	ch := func(v uint8) uint8 {
		return uint8(math.Min(255, float64(v)*f))
	}
	return color.RGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: c.A}
}
