// Package sprite implements frame-strip animation drawn through a Surface,
// with a pluggable Effector for camera-style transforms.
package sprite

import (
	"errors"
	"fmt"
	"time"

	"github.com/younwookim/samurai-duel/internal/domain/clock"
	"github.com/younwookim/samurai-duel/internal/domain/geom"
)

// Options configures a new Sprite.
type Options struct {
	Surface   Surface
	Clock     clock.Clock
	Canvas    geom.Size
	Position  geom.Vec
	Basis     CoordinateBasis
	Direction Direction
	Image     ImageAttr
}

// Sprite is a positioned, animated image.
type Sprite struct {
	surface   Surface
	clock     clock.Clock
	canvas    geom.Size
	position  geom.Vec
	basis     CoordinateBasis
	direction Direction
	image     ImageAttr
	effector  Effector

	animatedAt time.Time
	frame      int
}

// New creates a sprite showing opts.Image from frame 0.
func New(opts Options) (*Sprite, error) {
	if opts.Surface == nil {
		return nil, errors.New("sprite surface is required")
	}
	if opts.Clock == nil {
		return nil, errors.New("sprite clock is required")
	}

	s := &Sprite{
		surface:   opts.Surface,
		clock:     opts.Clock,
		canvas:    opts.Canvas,
		position:  opts.Position,
		basis:     opts.Basis,
		direction: opts.Direction,
	}
	if err := s.SetImage(opts.Image); err != nil {
		return nil, err
	}
	return s, nil
}

// SetImage swaps the image, resetting the animation to frame 0.
// Position, basis and direction are kept.
func (s *Sprite) SetImage(attr ImageAttr) error {
	if attr.Source == nil {
		return ErrNoImageSource
	}
	attr = attr.withDefaults()
	if attr.FramesCount > attr.Source.Bounds().Dx() {
		return fmt.Errorf("image has %d frames but is only %dpx wide", attr.FramesCount, attr.Source.Bounds().Dx())
	}
	s.image = attr
	s.frame = 0
	s.animatedAt = s.clock.Now()
	return nil
}

// Image returns the current image attributes with defaults applied.
func (s *Sprite) Image() ImageAttr {
	return s.image
}

// Frame returns the current animation frame index.
func (s *Sprite) Frame() int {
	return s.frame
}

// Elapsed returns the time since the current image was set.
func (s *Sprite) Elapsed() time.Duration {
	elapsed := s.clock.Now().Sub(s.animatedAt)
	if elapsed < 0 {
		return 0
	}
	return elapsed
}

// AnimationFinished reports whether a repeating image has played out.
// Looping images never finish.
func (s *Sprite) AnimationFinished() bool {
	play := s.image.PlayDuration()
	return play > 0 && s.Elapsed() > play
}

// Position returns the simulation position.
func (s *Sprite) Position() geom.Vec {
	return s.position
}

// SetPosition moves the sprite.
func (s *Sprite) SetPosition(p geom.Vec) {
	s.position = p
}

// Basis returns the coordinate basis.
func (s *Sprite) Basis() CoordinateBasis {
	return s.basis
}

// Canvas returns the logical canvas size.
func (s *Sprite) Canvas() geom.Size {
	return s.canvas
}

// Direction returns the way the sprite faces.
func (s *Sprite) Direction() Direction {
	return s.direction
}

// SetDirection turns the sprite.
func (s *Sprite) SetDirection(d Direction) {
	s.direction = d
}

// Reversed reports whether the artwork must be mirrored to face Direction.
func (s *Sprite) Reversed() bool {
	return s.direction != s.image.Direction
}

// SetEffector installs a drawing transform.
func (s *Sprite) SetEffector(e Effector) {
	s.effector = e
}

// ResetEffector restores the identity transform.
func (s *Sprite) ResetEffector() {
	s.effector = Identity
}

// Effector returns the installed transform.
func (s *Sprite) Effector() Effector {
	return s.effector
}

func (s *Sprite) clip() geom.Rect {
	return s.image.Clipper(&s.image, s.frame)
}

// ImageWidth returns the width of the current frame region.
func (s *Sprite) ImageWidth() float64 {
	return s.clip().Width()
}

// ImageHeight returns the height of the current frame region.
func (s *Sprite) ImageHeight() float64 {
	return s.clip().Height()
}

// DrawingWidth returns the on-canvas width after scale and effector.
func (s *Sprite) DrawingWidth() float64 {
	w := s.ImageWidth() * s.image.Scale
	if s.image.Size != nil {
		w = s.image.Size.Width
	}
	return apply(s.effector.Width, s, w)
}

// DrawingHeight returns the on-canvas height after scale and effector.
func (s *Sprite) DrawingHeight() float64 {
	h := s.ImageHeight() * s.image.Scale
	if s.image.Size != nil {
		h = s.image.Size.Height
	}
	return apply(s.effector.Height, s, h)
}

// X returns the left edge of the drawn image on the canvas.
func (s *Sprite) X() float64 {
	v := apply(s.effector.X, s, s.position.X)
	switch {
	case s.basis == Center:
		return v - s.DrawingWidth()/2
	case s.basis.FromRight():
		return s.canvas.Width - v - s.DrawingWidth()
	default:
		return v
	}
}

// Y returns the top edge of the drawn image on the canvas.
func (s *Sprite) Y() float64 {
	v := apply(s.effector.Y, s, s.position.Y)
	switch {
	case s.basis == Center:
		return v - s.DrawingHeight()/2
	case s.basis.FromBottom():
		return s.canvas.Height - v - s.DrawingHeight()
	default:
		return v
	}
}

// Project maps a simulation-space rect through the effector.
// It is meaningful for LeftTop and Center sprites.
func (s *Sprite) Project(r geom.Rect) geom.Rect {
	return geom.Rect{
		Left:   apply(s.effector.X, s, r.Left),
		Top:    apply(s.effector.Y, s, r.Top),
		Right:  apply(s.effector.X, s, r.Right),
		Bottom: apply(s.effector.Y, s, r.Bottom),
	}
}

// Draw renders the current frame.
func (s *Sprite) Draw() {
	dst := geom.RectFromSize(s.X(), s.Y(), s.DrawingWidth(), s.DrawingHeight())
	s.surface.DrawImage(s.image.Source, s.clip(), dst, s.Reversed())
}

// Update draws the current frame, then advances the animation clock.
func (s *Sprite) Update() {
	s.Draw()

	frames := s.image.FramesCount
	if frames <= 1 {
		return
	}
	if s.AnimationFinished() {
		s.frame = 0
		return
	}
	d := s.image.AnimationDuration
	s.frame = int(int64(s.Elapsed()%d) * int64(frames) / int64(d))
}
