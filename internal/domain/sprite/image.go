package sprite

import (
	"errors"
	"time"

	"github.com/younwookim/samurai-duel/internal/domain/geom"
)

// ErrNoImageSource is returned when an image has no bitmap.
var ErrNoImageSource = errors.New("image source is required")

// DefaultAnimationDuration is used when an image leaves the duration unset.
const DefaultAnimationDuration = time.Second

// FrameClipper returns the source region of frame within attr.Source.
type FrameClipper func(attr *ImageAttr, frame int) geom.Rect

// ImageAttr describes a frame strip and how to animate it.
type ImageAttr struct {
	Source            Bitmap
	FramesCount       int
	AnimationDuration time.Duration
	// RepeatAnimation is the number of times to play before holding frame 0;
	// zero loops forever.
	RepeatAnimation int
	// Direction is the way the artwork faces.
	Direction Direction
	// Offset trims each edge of every frame.
	Offset geom.Rect
	Scale  float64
	// Size overrides the drawn size when set.
	Size    *geom.Size
	Clipper FrameClipper
}

func (a ImageAttr) withDefaults() ImageAttr {
	if a.FramesCount <= 0 {
		a.FramesCount = 1
	}
	if a.AnimationDuration <= 0 {
		a.AnimationDuration = DefaultAnimationDuration
	}
	if a.Scale <= 0 {
		a.Scale = 1
	}
	if a.Clipper == nil {
		a.Clipper = HorizontalStrip
	}
	return a
}

// PlayDuration returns how long the image animates before holding frame 0,
// or zero when it loops forever.
func (a ImageAttr) PlayDuration() time.Duration {
	if a.RepeatAnimation <= 0 {
		return 0
	}
	return a.AnimationDuration * time.Duration(a.RepeatAnimation)
}

// HorizontalStrip clips equal-width frames laid out left to right, trimmed
// by the image offset.
func HorizontalStrip(attr *ImageAttr, frame int) geom.Rect {
	b := attr.Source.Bounds()
	fw := float64(b.Dx()) / float64(attr.FramesCount)
	left := float64(b.Min.X) + fw*float64(frame)
	return geom.Rect{
		Left:   left + attr.Offset.Left,
		Top:    float64(b.Min.Y) + attr.Offset.Top,
		Right:  left + fw - attr.Offset.Right,
		Bottom: float64(b.Max.Y) - attr.Offset.Bottom,
	}
}
