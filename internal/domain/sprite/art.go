package sprite

import (
	"image/color"

	"github.com/younwookim/samurai-duel/internal/domain/geom"
)

// ArtKind tells an image provider what a strip depicts.
type ArtKind int

const (
	ArtFighter ArtKind = iota
	ArtProp
	ArtBackdrop
)

// Art describes a frame strip an image provider must produce.
// Rects are in frame-local pixels.
type Art struct {
	Key         string
	Kind        ArtKind
	Pose        string
	Frames      int
	FrameWidth  int
	FrameHeight int
	Tint        color.RGBA
	// Body is the figure outline of a fighter.
	Body geom.Rect
	// Strikes are the blade reach on attacking frames.
	Strikes map[int]geom.Rect
	// Ground is the floor line of a backdrop.
	Ground float64
}

// Width returns the strip width.
func (a Art) Width() int {
	return a.Frames * a.FrameWidth
}

// Provider produces bitmaps, decoding or generating them.
type Provider interface {
	Provide(a Art) (Bitmap, error)
}
