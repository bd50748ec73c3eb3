package sprite

import (
	"fmt"
	"image"
	"image/color"

	"github.com/younwookim/samurai-duel/internal/domain/geom"
)

// Bitmap is an opaque frame strip. *ebiten.Image satisfies it.
type Bitmap interface {
	Bounds() image.Rectangle
}

// Surface is the draw target sprites render onto.
type Surface interface {
	// Fill clears the whole surface.
	Fill(c color.Color)
	// DrawImage copies the src region of b into dst, mirrored horizontally
	// within dst when mirrored is true.
	DrawImage(b Bitmap, src, dst geom.Rect, mirrored bool)
	// FillRect paints a solid rectangle.
	FillRect(r geom.Rect, c color.Color)
}

// CoordinateBasis selects which canvas corner (or the sprite center) the
// position is measured from.
type CoordinateBasis int

const (
	LeftTop CoordinateBasis = iota
	RightTop
	LeftBottom
	RightBottom
	Center
)

var basisNames = map[CoordinateBasis]string{
	LeftTop:     "left_top",
	RightTop:    "right_top",
	LeftBottom:  "left_bottom",
	RightBottom: "right_bottom",
	Center:      "center",
}

// String returns the config name of the basis.
func (b CoordinateBasis) String() string {
	if name, ok := basisNames[b]; ok {
		return name
	}
	return "unknown"
}

// FromRight reports whether X is measured from the right canvas edge.
func (b CoordinateBasis) FromRight() bool {
	return b == RightTop || b == RightBottom
}

// FromBottom reports whether Y is measured from the bottom canvas edge.
func (b CoordinateBasis) FromBottom() bool {
	return b == LeftBottom || b == RightBottom
}

// ParseBasis converts a config name into a CoordinateBasis.
// An empty name selects LeftTop.
func ParseBasis(name string) (CoordinateBasis, error) {
	if name == "" {
		return LeftTop, nil
	}
	for b, n := range basisNames {
		if n == name {
			return b, nil
		}
	}
	return LeftTop, fmt.Errorf("unknown coordinate basis %q", name)
}

// Direction is the way a sprite faces.
type Direction int

const (
	Left Direction = iota
	Right
)

// String returns "left" or "right".
func (d Direction) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

// Sign returns +1 for Right and -1 for Left.
func (d Direction) Sign() float64 {
	if d == Right {
		return 1
	}
	return -1
}

// ParseDirection converts a config name into a Direction.
// An empty name selects Left.
func ParseDirection(name string) (Direction, error) {
	switch name {
	case "", "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return Left, fmt.Errorf("unknown direction %q", name)
	}
}
