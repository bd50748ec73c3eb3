// Package geom provides the axis-aligned rectangles and sizes shared by the
// sprite, physics and combat code.
package geom

import "github.com/yohamta/donburi/features/math"

// Vec is a position or velocity in logical canvas pixels.
type Vec = math.Vec2

// Size is a width/height pair in logical canvas pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect is an axis-aligned rectangle given by its edges.
// Left may exceed Right until the rect is normalized.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromSize builds a rect anchored at (x, y).
func RectFromSize(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Normalize returns the rect with Left <= Right and Top <= Bottom.
func (r Rect) Normalize() Rect {
	if r.Left > r.Right {
		r.Left, r.Right = r.Right, r.Left
	}
	if r.Top > r.Bottom {
		r.Top, r.Bottom = r.Bottom, r.Top
	}
	return r
}

// Width returns the horizontal extent (negative when inverted).
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent (negative when inverted).
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Translate moves the rect by v.
func (r Rect) Translate(v Vec) Rect {
	return Rect{
		Left:   r.Left + v.X,
		Top:    r.Top + v.Y,
		Right:  r.Right + v.X,
		Bottom: r.Bottom + v.Y,
	}
}

// Overlaps reports whether the interiors of two rects intersect.
// Both rects are normalized first; touching edges do not overlap.
func (r Rect) Overlaps(o Rect) bool {
	a := r.Normalize()
	b := o.Normalize()
	return a.Left < b.Right && b.Left < a.Right &&
		a.Top < b.Bottom && b.Top < a.Bottom
}
