// Package geometry provides the coordinate primitives used for
// container bounds bookkeeping.
package geometry

// Offset represents a 2D point or vector in logical pixel coordinates.
type Offset struct {
	X float64
	Y float64
}

// Size represents width and height dimensions in logical pixels.
type Size struct {
	Width  float64
	Height float64
}

// Rect represents a rectangle using left, top, right, bottom coordinates.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

// RectFromLTWH constructs a Rect from left, top, width, height values.
func RectFromLTWH(left, top, width, height float64) Rect {
	return Rect{
		Left:   left,
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
	}
}

// Width returns the width of the rectangle.
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the height of the rectangle.
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Size returns the size of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width(), Height: r.Height()}
}

// IsEmpty reports whether the rectangle encloses no area.
func (r Rect) IsEmpty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Translate returns the rectangle shifted by the given offset.
func (r Rect) Translate(offset Offset) Rect {
	return Rect{
		Left:   r.Left + offset.X,
		Top:    r.Top + offset.Y,
		Right:  r.Right + offset.X,
		Bottom: r.Bottom + offset.Y,
	}
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(point Offset) bool {
	return point.X >= r.Left && point.X < r.Right &&
		point.Y >= r.Top && point.Y < r.Bottom
}
