package drawkit

// Size represents a width and height pair.
type Size struct {
	Width, Height float64
}

// IsEmpty reports whether the size has no positive area.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an axis-aligned rectangle defined by its top-left corner and size.
// All scene-graph bounds are Rects in the absolute scene frame.
type Rect struct {
	X, Y, Width, Height float64
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// RectFromCorners returns the smallest rectangle containing both points.
// The corners may be given in any order.
func RectFromCorners(a, b Point) Rect {
	x := min(a.X, b.X)
	y := min(a.Y, b.Y)
	return Rect{X: x, Y: y, Width: abs(b.X - a.X), Height: abs(b.Y - a.Y)}
}

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Point {
	return Point{X: r.X, Y: r.Y}
}

// BottomRight returns the bottom-right corner.
func (r Rect) BottomRight() Point {
	return Point{X: r.X + r.Width, Y: r.Y + r.Height}
}

// Center returns the center point.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Size returns the rectangle's size.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// IsEmpty reports whether the rectangle has no positive area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether the point lies inside the rectangle.
// All four edges are inclusive, so a 10x10 rectangle at the origin
// contains (10, 10).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Intersects reports whether the two rectangles overlap with positive area.
// The test is strict: rectangles that share only an edge or a corner do
// not intersect. This asymmetry with Contains (inclusive) is deliberate;
// rubber-band selection uses Intersects while hit testing uses Contains.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.Width && r.X+r.Width > o.X &&
		r.Y < o.Y+o.Height && r.Y+r.Height > o.Y
}

// Union returns the smallest rectangle containing both rectangles.
func (r Rect) Union(o Rect) Rect {
	left := min(r.X, o.X)
	top := min(r.Y, o.Y)
	right := max(r.X+r.Width, o.X+o.Width)
	bottom := max(r.Y+r.Height, o.Y+o.Height)
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}
}

// Intersection returns the overlap of the two rectangles and whether it
// has positive area.
func (r Rect) Intersection(o Rect) (Rect, bool) {
	left := max(r.X, o.X)
	top := max(r.Y, o.Y)
	right := min(r.X+r.Width, o.X+o.Width)
	bottom := min(r.Y+r.Height, o.Y+o.Height)
	if right <= left || bottom <= top {
		return Rect{}, false
	}
	return Rect{X: left, Y: top, Width: right - left, Height: bottom - top}, true
}

// Inflate grows the rectangle by dx horizontally and dy vertically on
// every side. Negative values shrink it.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{X: r.X - dx, Y: r.Y - dy, Width: r.Width + 2*dx, Height: r.Height + 2*dy}
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Inset shrinks the rectangle by the given insets. The result may have
// non-positive extent when the insets exceed the rectangle's size.
func (r Rect) Inset(in Insets) Rect {
	return Rect{
		X:      r.X + in.Left,
		Y:      r.Y + in.Top,
		Width:  r.Width - in.Left - in.Right,
		Height: r.Height - in.Top - in.Bottom,
	}
}

// Insets describes padding on the four sides of a rectangle.
type Insets struct {
	Top, Left, Bottom, Right float64
}

// UniformInsets returns insets with the same value on all sides.
func UniformInsets(v float64) Insets {
	return Insets{Top: v, Left: v, Bottom: v, Right: v}
}

// Width returns the combined horizontal inset.
func (in Insets) Width() float64 {
	return in.Left + in.Right
}

// Height returns the combined vertical inset.
func (in Insets) Height() float64 {
	return in.Top + in.Bottom
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
