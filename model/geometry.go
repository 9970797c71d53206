package model

import "math"

// Point represents a 2D point
type Point struct {
	X, Y float64
}

// Distance calculates the Euclidean distance to another point
func (p Point) Distance(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// DX returns half the horizontal separation of two points. Block merge
// thresholds compare this halved value against a font size.
func (p Point) DX(other Point) float64 {
	return math.Abs(p.X-other.X) / 2
}

// DY returns half the vertical separation of two points.
func (p Point) DY(other Point) float64 {
	return math.Abs(p.Y-other.Y) / 2
}

// Rect represents an axis-aligned rectangle in page coordinates.
// (X1,Y1) is the top-left corner and (X2,Y2) the bottom-right corner,
// with Y increasing downward.
type Rect struct {
	X1, Y1, X2, Y2 float64
}

// NewRect creates a rectangle from two corner coordinates
func NewRect(x1, y1, x2, y2 float64) Rect {
	return Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Width returns the horizontal extent of the rectangle
func (r Rect) Width() float64 {
	return r.X2 - r.X1
}

// Height returns the vertical extent of the rectangle
func (r Rect) Height() float64 {
	return r.Y2 - r.Y1
}

// Center returns the center point
func (r Rect) Center() Point {
	return Point{
		X: (r.X1 + r.X2) / 2,
		Y: (r.Y1 + r.Y2) / 2,
	}
}

// Contains reports whether other lies entirely inside r
func (r Rect) Contains(other Rect) bool {
	return r.X1 <= other.X1 && r.X2 >= other.X2 &&
		r.Y1 <= other.Y1 && r.Y2 >= other.Y2
}

// DX returns the horizontal gap between two rectangles. A value >= 0 means
// the rectangles are disjoint on the X axis by that amount; a negative value
// means their horizontal extents overlap.
func (r Rect) DX(other Rect) float64 {
	return math.Max(r.X1-other.X2, other.X1-r.X2)
}

// DY returns the vertical gap between two rectangles, with the same sign
// convention as DX.
func (r Rect) DY(other Rect) float64 {
	return math.Max(r.Y1-other.Y2, other.Y1-r.Y2)
}

// Distance returns the clamped horizontal and vertical gaps and the Euclidean
// distance between two rectangles. Touching or overlapping rectangles have
// distance zero.
func (r Rect) Distance(other Rect) (dx, dy, dist float64) {
	dx = math.Max(0, r.DX(other))
	dy = math.Max(0, r.DY(other))
	return dx, dy, math.Sqrt(dx*dx + dy*dy)
}

// Union returns the smallest rectangle enclosing both r and other
func (r Rect) Union(other Rect) Rect {
	return Rect{
		X1: math.Min(r.X1, other.X1),
		Y1: math.Min(r.Y1, other.Y1),
		X2: math.Max(r.X2, other.X2),
		Y2: math.Max(r.Y2, other.Y2),
	}
}
