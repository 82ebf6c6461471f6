// Package geometry contains the fundamental value types used throughout the
// quiver routing engine.
package geometry

import "math"

// Point represents a 2D coordinate on the whiteboard canvas.
type Point struct {
	X, Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the point translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Sub returns the vector from o to p as a point.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(o Point) float64 {
	return math.Hypot(p.X-o.X, p.Y-o.Y)
}

// Midpoint returns the midpoint of two points.
func (p Point) Midpoint(o Point) Point {
	return Point{X: 0.5 * (p.X + o.X), Y: 0.5 * (p.Y + o.Y)}
}

// Lerp linearly interpolates between p and o.
func (p Point) Lerp(o Point, t float64) Point {
	return Point{
		X: p.X + (o.X-p.X)*t,
		Y: p.Y + (o.Y-p.Y)*t,
	}
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Side identifies the edge of a rectangle a connector attaches to.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

// String returns the string representation of a Side.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Angle returns the outward-facing direction of the side in radians.
func (s Side) Angle() float64 {
	switch s {
	case SideTop:
		return -math.Pi / 2
	case SideRight:
		return 0
	case SideBottom:
		return math.Pi / 2
	case SideLeft:
		return math.Pi
	default:
		return 0
	}
}

// ConnectionPoint is a boundary point where a connector visually attaches,
// together with the edge it sits on and the outward direction used for
// arrowhead rotation and curve tangent seeding.
type ConnectionPoint struct {
	Point
	Side  Side
	Angle float64
}

// Rect represents an axis-aligned rectangle on the canvas. X, Y is the
// top-left corner. Callers guarantee Width and Height are positive.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}

// Contains checks if a point is inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// ContainsPadded checks if a point is inside the rectangle inflated by
// padding on every side.
func (r Rect) ContainsPadded(p Point, padding float64) bool {
	return p.X >= r.X-padding && p.X <= r.X+r.Width+padding &&
		p.Y >= r.Y-padding && p.Y <= r.Y+r.Height+padding
}

// Inflate returns the rectangle grown by margin on every side.
func (r Rect) Inflate(margin float64) Rect {
	return Rect{
		X:      r.X - margin,
		Y:      r.Y - margin,
		Width:  r.Width + 2*margin,
		Height: r.Height + 2*margin,
	}
}

// ClosestPoint returns the point on or inside the rectangle nearest to p.
func (r Rect) ClosestPoint(p Point) Point {
	return Point{
		X: Clamp(p.X, r.X, r.X+r.Width),
		Y: Clamp(p.Y, r.Y, r.Y+r.Height),
	}
}

// DistanceTo returns the distance from p to the rectangle boundary,
// or 0 when p is inside.
func (r Rect) DistanceTo(p Point) float64 {
	return p.Distance(r.ClosestPoint(p))
}
