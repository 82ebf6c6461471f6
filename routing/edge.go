package routing

import (
	"math"

	"quiver/geometry"
)

// SelectEdgePoint returns the boundary point where a ray from the
// rectangle's center toward target exits the rectangle. The result is
// clamped into the rectangle bounds to absorb floating-point overshoot.
// When target coincides with the center there is no direction to exit in;
// the right-edge midpoint is returned as a fixed default.
func SelectEdgePoint(rect geometry.Rect, target geometry.Point) geometry.Point {
	return ConnectionPointFor(rect, target).Point
}

// ConnectionPointOnSide returns the midpoint of the given edge as a
// connection point, for callers that pin an arrow to a preferred side
// instead of letting it follow the target.
func ConnectionPointOnSide(rect geometry.Rect, side geometry.Side) geometry.ConnectionPoint {
	center := rect.Center()
	p := center
	switch side {
	case geometry.SideTop:
		p.Y = rect.Y
	case geometry.SideBottom:
		p.Y = rect.Y + rect.Height
	case geometry.SideLeft:
		p.X = rect.X
	default:
		p.X = rect.X + rect.Width
	}
	return geometry.ConnectionPoint{Point: p, Side: side, Angle: side.Angle()}
}

// ConnectionPointFor computes the full connection point for an element
// rectangle facing target: the boundary exit point, the side it lies on,
// and the outward angle used for arrowhead rotation and tangent seeding.
func ConnectionPointFor(rect geometry.Rect, target geometry.Point) geometry.ConnectionPoint {
	center := rect.Center()
	dx := target.X - center.X
	dy := target.Y - center.Y
	halfW := rect.Width / 2
	halfH := rect.Height / 2

	// Parametric t at which the center→target ray first crosses each of the
	// four boundary half-planes. Sides the ray points away from never apply.
	t := math.Inf(1)
	side := geometry.SideRight
	if dx > 0 {
		if tr := halfW / dx; tr < t {
			t, side = tr, geometry.SideRight
		}
	} else if dx < 0 {
		if tl := -halfW / dx; tl < t {
			t, side = tl, geometry.SideLeft
		}
	}
	if dy > 0 {
		if tb := halfH / dy; tb < t {
			t, side = tb, geometry.SideBottom
		}
	} else if dy < 0 {
		if tt := -halfH / dy; tt < t {
			t, side = tt, geometry.SideTop
		}
	}

	if math.IsInf(t, 1) {
		// Target is at the center: no exit direction exists.
		return geometry.ConnectionPoint{
			Point: geometry.Point{X: rect.X + rect.Width, Y: center.Y},
			Side:  geometry.SideRight,
			Angle: geometry.SideRight.Angle(),
		}
	}

	exit := geometry.Point{
		X: geometry.Clamp(center.X+t*dx, rect.X, rect.X+rect.Width),
		Y: geometry.Clamp(center.Y+t*dy, rect.Y, rect.Y+rect.Height),
	}
	return geometry.ConnectionPoint{
		Point: exit,
		Side:  side,
		Angle: math.Atan2(dy, dx),
	}
}
