package geometry

import "math"

// Clamp limits v to the range [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// PointSegmentDistance returns the perpendicular distance from p to the line
// segment a-b. A zero-length segment degrades to plain point distance.
func PointSegmentDistance(p, a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := Clamp(((p.X-a.X)*dx+(p.Y-a.Y)*dy)/lenSq, 0, 1)
	return p.Distance(Point{X: a.X + t*dx, Y: a.Y + t*dy})
}

// TurnAngle returns the absolute change of direction at b on the polyline
// a-b-c, in radians. Returns 0 when either segment has zero length.
func TurnAngle(a, b, c Point) float64 {
	v1x, v1y := b.X-a.X, b.Y-a.Y
	v2x, v2y := c.X-b.X, c.Y-b.Y
	l1 := math.Hypot(v1x, v1y)
	l2 := math.Hypot(v2x, v2y)
	if l1 == 0 || l2 == 0 {
		return 0
	}
	cos := Clamp((v1x*v2x+v1y*v2y)/(l1*l2), -1, 1)
	return math.Acos(cos)
}

// SegmentIntersectsRect checks whether the segment a-b passes through the
// rectangle, by sampling at the given step. Endpoints are included in the
// sweep so touching segments register.
func SegmentIntersectsRect(a, b Point, r Rect, step float64) bool {
	length := a.Distance(b)
	if length == 0 {
		return r.Contains(a)
	}
	if step <= 0 {
		step = 1
	}
	steps := int(length/step) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		if r.Contains(a.Lerp(b, t)) {
			return true
		}
	}
	return false
}
