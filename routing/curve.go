package routing

import (
	"quiver/geometry"
)

// SmoothCurve converts a waypoint sequence into a multi-segment cubic Bezier
// curve. The result is the flattened control sequence
//
//	[p0x, p0y, cp1x, cp1y, cp2x, cp2y, p1x, p1y, cp1x, cp1y, ...]
//
// with anchor points shared between consecutive segments, plus the segment
// count. The curve passes through every input waypoint exactly.
//
// The 2-point case places both control points exactly on the line, at 1/3
// and 2/3 of the distance, so a short unobstructed connector renders as a
// perfectly straight segment rather than an approximately straight curve.
func SmoothCurve(waypoints []geometry.Point) ([]float64, int) {
	switch len(waypoints) {
	case 0:
		return straightCurve(geometry.Point{}, geometry.Point{})
	case 1:
		return straightCurve(waypoints[0], waypoints[0])
	case 2:
		return straightCurve(waypoints[0], waypoints[1])
	}

	n := len(waypoints)
	points := make([]float64, 0, 2+6*(n-1))
	points = append(points, waypoints[0].X, waypoints[0].Y)

	// Catmull-Rom tangents converted to Bezier control points. The first
	// and last waypoints double as their own off-end neighbors.
	for i := 0; i < n-1; i++ {
		p1 := waypoints[i]
		p2 := waypoints[i+1]
		p0 := p1
		if i > 0 {
			p0 = waypoints[i-1]
		}
		p3 := p2
		if i+2 < n {
			p3 = waypoints[i+2]
		}

		t1x := CurveTension * (p2.X - p0.X)
		t1y := CurveTension * (p2.Y - p0.Y)
		t2x := CurveTension * (p3.X - p1.X)
		t2y := CurveTension * (p3.Y - p1.Y)

		points = append(points,
			p1.X+t1x/3, p1.Y+t1y/3,
			p2.X-t2x/3, p2.Y-t2y/3,
			p2.X, p2.Y,
		)
	}

	return points, n - 1
}

// SampleCurve evaluates a flattened control sequence at samplesPerSegment
// evenly spaced parameters per cubic segment, endpoint included. Useful for
// hit-testing and for rasterizers without native Bezier support.
func SampleCurve(points []float64, samplesPerSegment int) []geometry.Point {
	if len(points) < 8 || samplesPerSegment < 1 {
		return nil
	}
	var out []geometry.Point
	for i := 0; i+7 < len(points); i += 6 {
		p0 := geometry.Pt(points[i], points[i+1])
		c1 := geometry.Pt(points[i+2], points[i+3])
		c2 := geometry.Pt(points[i+4], points[i+5])
		p1 := geometry.Pt(points[i+6], points[i+7])
		for s := 0; s < samplesPerSegment; s++ {
			t := float64(s) / float64(samplesPerSegment)
			out = append(out, evalCubic(p0, c1, c2, p1, t))
		}
	}
	n := len(points)
	out = append(out, geometry.Pt(points[n-2], points[n-1]))
	return out
}

// evalCubic evaluates one cubic Bezier segment at parameter t.
func evalCubic(p0, c1, c2, p1 geometry.Point, t float64) geometry.Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return geometry.Point{
		X: a*p0.X + b*c1.X + c*c2.X + d*p1.X,
		Y: a*p0.Y + b*c1.Y + c*c2.Y + d*p1.Y,
	}
}

// straightCurve emits a single cubic segment whose control points sit on the
// line itself.
func straightCurve(a, b geometry.Point) ([]float64, int) {
	c1 := a.Lerp(b, 1.0/3.0)
	c2 := a.Lerp(b, 2.0/3.0)
	return []float64{a.X, a.Y, c1.X, c1.Y, c2.X, c2.Y, b.X, b.Y}, 1
}
