package routing

import (
	"math"

	"quiver/geometry"
)

// PathResult is the drawable output of a routing call. Points is a flattened
// multi-segment cubic Bezier control sequence, directly consumable by a 2D
// vector graphics API. Waypoints carries the turning points the curve was
// built from, for debug display when an arrow is selected.
type PathResult struct {
	Points    []float64
	Segments  int
	Waypoints []geometry.Point
}

// Router computes connector paths between whiteboard elements.
type Router struct {
	cfg    RouteConfig
	finder *GridPathFinder
}

// NewRouter creates a router with the given configuration.
func NewRouter(cfg RouteConfig) *Router {
	return &Router{
		cfg:    cfg,
		finder: NewGridPathFinder(cfg),
	}
}

// FindArrowPath computes a curve from start to end that avoids the given
// obstacle rectangles. The endpoints' own containing rectangles, when
// supplied, are removed from the obstacle set first: an arrow is never
// routed around the card it attaches to.
//
// When the straight segment is unobstructed the grid search is skipped
// entirely and a perfectly straight 2-point curve is returned; this is the
// common case and keeps interactive redraw cheap. The call never fails: any
// degenerate geometry or unroutable field degrades to the straight form.
func (r *Router) FindArrowPath(start, end geometry.Point, obstacles []geometry.Rect, sourceRect, targetRect *geometry.Rect) PathResult {
	start = sanitize(start)
	end = sanitize(end)

	blocking := excludeEndpointRects(obstacles, sourceRect, targetRect)

	if !segmentBlocked(start, end, blocking, r.cfg.ObstaclePadding) {
		return straightResult(start, end)
	}

	waypoints := r.finder.FindPath(start, end, blocking)
	waypoints = SimplifyPath(waypoints, SimplifyTolerance)
	waypoints = AdjustClearance(waypoints, blocking, MinClearance)

	points, segments := SmoothCurve(waypoints)
	for _, v := range points {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return straightResult(start, end)
		}
	}

	return PathResult{
		Points:    points,
		Segments:  segments,
		Waypoints: waypoints,
	}
}

// FindArrowPath routes a connector using the default configuration.
func FindArrowPath(start, end geometry.Point, obstacles []geometry.Rect, sourceRect, targetRect *geometry.Rect) PathResult {
	return NewRouter(DefaultRouteConfig()).FindArrowPath(start, end, obstacles, sourceRect, targetRect)
}

// ArrowheadAngle derives the arrowhead rotation from the final approach
// direction of a routed curve.
func ArrowheadAngle(points []float64) float64 {
	if len(points) < 4 {
		return 0
	}
	n := len(points)
	dx := points[n-2] - points[n-4]
	dy := points[n-1] - points[n-3]
	if dx == 0 && dy == 0 {
		return 0
	}
	return math.Atan2(dy, dx)
}

func straightResult(start, end geometry.Point) PathResult {
	points, segments := SmoothCurve([]geometry.Point{start, end})
	return PathResult{
		Points:    points,
		Segments:  segments,
		Waypoints: []geometry.Point{start, end},
	}
}

// sanitize replaces non-finite coordinates with zero so degenerate inputs
// produce a valid, if trivial, path instead of NaN output.
func sanitize(p geometry.Point) geometry.Point {
	if p.IsFinite() {
		return p
	}
	if math.IsNaN(p.X) || math.IsInf(p.X, 0) {
		p.X = 0
	}
	if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
		p.Y = 0
	}
	return p
}
