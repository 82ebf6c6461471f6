// Package routing computes obstacle-aware connector paths between whiteboard
// elements. Given two connection points and the bounds of the other visible
// elements, it produces a smooth multi-segment cubic Bezier curve that routes
// around anything a straight connector would cross, and degrades to a straight
// line otherwise.
package routing

// Routing constants. These are tuned for pixel-space whiteboard canvases.
const (
	// GridSize is the cell size of the uniform search grid.
	GridSize = 20.0

	// ObstaclePadding inflates obstacle rectangles before collision testing
	// so routed paths keep a visual gap from element borders.
	ObstaclePadding = 15.0

	// ClearancePreference is the soft-avoid radius: paths closer than this
	// to an obstacle pay a penalty but are not forbidden.
	ClearancePreference = 40.0

	// MaxIterations caps the number of search steps. The engine runs
	// synchronously on the UI thread, so this is a hard latency bound.
	MaxIterations = 1000

	// MinClearance is the distance interior waypoints are nudged away from
	// obstacles after simplification.
	MinClearance = 25.0

	// CurveTension balances tightness vs. looseness of the smoothed curve
	// through its waypoints.
	CurveTension = 0.5

	// SimplifyTolerance is the perpendicular-distance threshold used when
	// collapsing dense search output into turning points.
	SimplifyTolerance = 2 * GridSize
)

// RouteCost defines the cost shaping applied during grid search.
type RouteCost struct {
	TurnPenalty     float64 // scales the (1−cosθ) direction-change penalty
	ClearanceWeight float64 // scales the quadratic obstacle-proximity penalty
	ClearanceRadius float64 // distance below which proximity is penalized
}

// DefaultRouteCost provides reasonable defaults: few turns, comfortable
// clearance, paths that look hand-drawn rather than mathematically shortest.
var DefaultRouteCost = RouteCost{
	TurnPenalty:     30,
	ClearanceWeight: 20,
	ClearanceRadius: ClearancePreference,
}

// RouteConfig collects the tunable parameters of the routing engine.
type RouteConfig struct {
	GridSize        float64
	ObstaclePadding float64
	MaxIterations   int
	Cost            RouteCost
}

// DefaultRouteConfig returns the configuration used by the whiteboard view.
func DefaultRouteConfig() RouteConfig {
	return RouteConfig{
		GridSize:        GridSize,
		ObstaclePadding: ObstaclePadding,
		MaxIterations:   MaxIterations,
		Cost:            DefaultRouteCost,
	}
}
