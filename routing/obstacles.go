package routing

import (
	"quiver/geometry"
)

// ObstacleChecker reports whether a canvas point is blocked.
type ObstacleChecker func(geometry.Point) bool

// NewObstacleChecker builds a checker over the given rectangles, each
// inflated by padding on every side.
func NewObstacleChecker(obstacles []geometry.Rect, padding float64) ObstacleChecker {
	return func(p geometry.Point) bool {
		for _, r := range obstacles {
			if r.ContainsPadded(p, padding) {
				return true
			}
		}
		return false
	}
}

// CombineObstacleCheckers combines multiple checkers with OR logic.
func CombineObstacleCheckers(checkers ...ObstacleChecker) ObstacleChecker {
	return func(p geometry.Point) bool {
		for _, checker := range checkers {
			if checker(p) {
				return true
			}
		}
		return false
	}
}

// nearestObstacleDistance returns the distance from p to the closest obstacle
// boundary and the index of that obstacle. Distance is 0 when p is inside.
// Returns index -1 when there are no obstacles.
func nearestObstacleDistance(p geometry.Point, obstacles []geometry.Rect) (float64, int) {
	best := -1
	bestDist := 0.0
	for i, r := range obstacles {
		d := r.DistanceTo(p)
		if best == -1 || d < bestDist {
			best = i
			bestDist = d
		}
	}
	return bestDist, best
}

// segmentBlocked checks whether the segment a-b crosses any obstacle,
// inflated by padding, sampling at half the grid cell size.
func segmentBlocked(a, b geometry.Point, obstacles []geometry.Rect, padding float64) bool {
	for _, r := range obstacles {
		if geometry.SegmentIntersectsRect(a, b, r.Inflate(padding), GridSize/2) {
			return true
		}
	}
	return false
}

// excludeEndpointRects removes the endpoints' own containing rectangles from
// the obstacle list. An arrow is never routed around the card it originates
// from or terminates at.
func excludeEndpointRects(obstacles []geometry.Rect, source, target *geometry.Rect) []geometry.Rect {
	filtered := make([]geometry.Rect, 0, len(obstacles))
	for _, r := range obstacles {
		if source != nil && r == *source {
			continue
		}
		if target != nil && r == *target {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered
}
