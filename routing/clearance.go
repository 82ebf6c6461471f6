package routing

import (
	"quiver/geometry"
)

// AdjustClearance nudges interior waypoints that sit too close to an
// obstacle out to exactly minClearance from its boundary. A nudge is
// rejected when it would make either adjacent segment cross an obstacle the
// unadjusted segment did not already cross; the original point is kept
// instead. Endpoints are never adjusted. Points inside an obstacle are left
// alone: there is no outward direction to push them in.
func AdjustClearance(waypoints []geometry.Point, obstacles []geometry.Rect, minClearance float64) []geometry.Point {
	if len(waypoints) <= 2 || len(obstacles) == 0 {
		return waypoints
	}

	adjusted := make([]geometry.Point, len(waypoints))
	copy(adjusted, waypoints)

	for i := 1; i < len(adjusted)-1; i++ {
		p := adjusted[i]
		dist, idx := nearestObstacleDistance(p, obstacles)
		if idx < 0 || dist <= 0 || dist >= minClearance {
			continue
		}

		// Push straight away from the closest boundary point until the
		// waypoint sits exactly minClearance out.
		closest := obstacles[idx].ClosestPoint(p)
		moved := geometry.Point{
			X: closest.X + (p.X-closest.X)/dist*minClearance,
			Y: closest.Y + (p.Y-closest.Y)/dist*minClearance,
		}
		if !moved.IsFinite() {
			continue
		}

		if introducesCollision(adjusted[i-1], p, moved, obstacles) ||
			introducesCollision(adjusted[i+1], p, moved, obstacles) {
			continue
		}
		adjusted[i] = moved
	}

	return adjusted
}

// introducesCollision reports whether the segment neighbor-moved crosses any
// obstacle that the segment neighbor-original did not.
func introducesCollision(neighbor, original, moved geometry.Point, obstacles []geometry.Rect) bool {
	for _, r := range obstacles {
		if geometry.SegmentIntersectsRect(neighbor, moved, r, GridSize/2) &&
			!geometry.SegmentIntersectsRect(neighbor, original, r, GridSize/2) {
			return true
		}
	}
	return false
}
