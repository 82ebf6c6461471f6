package routing

import (
	"math"

	"quiver/geometry"
)

// cornerThreshold is the turn angle above which an interior point is
// protected from simplification. 30 degrees.
const cornerThreshold = math.Pi / 6

// SimplifyPath reduces a dense waypoint sequence to a minimal set of turning
// points. Classic Douglas-Peucker, with one twist: interior points whose turn
// angle exceeds 30 degrees are protected corners and survive simplification
// even when they lie arbitrarily close to the chord. Endpoints always survive.
func SimplifyPath(path []geometry.Point, tolerance float64) []geometry.Point {
	if len(path) <= 2 {
		return path
	}

	protected := make([]bool, len(path))
	protected[0] = true
	protected[len(path)-1] = true
	for i := 1; i < len(path)-1; i++ {
		if geometry.TurnAngle(path[i-1], path[i], path[i+1]) > cornerThreshold {
			protected[i] = true
		}
	}

	keep := make([]bool, len(path))
	keep[0] = true
	keep[len(path)-1] = true

	// Explicit worklist instead of recursion; depth is bounded by the
	// waypoint count but the iterative form needs no such assumption.
	type span struct{ lo, hi int }
	stack := []span{{0, len(path) - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if s.hi-s.lo < 2 {
			continue
		}

		split := -1
		maxDist := 0.0
		for i := s.lo + 1; i < s.hi; i++ {
			d := geometry.PointSegmentDistance(path[i], path[s.lo], path[s.hi])
			if protected[i] {
				// A protected corner forces a split regardless of how close
				// it sits to the chord.
				d = math.Inf(1)
			}
			if d > maxDist || split == -1 {
				maxDist = d
				split = i
			}
		}

		if maxDist > tolerance {
			keep[split] = true
			stack = append(stack, span{s.lo, split}, span{split, s.hi})
		}
	}

	simplified := make([]geometry.Point, 0, len(path))
	for i, p := range path {
		if keep[i] {
			simplified = append(simplified, p)
		}
	}
	return simplified
}
