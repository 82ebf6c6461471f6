package routing

import (
	"container/heap"
	"math"

	"quiver/geometry"
)

// gridNode represents a state in the grid search.
type gridNode struct {
	Point  geometry.Point // grid-aligned canvas coordinates
	Key    gridKey
	GCost  float64 // cost from start
	HCost  float64 // heuristic cost to goal
	FCost  float64 // GCost + HCost
	Parent *gridNode
	Index  int // index in the heap
}

// gridKey identifies a grid cell for map lookups.
type gridKey struct {
	Col, Row int
}

// nodeQueue is a priority queue for search nodes.
type nodeQueue []*gridNode

func (nq nodeQueue) Len() int { return len(nq) }

func (nq nodeQueue) Less(i, j int) bool {
	if nq[i].FCost != nq[j].FCost {
		return nq[i].FCost < nq[j].FCost
	}
	// Tie-break 1: prefer nodes closer to the goal. The choice only affects
	// which of several equally good paths is returned, but it must be
	// deterministic.
	if nq[i].HCost != nq[j].HCost {
		return nq[i].HCost < nq[j].HCost
	}
	// Tie-break 2: coordinate order, for full determinism.
	if nq[i].Key.Col != nq[j].Key.Col {
		return nq[i].Key.Col < nq[j].Key.Col
	}
	return nq[i].Key.Row < nq[j].Key.Row
}

func (nq nodeQueue) Swap(i, j int) {
	nq[i], nq[j] = nq[j], nq[i]
	nq[i].Index = i
	nq[j].Index = j
}

func (nq *nodeQueue) Push(x interface{}) {
	n := len(*nq)
	node := x.(*gridNode)
	node.Index = n
	*nq = append(*nq, node)
}

func (nq *nodeQueue) Pop() interface{} {
	old := *nq
	n := len(old)
	node := old[n-1]
	old[n-1] = nil  // avoid memory leak
	node.Index = -1 // for safety
	*nq = old[0 : n-1]
	return node
}

// neighborOffsets are the 8-connected moves: 4 axis-aligned, 4 diagonal.
var neighborOffsets = [8][2]int{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
	{1, -1}, {1, 1}, {-1, 1}, {-1, -1},
}

// GridPathFinder finds connector routes over a uniform grid laid across the
// canvas, avoiding padded obstacle rectangles.
type GridPathFinder struct {
	cfg RouteConfig
}

// NewGridPathFinder creates a grid path finder with the given configuration.
func NewGridPathFinder(cfg RouteConfig) *GridPathFinder {
	if cfg.GridSize <= 0 {
		cfg.GridSize = GridSize
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = MaxIterations
	}
	return &GridPathFinder{cfg: cfg}
}

// FindPath searches for a route from start to end around the obstacles.
// It always returns at least two points: on failure (iteration cap reached
// or search space exhausted) it degrades to the direct line [start, end].
func (f *GridPathFinder) FindPath(start, end geometry.Point, obstacles []geometry.Rect) []geometry.Point {
	fallback := []geometry.Point{start, end}
	if !start.IsFinite() || !end.IsFinite() {
		return fallback
	}

	blocked := NewObstacleChecker(obstacles, f.cfg.ObstaclePadding)
	grid := f.cfg.GridSize
	goal := f.snap(end)

	openSet := &nodeQueue{}
	heap.Init(openSet)
	closedSet := make(map[gridKey]bool)
	nodeMap := make(map[gridKey]*gridNode)

	startNode := &gridNode{
		Point: f.snap(start),
		Key:   f.keyOf(start),
		GCost: 0,
		HCost: f.snap(start).Distance(goal),
	}
	startNode.FCost = startNode.GCost + startNode.HCost

	heap.Push(openSet, startNode)
	nodeMap[startNode.Key] = startNode

	iterations := 0

	for openSet.Len() > 0 {
		iterations++
		if iterations > f.cfg.MaxIterations {
			return fallback
		}

		current := heap.Pop(openSet).(*gridNode)

		// Within one grid cell of the goal counts as arrival; the exact
		// endpoint is substituted during reconstruction.
		if math.Abs(current.Point.X-goal.X) <= grid && math.Abs(current.Point.Y-goal.Y) <= grid {
			return f.reconstructPath(current, start, end)
		}

		closedSet[current.Key] = true

		for _, off := range neighborOffsets {
			neighborKey := gridKey{current.Key.Col + off[0], current.Key.Row + off[1]}
			if closedSet[neighborKey] {
				continue
			}

			neighbor := geometry.Point{
				X: float64(neighborKey.Col) * grid,
				Y: float64(neighborKey.Row) * grid,
			}
			if blocked(neighbor) {
				continue
			}

			tentativeGCost := current.GCost + f.moveCost(current, neighbor, obstacles)

			existing, exists := nodeMap[neighborKey]
			if !exists {
				newNode := &gridNode{
					Point:  neighbor,
					Key:    neighborKey,
					GCost:  tentativeGCost,
					HCost:  neighbor.Distance(goal),
					Parent: current,
				}
				newNode.FCost = newNode.GCost + newNode.HCost

				heap.Push(openSet, newNode)
				nodeMap[neighborKey] = newNode
			} else if tentativeGCost < existing.GCost {
				// Found a better path to an already-open node.
				existing.GCost = tentativeGCost
				existing.FCost = existing.GCost + existing.HCost
				existing.Parent = current
				if existing.Index >= 0 {
					heap.Fix(openSet, existing.Index)
				}
			}
		}
	}

	return fallback
}

// moveCost calculates the cost of stepping from current to next: Euclidean
// distance, plus a penalty for changing direction, plus a penalty for
// passing close to obstacles.
func (f *GridPathFinder) moveCost(current *gridNode, next geometry.Point, obstacles []geometry.Rect) float64 {
	cost := current.Point.Distance(next)

	// Direction-change penalty, proportional to (1−cosθ) between the
	// incoming and outgoing move vectors. Discourages zig-zag.
	if current.Parent != nil {
		in := current.Point.Sub(current.Parent.Point)
		out := next.Sub(current.Point)
		inLen := math.Hypot(in.X, in.Y)
		outLen := math.Hypot(out.X, out.Y)
		if inLen > 0 && outLen > 0 {
			cos := (in.X*out.X + in.Y*out.Y) / (inLen * outLen)
			cost += f.cfg.Cost.TurnPenalty * (1 - cos)
		}
	}

	// Soft-clearance penalty, quadratic as the path approaches an obstacle.
	// Discourages hugging element borders without forbidding it.
	if f.cfg.Cost.ClearanceWeight > 0 && f.cfg.Cost.ClearanceRadius > 0 {
		dist, idx := nearestObstacleDistance(next, obstacles)
		if idx >= 0 && dist < f.cfg.Cost.ClearanceRadius {
			ratio := 1 - dist/f.cfg.Cost.ClearanceRadius
			cost += f.cfg.Cost.ClearanceWeight * ratio * ratio
		}
	}

	return cost
}

// reconstructPath builds the final path by walking parent links, then
// substitutes the exact original endpoints for the grid-snapped ones.
func (f *GridPathFinder) reconstructPath(goalNode *gridNode, start, end geometry.Point) []geometry.Point {
	var points []geometry.Point
	for current := goalNode; current != nil; current = current.Parent {
		points = append(points, current.Point)
	}
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}

	if len(points) < 2 {
		return []geometry.Point{start, end}
	}
	points[0] = start
	points[len(points)-1] = end
	return points
}

// snap rounds a canvas point to the nearest grid point.
func (f *GridPathFinder) snap(p geometry.Point) geometry.Point {
	return geometry.Point{
		X: math.Round(p.X/f.cfg.GridSize) * f.cfg.GridSize,
		Y: math.Round(p.Y/f.cfg.GridSize) * f.cfg.GridSize,
	}
}

// keyOf returns the grid cell containing the snapped point.
func (f *GridPathFinder) keyOf(p geometry.Point) gridKey {
	return gridKey{
		Col: int(math.Round(p.X / f.cfg.GridSize)),
		Row: int(math.Round(p.Y / f.cfg.GridSize)),
	}
}
