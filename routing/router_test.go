package routing

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"quiver/geometry"
)

func TestFindArrowPathUnobstructed(t *testing.T) {
	// Concrete scenario: two cards side by side, nothing between them.
	source := geometry.Rect{X: 0, Y: 0, Width: 100, Height: 50}
	target := geometry.Rect{X: 300, Y: 0, Width: 100, Height: 50}

	start := SelectEdgePoint(source, target.Center())
	end := SelectEdgePoint(target, source.Center())
	if start != geometry.Pt(100, 25) || end != geometry.Pt(300, 25) {
		t.Fatalf("edge points = %v, %v, want (100,25), (300,25)", start, end)
	}

	result := FindArrowPath(start, end, []geometry.Rect{source, target}, &source, &target)

	if result.Segments != 1 {
		t.Fatalf("segments = %d, want 1", result.Segments)
	}
	want := []float64{100, 25, 166.67, 25, 233.33, 25, 300, 25}
	if diff := cmp.Diff(want, result.Points, approxFloats); diff != "" {
		t.Errorf("path mismatch (-want +got):\n%s", diff)
	}
}

func TestFindArrowPathRoutesAroundObstacle(t *testing.T) {
	// Concrete scenario: an obstacle card directly between the endpoints.
	source := geometry.Rect{X: 0, Y: 0, Width: 100, Height: 50}
	target := geometry.Rect{X: 300, Y: 0, Width: 100, Height: 50}
	obstacle := geometry.Rect{X: 150, Y: 0, Width: 50, Height: 100}

	start := SelectEdgePoint(source, target.Center())
	end := SelectEdgePoint(target, source.Center())
	obstacles := []geometry.Rect{source, target, obstacle}

	result := FindArrowPath(start, end, obstacles, &source, &target)

	if len(result.Waypoints) < 4 {
		t.Fatalf("expected at least 2 intermediate waypoints, got %v", result.Waypoints)
	}
	for _, s := range SampleCurve(result.Points, 64) {
		if s.X > obstacle.X && s.X < obstacle.X+obstacle.Width &&
			s.Y > obstacle.Y && s.Y < obstacle.Y+obstacle.Height {
			t.Errorf("curve sample %v falls strictly inside the obstacle", s)
		}
	}
}

func TestFindArrowPathEndpointExactness(t *testing.T) {
	tests := []struct {
		name      string
		start     geometry.Point
		end       geometry.Point
		obstacles []geometry.Rect
	}{
		{"no obstacles, off-grid endpoints", geometry.Pt(13.4, 7.9), geometry.Pt(511.7, 303.2), nil},
		{"routed around a card", geometry.Pt(10, 50), geometry.Pt(400, 50),
			[]geometry.Rect{{X: 150, Y: 0, Width: 60, Height: 100}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindArrowPath(tt.start, tt.end, tt.obstacles, nil, nil)
			n := len(result.Points)
			if n < 8 {
				t.Fatalf("too few points: %d", n)
			}
			if result.Points[0] != tt.start.X || result.Points[1] != tt.start.Y {
				t.Errorf("start = (%v, %v), want %v", result.Points[0], result.Points[1], tt.start)
			}
			if result.Points[n-2] != tt.end.X || result.Points[n-1] != tt.end.Y {
				t.Errorf("end = (%v, %v), want %v", result.Points[n-2], result.Points[n-1], tt.end)
			}
		})
	}
}

func TestFindArrowPathIgnoresOwnCards(t *testing.T) {
	// The endpoints' own rectangles must never count as obstacles, even
	// though the connector starts on their boundary.
	source := geometry.Rect{X: 0, Y: 0, Width: 100, Height: 50}
	target := geometry.Rect{X: 120, Y: 0, Width: 100, Height: 50}

	start := SelectEdgePoint(source, target.Center())
	end := SelectEdgePoint(target, source.Center())

	result := FindArrowPath(start, end, []geometry.Rect{source, target}, &source, &target)
	if result.Segments != 1 {
		t.Errorf("adjacent cards should connect with a straight segment, got %d segments", result.Segments)
	}
}

func TestFindArrowPathDegenerate(t *testing.T) {
	p := geometry.Pt(50, 50)
	result := FindArrowPath(p, p, nil, nil, nil)

	if len(result.Points) < 8 {
		t.Fatalf("degenerate arrow produced %d floats", len(result.Points))
	}
	for _, v := range result.Points {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("degenerate arrow produced non-finite output: %v", result.Points)
		}
	}
}

func TestFindArrowPathNonFiniteInput(t *testing.T) {
	result := FindArrowPath(geometry.Pt(math.NaN(), 10), geometry.Pt(100, math.Inf(1)), nil, nil, nil)
	for _, v := range result.Points {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("non-finite input leaked into output: %v", result.Points)
		}
	}
}

func TestFindArrowPathAlwaysFinite(t *testing.T) {
	// Zero-area obstacle rectangles must not poison the math.
	obstacles := []geometry.Rect{
		{X: 100, Y: 100, Width: 0, Height: 0},
		{X: 200, Y: 0, Width: 40, Height: 200},
	}
	result := FindArrowPath(geometry.Pt(0, 100), geometry.Pt(400, 100), obstacles, nil, nil)
	for _, v := range result.Points {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("non-finite output: %v", result.Points)
		}
	}
}

func TestArrowheadAngle(t *testing.T) {
	points, _ := SmoothCurve([]geometry.Point{geometry.Pt(0, 0), geometry.Pt(100, 0)})
	if got := ArrowheadAngle(points); got != 0 {
		t.Errorf("horizontal arrow angle = %v, want 0", got)
	}
	points, _ = SmoothCurve([]geometry.Point{geometry.Pt(0, 0), geometry.Pt(0, 100)})
	if got := ArrowheadAngle(points); math.Abs(got-math.Pi/2) > 1e-9 {
		t.Errorf("vertical arrow angle = %v, want pi/2", got)
	}
	if got := ArrowheadAngle(nil); got != 0 {
		t.Errorf("empty path angle = %v, want 0", got)
	}
}
