package routing

import (
	"testing"

	"quiver/geometry"
)

func TestSimplifyPathCollinear(t *testing.T) {
	// Dense straight run collapses to its endpoints.
	var path []geometry.Point
	for i := 0; i <= 10; i++ {
		path = append(path, geometry.Pt(float64(i)*20, 0))
	}
	got := SimplifyPath(path, SimplifyTolerance)
	if len(got) != 2 {
		t.Fatalf("collinear path simplified to %d points, want 2: %v", len(got), got)
	}
	if got[0] != path[0] || got[1] != path[len(path)-1] {
		t.Errorf("endpoints not preserved: %v", got)
	}
}

func TestSimplifyPathShortInput(t *testing.T) {
	for _, path := range [][]geometry.Point{
		nil,
		{geometry.Pt(1, 1)},
		{geometry.Pt(1, 1), geometry.Pt(2, 2)},
	} {
		got := SimplifyPath(path, 10)
		if len(got) != len(path) {
			t.Errorf("short path changed length: got %d, want %d", len(got), len(path))
		}
	}
}

func TestSimplifyPathKeepsLargeDeviation(t *testing.T) {
	path := []geometry.Point{
		geometry.Pt(0, 0),
		geometry.Pt(100, 120), // far off the chord
		geometry.Pt(200, 0),
	}
	got := SimplifyPath(path, 40)
	if len(got) != 3 {
		t.Fatalf("large deviation dropped: %v", got)
	}
}

func TestSimplifyPathCornerPreservation(t *testing.T) {
	// The middle point turns sharply (90 degrees) but sits only 5 units from
	// the chord. Protected corners survive any tolerance.
	path := []geometry.Point{
		geometry.Pt(0, 0),
		geometry.Pt(5, 5),
		geometry.Pt(10, 0),
	}

	for _, tolerance := range []float64{10, 1000, 1e9} {
		got := SimplifyPath(path, tolerance)
		found := false
		for _, p := range got {
			if p == path[1] {
				found = true
			}
		}
		if !found {
			t.Errorf("tolerance %g: corner %v dropped: %v", tolerance, path[1], got)
		}
	}
}

func TestSimplifyPathGentleCurveCollapses(t *testing.T) {
	// Shallow bumps below both the corner threshold and the tolerance
	// disappear.
	path := []geometry.Point{
		geometry.Pt(0, 0),
		geometry.Pt(100, 3),
		geometry.Pt(200, -2),
		geometry.Pt(300, 0),
	}
	got := SimplifyPath(path, SimplifyTolerance)
	if len(got) != 2 {
		t.Errorf("gentle curve kept %d points, want 2: %v", len(got), got)
	}
}
