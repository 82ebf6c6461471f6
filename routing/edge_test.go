package routing

import (
	"math"
	"testing"

	"quiver/geometry"
)

func TestSelectEdgePoint(t *testing.T) {
	rect := geometry.Rect{X: 0, Y: 0, Width: 100, Height: 50}

	tests := []struct {
		name   string
		target geometry.Point
		want   geometry.Point
	}{
		{"target to the right", geometry.Pt(300, 25), geometry.Pt(100, 25)},
		{"target to the left", geometry.Pt(-200, 25), geometry.Pt(0, 25)},
		{"target above", geometry.Pt(50, -100), geometry.Pt(50, 0)},
		{"target below", geometry.Pt(50, 200), geometry.Pt(50, 25+25)},
		{"diagonal exits right edge", geometry.Pt(250, 75), geometry.Pt(100, 37.5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SelectEdgePoint(rect, tt.target)
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("SelectEdgePoint = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSelectEdgePointDegenerate(t *testing.T) {
	rect := geometry.Rect{X: 0, Y: 0, Width: 100, Height: 50}
	// Target at the rectangle center: no exit direction. Must not divide by
	// zero; falls back to the right-edge midpoint.
	got := SelectEdgePoint(rect, rect.Center())
	if !got.IsFinite() {
		t.Fatalf("degenerate edge point is not finite: %v", got)
	}
	if got != geometry.Pt(100, 25) {
		t.Errorf("degenerate edge point = %v, want (100, 25)", got)
	}
}

func TestSelectEdgePointStaysOnBoundary(t *testing.T) {
	rect := geometry.Rect{X: 10, Y: 20, Width: 80, Height: 40}
	targets := []geometry.Point{
		geometry.Pt(500, 500), geometry.Pt(-500, -500),
		geometry.Pt(11, 500), geometry.Pt(500, 21), geometry.Pt(50, 40.0001),
	}
	for _, target := range targets {
		got := SelectEdgePoint(rect, target)
		if got.X < rect.X || got.X > rect.X+rect.Width ||
			got.Y < rect.Y || got.Y > rect.Y+rect.Height {
			t.Errorf("edge point %v for target %v escapes rect", got, target)
		}
	}
}

func TestConnectionPointOnSide(t *testing.T) {
	rect := geometry.Rect{X: 10, Y: 20, Width: 100, Height: 40}
	tests := []struct {
		side geometry.Side
		want geometry.Point
	}{
		{geometry.SideTop, geometry.Pt(60, 20)},
		{geometry.SideBottom, geometry.Pt(60, 60)},
		{geometry.SideLeft, geometry.Pt(10, 40)},
		{geometry.SideRight, geometry.Pt(110, 40)},
	}
	for _, tt := range tests {
		t.Run(tt.side.String(), func(t *testing.T) {
			cp := ConnectionPointOnSide(rect, tt.side)
			if cp.Point != tt.want {
				t.Errorf("point = %v, want %v", cp.Point, tt.want)
			}
			if cp.Side != tt.side || cp.Angle != tt.side.Angle() {
				t.Errorf("side/angle = %v/%v, want %v/%v", cp.Side, cp.Angle, tt.side, tt.side.Angle())
			}
		})
	}
}

func TestConnectionPointFor(t *testing.T) {
	rect := geometry.Rect{X: 0, Y: 0, Width: 100, Height: 50}

	tests := []struct {
		name      string
		target    geometry.Point
		wantSide  geometry.Side
		wantAngle float64
	}{
		{"right", geometry.Pt(300, 25), geometry.SideRight, 0},
		{"left", geometry.Pt(-300, 25), geometry.SideLeft, math.Pi},
		{"top", geometry.Pt(50, -300), geometry.SideTop, -math.Pi / 2},
		{"bottom", geometry.Pt(50, 300), geometry.SideBottom, math.Pi / 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp := ConnectionPointFor(rect, tt.target)
			if cp.Side != tt.wantSide {
				t.Errorf("Side = %v, want %v", cp.Side, tt.wantSide)
			}
			if math.Abs(cp.Angle-tt.wantAngle) > 1e-9 {
				t.Errorf("Angle = %v, want %v", cp.Angle, tt.wantAngle)
			}
		})
	}
}
