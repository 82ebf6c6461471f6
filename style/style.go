// Package style holds the visual configuration for arrows. Styles are pure
// data handed to the renderer; the routing engine neither reads nor
// validates them.
package style

// CurveType selects how the renderer interprets the routed points.
type CurveType string

const (
	CurveBezier   CurveType = "bezier"
	CurveStraight CurveType = "straight"
)

// ArrowHeadType selects the arrowhead shape drawn at the target end.
type ArrowHeadType string

const (
	HeadTriangle ArrowHeadType = "triangle"
	HeadCircle   ArrowHeadType = "circle"
	HeadDiamond  ArrowHeadType = "diamond"
	HeadNone     ArrowHeadType = "none"
)

// ArrowStyle describes how a single arrow is stroked.
type ArrowStyle struct {
	StrokeColor   string
	StrokeWidth   float64
	Opacity       float64
	CurveType     CurveType
	ArrowHeadType ArrowHeadType
	ArrowHeadSize float64
	DashEnabled   bool
	DashPattern   []float64
	ShadowEnabled bool
	ShadowBlur    float64
	ShadowColor   string
}

// Named presets. These are immutable configuration, keyed by how the arrow
// came to exist or what UI state it is in.
var (
	// Manual is the default for arrows the user drew themselves.
	Manual = ArrowStyle{
		StrokeColor:   "#4a5568",
		StrokeWidth:   2,
		Opacity:       1,
		CurveType:     CurveBezier,
		ArrowHeadType: HeadTriangle,
		ArrowHeadSize: 10,
	}

	// Auto is used for arrows created by automatic linking.
	Auto = ArrowStyle{
		StrokeColor:   "#a0aec0",
		StrokeWidth:   1.5,
		Opacity:       0.8,
		CurveType:     CurveBezier,
		ArrowHeadType: HeadTriangle,
		ArrowHeadSize: 8,
		DashEnabled:   true,
		DashPattern:   []float64{6, 4},
	}

	// Selected highlights the arrow the user has picked.
	Selected = ArrowStyle{
		StrokeColor:   "#3182ce",
		StrokeWidth:   2.5,
		Opacity:       1,
		CurveType:     CurveBezier,
		ArrowHeadType: HeadTriangle,
		ArrowHeadSize: 12,
		ShadowEnabled: true,
		ShadowBlur:    6,
		ShadowColor:   "#3182ce",
	}

	// Preview is the ghost arrow shown while a connection is being dragged.
	Preview = ArrowStyle{
		StrokeColor:   "#718096",
		StrokeWidth:   1.5,
		Opacity:       0.5,
		CurveType:     CurveBezier,
		ArrowHeadType: HeadTriangle,
		ArrowHeadSize: 8,
		DashEnabled:   true,
		DashPattern:   []float64{4, 4},
	}
)

// Presets maps preset names to styles for lookup by name.
var Presets = map[string]ArrowStyle{
	"manual":   Manual,
	"auto":     Auto,
	"selected": Selected,
	"preview":  Preview,
}
