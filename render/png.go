// Package render rasterizes a routed board to PNG. It consumes PathResult
// control sequences exactly as any 2D vector surface would: one MoveTo
// followed by a CubicTo per segment.
package render

import (
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"quiver/board"
	"quiver/geometry"
	"quiver/routing"
	"quiver/style"
)

const (
	margin      = 40.0
	fontSize    = 12.0
	cornerRound = 6.0
)

var elementFill = map[board.ElementKind]color.Color{
	board.KindNote:      color.RGBA{0xff, 0xff, 0xff, 0xff},
	board.KindSticky:    color.RGBA{0xfe, 0xf3, 0xc7, 0xff},
	board.KindTextBox:   color.RGBA{0xf7, 0xfa, 0xfc, 0xff},
	board.KindPDFCard:   color.RGBA{0xfe, 0xe2, 0xe2, 0xff},
	board.KindHighlight: color.RGBA{0xfe, 0xfc, 0xbf, 0xff},
}

// Options controls optional render output.
type Options struct {
	ShowWaypoints bool // draw debug dots at the routed waypoints
}

// BoardPNG routes every arrow on the board and writes the result to a PNG
// file.
func BoardPNG(b *board.Board, filename string, opts Options) error {
	routed, err := b.RouteAll()
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	minX, minY, maxX, maxY, ok := bounds(b)
	if !ok {
		return fmt.Errorf("render: nothing to draw")
	}

	width := int(maxX - minX + 2*margin)
	height := int(maxY - minY + 2*margin)
	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	face, err := monoFace()
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	dc.SetFontFace(face)

	offX := margin - minX
	offY := margin - minY

	// Arrows first so cards cover curve ends that tuck under their borders.
	for _, ra := range routed {
		st, ok := style.Presets[ra.Arrow.Style]
		if !ok {
			st = style.Manual
		}
		drawArrow(dc, ra, st, offX, offY, opts)
	}
	for _, el := range b.Elements {
		drawElement(dc, el, offX, offY)
	}

	return dc.SavePNG(filename)
}

// drawArrow strokes one routed curve with its style and arrowhead.
func drawArrow(dc *gg.Context, ra board.RoutedArrow, st style.ArrowStyle, offX, offY float64, opts Options) {
	pts := ra.Path.Points
	if len(pts) < 8 {
		return
	}

	if st.ShadowEnabled {
		dc.SetHexColor(st.ShadowColor)
		dc.SetLineWidth(st.StrokeWidth + st.ShadowBlur/2)
		tracePath(dc, pts, offX, offY)
		dc.Stroke()
	}

	setStroke(dc, st)
	tracePath(dc, pts, offX, offY)
	dc.Stroke()
	dc.SetDash()

	drawArrowhead(dc, pts, st, offX, offY)

	if opts.ShowWaypoints {
		dc.SetRGBA(0.2, 0.5, 0.9, 0.9)
		for _, wp := range ra.Path.Waypoints {
			dc.DrawCircle(wp.X+offX, wp.Y+offY, 3)
			dc.Fill()
		}
	}
}

func setStroke(dc *gg.Context, st style.ArrowStyle) {
	r, g, b := hexRGB(st.StrokeColor)
	dc.SetRGBA(r, g, b, st.Opacity)
	dc.SetLineWidth(st.StrokeWidth)
	if st.DashEnabled && len(st.DashPattern) > 0 {
		dc.SetDash(st.DashPattern...)
	}
}

// tracePath walks the flattened control sequence: each segment contributes
// two control points and an anchor.
func tracePath(dc *gg.Context, pts []float64, offX, offY float64) {
	dc.MoveTo(pts[0]+offX, pts[1]+offY)
	for i := 2; i+5 < len(pts); i += 6 {
		dc.CubicTo(
			pts[i]+offX, pts[i+1]+offY,
			pts[i+2]+offX, pts[i+3]+offY,
			pts[i+4]+offX, pts[i+5]+offY,
		)
	}
}

func drawArrowhead(dc *gg.Context, pts []float64, st style.ArrowStyle, offX, offY float64) {
	if st.ArrowHeadType == style.HeadNone || st.ArrowHeadSize <= 0 {
		return
	}

	n := len(pts)
	tip := geometry.Pt(pts[n-2]+offX, pts[n-1]+offY)
	angle := routing.ArrowheadAngle(pts)
	size := st.ArrowHeadSize

	r, g, b := hexRGB(st.StrokeColor)
	dc.SetRGBA(r, g, b, st.Opacity)

	switch st.ArrowHeadType {
	case style.HeadCircle:
		dc.DrawCircle(tip.X, tip.Y, size/2)
		dc.Fill()
	case style.HeadDiamond:
		dc.MoveTo(tip.X, tip.Y)
		dc.LineTo(tip.X-size/2*math.Cos(angle)+size/3*math.Sin(angle), tip.Y-size/2*math.Sin(angle)-size/3*math.Cos(angle))
		dc.LineTo(tip.X-size*math.Cos(angle), tip.Y-size*math.Sin(angle))
		dc.LineTo(tip.X-size/2*math.Cos(angle)-size/3*math.Sin(angle), tip.Y-size/2*math.Sin(angle)+size/3*math.Cos(angle))
		dc.ClosePath()
		dc.Fill()
	default: // triangle
		spread := 0.45
		dc.MoveTo(tip.X, tip.Y)
		dc.LineTo(tip.X-size*math.Cos(angle-spread), tip.Y-size*math.Sin(angle-spread))
		dc.LineTo(tip.X-size*math.Cos(angle+spread), tip.Y-size*math.Sin(angle+spread))
		dc.ClosePath()
		dc.Fill()
	}
}

func drawElement(dc *gg.Context, el board.Element, offX, offY float64) {
	r := el.Bounds
	x, y := r.X+offX, r.Y+offY

	fill, ok := elementFill[el.Kind]
	if !ok {
		fill = color.White
	}
	dc.SetColor(fill)
	dc.DrawRoundedRectangle(x, y, r.Width, r.Height, cornerRound)
	dc.Fill()

	dc.SetRGB(0.29, 0.33, 0.41)
	dc.SetLineWidth(1.5)
	dc.DrawRoundedRectangle(x, y, r.Width, r.Height, cornerRound)
	dc.Stroke()

	if el.Label != "" {
		dc.DrawStringAnchored(el.Label, x+r.Width/2, y+r.Height/2, 0.5, 0.35)
	}
}

func bounds(b *board.Board) (minX, minY, maxX, maxY float64, ok bool) {
	for i, el := range b.Elements {
		r := el.Bounds
		if i == 0 {
			minX, minY = r.X, r.Y
			maxX, maxY = r.X+r.Width, r.Y+r.Height
			ok = true
			continue
		}
		minX = math.Min(minX, r.X)
		minY = math.Min(minY, r.Y)
		maxX = math.Max(maxX, r.X+r.Width)
		maxY = math.Max(maxY, r.Y+r.Height)
	}
	return minX, minY, maxX, maxY, ok
}

func monoFace() (font.Face, error) {
	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return truetype.NewFace(ttf, &truetype.Options{
		Size:    fontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// hexRGB parses a #rrggbb color string; unknown input falls back to black.
func hexRGB(s string) (float64, float64, float64) {
	var r, g, b int
	if len(s) == 7 && s[0] == '#' {
		if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
			return 0, 0, 0
		}
	}
	return float64(r) / 255, float64(g) / 255, float64(b) / 255
}
