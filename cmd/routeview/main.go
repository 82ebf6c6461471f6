// Command routeview is an interactive terminal viewer for the routing
// engine: arrow keys drag one card around the board and the connector
// re-routes on every move, the same synchronous per-frame call the canvas
// view makes during a drag.
package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"quiver/board"
	"quiver/geometry"
	"quiver/routing"
)

// Terminal cells are roughly twice as tall as wide; compensate so the
// board keeps its proportions on screen.
const (
	cellW = 10.0
	cellH = 20.0
)

var (
	styleCard     = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleDragCard = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleCurve    = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleWaypoint = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy)
)

type viewer struct {
	screen        tcell.Screen
	board         *board.Board
	dragID        int
	showWaypoints bool
}

func main() {
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "routeview: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "routeview: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	v := &viewer{
		screen: screen,
		board:  demoBoard(),
		dragID: 2,
	}
	v.run()
}

func demoBoard() *board.Board {
	b := board.New()
	b.Elements = []board.Element{
		{ID: 1, Kind: board.KindNote, Bounds: geometry.Rect{X: 20, Y: 100, Width: 120, Height: 60}, Label: "source"},
		{ID: 2, Kind: board.KindNote, Bounds: geometry.Rect{X: 460, Y: 100, Width: 120, Height: 60}, Label: "target"},
		{ID: 3, Kind: board.KindSticky, Bounds: geometry.Rect{X: 260, Y: 60, Width: 100, Height: 140}, Label: "wall"},
	}
	b.Arrows = []board.Arrow{{ID: 1, From: 1, To: 2}}
	return b
}

func (v *viewer) run() {
	for {
		v.draw()
		ev := v.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			v.screen.Sync()
		case *tcell.EventKey:
			if !v.handleKey(ev) {
				return
			}
		}
	}
}

func (v *viewer) handleKey(ev *tcell.EventKey) bool {
	el, ok := v.board.Element(v.dragID)
	if !ok {
		return false
	}
	step := routing.GridSize

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		v.board.MoveElement(v.dragID, el.Bounds.X, el.Bounds.Y-step)
	case tcell.KeyDown:
		v.board.MoveElement(v.dragID, el.Bounds.X, el.Bounds.Y+step)
	case tcell.KeyLeft:
		v.board.MoveElement(v.dragID, el.Bounds.X-step, el.Bounds.Y)
	case tcell.KeyRight:
		v.board.MoveElement(v.dragID, el.Bounds.X+step, el.Bounds.Y)
	case tcell.KeyTab:
		v.cycleDrag()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'w':
			v.showWaypoints = !v.showWaypoints
		}
	}
	return true
}

func (v *viewer) cycleDrag() {
	for i, el := range v.board.Elements {
		if el.ID == v.dragID {
			v.dragID = v.board.Elements[(i+1)%len(v.board.Elements)].ID
			return
		}
	}
}

func (v *viewer) draw() {
	v.screen.Clear()

	routed, err := v.board.RouteAll()
	if err == nil {
		for _, ra := range routed {
			for _, p := range routing.SampleCurve(ra.Path.Points, 24) {
				v.plot(p, '·', styleCurve)
			}
			if v.showWaypoints {
				for _, wp := range ra.Path.Waypoints {
					v.plot(wp, 'o', styleWaypoint)
				}
			}
		}
	}

	for _, el := range v.board.Elements {
		st := styleCard
		if el.ID == v.dragID {
			st = styleDragCard
		}
		v.drawCard(el, st)
	}

	v.status("arrows: drag card   tab: next card   w: waypoints   q: quit")
	v.screen.Show()
}

func (v *viewer) drawCard(el board.Element, st tcell.Style) {
	x0 := int(el.Bounds.X / cellW)
	y0 := int(el.Bounds.Y / cellH)
	x1 := int((el.Bounds.X + el.Bounds.Width) / cellW)
	y1 := int((el.Bounds.Y + el.Bounds.Height) / cellH)

	for x := x0; x <= x1; x++ {
		v.screen.SetContent(x, y0, '─', nil, st)
		v.screen.SetContent(x, y1, '─', nil, st)
	}
	for y := y0; y <= y1; y++ {
		v.screen.SetContent(x0, y, '│', nil, st)
		v.screen.SetContent(x1, y, '│', nil, st)
	}
	v.screen.SetContent(x0, y0, '┌', nil, st)
	v.screen.SetContent(x1, y0, '┐', nil, st)
	v.screen.SetContent(x0, y1, '└', nil, st)
	v.screen.SetContent(x1, y1, '┘', nil, st)

	for i, r := range el.Label {
		if x0+1+i >= x1 {
			break
		}
		v.screen.SetContent(x0+1+i, (y0+y1)/2, r, nil, st)
	}
}

func (v *viewer) plot(p geometry.Point, r rune, st tcell.Style) {
	v.screen.SetContent(int(p.X/cellW), int(p.Y/cellH), r, nil, st)
}

func (v *viewer) status(msg string) {
	w, h := v.screen.Size()
	for x := 0; x < w; x++ {
		v.screen.SetContent(x, h-1, ' ', nil, styleStatus)
	}
	for i, r := range msg {
		v.screen.SetContent(i, h-1, r, nil, styleStatus)
	}
}
