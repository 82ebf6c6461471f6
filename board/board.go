// Package board models a whiteboard of note cards connected by arrows, and
// drives the routing engine the way the canvas view does: one edge-selection
// call per endpoint, then one routing call per arrow with every other
// element's bounds as obstacles.
package board

import (
	"fmt"

	"quiver/geometry"
	"quiver/routing"
)

// ElementKind identifies what sort of card an element is. The router only
// ever sees the bounds; the kind matters to rendering and persistence.
type ElementKind string

const (
	KindNote      ElementKind = "note"
	KindSticky    ElementKind = "sticky"
	KindTextBox   ElementKind = "text"
	KindPDFCard   ElementKind = "pdf"
	KindHighlight ElementKind = "highlight"
)

// Element is a card on the whiteboard.
type Element struct {
	ID     int
	Kind   ElementKind
	Bounds geometry.Rect
	Label  string
}

// Arrow is a directed connector between two elements. FromSide and ToSide
// optionally pin an endpoint to a preferred edge; when nil the connection
// point follows the opposite element's center.
type Arrow struct {
	ID       int
	From     int // source element ID
	To       int // target element ID
	Style    string // preset name; empty means "manual"
	FromSide *geometry.Side
	ToSide   *geometry.Side
}

// RoutedArrow pairs an arrow with its computed path and endpoints.
type RoutedArrow struct {
	Arrow  Arrow
	Source geometry.ConnectionPoint
	Target geometry.ConnectionPoint
	Path   routing.PathResult
}

// Board holds the visible elements and arrows of one whiteboard view.
type Board struct {
	Elements []Element
	Arrows   []Arrow

	router *routing.Router
}

// New creates a board routed with the default configuration.
func New() *Board {
	return &Board{router: routing.NewRouter(routing.DefaultRouteConfig())}
}

// NewWithConfig creates a board routed with a custom configuration.
func NewWithConfig(cfg routing.RouteConfig) *Board {
	return &Board{router: routing.NewRouter(cfg)}
}

// Element returns the element with the given ID.
func (b *Board) Element(id int) (*Element, bool) {
	for i := range b.Elements {
		if b.Elements[i].ID == id {
			return &b.Elements[i], true
		}
	}
	return nil, false
}

// MoveElement moves an element's top-left corner. Arrows are re-routed by
// the caller on the next redraw; the board keeps no cached paths.
func (b *Board) MoveElement(id int, x, y float64) bool {
	el, ok := b.Element(id)
	if !ok {
		return false
	}
	el.Bounds.X = x
	el.Bounds.Y = y
	return true
}

// Obstacles returns the bounds of every element except the given IDs.
func (b *Board) Obstacles(exclude ...int) []geometry.Rect {
	rects := make([]geometry.Rect, 0, len(b.Elements))
	for _, el := range b.Elements {
		skip := false
		for _, id := range exclude {
			if el.ID == id {
				skip = true
				break
			}
		}
		if !skip {
			rects = append(rects, el.Bounds)
		}
	}
	return rects
}

// Route computes the path for one arrow. The connection points face the
// opposite element's center; all other visible elements are obstacles.
func (b *Board) Route(arrow Arrow) (RoutedArrow, error) {
	from, ok := b.Element(arrow.From)
	if !ok {
		return RoutedArrow{}, fmt.Errorf("arrow %d: unknown source element %d", arrow.ID, arrow.From)
	}
	to, ok := b.Element(arrow.To)
	if !ok {
		return RoutedArrow{}, fmt.Errorf("arrow %d: unknown target element %d", arrow.ID, arrow.To)
	}

	source := routing.ConnectionPointFor(from.Bounds, to.Bounds.Center())
	if arrow.FromSide != nil {
		source = routing.ConnectionPointOnSide(from.Bounds, *arrow.FromSide)
	}
	target := routing.ConnectionPointFor(to.Bounds, from.Bounds.Center())
	if arrow.ToSide != nil {
		target = routing.ConnectionPointOnSide(to.Bounds, *arrow.ToSide)
	}
	obstacles := b.Obstacles(arrow.From, arrow.To)

	path := b.router.FindArrowPath(source.Point, target.Point, obstacles, &from.Bounds, &to.Bounds)
	return RoutedArrow{
		Arrow:  arrow,
		Source: source,
		Target: target,
		Path:   path,
	}, nil
}

// RouteAll routes every arrow on the board.
func (b *Board) RouteAll() ([]RoutedArrow, error) {
	routed := make([]RoutedArrow, 0, len(b.Arrows))
	for _, arrow := range b.Arrows {
		ra, err := b.Route(arrow)
		if err != nil {
			return nil, fmt.Errorf("failed to route arrow %d (%d->%d): %w", arrow.ID, arrow.From, arrow.To, err)
		}
		routed = append(routed, ra)
	}
	return routed, nil
}
