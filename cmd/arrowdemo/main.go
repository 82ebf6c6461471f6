// Command arrowdemo routes the arrows of a sample whiteboard and writes the
// result to a PNG, including one connector that has to steer around a card.
package main

import (
	"flag"
	"fmt"
	"os"

	"quiver/board"
	"quiver/geometry"
	"quiver/render"
)

func main() {
	out := flag.String("o", "arrowdemo.png", "output PNG path")
	waypoints := flag.Bool("waypoints", false, "draw routed waypoints as debug dots")
	flag.Parse()

	b := board.New()
	b.Elements = []board.Element{
		{ID: 1, Kind: board.KindNote, Bounds: geometry.Rect{X: 0, Y: 80, Width: 140, Height: 70}, Label: "reading notes"},
		{ID: 2, Kind: board.KindPDFCard, Bounds: geometry.Rect{X: 420, Y: 60, Width: 140, Height: 90}, Label: "paper.pdf"},
		{ID: 3, Kind: board.KindSticky, Bounds: geometry.Rect{X: 220, Y: 40, Width: 120, Height: 150}, Label: "todo"},
		{ID: 4, Kind: board.KindHighlight, Bounds: geometry.Rect{X: 180, Y: 280, Width: 180, Height: 60}, Label: "key quote"},
	}
	b.Arrows = []board.Arrow{
		{ID: 1, From: 1, To: 2, Style: "manual"},
		{ID: 2, From: 1, To: 4, Style: "auto"},
		{ID: 3, From: 4, To: 2, Style: "selected"},
	}

	if err := render.BoardPNG(b, *out, render.Options{ShowWaypoints: *waypoints}); err != nil {
		fmt.Fprintf(os.Stderr, "arrowdemo: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *out)
}
