// Package resize drives interactive shape resizing: it generates the
// handle set for a shape and runs the drag session state machine that
// turns pointer deltas into updated control points.
package resize

import (
	"fmt"

	"areal/geometry"
	"areal/shape"
)

// HandleType distinguishes corner handles from edge-midpoint handles.
type HandleType int

const (
	// HandleCorner moves two coordinates at once.
	HandleCorner HandleType = iota
	// HandleEdge moves a single coordinate (rectangles) or one polygon
	// edge's two endpoints together.
	HandleEdge
)

// Handle is a transient interactive control for one resize gesture. The
// handle set is recomputed every time a shape becomes resize-active and is
// never persisted.
type Handle struct {
	ID       string
	Type     HandleType
	Tag      string // position tag: "top-left", "right", "edge-2", ...
	Position geometry.Point
	Cursor   string // cursor hint for the rendering layer
}

// Rectangle handle tags in generation order.
var rectHandleTags = []struct {
	tag    string
	typ    HandleType
	cursor string
}{
	{"top-left", HandleCorner, "nwse-resize"},
	{"top-right", HandleCorner, "nesw-resize"},
	{"bottom-right", HandleCorner, "nwse-resize"},
	{"bottom-left", HandleCorner, "nesw-resize"},
	{"top", HandleEdge, "ns-resize"},
	{"right", HandleEdge, "ew-resize"},
	{"bottom", HandleEdge, "ns-resize"},
	{"left", HandleEdge, "ew-resize"},
}

// HandlesFor computes the handle set for a shape: rectangles get four
// corner handles plus four edge-midpoint handles; polygons and presets get
// one midpoint handle per outline edge. Shapes without enough control
// points get no handles.
func HandlesFor(s shape.Shape) []Handle {
	switch s.Kind {
	case shape.Rectangle:
		if len(s.ControlPoints) != 2 {
			return nil
		}
		tl, br := s.ControlPoints[0], s.ControlPoints[1]
		midX := (tl.X + br.X) / 2
		midY := (tl.Y + br.Y) / 2
		positions := []geometry.Point{
			{X: tl.X, Y: tl.Y},
			{X: br.X, Y: tl.Y},
			{X: br.X, Y: br.Y},
			{X: tl.X, Y: br.Y},
			{X: midX, Y: tl.Y},
			{X: br.X, Y: midY},
			{X: midX, Y: br.Y},
			{X: tl.X, Y: midY},
		}
		handles := make([]Handle, len(rectHandleTags))
		for i, spec := range rectHandleTags {
			handles[i] = Handle{
				ID:       spec.tag,
				Type:     spec.typ,
				Tag:      spec.tag,
				Position: positions[i],
				Cursor:   spec.cursor,
			}
		}
		return handles

	case shape.Polygon, shape.Preset:
		if len(s.ControlPoints) < 3 {
			return nil
		}
		handles := make([]Handle, len(s.ControlPoints))
		for i, p := range s.ControlPoints {
			q := s.ControlPoints[(i+1)%len(s.ControlPoints)]
			handles[i] = Handle{
				ID:       fmt.Sprintf("edge-%d", i),
				Type:     HandleEdge,
				Tag:      fmt.Sprintf("edge-%d", i),
				Position: geometry.Midpoint(p, q),
				Cursor:   "move",
			}
		}
		return handles

	default:
		return nil
	}
}
