package routing

import (
	"errors"

	"areal/diagram"
	"areal/geometry"
)

// ArrowType represents which ends of an edge carry an arrowhead.
type ArrowType int

const (
	// ArrowNone indicates no arrowheads.
	ArrowNone ArrowType = iota
	// ArrowEnd indicates an arrowhead at the target end.
	ArrowEnd
	// ArrowStart indicates an arrowhead at the source end.
	ArrowStart
	// ArrowBoth indicates arrowheads at both ends.
	ArrowBoth
)

// AtEnd reports whether an arrowhead is drawn at the target end.
func (a ArrowType) AtEnd() bool {
	return a == ArrowEnd || a == ArrowBoth
}

// AtStart reports whether an arrowhead is drawn at the source end.
func (a ArrowType) AtStart() bool {
	return a == ArrowStart || a == ArrowBoth
}

// ArrowFor returns the arrowhead placement for an edge. Only flow
// relationships carry arrows: bidirectional flows get both ends, anything
// else gets the target end only. Non-flow kinds render bare lines.
func ArrowFor(e diagram.Edge) ArrowType {
	if !e.Kind.IsFlow() {
		return ArrowNone
	}
	if e.FlowDirection == diagram.FlowBidirectional {
		return ArrowBoth
	}
	return ArrowEnd
}

// EdgeRender is the final renderable form of one edge.
type EdgeRender struct {
	EdgeID int
	// Path is the drawable geometry: a straight segment or a quadratic arc.
	Path geometry.PathSpec
	// Source and Target are the boundary anchor points after separation.
	Source, Target geometry.Point
	// Control is the bezier control point; only set for curved renders.
	Control geometry.Point
	// Curved reports whether Path contains a quadratic segment.
	Curved bool
	// Label is the anchor point for the edge's label, at the path midpoint.
	Label geometry.Point
	// Arrow is the arrowhead placement.
	Arrow ArrowType
	// Index and Count are the edge's separation index and its pair's size.
	Index, Count int
}

// ErrDegenerateEdge marks an edge whose endpoints coincide. Such edges
// have no renderable geometry; the rendering layer omits them.
var ErrDegenerateEdge = errors.New("edge endpoints coincide")

// ErrEdgeNotFound marks an edge absent from the bundling list.
var ErrEdgeNotFound = errors.New("edge not found in edge list")

// RenderEdge produces the renderable path, label anchor and arrow
// placement for one edge. Source and target nodes and the full edge list
// are passed explicitly; the renderer reads no shared state.
//
// Anchors are computed on each node's axis-aligned anchor rectangle using
// the other node's center as the external point, then separated by the
// bundler's offset (straight strategy, both anchors shifted) or curvature
// (curved strategy, a single control point at the midpoint).
func RenderEdge(e diagram.Edge, source, target diagram.Node, edges []diagram.Edge, strategy Strategy) (EdgeRender, error) {
	srcCenter := source.Center()
	tgtCenter := target.Center()
	distance := geometry.Distance(srcCenter, tgtCenter)

	index, count, amount, ok := Separation(edges, e.ID, distance, strategy)
	if !ok {
		if index < 0 {
			return EdgeRender{}, ErrEdgeNotFound
		}
		return EdgeRender{}, ErrDegenerateEdge
	}

	srcAnchor := BoundaryIntersection(source.AnchorRect(), tgtCenter)
	tgtAnchor := BoundaryIntersection(target.AnchorRect(), srcCenter)
	perp := geometry.UnitPerpendicular(srcCenter, tgtCenter)

	render := EdgeRender{
		EdgeID: e.ID,
		Arrow:  ArrowFor(e),
		Index:  index,
		Count:  count,
	}

	switch strategy {
	case StrategyCurved:
		render.Source = srcAnchor
		render.Target = tgtAnchor
		render.Control = geometry.Midpoint(srcAnchor, tgtAnchor).Add(perp.Scale(amount))
		render.Curved = true
		render.Path.MoveTo(render.Source)
		render.Path.QuadTo(render.Control, render.Target)
		render.Label = geometry.QuadPoint(render.Source, render.Control, render.Target, 0.5)
	default:
		shift := perp.Scale(amount)
		render.Source = srcAnchor.Add(shift)
		render.Target = tgtAnchor.Add(shift)
		render.Path.MoveTo(render.Source)
		render.Path.LineTo(render.Target)
		render.Label = geometry.Lerp(render.Source, render.Target, 0.5)
	}
	return render, nil
}

// RenderAll renders every edge of the diagram, recomputing bundling from
// scratch. Edges that cannot be rendered (missing endpoint nodes or
// coincident endpoints) are omitted rather than surfaced as errors, so a
// half-valid diagram still draws. The result maps edge ID to its render.
func RenderAll(d *diagram.Diagram, strategy Strategy) map[int]EdgeRender {
	renders := make(map[int]EdgeRender, len(d.Edges))
	for _, e := range d.Edges {
		source := d.FindNode(e.From)
		target := d.FindNode(e.To)
		if source == nil || target == nil {
			continue
		}
		render, err := RenderEdge(e, *source, *target, d.Edges, strategy)
		if err != nil {
			continue
		}
		renders[e.ID] = render
	}
	return renders
}
