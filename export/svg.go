package export

import (
	"fmt"
	"math"
	"strings"

	"areal/diagram"
	"areal/geometry"
	"areal/routing"
	"areal/shape"
)

// SVG drawing constants.
const (
	svgPadding    = 40.0
	svgArrowSize  = 10.0
	svgArrowAngle = 0.45 // radians of half-spread for arrowhead wings
	svgFontSize   = 13.0
)

// SVGExporter exports rendered diagram geometry as SVG markup.
type SVGExporter struct {
	// Strategy selects how parallel edges are separated.
	Strategy routing.Strategy
}

// NewSVGExporter creates an SVG exporter using the curved edge strategy.
func NewSVGExporter() *SVGExporter {
	return &SVGExporter{Strategy: routing.StrategyCurved}
}

// Export renders the diagram to an SVG document.
func (e *SVGExporter) Export(d *diagram.Diagram) ([]byte, error) {
	renders := routing.RenderAll(d, e.Strategy)
	minX, minY, maxX, maxY := contentBounds(d, renders)

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s">`+"\n",
		fmtCoord(minX-svgPadding), fmtCoord(minY-svgPadding),
		fmtCoord(maxX-minX+2*svgPadding), fmtCoord(maxY-minY+2*svgPadding))
	b.WriteString(`  <g fill="none" stroke="#333" stroke-width="1.5">` + "\n")

	// Edges first so node outlines draw over them.
	for _, edge := range d.Edges {
		render, ok := renders[edge.ID]
		if !ok {
			continue
		}
		writeEdgeSVG(&b, edge, render)
	}

	for _, n := range d.Nodes {
		writeNodeSVG(&b, n)
	}

	b.WriteString("  </g>\n</svg>\n")
	return []byte(b.String()), nil
}

// GetFileExtension returns the file extension for SVG.
func (e *SVGExporter) GetFileExtension() string {
	return ".svg"
}

// GetFormatName returns the format name.
func (e *SVGExporter) GetFormatName() string {
	return "SVG"
}

func writeNodeSVG(b *strings.Builder, n diagram.Node) {
	path, err := shape.PathFor(n.Shape)
	if err != nil || path.IsEmpty() {
		// Broken or empty shapes are omitted rather than guessed at.
		return
	}
	fmt.Fprintf(b, `    <path d="%s" fill="#f5f1e8"/>`+"\n", PathData(path))
	if n.Label != "" {
		c := n.Center()
		fmt.Fprintf(b, `    <text x="%s" y="%s" fill="#333" stroke="none" font-size="%s" text-anchor="middle">%s</text>`+"\n",
			fmtCoord(c.X), fmtCoord(c.Y), fmtCoord(svgFontSize), escapeXML(n.Label))
	}
}

func writeEdgeSVG(b *strings.Builder, edge diagram.Edge, render routing.EdgeRender) {
	dash := ""
	if edge.Kind == diagram.KindSeparation {
		dash = ` stroke-dasharray="6 4"`
	}
	fmt.Fprintf(b, `    <path d="%s"%s/>`+"\n", PathData(render.Path), dash)

	if render.Arrow.AtEnd() {
		from := render.Source
		if render.Curved {
			from = render.Control
		}
		writeArrowheadSVG(b, from, render.Target)
	}
	if render.Arrow.AtStart() {
		from := render.Target
		if render.Curved {
			from = render.Control
		}
		writeArrowheadSVG(b, from, render.Source)
	}

	if label := edgeLabel(edge); label != "" {
		fmt.Fprintf(b, `    <text x="%s" y="%s" fill="#666" stroke="none" font-size="%s" text-anchor="middle">%s</text>`+"\n",
			fmtCoord(render.Label.X), fmtCoord(render.Label.Y-4), fmtCoord(svgFontSize-2), escapeXML(label))
	}
}

// writeArrowheadSVG draws a filled triangle with its tip at `tip`, pointing
// away from `from`.
func writeArrowheadSVG(b *strings.Builder, from, tip geometry.Point) {
	left, right, ok := arrowWings(from, tip, svgArrowSize, svgArrowAngle)
	if !ok {
		return
	}
	fmt.Fprintf(b, `    <polygon points="%s,%s %s,%s %s,%s" fill="#333" stroke="none"/>`+"\n",
		fmtCoord(tip.X), fmtCoord(tip.Y),
		fmtCoord(left.X), fmtCoord(left.Y),
		fmtCoord(right.X), fmtCoord(right.Y))
}

// arrowWings computes the two base corners of an arrowhead triangle whose
// tip sits at `tip`, oriented along the from→tip direction. ok is false
// when the two points coincide and no direction exists.
func arrowWings(from, tip geometry.Point, size, spread float64) (left, right geometry.Point, ok bool) {
	d := tip.Sub(from)
	length := d.Length()
	if length == 0 {
		return geometry.Point{}, geometry.Point{}, false
	}
	ux, uy := d.X/length, d.Y/length

	left = geometry.Point{
		X: tip.X - size*ux + size*uy*spread,
		Y: tip.Y - size*uy - size*ux*spread,
	}
	right = geometry.Point{
		X: tip.X - size*ux - size*uy*spread,
		Y: tip.Y - size*uy + size*ux*spread,
	}
	return left, right, true
}

// PathData converts a path spec to SVG path data.
func PathData(p geometry.PathSpec) string {
	var b strings.Builder
	for i, seg := range p.Segments {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch seg.Op {
		case geometry.MoveTo:
			fmt.Fprintf(&b, "M %s %s", fmtCoord(seg.To.X), fmtCoord(seg.To.Y))
		case geometry.LineTo:
			fmt.Fprintf(&b, "L %s %s", fmtCoord(seg.To.X), fmtCoord(seg.To.Y))
		case geometry.QuadTo:
			fmt.Fprintf(&b, "Q %s %s %s %s",
				fmtCoord(seg.Control.X), fmtCoord(seg.Control.Y),
				fmtCoord(seg.To.X), fmtCoord(seg.To.Y))
		case geometry.Close:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

func edgeLabel(e diagram.Edge) string {
	if e.Reason != "" {
		return e.Reason
	}
	return string(e.Kind)
}

// contentBounds returns the extent of all node boxes and edge geometry.
func contentBounds(d *diagram.Diagram, renders map[int]routing.EdgeRender) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)

	grow := func(p geometry.Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	for _, n := range d.Nodes {
		r := n.AnchorRect()
		grow(geometry.Point{X: r.X, Y: r.Y})
		grow(geometry.Point{X: r.X + r.Width, Y: r.Y + r.Height})
	}
	for _, render := range renders {
		grow(render.Source)
		grow(render.Target)
		if render.Curved {
			grow(render.Control)
		}
	}

	if math.IsInf(minX, 1) {
		// Empty diagram: a small blank canvas.
		return 0, 0, shape.DefaultWidth, shape.DefaultHeight
	}
	return minX, minY, maxX, maxY
}

// fmtCoord renders a coordinate with up to two decimals, trimming zeros so
// integral values stay short.
func fmtCoord(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

func escapeXML(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
