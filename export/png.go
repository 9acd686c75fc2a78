package export

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"areal/diagram"
	"areal/geometry"
	"areal/routing"
	"areal/shape"
)

// PNG drawing constants.
const (
	pngFontSize  = 13.0
	pngArrowSize = 10.0
)

// PNGExporter rasterizes diagram geometry to a PNG image.
type PNGExporter struct {
	// Strategy selects how parallel edges are separated.
	Strategy routing.Strategy
	// Scale maps diagram units to pixels.
	Scale float64
}

// NewPNGExporter creates a PNG exporter at 1:1 scale with curved edges.
func NewPNGExporter() *PNGExporter {
	return &PNGExporter{Strategy: routing.StrategyCurved, Scale: 1.0}
}

// Export renders the diagram and encodes it as PNG.
func (e *PNGExporter) Export(d *diagram.Diagram) ([]byte, error) {
	scale := e.Scale
	if scale <= 0 {
		scale = 1.0
	}

	renders := routing.RenderAll(d, e.Strategy)
	minX, minY, maxX, maxY := contentBounds(d, renders)
	minX -= svgPadding
	minY -= svgPadding
	maxX += svgPadding
	maxY += svgPadding

	width := int(math.Ceil((maxX - minX) * scale))
	height := int(math.Ceil((maxY - minY) * scale))
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("diagram renders to an empty %dx%d image", width, height)
	}

	dc := gg.NewContext(width, height)
	dc.SetColor(color.White)
	dc.Clear()

	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    pngFontSize * scale,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	dc.SetFontFace(face)

	// Transform diagram coordinates into image pixels.
	px := func(p geometry.Point) (float64, float64) {
		return (p.X - minX) * scale, (p.Y - minY) * scale
	}

	// Edges first so node outlines draw over them.
	for _, edge := range d.Edges {
		render, ok := renders[edge.ID]
		if !ok {
			continue
		}
		e.drawEdge(dc, edge, render, px, scale)
	}
	for _, n := range d.Nodes {
		e.drawNode(dc, n, px)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// GetFileExtension returns the file extension for PNG.
func (e *PNGExporter) GetFileExtension() string {
	return ".png"
}

// GetFormatName returns the format name.
func (e *PNGExporter) GetFormatName() string {
	return "PNG"
}

func (e *PNGExporter) drawNode(dc *gg.Context, n diagram.Node, px func(geometry.Point) (float64, float64)) {
	path, err := shape.PathFor(n.Shape)
	if err != nil || path.IsEmpty() {
		return
	}

	tracePath(dc, path, px)
	dc.SetColor(color.RGBA{R: 0xf5, G: 0xf1, B: 0xe8, A: 0xff})
	dc.FillPreserve()
	dc.SetColor(color.Black)
	dc.SetLineWidth(1.5)
	dc.Stroke()

	if n.Label != "" {
		cx, cy := px(n.Center())
		dc.DrawStringAnchored(n.Label, cx, cy, 0.5, 0.5)
	}
}

func (e *PNGExporter) drawEdge(dc *gg.Context, edge diagram.Edge, render routing.EdgeRender, px func(geometry.Point) (float64, float64), scale float64) {
	dc.SetColor(color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff})
	dc.SetLineWidth(1.5)
	if edge.Kind == diagram.KindSeparation {
		dc.SetDash(6*scale, 4*scale)
	}

	tracePath(dc, render.Path, px)
	dc.Stroke()
	dc.SetDash() // back to solid

	if render.Arrow.AtEnd() {
		from := render.Source
		if render.Curved {
			from = render.Control
		}
		e.drawArrowhead(dc, from, render.Target, px, scale)
	}
	if render.Arrow.AtStart() {
		from := render.Target
		if render.Curved {
			from = render.Control
		}
		e.drawArrowhead(dc, from, render.Source, px, scale)
	}

	if label := edgeLabel(edge); label != "" {
		lx, ly := px(render.Label)
		dc.SetColor(color.RGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff})
		dc.DrawStringAnchored(label, lx, ly-4*scale, 0.5, 1)
	}
}

func (e *PNGExporter) drawArrowhead(dc *gg.Context, from, tip geometry.Point, px func(geometry.Point) (float64, float64), scale float64) {
	left, right, ok := arrowWings(from, tip, pngArrowSize/scale, svgArrowAngle)
	if !ok {
		return
	}
	tx, ty := px(tip)
	lx, ly := px(left)
	rx, ry := px(right)

	dc.MoveTo(tx, ty)
	dc.LineTo(lx, ly)
	dc.LineTo(rx, ry)
	dc.ClosePath()
	dc.Fill()
}

// tracePath replays a path spec onto the drawing context through the
// coordinate transform.
func tracePath(dc *gg.Context, path geometry.PathSpec, px func(geometry.Point) (float64, float64)) {
	for _, seg := range path.Segments {
		switch seg.Op {
		case geometry.MoveTo:
			x, y := px(seg.To)
			dc.MoveTo(x, y)
		case geometry.LineTo:
			x, y := px(seg.To)
			dc.LineTo(x, y)
		case geometry.QuadTo:
			cx, cy := px(seg.Control)
			x, y := px(seg.To)
			dc.QuadraticTo(cx, cy, x, y)
		case geometry.Close:
			dc.ClosePath()
		}
	}
}
