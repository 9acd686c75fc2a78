package editor

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"areal/diagram"
	"areal/geometry"
	"areal/resize"
	"areal/routing"
	"areal/shape"
)

var (
	styleNode     = tcell.StyleDefault.Foreground(tcell.ColorTeal)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleEdge     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleHandle   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStatus   = tcell.StyleDefault.Reverse(true)
)

// draw renders the complete frame: edges, node outlines, resize handles
// and the status bar.
func (e *Editor) draw() {
	e.screen.Clear()

	display := e.displayDiagram()

	for _, render := range routing.RenderAll(display, e.strategy) {
		e.drawEdge(render)
	}
	for _, n := range display.Nodes {
		e.drawNode(n)
	}
	if e.mode == ModeResize {
		for _, h := range e.resizer.Handles() {
			col, row := cellAt(h.Position)
			style := styleHandle
			if h.ID == e.dragHandle {
				style = styleHandle.Reverse(true)
			}
			e.screen.SetContent(col, row, '◆', nil, style)
		}
	}
	e.drawStatusBar()
}

// displayDiagram returns the diagram to draw this frame. During a resize
// session the selected node shows the controller's working copy instead
// of its committed shape.
func (e *Editor) displayDiagram() *diagram.Diagram {
	if e.mode != ModeResize || e.resizer.State() == resize.StateIdle {
		return e.d
	}
	display := e.d.Clone()
	if n := display.FindNode(e.selected); n != nil {
		n.Shape = e.resizer.Preview()
	}
	return display
}

func (e *Editor) drawNode(n diagram.Node) {
	style := styleNode
	if n.ID == e.selected {
		style = styleSelected
	}

	if n.Shape.Kind == shape.Rectangle && len(n.Shape.ControlPoints) == 2 {
		e.drawBox(n.Shape.ControlPoints[0], n.Shape.ControlPoints[1], style)
	} else {
		e.drawOutline(n.Shape, style)
	}

	c := n.Center()
	col, row := cellAt(c)
	label := n.Label
	if label == "" {
		label = fmt.Sprintf("#%d", n.ID)
	}
	e.drawText(col-len(label)/2, row, label, style)
}

// drawBox draws a rectangle with box-drawing characters.
func (e *Editor) drawBox(tl, br geometry.Point, style tcell.Style) {
	x0, y0 := cellAt(tl)
	x1, y1 := cellAt(br)
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	for x := x0 + 1; x < x1; x++ {
		e.screen.SetContent(x, y0, '─', nil, style)
		e.screen.SetContent(x, y1, '─', nil, style)
	}
	for y := y0 + 1; y < y1; y++ {
		e.screen.SetContent(x0, y, '│', nil, style)
		e.screen.SetContent(x1, y, '│', nil, style)
	}
	e.screen.SetContent(x0, y0, '┌', nil, style)
	e.screen.SetContent(x1, y0, '┐', nil, style)
	e.screen.SetContent(x0, y1, '└', nil, style)
	e.screen.SetContent(x1, y1, '┘', nil, style)
}

// drawOutline plots a polygon outline cell by cell.
func (e *Editor) drawOutline(s shape.Shape, style tcell.Style) {
	pts := s.ControlPoints
	if len(pts) < 3 {
		// Nothing drawable; mark the default box instead.
		b := shape.BoundingBox(s)
		e.drawBox(b.Min, b.Max, style)
		return
	}
	for i := range pts {
		q := pts[(i+1)%len(pts)]
		e.plotLine(pts[i], q, '·', style)
	}
	for _, p := range pts {
		col, row := cellAt(p)
		e.screen.SetContent(col, row, '+', nil, style)
	}
}

func (e *Editor) drawEdge(render routing.EdgeRender) {
	if render.Curved {
		// Flatten the arc into short chords.
		const steps = 24
		prev := render.Source
		for i := 1; i <= steps; i++ {
			t := float64(i) / steps
			next := geometry.QuadPoint(render.Source, render.Control, render.Target, t)
			e.plotLine(prev, next, '·', styleEdge)
			prev = next
		}
	} else {
		e.plotLine(render.Source, render.Target, '·', styleEdge)
	}

	if render.Arrow.AtEnd() {
		from := render.Source
		if render.Curved {
			from = render.Control
		}
		e.drawArrowCell(from, render.Target)
	}
	if render.Arrow.AtStart() {
		from := render.Target
		if render.Curved {
			from = render.Control
		}
		e.drawArrowCell(from, render.Source)
	}
}

// drawArrowCell places a directional arrow rune at the tip cell.
func (e *Editor) drawArrowCell(from, tip geometry.Point) {
	d := tip.Sub(from)
	var r rune
	if absF(d.X) >= absF(d.Y) {
		if d.X >= 0 {
			r = '▶'
		} else {
			r = '◀'
		}
	} else {
		if d.Y >= 0 {
			r = '▼'
		} else {
			r = '▲'
		}
	}
	col, row := cellAt(tip)
	e.screen.SetContent(col, row, r, nil, styleEdge)
}

// plotLine rasterizes a segment onto cells with Bresenham stepping.
func (e *Editor) plotLine(a, b geometry.Point, r rune, style tcell.Style) {
	x0, y0 := cellAt(a)
	x1, y1 := cellAt(b)

	dx := absI(x1 - x0)
	dy := -absI(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		e.screen.SetContent(x0, y0, r, nil, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func (e *Editor) drawStatusBar() {
	width, height := e.screen.Size()
	row := height - 1

	dirty := ""
	if e.dirty {
		dirty = " [+]"
	}
	name := e.filename
	if name == "" {
		name = "(unsaved)"
	}
	left := fmt.Sprintf(" %s | %s edges | %s%s ", e.mode, e.strategy, name, dirty)
	line := left
	if e.status != "" {
		line += "— " + e.status
	}
	for x := 0; x < width; x++ {
		e.screen.SetContent(x, row, ' ', nil, styleStatus)
	}
	e.drawText(0, row, line, styleStatus)
}

func (e *Editor) drawText(x, y int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		e.screen.SetContent(x+i, y, r, nil, style)
	}
}

func absI(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
