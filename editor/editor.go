// Package editor is the interactive terminal frontend: it renders the
// diagram onto the terminal grid and translates keyboard and mouse
// gestures into diagram operations, including handle-based resizing.
package editor

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/gdamore/tcell/v2"

	"areal/diagram"
	"areal/geometry"
	"areal/resize"
	"areal/routing"
	"areal/shape"
)

// Diagram units per terminal cell. Cells are roughly twice as tall as
// they are wide, so the vertical step is doubled to keep shapes square-ish.
const (
	cellWidth  = 10.0
	cellHeight = 20.0
)

// Size of newly placed areas, in diagram units.
const (
	placeWidth  = 120.0
	placeHeight = 80.0
)

// Editor drives one interactive session over a diagram.
type Editor struct {
	screen   tcell.Screen
	d        *diagram.Diagram
	filename string

	mode     Mode
	strategy routing.Strategy
	resizer  *resize.Controller

	selected    int // selected node ID, -1 for none
	connectFrom int // pending connection source node ID, -1 for none

	// Mouse drag bookkeeping for the current resize gesture.
	dragHandle string
	mouseDown  bool

	status string
	dirty  bool
	quit   bool
}

// New creates an editor over the given diagram. The diagram is edited in
// place; the caller decides when to persist it.
func New(screen tcell.Screen, d *diagram.Diagram, filename string) *Editor {
	return &Editor{
		screen:      screen,
		d:           d,
		filename:    filename,
		mode:        ModeNormal,
		strategy:    routing.StrategyCurved,
		resizer:     resize.NewController(),
		selected:    -1,
		connectFrom: -1,
	}
}

// Run executes the event loop until the user quits.
func (e *Editor) Run() error {
	e.screen.EnableMouse()
	for !e.quit {
		e.draw()
		e.screen.Show()

		switch ev := e.screen.PollEvent().(type) {
		case *tcell.EventResize:
			e.screen.Sync()
		case *tcell.EventKey:
			e.handleKey(ev)
		case *tcell.EventMouse:
			e.handleMouse(ev)
		}
	}
	return nil
}

// diagramPoint maps a terminal cell to diagram coordinates.
func diagramPoint(col, row int) geometry.Point {
	return geometry.Point{X: float64(col) * cellWidth, Y: float64(row) * cellHeight}
}

// cellAt maps a diagram point to its terminal cell.
func cellAt(p geometry.Point) (col, row int) {
	return int(p.X / cellWidth), int(p.Y / cellHeight)
}

// nodeAt returns the topmost node whose anchor rectangle contains the
// point, or nil.
func (e *Editor) nodeAt(p geometry.Point) *diagram.Node {
	for i := len(e.d.Nodes) - 1; i >= 0; i-- {
		if e.d.Nodes[i].AnchorRect().Contains(p) {
			return &e.d.Nodes[i]
		}
	}
	return nil
}

// handleAt returns the ID of the resize handle within one cell of the
// point, or "".
func (e *Editor) handleAt(p geometry.Point) string {
	for _, h := range e.resizer.Handles() {
		if absF(h.Position.X-p.X) <= cellWidth && absF(h.Position.Y-p.Y) <= cellHeight {
			return h.ID
		}
	}
	return ""
}

func (e *Editor) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyEscape {
		e.cancelMode()
		return
	}
	if ev.Key() != tcell.KeyRune {
		return
	}

	switch ev.Rune() {
	case 'q':
		e.quit = true
	case 'n':
		e.mode = ModePlace
		e.status = "click to place a new area"
	case 'c':
		e.mode = ModeConnect
		e.connectFrom = -1
		e.status = "click the source area"
	case 'r':
		e.enterResize()
	case 'd':
		e.deleteSelected()
	case 'y':
		e.yankSelected()
	case 's':
		e.save()
	case 'e':
		e.toggleStrategy()
	}
}

func (e *Editor) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	p := diagramPoint(col, row)
	pressed := ev.Buttons()&tcell.Button1 != 0

	switch {
	case pressed && !e.mouseDown:
		e.mouseDown = true
		e.mousePress(p)
	case pressed && e.mouseDown:
		e.mouseDrag(p)
	case !pressed && e.mouseDown:
		e.mouseDown = false
		e.mouseRelease()
	}
}

func (e *Editor) mousePress(p geometry.Point) {
	switch e.mode {
	case ModePlace:
		e.placeNode(p)
	case ModeConnect:
		e.connectClick(p)
	case ModeResize:
		if id := e.handleAt(p); id != "" {
			if e.resizer.BeginDrag(id, p) {
				e.dragHandle = id
			}
			return
		}
		// Clicking away from the handles leaves resize mode.
		e.cancelMode()
	default:
		if n := e.nodeAt(p); n != nil {
			e.selected = n.ID
			e.status = fmt.Sprintf("selected area %d", n.ID)
		} else {
			e.selected = -1
			e.status = ""
		}
	}
}

func (e *Editor) mouseDrag(p geometry.Point) {
	if e.mode != ModeResize || e.dragHandle == "" {
		return
	}
	e.resizer.DragMove(e.dragHandle, p)
}

func (e *Editor) mouseRelease() {
	if e.mode != ModeResize || e.dragHandle == "" {
		return
	}
	committed, ok := e.resizer.EndDrag()
	e.dragHandle = ""
	if !ok {
		return
	}
	if n := e.d.FindNode(e.selected); n != nil {
		n.Shape = committed
		b := shape.BoundingBox(committed)
		n.Position = b.Min
		e.dirty = true
		e.status = fmt.Sprintf("area %d resized to %.0fx%.0f", n.ID, committed.Width, committed.Height)
	}
	// The session ended with the drag; re-arm handles on the same node so
	// the user can keep adjusting.
	if n := e.d.FindNode(e.selected); n != nil {
		e.resizer.EnterResize(n.Shape)
	}
}

func (e *Editor) placeNode(p geometry.Point) {
	id := e.d.NextNodeID()
	e.d.Nodes = append(e.d.Nodes, diagram.Node{
		ID:       id,
		Label:    fmt.Sprintf("area-%d", id),
		Position: p,
		Shape:    shape.NewRectangle(p.X, p.Y, placeWidth, placeHeight),
	})
	e.selected = id
	e.mode = ModeNormal
	e.dirty = true
	e.status = fmt.Sprintf("placed area %d", id)
}

func (e *Editor) connectClick(p geometry.Point) {
	n := e.nodeAt(p)
	if n == nil {
		return
	}
	if e.connectFrom < 0 {
		e.connectFrom = n.ID
		e.status = fmt.Sprintf("connecting from area %d: click the target", n.ID)
		return
	}
	if n.ID == e.connectFrom {
		e.status = "source and target are the same area"
		return
	}
	e.d.Edges = append(e.d.Edges, diagram.Edge{
		ID:   e.d.NextEdgeID(),
		From: e.connectFrom,
		To:   n.ID,
		Kind: diagram.KindMaterialFlow,
	})
	e.status = fmt.Sprintf("connected %d -> %d", e.connectFrom, n.ID)
	e.connectFrom = -1
	e.mode = ModeNormal
	e.dirty = true
}

func (e *Editor) enterResize() {
	n := e.d.FindNode(e.selected)
	if n == nil {
		e.status = "select an area first"
		return
	}
	e.resizer.EnterResize(n.Shape)
	e.mode = ModeResize
	e.status = fmt.Sprintf("resizing area %d: drag a handle, Esc to finish", n.ID)
}

// cancelMode aborts whatever gesture is in flight and returns to normal
// mode. The committed shape was never touched mid-drag, so cancelling a
// drag simply discards the working copy.
func (e *Editor) cancelMode() {
	if e.mode == ModeResize {
		e.resizer.Cancel()
		e.dragHandle = ""
	}
	e.mode = ModeNormal
	e.connectFrom = -1
	e.status = ""
}

func (e *Editor) deleteSelected() {
	if e.selected < 0 {
		return
	}
	if e.d.RemoveNode(e.selected) {
		e.status = fmt.Sprintf("deleted area %d and its relationships", e.selected)
		e.selected = -1
		e.dirty = true
	}
}

// yankSelected copies the selected node's JSON record to the system
// clipboard so it can be pasted into property forms or chat.
func (e *Editor) yankSelected() {
	n := e.d.FindNode(e.selected)
	if n == nil {
		return
	}
	data, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		e.status = fmt.Sprintf("yank failed: %v", err)
		return
	}
	if err := clipboard.WriteAll(string(data)); err != nil {
		e.status = fmt.Sprintf("clipboard unavailable: %v", err)
		return
	}
	e.status = fmt.Sprintf("copied area %d to clipboard", n.ID)
}

func (e *Editor) save() {
	if e.filename == "" {
		e.status = "no filename; start the editor with a file argument"
		return
	}
	data, err := json.MarshalIndent(e.d, "", "  ")
	if err != nil {
		e.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	if err := os.WriteFile(e.filename, data, 0644); err != nil {
		e.status = fmt.Sprintf("save failed: %v", err)
		return
	}
	e.dirty = false
	e.status = fmt.Sprintf("saved %s", e.filename)
}

func (e *Editor) toggleStrategy() {
	if e.strategy == routing.StrategyCurved {
		e.strategy = routing.StrategyStraight
	} else {
		e.strategy = routing.StrategyCurved
	}
	e.status = fmt.Sprintf("%s edges", e.strategy)
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
