package resize

import (
	"log"
	"math"
	"strconv"
	"strings"

	"areal/geometry"
	"areal/shape"
)

// MinSize is the smallest width and height a rectangle may be resized to,
// in diagram units.
const MinSize = 50.0

// State identifies where a resize session is in its lifecycle.
type State int

const (
	// StateIdle means no shape is resize-active.
	StateIdle State = iota
	// StateActive means a shape is selected for resizing and its handles
	// are live, but no drag is in progress.
	StateActive
	// StateDragging means a handle drag is in progress.
	StateDragging
)

// String returns the state name for display.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateDragging:
		return "dragging"
	default:
		return "unknown"
	}
}

// Controller is the drag session state machine. It never mutates the
// committed shape mid-drag: moves apply to a working copy of the baseline
// snapshot, and the result only leaves the controller on EndDrag.
//
// A drag session is exclusive. Entering resize while another session is in
// progress force-completes the prior session first.
type Controller struct {
	state        State
	baseline     shape.Shape
	working      shape.Shape
	handles      []Handle
	activeHandle string
	startPointer geometry.Point
}

// NewController returns an idle controller.
func NewController() *Controller {
	return &Controller{state: StateIdle}
}

// State returns the current session state.
func (c *Controller) State() State {
	return c.state
}

// Handles returns the live handle set, or nil when idle.
func (c *Controller) Handles() []Handle {
	if c.state == StateIdle {
		return nil
	}
	return c.handles
}

// EnterResize snapshots the shape as the resize baseline and computes its
// handle set. If a drag is still in progress on another shape the prior
// session is force-completed by cancelling it, so the old shape stays at
// its last committed geometry.
func (c *Controller) EnterResize(s shape.Shape) []Handle {
	if c.state == StateDragging {
		log.Printf("resize: new session while dragging %q, cancelling prior session", c.activeHandle)
		c.reset()
	}
	c.baseline = shape.Clone(s)
	c.working = shape.Clone(s)
	c.handles = HandlesFor(s)
	c.activeHandle = ""
	c.state = StateActive
	return c.handles
}

// BeginDrag starts a drag on the given handle. Starting a drag while not
// resize-active, or on an unknown handle, is a no-op.
func (c *Controller) BeginDrag(handleID string, pointer geometry.Point) bool {
	if c.state != StateActive {
		log.Printf("resize: drag start for %q ignored in state %s", handleID, c.state)
		return false
	}
	if c.findHandle(handleID) == nil {
		log.Printf("resize: drag start for unknown handle %q ignored", handleID)
		return false
	}
	c.activeHandle = handleID
	c.startPointer = pointer
	c.working = shape.Clone(c.baseline)
	c.state = StateDragging
	return true
}

// DragMove applies the pointer position to the working copy and returns
// the preview shape. Moves arriving outside a drag, or for a handle other
// than the active one (stale events after EndDrag), are ignored.
func (c *Controller) DragMove(handleID string, pointer geometry.Point) (shape.Shape, bool) {
	if c.state != StateDragging || handleID != c.activeHandle {
		return shape.Shape{}, false
	}
	delta := pointer.Sub(c.startPointer)
	c.working = applyHandleDelta(c.baseline, c.activeHandle, delta)
	return shape.Clone(c.working), true
}

// EndDrag commits the working copy and returns the updated shape. The
// session ends and the controller returns to idle.
func (c *Controller) EndDrag() (shape.Shape, bool) {
	if c.state != StateDragging {
		log.Printf("resize: drag end ignored in state %s", c.state)
		return shape.Shape{}, false
	}
	return c.commit(), true
}

// Cancel discards the working copy and returns the untouched baseline.
// It is reachable from any non-idle state so a mode switch mid-drag never
// leaves a shape half-resized.
func (c *Controller) Cancel() (shape.Shape, bool) {
	if c.state == StateIdle {
		return shape.Shape{}, false
	}
	baseline := shape.Clone(c.baseline)
	c.reset()
	return baseline, true
}

// Preview returns the current working shape without ending the session.
func (c *Controller) Preview() shape.Shape {
	return shape.Clone(c.working)
}

func (c *Controller) commit() shape.Shape {
	committed := shape.Clone(c.working)
	c.reset()
	return committed
}

func (c *Controller) reset() {
	c.state = StateIdle
	c.handles = nil
	c.activeHandle = ""
	c.baseline = shape.Shape{}
	c.working = shape.Shape{}
}

func (c *Controller) findHandle(id string) *Handle {
	for i := range c.handles {
		if c.handles[i].ID == id {
			return &c.handles[i]
		}
	}
	return nil
}

// applyHandleDelta produces a new shape from the baseline with the handle's
// update rule applied. The baseline is never modified.
func applyHandleDelta(baseline shape.Shape, handleID string, delta geometry.Point) shape.Shape {
	switch baseline.Kind {
	case shape.Rectangle:
		return applyRectDelta(baseline, handleID, delta)
	case shape.Polygon, shape.Preset:
		return applyPolygonDelta(baseline, handleID, delta)
	default:
		return shape.Clone(baseline)
	}
}

// applyRectDelta moves the dragged corner or edge and clamps the result to
// the minimum size by limiting the moved side, so the side opposite the
// active handle keeps its position.
func applyRectDelta(baseline shape.Shape, handleID string, delta geometry.Point) shape.Shape {
	s := shape.Clone(baseline)
	if len(s.ControlPoints) != 2 {
		return s
	}
	tl := &s.ControlPoints[0]
	br := &s.ControlPoints[1]

	movesLeft := handleID == "top-left" || handleID == "bottom-left" || handleID == "left"
	movesRight := handleID == "top-right" || handleID == "bottom-right" || handleID == "right"
	movesTop := handleID == "top-left" || handleID == "top-right" || handleID == "top"
	movesBottom := handleID == "bottom-left" || handleID == "bottom-right" || handleID == "bottom"

	if movesLeft {
		tl.X = math.Min(tl.X+delta.X, br.X-MinSize)
	}
	if movesRight {
		br.X = math.Max(br.X+delta.X, tl.X+MinSize)
	}
	if movesTop {
		tl.Y = math.Min(tl.Y+delta.Y, br.Y-MinSize)
	}
	if movesBottom {
		br.Y = math.Max(br.Y+delta.Y, tl.Y+MinSize)
	}

	s.Width = br.X - tl.X
	s.Height = br.Y - tl.Y
	return s
}

// applyPolygonDelta moves both endpoints of the dragged outline edge by
// the same offset, translating that edge without distorting its length.
func applyPolygonDelta(baseline shape.Shape, handleID string, delta geometry.Point) shape.Shape {
	s := shape.Clone(baseline)
	n := len(s.ControlPoints)
	if n < 3 {
		return s
	}

	edge, err := strconv.Atoi(strings.TrimPrefix(handleID, "edge-"))
	if err != nil || edge < 0 || edge >= n {
		return s
	}
	s.ControlPoints[edge] = s.ControlPoints[edge].Add(delta)
	s.ControlPoints[(edge+1)%n] = s.ControlPoints[(edge+1)%n].Add(delta)

	b := geometry.BoundsOf(s.ControlPoints)
	s.Width = b.Width()
	s.Height = b.Height()
	return s
}
