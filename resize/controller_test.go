package resize

import (
	"reflect"
	"testing"

	"areal/geometry"
	"areal/shape"
)

func rect(x, y, w, h float64) shape.Shape {
	return shape.NewRectangle(x, y, w, h)
}

func TestHandlesForRectangle(t *testing.T) {
	handles := HandlesFor(rect(0, 0, 200, 100))
	if len(handles) != 8 {
		t.Fatalf("got %d handles, want 8 (4 corners + 4 edges)", len(handles))
	}

	byID := make(map[string]Handle)
	corners, edges := 0, 0
	for _, h := range handles {
		byID[h.ID] = h
		switch h.Type {
		case HandleCorner:
			corners++
		case HandleEdge:
			edges++
		}
	}
	if corners != 4 || edges != 4 {
		t.Errorf("got %d corners and %d edges, want 4 and 4", corners, edges)
	}

	if p := byID["bottom-right"].Position; p != (geometry.Point{X: 200, Y: 100}) {
		t.Errorf("bottom-right handle at %v, want (200,100)", p)
	}
	if p := byID["top"].Position; p != (geometry.Point{X: 100, Y: 0}) {
		t.Errorf("top handle at %v, want (100,0)", p)
	}
	if byID["left"].Cursor != "ew-resize" {
		t.Errorf("left handle cursor = %q, want ew-resize", byID["left"].Cursor)
	}
}

func TestHandlesForPolygon(t *testing.T) {
	s, _ := shape.NewPolygon([]geometry.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 50, Y: 80}})
	handles := HandlesFor(s)
	if len(handles) != 3 {
		t.Fatalf("got %d handles, want one per outline edge (3)", len(handles))
	}
	if handles[0].Position != (geometry.Point{X: 50, Y: 0}) {
		t.Errorf("first edge handle at %v, want the edge midpoint (50,0)", handles[0].Position)
	}
}

func TestResizeClampToMinimum(t *testing.T) {
	// Scenario: baseline corners (0,0)-(200,150); dragging the top-left
	// handle by (+400, 0) clamps width to the minimum 50 while the
	// bottom-right corner stays put.
	c := NewController()
	c.EnterResize(rect(0, 0, 200, 150))
	if !c.BeginDrag("top-left", geometry.Point{X: 0, Y: 0}) {
		t.Fatal("BeginDrag failed")
	}
	c.DragMove("top-left", geometry.Point{X: 400, Y: 0})

	committed, ok := c.EndDrag()
	if !ok {
		t.Fatal("EndDrag failed")
	}
	if committed.ControlPoints[0] != (geometry.Point{X: 150, Y: 0}) {
		t.Errorf("top-left = %v, want (150,0)", committed.ControlPoints[0])
	}
	if committed.ControlPoints[1] != (geometry.Point{X: 200, Y: 150}) {
		t.Errorf("bottom-right = %v, want untouched (200,150)", committed.ControlPoints[1])
	}
	if committed.Width != 50 || committed.Height != 150 {
		t.Errorf("size = %vx%v, want 50x150", committed.Width, committed.Height)
	}
}

func TestResizeNeverBelowMinimum(t *testing.T) {
	handles := []string{"top-left", "top-right", "bottom-right", "bottom-left", "top", "right", "bottom", "left"}
	deltas := []geometry.Point{
		{X: 1e6, Y: 1e6}, {X: -1e6, Y: -1e6}, {X: -1e6, Y: 1e6}, {X: 1e6, Y: -1e6},
	}

	for _, id := range handles {
		for _, delta := range deltas {
			c := NewController()
			c.EnterResize(rect(0, 0, 200, 150))
			c.BeginDrag(id, geometry.Point{})
			c.DragMove(id, delta)
			committed, ok := c.EndDrag()
			if !ok {
				t.Fatalf("EndDrag failed for handle %q", id)
			}
			if committed.Width < MinSize || committed.Height < MinSize {
				t.Errorf("handle %q delta %v produced size %vx%v, want >= %vx%v",
					id, delta, committed.Width, committed.Height, MinSize, MinSize)
			}
		}
	}
}

func TestResizeOppositeCornerUnchanged(t *testing.T) {
	// A gentle drag that never hits the clamp leaves the opposite corner
	// exactly where it was.
	c := NewController()
	c.EnterResize(rect(10, 20, 200, 150))
	c.BeginDrag("bottom-right", geometry.Point{X: 210, Y: 170})
	c.DragMove("bottom-right", geometry.Point{X: 250, Y: 200})

	committed, _ := c.EndDrag()
	if committed.ControlPoints[0] != (geometry.Point{X: 10, Y: 20}) {
		t.Errorf("top-left moved to %v, want (10,20)", committed.ControlPoints[0])
	}
	if committed.ControlPoints[1] != (geometry.Point{X: 250, Y: 200}) {
		t.Errorf("bottom-right = %v, want (250,200)", committed.ControlPoints[1])
	}
}

func TestResizeZeroDeltaRoundTrip(t *testing.T) {
	original := rect(0, 0, 200, 150)

	c := NewController()
	c.EnterResize(original)
	c.BeginDrag("bottom-right", geometry.Point{X: 200, Y: 150})
	c.DragMove("bottom-right", geometry.Point{X: 200, Y: 150})
	committed, ok := c.EndDrag()

	if !ok {
		t.Fatal("EndDrag failed")
	}
	if !reflect.DeepEqual(committed.ControlPoints, original.ControlPoints) {
		t.Errorf("zero-delta drag changed control points: %v -> %v",
			original.ControlPoints, committed.ControlPoints)
	}
}

func TestResizeEdgeHandleMovesOneSide(t *testing.T) {
	c := NewController()
	c.EnterResize(rect(0, 0, 200, 150))
	c.BeginDrag("right", geometry.Point{X: 200, Y: 75})
	c.DragMove("right", geometry.Point{X: 260, Y: 999}) // Y is ignored for a horizontal edge handle

	committed, _ := c.EndDrag()
	if committed.ControlPoints[1] != (geometry.Point{X: 260, Y: 150}) {
		t.Errorf("bottom-right = %v, want (260,150)", committed.ControlPoints[1])
	}
	if committed.ControlPoints[0] != (geometry.Point{X: 0, Y: 0}) {
		t.Errorf("top-left moved to %v, want (0,0)", committed.ControlPoints[0])
	}
}

func TestPolygonEdgeHandleMovesBothEndpoints(t *testing.T) {
	s, _ := shape.NewPolygon([]geometry.Point{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 0, Y: 100}})

	c := NewController()
	c.EnterResize(s)
	c.BeginDrag("edge-0", geometry.Point{X: 50, Y: 0})
	committed, ok := c.DragMove("edge-0", geometry.Point{X: 50, Y: -30})
	if !ok {
		t.Fatal("DragMove failed")
	}

	if committed.ControlPoints[0] != (geometry.Point{X: 0, Y: -30}) {
		t.Errorf("point 0 = %v, want (0,-30)", committed.ControlPoints[0])
	}
	if committed.ControlPoints[1] != (geometry.Point{X: 100, Y: -30}) {
		t.Errorf("point 1 = %v, want (100,-30)", committed.ControlPoints[1])
	}
	// The other edge endpoints stay put.
	if committed.ControlPoints[2] != (geometry.Point{X: 100, Y: 100}) || committed.ControlPoints[3] != (geometry.Point{X: 0, Y: 100}) {
		t.Errorf("untouched points moved: %v", committed.ControlPoints[2:])
	}
}

func TestCancelRestoresBaseline(t *testing.T) {
	original := rect(0, 0, 200, 150)

	c := NewController()
	c.EnterResize(original)
	c.BeginDrag("bottom-right", geometry.Point{})
	c.DragMove("bottom-right", geometry.Point{X: 500, Y: 500})

	restored, ok := c.Cancel()
	if !ok {
		t.Fatal("Cancel failed mid-drag")
	}
	if !reflect.DeepEqual(restored.ControlPoints, original.ControlPoints) {
		t.Errorf("Cancel returned %v, want baseline %v", restored.ControlPoints, original.ControlPoints)
	}
	if c.State() != StateIdle {
		t.Errorf("state after Cancel = %v, want idle", c.State())
	}
}

func TestBeginDragRequiresActiveState(t *testing.T) {
	c := NewController()
	if c.BeginDrag("top-left", geometry.Point{}) {
		t.Error("BeginDrag succeeded while idle")
	}

	c.EnterResize(rect(0, 0, 200, 150))
	if c.BeginDrag("no-such-handle", geometry.Point{}) {
		t.Error("BeginDrag succeeded for an unknown handle")
	}
}

func TestStaleDragMoveIgnored(t *testing.T) {
	c := NewController()
	c.EnterResize(rect(0, 0, 200, 150))
	c.BeginDrag("bottom-right", geometry.Point{})
	c.EndDrag()

	// Pointer events arriving after EndDrag for the stale handle produce
	// nothing.
	if _, ok := c.DragMove("bottom-right", geometry.Point{X: 10, Y: 10}); ok {
		t.Error("DragMove accepted after EndDrag")
	}
}

func TestDragMoveWrongHandleIgnored(t *testing.T) {
	c := NewController()
	c.EnterResize(rect(0, 0, 200, 150))
	c.BeginDrag("bottom-right", geometry.Point{})

	if _, ok := c.DragMove("top-left", geometry.Point{X: 10, Y: 10}); ok {
		t.Error("DragMove accepted for a handle other than the active one")
	}
}

func TestEnterResizeForceCompletesPriorSession(t *testing.T) {
	c := NewController()
	c.EnterResize(rect(0, 0, 200, 150))
	c.BeginDrag("bottom-right", geometry.Point{})
	c.DragMove("bottom-right", geometry.Point{X: 100, Y: 100})

	// Starting a resize on another shape mid-drag tears down the prior
	// session instead of leaving it half-resized.
	handles := c.EnterResize(rect(500, 500, 100, 100))
	if c.State() != StateActive {
		t.Errorf("state = %v, want active for the new session", c.State())
	}
	if len(handles) != 8 {
		t.Errorf("new session has %d handles, want 8", len(handles))
	}
	if _, ok := c.DragMove("bottom-right", geometry.Point{X: 1, Y: 1}); ok {
		t.Error("stale drag still live after new session started")
	}
}

func TestMoveEventsAppliedInArrivalOrder(t *testing.T) {
	c := NewController()
	c.EnterResize(rect(0, 0, 200, 150))
	c.BeginDrag("bottom-right", geometry.Point{X: 200, Y: 150})

	c.DragMove("bottom-right", geometry.Point{X: 300, Y: 150})
	preview, _ := c.DragMove("bottom-right", geometry.Point{X: 240, Y: 150})

	// The working copy reflects the latest pointer position, not the
	// furthest excursion.
	if preview.ControlPoints[1].X != 240 {
		t.Errorf("working copy at x=%v, want 240 after the later move", preview.ControlPoints[1].X)
	}
}
