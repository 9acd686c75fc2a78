package diagram

import (
	"testing"

	"areal/geometry"
	"areal/shape"
)

func testDiagram() *Diagram {
	return &Diagram{
		Nodes: []Node{
			{ID: 1, Label: "Packing", Shape: shape.NewRectangle(0, 0, 120, 80)},
			{ID: 2, Label: "Storage", Shape: shape.NewRectangle(300, 0, 120, 80)},
			{ID: 3, Label: "Dispatch", Shape: shape.NewRectangle(0, 300, 120, 80)},
		},
		Edges: []Edge{
			{ID: 10, From: 1, To: 2, Kind: KindMaterialFlow},
			{ID: 11, From: 2, To: 1, Kind: KindPersonnelFlow},
			{ID: 12, From: 2, To: 3, Kind: KindAdjacency},
			{ID: 13, From: 1, To: 2, Kind: KindSeparation},
		},
	}
}

func TestRelationshipIndexUnorderedPair(t *testing.T) {
	d := testDiagram()

	// Edges 10, 11 and 13 all join the unordered pair {1,2}, in that order.
	tests := []struct {
		edgeID    int
		wantIndex int
		wantCount int
	}{
		{10, 0, 3},
		{11, 1, 3},
		{13, 2, 3},
		{12, 0, 1},
	}

	for _, tt := range tests {
		index, count := RelationshipIndex(d.Edges, tt.edgeID)
		if index != tt.wantIndex || count != tt.wantCount {
			t.Errorf("RelationshipIndex(%d) = (%d, %d), want (%d, %d)",
				tt.edgeID, index, count, tt.wantIndex, tt.wantCount)
		}
	}
}

func TestRelationshipIndexClosesGaps(t *testing.T) {
	d := testDiagram()
	d.RemoveEdge(11)

	// After deleting the middle parallel edge, the remaining two re-index
	// to 0 and 1 with no gap.
	if index, count := RelationshipIndex(d.Edges, 10); index != 0 || count != 2 {
		t.Errorf("edge 10 = (%d, %d), want (0, 2)", index, count)
	}
	if index, count := RelationshipIndex(d.Edges, 13); index != 1 || count != 2 {
		t.Errorf("edge 13 = (%d, %d), want (1, 2)", index, count)
	}
}

func TestRelationshipIndexMissingEdge(t *testing.T) {
	d := testDiagram()
	if index, count := RelationshipIndex(d.Edges, 999); index != -1 || count != 0 {
		t.Errorf("missing edge = (%d, %d), want (-1, 0)", index, count)
	}
}

func TestRemoveNodeCascadesEdges(t *testing.T) {
	d := testDiagram()

	if !d.RemoveNode(2) {
		t.Fatal("RemoveNode(2) reported node missing")
	}
	if len(d.Nodes) != 2 {
		t.Errorf("got %d nodes, want 2", len(d.Nodes))
	}
	for _, e := range d.Edges {
		if e.From == 2 || e.To == 2 {
			t.Errorf("edge %d still references removed node 2", e.ID)
		}
	}
}

func TestRemoveNodeMissing(t *testing.T) {
	d := testDiagram()
	if d.RemoveNode(42) {
		t.Error("RemoveNode(42) reported success for missing node")
	}
	if len(d.Edges) != 4 {
		t.Errorf("edges modified on failed removal: got %d, want 4", len(d.Edges))
	}
}

func TestEnsureUniqueEdgeIDs(t *testing.T) {
	d := &Diagram{
		Edges: []Edge{
			{ID: 0, From: 1, To: 2},
			{ID: 0, From: 2, To: 3},
			{ID: 0, From: 3, To: 1},
		},
	}
	EnsureUniqueEdgeIDs(d)

	seen := make(map[int]bool)
	for _, e := range d.Edges {
		if seen[e.ID] {
			t.Fatalf("duplicate edge ID %d after EnsureUniqueEdgeIDs", e.ID)
		}
		seen[e.ID] = true
	}
}

func TestCloneIsDeep(t *testing.T) {
	d := testDiagram()
	clone := d.Clone()

	clone.Nodes[0].Shape.ControlPoints[0].X = 999
	if d.Nodes[0].Shape.ControlPoints[0].X == 999 {
		t.Error("Clone shares control point storage with the original")
	}
}

func TestIsFlow(t *testing.T) {
	if !KindMaterialFlow.IsFlow() || !KindPersonnelFlow.IsFlow() {
		t.Error("flow kinds not reported as flow")
	}
	if KindAdjacency.IsFlow() || KindSeparation.IsFlow() || KindSharedEquipment.IsFlow() {
		t.Error("non-flow kind reported as flow")
	}
}

func TestNodeCenterDefaultShape(t *testing.T) {
	n := Node{ID: 1, Position: geometry.Point{X: 10, Y: 20}, Shape: shape.Shape{Kind: shape.Rectangle}}
	c := n.Center()
	if c.X != 10+shape.DefaultWidth/2 || c.Y != 20+shape.DefaultHeight/2 {
		t.Errorf("default-shape center = %v, want offset by half the default size", c)
	}
}
