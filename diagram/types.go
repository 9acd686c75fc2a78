// Package diagram contains the plain data records exchanged between the
// geometry engine and its collaborators: nodes with shapes, and the
// relationships between them.
package diagram

import (
	"areal/geometry"
	"areal/shape"
)

// RelationKind classifies a relationship between two areas.
type RelationKind string

const (
	// KindMaterialFlow is a directional movement of material.
	KindMaterialFlow RelationKind = "material-flow"
	// KindPersonnelFlow is a directional movement of people.
	KindPersonnelFlow RelationKind = "personnel-flow"
	// KindAdjacency requires two areas to be placed next to each other.
	KindAdjacency RelationKind = "adjacency"
	// KindSeparation requires two areas to be kept apart.
	KindSeparation RelationKind = "separation"
	// KindSharedEquipment marks areas that share installed equipment.
	KindSharedEquipment RelationKind = "shared-equipment"
)

// IsFlow reports whether the kind represents directional movement and so
// warrants arrowhead rendering.
func (k RelationKind) IsFlow() bool {
	return k == KindMaterialFlow || k == KindPersonnelFlow
}

// FlowDirection describes which way a flow relationship runs.
type FlowDirection string

const (
	// FlowUnidirectional runs from source to target only.
	FlowUnidirectional FlowDirection = "unidirectional"
	// FlowBidirectional runs both ways.
	FlowBidirectional FlowDirection = "bidirectional"
)

// Node represents a placed area in the diagram. The node owns its shape
// exclusively; only the resize controller mutates it on the user's behalf.
type Node struct {
	ID       int            `json:"id"`
	Label    string         `json:"label,omitempty"`
	Position geometry.Point `json:"position"`
	Shape    shape.Shape    `json:"shape"`
}

// AnchorRect returns the axis-aligned rectangle used to anchor edges to
// this node. Non-rectangular outlines are approximated by their bounding
// box; this matches historical output and is a known inaccuracy for
// polygon shapes.
func (n Node) AnchorRect() geometry.Rect {
	b := shape.BoundingBox(n.Shape)
	r := b.Rect()
	if len(n.Shape.ControlPoints) == 0 {
		// Default-sized box anchored at the node's position.
		r.X = n.Position.X
		r.Y = n.Position.Y
	}
	return r
}

// Center returns the center of the node's anchor rectangle.
func (n Node) Center() geometry.Point {
	return n.AnchorRect().Center()
}

// Edge represents one relationship between two nodes. Multiple edges may
// connect the same pair; their separation index is derived at read time,
// never stored.
type Edge struct {
	ID            int           `json:"id"`
	From          int           `json:"from"`
	To            int           `json:"to"`
	Kind          RelationKind  `json:"kind"`
	Priority      int           `json:"priority,omitempty"`
	FlowDirection FlowDirection `json:"flowDirection,omitempty"`
	Reason        string        `json:"reason,omitempty"`
}

// ConnectsPair reports whether the edge joins the given unordered node pair.
func (e Edge) ConnectsPair(a, b int) bool {
	return (e.From == a && e.To == b) || (e.From == b && e.To == a)
}

// Metadata contains optional diagram metadata.
type Metadata struct {
	Name    string `json:"name,omitempty"`
	Created string `json:"created,omitempty"`
	Version string `json:"version,omitempty"`
}

// Diagram represents a complete diagram with nodes and edges.
type Diagram struct {
	Nodes    []Node   `json:"nodes"`
	Edges    []Edge   `json:"edges"`
	Metadata Metadata `json:"metadata,omitempty"`
}

// FindNode returns a pointer to the node with the given ID, or nil.
func (d *Diagram) FindNode(id int) *Node {
	for i := range d.Nodes {
		if d.Nodes[i].ID == id {
			return &d.Nodes[i]
		}
	}
	return nil
}

// NextNodeID returns an ID one past the highest node ID in use.
func (d *Diagram) NextNodeID() int {
	next := 0
	for _, n := range d.Nodes {
		if n.ID >= next {
			next = n.ID + 1
		}
	}
	return next
}

// NextEdgeID returns an ID one past the highest edge ID in use.
func (d *Diagram) NextEdgeID() int {
	next := 0
	for _, e := range d.Edges {
		if e.ID >= next {
			next = e.ID + 1
		}
	}
	return next
}

// RemoveNode deletes a node and cascades to every edge touching it.
// It reports whether the node existed.
func (d *Diagram) RemoveNode(id int) bool {
	found := false
	nodes := d.Nodes[:0]
	for _, n := range d.Nodes {
		if n.ID == id {
			found = true
			continue
		}
		nodes = append(nodes, n)
	}
	d.Nodes = nodes
	if !found {
		return false
	}

	edges := d.Edges[:0]
	for _, e := range d.Edges {
		if e.From == id || e.To == id {
			continue
		}
		edges = append(edges, e)
	}
	d.Edges = edges
	return true
}

// RemoveEdge deletes the edge with the given ID and reports whether it
// existed.
func (d *Diagram) RemoveEdge(id int) bool {
	for i, e := range d.Edges {
		if e.ID == id {
			d.Edges = append(d.Edges[:i], d.Edges[i+1:]...)
			return true
		}
	}
	return false
}

// RelationshipIndex returns this edge's position among all edges joining
// the same unordered node pair, in list order, along with the pair's total
// count. The index is recomputed on every read so that deleting a parallel
// edge closes the gap. Returns (-1, 0) if the edge is not in the list.
func RelationshipIndex(edges []Edge, edgeID int) (index, count int) {
	var target *Edge
	for i := range edges {
		if edges[i].ID == edgeID {
			target = &edges[i]
			break
		}
	}
	if target == nil {
		return -1, 0
	}

	index = -1
	for _, e := range edges {
		if !e.ConnectsPair(target.From, target.To) {
			continue
		}
		if e.ID == edgeID {
			index = count
		}
		count++
	}
	return index, count
}

// EnsureUniqueEdgeIDs assigns fresh IDs to any edges sharing an ID with an
// earlier edge. Diagrams written by older tools stored edges without IDs.
func EnsureUniqueEdgeIDs(d *Diagram) {
	seen := make(map[int]bool)
	next := 0
	for _, e := range d.Edges {
		if e.ID >= next {
			next = e.ID + 1
		}
	}
	for i := range d.Edges {
		if seen[d.Edges[i].ID] {
			d.Edges[i].ID = next
			next++
		}
		seen[d.Edges[i].ID] = true
	}
}

// Clone creates a deep copy of the diagram.
func (d *Diagram) Clone() *Diagram {
	if d == nil {
		return nil
	}
	clone := &Diagram{
		Nodes:    make([]Node, len(d.Nodes)),
		Edges:    make([]Edge, len(d.Edges)),
		Metadata: d.Metadata,
	}
	for i, n := range d.Nodes {
		n.Shape = shape.Clone(n.Shape)
		clone.Nodes[i] = n
	}
	copy(clone.Edges, d.Edges)
	return clone
}
