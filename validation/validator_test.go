package validation

import (
	"strings"
	"testing"

	"areal/diagram"
	"areal/geometry"
	"areal/shape"
)

func validDiagram() *diagram.Diagram {
	return &diagram.Diagram{
		Nodes: []diagram.Node{
			{ID: 1, Shape: shape.NewRectangle(0, 0, 120, 80)},
			{ID: 2, Shape: shape.NewRectangle(300, 0, 120, 80)},
		},
		Edges: []diagram.Edge{
			{ID: 0, From: 1, To: 2, Kind: diagram.KindMaterialFlow},
		},
	}
}

func TestValidateCleanDiagram(t *testing.T) {
	errs := NewValidator().Validate(validDiagram())
	if len(errs) != 0 {
		t.Errorf("clean diagram produced %d findings: %v", len(errs), errs)
	}
}

func TestValidateDanglingEdge(t *testing.T) {
	d := validDiagram()
	d.Edges = append(d.Edges, diagram.Edge{ID: 1, From: 1, To: 99})

	errs := NewValidator().Validate(d)
	if len(errs) != 1 {
		t.Fatalf("got %d findings, want 1", len(errs))
	}
	if errs[0].Severity != Error || errs[0].EdgeID != 1 {
		t.Errorf("finding = %+v, want an error on edge 1", errs[0])
	}
	if !strings.Contains(errs[0].Message, "missing target node 99") {
		t.Errorf("message = %q, want it to name the missing node", errs[0].Message)
	}
}

func TestValidateDuplicateNodeID(t *testing.T) {
	d := validDiagram()
	d.Nodes = append(d.Nodes, diagram.Node{ID: 1, Shape: shape.NewRectangle(0, 200, 120, 80)})

	errs := NewValidator().Validate(d)
	if len(errs) != 1 || errs[0].NodeID != 1 {
		t.Errorf("findings = %v, want one duplicate-ID error on node 1", errs)
	}
}

func TestValidateShapeContract(t *testing.T) {
	d := validDiagram()
	d.Nodes[0].Shape = shape.Shape{
		Kind:          shape.Polygon,
		ControlPoints: []geometry.Point{{X: 0, Y: 0}, {X: 10, Y: 10}},
	}

	errs := NewValidator().Validate(d)
	if len(errs) != 1 || errs[0].NodeID != 1 || errs[0].Severity != Error {
		t.Errorf("findings = %v, want one shape-contract error on node 1", errs)
	}
}

func TestValidateSelfLoopWarning(t *testing.T) {
	d := validDiagram()
	d.Edges = append(d.Edges, diagram.Edge{ID: 1, From: 2, To: 2})

	v := NewValidator()
	errs := v.Validate(d)
	if len(errs) != 1 || errs[0].Severity != Warning {
		t.Fatalf("findings = %v, want one self-loop warning", errs)
	}

	v.SetWarnSelfLoops(false)
	if errs := v.Validate(d); len(errs) != 0 {
		t.Errorf("self-loop warning still reported when disabled: %v", errs)
	}
}
