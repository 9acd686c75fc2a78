// Package validation checks diagrams for structural problems before they
// reach the geometry engine: dangling edge endpoints, duplicate IDs and
// shape contract violations.
package validation

import (
	"fmt"

	"areal/diagram"
	"areal/shape"
)

// Severity grades a validation finding.
type Severity int

const (
	// Warning findings render degraded but do not block editing.
	Warning Severity = iota
	// Error findings mean the affected element cannot render at all.
	Error
)

// String returns the severity name for display.
func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "warning"
}

// ValidationError describes one problem found in a diagram.
type ValidationError struct {
	Severity Severity
	NodeID   int // -1 when the finding concerns an edge
	EdgeID   int // -1 when the finding concerns a node
	Message  string
}

// Validator checks diagram structure.
type Validator struct {
	// warnSelfLoops reports edges whose endpoints are the same node.
	warnSelfLoops bool
}

// NewValidator creates a validator with default settings.
func NewValidator() *Validator {
	return &Validator{warnSelfLoops: true}
}

// SetWarnSelfLoops enables or disables self-loop warnings.
func (v *Validator) SetWarnSelfLoops(warn bool) {
	v.warnSelfLoops = warn
}

// Validate checks a diagram and returns all findings. An empty slice means
// the diagram is structurally sound.
func (v *Validator) Validate(d *diagram.Diagram) []ValidationError {
	var errs []ValidationError

	nodeIDs := make(map[int]bool, len(d.Nodes))
	for _, n := range d.Nodes {
		if nodeIDs[n.ID] {
			errs = append(errs, ValidationError{
				Severity: Error,
				NodeID:   n.ID,
				EdgeID:   -1,
				Message:  fmt.Sprintf("duplicate node ID %d", n.ID),
			})
		}
		nodeIDs[n.ID] = true

		if err := shape.Validate(n.Shape); err != nil {
			errs = append(errs, ValidationError{
				Severity: Error,
				NodeID:   n.ID,
				EdgeID:   -1,
				Message:  fmt.Sprintf("node %d shape: %v", n.ID, err),
			})
		}
	}

	edgeIDs := make(map[int]bool, len(d.Edges))
	for _, e := range d.Edges {
		if edgeIDs[e.ID] {
			errs = append(errs, ValidationError{
				Severity: Error,
				NodeID:   -1,
				EdgeID:   e.ID,
				Message:  fmt.Sprintf("duplicate edge ID %d", e.ID),
			})
		}
		edgeIDs[e.ID] = true

		if !nodeIDs[e.From] {
			errs = append(errs, ValidationError{
				Severity: Error,
				NodeID:   -1,
				EdgeID:   e.ID,
				Message:  fmt.Sprintf("edge %d references missing source node %d", e.ID, e.From),
			})
		}
		if !nodeIDs[e.To] {
			errs = append(errs, ValidationError{
				Severity: Error,
				NodeID:   -1,
				EdgeID:   e.ID,
				Message:  fmt.Sprintf("edge %d references missing target node %d", e.ID, e.To),
			})
		}
		if v.warnSelfLoops && e.From == e.To {
			errs = append(errs, ValidationError{
				Severity: Warning,
				NodeID:   -1,
				EdgeID:   e.ID,
				Message:  fmt.Sprintf("edge %d connects node %d to itself", e.ID, e.From),
			})
		}
	}

	return errs
}
