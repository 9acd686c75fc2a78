package routing

import (
	"math"

	"areal/diagram"
)

// Strategy selects how parallel edges between the same node pair are
// separated visually.
type Strategy int

const (
	// StrategyStraight offsets each edge perpendicular to the direct line,
	// producing parallel straight segments.
	StrategyStraight Strategy = iota
	// StrategyCurved bows each edge out as a quadratic bezier arc around
	// the direct line.
	StrategyCurved
)

// String returns the strategy name for display.
func (s Strategy) String() string {
	switch s {
	case StrategyStraight:
		return "straight"
	case StrategyCurved:
		return "curved"
	default:
		return "unknown"
	}
}

const (
	// straightSpacing is the perpendicular distance between adjacent
	// parallel straight edges, in diagram units.
	straightSpacing = 15.0
	// curvatureCap limits how far a curved edge bows out regardless of
	// the distance between its endpoints.
	curvatureCap = 100.0
	// curvatureScale sets the base bow as a fraction of edge length.
	curvatureScale = 0.3
)

// ParallelEdges returns the edges joining the given unordered node pair,
// in list order. The returned slice preserves creation order so that
// separation indices stay stable as long as the edge list does.
func ParallelEdges(edges []diagram.Edge, a, b int) []diagram.Edge {
	var pair []diagram.Edge
	for _, e := range edges {
		if e.ConnectsPair(a, b) {
			pair = append(pair, e)
		}
	}
	return pair
}

// StraightOffset returns the signed perpendicular offset for the edge at
// the given index among count parallel edges. Offsets fan out symmetrically
// around the direct line: odd counts center one edge on zero, even counts
// straddle it by half a step.
func StraightOffset(index, count int) float64 {
	offset := float64(index-count/2) * straightSpacing
	if count%2 == 0 {
		offset += straightSpacing / 2
	}
	return offset
}

// Curvature returns the signed bow magnitude for the edge at the given
// index, given the distance between its endpoints. Direction alternates by
// index parity and magnitude grows every two indices, so successive edges
// fan out on alternating sides of the straight line. The base unit scales
// with edge length but is capped so long edges do not balloon.
func Curvature(index int, distance float64) float64 {
	base := math.Min(distance*curvatureScale, curvatureCap)
	magnitude := math.Ceil(float64(index+1)/2) * base
	if index%2 == 1 {
		return -magnitude
	}
	return magnitude
}

// Separation bundles one edge against the full edge list and returns its
// separation parameters: the edge's index within its unordered pair, the
// pair's total count, and the offset or curvature for the given strategy.
// ok is false when the edge is absent from the list or the two endpoints
// coincide (zero distance), in which case nothing should be rendered.
func Separation(edges []diagram.Edge, edgeID int, distance float64, strategy Strategy) (index, count int, amount float64, ok bool) {
	index, count = diagram.RelationshipIndex(edges, edgeID)
	if index < 0 {
		return -1, 0, 0, false
	}
	if distance == 0 {
		return index, count, 0, false
	}

	switch strategy {
	case StrategyCurved:
		if count > 1 {
			amount = Curvature(index, distance)
		}
	default:
		if count > 1 {
			amount = StraightOffset(index, count)
		}
	}
	return index, count, amount, true
}
