package geometry

// SegmentOp identifies the drawing operation of a path segment.
type SegmentOp int

const (
	// MoveTo starts a new subpath at the segment's To point.
	MoveTo SegmentOp = iota
	// LineTo draws a straight line to the segment's To point.
	LineTo
	// QuadTo draws a quadratic bezier through Control to the To point.
	QuadTo
	// Close closes the current subpath back to its start.
	Close
)

// Segment is one drawing operation within a path.
type Segment struct {
	Op      SegmentOp
	To      Point
	Control Point // Only meaningful for QuadTo
}

// PathSpec is an ordered list of segments describing a drawable outline
// in diagram coordinates. It carries no rendering state.
type PathSpec struct {
	Segments []Segment
}

// IsEmpty returns true if the path has no segments.
func (p PathSpec) IsEmpty() bool {
	return len(p.Segments) == 0
}

// MoveTo appends a MoveTo segment.
func (p *PathSpec) MoveTo(pt Point) {
	p.Segments = append(p.Segments, Segment{Op: MoveTo, To: pt})
}

// LineTo appends a LineTo segment.
func (p *PathSpec) LineTo(pt Point) {
	p.Segments = append(p.Segments, Segment{Op: LineTo, To: pt})
}

// QuadTo appends a quadratic bezier segment through control to pt.
func (p *PathSpec) QuadTo(control, pt Point) {
	p.Segments = append(p.Segments, Segment{Op: QuadTo, To: pt, Control: control})
}

// Close appends a Close segment.
func (p *PathSpec) Close() {
	p.Segments = append(p.Segments, Segment{Op: Close})
}

// Start returns the first point of the path and whether one exists.
func (p PathSpec) Start() (Point, bool) {
	if len(p.Segments) == 0 {
		return Point{}, false
	}
	return p.Segments[0].To, true
}

// End returns the last on-path point and whether one exists. Close segments
// carry no coordinate and are skipped.
func (p PathSpec) End() (Point, bool) {
	for i := len(p.Segments) - 1; i >= 0; i-- {
		if p.Segments[i].Op != Close {
			return p.Segments[i].To, true
		}
	}
	return Point{}, false
}
