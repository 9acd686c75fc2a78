// Package shape models node outlines: a shape kind plus control points,
// and the pure functions that turn them into drawable paths and metrics.
package shape

import (
	"fmt"
	"math"

	"areal/geometry"
)

// Default declared size used when a shape carries no usable geometry.
const (
	DefaultWidth  = 120.0
	DefaultHeight = 80.0
)

// Kind discriminates how a shape's control points are interpreted.
type Kind int

const (
	// Rectangle is defined by exactly two control points: the top-left and
	// bottom-right corners.
	Rectangle Kind = iota
	// Polygon is a simple closed loop of three or more control points in a
	// fixed winding order.
	Polygon
	// Preset is a polygon stamped from a named template. It behaves as a
	// Polygon for all geometry; the name is kept for palette round-trips.
	Preset
)

// String returns the kind name for display and serialization.
func (k Kind) String() string {
	switch k {
	case Rectangle:
		return "rectangle"
	case Polygon:
		return "polygon"
	case Preset:
		return "preset"
	default:
		return "unknown"
	}
}

// Shape is the canonical outline of a node. Control points are absolute
// diagram coordinates. Width and Height mirror the bounding extent and
// are kept in sync by the mutation paths (resize, placement).
type Shape struct {
	Kind          Kind             `json:"kind"`
	PresetName    string           `json:"presetName,omitempty"`
	ControlPoints []geometry.Point `json:"controlPoints"`
	Width         float64          `json:"width"`
	Height        float64          `json:"height"`
	Rotation      float64          `json:"rotation,omitempty"` // degrees
}

// NewRectangle builds a rectangle shape from an origin and size, normalizing
// so the first control point is the top-left corner.
func NewRectangle(x, y, width, height float64) Shape {
	if width < 0 {
		x, width = x+width, -width
	}
	if height < 0 {
		y, height = y+height, -height
	}
	return Shape{
		Kind: Rectangle,
		ControlPoints: []geometry.Point{
			{X: x, Y: y},
			{X: x + width, Y: y + height},
		},
		Width:  width,
		Height: height,
	}
}

// NewPolygon builds a polygon shape from its loop of control points.
func NewPolygon(points []geometry.Point) (Shape, error) {
	if len(points) < 3 {
		return Shape{}, fmt.Errorf("polygon requires at least 3 control points, got %d", len(points))
	}
	b := geometry.BoundsOf(points)
	return Shape{
		Kind:          Polygon,
		ControlPoints: points,
		Width:         b.Width(),
		Height:        b.Height(),
	}, nil
}

// Validate checks the control-point contract for the shape's kind. It is
// called at mutation boundaries; the render path assumes it already passed.
func Validate(s Shape) error {
	switch s.Kind {
	case Rectangle:
		if len(s.ControlPoints) != 0 && len(s.ControlPoints) != 2 {
			return fmt.Errorf("rectangle requires exactly 2 control points, got %d", len(s.ControlPoints))
		}
		if len(s.ControlPoints) == 2 {
			tl, br := s.ControlPoints[0], s.ControlPoints[1]
			if br.X <= tl.X || br.Y <= tl.Y {
				return fmt.Errorf("rectangle corners are not ordered: top-left %v, bottom-right %v", tl, br)
			}
		}
	case Polygon, Preset:
		if len(s.ControlPoints) != 0 && len(s.ControlPoints) < 3 {
			return fmt.Errorf("%s requires at least 3 control points, got %d", s.Kind, len(s.ControlPoints))
		}
	default:
		return fmt.Errorf("unknown shape kind %d", s.Kind)
	}
	return nil
}

// PathFor returns the drawable outline for a shape. It is a pure function
// of its input: identical shapes always produce identical paths.
//
// A shape with no control points renders as an empty path; callers fall
// back to BoundingBox for placement. Shapes that violate the control-point
// contract return an error instead of a guessed outline.
func PathFor(s Shape) (geometry.PathSpec, error) {
	if len(s.ControlPoints) == 0 {
		return geometry.PathSpec{}, nil
	}
	if err := Validate(s); err != nil {
		return geometry.PathSpec{}, err
	}

	var path geometry.PathSpec
	switch s.Kind {
	case Rectangle:
		tl, br := s.ControlPoints[0], s.ControlPoints[1]
		path.MoveTo(tl)
		path.LineTo(geometry.Point{X: br.X, Y: tl.Y})
		path.LineTo(br)
		path.LineTo(geometry.Point{X: tl.X, Y: br.Y})
		path.Close()
	case Polygon, Preset:
		path.MoveTo(s.ControlPoints[0])
		for _, p := range s.ControlPoints[1:] {
			path.LineTo(p)
		}
		path.Close()
	}
	return path, nil
}

// BoundingBox returns the extent of the shape's control points. A shape
// with no control points gets a default box at the origin sized by its
// declared width/height (120x80 when those are absent).
func BoundingBox(s Shape) geometry.Bounds {
	if len(s.ControlPoints) == 0 {
		w, h := s.Width, s.Height
		if w <= 0 {
			w = DefaultWidth
		}
		if h <= 0 {
			h = DefaultHeight
		}
		return geometry.Bounds{Max: geometry.Point{X: w, Y: h}}
	}
	return geometry.BoundsOf(s.ControlPoints)
}

// Area returns the enclosed area of the shape. Rectangles multiply their
// side lengths; polygons use the shoelace formula with the absolute value
// taken so winding order does not matter.
func Area(s Shape) float64 {
	switch s.Kind {
	case Rectangle:
		if len(s.ControlPoints) != 2 {
			return s.Width * s.Height
		}
		tl, br := s.ControlPoints[0], s.ControlPoints[1]
		return (br.X - tl.X) * (br.Y - tl.Y)
	case Polygon, Preset:
		pts := s.ControlPoints
		if len(pts) < 3 {
			return 0
		}
		sum := 0.0
		for i, p := range pts {
			q := pts[(i+1)%len(pts)]
			sum += p.X*q.Y - q.X*p.Y
		}
		return math.Abs(sum) / 2
	default:
		return 0
	}
}

// Translate returns a copy of the shape with every control point moved
// by the given offset.
func Translate(s Shape, offset geometry.Point) Shape {
	moved := s
	moved.ControlPoints = make([]geometry.Point, len(s.ControlPoints))
	for i, p := range s.ControlPoints {
		moved.ControlPoints[i] = p.Add(offset)
	}
	return moved
}

// Clone returns a deep copy of the shape.
func Clone(s Shape) Shape {
	c := s
	c.ControlPoints = make([]geometry.Point, len(s.ControlPoints))
	copy(c.ControlPoints, s.ControlPoints)
	return c
}
