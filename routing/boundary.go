// Package routing turns the edge set into renderable paths: it anchors
// edges on node boundaries, separates parallel relationships between the
// same pair of nodes, and produces the final line or curve for each edge.
package routing

import "areal/geometry"

// BoundaryIntersection returns the point where the ray from the
// rectangle's center toward the target exits the rectangle.
//
// The exit edge is chosen by comparing |dx|/halfWidth against
// |dy|/halfHeight; the larger ratio wins. When the winning axis has a zero
// delta the exact edge midpoint is returned instead of dividing by zero.
// A target at the center itself also yields an edge midpoint (right edge).
func BoundaryIntersection(rect geometry.Rect, target geometry.Point) geometry.Point {
	center := rect.Center()
	dx := target.X - center.X
	dy := target.Y - center.Y
	halfW := rect.Width / 2
	halfH := rect.Height / 2

	absDX := dx
	if absDX < 0 {
		absDX = -absDX
	}
	absDY := dy
	if absDY < 0 {
		absDY = -absDY
	}

	// Degenerate rectangle: treat the center as the boundary.
	if halfW <= 0 || halfH <= 0 {
		return center
	}

	if absDX*halfH >= absDY*halfW {
		// Exits through the left or right edge.
		if absDX == 0 {
			return geometry.Point{X: center.X + halfW, Y: center.Y}
		}
		x := center.X + halfW
		if dx < 0 {
			x = center.X - halfW
		}
		return geometry.Point{X: x, Y: center.Y + dy*halfW/absDX}
	}

	// Exits through the top or bottom edge.
	if absDY == 0 {
		return geometry.Point{X: center.X, Y: center.Y + halfH}
	}
	y := center.Y + halfH
	if dy < 0 {
		y = center.Y - halfH
	}
	return geometry.Point{X: center.X + dx*halfH/absDY, Y: y}
}
