package geometry

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64
	}{
		{"same point", Point{1, 2}, Point{1, 2}, 0},
		{"horizontal", Point{0, 0}, Point{10, 0}, 10},
		{"diagonal 3-4-5", Point{0, 0}, Point{3, 4}, 5},
		{"negative coords", Point{-3, -4}, Point{0, 0}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distance(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestUnitPerpendicular(t *testing.T) {
	// Perpendicular of a rightward vector should point straight up or down
	// with unit length.
	perp := UnitPerpendicular(Point{0, 0}, Point{100, 0})
	if perp.X != 0 {
		t.Errorf("perpendicular of horizontal vector has X = %v, want 0", perp.X)
	}
	if math.Abs(perp.Length()-1) > 1e-9 {
		t.Errorf("perpendicular length = %v, want 1", perp.Length())
	}
}

func TestUnitPerpendicularZeroVector(t *testing.T) {
	perp := UnitPerpendicular(Point{5, 5}, Point{5, 5})
	if perp != (Point{}) {
		t.Errorf("perpendicular of zero vector = %v, want zero point", perp)
	}
}

func TestQuadPointEndpoints(t *testing.T) {
	p0 := Point{0, 0}
	c := Point{50, 100}
	p1 := Point{100, 0}

	if got := QuadPoint(p0, c, p1, 0); got != p0 {
		t.Errorf("QuadPoint at t=0 = %v, want %v", got, p0)
	}
	if got := QuadPoint(p0, c, p1, 1); got != p1 {
		t.Errorf("QuadPoint at t=1 = %v, want %v", got, p1)
	}

	// At t=0.5 the curve passes through (P0 + 2C + P1)/4.
	mid := QuadPoint(p0, c, p1, 0.5)
	want := Point{50, 50}
	if mid != want {
		t.Errorf("QuadPoint at t=0.5 = %v, want %v", mid, want)
	}
}

func TestBoundsOf(t *testing.T) {
	points := []Point{{10, 20}, {-5, 40}, {30, -10}}
	b := BoundsOf(points)

	if b.Min.X != -5 || b.Min.Y != -10 {
		t.Errorf("Min = %v, want (-5,-10)", b.Min)
	}
	if b.Max.X != 30 || b.Max.Y != 40 {
		t.Errorf("Max = %v, want (30,40)", b.Max)
	}
	if b.Width() != 35 || b.Height() != 50 {
		t.Errorf("size = %vx%v, want 35x50", b.Width(), b.Height())
	}
}

func TestBoundsOfEmpty(t *testing.T) {
	b := BoundsOf(nil)
	if b.Width() != 0 || b.Height() != 0 {
		t.Errorf("empty bounds size = %vx%v, want 0x0", b.Width(), b.Height())
	}
}

func TestRectCenter(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 120, Height: 80}
	if got := r.Center(); got != (Point{60, 40}) {
		t.Errorf("Center() = %v, want (60,40)", got)
	}
}

func TestPathSpecEnd(t *testing.T) {
	var p PathSpec
	p.MoveTo(Point{0, 0})
	p.LineTo(Point{10, 0})
	p.Close()

	end, ok := p.End()
	if !ok || end != (Point{10, 0}) {
		t.Errorf("End() = %v, %v; want (10,0), true", end, ok)
	}
}
