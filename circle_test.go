package geoviz

import (
	"math"
	"testing"
)

func TestNewCircle_Measures(t *testing.T) {
	tests := []struct {
		name              string
		center, sidepoint Point
		radius            float64
	}{
		{"unit", Pt(0, 0), Pt(1, 0), 1},
		{"3-4-5", Pt(1, 1), Pt(4, 5), 5},
		{"zero radius", Pt(2, 2), Pt(2, 2), 0},
		{"irrational", Pt(0, 0), Pt(1, 1), math.Sqrt2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCircle(tt.center, tt.sidepoint)
			if c.Radius() != Distance(tt.center, tt.sidepoint) {
				t.Errorf("Radius() = %v, want Distance() = %v", c.Radius(), Distance(tt.center, tt.sidepoint))
			}
			if !almostEqual(c.Radius(), tt.radius, 1e-12) {
				t.Errorf("Radius() = %v, want %v", c.Radius(), tt.radius)
			}
			if c.Diameter() != 2*c.Radius() {
				t.Errorf("Diameter() = %v, want %v", c.Diameter(), 2*c.Radius())
			}
			if !almostEqual(c.Perimeter(), 2*math.Pi*tt.radius, 1e-12) {
				t.Errorf("Perimeter() = %v", c.Perimeter())
			}
			if !almostEqual(c.Area(), math.Pi*tt.radius*tt.radius, 1e-12) {
				t.Errorf("Area() = %v", c.Area())
			}
			if c.Center() != tt.center || c.Sidepoint() != tt.sidepoint {
				t.Errorf("Center/Sidepoint = %v/%v, want %v/%v", c.Center(), c.Sidepoint(), tt.center, tt.sidepoint)
			}
		})
	}
}

func TestCircle_Bounds(t *testing.T) {
	c := NewCircle(Pt(10, 20), Pt(13, 24))
	lo, hi := c.Bounds()
	if lo != Pt(5, 15) || hi != Pt(15, 25) {
		t.Errorf("Bounds() = %v, %v, want (5,15), (15,25)", lo, hi)
	}
}

func TestCircle_IsDegenerate(t *testing.T) {
	if NewCircle(Pt(0, 0), Pt(1, 0)).IsDegenerate() {
		t.Error("unit circle reported degenerate")
	}
	if !NewCircle(Pt(math.NaN(), 0), Pt(1, 0)).IsDegenerate() {
		t.Error("NaN center not reported degenerate")
	}
	if !NewCircle(Pt(0, 0), Pt(math.Inf(1), 0)).IsDegenerate() {
		t.Error("infinite radius not reported degenerate")
	}
}
