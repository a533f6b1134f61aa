package geoviz

import "math"

// Line is the infinite line through two points.
//
// The slope is computed once at construction: a vertical line has an
// infinite slope, and a line built from two coincident points has a NaN
// slope. No validation is performed; degenerate input propagates.
type Line struct {
	a, b  Point
	slope float64
}

// NewLine creates the line through a and b.
func NewLine(a, b Point) Line {
	return Line{a: a, b: b, slope: slope(a, b)}
}

// A returns the first defining point.
func (l Line) A() Point { return l.a }

// B returns the second defining point.
func (l Line) B() Point { return l.b }

// Slope returns Δy/Δx.
func (l Line) Slope() float64 { return l.slope }

// YIntercept returns the y value of the line at x = 0.
// The result is infinite or NaN for vertical lines.
func (l Line) YIntercept() float64 {
	return l.a.Y - l.slope*l.a.X
}

// IsVertical reports whether the slope is infinite.
func (l Line) IsVertical() bool {
	return math.IsInf(l.slope, 0)
}

// IsDegenerate reports whether the line is not defined by its points,
// either because they coincide or because a coordinate is not finite.
func (l Line) IsDegenerate() bool {
	return math.IsNaN(l.slope) || !l.a.IsFinite() || !l.b.IsFinite()
}

// Translate returns the line with both points offset by v.
func (l Line) Translate(v Point) Line {
	return Line{a: l.a.Translate(v), b: l.b.Translate(v), slope: l.slope}
}

// Contains reports whether p lies on the line under tol.
func (l Line) Contains(p Point, tol Tolerance) bool {
	if l.IsVertical() {
		return tol.Equal(p.X, l.a.X)
	}
	return tol.Equal(p.Y, l.slope*p.X+l.YIntercept())
}

// IsParallel reports whether l1 and l2 have equal slopes under tol.
// Two vertical lines are parallel.
func IsParallel(l1, l2 Line, tol Tolerance) bool {
	if l1.IsVertical() || l2.IsVertical() {
		return l1.IsVertical() && l2.IsVertical()
	}
	return tol.Equal(l1.slope, l2.slope)
}

// IsOrthogonal reports whether l1 and l2 meet at a right angle under tol.
// A vertical line is orthogonal to a horizontal one.
func IsOrthogonal(l1, l2 Line, tol Tolerance) bool {
	switch {
	case l1.IsVertical():
		return tol.Equal(l2.slope, 0)
	case l2.IsVertical():
		return tol.Equal(l1.slope, 0)
	}
	return tol.Equal(l1.slope*l2.slope, -1)
}

func slope(a, b Point) float64 {
	return (b.Y - a.Y) / (b.X - a.X)
}
