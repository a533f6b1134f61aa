package geoviz

import (
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerance is the comparison policy used by the intersection engine for
// every equality test on derived quantities (slopes, intercepts,
// discriminants, center distances).
//
// Two values are equal when they differ by at most Abs, or by at most Rel
// relative to the larger magnitude. The zero value compares exactly.
type Tolerance struct {
	Abs float64
	Rel float64
}

// DefaultTolerance is used by the package-level intersection functions.
var DefaultTolerance = Tolerance{Abs: 1e-9, Rel: 1e-9}

// Exact compares with strict floating-point equality.
var Exact = Tolerance{}

// Equal reports whether a and b are equal under the tolerance.
// Infinities of the same sign are equal; NaN is never equal to anything.
func (t Tolerance) Equal(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	if a == b {
		return true
	}
	return scalar.EqualWithinAbsOrRel(a, b, t.Abs, t.Rel)
}

// Zero reports whether v is zero relative to scale, the magnitude of the
// terms v was computed from: |v| <= Abs + Rel*|scale|.
func (t Tolerance) Zero(v, scale float64) bool {
	if math.IsNaN(v) {
		return false
	}
	return math.Abs(v) <= t.Abs+t.Rel*math.Abs(scale)
}

// sgn returns -1 for negative x and +1 otherwise. Zero maps to +1 so that a
// horizontal chord (dy == 0) still yields two distinct points.
func sgn(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}
