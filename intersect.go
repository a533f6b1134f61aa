package geoviz

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Intersection engine for lines and circles.
//
// All functions are pure: they read only their arguments and may be called
// from any number of goroutines. The package-level functions compare with
// DefaultTolerance; the same operations are available as Tolerance methods
// for callers that need another policy.

// LineIntersectionPoint returns the crossing point of two lines from the
// slope/intercept form, without classifying the pair.
//
// If exactly one line is vertical its x is substituted into the other.
// For parallel, coincident or doubly vertical lines the coordinates are
// NaN or infinite. Use IntersectLines for a classified result.
func LineIntersectionPoint(l1, l2 Line) Point {
	if l1.IsVertical() {
		x := l1.a.X
		return Pt(x, l2.slope*x+l2.YIntercept())
	}
	if l2.IsVertical() {
		x := l2.a.X
		return Pt(x, l1.slope*x+l1.YIntercept())
	}
	x := (l2.YIntercept() - l1.YIntercept()) / (l1.slope - l2.slope)
	y := l1.slope*x + l1.YIntercept()
	return Pt(x, y)
}

// IntersectLines intersects two infinite lines using DefaultTolerance.
func IntersectLines(l1, l2 Line) Intersection {
	return DefaultTolerance.IntersectLines(l1, l2)
}

// IntersectLineCircle intersects an infinite line with a circle using
// DefaultTolerance.
func IntersectLineCircle(l Line, c Circle) Intersection {
	return DefaultTolerance.IntersectLineCircle(l, c)
}

// IntersectCircles intersects two circles using DefaultTolerance.
func IntersectCircles(c1, c2 Circle) Intersection {
	return DefaultTolerance.IntersectCircles(c1, c2)
}

// IntersectLines intersects two infinite lines.
//
// Lines with equal slopes (or both vertical) are parallel: KindCoincident
// when their intercepts (or x positions) are also equal, KindNone
// otherwise. Any other pair meets in exactly one point.
func (t Tolerance) IntersectLines(l1, l2 Line) Intersection {
	if l1.IsDegenerate() || l2.IsDegenerate() {
		Logger().Debug("geoviz: degenerate line", "l1", l1, "l2", l2)
		return degenerate()
	}

	if IsParallel(l1, l2, t) {
		var same bool
		if l1.IsVertical() {
			same = t.Equal(l1.a.X, l2.a.X)
		} else {
			same = t.Equal(l1.YIntercept(), l2.YIntercept())
		}
		if same {
			return coincident()
		}
		return noIntersection()
	}

	return onePoint(LineIntersectionPoint(l1, l2))
}

// IntersectLineCircle intersects an infinite line with a circle.
//
// The line is moved into the frame where the circle is centered at the
// origin and solved in closed form:
//
//	dx, dy = b - a
//	dr²    = dx² + dy²
//	D      = ax·by - bx·ay
//	disc   = r²·dr² - D²
//
// A negative discriminant means no intersection and zero means tangency.
// The tangency test is |disc| <= Abs + Rel·(r²·dr² + D²), so the tolerance
// scales with the terms the discriminant is the difference of.
func (t Tolerance) IntersectLineCircle(l Line, c Circle) Intersection {
	if l.IsDegenerate() || c.IsDegenerate() {
		Logger().Debug("geoviz: degenerate line-circle input", "line", l, "circle", c)
		return degenerate()
	}

	local := l.Translate(c.center.Neg())
	a, b := local.a, local.b

	dx := b.X - a.X
	dy := b.Y - a.Y
	dr2 := dx*dx + dy*dy
	d := a.X*b.Y - b.X*a.Y
	r2 := c.radius * c.radius

	disc := r2*dr2 - d*d
	if t.Zero(disc, r2*dr2+d*d) {
		p := Pt(d*dy/dr2, -d*dx/dr2)
		return onePoint(p.Translate(c.center))
	}
	if disc < 0 {
		return noIntersection()
	}

	sq := math.Sqrt(disc)
	p := Pt(
		(d*dy+sgn(dy)*dx*sq)/dr2,
		(-d*dx+math.Abs(dy)*sq)/dr2,
	)
	q := Pt(
		(d*dy-sgn(dy)*dx*sq)/dr2,
		(-d*dx-math.Abs(dy)*sq)/dr2,
	)
	return twoPoints(p.Translate(c.center), q.Translate(c.center))
}

// IntersectCircles intersects two circles.
//
// With d the distance between the centers, the circles touch in one point
// when d equals the sum of the radii (external tangency) or d plus the
// smaller radius equals the larger (internal tangency). They do not meet
// when they are too far apart or one lies strictly inside the other.
// Concentric circles of different radii do not meet; concentric circles of
// equal radius are KindCoincident.
//
// Otherwise the points are found by projecting onto the center axis at
//
//	x = (r1² + d² - r2²) / 2d
//
// from the first center and offsetting by ±sqrt(r1² - x²) along the normal.
func (t Tolerance) IntersectCircles(c1, c2 Circle) Intersection {
	if c1.IsDegenerate() || c2.IsDegenerate() {
		Logger().Debug("geoviz: degenerate circle", "c1", c1, "c2", c2)
		return degenerate()
	}

	ra, rb := c1.radius, c2.radius
	rmin, rmax := math.Min(ra, rb), math.Max(ra, rb)

	p := r2.Vec{X: c1.center.X, Y: c1.center.Y}
	axis := r2.Sub(r2.Vec{X: c2.center.X, Y: c2.center.Y}, p)
	d := r2.Norm(axis)

	if t.Zero(d, rmax) {
		if t.Equal(ra, rb) {
			Logger().Debug("geoviz: coincident circles", "center", c1.center, "radius", ra)
			return coincident()
		}
		return noIntersection()
	}

	unit := r2.Scale(1/d, axis)
	x := (ra*ra + d*d - rb*rb) / (2 * d)
	base := r2.Add(p, r2.Scale(x, unit))

	if t.Equal(d, ra+rb) || t.Equal(d+rmin, rmax) {
		return onePoint(Pt(base.X, base.Y))
	}
	if d > ra+rb || d+rmin < rmax {
		return noIntersection()
	}

	y := math.Sqrt(math.Max(0, ra*ra-x*x))
	normal := r2.Vec{X: -unit.Y, Y: unit.X}
	first := r2.Add(base, r2.Scale(y, normal))
	second := r2.Sub(base, r2.Scale(y, normal))
	return twoPoints(Pt(first.X, first.Y), Pt(second.X, second.Y))
}
