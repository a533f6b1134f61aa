package geoviz

import "math"

// Circle is defined by its center and any point on its boundary.
// All measures are fixed at construction.
type Circle struct {
	center    Point
	sidepoint Point
	radius    float64
	diameter  float64
	perimeter float64
	area      float64
}

// NewCircle creates the circle around center passing through sidepoint.
func NewCircle(center, sidepoint Point) Circle {
	r := Distance(center, sidepoint)
	return Circle{
		center:    center,
		sidepoint: sidepoint,
		radius:    r,
		diameter:  2 * r,
		perimeter: 2 * math.Pi * r,
		area:      math.Pi * r * r,
	}
}

// Center returns the center point.
func (c Circle) Center() Point { return c.center }

// Sidepoint returns the boundary point the circle was built from.
func (c Circle) Sidepoint() Point { return c.sidepoint }

// Radius returns the distance from the center to the sidepoint.
func (c Circle) Radius() float64 { return c.radius }

// Diameter returns twice the radius.
func (c Circle) Diameter() float64 { return c.diameter }

// Perimeter returns the circumference.
func (c Circle) Perimeter() float64 { return c.perimeter }

// Area returns the enclosed area.
func (c Circle) Area() float64 { return c.area }

// Bounds returns the corners of the axis-aligned bounding box.
func (c Circle) Bounds() (lo, hi Point) {
	r := Pt(c.radius, c.radius)
	return c.center.Sub(r), c.center.Add(r)
}

// IsDegenerate reports whether the circle has a non-finite center or radius.
func (c Circle) IsDegenerate() bool {
	return !c.center.IsFinite() || !isFinite(c.radius)
}
