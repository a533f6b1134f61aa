// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"golang.org/x/image/vector"
)

type verb uint8

const (
	verbMoveTo verb = iota
	verbLineTo
	verbCubicTo
	verbClose
)

// path is the outline of one shape as drawn on the surface.
//
// Subpaths wound in opposite directions cancel, which is how strokes are
// built: an outer outline plus a reversed inner one.
type path struct {
	verbs  []verb
	points []float32
}

func newPath() *path {
	return &path{
		verbs:  make([]verb, 0, 16),
		points: make([]float32, 0, 64),
	}
}

// MoveTo starts a new subpath at the given point.
func (p *path) MoveTo(x, y float64) {
	p.verbs = append(p.verbs, verbMoveTo)
	p.points = append(p.points, float32(x), float32(y))
}

// LineTo adds a line from the current point to (x, y).
func (p *path) LineTo(x, y float64) {
	if len(p.verbs) == 0 {
		p.MoveTo(x, y)
		return
	}
	p.verbs = append(p.verbs, verbLineTo)
	p.points = append(p.points, float32(x), float32(y))
}

// CubicTo adds a cubic Bezier curve from the current point.
func (p *path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	if len(p.verbs) == 0 {
		p.MoveTo(c1x, c1y)
	}
	p.verbs = append(p.verbs, verbCubicTo)
	p.points = append(p.points,
		float32(c1x), float32(c1y),
		float32(c2x), float32(c2y),
		float32(x), float32(y))
}

// Close closes the current subpath by connecting to the start point.
func (p *path) Close() {
	if len(p.verbs) == 0 {
		return
	}
	p.verbs = append(p.verbs, verbClose)
}

// IsEmpty returns true if the path has no elements.
func (p *path) IsEmpty() bool {
	return len(p.verbs) == 0
}

// Quad adds the closed quadrilateral a, b, c, d.
func (p *path) Quad(ax, ay, bx, by, cx, cy, dx, dy float64) {
	p.MoveTo(ax, ay)
	p.LineTo(bx, by)
	p.LineTo(cx, cy)
	p.LineTo(dx, dy)
	p.Close()
}

// Rectangle adds a rectangle to the path.
func (p *path) Rectangle(x, y, w, h float64) {
	p.Quad(x, y, x+w, y, x+w, y+h, x, y+h)
}

// ReverseRectangle adds a rectangle wound the other way.
func (p *path) ReverseRectangle(x, y, w, h float64) {
	p.Quad(x, y, x, y+h, x+w, y+h, x+w, y)
}

// bezierCircle is the control point distance for a quarter circle.
const bezierCircle = 0.5522847498307936

// Circle adds a circle to the path.
func (p *path) Circle(cx, cy, r float64) {
	o := r * bezierCircle

	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy+o, cx+o, cy+r, cx, cy+r)
	p.CubicTo(cx-o, cy+r, cx-r, cy+o, cx-r, cy)
	p.CubicTo(cx-r, cy-o, cx-o, cy-r, cx, cy-r)
	p.CubicTo(cx+o, cy-r, cx+r, cy-o, cx+r, cy)
	p.Close()
}

// ReverseCircle adds a circle wound the other way.
func (p *path) ReverseCircle(cx, cy, r float64) {
	o := r * bezierCircle

	p.MoveTo(cx+r, cy)
	p.CubicTo(cx+r, cy-o, cx+o, cy-r, cx, cy-r)
	p.CubicTo(cx-o, cy-r, cx-r, cy-o, cx-r, cy)
	p.CubicTo(cx-r, cy+o, cx-o, cy+r, cx, cy+r)
	p.CubicTo(cx+o, cy+r, cx+r, cy+o, cx+r, cy)
	p.Close()
}

// Bounds returns the axis-aligned bounding box of the path's points.
func (p *path) Bounds() (minX, minY, maxX, maxY float64) {
	if len(p.points) == 0 {
		return 0, 0, 0, 0
	}

	minX = float64(p.points[0])
	maxX = minX
	minY = float64(p.points[1])
	maxY = minY

	for i := 2; i < len(p.points); i += 2 {
		x := float64(p.points[i])
		y := float64(p.points[i+1])
		minX = min(minX, x)
		maxX = max(maxX, x)
		minY = min(minY, y)
		maxY = max(maxY, y)
	}

	return minX, minY, maxX, maxY
}

// rasterize replays the path onto z.
func (p *path) rasterize(z *vector.Rasterizer) {
	pts := p.points
	open := false
	for _, v := range p.verbs {
		switch v {
		case verbMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(pts[0], pts[1])
			pts = pts[2:]
			open = true
		case verbLineTo:
			z.LineTo(pts[0], pts[1])
			pts = pts[2:]
		case verbCubicTo:
			z.CubeTo(pts[0], pts[1], pts[2], pts[3], pts[4], pts[5])
			pts = pts[6:]
		case verbClose:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}
}
