// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"log/slog"
	"slices"

	"golang.org/x/image/vector"

	"github.com/gogpu/geoviz"
	"github.com/gogpu/geoviz/internal/spatial"
)

// ShapeKind identifies the history a ShapeRef points into.
type ShapeKind int

const (
	ShapeLine ShapeKind = iota
	ShapeCircle
)

// String returns the name of the shape kind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeLine:
		return "line"
	case ShapeCircle:
		return "circle"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// ShapeRef is the position of a shape in the surface history.
type ShapeRef struct {
	Kind  ShapeKind
	Index int
}

// Hit is one intersection point found when a shape was added.
// New is the shape being added, Old the stored shape it met.
type Hit struct {
	Point geoviz.Point
	New   ShapeRef
	Old   ShapeRef
}

// Surface is a raster canvas with a drawing history.
type Surface struct {
	opts options
	log  *slog.Logger

	img    *image.RGBA
	raster *vector.Rasterizer

	points  []geoviz.Point
	buffer  []geoviz.Point
	lines   []geoviz.Line
	circles []geoviz.Circle
	rects   []geoviz.Rectangle
	hits    []Hit
	index   *spatial.CircleIndex
}

// New creates a surface of the given size in pixels, cleared to the
// background color.
func New(width, height int, opts ...Option) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("surface: invalid dimensions: width=%d, height=%d (both must be > 0)", width, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	log := o.logger
	if log == nil {
		log = geoviz.Logger()
	}

	s := &Surface{
		opts:   o,
		log:    log,
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		raster: vector.NewRasterizer(width, height),
		index:  spatial.NewCircleIndex(o.tolerance),
	}
	s.paintBackground()
	return s, nil
}

// Width returns the width in pixels.
func (s *Surface) Width() int { return s.img.Bounds().Dx() }

// Height returns the height in pixels.
func (s *Surface) Height() int { return s.img.Bounds().Dy() }

// Mode returns the current drawing mode.
func (s *Surface) Mode() Mode { return s.opts.mode }

// SetMode changes the drawing mode. A pending click stays buffered and
// completes a shape of the new mode.
func (s *Surface) SetMode(m Mode) { s.opts.mode = m }

// Color returns the current shape color.
func (s *Surface) Color() RGBA { return s.opts.color }

// SetColor changes the color of subsequent shapes.
func (s *Surface) SetColor(c RGBA) { s.opts.color = c }

// Fill reports whether circles and rectangles are drawn filled.
func (s *Surface) Fill() bool { return s.opts.fill }

// SetFill sets whether subsequent circles and rectangles are filled.
func (s *Surface) SetFill(fill bool) { s.opts.fill = fill }

// Click records a pointer press at p.
//
// Every second click completes a shape in the current mode from the last
// two clicks. The new shape is intersected with every stored line and
// circle, the intersection points are drawn as markers and returned, and
// the shape is added to the history. A click that does not complete a
// shape returns nil.
func (s *Surface) Click(p geoviz.Point) []geoviz.Point {
	s.fillCircle(p, 1, s.opts.color)
	s.points = append(s.points, p)
	s.buffer = append(s.buffer, p)

	n := len(s.buffer)
	if n < 2 {
		return nil
	}
	last, prev := s.buffer[n-1], s.buffer[n-2]
	s.buffer = s.buffer[:0]

	switch s.opts.mode {
	case ModeLine:
		return s.AddLine(geoviz.NewLine(last, prev))
	case ModeCircle:
		return s.AddCircle(geoviz.NewCircle(prev, last))
	case ModeRectangle:
		s.AddRectangle(geoviz.NewRectangle(last, prev))
	}
	return nil
}

// AddLine draws l, intersects it with the stored lines and circles and
// stores it. It returns the intersection points.
func (s *Surface) AddLine(l geoviz.Line) []geoviz.Point {
	s.strokeLine(l, s.opts.color)

	ref := ShapeRef{Kind: ShapeLine, Index: len(s.lines)}
	var found []geoviz.Point
	for i, other := range s.lines {
		hit := s.opts.tolerance.IntersectLines(l, other)
		found = s.record(found, hit, ref, ShapeRef{Kind: ShapeLine, Index: i})
	}
	for i, c := range s.circles {
		hit := s.opts.tolerance.IntersectLineCircle(l, c)
		found = s.record(found, hit, ref, ShapeRef{Kind: ShapeCircle, Index: i})
	}

	s.lines = append(s.lines, l)
	s.log.Debug("surface: line added", "a", l.A(), "b", l.B(), "hits", len(found))
	return found
}

// AddCircle draws c, intersects it with the stored circles and lines and
// stores it. It returns the intersection points.
func (s *Surface) AddCircle(c geoviz.Circle) []geoviz.Point {
	if s.opts.fill {
		s.fillCircle(c.Center(), c.Radius(), s.opts.color)
	} else {
		s.strokeCircle(c.Center(), c.Radius(), s.opts.color)
	}

	ref := ShapeRef{Kind: ShapeCircle, Index: len(s.circles)}
	var found []geoviz.Point
	for _, i := range s.index.Candidates(c) {
		hit := s.opts.tolerance.IntersectCircles(c, s.circles[i])
		found = s.record(found, hit, ref, ShapeRef{Kind: ShapeCircle, Index: i})
	}
	for i, l := range s.lines {
		hit := s.opts.tolerance.IntersectLineCircle(l, c)
		found = s.record(found, hit, ref, ShapeRef{Kind: ShapeLine, Index: i})
	}

	if !s.index.Insert(ref.Index, c) {
		s.log.Warn("surface: circle not indexed", "center", c.Center(), "radius", c.Radius())
	}
	s.circles = append(s.circles, c)
	s.log.Debug("surface: circle added", "center", c.Center(), "radius", c.Radius(), "hits", len(found))
	return found
}

// AddRectangle draws r and stores it. Rectangles take no part in
// intersection queries.
func (s *Surface) AddRectangle(r geoviz.Rectangle) {
	if s.opts.fill {
		s.fillRect(r, s.opts.color)
	} else {
		s.strokeRect(r, s.opts.color)
	}
	s.rects = append(s.rects, r)
	s.log.Debug("surface: rectangle added", "p1", r.P1(), "p2", r.P2())
}

// record draws and stores the points of hit and appends them to found.
func (s *Surface) record(found []geoviz.Point, hit geoviz.Intersection, newRef, oldRef ShapeRef) []geoviz.Point {
	for _, p := range hit.Points {
		if !p.IsFinite() {
			continue
		}
		s.fillCircle(p, s.opts.markerRadius, s.opts.markerColor)
		if s.opts.labels {
			s.label(p, s.opts.markerColor)
		}
		s.hits = append(s.hits, Hit{Point: p, New: newRef, Old: oldRef})
		found = append(found, p)
	}
	return found
}

// Load draws each point as a small circle. Loaded points are not part of
// the drawing history.
func (s *Surface) Load(points []geoviz.Point) {
	for _, p := range points {
		s.strokeCircle(p, s.opts.pointRadius, s.opts.color)
	}
	s.log.Info("surface: points loaded", "count", len(points))
}

// Clear empties the history and the click buffer and repaints the
// background.
func (s *Surface) Clear() {
	s.points = s.points[:0]
	s.buffer = s.buffer[:0]
	s.lines = s.lines[:0]
	s.circles = s.circles[:0]
	s.rects = s.rects[:0]
	s.hits = s.hits[:0]
	s.index.Reset()
	s.paintBackground()
	s.log.Info("surface: cleared")
}

// Points returns every click in order.
func (s *Surface) Points() []geoviz.Point { return slices.Clone(s.points) }

// Pending returns the clicks of the incomplete gesture.
func (s *Surface) Pending() []geoviz.Point { return slices.Clone(s.buffer) }

// Lines returns the stored lines in insertion order.
func (s *Surface) Lines() []geoviz.Line { return slices.Clone(s.lines) }

// Circles returns the stored circles in insertion order.
func (s *Surface) Circles() []geoviz.Circle { return slices.Clone(s.circles) }

// Rectangles returns the stored rectangles in insertion order.
func (s *Surface) Rectangles() []geoviz.Rectangle { return slices.Clone(s.rects) }

// Hits returns every intersection found so far.
func (s *Surface) Hits() []Hit { return slices.Clone(s.hits) }
