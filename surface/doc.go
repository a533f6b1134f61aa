// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface implements the drawing surface of geoviz.
//
// A Surface turns pairs of clicks into lines, circles and rectangles,
// intersects every new shape with the shapes already drawn and renders the
// shapes and the intersection markers into an *image.RGBA.
//
// # Gestures
//
// The surface buffers clicks. Every second click completes a shape in the
// current Mode:
//
//   - ModeLine: the infinite line through both clicks
//   - ModeCircle: the circle centered on the first click through the second
//   - ModeRectangle: the rectangle with both clicks as opposite corners
//
// New lines are intersected with every stored line and circle. New circles
// are intersected with every stored line and with the stored circles whose
// bounding boxes overlap theirs. Rectangles are drawn and stored only.
//
// # Usage
//
//	s, err := surface.New(1080, 670, surface.WithMode(surface.ModeCircle))
//	if err != nil {
//	    return err
//	}
//	s.Click(geoviz.Pt(100, 100))
//	s.Click(geoviz.Pt(150, 100))
//	s.SetMode(surface.ModeLine)
//	s.Click(geoviz.Pt(0, 100))
//	hits := s.Click(geoviz.Pt(10, 100)) // (50, 100) and (150, 100)
//	_ = s.SavePNG("out.png")
//
// # Rendering
//
// Shapes are rasterized with golang.org/x/image/vector and composited over
// the image with anti-aliasing. Coordinates are pixels with the origin at
// the top-left corner and y pointing down.
//
// A Surface belongs to a single owner and is not safe for concurrent use.
package surface
