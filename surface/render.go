// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/geoviz"
)

// maxCoord bounds the coordinates the rasterizer is asked to cover.
// Shapes reaching beyond it are not drawn.
const maxCoord = 1 << 20

// Snapshot returns a copy of the current surface contents.
func (s *Surface) Snapshot() *image.RGBA {
	result := image.NewRGBA(s.img.Bounds())
	copy(result.Pix, s.img.Pix)
	return result
}

// Image returns the underlying image.RGBA.
// This is a direct reference, not a copy.
func (s *Surface) Image() *image.RGBA {
	return s.img
}

// WritePNG encodes the surface contents as PNG to w.
func (s *Surface) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("surface: encode png: %w", err)
	}
	return nil
}

// SavePNG writes the surface contents to a PNG file.
func (s *Surface) SavePNG(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("surface: create %s: %w", path, err)
	}
	if err := s.WritePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("surface: close %s: %w", path, err)
	}
	s.log.Info("surface: saved", "path", path)
	return nil
}

// paintBackground fills the entire surface with the background color.
func (s *Surface) paintBackground() {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(s.opts.background.Color()), image.Point{}, draw.Src)
}

// fill composites the area covered by p over the image.
func (s *Surface) fill(p *path, c RGBA) {
	if p.IsEmpty() {
		return
	}
	minX, minY, maxX, maxY := p.Bounds()
	w, h := float64(s.Width()), float64(s.Height())
	if maxX < 0 || maxY < 0 || minX > w || minY > h {
		return
	}
	if minX < -maxCoord || minY < -maxCoord || maxX > maxCoord || maxY > maxCoord {
		s.log.Debug("surface: shape out of drawable range", "min", geoviz.Pt(minX, minY), "max", geoviz.Pt(maxX, maxY))
		return
	}

	s.raster.Reset(s.Width(), s.Height())
	s.raster.DrawOp = draw.Over
	p.rasterize(s.raster)
	s.raster.Draw(s.img, s.img.Bounds(), image.NewUniform(c.Color()), image.Point{})
}

// fillCircle draws a solid disc.
func (s *Surface) fillCircle(center geoviz.Point, r float64, c RGBA) {
	if !center.IsFinite() || !(r > 0) || math.IsInf(r, 0) {
		return
	}
	p := newPath()
	p.Circle(center.X, center.Y, r)
	s.fill(p, c)
}

// strokeCircle draws a ring of the current line width.
func (s *Surface) strokeCircle(center geoviz.Point, r float64, c RGBA) {
	if !center.IsFinite() || !(r >= 0) || math.IsInf(r, 0) {
		return
	}
	half := s.opts.lineWidth / 2
	p := newPath()
	p.Circle(center.X, center.Y, r+half)
	if inner := r - half; inner > 0 {
		p.ReverseCircle(center.X, center.Y, inner)
	}
	s.fill(p, c)
}

// strokeLine draws the part of the infinite line l that crosses the surface.
func (s *Surface) strokeLine(l geoviz.Line, c RGBA) {
	if l.IsDegenerate() {
		return
	}
	a := l.A()
	d := l.B().Sub(a)
	n := d.Length()
	if !(n > 0) {
		return
	}
	d = d.Mul(1 / n)

	half := s.opts.lineWidth / 2
	lo := geoviz.Pt(-s.opts.lineWidth, -s.opts.lineWidth)
	hi := geoviz.Pt(float64(s.Width())+s.opts.lineWidth, float64(s.Height())+s.opts.lineWidth)
	t0, t1, ok := clip(a, d, lo, hi)
	if !ok {
		return
	}

	p0 := a.Add(d.Mul(t0))
	p1 := a.Add(d.Mul(t1))
	off := geoviz.Pt(-d.Y*half, d.X*half)

	p := newPath()
	q0, q1 := p0.Add(off), p1.Add(off)
	q2, q3 := p1.Sub(off), p0.Sub(off)
	p.Quad(q0.X, q0.Y, q1.X, q1.Y, q2.X, q2.Y, q3.X, q3.Y)
	s.fill(p, c)
}

// clip returns the parameter range over which origin + t*dir lies inside
// the box [lo, hi].
func clip(origin, dir, lo, hi geoviz.Point) (t0, t1 float64, ok bool) {
	t0, t1 = math.Inf(-1), math.Inf(1)
	axes := [2][4]float64{
		{origin.X, dir.X, lo.X, hi.X},
		{origin.Y, dir.Y, lo.Y, hi.Y},
	}
	for _, ax := range axes {
		o, d, l, h := ax[0], ax[1], ax[2], ax[3]
		if d == 0 {
			if o < l || o > h {
				return 0, 0, false
			}
			continue
		}
		a, b := (l-o)/d, (h-o)/d
		if a > b {
			a, b = b, a
		}
		t0 = max(t0, a)
		t1 = min(t1, b)
	}
	return t0, t1, t0 <= t1
}

// rectExtents returns the top-left corner and the absolute size of r.
func rectExtents(r geoviz.Rectangle) (x, y, w, h float64) {
	p1, p2 := r.P1(), r.P2()
	return min(p1.X, p2.X), min(p1.Y, p2.Y), math.Abs(r.Width()), math.Abs(r.Height())
}

// fillRect draws a solid rectangle.
func (s *Surface) fillRect(r geoviz.Rectangle, c RGBA) {
	x, y, w, h := rectExtents(r)
	if !geoviz.Pt(x, y).IsFinite() || !geoviz.Pt(w, h).IsFinite() {
		return
	}
	p := newPath()
	p.Rectangle(x, y, w, h)
	s.fill(p, c)
}

// strokeRect draws the outline of a rectangle in the current line width.
func (s *Surface) strokeRect(r geoviz.Rectangle, c RGBA) {
	x, y, w, h := rectExtents(r)
	if !geoviz.Pt(x, y).IsFinite() || !geoviz.Pt(w, h).IsFinite() {
		return
	}
	half := s.opts.lineWidth / 2
	p := newPath()
	p.Rectangle(x-half, y-half, w+2*half, h+2*half)
	if iw, ih := w-2*half, h-2*half; iw > 0 && ih > 0 {
		p.ReverseRectangle(x+half, y+half, iw, ih)
	}
	s.fill(p, c)
}

// label writes the coordinates of p next to its marker.
func (s *Surface) label(p geoviz.Point, c RGBA) {
	if p.X < -maxCoord || p.Y < -maxCoord || p.X > maxCoord || p.Y > maxCoord {
		return
	}
	off := s.opts.markerRadius + 2
	d := font.Drawer{
		Dst:  s.img,
		Src:  image.NewUniform(c.Color()),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(p.X+off), int(p.Y-off)),
	}
	d.DrawString(fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y))
}
