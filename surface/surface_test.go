// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bytes"
	"image/color"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/gogpu/geoviz"
)

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black = color.RGBA{A: 255}
	red   = color.RGBA{R: 255, A: 255}
)

func newTestSurface(t *testing.T, opts ...Option) *Surface {
	t.Helper()
	s, err := New(640, 480, opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func pixel(s *Surface, x, y int) color.RGBA {
	return s.Image().RGBAAt(x, y)
}

func sortPoints(pts []geoviz.Point) []geoviz.Point {
	out := slices.Clone(pts)
	slices.SortFunc(out, func(a, b geoviz.Point) int {
		if a.X != b.X {
			if a.X < b.X {
				return -1
			}
			return 1
		}
		if a.Y < b.Y {
			return -1
		}
		if a.Y > b.Y {
			return 1
		}
		return 0
	})
	return out
}

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantErr       bool
	}{
		{"valid", 100, 50, false},
		{"zero width", 0, 50, true},
		{"zero height", 100, 0, true},
		{"negative", -1, -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.width, tt.height)
			if (err != nil) != tt.wantErr {
				t.Fatalf("New(%d, %d) error = %v, wantErr %v", tt.width, tt.height, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if s.Width() != tt.width || s.Height() != tt.height {
				t.Errorf("size = %dx%d, want %dx%d", s.Width(), s.Height(), tt.width, tt.height)
			}
			if got := pixel(s, 0, 0); got != white {
				t.Errorf("background = %v, want white", got)
			}
		})
	}
}

func TestNewDefaults(t *testing.T) {
	s := newTestSurface(t)
	if s.Mode() != ModeLine {
		t.Errorf("Mode() = %v, want line", s.Mode())
	}
	if s.Color() != Black {
		t.Errorf("Color() = %v, want black", s.Color())
	}
	if s.Fill() {
		t.Error("Fill() = true, want false")
	}
}

func TestNewBackground(t *testing.T) {
	s := newTestSurface(t, WithBackground(Blue))
	if got, want := pixel(s, 10, 10), (color.RGBA{B: 255, A: 255}); got != want {
		t.Errorf("background = %v, want %v", got, want)
	}
}

func TestClickBuffersFirstPoint(t *testing.T) {
	s := newTestSurface(t)

	if hits := s.Click(geoviz.Pt(10, 10)); hits != nil {
		t.Errorf("first click returned %v, want nil", hits)
	}
	if got := len(s.Pending()); got != 1 {
		t.Errorf("len(Pending()) = %d, want 1", got)
	}
	if got := len(s.Lines()); got != 0 {
		t.Errorf("len(Lines()) = %d, want 0", got)
	}

	s.Click(geoviz.Pt(20, 20))
	if got := len(s.Pending()); got != 0 {
		t.Errorf("len(Pending()) = %d after second click, want 0", got)
	}
	if got := len(s.Lines()); got != 1 {
		t.Errorf("len(Lines()) = %d, want 1", got)
	}
	if got := len(s.Points()); got != 2 {
		t.Errorf("len(Points()) = %d, want 2", got)
	}
}

func TestClickLines(t *testing.T) {
	s := newTestSurface(t)

	s.Click(geoviz.Pt(0, 0))
	s.Click(geoviz.Pt(10, 10))
	s.Click(geoviz.Pt(0, 10))
	hits := s.Click(geoviz.Pt(10, 0))

	if len(hits) != 1 || !hits[0].Approx(geoviz.Pt(5, 5), 1e-9) {
		t.Fatalf("hits = %v, want [(5, 5)]", hits)
	}

	recorded := s.Hits()
	if len(recorded) != 1 {
		t.Fatalf("len(Hits()) = %d, want 1", len(recorded))
	}
	want := Hit{
		Point: hits[0],
		New:   ShapeRef{Kind: ShapeLine, Index: 1},
		Old:   ShapeRef{Kind: ShapeLine, Index: 0},
	}
	if recorded[0] != want {
		t.Errorf("Hits()[0] = %+v, want %+v", recorded[0], want)
	}
}

func TestClickParallelLines(t *testing.T) {
	s := newTestSurface(t)

	s.Click(geoviz.Pt(0, 10))
	s.Click(geoviz.Pt(100, 10))
	s.Click(geoviz.Pt(0, 20))
	if hits := s.Click(geoviz.Pt(100, 20)); len(hits) != 0 {
		t.Errorf("parallel lines hits = %v, want none", hits)
	}
	if got := len(s.Hits()); got != 0 {
		t.Errorf("len(Hits()) = %d, want 0", got)
	}
}

func TestClickCircleThenLine(t *testing.T) {
	s := newTestSurface(t, WithMode(ModeCircle))

	s.Click(geoviz.Pt(100, 100))
	s.Click(geoviz.Pt(150, 100))

	circles := s.Circles()
	if len(circles) != 1 {
		t.Fatalf("len(Circles()) = %d, want 1", len(circles))
	}
	if circles[0].Center() != geoviz.Pt(100, 100) || circles[0].Radius() != 50 {
		t.Errorf("circle = %v r=%v, want (100, 100) r=50", circles[0].Center(), circles[0].Radius())
	}

	s.SetMode(ModeLine)
	s.Click(geoviz.Pt(0, 100))
	hits := sortPoints(s.Click(geoviz.Pt(10, 100)))

	want := []geoviz.Point{geoviz.Pt(50, 100), geoviz.Pt(150, 100)}
	if len(hits) != len(want) {
		t.Fatalf("hits = %v, want %v", hits, want)
	}
	for i := range want {
		if !hits[i].Approx(want[i], 1e-9) {
			t.Errorf("hits[%d] = %v, want %v", i, hits[i], want[i])
		}
	}

	for _, h := range s.Hits() {
		if h.New != (ShapeRef{Kind: ShapeLine, Index: 0}) || h.Old != (ShapeRef{Kind: ShapeCircle, Index: 0}) {
			t.Errorf("hit refs = %+v, want line 0 against circle 0", h)
		}
	}

	if got := pixel(s, 50, 100); got != red {
		t.Errorf("marker pixel = %v, want red", got)
	}
	if got := pixel(s, 300, 100); got != black {
		t.Errorf("line pixel = %v, want black", got)
	}
}

func TestClickTangentCircles(t *testing.T) {
	s := newTestSurface(t, WithMode(ModeCircle))

	s.Click(geoviz.Pt(100, 100))
	s.Click(geoviz.Pt(150, 100))
	s.Click(geoviz.Pt(200, 100))
	hits := s.Click(geoviz.Pt(250, 100))

	if len(hits) != 1 || !hits[0].Approx(geoviz.Pt(150, 100), 1e-9) {
		t.Fatalf("hits = %v, want [(150, 100)]", hits)
	}
	h := s.Hits()[0]
	if h.New != (ShapeRef{Kind: ShapeCircle, Index: 1}) || h.Old != (ShapeRef{Kind: ShapeCircle, Index: 0}) {
		t.Errorf("hit refs = %+v, want circle 1 against circle 0", h)
	}
}

func TestClickCirclesWideTolerance(t *testing.T) {
	tol := geoviz.Tolerance{Abs: 0.5}
	s := newTestSurface(t, WithMode(ModeCircle), WithTolerance(tol))

	s.Click(geoviz.Pt(50, 50))
	s.Click(geoviz.Pt(60, 50))
	s.Click(geoviz.Pt(70.3, 50))
	hits := s.Click(geoviz.Pt(80.3, 50))

	want := tol.IntersectCircles(s.Circles()[1], s.Circles()[0])
	if want.Kind != geoviz.KindOne {
		t.Fatalf("IntersectCircles() kind = %v, want one", want.Kind)
	}
	if len(hits) != 1 || !hits[0].Approx(want.Points[0], 1e-9) {
		t.Fatalf("hits = %v, want %v", hits, want.Points)
	}
	if !hits[0].Approx(geoviz.Pt(60.15, 50), 1e-6) {
		t.Errorf("hit = %v, want (60.15, 50)", hits[0])
	}
}

func TestClickDistantCircles(t *testing.T) {
	s := newTestSurface(t, WithMode(ModeCircle))

	s.Click(geoviz.Pt(50, 50))
	s.Click(geoviz.Pt(60, 50))
	s.Click(geoviz.Pt(400, 400))
	if hits := s.Click(geoviz.Pt(410, 400)); len(hits) != 0 {
		t.Errorf("hits = %v, want none", hits)
	}
}

func TestClickLineThenCircle(t *testing.T) {
	s := newTestSurface(t)

	s.Click(geoviz.Pt(0, 100))
	s.Click(geoviz.Pt(10, 100))

	s.SetMode(ModeCircle)
	s.Click(geoviz.Pt(100, 100))
	hits := sortPoints(s.Click(geoviz.Pt(100, 150)))

	want := []geoviz.Point{geoviz.Pt(50, 100), geoviz.Pt(150, 100)}
	if len(hits) != len(want) {
		t.Fatalf("hits = %v, want %v", hits, want)
	}
	for i := range want {
		if !hits[i].Approx(want[i], 1e-9) {
			t.Errorf("hits[%d] = %v, want %v", i, hits[i], want[i])
		}
	}
}

func TestClickRectangle(t *testing.T) {
	s := newTestSurface(t, WithMode(ModeRectangle))

	s.Click(geoviz.Pt(100, 100))
	if hits := s.Click(geoviz.Pt(200, 150)); hits != nil {
		t.Errorf("rectangle hits = %v, want nil", hits)
	}

	rects := s.Rectangles()
	if len(rects) != 1 {
		t.Fatalf("len(Rectangles()) = %d, want 1", len(rects))
	}
	if got := rects[0].Position(); !got.Approx(geoviz.Pt(150, 125), 1e-9) {
		t.Errorf("Position() = %v, want (150, 125)", got)
	}
	if len(s.Lines()) != 0 || len(s.Circles()) != 0 {
		t.Error("rectangle must not add lines or circles")
	}

	if got := pixel(s, 100, 120); got != black {
		t.Errorf("outline pixel = %v, want black", got)
	}
	if got := pixel(s, 150, 125); got != white {
		t.Errorf("interior pixel = %v, want white", got)
	}
}

func TestFill(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		a, b  geoviz.Point
		probe [2]int
	}{
		{"circle", ModeCircle, geoviz.Pt(100, 100), geoviz.Pt(150, 100), [2]int{110, 100}},
		{"rectangle", ModeRectangle, geoviz.Pt(100, 100), geoviz.Pt(200, 150), [2]int{150, 125}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hollow := newTestSurface(t, WithMode(tt.mode))
			hollow.Click(tt.a)
			hollow.Click(tt.b)
			if got := pixel(hollow, tt.probe[0], tt.probe[1]); got != white {
				t.Errorf("hollow interior = %v, want white", got)
			}

			filled := newTestSurface(t, WithMode(tt.mode), WithFill(true))
			filled.Click(tt.a)
			filled.Click(tt.b)
			if got := pixel(filled, tt.probe[0], tt.probe[1]); got != black {
				t.Errorf("filled interior = %v, want black", got)
			}
		})
	}
}

func TestSetColor(t *testing.T) {
	s := newTestSurface(t)
	s.SetColor(Green)
	s.Click(geoviz.Pt(0, 100))
	s.Click(geoviz.Pt(10, 100))

	if got, want := pixel(s, 300, 100), (color.RGBA{G: 255, A: 255}); got != want {
		t.Errorf("line pixel = %v, want %v", got, want)
	}
}

func TestSetModeKeepsPendingClick(t *testing.T) {
	s := newTestSurface(t)

	s.Click(geoviz.Pt(0, 0))
	s.SetMode(ModeCircle)
	s.Click(geoviz.Pt(3, 4))

	if got := len(s.Lines()); got != 0 {
		t.Errorf("len(Lines()) = %d, want 0", got)
	}
	circles := s.Circles()
	if len(circles) != 1 {
		t.Fatalf("len(Circles()) = %d, want 1", len(circles))
	}
	if circles[0].Radius() != 5 {
		t.Errorf("Radius() = %v, want 5", circles[0].Radius())
	}
}

func TestOffCanvasLine(t *testing.T) {
	s := newTestSurface(t)
	before := s.Snapshot()

	s.Click(geoviz.Pt(0, -1000))
	s.Click(geoviz.Pt(10, -1000))

	if !bytes.Equal(before.Pix, s.Image().Pix) {
		t.Error("line outside the surface changed pixels")
	}
	if got := len(s.Lines()); got != 1 {
		t.Errorf("len(Lines()) = %d, want 1", got)
	}
}

func TestDegenerateLine(t *testing.T) {
	s := newTestSurface(t, WithMode(ModeCircle))
	s.Click(geoviz.Pt(100, 100))
	s.Click(geoviz.Pt(150, 100))

	s.SetMode(ModeLine)
	s.Click(geoviz.Pt(100, 100))
	if hits := s.Click(geoviz.Pt(100, 100)); len(hits) != 0 {
		t.Errorf("degenerate line hits = %v, want none", hits)
	}
	if got := len(s.Lines()); got != 1 {
		t.Errorf("len(Lines()) = %d, want 1", got)
	}
}

func TestLoad(t *testing.T) {
	s := newTestSurface(t)
	s.Load([]geoviz.Point{geoviz.Pt(200, 200), geoviz.Pt(400, 300)})

	if got := pixel(s, 205, 200); got != black {
		t.Errorf("ring pixel = %v, want black", got)
	}
	if got := pixel(s, 200, 200); got != white {
		t.Errorf("ring center = %v, want white", got)
	}
	if got := len(s.Points()); got != 0 {
		t.Errorf("len(Points()) = %d, want 0", got)
	}
}

func TestClear(t *testing.T) {
	s := newTestSurface(t)
	s.Click(geoviz.Pt(0, 0))
	s.Click(geoviz.Pt(10, 10))
	s.Click(geoviz.Pt(0, 10))
	s.Click(geoviz.Pt(10, 0))
	s.Click(geoviz.Pt(5, 5))

	s.Clear()

	if len(s.Points()) != 0 || len(s.Pending()) != 0 || len(s.Lines()) != 0 || len(s.Hits()) != 0 {
		t.Error("Clear() left history behind")
	}
	if got := pixel(s, 5, 5); got != white {
		t.Errorf("pixel after Clear() = %v, want white", got)
	}

	// The index is reset along with the history.
	s.SetMode(ModeCircle)
	s.Click(geoviz.Pt(100, 100))
	s.Click(geoviz.Pt(150, 100))
	if got := len(s.Circles()); got != 1 {
		t.Errorf("len(Circles()) = %d, want 1", got)
	}
}

func TestLabels(t *testing.T) {
	draw := func(labels bool) []byte {
		s := newTestSurface(t, WithLabels(labels))
		s.Click(geoviz.Pt(0, 200))
		s.Click(geoviz.Pt(10, 200))
		s.Click(geoviz.Pt(300, 0))
		s.Click(geoviz.Pt(300, 10))
		return s.Image().Pix
	}

	if bytes.Equal(draw(false), draw(true)) {
		t.Error("labels did not change the image")
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	s := newTestSurface(t)
	snap := s.Snapshot()
	s.Click(geoviz.Pt(0, 100))
	s.Click(geoviz.Pt(10, 100))

	if got := snap.RGBAAt(300, 100); got != white {
		t.Errorf("snapshot pixel = %v, want white", got)
	}
}

func TestWritePNG(t *testing.T) {
	s := newTestSurface(t)
	s.Click(geoviz.Pt(0, 100))
	s.Click(geoviz.Pt(10, 100))

	var buf bytes.Buffer
	if err := s.WritePNG(&buf); err != nil {
		t.Fatalf("WritePNG() error = %v", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode() error = %v", err)
	}
	if img.Bounds() != s.Image().Bounds() {
		t.Errorf("decoded bounds = %v, want %v", img.Bounds(), s.Image().Bounds())
	}
}

func TestSavePNG(t *testing.T) {
	s := newTestSurface(t)
	path := filepath.Join(t.TempDir(), "out.png")

	if err := s.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat() error = %v", err)
	}
	if info.Size() == 0 {
		t.Error("saved file is empty")
	}

	if err := s.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG() into a missing directory succeeded")
	}
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := newTestSurface(t, WithLogger(logger))
	s.Click(geoviz.Pt(0, 0))
	s.Click(geoviz.Pt(10, 10))

	if !strings.Contains(buf.String(), "surface: line added") {
		t.Errorf("log output = %q, want line added entry", buf.String())
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"line", ModeLine, false},
		{"L", ModeLine, false},
		{"rectangle", ModeRectangle, false},
		{"rect", ModeRectangle, false},
		{" circle ", ModeCircle, false},
		{"c", ModeCircle, false},
		{"triangle", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	for _, m := range []Mode{ModeLine, ModeRectangle, ModeCircle} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if got := Mode(9).String(); got != "Mode(9)" {
		t.Errorf("Mode(9).String() = %q", got)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{"#ff0000", color.NRGBA{R: 255, A: 255}, false},
		{"00ff00", color.NRGBA{G: 255, A: 255}, false},
		{"#00f", color.NRGBA{B: 255, A: 255}, false},
		{"#ffffff80", color.NRGBA{R: 255, G: 255, B: 255, A: 128}, false},
		{"#0008", color.NRGBA{A: 136}, false},
		{"#ff000", color.NRGBA{}, true},
		{"#gg0000", color.NRGBA{}, true},
		{"", color.NRGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			c, err := ParseHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if got := c.Color(); got != tt.want {
				t.Errorf("ParseHex(%q).Color() = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGB8(t *testing.T) {
	got := RGB8(12, 34, 56).Color()
	want := color.NRGBA{R: 12, G: 34, B: 56, A: 255}
	if got != want {
		t.Errorf("RGB8(12, 34, 56).Color() = %v, want %v", got, want)
	}
}

func TestShapeKindString(t *testing.T) {
	if ShapeLine.String() != "line" || ShapeCircle.String() != "circle" {
		t.Errorf("ShapeKind names = %q, %q", ShapeLine.String(), ShapeCircle.String())
	}
}
