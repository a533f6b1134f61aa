// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package spatial

import (
	"math"
	"testing"

	"github.com/gogpu/geoviz"
)

func circle(x, y, r float64) geoviz.Circle {
	return geoviz.NewCircle(geoviz.Pt(x, y), geoviz.Pt(x+r, y))
}

func TestCircleIndex_Candidates(t *testing.T) {
	x := NewCircleIndex(geoviz.DefaultTolerance)
	x.Insert(0, circle(0, 0, 5))
	x.Insert(1, circle(100, 100, 5))
	x.Insert(2, circle(8, 0, 5))
	x.Insert(3, circle(-50, 0, 1))

	got := x.Candidates(circle(4, 0, 2))
	want := []int{0, 2}
	if len(got) != len(want) {
		t.Fatalf("Candidates() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Candidates()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
	if x.Len() != 4 {
		t.Errorf("Len() = %d, want 4", x.Len())
	}
}

func TestCircleIndex_TouchingBoxes(t *testing.T) {
	// Externally tangent on the x-axis: the boxes share an edge.
	x := NewCircleIndex(geoviz.DefaultTolerance)
	x.Insert(7, circle(0, 0, 5))

	got := x.Candidates(circle(10, 0, 5))
	if len(got) != 1 || got[0] != 7 {
		t.Errorf("Candidates() = %v, want [7]", got)
	}
}

func TestCircleIndex_WideTolerance(t *testing.T) {
	tests := []struct {
		name string
		tol  geoviz.Tolerance
	}{
		{"absolute", geoviz.Tolerance{Abs: 0.5}},
		{"relative", geoviz.Tolerance{Rel: 0.02}},
	}

	// The circles miss by 0.3, which both policies accept as tangency.
	a := circle(50, 50, 10)
	b := circle(70.3, 50, 10)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tol.IntersectCircles(b, a); got.Kind != geoviz.KindOne {
				t.Fatalf("IntersectCircles() kind = %v, want one", got.Kind)
			}

			x := NewCircleIndex(tt.tol)
			x.Insert(0, a)
			if got := x.Candidates(b); len(got) != 1 || got[0] != 0 {
				t.Errorf("Candidates() = %v, want [0]", got)
			}
		})
	}

	x := NewCircleIndex(geoviz.DefaultTolerance)
	x.Insert(0, a)
	if got := x.Candidates(b); len(got) != 0 {
		t.Errorf("Candidates() with default tolerance = %v, want none", got)
	}
}

func TestCircleIndex_ZeroRadius(t *testing.T) {
	x := NewCircleIndex(geoviz.DefaultTolerance)
	if !x.Insert(0, circle(3, 3, 0)) {
		t.Fatal("Insert() rejected zero-radius circle")
	}
	if got := x.Candidates(circle(3, 3, 1)); len(got) != 1 {
		t.Errorf("Candidates() = %v, want [0]", got)
	}
}

func TestCircleIndex_Degenerate(t *testing.T) {
	x := NewCircleIndex(geoviz.DefaultTolerance)
	if x.Insert(0, circle(math.NaN(), 0, 1)) {
		t.Error("Insert() accepted NaN circle")
	}
	if x.Len() != 0 {
		t.Errorf("Len() = %d, want 0", x.Len())
	}
	x.Insert(1, circle(0, 0, 1))
	if got := x.Candidates(circle(math.Inf(1), 0, 1)); got != nil {
		t.Errorf("Candidates(Inf) = %v, want nil", got)
	}
}

func TestCircleIndex_Reset(t *testing.T) {
	x := NewCircleIndex(geoviz.DefaultTolerance)
	x.Insert(0, circle(0, 0, 1))
	x.Reset()
	if x.Len() != 0 {
		t.Errorf("Len() = %d after Reset, want 0", x.Len())
	}
	if got := x.Candidates(circle(0, 0, 1)); len(got) != 0 {
		t.Errorf("Candidates() = %v after Reset, want none", got)
	}
}
