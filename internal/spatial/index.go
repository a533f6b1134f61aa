// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package spatial provides the broad phase for circle intersection queries:
// an R-tree over the bounding boxes of stored circles.
package spatial

import (
	"math"
	"sort"

	"github.com/dhconnelly/rtreego"

	"github.com/gogpu/geoviz"
)

// Tree fan-out. The drawing history is small; these are rtreego's usual
// values.
const (
	minChildren = 25
	maxChildren = 50
)

// padding inflates the box of a circle of radius r centered at c so that
// two boxes overlap whenever tol can call the circles tangent. The tree
// treats shared edges as disjoint, so a small floor is always added.
//
// The engine accepts |d - (r1+r2)| <= Abs or <= Rel*max(d, r1+r2), and
// max(d, r1+r2) <= r1+r2+|c1|+|c2|, so splitting that bound between the
// two boxes covers every accepted pair.
func padding(tol geoviz.Tolerance, c geoviz.Point, r float64) float64 {
	scale := r + math.Abs(c.X) + math.Abs(c.Y)
	return 1e-6*(1+scale) + tol.Abs + tol.Rel*scale
}

type entry struct {
	id     int
	bounds rtreego.Rect
}

func (e *entry) Bounds() rtreego.Rect {
	return e.bounds
}

// CircleIndex maps circles to caller-chosen ids for bounding-box search.
// It is not safe for concurrent use.
type CircleIndex struct {
	tol  geoviz.Tolerance
	tree *rtreego.Rtree
	size int
}

// NewCircleIndex creates an empty index whose candidates include every
// pair tol.IntersectCircles may report as touching.
func NewCircleIndex(tol geoviz.Tolerance) *CircleIndex {
	return &CircleIndex{tol: tol, tree: rtreego.NewTree(2, minChildren, maxChildren)}
}

// Insert adds c under id. It returns false for circles that cannot be
// boxed (non-finite center or radius); they can never intersect anything.
func (x *CircleIndex) Insert(id int, c geoviz.Circle) bool {
	bb, ok := x.bounds(c)
	if !ok {
		return false
	}
	x.tree.Insert(&entry{id: id, bounds: bb})
	x.size++
	return true
}

// Candidates returns, in ascending order, the ids of stored circles whose
// bounding boxes overlap the box of c.
func (x *CircleIndex) Candidates(c geoviz.Circle) []int {
	bb, ok := x.bounds(c)
	if !ok || x.size == 0 {
		return nil
	}

	found := x.tree.SearchIntersect(bb)
	ids := make([]int, 0, len(found))
	for _, s := range found {
		ids = append(ids, s.(*entry).id)
	}
	sort.Ints(ids)
	return ids
}

// Len returns the number of indexed circles.
func (x *CircleIndex) Len() int {
	return x.size
}

// Reset removes every circle.
func (x *CircleIndex) Reset() {
	x.tree = rtreego.NewTree(2, minChildren, maxChildren)
	x.size = 0
}

func (x *CircleIndex) bounds(c geoviz.Circle) (rtreego.Rect, bool) {
	if c.IsDegenerate() {
		return rtreego.Rect{}, false
	}

	lo, hi := c.Bounds()
	m := padding(x.tol, c.Center(), c.Radius())
	side := hi.X - lo.X + 2*m

	bb, err := rtreego.NewRect(rtreego.Point{lo.X - m, lo.Y - m}, []float64{side, side})
	if err != nil {
		geoviz.Logger().Warn("spatial: circle not indexed", "circle", c, "err", err)
		return rtreego.Rect{}, false
	}
	return bb, true
}
