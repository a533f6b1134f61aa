// Package geoviz provides a planar intersection engine for points, lines,
// circles and rectangles.
//
// # Overview
//
// The shapes are small immutable value types. Lines are infinite and are
// defined by two points; circles by a center and a point on the boundary;
// rectangles by two opposite corners.
//
//	l := geoviz.NewLine(geoviz.Pt(0, 0), geoviz.Pt(2, 2))
//	c := geoviz.NewCircle(geoviz.Pt(0, 0), geoviz.Pt(5, 0))
//
//	hit := geoviz.IntersectLineCircle(l, c)
//	switch hit.Kind {
//	case geoviz.KindTwo:
//	    // hit.Points[0], hit.Points[1]
//	case geoviz.KindOne:
//	    // tangent at hit.Points[0]
//	}
//
// # Degenerate Input
//
// Every intersection function returns a tagged [Intersection] instead of
// NaN-filled points: parallel lines are [KindNone], identical lines and
// identical circles are [KindCoincident], and lines through two equal
// points are [KindDegenerate]. [LineIntersectionPoint] keeps the raw
// slope/intercept formula for callers that want it.
//
// # Tolerance
//
// Comparisons of derived quantities go through a [Tolerance].
// [DefaultTolerance] is used by the package-level functions; [Exact]
// reproduces strict floating-point equality.
//
// # Coordinate System
//
// Plain Cartesian coordinates. The surface package renders them with the
// origin at the top-left and y increasing down, as the pointer reports them.
//
// # Sub-packages
//
//   - surface: drawing surface that intersects each new shape with the
//     stored ones and renders the result
//   - loader: "x,y per line" point file loader
//   - config: YAML configuration for the surface and the CLI
package geoviz

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
