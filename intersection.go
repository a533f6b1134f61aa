package geoviz

// Kind classifies the outcome of an intersection query.
type Kind int

const (
	// KindNone means the shapes do not meet.
	KindNone Kind = iota

	// KindOne means the shapes meet in exactly one point (crossing lines,
	// tangency).
	KindOne

	// KindTwo means the shapes meet in exactly two points.
	KindTwo

	// KindCoincident means the shapes are the same and meet in infinitely
	// many points. No points are reported.
	KindCoincident

	// KindDegenerate means an input does not define a shape: a line through
	// two equal points, or a non-finite coordinate. No points are reported.
	KindDegenerate
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindOne:
		return "one"
	case KindTwo:
		return "two"
	case KindCoincident:
		return "coincident"
	case KindDegenerate:
		return "degenerate"
	default:
		return "unknown"
	}
}

// Intersection is the tagged result of an intersection query.
// Points holds exactly one point for KindOne, two for KindTwo and is nil
// otherwise.
type Intersection struct {
	Kind   Kind
	Points []Point
}

// Len returns the number of reported points.
func (i Intersection) Len() int {
	return len(i.Points)
}

func noIntersection() Intersection {
	return Intersection{Kind: KindNone}
}

func onePoint(p Point) Intersection {
	return Intersection{Kind: KindOne, Points: []Point{p}}
}

func twoPoints(p, q Point) Intersection {
	return Intersection{Kind: KindTwo, Points: []Point{p, q}}
}

func coincident() Intersection {
	return Intersection{Kind: KindCoincident}
}

func degenerate() Intersection {
	return Intersection{Kind: KindDegenerate}
}
