package geoviz

// Rectangle is an axis-aligned rectangle given by two opposite corners.
//
// Width and height are signed: Width = P1.X - P2.X and Height = P1.Y - P2.Y.
// Area and Perimeter inherit that sign. Callers that need a canonical size
// take absolute values.
type Rectangle struct {
	p1, p2    Point
	diagonal  Line
	position  Point
	width     float64
	height    float64
	area      float64
	perimeter float64
}

// NewRectangle creates the rectangle spanned by the opposite corners p1 and p2.
//
// The position is the intersection of the two diagonals. If the diagonals
// have no unique intersection (zero width or height), the position is
// (NaN, NaN).
func NewRectangle(p1, p2 Point) Rectangle {
	diagonal := NewLine(p1, p2)
	other := NewLine(Pt(p1.X, p2.Y), Pt(p2.X, p1.Y))

	position := nan
	if hit := IntersectLines(other, diagonal); hit.Kind == KindOne {
		position = hit.Points[0]
	}

	width := p1.X - p2.X
	height := p1.Y - p2.Y
	return Rectangle{
		p1:        p1,
		p2:        p2,
		diagonal:  diagonal,
		position:  position,
		width:     width,
		height:    height,
		area:      width * height,
		perimeter: 2 * (width + height),
	}
}

// P1 returns the first corner.
func (r Rectangle) P1() Point { return r.p1 }

// P2 returns the second corner.
func (r Rectangle) P2() Point { return r.p2 }

// Diagonal returns the line through P1 and P2.
func (r Rectangle) Diagonal() Line { return r.diagonal }

// Position returns the center of the rectangle.
func (r Rectangle) Position() Point { return r.position }

// Width returns P1.X - P2.X.
func (r Rectangle) Width() float64 { return r.width }

// Height returns P1.Y - P2.Y.
func (r Rectangle) Height() float64 { return r.height }

// Area returns Width * Height.
func (r Rectangle) Area() float64 { return r.area }

// Perimeter returns 2 * (Width + Height).
func (r Rectangle) Perimeter() float64 { return r.perimeter }
