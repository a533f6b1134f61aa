// Package loader reads point files: one "x,y" pair of decimal numbers per
// line.
//
// A load either returns every point of the file or fails; there is no
// partial result. Blank lines are skipped. Files may be UTF-8 or, when they
// start with a byte order mark, UTF-16.
package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/gogpu/geoviz"
)

// Sentinel errors for classifying a ParseError.
var (
	// ErrMalformedLine is returned for a line that is not two
	// comma-separated fields.
	ErrMalformedLine = errors.New("loader: malformed line")

	// ErrInvalidNumber is returned for a field that is not a decimal number.
	ErrInvalidNumber = errors.New("loader: invalid number")
)

// MaxLineLength is the longest line Parse accepts, in bytes. Longer lines
// fail with ErrMalformedLine.
const MaxLineLength = 1 << 20

// ParseError describes the line that aborted a load.
type ParseError struct {
	Path string // empty when parsing a reader
	Line int    // 1-based
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	loc := fmt.Sprintf("line %d", e.Line)
	if e.Path != "" {
		loc = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	return fmt.Sprintf("%s: %q: %v", loc, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseFile loads the points of the file at path.
func ParseFile(path string) ([]geoviz.Point, error) {
	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, fmt.Errorf("loader: open: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	points, err := Parse(f)
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = path
		}
		return nil, err
	}

	geoviz.Logger().Info("loader: points loaded", "path", path, "count", len(points))
	return points, nil
}

// Parse loads points from r.
func Parse(r io.Reader) ([]geoviz.Point, error) {
	dec := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	sc := bufio.NewScanner(transform.NewReader(r, dec))
	sc.Buffer(make([]byte, 0, 4096), MaxLineLength)

	var points []geoviz.Point
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		p, err := parsePoint(text)
		if err != nil {
			return nil, &ParseError{Line: line, Text: text, Err: err}
		}
		points = append(points, p)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &ParseError{
				Line: line + 1,
				Err:  fmt.Errorf("%w: longer than %d bytes", ErrMalformedLine, MaxLineLength),
			}
		}
		return nil, fmt.Errorf("loader: read line %d: %w", line+1, err)
	}

	return points, nil
}

func parsePoint(text string) (geoviz.Point, error) {
	xs, ys, ok := strings.Cut(text, ",")
	if !ok || strings.Contains(ys, ",") {
		return geoviz.Point{}, ErrMalformedLine
	}

	x, err := parseField(xs)
	if err != nil {
		return geoviz.Point{}, err
	}
	y, err := parseField(ys)
	if err != nil {
		return geoviz.Point{}, err
	}
	return geoviz.Pt(x, y), nil
}

func parseField(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, strings.TrimSpace(s))
	}
	return v, nil
}
