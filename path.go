package gielis

import (
	"math"
	"strconv"
	"strings"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a polyline path made of moves, lines and closes.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	pt := Pt(x, y)
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Transform applies a transformation matrix to all points in the path.
func (p *Path) Transform(m Matrix) *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			result.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			result.LineTo(pt.X, pt.Y)
		case Close:
			result.Close()
		}
	}
	return result
}

// String encodes the path in the compact grammar
//
//	M<x>,<y>( L<x>,<y>)*Z
//
// with shortest exact decimal numbers. An empty path encodes as "".
func (p *Path) String() string {
	if len(p.elements) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(p.elements) * 24)
	buf := make([]byte, 0, 32)
	writePt := func(cmd string, pt Point) {
		sb.WriteString(cmd)
		buf = strconv.AppendFloat(buf[:0], pt.X, 'f', -1, 64)
		sb.Write(buf)
		sb.WriteByte(',')
		buf = strconv.AppendFloat(buf[:0], pt.Y, 'f', -1, 64)
		sb.Write(buf)
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}
			writePt("M", e.Point)
		case LineTo:
			writePt(" L", e.Point)
		case Close:
			sb.WriteByte('Z')
		}
	}
	return sb.String()
}

// Bounds returns the axis-aligned bounding box of the path vertices as
// (min, max). An empty path returns two zero points.
func (p *Path) Bounds() (lo, hi Point) {
	first := true
	for _, elem := range p.elements {
		var pt Point
		switch e := elem.(type) {
		case MoveTo:
			pt = e.Point
		case LineTo:
			pt = e.Point
		default:
			continue
		}
		if first {
			lo, hi = pt, pt
			first = false
			continue
		}
		lo = Point{X: math.Min(lo.X, pt.X), Y: math.Min(lo.Y, pt.Y)}
		hi = Point{X: math.Max(hi.X, pt.X), Y: math.Max(hi.Y, pt.Y)}
	}
	return lo, hi
}

// Winding returns the winding number of a point relative to the path.
// 0 = outside, non-zero = inside (for non-zero fill rule).
// Uses ray casting with a horizontal ray to the right. Open subpaths are
// treated as implicitly closed, as a fill would.
func (p *Path) Winding(pt Point) int {
	var winding int
	var current, start Point
	open := false

	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			if open {
				winding += lineWinding(current, start, pt)
			}
			start = e.Point
			current = e.Point
			open = true
		case LineTo:
			winding += lineWinding(current, e.Point, pt)
			current = e.Point
		case Close:
			winding += lineWinding(current, start, pt)
			current = start
			open = false
		}
	}
	if open {
		winding += lineWinding(current, start, pt)
	}

	return winding
}

// lineWinding computes the winding contribution of a line segment.
func lineWinding(p0, p1, pt Point) int {
	if p0.Y <= pt.Y && p1.Y > pt.Y {
		// Upward crossing
		if isLeft(p0, p1, pt) > 0 {
			return 1
		}
	} else if p0.Y > pt.Y && p1.Y <= pt.Y {
		// Downward crossing
		if isLeft(p0, p1, pt) < 0 {
			return -1
		}
	}
	return 0
}

// isLeft returns positive if pt is left of line p0-p1, negative if right, 0 if on.
func isLeft(p0, p1, pt Point) float64 {
	return (p1.X-p0.X)*(pt.Y-p0.Y) - (pt.X-p0.X)*(p1.Y-p0.Y)
}
