package outline

import (
	"fmt"
	"io"
	"iter"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a cubic Bézier using the current location and the three points.
	CubicToKind
)

func (k PathElementKind) String() string {
	switch k {
	case MoveToKind:
		return "MoveTo"
	case CubicToKind:
		return "CubicTo"
	default:
		return fmt.Sprintf("PathElementKind(%d)", int(k))
	}
}

// PathElement is a drawing command of a [BezPath]. A MoveTo uses only P0. A
// CubicTo draws from the current location through the control points P0 and
// P1 to P2.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	return fmt.Sprintf("%s(%s, %s, %s)", el.Kind, el.P0, el.P1, el.P2)
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

// EndPoint returns the point the pen is at after the element, or false for
// an invalid element.
func (el PathElement) EndPoint() (Point, bool) {
	switch el.Kind {
	case MoveToKind:
		return el.P0, true
	case CubicToKind:
		return el.P2, true
	default:
		return Point{}, false
	}
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() || el.P1.IsNaN() || el.P2.IsNaN()
}

// BezPath is a path built from MoveTo and CubicTo elements.
type BezPath []PathElement

// Push appends an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo starts a new subpath at pt.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// CubicTo appends a cubic Bézier ending at p3 with control points p1 and p2.
func (p *BezPath) CubicTo(p1, p2, p3 Point) { p.Push(CubicTo(p1, p2, p3)) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Segments returns the cubic Béziers drawn by the path.
func (p BezPath) Segments() iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		var last Point
		for _, el := range p {
			switch el.Kind {
			case MoveToKind:
				last = el.P0
			case CubicToKind:
				if !yield(CubicBez{last, el.P0, el.P1, el.P2}) {
					return
				}
				last = el.P2
			}
		}
	}
}

// Points returns the points the path passes through, in order.
func (p BezPath) Points() []Point {
	out := make([]Point, 0, len(p))
	for _, el := range p {
		if pt, ok := el.EndPoint(); ok {
			out = append(out, pt)
		}
	}
	return out
}

// SVG converts the path to an SVG path string.
func (p BezPath) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}
