package outline

import (
	"errors"
	"fmt"
	"iter"
)

// ErrVertexIndex is wrapped by errors reporting a segment that references a
// vertex that doesn't exist.
var ErrVertexIndex = errors.New("vertex index out of range")

// Segment describes one edge of a vector network: two vertices and the
// tangent handles leaving them. A zero tangent means the edge has no handle
// at that end.
type Segment struct {
	Start        Point
	End          Point
	TangentStart Vec2
	TangentEnd   Vec2
}

// Cubic returns the cubic Bézier drawn by the segment. Its control points are
// the vertices offset by their tangents.
func (s Segment) Cubic() CubicBez {
	return CubicBez{
		P0: s.Start,
		P1: s.Start.Translate(s.TangentStart),
		P2: s.End.Translate(s.TangentEnd),
		P3: s.End,
	}
}

// Segments converts a sequence of segments to cubic Béziers.
func Segments(seq iter.Seq[Segment]) iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		for s := range seq {
			if !yield(s.Cubic()) {
				return
			}
		}
	}
}

// NetworkSegment is a [Segment] whose vertices are indices into
// [VectorNetwork.Vertices].
type NetworkSegment struct {
	Start        int
	End          int
	TangentStart Vec2
	TangentEnd   Vec2
}

// VectorNetwork is a set of vertices joined by segments, in the order the
// host stores them.
type VectorNetwork struct {
	Vertices []Point
	Segments []NetworkSegment
}

// IndexError reports a segment referencing a missing vertex.
type IndexError struct {
	// Segment is the position of the offending segment.
	Segment int
	// Vertex is the out-of-range vertex index.
	Vertex int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("segment %d: vertex %d: %s", e.Segment, e.Vertex, ErrVertexIndex)
}

func (e *IndexError) Unwrap() error { return ErrVertexIndex }

// Validate checks that all segments reference existing vertices.
func (n VectorNetwork) Validate() error {
	for i, s := range n.Segments {
		for _, v := range [2]int{s.Start, s.End} {
			if v < 0 || v >= len(n.Vertices) {
				return &IndexError{Segment: i, Vertex: v}
			}
		}
	}
	return nil
}

// Segment resolves the i-th segment's vertex indices. The network must be
// valid.
func (n VectorNetwork) Segment(i int) Segment {
	s := n.Segments[i]
	return Segment{
		Start:        n.Vertices[s.Start],
		End:          n.Vertices[s.End],
		TangentStart: s.TangentStart,
		TangentEnd:   s.TangentEnd,
	}
}

// Cubics returns the network's segments as cubic Béziers, in segment order.
// It returns an error wrapping [ErrVertexIndex] if the network is invalid.
func (n VectorNetwork) Cubics() (iter.Seq[CubicBez], error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return func(yield func(CubicBez) bool) {
		for i := range n.Segments {
			if !yield(n.Segment(i).Cubic()) {
				return
			}
		}
	}, nil
}
