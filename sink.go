package outline

import "fmt"

// WindingRule tells the consumer of a [VectorPath] how to determine its
// interior.
type WindingRule int

const (
	// NoWinding requests no special winding rule.
	NoWinding WindingRule = iota
	NonZero
	EvenOdd
)

func (r WindingRule) String() string {
	switch r {
	case NoWinding:
		return "NONE"
	case NonZero:
		return "NONZERO"
	case EvenOdd:
		return "EVENODD"
	}
	return fmt.Sprintf("WindingRule(%d)", int(r))
}

// VectorPath is the result of [Process]: SVG path data plus the winding rule
// it should be filled with.
type VectorPath struct {
	WindingRule WindingRule
	Data        string
}

// Sink receives the paths produced by [Run].
type Sink interface {
	WritePath(VectorPath) error
}

// SinkFunc adapts a function to the [Sink] interface.
type SinkFunc func(VectorPath) error

func (f SinkFunc) WritePath(vp VectorPath) error { return f(vp) }
