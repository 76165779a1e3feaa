package outline

import (
	"errors"
	"fmt"
	"iter"
)

// ErrNothingToDo is returned by [Process] and [Run] when the input has no
// segments. It signals that no path was produced, not that anything failed.
var ErrNothingToDo = errors.New("no segments to simplify")

// Options configures [Process] and [Run].
type Options struct {
	// Flatten controls how each segment is turned into points.
	Flatten FlattenOptions
	// Tolerance is the Douglas-Peucker distance tolerance applied to the
	// combined points of all segments.
	Tolerance float64
	// Smoothing is the handle length factor passed to [Smooth].
	Smoothing float64
	// WindingRule is stored in the resulting [VectorPath].
	WindingRule WindingRule
	// SVG controls the formatting of the path data.
	SVG SVGOptions
}

// DefaultOptions flattens with [DefaultFlattenOptions], simplifies with a
// tolerance of 2 and smooths with [DefaultSmoothing].
var DefaultOptions = Options{
	Flatten:     DefaultFlattenOptions,
	Tolerance:   2,
	Smoothing:   DefaultSmoothing,
	WindingRule: NoWinding,
}

// Points flattens every curve in seq and concatenates the results. Points
// shared by consecutive curves appear twice.
func Points(seq iter.Seq[CubicBez], opts FlattenOptions) []Point {
	var pts []Point
	for c := range seq {
		pts = c.AppendFlatten(pts, opts)
	}
	return pts
}

// Simplified flattens, concatenates, simplifies and smooths the curves in seq.
// It returns [ErrNothingToDo] if seq is empty.
func Simplified(seq iter.Seq[CubicBez], opts Options) (BezPath, error) {
	n := 0
	var pts []Point
	for c := range seq {
		pts = c.AppendFlatten(pts, opts.Flatten)
		n++
	}
	log := Logger()
	if n == 0 {
		log.Info("nothing to simplify")
		return nil, ErrNothingToDo
	}
	simplified := Simplify(pts, opts.Tolerance)
	log.Debug("simplified outline",
		"segments", n,
		"flattened", len(pts),
		"simplified", len(simplified))
	return Smooth(simplified, opts.Smoothing), nil
}

// Process turns a sequence of curves into a single smooth path. It returns
// [ErrNothingToDo] if seq is empty.
func Process(seq iter.Seq[CubicBez], opts Options) (VectorPath, error) {
	p, err := Simplified(seq, opts)
	if err != nil {
		return VectorPath{}, err
	}
	return VectorPath{
		WindingRule: opts.WindingRule,
		Data:        p.SVG(opts.SVG),
	}, nil
}

// Run processes seq and writes the result to sink. The sink isn't called if
// Process fails, including when it returns [ErrNothingToDo].
func Run(seq iter.Seq[CubicBez], sink Sink, opts Options) error {
	vp, err := Process(seq, opts)
	if err != nil {
		return err
	}
	if err := sink.WritePath(vp); err != nil {
		return fmt.Errorf("writing path: %w", err)
	}
	return nil
}
