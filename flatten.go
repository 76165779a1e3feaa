package outline

import "math"

// FlattenOptions controls the adaptive subdivision performed by
// [CubicBez.Flatten].
type FlattenOptions struct {
	// Scale is the ratio of output units to curve units. Larger scales
	// produce more points. Must be > 0.
	Scale float64

	// RecursionLimit caps the subdivision depth. Branches deeper than this
	// are dropped without emitting points.
	RecursionLimit int

	// FlatEpsilon is the deviation below which a control point is treated
	// as lying on the chord.
	FlatEpsilon float64

	// PathEpsilon is the maximum distance, in output units, between the curve
	// and its flattened approximation.
	PathEpsilon float64

	// AngleEpsilon disables the angle test when AngleTolerance is smaller
	// than it.
	AngleEpsilon float64

	// AngleTolerance is the largest total turning angle, in radians, that a
	// flat enough piece may have before it is subdivided further.
	AngleTolerance float64

	// CuspLimit is the turning angle, in radians, above which a piece is
	// treated as a cusp and replaced by its control point. Zero disables
	// cusp detection.
	CuspLimit float64
}

// DefaultFlattenOptions are the settings used by [DefaultOptions]. Angle
// refinement and cusp detection are off.
var DefaultFlattenOptions = FlattenOptions{
	Scale:          1,
	RecursionLimit: 8,
	FlatEpsilon:    1.1920929e-7,
	PathEpsilon:    1,
	AngleEpsilon:   0.01,
	AngleTolerance: 0,
	CuspLimit:      0,
}

// DistanceTolerance returns the squared distance bound used by the flatness
// tests, (PathEpsilon / Scale)².
func (opts FlattenOptions) DistanceTolerance() float64 {
	d := opts.PathEpsilon / opts.Scale
	return d * d
}

// Flatten approximates the curve by a sequence of points, using recursive
// midpoint subdivision. The first point is always c.P0 and the last point is
// always c.P3.
//
// The curve is split at least once. A piece stops being split once its
// control points are close enough to its chord, or once the recursion limit
// is reached; pieces beyond the limit are truncated silently.
func (c CubicBez) Flatten(opts FlattenOptions) []Point {
	return c.AppendFlatten(nil, opts)
}

// AppendFlatten is like [CubicBez.Flatten] but appends the points to dst and
// returns the extended slice.
func (c CubicBez) AppendFlatten(dst []Point, opts FlattenOptions) []Point {
	f := flattener{
		opts:    opts,
		distTol: opts.DistanceTolerance(),
		pts:     dst,
	}
	f.pts = append(f.pts, c.P0)
	f.subdivide(c, 0)
	f.pts = append(f.pts, c.P3)
	return f.pts
}

type flattener struct {
	opts    FlattenOptions
	distTol float64
	pts     []Point
}

func (f *flattener) emit(pts ...Point) {
	f.pts = append(f.pts, pts...)
}

func (f *flattener) angleDisabled() bool {
	return f.opts.AngleTolerance < f.opts.AngleEpsilon
}

// foldAngle maps the absolute difference of two angles into [0, π].
func foldAngle(a float64) float64 {
	if a >= math.Pi {
		a = 2*math.Pi - a
	}
	return a
}

func (f *flattener) subdivide(c CubicBez, level int) {
	if level > f.opts.RecursionLimit {
		return
	}

	left, right := c.Subdivide()
	mid := left.P3

	// The first call always subdivides.
	if level > 0 && f.flat(c, mid) {
		return
	}

	f.subdivide(left, level+1)
	f.subdivide(right, level+1)
}

// flat reports whether c is close enough to a straight line to stop
// subdividing. If it is, the points approximating c have been emitted.
func (f *flattener) flat(c CubicBez, mid Point) bool {
	chord := c.P3.Sub(c.P0)
	chord2 := chord.Hypot2()
	d2 := math.Abs(c.P1.Sub(c.P3).Cross(chord))
	d3 := math.Abs(c.P2.Sub(c.P3).Cross(chord))
	eps := f.opts.FlatEpsilon
	cusp := f.opts.CuspLimit

	switch {
	case d2 > eps && d3 > eps:
		if (d2+d3)*(d2+d3) > f.distTol*chord2 {
			return false
		}
		if f.angleDisabled() {
			f.emit(mid)
			return true
		}
		a23 := c.P2.Sub(c.P1).Angle()
		da1 := foldAngle(math.Abs(a23 - c.P1.Sub(c.P0).Angle()))
		da2 := foldAngle(math.Abs(c.P3.Sub(c.P2).Angle() - a23))
		if da1+da2 < f.opts.AngleTolerance {
			f.emit(mid)
			return true
		}
		if cusp != 0 {
			// da1 wins when both angles exceed the limit.
			if da1 > cusp {
				f.emit(c.P1)
				return true
			}
			if da2 > cusp {
				f.emit(c.P2)
				return true
			}
		}

	case d2 > eps:
		// P0, P2 and P3 are collinear.
		if d2*d2 > f.distTol*chord2 {
			return false
		}
		if f.angleDisabled() {
			f.emit(mid)
			return true
		}
		da1 := foldAngle(math.Abs(c.P2.Sub(c.P1).Angle() - c.P1.Sub(c.P0).Angle()))
		if da1 < f.opts.AngleTolerance {
			f.emit(c.P1, c.P2)
			return true
		}
		if cusp != 0 && da1 > cusp {
			f.emit(c.P1)
			return true
		}

	case d3 > eps:
		// P0, P1 and P3 are collinear.
		if d3*d3 > f.distTol*chord2 {
			return false
		}
		if f.angleDisabled() {
			f.emit(mid)
			return true
		}
		da1 := foldAngle(math.Abs(c.P3.Sub(c.P2).Angle() - c.P2.Sub(c.P1).Angle()))
		if da1 < f.opts.AngleTolerance {
			f.emit(c.P1, c.P2)
			return true
		}
		if cusp != 0 && da1 > cusp {
			f.emit(c.P2)
			return true
		}

	default:
		// All four points are collinear.
		if mid.DistanceSquared(c.P0.Midpoint(c.P3)) <= f.distTol {
			f.emit(mid)
			return true
		}
	}
	return false
}
