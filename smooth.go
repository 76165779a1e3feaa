package outline

import "math"

// DefaultSmoothing is the fraction of the neighbour distance used as the
// length of a synthesized tangent handle.
const DefaultSmoothing = 0.2

// Smooth turns a polyline into a path of cubic Béziers passing through every
// point. The path starts with a MoveTo to pts[0], followed by one CubicTo per
// remaining point.
//
// Control points follow the Catmull-Rom construction: the handle at a point
// is parallel to the line joining its neighbours and smoothing times that
// line's length. Points at either end of pts stand in for their own missing
// neighbour.
func Smooth(pts []Point, smoothing float64) BezPath {
	if len(pts) == 0 {
		return nil
	}
	p := make(BezPath, 0, len(pts))
	p.MoveTo(pts[0])
	for i := 1; i < len(pts); i++ {
		prev := pts[i-1]
		prevPrev := prev
		if i >= 2 {
			prevPrev = pts[i-2]
		}
		cur := pts[i]
		next := cur
		if i+1 < len(pts) {
			next = pts[i+1]
		}
		p.CubicTo(
			controlPoint(prev, prevPrev, cur, smoothing, false),
			controlPoint(cur, prev, next, smoothing, true),
			cur,
		)
	}
	return p
}

// controlPoint returns the handle of current along the line from prev to
// next, pointing backwards if reverse is set.
func controlPoint(current, prev, next Point, smoothing float64, reverse bool) Point {
	l := Line{prev, next}
	angle := l.Angle()
	if reverse {
		angle += math.Pi
	}
	return current.Translate(VecFromAngle(angle).Mul(l.Length() * smoothing))
}
