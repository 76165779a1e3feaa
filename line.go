package outline

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P0.Distance(l.P1)
}

// Angle returns the direction of the line from P0 to P1, in radians.
func (l Line) Angle() float64 {
	return l.P1.Sub(l.P0).Angle()
}

// Eval returns the point at parameter t along the line.
func (l Line) Eval(t float64) Point {
	return l.P0.Translate(l.P1.Sub(l.P0).Mul(t))
}

// DistanceSquared returns the squared distance from pt to the closest point
// of the segment. A degenerate segment measures to P0.
func (l Line) DistanceSquared(pt Point) float64 {
	closest := l.P0
	d := l.P1.Sub(l.P0)
	if !d.IsZero() {
		t := pt.Sub(l.P0).Dot(d) / d.Hypot2()
		if t > 1 {
			closest = l.P1
		} else if t > 0 {
			closest = l.P0.Translate(d.Mul(t))
		}
	}
	return pt.DistanceSquared(closest)
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}
