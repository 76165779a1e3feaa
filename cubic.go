package outline

// CubicBez is a cubic Bézier curve from P0 to P3, shaped by the control
// points P1 and P2.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}

// Eval returns the point of the curve at parameter t ∈ [0, 1].
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	d := 3 * mt * t * t
	e := t * t * t
	return Point{
		X: a*c.P0.X + b*c.P1.X + d*c.P2.X + e*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + d*c.P2.Y + e*c.P3.Y,
	}
}

// Subdivide subdivides the cubic into halves, using de Casteljau. The end of
// the first half and the start of the second half are the same point, the
// curve evaluated at t = 0.5.
func (c CubicBez) Subdivide() (CubicBez, CubicBez) {
	p12 := c.P0.Midpoint(c.P1)
	p23 := c.P1.Midpoint(c.P2)
	p34 := c.P2.Midpoint(c.P3)
	p123 := p12.Midpoint(p23)
	p234 := p23.Midpoint(p34)
	p1234 := p123.Midpoint(p234)
	return CubicBez{c.P0, p12, p123, p1234}, CubicBez{p1234, p234, p34, c.P3}
}

func (c CubicBez) Start() Point {
	return c.P0
}

func (c CubicBez) End() Point {
	return c.P3
}

// Chord returns the line from the curve's start to its end.
func (c CubicBez) Chord() Line {
	return Line{c.P0, c.P3}
}
