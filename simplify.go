package outline

// Simplify reduces a polyline with the Douglas-Peucker algorithm. A point is
// kept if it is farther than tolerance from the chord of the range it
// belongs to; the first and last points are always kept. The result preserves
// the order of pts and never contains more points than pts.
//
// Inputs with fewer than two points are returned unchanged. Otherwise the
// result is a new slice and pts is not modified.
func Simplify(pts []Point, tolerance float64) []Point {
	if len(pts) <= 1 {
		return pts
	}

	tol2 := tolerance * tolerance
	keep := make([]bool, len(pts))
	keep[0] = true
	keep[len(pts)-1] = true
	kept := 2

	type span struct{ first, last int }
	stack := []span{{0, len(pts) - 1}}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		chord := Line{pts[s.first], pts[s.last]}
		maxDist := 0.0
		index := 0
		for i := s.first + 1; i < s.last; i++ {
			// Strict comparison: ties go to the lowest index.
			if d := chord.DistanceSquared(pts[i]); d > maxDist {
				index = i
				maxDist = d
			}
		}
		if maxDist > tol2 {
			keep[index] = true
			kept++
			stack = append(stack, span{s.first, index}, span{index, s.last})
		}
	}

	out := make([]Point, 0, kept)
	for i, k := range keep {
		if k {
			out = append(out, pts[i])
		}
	}
	return out
}
