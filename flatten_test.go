package outline

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

// flatAt runs the flatness tests on c as if it were reached below the top
// level of subdivision.
func flatAt(c CubicBez, opts FlattenOptions) ([]Point, bool) {
	f := flattener{opts: opts, distTol: opts.DistanceTolerance()}
	left, _ := c.Subdivide()
	ok := f.flat(c, left.P3)
	return f.pts, ok
}

func TestFlattenDegenerate(t *testing.T) {
	p := Pt(3, 4)
	c := CubicBez{p, p, p, p}
	want := []Point{p, p, p, p}
	diff(t, c.Flatten(DefaultFlattenOptions), want)

	opts := DefaultFlattenOptions
	opts.PathEpsilon = 0
	diff(t, c.Flatten(opts), want)
}

func TestFlattenCollinear(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 0), Pt(10, 0), Pt(10, 0)}
	got := c.Flatten(DefaultFlattenOptions)
	diff(t, got, []Point{Pt(0, 0), Pt(1.5625, 0), Pt(8.4375, 0), Pt(10, 0)})

	for i, pt := range got {
		if i > 0 && pt.X <= got[i-1].X {
			t.Errorf("x not increasing at %d: %v", i, got)
		}
		if pt.Y > 1 || pt.Y < -1 {
			t.Errorf("point %v too far from y=0", pt)
		}
	}
}

func TestFlattenEndpoints(t *testing.T) {
	c := CubicBez{Pt(1.25, -3), Pt(40, 90), Pt(-20, 13), Pt(77.5, 12)}
	got := c.Flatten(DefaultFlattenOptions)
	if len(got) < 2 {
		t.Fatalf("got %d points", len(got))
	}
	diff(t, got[0], c.P0)
	diff(t, got[len(got)-1], c.P3)
}

func TestFlattenFollowsCurve(t *testing.T) {
	// x(t) = 300t² - 200t³ is monotonic on [0, 1].
	c := CubicBez{Pt(0, 0), Pt(0, 100), Pt(100, 100), Pt(100, 0)}
	got := c.Flatten(DefaultFlattenOptions)
	if len(got) <= 4 {
		t.Errorf("expected more than 4 points, got %v", got)
	}
	for i, pt := range got {
		if i > 0 && pt.X < got[i-1].X {
			t.Errorf("x decreasing at %d: %v", i, got)
		}
		if pt.Y < 0 || pt.Y > 75 {
			t.Errorf("point %v outside the curve's range", pt)
		}
	}
}

func TestFlattenScale(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 100), Pt(100, 100), Pt(100, 0)}
	opts := DefaultFlattenOptions
	coarse := c.Flatten(opts)
	opts.Scale = 4
	fine := c.Flatten(opts)
	if len(fine) <= len(coarse) {
		t.Errorf("scale 4 produced %d points, scale 1 produced %d", len(fine), len(coarse))
	}
}

func TestFlattenRecursionLimit(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 100), Pt(100, 100), Pt(100, 0)}

	opts := DefaultFlattenOptions
	opts.RecursionLimit = 3
	got := c.Flatten(opts)
	if limit := 2<<opts.RecursionLimit + 2; len(got) > limit {
		t.Errorf("got %d points, want at most %d", len(got), limit)
	}

	// No piece is ever flat enough, so every branch is truncated.
	opts.PathEpsilon = 1e-12
	diff(t, c.Flatten(opts), []Point{c.P0, c.P3})
}

func TestFlattenAppend(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 0), Pt(10, 0), Pt(10, 0)}
	dst := []Point{Pt(-1, -1)}
	got := c.AppendFlatten(dst, DefaultFlattenOptions)
	diff(t, got, append([]Point{Pt(-1, -1)}, c.Flatten(DefaultFlattenOptions)...))
}

func TestFlatRegular(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 1), Pt(2, -1), Pt(3, 0)}

	opts := DefaultFlattenOptions
	if pts, ok := flatAt(c, opts); ok || len(pts) != 0 {
		t.Errorf("curve should not be flat, got %v", pts)
	}

	opts.PathEpsilon = 2
	pts, ok := flatAt(c, opts)
	if !ok {
		t.Fatal("curve should be flat")
	}
	diff(t, pts, []Point{Pt(1.5, 0)})

	opts.AngleTolerance = 4
	pts, _ = flatAt(c, opts)
	diff(t, pts, []Point{Pt(1.5, 0)})

	opts.AngleTolerance = 0.5
	if pts, ok := flatAt(c, opts); ok {
		t.Errorf("sharp curve should not be flat without a cusp limit, got %v", pts)
	}

	// Both turning angles exceed the cusp limit; the first one wins.
	opts.CuspLimit = 1
	pts, ok = flatAt(c, opts)
	if !ok {
		t.Fatal("cusp should stop subdivision")
	}
	diff(t, pts, []Point{c.P1})
}

func TestFlatFirstControl(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 1), Pt(2, 0), Pt(3, 0)}
	opts := DefaultFlattenOptions

	pts, _ := flatAt(c, opts)
	diff(t, pts, []Point{Pt(1.5, 0.375)})

	opts.AngleTolerance = 2
	pts, _ = flatAt(c, opts)
	diff(t, pts, []Point{c.P1, c.P2})

	opts.AngleTolerance = 1
	opts.CuspLimit = 1.5
	pts, _ = flatAt(c, opts)
	diff(t, pts, []Point{c.P1})
}

func TestFlatSecondControl(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 0), Pt(2, 1), Pt(3, 0)}
	opts := DefaultFlattenOptions

	opts.AngleTolerance = 2
	pts, _ := flatAt(c, opts)
	diff(t, pts, []Point{c.P1, c.P2})

	opts.AngleTolerance = 1
	opts.CuspLimit = 1.5
	pts, _ = flatAt(c, opts)
	diff(t, pts, []Point{c.P2})
}

func TestFoldAngle(t *testing.T) {
	diff(t, foldAngle(1), 1.0)
	diff(t, foldAngle(3*3.141592653589793/2), 3.141592653589793/2, cmpopts.EquateApprox(0, 1e-12))
}
