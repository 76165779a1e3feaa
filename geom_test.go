package outline

import (
	"bytes"
	"log/slog"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func TestGeomDataSegments(t *testing.T) {
	d := &path.Data{
		Cmds: []path.Command{
			path.CmdMoveTo,
			path.CmdLineTo,
			path.CmdCubeTo,
			path.CmdClose,
			path.CmdMoveTo,
			path.CmdLineTo,
			path.CmdClose,
		},
		Coords: []vec.Vec2{
			{X: 0, Y: 0},
			{X: 10, Y: 0},
			{X: 10, Y: 5}, {X: 5, Y: 10}, {X: 0, Y: 10},
			{X: 20, Y: 20},
			{X: 20, Y: 20},
		},
	}
	got := slices.Collect(GeomDataSegments(d))
	diff(t, got, []CubicBez{
		{Pt(0, 0), Pt(0, 0), Pt(10, 0), Pt(10, 0)},
		{Pt(10, 0), Pt(10, 5), Pt(5, 10), Pt(0, 10)},
		{Pt(0, 10), Pt(0, 10), Pt(0, 0), Pt(0, 0)},
		{Pt(20, 20), Pt(20, 20), Pt(20, 20), Pt(20, 20)},
	})
}

func TestGeomSegmentsSkipsQuadratics(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	p := path.Path(func(yield func(path.Command, []vec.Vec2) bool) {
		if !yield(path.CmdMoveTo, []vec.Vec2{{X: 0, Y: 0}}) {
			return
		}
		if !yield(path.CmdQuadTo, []vec.Vec2{{X: 5, Y: 5}, {X: 10, Y: 0}}) {
			return
		}
		yield(path.CmdCubeTo, []vec.Vec2{{X: 12, Y: 0}, {X: 14, Y: 2}, {X: 14, Y: 4}})
	})
	got := slices.Collect(GeomSegments(p))
	diff(t, got, []CubicBez{
		{Pt(10, 0), Pt(12, 0), Pt(14, 2), Pt(14, 4)},
	})
	if !strings.Contains(buf.String(), "skipping quadratic segment") {
		t.Errorf("expected a warning, got %q", buf.String())
	}
}

func TestGeomSegmentsWithoutMoveTo(t *testing.T) {
	p := path.Path(func(yield func(path.Command, []vec.Vec2) bool) {
		yield(path.CmdLineTo, []vec.Vec2{{X: 5, Y: 5}})
	})
	if got := slices.Collect(GeomSegments(p)); len(got) != 0 {
		t.Errorf("got %v, want no segments", got)
	}
}

func TestGeomPath(t *testing.T) {
	p := BezPath{
		MoveTo(Pt(1, 2)),
		CubicTo(Pt(3, 4), Pt(5, 6), Pt(7, 8)),
	}
	d := p.GeomPath()
	diff(t, d.Cmds, []path.Command{path.CmdMoveTo, path.CmdCubeTo})
	diff(t, d.Coords, []vec.Vec2{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}, {X: 7, Y: 8}})

	// Reading the converted path back yields the same curves.
	diff(t, slices.Collect(GeomDataSegments(d)), slices.Collect(p.Segments()))
}
