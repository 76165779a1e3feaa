package outline

import (
	"iter"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

func fromVec(v vec.Vec2) Point { return Point{X: v.X, Y: v.Y} }

func toVec(pt Point) vec.Vec2 { return vec.Vec2{X: pt.X, Y: pt.Y} }

// straight returns the cubic drawing the line from a to b, with its control
// points on the endpoints like a segment without tangent handles.
func straight(a, b Point) CubicBez {
	return CubicBez{a, a, b, b}
}

// geomWalker tracks the pen position while reading a geom path.
type geomWalker struct {
	current Point
	start   Point
	open    bool
}

// step handles one path command and reports whether iteration should
// continue.
func (w *geomWalker) step(cmd path.Command, pts []vec.Vec2, yield func(CubicBez) bool) bool {
	switch cmd {
	case path.CmdMoveTo:
		w.current = fromVec(pts[0])
		w.start = w.current
		w.open = true

	case path.CmdLineTo:
		if !w.open {
			return true
		}
		end := fromVec(pts[0])
		c := straight(w.current, end)
		w.current = end
		return yield(c)

	case path.CmdQuadTo:
		if !w.open {
			return true
		}
		Logger().Warn("skipping quadratic segment",
			"from", w.current, "to", fromVec(pts[1]))
		w.current = fromVec(pts[1])

	case path.CmdCubeTo:
		if !w.open {
			return true
		}
		c := CubicBez{w.current, fromVec(pts[0]), fromVec(pts[1]), fromVec(pts[2])}
		w.current = c.P3
		return yield(c)

	case path.CmdClose:
		if !w.open {
			return true
		}
		w.open = false
		if w.current != w.start {
			c := straight(w.current, w.start)
			w.current = w.start
			return yield(c)
		}
		w.current = w.start
	}
	return true
}

// GeomSegments reads the curves of a seehuhn.de/go/geom path. Cubic segments
// are passed through, lines (including the closing line of a closed
// subpath) become straight cubics. Quadratic segments are not supported and
// are skipped.
func GeomSegments(p path.Path) iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		var w geomWalker
		for cmd, pts := range p {
			if !w.step(cmd, pts, yield) {
				return
			}
		}
	}
}

// GeomDataSegments is like [GeomSegments] but reads the commands of a
// [path.Data] directly.
func GeomDataSegments(d *path.Data) iter.Seq[CubicBez] {
	return func(yield func(CubicBez) bool) {
		var w geomWalker
		idx := 0
		for _, cmd := range d.Cmds {
			var n int
			switch cmd {
			case path.CmdMoveTo, path.CmdLineTo:
				n = 1
			case path.CmdQuadTo:
				n = 2
			case path.CmdCubeTo:
				n = 3
			}
			pts := d.Coords[idx : idx+n]
			idx += n
			if !w.step(cmd, pts, yield) {
				return
			}
		}
	}
}

// GeomPath converts the path to a seehuhn.de/go/geom path.
func (p BezPath) GeomPath() *path.Data {
	d := &path.Data{}
	for _, el := range p {
		switch el.Kind {
		case MoveToKind:
			d = d.MoveTo(toVec(el.P0))
		case CubicToKind:
			d = d.CubeTo(toVec(el.P0), toVec(el.P1), toVec(el.P2))
		}
	}
	return d
}
