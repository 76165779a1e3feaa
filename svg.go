package outline

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum number of fractional digits with which to format
	// coordinates. A value of 0 chooses the highest precision necessary to
	// unambiguously represent any given coordinate.
	MaxPrecision int
}

func (opts SVGOptions) format(n float64) string {
	if opts.MaxPrecision <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" || s == "" {
		s = "0"
	}
	return s
}

// SVG converts a sequence of path elements to a string of SVG path commands
// of the form "M x y C x1 y1 x2 y2 x y ...".
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	// Writes to a strings.Builder cannot fail.
	_ = WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
//
// The output uses absolute coordinates only and separates every token by a
// single space. It doesn't take any special care to produce a short string.
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			writef(" ")
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M %s %s", opts.format(el.P0.X), opts.format(el.P0.Y))
		case CubicToKind:
			writef("C %s %s %s %s %s %s",
				opts.format(el.P0.X), opts.format(el.P0.Y),
				opts.format(el.P1.X), opts.format(el.P1.Y),
				opts.format(el.P2.X), opts.format(el.P2.Y))
		default:
			panic(fmt.Sprintf("unhandled case %v", el.Kind))
		}
	}
	return err
}
