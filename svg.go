package interp

import (
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a polyline, such as a sampled curve, to a string of SVG path
// commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[Point], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a polyline to a string of SVG path commands and writes it
// to w. The first point is a "move to", all following points are "line to".
//
// Points that aren't finite are skipped and break the polyline: the next
// finite point starts a new subpath.
func WriteSVG(w io.Writer, seq iter.Seq[Point], opts SVGOptions) error {
	space := []byte(" ")
	var err error
	write := func(s []byte) {
		if err != nil {
			return
		}
		_, err = w.Write(s)
	}
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			return strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
	}
	first := true
	moveTo := true
	for pt := range seq {
		if err != nil {
			return err
		}
		if !pt.IsFinite() {
			moveTo = true
			continue
		}
		if !first {
			write(space)
		}
		first = false
		if moveTo {
			writef("M%s,%s", format(pt.X), format(pt.Y))
			moveTo = false
		} else {
			writef("L%s,%s", format(pt.X), format(pt.Y))
		}
	}
	return err
}
