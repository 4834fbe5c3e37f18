package adaptive

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [PolylineSVG] and
// [WritePolylineSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// PolylineSVG converts a polyline to a string of SVG path commands.
//
// See [WritePolylineSVG] for a version that writes to an [io.Writer] instead
// of returning a string.
func PolylineSVG(pts []Point, opts SVGOptions) string {
	sb := &strings.Builder{}
	WritePolylineSVG(sb, pts, opts)
	return sb.String()
}

// WritePolylineSVG converts a polyline to SVG path commands and writes them
// to w. The first point becomes a move, every further point a line.
//
// Consecutive duplicate points, such as the padding produced by
// [Discretize], are written only once.
func WritePolylineSVG(w io.Writer, pts []Point, opts SVGOptions) error {
	var err error
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
			s = strings.TrimRight(s, "0")
			return strings.TrimSuffix(s, ".")
		}
	}
	for i, pt := range pts {
		if err != nil {
			return err
		}
		switch {
		case i == 0:
			writef("M%s,%s", format(pt.X), format(pt.Y))
		case pt == pts[i-1]:
		default:
			writef(" L%s,%s", format(pt.X), format(pt.Y))
		}
	}
	return err
}
