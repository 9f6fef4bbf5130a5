// Implements the parsing of SVG path data ("d" attributes)
// into an abstract representation, which can then be consumed
// by flattening or painting code.
package svgpath

import (
	"strconv"
	"strings"

	"golang.org/x/image/math/fixed"
)

type pathCommand uint8

// Human readable path constants
const (
	pathMoveTo pathCommand = iota
	pathLineTo
	pathQuadTo
	pathCubicTo
	pathClose
)

// Operation groups the different SVG commands
type Operation interface {
	command() pathCommand
}

type MoveTo fixed.Point26_6

type LineTo fixed.Point26_6

type QuadTo [2]fixed.Point26_6

type CubicTo [3]fixed.Point26_6

type Close struct{}

func (MoveTo) command() pathCommand  { return pathMoveTo }
func (LineTo) command() pathCommand  { return pathLineTo }
func (QuadTo) command() pathCommand  { return pathQuadTo }
func (CubicTo) command() pathCommand { return pathCubicTo }
func (Close) command() pathCommand   { return pathClose }

// Path describes a sequence of basic SVG operations, which should not be nil.
// All the commands of the "d" grammar are reduced to this set: relative
// coordinates are resolved to absolute ones, shorthands are expanded
// and arcs are converted to cubic curves during parsing.
type Path []Operation

// SubPath is a run of operations starting with a MoveTo.
type SubPath struct {
	Ops    Path // begins with MoveTo, never contains another MoveTo
	Closed bool // a trailing Close terminated the run
}

// SubPaths splits the path on its MoveTo operations.
func (p Path) SubPaths() []SubPath {
	var out []SubPath
	var current Path
	flush := func() {
		if len(current) == 0 {
			return
		}
		sub := SubPath{Ops: current}
		if _, isClose := current[len(current)-1].(Close); isClose {
			sub.Closed = true
		}
		out = append(out, sub)
		current = nil
	}
	for _, op := range p {
		if _, isMove := op.(MoveTo); isMove {
			flush()
		}
		current = append(current, op)
	}
	flush()
	return out
}

func formatFixed(v fixed.Int26_6) string {
	return strconv.FormatFloat(float64(v)/64, 'f', -1, 64)
}

func formatPoint(p fixed.Point26_6) string {
	return formatFixed(p.X) + "," + formatFixed(p.Y)
}

// ToSVGPath returns a string representation of the path,
// using absolute commands only. The numbers are formatted
// so that parsing the output yields the exact same path.
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = "M" + formatPoint(fixed.Point26_6(op))
		case LineTo:
			chunks[i] = "L" + formatPoint(fixed.Point26_6(op))
		case QuadTo:
			chunks[i] = "Q" + formatPoint(op[0]) + "," + formatPoint(op[1])
		case CubicTo:
			chunks[i] = "C" + formatPoint(op[0]) + "," + formatPoint(op[1]) + "," + formatPoint(op[2])
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new curve at the given point.
func (p *Path) Start(a fixed.Point26_6) {
	*p = append(*p, MoveTo{a.X, a.Y})
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b fixed.Point26_6) {
	*p = append(*p, LineTo{b.X, b.Y})
}

// QuadBezier adds a quadratic segment to the current curve.
func (p *Path) QuadBezier(b, c fixed.Point26_6) {
	*p = append(*p, QuadTo{b, c})
}

// CubeBezier adds a cubic segment to the current curve.
func (p *Path) CubeBezier(b, c, d fixed.Point26_6) {
	*p = append(*p, CubicTo{b, c, d})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}
