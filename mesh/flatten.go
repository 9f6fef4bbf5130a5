package mesh

import (
	"golang.org/x/image/math/fixed"

	"github.com/benoitkugler/svganim/svgpath"
)

// DefaultResolution is the number of line segments used to
// approximate one bezier curve when none is specified.
const DefaultResolution = 16

// Flattener converts abstract paths to polyline contours.
type Flattener struct {
	// Resolution is the number of line segments used per
	// curve. Values between 10 and 20 are a good compromise
	// between fidelity and mesh size; DefaultResolution
	// applies when zero.
	Resolution int
}

// Flatten approximates the path with polylines, applying the
// transform m to every control point. One contour is emitted
// per subpath, in path order; a closepath appends the return
// segment to the subpath start. Subpaths with fewer than two
// distinct points are dropped.
func (f Flattener) Flatten(p svgpath.Path, m svgpath.Matrix2D) []Contour {
	res := f.Resolution
	if res <= 0 {
		res = DefaultResolution
	}
	fl := flattening{m: m, res: res}
	for _, op := range p {
		switch op := op.(type) {
		case svgpath.MoveTo:
			fl.start(fl.transform(fixed.Point26_6(op)))
		case svgpath.LineTo:
			fl.line(fl.transform(fixed.Point26_6(op)))
		case svgpath.QuadTo:
			fl.quad(fl.transform(op[0]), fl.transform(op[1]))
		case svgpath.CubicTo:
			fl.cubic(fl.transform(op[0]), fl.transform(op[1]), fl.transform(op[2]))
		case svgpath.Close:
			fl.close()
		}
	}
	fl.flush(false)
	return fl.out
}

type point struct{ x, y float32 }

type flattening struct {
	m   svgpath.Matrix2D
	res int
	out []Contour

	cur     []float32
	pen     point
	startPt point
}

func (fl *flattening) transform(p fixed.Point26_6) point {
	x, y := fl.m.Transform(float64(p.X)/64, float64(p.Y)/64)
	return point{float32(x), float32(y)}
}

func (fl *flattening) start(p point) {
	fl.flush(false)
	fl.cur = []float32{p.x, p.y}
	fl.pen = p
	fl.startPt = p
}

func (fl *flattening) line(p point) {
	if len(fl.cur) == 0 {
		// drawing resumed after a closepath: the subpath
		// restarts at its origin
		fl.cur = []float32{fl.startPt.x, fl.startPt.y}
		fl.pen = fl.startPt
	}
	if p == fl.pen { // consecutive duplicates are dropped
		return
	}
	fl.cur = append(fl.cur, p.x, p.y)
	fl.pen = p
}

// quad samples the quadratic bezier from the current point,
// evaluated in Bernstein form.
func (fl *flattening) quad(c, to point) {
	p0 := fl.pen
	for i := 1; i <= fl.res; i++ {
		t := float32(i) / float32(fl.res)
		u := 1 - t
		fl.line(point{
			u*u*p0.x + 2*u*t*c.x + t*t*to.x,
			u*u*p0.y + 2*u*t*c.y + t*t*to.y,
		})
	}
}

// cubic samples the cubic bezier from the current point,
// evaluated in Bernstein form.
func (fl *flattening) cubic(c1, c2, to point) {
	p0 := fl.pen
	for i := 1; i <= fl.res; i++ {
		t := float32(i) / float32(fl.res)
		u := 1 - t
		fl.line(point{
			u*u*u*p0.x + 3*u*u*t*c1.x + 3*u*t*t*c2.x + t*t*t*to.x,
			u*u*u*p0.y + 3*u*u*t*c1.y + 3*u*t*t*c2.y + t*t*t*to.y,
		})
	}
}

func (fl *flattening) close() {
	if len(fl.cur) == 0 {
		return
	}
	fl.line(fl.startPt) // return segment
	fl.flush(true)
}

func (fl *flattening) flush(closed bool) {
	if len(fl.cur) >= 4 { // at least two distinct points
		fl.out = append(fl.out, Contour{Points: fl.cur, Closed: closed})
	}
	fl.cur = nil
}
