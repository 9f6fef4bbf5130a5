package svgpath

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Matrix2D represents an SVG style matrix of the form
//	A C E
//	B D F
//	0 0 1
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the identity matrix
var Identity = Matrix2D{1, 0, 0, 1, 0, 0}

// Mult returns a*b
func (a Matrix2D) Mult(b Matrix2D) Matrix2D {
	return Matrix2D{
		A: a.A*b.A + a.C*b.B,
		B: a.B*b.A + a.D*b.B,
		C: a.A*b.C + a.C*b.D,
		D: a.B*b.C + a.D*b.D,
		E: a.A*b.E + a.C*b.F + a.E,
		F: a.B*b.E + a.D*b.F + a.F,
	}
}

// Translate translates the matrix by x, y
func (a Matrix2D) Translate(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{1, 0, 0, 1, x, y})
}

// Scale scales the matrix by x, y
func (a Matrix2D) Scale(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{x, 0, 0, y, 0, 0})
}

// Rotate rotates the matrix by the angle rt (radians)
func (a Matrix2D) Rotate(rt float64) Matrix2D {
	sin, cos := math.Sin(rt), math.Cos(rt)
	return a.Mult(Matrix2D{cos, sin, -sin, cos, 0, 0})
}

// Transform multiplies the input vector by matrix a
func (a Matrix2D) Transform(x, y float64) (x1, y1 float64) {
	x1 = x*a.A + y*a.C + a.E
	y1 = x*a.B + y*a.D + a.F
	return
}

// TransformFixed multiplies the input point by matrix a
func (a Matrix2D) TransformFixed(x fixed.Point26_6) fixed.Point26_6 {
	fx, fy := float64(x.X)/64, float64(x.Y)/64
	x1, y1 := a.Transform(fx, fy)
	return toFixedP(x1, y1)
}
