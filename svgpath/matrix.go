package svgpath

import "math"

// Matrix2D is an affine transform, mapping (x, y) to
// (A*x + C*y + E, B*x + D*y + F), as in the SVG matrix(a b c d e f) notation.
type Matrix2D struct {
	A, B, C, D, E, F float64
}

// Identity is the transform that leaves points unchanged.
var Identity = Matrix2D{1, 0, 0, 1, 0, 0}

// Mult returns the product a × b : the result applies b first, then a.
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

// Translate returns a × translate(x, y).
func (a Matrix2D) Translate(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{1, 0, 0, 1, x, y})
}

// Scale returns a × scale(x, y).
func (a Matrix2D) Scale(x, y float64) Matrix2D {
	return a.Mult(Matrix2D{x, 0, 0, y, 0, 0})
}

// Rotate returns a × rotate(theta), with theta in radians.
func (a Matrix2D) Rotate(theta float64) Matrix2D {
	s, c := math.Sincos(theta)
	return a.Mult(Matrix2D{c, s, -s, c, 0, 0})
}

// SkewX returns a × skewX(theta), with theta in radians.
func (a Matrix2D) SkewX(theta float64) Matrix2D {
	return a.Mult(Matrix2D{1, 0, math.Tan(theta), 1, 0, 0})
}

// SkewY returns a × skewY(theta), with theta in radians.
func (a Matrix2D) SkewY(theta float64) Matrix2D {
	return a.Mult(Matrix2D{1, math.Tan(theta), 0, 1, 0, 0})
}

// Transform applies the matrix to the point (x, y).
func (a Matrix2D) Transform(x, y float64) (float64, float64) {
	return a.A*x + a.C*y + a.E, a.B*x + a.D*y + a.F
}

// TransformPoint applies the matrix to p.
func (a Matrix2D) TransformPoint(p Point) Point {
	x, y := a.Transform(p.X, p.Y)
	return Point{x, y}
}

// IsIdentity reports whether a is exactly the identity.
func (a Matrix2D) IsIdentity() bool { return a == Identity }
