package svgpath

import "math"

// compute the tight bounding box of a path, needed when using
// gradients or clip paths with objectBoundingBox units

// quadratic polinomial
// x = At^2 + Bt + C
// where
// A = p0 + p2 - 2p1
// B = 2(p1 - p0)
// C = p0
func bezierQuad(p0, p1, p2, t float64) float64 {
	return (p0+p2-2*p1)*t*t + 2*(p1-p0)*t + p0
}

// cubic polinomial
// x = At^3 + Bt^2 + Ct + D
// where A,B,C,D:
// A = p3 -3 * p2 + 3 * p1 - p0
// B = 3 * p2 - 6 * p1 +3 * p0
// C = 3 * p1 - 3 * p0
// D = p0
func bezierSpline(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		p0
}

// roots of the derivative of the quadratic curve, as at + b
func quadExtrema(p0, p1, p2 float64) []float64 {
	a, b := 2*(p2-p1-(p1-p0)), 2*(p1-p0)
	if a == 0 {
		return nil
	}
	return []float64{-b / a}
}

// roots of the derivative of the cubic curve:
// X' = (3*p3-9*p2+9*p1-3*p0)t^2 + (6*p2-12*p1+6*p0)t + (3*p1-3*p0)
func cubicExtrema(p0, p1, p2, p3 float64) []float64 {
	return quadraticRoots(3*p3-9*p2+9*p1-3*p0, 6*p2-12*p1+6*p0, 3*p1-3*p0)
}

// real roots of ax^2 + bx + c
func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	d := b*b - 4*a*c
	switch {
	case d < 0:
		return nil
	case d == 0:
		return []float64{-b / (2 * a)}
	default:
		sq := math.Sqrt(d)
		return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
	}
}

type boxBuilder struct {
	minX, minY, maxX, maxY float64
}

func newBoxBuilder() boxBuilder {
	return boxBuilder{math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)}
}

func (b *boxBuilder) add(p Point) {
	b.minX, b.maxX = math.Min(b.minX, p.X), math.Max(b.maxX, p.X)
	b.minY, b.maxY = math.Min(b.minY, p.Y), math.Max(b.maxY, p.Y)
}

// addCurve adds the points of the curve at the given times,
// keeping the ones in ]0, 1[
func (b *boxBuilder) addCurve(eval func(t float64) Point, ts ...[]float64) {
	for _, list := range ts {
		for _, t := range list {
			if 0 < t && t < 1 {
				b.add(eval(t))
			}
		}
	}
}

// Bounds returns the tight box enclosing the path: curves are
// bounded by their extrema, not by their control points.
// It returns false for an empty path.
func (p Path) Bounds() (Rect, bool) {
	box := newBoxBuilder()
	var current, start Point
	for _, op := range p {
		switch op := op.(type) {
		case MoveTo:
			current, start = Point(op), Point(op)
			box.add(current)
		case LineTo:
			current = Point(op)
			box.add(current)
		case QuadTo:
			p0, p1, p2 := current, op[0], op[1]
			box.add(p2)
			box.addCurve(func(t float64) Point {
				return Point{bezierQuad(p0.X, p1.X, p2.X, t), bezierQuad(p0.Y, p1.Y, p2.Y, t)}
			}, quadExtrema(p0.X, p1.X, p2.X), quadExtrema(p0.Y, p1.Y, p2.Y))
			current = p2
		case CubicTo:
			p0, p1, p2, p3 := current, op[0], op[1], op[2]
			box.add(p3)
			box.addCurve(func(t float64) Point {
				return Point{bezierSpline(p0.X, p1.X, p2.X, p3.X, t), bezierSpline(p0.Y, p1.Y, p2.Y, p3.Y, t)}
			}, cubicExtrema(p0.X, p1.X, p2.X, p3.X), cubicExtrema(p0.Y, p1.Y, p2.Y, p3.Y))
			current = p3
		case Close:
			current = start
		}
	}
	if box.minX > box.maxX {
		return Rect{}, false
	}
	return Rect{X: box.minX, Y: box.minY, W: box.maxX - box.minX, H: box.maxY - box.minY}, true
}
