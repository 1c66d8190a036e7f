package svgvalue

import (
	"math"
	"strings"

	"github.com/benoitkugler/svgtree/svgpath"
)

func readTransformAttr(m1 svgpath.Matrix2D, k string, points []float64) (svgpath.Matrix2D, error) {
	ln := len(points)
	switch k {
	case "rotate":
		if ln == 1 {
			m1 = m1.Rotate(points[0] * math.Pi / 180)
		} else if ln == 3 {
			m1 = m1.Translate(points[1], points[2]).
				Rotate(points[0]*math.Pi/180).
				Translate(-points[1], -points[2])
		} else {
			return m1, errParamMismatch
		}
	case "translate":
		if ln == 1 {
			m1 = m1.Translate(points[0], 0)
		} else if ln == 2 {
			m1 = m1.Translate(points[0], points[1])
		} else {
			return m1, errParamMismatch
		}
	case "skewx":
		if ln == 1 {
			m1 = m1.SkewX(points[0] * math.Pi / 180)
		} else {
			return m1, errParamMismatch
		}
	case "skewy":
		if ln == 1 {
			m1 = m1.SkewY(points[0] * math.Pi / 180)
		} else {
			return m1, errParamMismatch
		}
	case "scale":
		if ln == 1 {
			m1 = m1.Scale(points[0], points[0])
		} else if ln == 2 {
			m1 = m1.Scale(points[0], points[1])
		} else {
			return m1, errParamMismatch
		}
	case "matrix":
		if ln == 6 {
			m1 = m1.Mult(svgpath.Matrix2D{
				A: points[0],
				B: points[1],
				C: points[2],
				D: points[3],
				E: points[4],
				F: points[5]})
		} else {
			return m1, errParamMismatch
		}
	default:
		return m1, errParamMismatch
	}
	return m1, nil
}

// ParseTransform parses a transform list such as
// "translate(10 20) rotate(45)". Transforms are composed left
// to right, so that the rightmost one applies first to points.
// A malformed list yields the identity and an error.
func ParseTransform(v string) (svgpath.Matrix2D, error) {
	ts := strings.Split(v, ")")
	m1 := svgpath.Identity
	last := len(ts) - 1
	for i, t := range ts {
		t = strings.TrimSpace(strings.TrimLeft(t, " ,\t\n\r"))
		if len(t) == 0 {
			continue
		}
		if i == last { // trailing garbage without a closing parenthesis
			return svgpath.Identity, errParamMismatch
		}
		d := strings.Split(t, "(")
		if len(d) != 2 || len(d[1]) < 1 {
			return svgpath.Identity, errParamMismatch // badly formed transformation
		}
		points, err := ParseNumberList(d[1])
		if err != nil {
			return svgpath.Identity, err
		}
		m1, err = readTransformAttr(m1, strings.ToLower(strings.TrimSpace(d[0])), points)
		if err != nil {
			return svgpath.Identity, err
		}
	}
	return m1, nil
}
