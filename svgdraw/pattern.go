package svgdraw

import (
	"image/color"

	"github.com/benoitkugler/svgtree/svgpath"
	"github.com/benoitkugler/svgtree/svgvalue"
)

// Pattern is either PlainColor or *Gradient
type Pattern interface {
	isPattern()
}

func (PlainColor) isPattern() {}
func (*Gradient) isPattern()  {}

// PlainColor is a uniform paint.
type PlainColor color.NRGBA

// SpreadMethod is the way a gradient fills the area outside
// of its vector.
type SpreadMethod uint8

const (
	PadSpread SpreadMethod = iota
	ReflectSpread
	RepeatSpread
)

func parseSpreadMethod(s string) SpreadMethod {
	switch s {
	case "reflect":
		return ReflectSpread
	case "repeat":
		return RepeatSpread
	default:
		return PadSpread
	}
}

// Linear holds x1, y1, x2, y2
type Linear [4]float64

// Radial holds cx, cy, fx, fy, r, fr
type Radial [6]float64

// GradStop is one color stop of a gradient.
type GradStop struct {
	StopColor color.NRGBA
	Offset    float64
	Opacity   float64
}

// Gradient is a linear or radial paint server, resolved
// for one path.
type Gradient struct {
	Direction interface{} // Linear or Radial
	Stops     []GradStop
	Units     svgvalue.Units
	Spread    SpreadMethod
	// Matrix is the gradient transform. For user space gradients,
	// it is composed with the transform of the painted path.
	Matrix svgpath.Matrix2D
}
