// Implements a raster backend to render SVG images,
// by wrapping rasterx.
package svgraster

import (
	"errors"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/benoitkugler/svgtree/svgdraw"
	"github.com/benoitkugler/svgtree/svgshape"
	"github.com/benoitkugler/svgtree/svgtree"
	"github.com/benoitkugler/svgtree/svgvalue"
	"github.com/srwiley/rasterx"
)

// ErrNoSize is returned when the image size can't be deduced from the SVG root.
var ErrNoSize = errors.New("svgraster: undefined image size")

var _ svgdraw.Driver = (*Renderer)(nil) // assert interface conformance

type Renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
}

// NewRenderer returns a renderer with default values.
// In addition to rasterizing lines like a Scanner,
// it can also rasterize quadratic and cubic bezier curves.
func NewRenderer(width, height int, scanner rasterx.Scanner) *Renderer {
	return &Renderer{dasher: rasterx.NewDasher(width, height, scanner), filler: rasterx.NewFiller(width, height, scanner)}
}

// RasterTree uses a ScannerGV instance to render the
// tree into a width x height image and returns it.
func RasterTree(tree *svgtree.Tree, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	renderer := NewRenderer(width, height, scanner)
	svgdraw.Draw(tree, renderer, float64(width), float64(height))
	return img
}

// RasterSVGToImage parses the SVG document and renders it
// at its intrinsic size.
func RasterSVGToImage(icon io.Reader, opts svgtree.Options) (*image.RGBA, error) {
	tree, err := svgtree.ReadStream(icon, opts)
	if err != nil {
		return nil, err
	}
	w, h := svgdraw.Size(tree.Root)
	width, height := int(math.Ceil(w)), int(math.Ceil(h))
	if width <= 0 || height <= 0 {
		return nil, ErrNoSize
	}
	return RasterTree(tree, width, height), nil
}

func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (svgdraw.Filler, svgdraw.Stroker) {
	var (
		f svgdraw.Filler
		s svgdraw.Stroker
	)
	if willFill {
		f = filler{rd.filler}
	}
	if willStroke {
		s = stroker{rd.dasher}
	}
	return f, s
}

type filler struct{ *rasterx.Filler }

func (f filler) SetColor(pattern svgdraw.Pattern, opacity float64) {
	setColorFromPattern(pattern, opacity, f.Scanner)
}

type stroker struct{ *rasterx.Dasher }

func (s stroker) SetColor(pattern svgdraw.Pattern, opacity float64) {
	setColorFromPattern(pattern, opacity, s.Scanner)
}

func (s stroker) SetStrokeOptions(options svgdraw.StrokeOptions) {
	lineCap := capToFunc[options.Join.LineCap]
	s.SetStroke(
		options.LineWidth, options.Join.MiterLimit, lineCap, lineCap,
		rasterx.FlatGap, joinToJoin[options.Join.LineJoin],
		options.Dash.Dash, options.Dash.DashOffset,
	)
}

func toRasterxGradient(grad *svgdraw.Gradient) rasterx.Gradient {
	var (
		points   [5]float64
		isRadial bool
	)
	switch dir := grad.Direction.(type) {
	case svgdraw.Linear:
		points[0], points[1], points[2], points[3] = dir[0], dir[1], dir[2], dir[3]
		isRadial = false
	case svgdraw.Radial:
		points[0], points[1], points[2], points[3], points[4] = dir[0], dir[1], dir[2], dir[3], dir[4] // in rasterx fr is ignored
		isRadial = true
	}
	stops := make([]rasterx.GradStop, len(grad.Stops))
	for i, stop := range grad.Stops {
		stops[i] = rasterx.GradStop{StopColor: stop.StopColor, Offset: stop.Offset, Opacity: stop.Opacity}
	}
	m := grad.Matrix
	out := rasterx.Gradient{
		Points:   points,
		Stops:    stops,
		Matrix:   rasterx.Matrix2D{A: m.A, B: m.B, C: m.C, D: m.D, E: m.E, F: m.F},
		Spread:   spreadToSpread[grad.Spread],
		Units:    rasterx.ObjectBoundingBox,
		IsRadial: isRadial,
	}
	if grad.Units == svgvalue.UserSpaceOnUse {
		out.Units = rasterx.UserSpaceOnUse
	}
	return out
}

// resolve gradient color
func setColorFromPattern(pattern svgdraw.Pattern, opacity float64, scanner rasterx.Scanner) {
	switch fillerColor := pattern.(type) {
	case svgdraw.PlainColor:
		scanner.SetColor(rasterx.ApplyOpacity(color.NRGBA(fillerColor), opacity))
	case *svgdraw.Gradient:
		rasterxGradient := toRasterxGradient(fillerColor)
		if fillerColor.Units == svgvalue.ObjectBoundingBox {
			fRect := scanner.GetPathExtent()
			mnx, mny := float64(fRect.Min.X)/64, float64(fRect.Min.Y)/64
			mxx, mxy := float64(fRect.Max.X)/64, float64(fRect.Max.Y)/64
			rasterxGradient.Bounds.X, rasterxGradient.Bounds.Y = mnx, mny
			rasterxGradient.Bounds.W, rasterxGradient.Bounds.H = mxx-mnx, mxy-mny
		}
		scanner.SetColor(rasterxGradient.GetColorFunction(opacity))
	}
}

var (
	joinToJoin = [...]rasterx.JoinMode{
		svgshape.Round:     rasterx.Round,
		svgshape.Bevel:     rasterx.Bevel,
		svgshape.Miter:     rasterx.Miter,
		svgshape.MiterClip: rasterx.MiterClip,
		svgshape.Arc:       rasterx.Arc,
	}

	capToFunc = [...]rasterx.CapFunc{
		svgshape.ButtCap:   rasterx.ButtCap,
		svgshape.SquareCap: rasterx.SquareCap,
		svgshape.RoundCap:  rasterx.RoundCap,
	}

	spreadToSpread = [...]rasterx.SpreadMethod{
		svgdraw.PadSpread:     rasterx.PadSpread,
		svgdraw.ReflectSpread: rasterx.ReflectSpread,
		svgdraw.RepeatSpread:  rasterx.RepeatSpread,
	}
)
