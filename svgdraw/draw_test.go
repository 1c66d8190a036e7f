package svgdraw

import (
	"fmt"
	"image/color"
	"strings"
	"testing"

	"github.com/benoitkugler/svgtree/svgdom"
	"github.com/benoitkugler/svgtree/svgpath"
	"github.com/benoitkugler/svgtree/svgshape"
	"github.com/benoitkugler/svgtree/svgtree"
	"github.com/benoitkugler/svgtree/svgvalue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/fixed"
)

// recorder is a Driver logging the painted paths
type recorder struct {
	paints []paint
}

type paint struct {
	stroke  bool
	ops     []string
	color   Pattern
	opacity float64
	winding bool
	options StrokeOptions
}

type recDrawer struct {
	r       *recorder
	stroke  bool
	current paint
}

func (r *recorder) SetupDrawers(willFill, willStroke bool) (Filler, Stroker) {
	var (
		f Filler
		s Stroker
	)
	if willFill {
		f = &recDrawer{r: r}
	}
	if willStroke {
		s = &recDrawer{r: r, stroke: true}
	}
	return f, s
}

func pt(p fixed.Point26_6) string {
	return fmt.Sprintf("%g,%g", float64(p.X)/64, float64(p.Y)/64)
}

func (d *recDrawer) Clear()                  { d.current = paint{stroke: d.stroke, winding: true} }
func (d *recDrawer) Start(a fixed.Point26_6) { d.current.ops = append(d.current.ops, "M"+pt(a)) }
func (d *recDrawer) Line(b fixed.Point26_6)  { d.current.ops = append(d.current.ops, "L"+pt(b)) }
func (d *recDrawer) QuadBezier(b, c fixed.Point26_6) {
	d.current.ops = append(d.current.ops, "Q"+pt(b)+" "+pt(c))
}

func (d *recDrawer) CubeBezier(b, c, e fixed.Point26_6) {
	d.current.ops = append(d.current.ops, "C"+pt(b)+" "+pt(c)+" "+pt(e))
}

func (d *recDrawer) Stop(closeLoop bool) {
	if closeLoop {
		d.current.ops = append(d.current.ops, "Z")
	}
}

func (d *recDrawer) SetColor(c Pattern, opacity float64) {
	d.current.color, d.current.opacity = c, opacity
}

func (d *recDrawer) SetWinding(nonZero bool) { d.current.winding = nonZero }

func (d *recDrawer) SetStrokeOptions(options StrokeOptions) { d.current.options = options }

func (d *recDrawer) Draw() { d.r.paints = append(d.r.paints, d.current) }

func render(t *testing.T, src string, width, height float64) []paint {
	t.Helper()
	tree, err := svgtree.ReadStream(strings.NewReader(src), svgtree.Options{})
	require.NoError(t, err)
	var r recorder
	Draw(tree, &r, width, height)
	return r.paints
}

func TestViewBoxTransform(t *testing.T) {
	vb := svgvalue.ViewBox{W: 10, H: 20}
	var tests = []struct {
		ar       svgvalue.AspectRatio
		expected svgpath.Matrix2D
	}{
		{svgvalue.DefaultAspectRatio, svgpath.Identity.Translate(25, 0).Scale(5, 5)},
		{svgvalue.AspectRatio{Align: svgvalue.XMinYMin}, svgpath.Identity.Scale(5, 5)},
		{svgvalue.AspectRatio{Slice: true}, svgpath.Identity.Translate(0, -50).Scale(10, 10)},
		{svgvalue.AspectRatio{Align: svgvalue.AlignNone}, svgpath.Identity.Scale(10, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.ar.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, ViewBoxTransform(vb, tt.ar, 0, 0, 100, 100))
		})
	}

	m := ViewBoxTransform(svgvalue.ViewBox{X: -5, Y: -5, W: 10, H: 10}, svgvalue.DefaultAspectRatio, 0, 0, 20, 20)
	x, y := m.Transform(-5, -5)
	assert.Equal(t, 0., x)
	assert.Equal(t, 0., y)

	assert.Equal(t, svgpath.Identity, ViewBoxTransform(svgvalue.ViewBox{}, svgvalue.DefaultAspectRatio, 0, 0, 1, 1))
}

func TestSize(t *testing.T) {
	for _, tt := range []struct {
		src  string
		w, h float64
	}{
		{`<svg width="30" height="1in"/>`, 30, 96},
		{`<svg viewBox="0 0 40 10"/>`, 40, 10},
		{`<svg viewBox="0 0 40 10" width="50%"/>`, 20, 10},
		{`<svg><rect width="1" height="1"/></svg>`, 0, 0},
	} {
		tree, err := svgtree.ReadStream(strings.NewReader(tt.src), svgtree.Options{})
		require.NoError(t, err)
		w, h := Size(tree.Root)
		assert.Equal(t, tt.w, w, tt.src)
		assert.Equal(t, tt.h, h, tt.src)
	}
}

func TestDrawFillAndStroke(t *testing.T) {
	paints := render(t, `<svg viewBox="0 0 10 10">
		<rect x="1" y="2" width="3" height="4" fill="red" stroke="blue" stroke-width="0.5" fill-rule="evenodd"/>
	</svg>`, 20, 20)

	require.Len(t, paints, 2)
	fill, stroke := paints[0], paints[1]
	assert.False(t, fill.stroke)
	assert.Equal(t, []string{"M2,4", "L8,4", "L8,12", "L2,12", "Z"}, fill.ops)
	assert.Equal(t, PlainColor(color.NRGBA{R: 0xff, A: 0xff}), fill.color)
	assert.False(t, fill.winding)
	assert.Equal(t, 1., fill.opacity)

	assert.True(t, stroke.stroke)
	assert.Equal(t, fill.ops, stroke.ops)
	assert.Equal(t, PlainColor(color.NRGBA{B: 0xff, A: 0xff}), stroke.color)
	// the line width follows the scaling
	assert.Equal(t, fixed.Int26_6(64), stroke.options.LineWidth)
	assert.Equal(t, svgshape.Miter, stroke.options.Join.LineJoin)
	assert.Equal(t, fixed.Int26_6(4*64), stroke.options.Join.MiterLimit)
}

func TestDrawComposesTransformsAndOpacity(t *testing.T) {
	paints := render(t, `<svg>
		<defs><rect id="r" width="1" height="1"/></defs>
		<g transform="translate(10 0)" opacity="0.5">
			<use href="#r" x="1" y="1" transform="scale(2)" opacity="0.5" fill-opacity="0.5"/>
		</g>
	</svg>`, 100, 100)

	require.Len(t, paints, 1)
	// translate(10) . scale(2) . translate(1,1)
	assert.Equal(t, []string{"M12,2", "L14,2", "L14,4", "L12,4", "Z"}, paints[0].ops)
	assert.Equal(t, 0.125, paints[0].opacity)
}

func TestDrawSkipsHiddenAndNone(t *testing.T) {
	paints := render(t, `<svg>
		<rect width="1" height="1" display="none"/>
		<g visibility="hidden"><rect width="1" height="1"/></g>
		<rect width="1" height="1" fill="none"/>
		<rect width="1" height="1" fill="none" stroke="red" stroke-width="0"/>
		<circle r="1" fill="url(#missing)"/>
		<circle r="1" fill="url(#missing) green"/>
	</svg>`, 10, 10)

	require.Len(t, paints, 1)
	assert.Equal(t, PlainColor(color.NRGBA{G: 0x80, A: 0xff}), paints[0].color)
}

func TestDrawFragmentRoot(t *testing.T) {
	doc, err := svgdom.Parse(strings.NewReader(`<g><rect width="2" height="2" transform="translate(1 0)" opacity="0.5"/></g>`))
	require.NoError(t, err)

	shape, err := svgtree.ParseElement(doc.Root.Children[0], svgtree.Options{})
	require.NoError(t, err)
	require.Equal(t, svgtree.KindShape, shape.Root.Kind)
	var r recorder
	Draw(shape, &r, 10, 10)
	require.Len(t, r.paints, 1)
	assert.Equal(t, []string{"M1,0", "L3,0", "L3,2", "L1,2", "Z"}, r.paints[0].ops)
	assert.Equal(t, 0.5, r.paints[0].opacity)

	group, err := svgtree.ParseElement(doc.Root, svgtree.Options{})
	require.NoError(t, err)
	require.Equal(t, svgtree.KindGroup, group.Root.Kind)
	r = recorder{}
	Draw(group, &r, 10, 10)
	require.Len(t, r.paints, 1)
}

func TestDrawNestedViewport(t *testing.T) {
	paints := render(t, `<svg width="100" height="100">
		<svg width="50%" height="50" viewBox="0 0 5 5">
			<rect width="5" height="5"/>
		</svg>
	</svg>`, 200, 200)

	require.Len(t, paints, 1)
	// root: 100x100 scaled by 2, inner: 5x5 into 50x50
	assert.Equal(t, []string{"M0,0", "L100,0", "L100,100", "L0,100", "Z"}, paints[0].ops)
}

func TestDrawGradient(t *testing.T) {
	paints := render(t, `<svg>
		<linearGradient id="g" gradientUnits="userSpaceOnUse"><stop offset="0" stop-color="red"/></linearGradient>
		<rect width="1" height="1" fill="url(#g)" transform="translate(3 0)"/>
	</svg>`, 10, 10)

	require.Len(t, paints, 1)
	grad, ok := paints[0].color.(*Gradient)
	require.True(t, ok)
	assert.Equal(t, svgpath.Identity.Translate(3, 0), grad.Matrix)
}

func TestReadGradient(t *testing.T) {
	tree, err := svgtree.ReadStream(strings.NewReader(`<svg>
		<linearGradient id="base" x2="50%">
			<stop offset="0" stop-color="red"/>
			<stop offset="2" style="stop-color:blue;stop-opacity:.5"/>
		</linearGradient>
		<linearGradient id="derived" href="#base" gradientUnits="userSpaceOnUse" spreadMethod="reflect" gradientTransform="scale(2)"/>
		<radialGradient id="rad" cx="0.2" fr="10%"/>
		<linearGradient id="loop" href="#loop"/>
		<rect width="1" height="1"/>
	</svg>`), svgtree.Options{})
	require.NoError(t, err)

	grad, ok := ReadGradient(tree.Index, "derived")
	require.True(t, ok)
	assert.Equal(t, Linear{0, 0, 0.5, 0}, grad.Direction)
	assert.Equal(t, svgvalue.UserSpaceOnUse, grad.Units)
	assert.Equal(t, ReflectSpread, grad.Spread)
	assert.Equal(t, svgpath.Identity.Scale(2, 2), grad.Matrix)
	assert.Equal(t, []GradStop{
		{StopColor: color.NRGBA{R: 0xff, A: 0xff}, Offset: 0, Opacity: 1},
		{StopColor: color.NRGBA{B: 0xff, A: 0xff}, Offset: 1, Opacity: 0.5},
	}, grad.Stops)

	grad, ok = ReadGradient(tree.Index, "rad")
	require.True(t, ok)
	assert.Equal(t, Radial{0.2, 0.5, 0.2, 0.5, 0.5, 0.1}, grad.Direction)
	assert.Equal(t, svgvalue.ObjectBoundingBox, grad.Units)
	assert.Empty(t, grad.Stops)

	_, ok = ReadGradient(tree.Index, "loop")
	assert.True(t, ok)
	_, ok = ReadGradient(tree.Index, "missing")
	assert.False(t, ok)
}
