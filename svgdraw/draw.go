// Given a parsed SVG tree, implements how to
// draw it on screen.
// This requires a driver implementing the actual draw operations,
// such as a rasterizer to output .png images.
package svgdraw

import (
	"math"

	"github.com/benoitkugler/svgtree/svgpath"
	"github.com/benoitkugler/svgtree/svgshape"
	"github.com/benoitkugler/svgtree/svgtree"
	"github.com/benoitkugler/svgtree/svgvalue"
	"golang.org/x/image/math/fixed"
)

// ViewBoxTransform returns the matrix mapping the view box vb
// onto the area (x, y, w, h), according to ar.
func ViewBoxTransform(vb svgvalue.ViewBox, ar svgvalue.AspectRatio, x, y, w, h float64) svgpath.Matrix2D {
	if vb.W <= 0 || vb.H <= 0 {
		return svgpath.Identity
	}
	sx, sy := w/vb.W, h/vb.H
	if ar.Align != svgvalue.AlignNone {
		if ar.Slice {
			sx = math.Max(sx, sy)
		} else {
			sx = math.Min(sx, sy)
		}
		sy = sx
	}
	fx, fy := ar.Align.Factors()
	if ar.Align == svgvalue.AlignNone {
		fx, fy = 0, 0
	}
	tx := x - vb.X*sx + (w-vb.W*sx)*fx
	ty := y - vb.Y*sy + (h-vb.H*sy)*fy
	return svgpath.Identity.Translate(tx, ty).Scale(sx, sy)
}

// Size returns the intrinsic size of the tree, read from the
// root viewport: absolute width and height, or else the view box size.
// It returns zeros if no size is defined.
func Size(root *svgtree.Node) (w, h float64) {
	vp := root.Viewport
	if vp == nil {
		return 0, 0
	}
	if vp.Width.Unit != svgvalue.UnitPercent {
		w = vp.Width.Resolve(0)
	} else if vp.ViewBox != nil {
		w = vp.ViewBox.W * vp.Width.Value / 100
	}
	if vp.Height.Unit != svgvalue.UnitPercent {
		h = vp.Height.Resolve(0)
	} else if vp.ViewBox != nil {
		h = vp.ViewBox.H * vp.Height.Value / 100
	}
	return w, h
}

// Draw renders the tree into the driver `d`, scaling its
// root viewport to fit the width x height area. Other roots
// are drawn without scaling.
// Clip paths are ignored.
func Draw(tree *svgtree.Tree, d Driver, width, height float64) {
	w := walker{driver: d, index: tree.Index, width: width, height: height}
	root := tree.Root

	vp := root.Viewport
	if root.Kind != svgtree.KindViewport || vp == nil {
		// a fragment, such as a lone shape, drawn in target coordinates
		w.drawNode(root, svgpath.Identity, 1)
		return
	}
	box := svgvalue.ViewBox{}
	if vp.ViewBox != nil {
		box = *vp.ViewBox
	} else {
		box.W, box.H = Size(root)
	}
	m := ViewBoxTransform(box, vp.AspectRatio, 0, 0, width, height)
	if box.W > 0 && box.H > 0 {
		w.width, w.height = box.W, box.H
	}
	w.drawChildren(root, root.Transform.Mult(m), root.Opacity)
}

type walker struct {
	driver        Driver
	index         svgtree.Index
	width, height float64 // of the current viewport, for percentages
}

// drawNode draws n, whose parent coordinates are mapped to the
// device by m.
func (w walker) drawNode(n *svgtree.Node, m svgpath.Matrix2D, opacity float64) {
	m = m.Mult(n.Transform)
	opacity *= n.Opacity
	switch n.Kind {
	case svgtree.KindShape:
		w.drawShape(n.Shape, m, opacity)
	case svgtree.KindViewport:
		vp := n.Viewport
		vw, vh := vp.Width.Resolve(w.width), vp.Height.Resolve(w.height)
		if vp.ViewBox != nil {
			m = m.Mult(ViewBoxTransform(*vp.ViewBox, vp.AspectRatio, 0, 0, vw, vh))
			vw, vh = vp.ViewBox.W, vp.ViewBox.H
		}
		w.width, w.height = vw, vh
		w.drawChildren(n, m, opacity)
	default:
		w.drawChildren(n, m, opacity)
	}
}

func (w walker) drawChildren(n *svgtree.Node, m svgpath.Matrix2D, opacity float64) {
	for _, child := range n.Children {
		w.drawNode(child, m, opacity)
	}
}

// resolvePaint returns nil if nothing should be painted
func (w walker) resolvePaint(p svgshape.Paint, m svgpath.Matrix2D) Pattern {
	switch p.Kind {
	case svgshape.PaintColor:
		return PlainColor(p.Color)
	case svgshape.PaintRef:
		if grad, ok := ReadGradient(w.index, p.Ref); ok && len(grad.Stops) > 0 {
			if grad.Units == svgvalue.UserSpaceOnUse {
				grad.Matrix = m.Mult(grad.Matrix)
			}
			return grad
		}
		if p.Color.A != 0 { // fallback
			return PlainColor(p.Color)
		}
	}
	return nil
}

// drawShape draws the shape into the driver while applying transform m.
func (w walker) drawShape(s *svgshape.Shape, m svgpath.Matrix2D, opacity float64) {
	if s.Hidden || len(s.Path) == 0 {
		return
	}
	fill := w.resolvePaint(s.Fill, m)
	var stroke Pattern
	if s.StrokeWidth > 0 {
		stroke = w.resolvePaint(s.Stroke, m)
	}

	filler, stroker := w.driver.SetupDrawers(fill != nil, stroke != nil)
	if filler != nil { // nil color disable filling
		filler.Clear()
		filler.SetWinding(s.FillRule == svgshape.NonZero)
		drawPath(filler, s.Path, m)
		filler.Stop(false)

		filler.SetColor(fill, s.FillOpacity*opacity)
		filler.Draw()
		filler.SetWinding(true) // default is true
	}

	if stroker != nil { // nil color disable lining
		stroker.Clear()
		scale := math.Sqrt(math.Abs(m.A*m.D - m.B*m.C))
		var dash []float64
		if len(s.Dash) > 0 {
			dash = make([]float64, len(s.Dash))
			for i, d := range s.Dash {
				dash[i] = d * scale
			}
		}
		stroker.SetStrokeOptions(StrokeOptions{
			LineWidth: fToFixed(s.StrokeWidth * scale),
			Join: JoinOptions{
				MiterLimit: fToFixed(s.MiterLimit),
				LineJoin:   s.LineJoin,
				LineCap:    s.LineCap,
			},
			Dash: DashOptions{Dash: dash, DashOffset: s.DashOffset * scale},
		})
		drawPath(stroker, s.Path, m)
		stroker.Stop(false)

		stroker.SetColor(stroke, s.StrokeOpacity*opacity)
		stroker.Draw()
	}
}

func toFixed(m svgpath.Matrix2D, p svgpath.Point) fixed.Point26_6 {
	x, y := m.Transform(p.X, p.Y)
	return fixed.Point26_6{X: fToFixed(x), Y: fToFixed(y)}
}

// drawPath sends the path to d, after applying the transform m.
func drawPath(d Drawer, p svgpath.Path, m svgpath.Matrix2D) {
	for _, op := range p {
		switch op := op.(type) {
		case svgpath.MoveTo:
			d.Stop(false) // implicit close if currently in path.
			d.Start(toFixed(m, svgpath.Point(op)))
		case svgpath.LineTo:
			d.Line(toFixed(m, svgpath.Point(op)))
		case svgpath.QuadTo:
			d.QuadBezier(toFixed(m, op[0]), toFixed(m, op[1]))
		case svgpath.CubicTo:
			d.CubeBezier(toFixed(m, op[0]), toFixed(m, op[1]), toFixed(m, op[2]))
		case svgpath.Close:
			d.Stop(true)
		}
	}
}
