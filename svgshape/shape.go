// Package svgshape builds the drawable leaves of an SVG tree:
// basic shapes and paths, reduced to a path and the resolved
// paint and stroke settings.
package svgshape

import (
	"errors"
	"fmt"
	"image/color"
	"strings"

	"github.com/benoitkugler/svgtree/svgdom"
	"github.com/benoitkugler/svgtree/svgpath"
	"github.com/benoitkugler/svgtree/svgstyle"
	"github.com/benoitkugler/svgtree/svgvalue"
)

// ErrUnsupported is returned for tags which are not drawable leaves.
var ErrUnsupported = errors.New("svgshape: unsupported element")

// AttrError reports a malformed attribute, replaced by its default value.
type AttrError struct {
	Name, Value string
	Err         error
}

func (e *AttrError) Error() string {
	return fmt.Sprintf("svgshape: invalid %s=%q: %v", e.Name, e.Value, e.Err)
}

func (e *AttrError) Unwrap() error { return e.Err }

// Shape is a drawable leaf.
type Shape struct {
	Tag  string
	Path svgpath.Path // in the user space of the element

	Fill        Paint
	FillOpacity float64
	FillRule    FillRule

	Stroke        Paint
	StrokeOpacity float64
	StrokeWidth   float64
	LineCap       CapMode
	LineJoin      JoinMode
	MiterLimit    float64
	Dash          []float64 // nil for a solid line
	DashOffset    float64

	// Hidden is set by display:none and visibility:hidden.
	Hidden bool
}

// DefaultShape holds the values of unspecified properties:
// black fill, nonzero rule, no stroke, 1 unit wide miter joins and butt caps.
var DefaultShape = Shape{
	Fill:          Paint{Kind: PaintColor, Color: color.NRGBA{A: 0xff}},
	FillOpacity:   1,
	StrokeOpacity: 1,
	StrokeWidth:   1,
	LineJoin:      Miter,
	LineCap:       ButtCap,
	MiterLimit:    4,
}

type geometryFunc func(r *attrReader, p *svgpath.Path, attrs []svgdom.Attr)

var geometries = map[string]geometryFunc{
	"rect":     rectF,
	"circle":   circleF,
	"ellipse":  circleF, // circleF handles ellipse also
	"line":     lineF,
	"polyline": polylineF,
	"polygon":  polygonF,
	"path":     pathF,
}

// IsShape returns true if tag is a drawable leaf.
func IsShape(tag string) bool {
	_, ok := geometries[tag]
	return ok
}

// Build returns the shape described by the element tag, its
// (non presentation) attributes and its resolved style.
// Unsupported tags return a nil shape and an error wrapping ErrUnsupported.
// Malformed attributes fall back to their default: the shape is still
// returned, with an error joining one *AttrError per bad attribute.
func Build(tag string, attrs []svgdom.Attr, style svgstyle.Set) (*Shape, error) {
	geometry, ok := geometries[tag]
	if !ok {
		return nil, fmt.Errorf("%w: <%s>", ErrUnsupported, tag)
	}
	var r attrReader
	shape := DefaultShape
	shape.Tag = tag
	geometry(&r, &shape.Path, attrs)
	shape.applyStyle(&r, &style)
	return &shape, errors.Join(r.errs...)
}

// attrReader accumulates the attribute errors
type attrReader struct {
	errs []error
}

func (r *attrReader) fail(name, value string, err error) {
	r.errs = append(r.errs, &AttrError{Name: name, Value: value, Err: err})
}

// length returns the attribute in user units, or 0 if malformed.
// Percentages have no reference at this level and resolve to 0.
func (r *attrReader) length(attr svgdom.Attr) float64 {
	l, err := svgvalue.ParseLength(attr.Value)
	if err != nil {
		r.fail(attr.Name, attr.Value, err)
		return 0
	}
	return l.Resolve(0)
}

func (r *attrReader) positive(attr svgdom.Attr) float64 {
	v := r.length(attr)
	if v < 0 {
		r.fail(attr.Name, attr.Value, errors.New("negative value"))
		return 0
	}
	return v
}

func rectF(r *attrReader, p *svgpath.Path, attrs []svgdom.Attr) {
	var x, y, w, h, rx, ry float64
	var hasRx, hasRy bool
	for _, attr := range attrs {
		switch attr.Name {
		case "x":
			x = r.length(attr)
		case "y":
			y = r.length(attr)
		case "width":
			w = r.positive(attr)
		case "height":
			h = r.positive(attr)
		case "rx":
			rx, hasRx = r.positive(attr), true
		case "ry":
			ry, hasRy = r.positive(attr), true
		}
	}
	if w == 0 || h == 0 { // not drawn, but not an error
		return
	}
	if hasRx && !hasRy {
		ry = rx
	} else if hasRy && !hasRx {
		rx = ry
	}
	p.AddRoundRect(x, y, x+w, y+h, rx, ry)
}

func circleF(r *attrReader, p *svgpath.Path, attrs []svgdom.Attr) {
	var cx, cy, rx, ry float64
	for _, attr := range attrs {
		switch attr.Name {
		case "cx":
			cx = r.length(attr)
		case "cy":
			cy = r.length(attr)
		case "r":
			rx = r.positive(attr)
			ry = rx
		case "rx":
			rx = r.positive(attr)
		case "ry":
			ry = r.positive(attr)
		}
	}
	if rx == 0 || ry == 0 { // not drawn, but not an error
		return
	}
	p.AddEllipse(cx, cy, rx, ry)
}

func lineF(r *attrReader, p *svgpath.Path, attrs []svgdom.Attr) {
	var x1, x2, y1, y2 float64
	for _, attr := range attrs {
		switch attr.Name {
		case "x1":
			x1 = r.length(attr)
		case "x2":
			x2 = r.length(attr)
		case "y1":
			y1 = r.length(attr)
		case "y2":
			y2 = r.length(attr)
		}
	}
	p.Start(svgpath.Point{X: x1, Y: y1})
	p.Line(svgpath.Point{X: x2, Y: y2})
	p.Stop(false)
}

// readPoints returns the number of points added to p.
func readPoints(r *attrReader, p *svgpath.Path, attrs []svgdom.Attr) int {
	var points []float64
	for _, attr := range attrs {
		if attr.Name != "points" {
			continue
		}
		var err error
		points, err = svgvalue.ParseNumberList(attr.Value)
		if err != nil {
			r.fail(attr.Name, attr.Value, err)
			return 0
		}
		if len(points)%2 != 0 {
			r.fail(attr.Name, attr.Value, errors.New("odd number of coordinates"))
			points = points[:len(points)-1]
		}
	}
	if len(points) < 4 {
		return 0
	}
	p.Start(svgpath.Point{X: points[0], Y: points[1]})
	for i := 2; i < len(points)-1; i += 2 {
		p.Line(svgpath.Point{X: points[i], Y: points[i+1]})
	}
	return len(points) / 2
}

func polylineF(r *attrReader, p *svgpath.Path, attrs []svgdom.Attr) {
	if readPoints(r, p, attrs) > 0 {
		p.Stop(false)
	}
}

func polygonF(r *attrReader, p *svgpath.Path, attrs []svgdom.Attr) {
	if readPoints(r, p, attrs) > 0 {
		p.Stop(true)
	}
}

func pathF(r *attrReader, p *svgpath.Path, attrs []svgdom.Attr) {
	for _, attr := range attrs {
		if attr.Name != "d" {
			continue
		}
		// the path is rendered up to the first error
		path, err := svgpath.ParseData(attr.Value)
		if err != nil {
			r.fail(attr.Name, attr.Value, err)
		}
		*p = path
	}
}

// applyStyle resolves the presentation properties of the shape.
func (s *Shape) applyStyle(r *attrReader, style *svgstyle.Set) {
	current := color.NRGBA{A: 0xff}
	if v, ok := style.Get(svgstyle.Color); ok {
		c, err := svgvalue.ParseColor(v)
		if err != nil {
			r.fail(svgstyle.Color.String(), v, err)
		} else {
			current = c
		}
	}

	style.Each(func(p svgstyle.Property, v string) {
		var err error
		switch p {
		case svgstyle.Fill:
			var paint Paint
			if paint, err = parsePaint(v, current); err == nil {
				s.Fill = paint
			}
		case svgstyle.Stroke:
			var paint Paint
			if paint, err = parsePaint(v, current); err == nil {
				s.Stroke = paint
			}
		case svgstyle.FillOpacity:
			s.FillOpacity, err = svgvalue.ParseOpacity(v)
		case svgstyle.StrokeOpacity:
			s.StrokeOpacity, err = svgvalue.ParseOpacity(v)
		case svgstyle.FillRule:
			switch v {
			case "nonzero":
				s.FillRule = NonZero
			case "evenodd":
				s.FillRule = EvenOdd
			default:
				err = errors.New("unknown fill rule")
			}
		case svgstyle.StrokeWidth:
			var l svgvalue.Length
			if l, err = svgvalue.ParseLength(v); err == nil {
				if w := l.Resolve(0); w >= 0 {
					s.StrokeWidth = w
				} else {
					err = errors.New("negative value")
				}
			}
		case svgstyle.StrokeLinecap:
			var ok bool
			if s.LineCap, ok = parseCapMode(v); !ok {
				err = errors.New("unknown line cap")
			}
		case svgstyle.StrokeLinejoin:
			var ok bool
			if s.LineJoin, ok = parseJoinMode(v); !ok {
				err = errors.New("unknown line join")
			}
		case svgstyle.StrokeMiterlimit:
			var limit float64
			if limit, err = svgvalue.ParseNumber(v); err == nil {
				if limit >= 1 {
					s.MiterLimit = limit
				} else {
					err = errors.New("miter limit below 1")
				}
			}
		case svgstyle.StrokeDasharray:
			s.Dash, err = parseDashArray(v)
		case svgstyle.StrokeDashoffset:
			var l svgvalue.Length
			if l, err = svgvalue.ParseLength(v); err == nil {
				s.DashOffset = l.Resolve(0)
			}
		case svgstyle.Display:
			s.Hidden = s.Hidden || v == "none"
		case svgstyle.Visibility:
			s.Hidden = s.Hidden || v == "hidden" || v == "collapse"
		}
		if err != nil {
			r.fail(p.String(), v, err)
		}
	})
}

// parseDashArray returns nil for a solid line. An odd list is
// repeated to yield an even number of values.
func parseDashArray(v string) ([]float64, error) {
	if v == "none" {
		return nil, nil
	}
	fields := strings.FieldsFunc(v, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	var (
		dashes []float64
		sum    float64
	)
	for _, field := range fields {
		l, err := svgvalue.ParseLength(field)
		if err != nil {
			return nil, err
		}
		d := l.Resolve(0)
		if d < 0 {
			return nil, errors.New("negative dash")
		}
		dashes = append(dashes, d)
		sum += d
	}
	if sum == 0 {
		return nil, nil
	}
	if len(dashes)%2 != 0 {
		dashes = append(dashes, dashes...)
	}
	return dashes, nil
}
