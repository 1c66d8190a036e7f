package svgtree

import (
	"errors"
	"log/slog"

	"github.com/benoitkugler/svgtree/svgdom"
	"github.com/benoitkugler/svgtree/svgpath"
	"github.com/benoitkugler/svgtree/svgshape"
	"github.com/benoitkugler/svgtree/svgstyle"
	"github.com/benoitkugler/svgtree/svgvalue"
)

// definition-only elements, omitted unless reached through a reference
var definitionTags = map[string]bool{
	"defs":           true,
	"clipPath":       true,
	"symbol":         true,
	"linearGradient": true,
	"radialGradient": true,
	"pattern":        true,
	"mask":           true,
	"marker":         true,
	"filter":         true,
}

// containers, whose children are built recursively
var groupTags = map[string]bool{
	"svg":      true,
	"g":        true,
	"a":        true,
	"switch":   true,
	"symbol":   true,
	"clipPath": true,
	"defs":     true,
	"mask":     true,
	"marker":   true,
	"pattern":  true,
}

// elements without rendering, silently skipped
var descriptiveTags = map[string]bool{
	"title":    true,
	"desc":     true,
	"metadata": true,
}

// builder holds the state of one parse.
type builder struct {
	index  Index
	opts   Options
	shapes ShapeBuilder

	styles svgstyle.Stack
	path   []*svgdom.Element // elements being built, outermost first

	issues []Issue
	err    error // first issue, in StrictErrorMode
}

func newBuilder(index Index, opts Options) *builder {
	return &builder{index: index, opts: opts, shapes: opts.shapes()}
}

func (b *builder) report(iss Issue) {
	b.issues = append(b.issues, iss)
	switch b.opts.ErrorMode {
	case WarnErrorMode:
		args := []any{slog.String("tag", iss.Tag), slog.Int("line", iss.Line)}
		if iss.Attr != "" {
			args = append(args, slog.String("attr", iss.Attr))
		}
		if iss.Ref != "" {
			args = append(args, slog.String("ref", iss.Ref))
		}
		if iss.Err != nil {
			args = append(args, slog.Any("error", iss.Err))
		}
		b.opts.logger().Warn("svgtree: "+iss.Kind.String(), args...)
	case StrictErrorMode:
		if b.err == nil {
			b.err = iss
		}
	}
}

func (b *builder) reportAttr(el *svgdom.Element, attr string, err error) {
	b.report(Issue{Kind: MalformedAttribute, Tag: el.Name, Line: el.Line, Attr: attr, Err: err})
}

func (b *builder) isVisiting(el *svgdom.Element) bool {
	for _, v := range b.path {
		if v == el {
			return true
		}
	}
	return false
}

// resolve returns the element referenced by id from el, reporting
// missing and cyclic references.
func (b *builder) resolve(el *svgdom.Element, attr, id string) (*svgdom.Element, bool) {
	target, ok := b.index.Lookup(id)
	if !ok {
		b.report(Issue{Kind: DanglingReference, Tag: el.Name, Line: el.Line, Attr: attr, Ref: id, Err: ErrDanglingReference})
		return nil, false
	}
	if b.isVisiting(target) {
		cycle := &CycleError{ID: id}
		for _, v := range b.path {
			cycle.Path = append(cycle.Path, describe(v))
		}
		b.report(Issue{Kind: CyclicReference, Tag: el.Name, Line: el.Line, Attr: attr, Ref: id, Err: cycle})
		return nil, false
	}
	return target, true
}

func describe(el *svgdom.Element) string {
	if id, ok := el.ID(); ok {
		return el.Name + "#" + id
	}
	return el.Name
}

// build returns the node for el, or false if el yields nothing.
// Definition-only elements are skipped when suppressDefs is true.
func (b *builder) build(el *svgdom.Element, suppressDefs bool) (*Node, bool) {
	if b.err != nil {
		return nil, false
	}
	if suppressDefs && definitionTags[el.Name] {
		return nil, false
	}

	style, attrs := svgstyle.Split(el.Attrs)
	b.styles.Push(style)
	defer b.styles.Pop()
	b.path = append(b.path, el)
	defer func() { b.path = b.path[:len(b.path)-1] }()

	var node *Node
	switch {
	case groupTags[el.Name]:
		node = b.buildGroup(el, attrs, suppressDefs)
	case el.Name == "use":
		node = b.buildUse(el, attrs, suppressDefs)
	case descriptiveTags[el.Name]:
	default:
		node = b.buildShape(el, attrs)
	}
	if node == nil {
		return nil, false
	}
	b.enrich(node, el, attrs)
	return node, true
}

func (b *builder) buildGroup(el *svgdom.Element, attrs []svgdom.Attr, suppressDefs bool) *Node {
	node := newNode(KindGroup, el.Name)
	for _, child := range el.Children {
		if n, ok := b.build(child, suppressDefs); ok {
			node.Children = append(node.Children, n)
		}
	}
	vp, ok := detectViewport(attrs, func(attr svgdom.Attr, err error) {
		b.reportAttr(el, attr.Name, err)
	})
	if ok {
		node.Kind = KindViewport
		node.Viewport = vp
	}
	return node
}

func (b *builder) buildUse(el *svgdom.Element, attrs []svgdom.Attr, suppressDefs bool) *Node {
	href, _ := el.Href()
	id := svgvalue.ParseIRI(href)
	if id == "" {
		b.reportAttr(el, "href", errors.New("missing reference"))
		return nil
	}
	target, ok := b.resolve(el, "href", id)
	if !ok {
		return nil
	}
	node, ok := b.build(target, suppressDefs)
	if !ok {
		return nil
	}
	var x, y float64
	for _, attr := range attrs {
		if attr.Space != "" || (attr.Name != "x" && attr.Name != "y") {
			continue
		}
		l, err := svgvalue.ParseLength(attr.Value)
		if err != nil {
			b.reportAttr(el, attr.Name, err)
			continue
		}
		if attr.Name == "x" {
			x = l.Resolve(0)
		} else {
			y = l.Resolve(0)
		}
	}
	node.Transform = svgpath.Identity.Translate(x, y).Mult(node.Transform)
	return node
}

func (b *builder) buildShape(el *svgdom.Element, attrs []svgdom.Attr) *Node {
	shape, err := b.shapes.BuildShape(el.Name, attrs, b.styles.Current())
	if shape == nil {
		if err == nil {
			err = svgshape.ErrUnsupported
		}
		b.report(Issue{Kind: UnknownElement, Tag: el.Name, Line: el.Line, Err: err})
		return nil
	}
	if err != nil {
		var attrErr *svgshape.AttrError
		attr := ""
		if errors.As(err, &attrErr) {
			attr = attrErr.Name
		}
		b.reportAttr(el, attr, err)
	}
	node := newNode(KindShape, el.Name)
	node.Shape = shape
	return node
}

// enrich applies the attributes shared by every node kind. For <use>,
// node was already enriched by the target element: the transform of el
// is composed after the carried one and opacities multiply. When both
// elements are clipped, the target node is wrapped in a group holding
// the attributes of el.
func (b *builder) enrich(node *Node, el *svgdom.Element, attrs []svgdom.Attr) {
	style := b.styles.Top() // the presentation attributes of el only
	own := svgpath.Identity
	for _, attr := range attrs {
		if attr.Space != "" || attr.Name != "transform" {
			continue
		}
		m, err := svgvalue.ParseTransform(attr.Value)
		if err != nil {
			b.reportAttr(el, attr.Name, err)
		}
		own = m
	}

	opacity := 1.
	if v, ok := style.Get(svgstyle.Opacity); ok {
		var err error
		opacity, err = svgvalue.ParseOpacity(v)
		if err != nil {
			b.reportAttr(el, svgstyle.Opacity.String(), err)
		}
	}

	var clip *Clip
	if v, ok := style.Get(svgstyle.ClipPath); ok && v != "none" {
		clip, _ = b.buildClip(el, v)
	}

	if clip != nil && node.Clip != nil {
		inner := *node
		*node = *newNode(KindGroup, el.Name)
		node.Children = []*Node{&inner}
	}
	node.Transform = own.Mult(node.Transform)
	node.Opacity *= opacity
	if clip != nil {
		node.Clip = clip
	}
	if id, ok := el.ID(); ok {
		node.ID = id
	}
}

func (b *builder) buildClip(el *svgdom.Element, value string) (*Clip, bool) {
	attr := svgstyle.ClipPath.String()
	id, ok := svgvalue.ParseFuncIRI(value)
	if !ok {
		b.reportAttr(el, attr, errors.New("expected url(#id)"))
		return nil, false
	}
	target, ok := b.resolve(el, attr, id)
	if !ok {
		return nil, false
	}
	content, ok := b.build(target, false)
	if !ok {
		return nil, false
	}
	units, _ := target.Attr("clipPathUnits")
	return &Clip{Node: content, Units: svgvalue.ParseUnits(units)}, true
}
