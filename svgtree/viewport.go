package svgtree

import (
	"errors"

	"github.com/benoitkugler/svgtree/svgdom"
	"github.com/benoitkugler/svgtree/svgvalue"
)

var errBadViewBox = errors.New("expected 4 numbers with non negative sizes")

// detectViewport returns the viewport defined by attrs, if any of
// width, height or viewBox is present. Malformed values are replaced
// by their default and passed to report.
func detectViewport(attrs []svgdom.Attr, report func(attr svgdom.Attr, err error)) (*Viewport, bool) {
	var (
		width, height, viewBox, aspect *svgdom.Attr
	)
	for i := range attrs {
		attr := &attrs[i]
		if attr.Space != "" {
			continue
		}
		switch attr.Name {
		case "width":
			width = attr
		case "height":
			height = attr
		case "viewBox":
			viewBox = attr
		case "preserveAspectRatio":
			aspect = attr
		}
	}
	if width == nil && height == nil && viewBox == nil {
		return nil, false
	}

	vp := &Viewport{
		Width:       svgvalue.FullLength,
		Height:      svgvalue.FullLength,
		AspectRatio: svgvalue.DefaultAspectRatio,
	}
	length := func(attr *svgdom.Attr) svgvalue.Length {
		l, err := svgvalue.ParseLength(attr.Value)
		if err == nil && l.Value < 0 {
			err = errors.New("negative length")
		}
		if err != nil {
			report(*attr, err)
			return svgvalue.FullLength
		}
		return l
	}
	if width != nil {
		vp.Width = length(width)
	}
	if height != nil {
		vp.Height = length(height)
	}
	if viewBox != nil {
		if vb, ok := svgvalue.ParseViewBox(viewBox.Value); ok {
			vp.ViewBox = &vb
		} else {
			report(*viewBox, errBadViewBox)
		}
	}
	if aspect != nil {
		ar, err := svgvalue.ParseAspectRatio(aspect.Value)
		if err != nil {
			report(*aspect, err)
		}
		vp.AspectRatio = ar
	}
	return vp, true
}
