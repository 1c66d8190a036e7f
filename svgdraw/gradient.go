package svgdraw

import (
	"image/color"
	"strings"

	"github.com/benoitkugler/svgtree/svgdom"
	"github.com/benoitkugler/svgtree/svgpath"
	"github.com/benoitkugler/svgtree/svgstyle"
	"github.com/benoitkugler/svgtree/svgtree"
	"github.com/benoitkugler/svgtree/svgvalue"
)

// gradientChain lists the gradient element with the given id,
// followed by the gradients it inherits from through href.
func gradientChain(index svgtree.Index, id string) []*svgdom.Element {
	var chain []*svgdom.Element
	for {
		el, ok := index.Lookup(id)
		if !ok || (el.Name != "linearGradient" && el.Name != "radialGradient") {
			return chain
		}
		for _, seen := range chain {
			if seen == el {
				return chain
			}
		}
		chain = append(chain, el)
		href, ok := el.Href()
		if !ok {
			return chain
		}
		id = svgvalue.ParseIRI(href)
	}
}

// chainAttr returns the first definition of attr along the chain.
func chainAttr(chain []*svgdom.Element, attr string) (string, bool) {
	for _, el := range chain {
		if v, ok := el.Attr(attr); ok {
			return v, true
		}
	}
	return "", false
}

// readFraction parses a number or a percentage
func readFraction(v string) (float64, bool) {
	v = strings.TrimSpace(v)
	d := 1.
	if strings.HasSuffix(v, "%") {
		d = 100
		v = strings.TrimSuffix(v, "%")
	}
	f, err := svgvalue.ParseNumber(v)
	if err != nil {
		return 0, false
	}
	return f / d, true
}

// ReadGradient resolves the gradient with the given id, following
// href links to inherit missing attributes and stops.
// The returned Matrix is the gradientTransform only.
func ReadGradient(index svgtree.Index, id string) (*Gradient, bool) {
	chain := gradientChain(index, id)
	if len(chain) == 0 {
		return nil, false
	}
	fraction := func(attr string, def float64) float64 {
		if v, ok := chainAttr(chain, attr); ok {
			if f, ok := readFraction(v); ok {
				return f
			}
		}
		return def
	}

	grad := &Gradient{Matrix: svgpath.Identity}
	if chain[0].Name == "linearGradient" {
		grad.Direction = Linear{
			fraction("x1", 0), fraction("y1", 0),
			fraction("x2", 1), fraction("y2", 0),
		}
	} else {
		cx, cy := fraction("cx", 0.5), fraction("cy", 0.5)
		grad.Direction = Radial{
			cx, cy,
			fraction("fx", cx), fraction("fy", cy),
			fraction("r", 0.5), fraction("fr", 0),
		}
	}
	if v, ok := chainAttr(chain, "gradientUnits"); ok {
		grad.Units = svgvalue.ParseUnits(v)
	}
	if v, ok := chainAttr(chain, "spreadMethod"); ok {
		grad.Spread = parseSpreadMethod(v)
	}
	if v, ok := chainAttr(chain, "gradientTransform"); ok {
		grad.Matrix, _ = svgvalue.ParseTransform(v) // identity on error
	}
	for _, el := range chain {
		if grad.Stops = readStops(el); len(grad.Stops) > 0 {
			break
		}
	}
	return grad, true
}

func readStops(el *svgdom.Element) []GradStop {
	var (
		stops []GradStop
		last  float64
	)
	for _, child := range el.Children {
		if child.Name != "stop" {
			continue
		}
		stop := GradStop{StopColor: color.NRGBA{A: 0xff}, Opacity: 1}
		style, attrs := svgstyle.Split(child.Attrs)
		for _, attr := range attrs {
			if attr.Name == "offset" {
				stop.Offset, _ = readFraction(attr.Value)
			}
		}
		if v, ok := style.Get(svgstyle.StopColor); ok {
			if c, err := svgvalue.ParseColor(v); err == nil {
				stop.StopColor = c
			}
		}
		if v, ok := style.Get(svgstyle.StopOpacity); ok {
			stop.Opacity, _ = svgvalue.ParseOpacity(v)
		}
		// offsets are clamped and never decrease
		if stop.Offset < last {
			stop.Offset = last
		} else if stop.Offset > 1 {
			stop.Offset = 1
		}
		last = stop.Offset
		stops = append(stops, stop)
	}
	return stops
}
