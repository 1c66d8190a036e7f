package svgshape

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/benoitkugler/svgtree/svgvalue"
)

// PaintKind tags the variants of Paint.
type PaintKind uint8

const (
	PaintNone PaintKind = iota
	PaintColor
	PaintRef // a paint server, such as a gradient
)

func (k PaintKind) String() string {
	switch k {
	case PaintNone:
		return "none"
	case PaintColor:
		return "color"
	case PaintRef:
		return "ref"
	default:
		return fmt.Sprintf("<unknown PaintKind %d>", k)
	}
}

// Paint is the value of a fill or stroke property.
// currentColor is resolved when the shape is built.
type Paint struct {
	Kind  PaintKind
	Color color.NRGBA // for PaintColor, and the fallback of PaintRef
	Ref   string      // for PaintRef: the id of the paint server
}

// IsNone returns true if nothing should be painted.
func (p Paint) IsNone() bool { return p.Kind == PaintNone }

func (p Paint) String() string {
	switch p.Kind {
	case PaintColor:
		return fmt.Sprintf("rgba(%d,%d,%d,%d)", p.Color.R, p.Color.G, p.Color.B, p.Color.A)
	case PaintRef:
		return "url(#" + p.Ref + ")"
	default:
		return "none"
	}
}

// parsePaint reads v, using current for the currentColor keyword.
func parsePaint(v string, current color.NRGBA) (Paint, error) {
	v = strings.TrimSpace(v)
	switch v {
	case "none", "":
		return Paint{}, nil
	case "currentColor":
		return Paint{Kind: PaintColor, Color: current}, nil
	}
	if strings.HasPrefix(v, "url(") {
		end := strings.IndexByte(v, ')')
		if end == -1 {
			return Paint{}, fmt.Errorf("svgshape: unclosed paint reference %q", v)
		}
		id, ok := svgvalue.ParseFuncIRI(v[:end+1])
		if !ok {
			return Paint{}, fmt.Errorf("svgshape: invalid paint reference %q", v)
		}
		paint := Paint{Kind: PaintRef, Ref: id}
		if fallback := strings.TrimSpace(v[end+1:]); fallback != "" {
			fb, err := parsePaint(fallback, current)
			if err != nil {
				return paint, err
			}
			paint.Color = fb.Color
		}
		return paint, nil
	}
	c, err := svgvalue.ParseColor(v)
	if err != nil {
		return Paint{}, err
	}
	return Paint{Kind: PaintColor, Color: c}, nil
}
