package svgvalue

import (
	"fmt"
	"strings"
)

// ViewBox is the user space rectangle mapped onto a viewport.
type ViewBox struct{ X, Y, W, H float64 }

// ParseViewBox parses "min-x min-y width height". It returns false
// when the value is malformed or has a negative size.
func ParseViewBox(s string) (ViewBox, bool) {
	points, err := ParseNumberList(s)
	if err != nil || len(points) != 4 {
		return ViewBox{}, false
	}
	if points[2] < 0 || points[3] < 0 {
		return ViewBox{}, false
	}
	return ViewBox{X: points[0], Y: points[1], W: points[2], H: points[3]}, true
}

// Align is the alignment part of preserveAspectRatio.
// The zero value is the SVG default, xMidYMid.
type Align uint8

const (
	XMidYMid Align = iota
	XMinYMin
	XMidYMin
	XMaxYMin
	XMinYMid
	XMaxYMid
	XMinYMax
	XMidYMax
	XMaxYMax
	AlignNone // non uniform scaling
)

var alignNames = [...]string{
	XMidYMid:  "xMidYMid",
	XMinYMin:  "xMinYMin",
	XMidYMin:  "xMidYMin",
	XMaxYMin:  "xMaxYMin",
	XMinYMid:  "xMinYMid",
	XMaxYMid:  "xMaxYMid",
	XMinYMax:  "xMinYMax",
	XMidYMax:  "xMidYMax",
	XMaxYMax:  "xMaxYMax",
	AlignNone: "none",
}

func (a Align) String() string {
	if int(a) < len(alignNames) {
		return alignNames[a]
	}
	return fmt.Sprintf("<unknown Align %d>", a)
}

// Factors returns the fraction of the free space placed
// before the content, on each axis (0, 0.5 or 1).
func (a Align) Factors() (fx, fy float64) {
	switch a {
	case XMinYMin:
		return 0, 0
	case XMidYMin:
		return 0.5, 0
	case XMaxYMin:
		return 1, 0
	case XMinYMid:
		return 0, 0.5
	case XMaxYMid:
		return 1, 0.5
	case XMinYMax:
		return 0, 1
	case XMidYMax:
		return 0.5, 1
	case XMaxYMax:
		return 1, 1
	default:
		return 0.5, 0.5
	}
}

// AspectRatio is a parsed preserveAspectRatio attribute.
// The zero value is "xMidYMid meet".
type AspectRatio struct {
	Align Align
	Slice bool // "slice" instead of "meet"
}

// DefaultAspectRatio applies when preserveAspectRatio is absent.
var DefaultAspectRatio = AspectRatio{Align: XMidYMid}

func (ar AspectRatio) String() string {
	if ar.Align == AlignNone {
		return "none"
	}
	if ar.Slice {
		return ar.Align.String() + " slice"
	}
	return ar.Align.String() + " meet"
}

// ParseAspectRatio parses "[defer] <align> [meet | slice]".
func ParseAspectRatio(s string) (AspectRatio, error) {
	fields := strings.Fields(s)
	if len(fields) > 0 && fields[0] == "defer" {
		fields = fields[1:]
	}
	if len(fields) == 0 || len(fields) > 2 {
		return DefaultAspectRatio, fmt.Errorf("svgvalue: bad preserveAspectRatio %q", s)
	}
	var out AspectRatio
	found := false
	for a, name := range alignNames {
		if name == fields[0] {
			out.Align, found = Align(a), true
			break
		}
	}
	if !found {
		return DefaultAspectRatio, fmt.Errorf("svgvalue: bad preserveAspectRatio %q", s)
	}
	if len(fields) == 2 {
		switch fields[1] {
		case "meet":
		case "slice":
			out.Slice = true
		default:
			return DefaultAspectRatio, fmt.Errorf("svgvalue: bad preserveAspectRatio %q", s)
		}
	}
	return out, nil
}
