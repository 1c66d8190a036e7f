package svgtree

import (
	"fmt"
	"log/slog"

	"github.com/benoitkugler/svgtree/svgdom"
	"github.com/benoitkugler/svgtree/svgshape"
	"github.com/benoitkugler/svgtree/svgstyle"
)

// ErrorMode is the for setting how the parser reacts to unparsed elements
type ErrorMode uint8

const (
	// IgnoreErrorMode only records issues in the Tree
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode also logs them
	WarnErrorMode
	// StrictErrorMode aborts on the first issue
	StrictErrorMode
)

func (m ErrorMode) String() string {
	switch m {
	case IgnoreErrorMode:
		return "ignore"
	case WarnErrorMode:
		return "warn"
	case StrictErrorMode:
		return "strict"
	default:
		return fmt.Sprintf("<unknown ErrorMode %d>", m)
	}
}

// ParseErrorMode is the inverse of ErrorMode.String.
func ParseErrorMode(s string) (ErrorMode, error) {
	for _, m := range [...]ErrorMode{IgnoreErrorMode, WarnErrorMode, StrictErrorMode} {
		if m.String() == s {
			return m, nil
		}
	}
	return 0, fmt.Errorf("svgtree: unknown error mode %q", s)
}

// ShapeBuilder turns a leaf element into a shape. It returns a nil
// shape for unsupported tags, and may return a shape along with an error
// for malformed attributes.
type ShapeBuilder interface {
	BuildShape(tag string, attrs []svgdom.Attr, style svgstyle.Set) (*svgshape.Shape, error)
}

// ShapeBuilderFunc adapts a function to the ShapeBuilder interface.
type ShapeBuilderFunc func(tag string, attrs []svgdom.Attr, style svgstyle.Set) (*svgshape.Shape, error)

func (f ShapeBuilderFunc) BuildShape(tag string, attrs []svgdom.Attr, style svgstyle.Set) (*svgshape.Shape, error) {
	return f(tag, attrs, style)
}

// Options configures a parse. The zero value is ready to use.
type Options struct {
	ErrorMode ErrorMode
	// Logger receives the issues in WarnErrorMode.
	// It defaults to slog.Default().
	Logger *slog.Logger
	// Shapes defaults to svgshape.Build.
	Shapes ShapeBuilder
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}

func (o Options) shapes() ShapeBuilder {
	if o.Shapes != nil {
		return o.Shapes
	}
	return ShapeBuilderFunc(svgshape.Build)
}
