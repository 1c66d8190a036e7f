// Package svgstyle implements the cascade of SVG presentation
// attributes: the closed set of recognized properties, the split of
// an element's attributes into style and geometry, and the stack
// mirroring the element nesting.
package svgstyle

import "fmt"

// Property is a recognized presentation attribute.
type Property uint8

const (
	ClipPath Property = iota
	ClipRule
	Color
	Display
	Fill
	FillOpacity
	FillRule
	Filter
	FontFamily
	FontSize
	FontStyle
	FontWeight
	MarkerEnd
	MarkerMid
	MarkerStart
	Mask
	Opacity
	StopColor
	StopOpacity
	Stroke
	StrokeDasharray
	StrokeDashoffset
	StrokeLinecap
	StrokeLinejoin
	StrokeMiterlimit
	StrokeOpacity
	StrokeWidth
	TextAnchor
	Visibility

	propertyCount
)

var propertyNames = [propertyCount]string{
	ClipPath:         "clip-path",
	ClipRule:         "clip-rule",
	Color:            "color",
	Display:          "display",
	Fill:             "fill",
	FillOpacity:      "fill-opacity",
	FillRule:         "fill-rule",
	Filter:           "filter",
	FontFamily:       "font-family",
	FontSize:         "font-size",
	FontStyle:        "font-style",
	FontWeight:       "font-weight",
	MarkerEnd:        "marker-end",
	MarkerMid:        "marker-mid",
	MarkerStart:      "marker-start",
	Mask:             "mask",
	Opacity:          "opacity",
	StopColor:        "stop-color",
	StopOpacity:      "stop-opacity",
	Stroke:           "stroke",
	StrokeDasharray:  "stroke-dasharray",
	StrokeDashoffset: "stroke-dashoffset",
	StrokeLinecap:    "stroke-linecap",
	StrokeLinejoin:   "stroke-linejoin",
	StrokeMiterlimit: "stroke-miterlimit",
	StrokeOpacity:    "stroke-opacity",
	StrokeWidth:      "stroke-width",
	TextAnchor:       "text-anchor",
	Visibility:       "visibility",
}

var propertyByName = func() map[string]Property {
	m := make(map[string]Property, propertyCount)
	for p, name := range propertyNames {
		m[name] = Property(p)
	}
	return m
}()

// Lookup returns the property spelled name.
func Lookup(name string) (Property, bool) {
	p, ok := propertyByName[name]
	return p, ok
}

func (p Property) String() string {
	if p < propertyCount {
		return propertyNames[p]
	}
	return fmt.Sprintf("<unknown Property %d>", p)
}

// Set holds at most one value per property.
// The zero value is an empty set, ready to use.
type Set struct {
	values  [propertyCount]string
	defined uint64
}

// Put defines p.
func (s *Set) Put(p Property, value string) {
	s.values[p] = value
	s.defined |= 1 << p
}

// Get returns the value of p, if defined.
func (s *Set) Get(p Property) (string, bool) {
	if s.defined&(1<<p) == 0 {
		return "", false
	}
	return s.values[p], true
}

// Len returns the number of defined properties.
func (s *Set) Len() int {
	n := 0
	for d := s.defined; d != 0; d &= d - 1 {
		n++
	}
	return n
}

// Each calls fn for the defined properties, in enumeration order.
func (s *Set) Each(fn func(p Property, value string)) {
	for p := Property(0); p < propertyCount; p++ {
		if s.defined&(1<<p) != 0 {
			fn(p, s.values[p])
		}
	}
}

// overlay returns s with the properties of top replacing its own.
func (s Set) overlay(top *Set) Set {
	top.Each(s.Put)
	return s
}
