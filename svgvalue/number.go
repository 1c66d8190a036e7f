// Package svgvalue parses the primitive attribute values
// of SVG documents: numbers, lengths, colors, transforms,
// view boxes, aspect ratios and references.
//
// Parsers return an error on malformed input; callers decide
// which default applies.
package svgvalue

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

var (
	errBadNumber     = errors.New("svgvalue: bad number")
	errParamMismatch = errors.New("svgvalue: param mismatch")
)

// ParseNumber parses a whole string as a number,
// surrounding white space excepted.
func ParseNumber(s string) (float64, error) {
	b := []byte(strings.TrimSpace(s))
	f, n := strconv.ParseFloat(b)
	if n == 0 || n != len(b) {
		return 0, fmt.Errorf("%w: %q", errBadNumber, s)
	}
	return f, nil
}

// splitOnCommaOrSpace returns a list of strings after splitting the input on comma and white space delimiters
func splitOnCommaOrSpace(s string) []string {
	return strings.FieldsFunc(s,
		func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
		})
}

// ParseNumberList parses numbers separated by commas and/or white space.
func ParseNumberList(s string) ([]float64, error) {
	fields := splitOnCommaOrSpace(s)
	out := make([]float64, len(fields))
	for i, field := range fields {
		f, err := ParseNumber(field)
		if err != nil {
			return nil, err
		}
		out[i] = f
	}
	return out, nil
}

// ParseOpacity parses a number or a percentage, clamped to [0, 1].
func ParseOpacity(s string) (float64, error) {
	s = strings.TrimSpace(s)
	d := 1.
	if strings.HasSuffix(s, "%") {
		d = 100
		s = strings.TrimSuffix(s, "%")
	}
	f, err := ParseNumber(s)
	if err != nil {
		return 1, err
	}
	f /= d
	if f < 0 {
		f = 0
	} else if f > 1 {
		f = 1
	}
	return f, nil
}
