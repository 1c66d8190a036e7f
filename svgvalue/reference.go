package svgvalue

import "strings"

// ParseIRI returns the id targeted by a local reference,
// such as the "#shape" of an href attribute. Only a leading '#'
// is stripped.
func ParseIRI(s string) string {
	return strings.TrimPrefix(strings.TrimSpace(s), "#")
}

// ParseFuncIRI returns the id of a functional reference
// such as url(#clip), url('#clip') or url("#clip").
func ParseFuncIRI(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "url(") || !strings.HasSuffix(s, ")") {
		return "", false
	}
	s = strings.TrimSpace(s[4 : len(s)-1])
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		s = s[1 : len(s)-1]
	}
	if len(s) < 2 || s[0] != '#' {
		return "", false
	}
	return s[1:], true
}

// Units is the coordinate system of clip paths, masks
// and paint servers.
type Units uint8

// SVG units constants
const (
	ObjectBoundingBox Units = iota
	UserSpaceOnUse
)

func (u Units) String() string {
	if u == UserSpaceOnUse {
		return "userSpaceOnUse"
	}
	return "objectBoundingBox"
}

// ParseUnits reads a clipPathUnits-like attribute. Anything
// but "userSpaceOnUse" gives the ObjectBoundingBox default.
func ParseUnits(s string) Units {
	if strings.TrimSpace(s) == "userSpaceOnUse" {
		return UserSpaceOnUse
	}
	return ObjectBoundingBox
}
