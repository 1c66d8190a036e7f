package svgvalue

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor parses a CSS color: a keyword, #rgb, #rgba,
// #rrggbb, #rrggbbaa, rgb(...) or rgba(...).
func ParseColor(s string) (color.NRGBA, error) {
	v := strings.ToLower(strings.TrimSpace(s))
	switch {
	case v == "transparent":
		return color.NRGBA{}, nil
	case strings.HasPrefix(v, "#"):
		return parseHexColor(v[1:])
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		return parseRGBFunc(v[4:len(v)-1], 3)
	case strings.HasPrefix(v, "rgba(") && strings.HasSuffix(v, ")"):
		return parseRGBFunc(v[5:len(v)-1], 4)
	}
	if c, ok := colornames.Map[v]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	return color.NRGBA{}, fmt.Errorf("svgvalue: unknown color %q", s)
}

func parseHexColor(hex string) (color.NRGBA, error) {
	digits := make([]uint8, len(hex))
	for i := range hex {
		d, err := strconv.ParseUint(hex[i:i+1], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("svgvalue: bad hex color %q", hex)
		}
		digits[i] = uint8(d)
	}
	col := color.NRGBA{A: 0xff}
	switch len(digits) {
	case 3, 4:
		col.R, col.G, col.B = digits[0]*0x11, digits[1]*0x11, digits[2]*0x11
		if len(digits) == 4 {
			col.A = digits[3] * 0x11
		}
	case 6, 8:
		col.R, col.G, col.B = digits[0]<<4|digits[1], digits[2]<<4|digits[3], digits[4]<<4|digits[5]
		if len(digits) == 8 {
			col.A = digits[6]<<4 | digits[7]
		}
	default:
		return color.NRGBA{}, fmt.Errorf("svgvalue: bad hex color %q", hex)
	}
	return col, nil
}

func parseRGBFunc(args string, n int) (color.NRGBA, error) {
	comps := strings.Split(args, ",")
	if len(comps) != n {
		return color.NRGBA{}, fmt.Errorf("svgvalue: bad color function %q", args)
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		c, err := parseColorComponent(comps[i])
		if err != nil {
			return color.NRGBA{}, err
		}
		rgb[i] = c
	}
	col := color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}
	if n == 4 {
		alpha, err := ParseOpacity(comps[3])
		if err != nil {
			return color.NRGBA{}, err
		}
		col.A = uint8(alpha*0xff + 0.5)
	}
	return col, nil
}

func parseColorComponent(v string) (uint8, error) {
	v = strings.TrimSpace(v)
	percent := strings.HasSuffix(v, "%")
	f, err := ParseNumber(strings.TrimSuffix(v, "%"))
	if err != nil {
		return 0, err
	}
	if percent {
		f = f * 255 / 100
	}
	if f < 0 {
		f = 0
	} else if f > 255 {
		f = 255
	}
	return uint8(f + 0.5), nil
}
