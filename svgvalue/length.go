package svgvalue

import (
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2"
)

// Unit is the unit of a Length.
type Unit uint8

const (
	UnitNone Unit = iota // user units
	UnitPx
	UnitPercent
	UnitEm
	UnitEx
	UnitPt
	UnitPc
	UnitMm
	UnitCm
	UnitIn
	UnitQ
)

var unitNames = [...]string{
	UnitNone:    "",
	UnitPx:      "px",
	UnitPercent: "%",
	UnitEm:      "em",
	UnitEx:      "ex",
	UnitPt:      "pt",
	UnitPc:      "pc",
	UnitMm:      "mm",
	UnitCm:      "cm",
	UnitIn:      "in",
	UnitQ:       "q",
}

func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return fmt.Sprintf("<unknown Unit %d>", u)
}

// Length is a number followed by an optional unit.
type Length struct {
	Value float64
	Unit  Unit
}

// Percent returns v%.
func Percent(v float64) Length { return Length{Value: v, Unit: UnitPercent} }

// FullLength is 100%, the default size of viewports.
var FullLength = Percent(100)

func (l Length) String() string {
	return fmt.Sprintf("%g%s", l.Value, l.Unit)
}

// ParseLength parses a length such as "12", "4.5mm" or "100%".
func ParseLength(s string) (Length, error) {
	b := []byte(strings.TrimSpace(s))
	num, dim := parse.Dimension(b)
	if num == 0 || num+dim != len(b) {
		return Length{}, fmt.Errorf("svgvalue: bad length %q", s)
	}
	value, err := ParseNumber(string(b[:num]))
	if err != nil {
		return Length{}, err
	}
	unit := strings.ToLower(string(b[num:]))
	for u, name := range unitNames {
		if name == unit {
			return Length{Value: value, Unit: Unit(u)}, nil
		}
	}
	return Length{}, fmt.Errorf("svgvalue: unknown unit %q", unit)
}

// font size used to resolve em and ex
const defaultFontSize = 16.

// Resolve converts the length to user units (96 per inch).
// Percentages are taken relative to ref.
func (l Length) Resolve(ref float64) float64 {
	switch l.Unit {
	case UnitPercent:
		return l.Value * ref / 100
	case UnitEm:
		return l.Value * defaultFontSize
	case UnitEx:
		return l.Value * defaultFontSize / 2
	case UnitPt:
		return l.Value * 96 / 72
	case UnitPc:
		return l.Value * 96 / 6
	case UnitMm:
		return l.Value * 96 / 25.4
	case UnitCm:
		return l.Value * 10 * 96 / 25.4
	case UnitIn:
		return l.Value * 96
	case UnitQ:
		return l.Value * 0.25 * 96 / 25.4
	default:
		return l.Value
	}
}
