package svgshape

// JoinMode type to specify how segments join.
type JoinMode uint8

// JoinMode constants determine how stroke segments bridge the gap at a join.
// Arc and MiterClip are new in SVG2.
const (
	Miter JoinMode = iota
	Round
	Bevel
	Arc
	MiterClip
)

func (s JoinMode) String() string {
	switch s {
	case Round:
		return "Round"
	case Bevel:
		return "Bevel"
	case Miter:
		return "Miter"
	case MiterClip:
		return "MiterClip"
	case Arc:
		return "Arc"
	default:
		return "<unknown JoinMode>"
	}
}

func parseJoinMode(v string) (JoinMode, bool) {
	switch v {
	case "miter":
		return Miter, true
	case "miter-clip":
		return MiterClip, true
	case "round":
		return Round, true
	case "arc":
		return Arc, true
	case "bevel":
		return Bevel, true
	}
	return Miter, false
}

// CapMode defines how to draw caps on the ends of lines
type CapMode uint8

const (
	ButtCap CapMode = iota // default value
	SquareCap
	RoundCap
)

func (c CapMode) String() string {
	switch c {
	case ButtCap:
		return "ButtCap"
	case SquareCap:
		return "SquareCap"
	case RoundCap:
		return "RoundCap"
	default:
		return "<unknown CapMode>"
	}
}

func parseCapMode(v string) (CapMode, bool) {
	switch v {
	case "butt":
		return ButtCap, true
	case "round":
		return RoundCap, true
	case "square":
		return SquareCap, true
	}
	return ButtCap, false
}

// FillRule selects the inside of a self intersecting path.
type FillRule uint8

const (
	NonZero FillRule = iota
	EvenOdd
)

func (f FillRule) String() string {
	if f == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}
