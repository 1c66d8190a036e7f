package svgvalue

import (
	"image/color"
	"math"
	"testing"

	"github.com/benoitkugler/svgtree/svgpath"
	"github.com/tdewolff/test"
)

func TestParseNumber(t *testing.T) {
	var tests = []struct {
		s        string
		expected float64
	}{
		{"1", 1},
		{" -2.5 ", -2.5},
		{".5", 0.5},
		{"1e2", 100},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			f, err := ParseNumber(tt.s)
			test.Error(t, err)
			test.Float(t, f, tt.expected)
		})
	}
	for _, s := range []string{"", "abc", "1px", "1 2"} {
		_, err := ParseNumber(s)
		test.That(t, err != nil, s)
	}

	list, err := ParseNumberList("1, 2 3\n4,5")
	test.Error(t, err)
	test.T(t, list, []float64{1, 2, 3, 4, 5})
}

func TestParseOpacity(t *testing.T) {
	var tests = []struct {
		s        string
		expected float64
	}{
		{"0.5", 0.5},
		{"50%", 0.5},
		{"2", 1},
		{"-1", 0},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			f, err := ParseOpacity(tt.s)
			test.Error(t, err)
			test.Float(t, f, tt.expected)
		})
	}
	f, err := ParseOpacity("half")
	test.That(t, err != nil)
	test.Float(t, f, 1)
}

func TestParseLength(t *testing.T) {
	var tests = []struct {
		s        string
		expected Length
	}{
		{"100", Length{100, UnitNone}},
		{"50%", Percent(50)},
		{"2.5mm", Length{2.5, UnitMm}},
		{"3PX", Length{3, UnitPx}},
		{"-1em", Length{-1, UnitEm}},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			l, err := ParseLength(tt.s)
			test.Error(t, err)
			test.T(t, l, tt.expected)
		})
	}
	for _, s := range []string{"", "px", "10 px", "10furlongs"} {
		_, err := ParseLength(s)
		test.That(t, err != nil, s)
	}
	test.String(t, FullLength.String(), "100%")
	test.Float(t, Length{1, UnitIn}.Resolve(0), 96)
	test.Float(t, Percent(50).Resolve(300), 150)
}

func TestParseTransform(t *testing.T) {
	var tests = []struct {
		s        string
		expected svgpath.Matrix2D
	}{
		{"translate(10)", svgpath.Identity.Translate(10, 0)},
		{"translate(10,20) scale(2)", svgpath.Identity.Translate(10, 20).Scale(2, 2)},
		{"matrix(1 2 3 4 5 6)", svgpath.Matrix2D{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}},
		{"scale(2, 3), translate(1 1)", svgpath.Identity.Scale(2, 3).Translate(1, 1)},
		{"rotate(90 5 5)", svgpath.Identity.Translate(5, 5).Rotate(math.Pi / 2).Translate(-5, -5)},
		{"", svgpath.Identity},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			m, err := ParseTransform(tt.s)
			test.Error(t, err)
			test.T(t, m, tt.expected)
		})
	}
	for _, s := range []string{"translate(1,2,3)", "spin(3)", "translate(10", "scale()"} {
		m, err := ParseTransform(s)
		test.That(t, err != nil, s)
		test.T(t, m, svgpath.Identity)
	}

	m, _ := ParseTransform("skewX(45)")
	x, y := m.Transform(0, 2)
	test.Float(t, x, 2)
	test.Float(t, y, 2)
}

func TestParseColor(t *testing.T) {
	var tests = []struct {
		s        string
		expected color.NRGBA
	}{
		{"red", color.NRGBA{255, 0, 0, 255}},
		{"Blue", color.NRGBA{0, 0, 255, 255}},
		{"#0f0", color.NRGBA{0, 255, 0, 255}},
		{"#00800080", color.NRGBA{0, 128, 0, 128}},
		{"rgb(255, 0, 0)", color.NRGBA{255, 0, 0, 255}},
		{"rgb(100%,50%,0%)", color.NRGBA{255, 128, 0, 255}},
		{"rgb(20%, 0%, 10%)", color.NRGBA{51, 0, 26, 255}},
		{"rgba(0,0,255,0.5)", color.NRGBA{0, 0, 255, 128}},
		{"transparent", color.NRGBA{}},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			c, err := ParseColor(tt.s)
			test.Error(t, err)
			test.T(t, c, tt.expected)
		})
	}
	for _, s := range []string{"reddish", "#12", "#xyz", "rgb(1,2)"} {
		_, err := ParseColor(s)
		test.That(t, err != nil, s)
	}
}

func TestParseViewBox(t *testing.T) {
	vb, ok := ParseViewBox("0 0 10 20")
	test.That(t, ok)
	test.T(t, vb, ViewBox{0, 0, 10, 20})

	vb, ok = ParseViewBox("-5,-5, 10,10")
	test.That(t, ok)
	test.T(t, vb, ViewBox{-5, -5, 10, 10})

	for _, s := range []string{"", "0 0 10", "0 0 10 20 30", "0 0 -1 1", "a b c d"} {
		_, ok := ParseViewBox(s)
		test.That(t, !ok, s)
	}
}

func TestParseAspectRatio(t *testing.T) {
	var tests = []struct {
		s        string
		expected AspectRatio
	}{
		{"xMidYMid", DefaultAspectRatio},
		{"xMinYMax slice", AspectRatio{Align: XMinYMax, Slice: true}},
		{"defer xMaxYMin meet", AspectRatio{Align: XMaxYMin}},
		{"none", AspectRatio{Align: AlignNone}},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			ar, err := ParseAspectRatio(tt.s)
			test.Error(t, err)
			test.T(t, ar, tt.expected)
		})
	}
	for _, s := range []string{"", "middle", "xMinYMin stretch", "xMinYMin meet slice"} {
		ar, err := ParseAspectRatio(s)
		test.That(t, err != nil, s)
		test.T(t, ar, DefaultAspectRatio)
	}
	test.String(t, DefaultAspectRatio.String(), "xMidYMid meet")
}

func TestReferences(t *testing.T) {
	test.String(t, ParseIRI("#shape"), "shape")
	test.String(t, ParseIRI("shape"), "shape")

	var tests = []struct {
		s  string
		id string
		ok bool
	}{
		{"url(#clip)", "clip", true},
		{"url( '#clip' )", "clip", true},
		{`url("#clip")`, "clip", true},
		{"url(clip)", "", false},
		{"none", "", false},
		{"url(#)", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.s, func(t *testing.T) {
			id, ok := ParseFuncIRI(tt.s)
			test.T(t, ok, tt.ok)
			test.String(t, id, tt.id)
		})
	}

	test.T(t, ParseUnits("userSpaceOnUse"), UserSpaceOnUse)
	test.T(t, ParseUnits("objectBoundingBox"), ObjectBoundingBox)
	test.T(t, ParseUnits("bogus"), ObjectBoundingBox)
}
