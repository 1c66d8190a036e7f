package svgdom

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `<?xml version="1.0"?>
<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="10">
	<defs><rect id="r" width="1" height="2"/></defs>
	<g fill="red">
		<use xlink:href="#r" x="3"/>
		<circle xml:id="c" r="2"/>
	</g>
</svg>`

func TestParse(t *testing.T) {
	doc, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)

	root := doc.Root
	assert.Equal(t, "svg", root.Name)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "defs", root.Children[0].Name)
	assert.Equal(t, "g", root.Children[1].Name)

	w, ok := root.Attr("width")
	assert.True(t, ok)
	assert.Equal(t, "10", w)
	_, ok = root.Attr("height")
	assert.False(t, ok)

	use := root.Children[1].Children[0]
	href, ok := use.Href()
	assert.True(t, ok)
	assert.Equal(t, "#r", href)
	assert.Equal(t, 5, use.Line)

	id, ok := root.Children[1].Children[1].ID()
	assert.True(t, ok)
	assert.Equal(t, "c", id)

	id, ok = root.Children[0].Children[0].ID()
	assert.True(t, ok)
	assert.Equal(t, "r", id)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrNoRoot)

	_, err = Parse(strings.NewReader("<svg><g></svg>"))
	assert.Error(t, err)
}

func TestParseCharset(t *testing.T) {
	// é encoded in latin-1
	src := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><svg><text id=\"caf\xe9\"/></svg>"
	doc, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	id, _ := doc.Root.Children[0].ID()
	assert.Equal(t, "café", id)
}

func TestWalkOrder(t *testing.T) {
	doc, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	var names []string
	doc.Root.Walk(func(e *Element) { names = append(names, e.Name) })
	assert.Equal(t, []string{"svg", "defs", "rect", "g", "use", "circle"}, names)
}

func TestParseGoxml(t *testing.T) {
	doc, err := ParseGoxml(strings.NewReader(`<svg><g id="a"><rect width="2"/></g></svg>`))
	require.NoError(t, err)
	require.Len(t, doc.Root.Children, 1)
	g := doc.Root.Children[0]
	id, ok := g.ID()
	assert.True(t, ok)
	assert.Equal(t, "a", id)
	require.Len(t, g.Children, 1)
	assert.Equal(t, "rect", g.Children[0].Name)
}

func TestParseFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "sample.svg")
	require.NoError(t, os.WriteFile(name, []byte(sample), 0o644))

	doc, err := ParseFile(name)
	require.NoError(t, err)
	assert.Equal(t, "svg", doc.Root.Name)
	v, ok := doc.Root.Attr("width")
	assert.True(t, ok)
	assert.Equal(t, "10", v)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.svg"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
