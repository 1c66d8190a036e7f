package svgtree

import (
	"fmt"
	"io"

	"github.com/benoitkugler/svgtree/svgdom"
)

// Tree is the result of a parse.
type Tree struct {
	Root   *Node
	Index  Index   // the elements with an id
	Issues []Issue // in document order
}

// DanglingIDs returns the ids referenced but not defined,
// without duplicates, in order of first use.
func (t *Tree) DanglingIDs() []string {
	var (
		out  []string
		seen = map[string]bool{}
	)
	for _, iss := range t.Issues {
		if iss.Kind != DanglingReference || seen[iss.Ref] {
			continue
		}
		seen[iss.Ref] = true
		out = append(out, iss.Ref)
	}
	return out
}

// Parse builds the tree of the document. References are
// resolved against the whole document.
func Parse(doc *svgdom.Document, opts Options) (*Tree, error) {
	if doc == nil || doc.Root == nil {
		return nil, ErrEmptyTree
	}
	return ParseElement(doc.Root, opts)
}

// ParseElement builds the tree of a fragment, whose references
// are resolved against the fragment only.
// Definition-only elements outside of references are skipped, so
// that a root such as <defs> or <clipPath> yields ErrEmptyTree.
func ParseElement(el *svgdom.Element, opts Options) (*Tree, error) {
	if el == nil {
		return nil, ErrEmptyTree
	}
	index := BuildIndex(el)
	b := newBuilder(index, opts)
	root, ok := b.build(el, true)
	if b.err != nil {
		return nil, b.err
	}
	if !ok {
		return nil, fmt.Errorf("%w: nothing to draw in <%s>", ErrEmptyTree, el.Name)
	}
	return &Tree{Root: root, Index: index, Issues: b.issues}, nil
}

// ReadStream parses the SVG document read from stream.
func ReadStream(stream io.Reader, opts Options) (*Tree, error) {
	doc, err := svgdom.Parse(stream)
	if err != nil {
		return nil, err
	}
	return Parse(doc, opts)
}

// ReadFile parses the named SVG file.
func ReadFile(name string, opts Options) (*Tree, error) {
	doc, err := svgdom.ParseFile(name)
	if err != nil {
		return nil, err
	}
	return Parse(doc, opts)
}
