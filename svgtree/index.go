package svgtree

import "github.com/benoitkugler/svgtree/svgdom"

// Index maps ids to the elements defining them.
// It is built once per document and only read afterwards.
type Index map[string]*svgdom.Element

// BuildIndex records every element of the tree rooted at root
// which carries an id, whatever its tag.
// When an id is repeated, the last element in document order wins.
func BuildIndex(root *svgdom.Element) Index {
	index := make(Index)
	if root == nil {
		return index
	}
	root.Walk(func(el *svgdom.Element) {
		if id, ok := el.ID(); ok {
			index[id] = el
		}
	})
	return index
}

// Lookup returns the element with the given id.
func (idx Index) Lookup(id string) (*svgdom.Element, bool) {
	el, ok := idx[id]
	return el, ok
}
