// Package svgdom holds the materialized XML element tree
// consumed by the svgtree builder.
package svgdom

// XMLNamespace is the namespace bound to the xml: prefix.
const XMLNamespace = "http://www.w3.org/XML/1998/namespace"

// Attr is one attribute of an element. Name is the local name,
// Space the namespace it was declared in (may be empty).
type Attr struct {
	Space, Name, Value string
}

// Element is an immutable node of the XML tree.
type Element struct {
	Name     string
	Attrs    []Attr // in document order
	Children []*Element
	Line     int // 1-based source line, 0 when unknown
}

// Document wraps the root element of a parsed file.
type Document struct {
	Root *Element
}

// Attr returns the value of the last attribute with the given local name.
func (e *Element) Attr(name string) (string, bool) {
	for i := len(e.Attrs) - 1; i >= 0; i-- {
		if e.Attrs[i].Name == name {
			return e.Attrs[i].Value, true
		}
	}
	return "", false
}

// ID returns the identifier of the element, read from
// the id attribute or, failing that, from xml:id.
func (e *Element) ID() (string, bool) {
	var xmlID string
	for _, attr := range e.Attrs {
		if attr.Name != "id" {
			continue
		}
		if attr.Space == "" {
			return attr.Value, attr.Value != ""
		}
		if attr.Space == XMLNamespace || attr.Space == "xml" {
			xmlID = attr.Value
		}
	}
	return xmlID, xmlID != ""
}

// Href returns the reference target of the element, from
// href or xlink:href.
func (e *Element) Href() (string, bool) {
	return e.Attr("href")
}

// Walk visits e and its descendants in depth-first pre-order.
func (e *Element) Walk(fn func(*Element)) {
	fn(e)
	for _, child := range e.Children {
		child.Walk(fn)
	}
}
