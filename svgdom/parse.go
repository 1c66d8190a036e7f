package svgdom

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/speedata/goxml"
	"golang.org/x/net/html/charset"
)

// ErrNoRoot is returned when the input holds no element.
var ErrNoRoot = errors.New("svgdom: document has no root element")

// Parse reads a whole XML document. Non UTF-8 inputs are
// decoded according to their XML declaration.
func Parse(r io.Reader) (*Document, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel
	var (
		stack []*Element
		root  *Element
	)
	for {
		line, _ := decoder.InputPos()
		t, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("svgdom: %w", err)
		}
		switch se := t.(type) {
		case xml.StartElement:
			elt := &Element{Name: se.Name.Local, Line: line}
			if len(se.Attr) > 0 {
				elt.Attrs = make([]Attr, len(se.Attr))
				for i, attr := range se.Attr {
					elt.Attrs[i] = Attr{Space: attr.Name.Space, Name: attr.Name.Local, Value: attr.Value}
				}
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("svgdom: multiple root elements")
				}
				root = elt
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, elt)
			}
			stack = append(stack, elt)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}
	if root == nil {
		return nil, ErrNoRoot
	}
	return &Document{Root: root}, nil
}

// ParseFile reads the named file.
func ParseFile(name string) (*Document, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// FromGoxml converts a document loaded with goxml.
func FromGoxml(doc *goxml.XMLDocument) (*Document, error) {
	root, err := doc.Root()
	if err != nil {
		return nil, fmt.Errorf("svgdom: %w", err)
	}
	if root == nil {
		return nil, ErrNoRoot
	}
	return &Document{Root: fromGoxmlElement(root)}, nil
}

// ParseGoxml reads a document through goxml.
func ParseGoxml(r io.Reader) (*Document, error) {
	doc, err := goxml.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("svgdom: %w", err)
	}
	return FromGoxml(doc)
}

func fromGoxmlElement(src *goxml.Element) *Element {
	elt := &Element{Name: src.Name, Line: src.Line}
	for _, attr := range src.Attributes() {
		elt.Attrs = append(elt.Attrs, Attr{Name: attr.Name, Value: attr.Value})
	}
	for _, child := range src.Children() {
		if ce, ok := child.(*goxml.Element); ok {
			elt.Children = append(elt.Children, fromGoxmlElement(ce))
		}
	}
	return elt
}
