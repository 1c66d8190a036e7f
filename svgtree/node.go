// Package svgtree converts an SVG document into a tree of typed,
// drawable nodes. References (<use>, clip-path) are resolved, styles
// are cascaded down to the shapes and group-like elements defining a
// size or a view box become viewports.
//
// The tree is an abstract representation, to be consumed by painting
// drivers. See for example svgtree/svgdraw and svgtree/svgraster.
package svgtree

import (
	"fmt"

	"github.com/benoitkugler/svgtree/svgpath"
	"github.com/benoitkugler/svgtree/svgshape"
	"github.com/benoitkugler/svgtree/svgvalue"
)

// Kind tags the variants of Node.
type Kind uint8

const (
	KindGroup Kind = iota
	KindViewport
	KindShape
)

func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "group"
	case KindViewport:
		return "viewport"
	case KindShape:
		return "shape"
	default:
		return fmt.Sprintf("<unknown Kind %d>", k)
	}
}

// Node is one element of the tree. Groups and viewports
// have Children, viewports also have Viewport, and shapes have Shape.
type Node struct {
	Kind Kind
	Tag  string // the source element, "use" excepted: a <use> yields its target node
	ID   string // optional

	// Transform maps the node coordinates to its parent's.
	Transform svgpath.Matrix2D
	Opacity   float64 // in [0, 1]
	Clip      *Clip   // optional

	Children []*Node
	Viewport *Viewport
	Shape    *svgshape.Shape
}

func newNode(kind Kind, tag string) *Node {
	return &Node{Kind: kind, Tag: tag, Transform: svgpath.Identity, Opacity: 1}
}

// Walk visits n and its children in depth-first pre-order.
// Clip content is not visited.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// Viewport establishes a new coordinate system: the view box,
// when present, is mapped onto the width x height area
// according to the aspect ratio policy.
type Viewport struct {
	Width, Height svgvalue.Length
	ViewBox       *svgvalue.ViewBox // optional
	AspectRatio   svgvalue.AspectRatio
}

// Clip is a clip path attached to a node.
type Clip struct {
	Node  *Node
	Units svgvalue.Units
}
