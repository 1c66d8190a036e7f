package svgstyle

import (
	"strings"

	"github.com/benoitkugler/svgtree/svgdom"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// Split partitions attrs into the recognized presentation
// properties and the remaining attributes, whose order is kept.
// Declarations of an inline style attribute take precedence
// over presentation attributes, whatever their order.
func Split(attrs []svgdom.Attr) (Set, []svgdom.Attr) {
	var (
		style  Set
		others []svgdom.Attr
		inline string
	)
	for _, attr := range attrs {
		if attr.Space != "" {
			others = append(others, attr)
			continue
		}
		if attr.Name == "style" {
			inline = attr.Value
			continue
		}
		if p, ok := Lookup(attr.Name); ok {
			style.Put(p, strings.TrimSpace(attr.Value))
			continue
		}
		others = append(others, attr)
	}
	if inline != "" {
		readInlineStyle(&style, inline)
	}
	return style, others
}

// readInlineStyle adds the declarations of a style attribute
// such as "fill: red; stroke-width: 2".
func readInlineStyle(style *Set, value string) {
	parser := css.NewParser(parse.NewInputString(value), true)
	for {
		gt, _, data := parser.Next()
		if gt == css.ErrorGrammar {
			break
		}
		if gt != css.DeclarationGrammar {
			continue
		}
		p, ok := Lookup(strings.ToLower(string(data)))
		if !ok {
			continue
		}
		var sb strings.Builder
		for _, token := range parser.Values() {
			sb.Write(token.Data)
		}
		v := strings.TrimSpace(sb.String())
		v = strings.TrimSpace(strings.TrimSuffix(v, "!important"))
		style.Put(p, v)
	}
}
