// Command svgtree dumps the node tree of SVG documents,
// or rasterizes them to PNG.
package main

func main() {
	Execute()
}
