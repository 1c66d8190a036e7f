package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/benoitkugler/svgtree/svgtree"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newDumpCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <file.svg|->",
		Short: "Print the node tree of a document",
		Long:  `Prints an outline of the node tree, followed by the issues found while building it.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := a.loadTree(cmd, args[0])
			if err != nil {
				return err
			}
			return writeOutline(cmd.OutOrStdout(), newOutline(tree), a.cfg.Dump.Format)
		},
	}
	cmd.Flags().String("format", DefaultConfig().Dump.Format, "output format: yaml or json")
	return cmd
}

// outline is the serialized form of a tree
type outline struct {
	Root     *nodeOutline   `yaml:"root" json:"root"`
	Issues   []issueOutline `yaml:"issues,omitempty" json:"issues,omitempty"`
	Dangling []string       `yaml:"dangling,omitempty" json:"dangling,omitempty"`
}

type nodeOutline struct {
	Kind      string           `yaml:"kind" json:"kind"`
	Tag       string           `yaml:"tag" json:"tag"`
	ID        string           `yaml:"id,omitempty" json:"id,omitempty"`
	Transform []float64        `yaml:"transform,omitempty,flow" json:"transform,omitempty"`
	Opacity   *float64         `yaml:"opacity,omitempty" json:"opacity,omitempty"`
	Clip      *clipOutline     `yaml:"clip,omitempty" json:"clip,omitempty"`
	Viewport  *viewportOutline `yaml:"viewport,omitempty" json:"viewport,omitempty"`
	Shape     *shapeOutline    `yaml:"shape,omitempty" json:"shape,omitempty"`
	Children  []*nodeOutline   `yaml:"children,omitempty" json:"children,omitempty"`
}

type clipOutline struct {
	Units string       `yaml:"units" json:"units"`
	Node  *nodeOutline `yaml:"node" json:"node"`
}

type viewportOutline struct {
	Width       string    `yaml:"width" json:"width"`
	Height      string    `yaml:"height" json:"height"`
	ViewBox     []float64 `yaml:"viewBox,omitempty,flow" json:"viewBox,omitempty"`
	AspectRatio string    `yaml:"preserveAspectRatio" json:"preserveAspectRatio"`
}

type shapeOutline struct {
	Fill        string    `yaml:"fill" json:"fill"`
	Stroke      string    `yaml:"stroke" json:"stroke"`
	StrokeWidth float64   `yaml:"strokeWidth,omitempty" json:"strokeWidth,omitempty"`
	Segments    int       `yaml:"segments" json:"segments"`
	Bounds      []float64 `yaml:"bounds,omitempty,flow" json:"bounds,omitempty"` // x, y, w, h in node coordinates
	Hidden      bool      `yaml:"hidden,omitempty" json:"hidden,omitempty"`
}

type issueOutline struct {
	Kind    string `yaml:"kind" json:"kind"`
	Tag     string `yaml:"tag" json:"tag"`
	Line    int    `yaml:"line,omitempty" json:"line,omitempty"`
	Message string `yaml:"message" json:"message"`
}

func newOutline(tree *svgtree.Tree) outline {
	out := outline{Root: newNodeOutline(tree.Root), Dangling: tree.DanglingIDs()}
	for _, iss := range tree.Issues {
		out.Issues = append(out.Issues, issueOutline{
			Kind:    iss.Kind.String(),
			Tag:     iss.Tag,
			Line:    iss.Line,
			Message: iss.Error(),
		})
	}
	return out
}

func newNodeOutline(n *svgtree.Node) *nodeOutline {
	out := &nodeOutline{Kind: n.Kind.String(), Tag: n.Tag, ID: n.ID}
	if m := n.Transform; !m.IsIdentity() {
		out.Transform = []float64{m.A, m.B, m.C, m.D, m.E, m.F}
	}
	if n.Opacity != 1 {
		op := n.Opacity
		out.Opacity = &op
	}
	if n.Clip != nil {
		out.Clip = &clipOutline{Units: n.Clip.Units.String(), Node: newNodeOutline(n.Clip.Node)}
	}
	if vp := n.Viewport; vp != nil {
		out.Viewport = &viewportOutline{
			Width:       vp.Width.String(),
			Height:      vp.Height.String(),
			AspectRatio: vp.AspectRatio.String(),
		}
		if vb := vp.ViewBox; vb != nil {
			out.Viewport.ViewBox = []float64{vb.X, vb.Y, vb.W, vb.H}
		}
	}
	if s := n.Shape; s != nil {
		out.Shape = &shapeOutline{
			Fill:        s.Fill.String(),
			Stroke:      s.Stroke.String(),
			StrokeWidth: s.StrokeWidth,
			Segments:    len(s.Path),
			Hidden:      s.Hidden,
		}
		if r, ok := s.Path.Bounds(); ok {
			out.Shape.Bounds = []float64{r.X, r.Y, r.W, r.H}
		}
	}
	for _, child := range n.Children {
		out.Children = append(out.Children, newNodeOutline(child))
	}
	return out
}

func writeOutline(w io.Writer, out outline, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown dump format %q", format)
	}
}
