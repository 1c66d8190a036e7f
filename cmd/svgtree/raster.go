package main

import (
	"fmt"
	"image/png"
	"io"
	"math"
	"os"
	"strings"

	"github.com/benoitkugler/svgtree/svgdraw"
	"github.com/benoitkugler/svgtree/svgraster"
	"github.com/spf13/cobra"
)

func newRasterCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "raster <file.svg|->",
		Short: "Render a document to PNG",
		Long: `Renders a document to a PNG image, written next to the input
(or to stdout when reading from stdin) unless --output is given.
The size defaults to the intrinsic size of the document; giving only one
dimension keeps its aspect ratio.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := a.loadTree(cmd, args[0])
			if err != nil {
				return err
			}
			iw, ih := svgdraw.Size(tree.Root)
			w, h, err := rasterSize(iw, ih, a.cfg.Raster)
			if err != nil {
				return err
			}
			img := svgraster.RasterTree(tree, w, h)

			if output == "" && args[0] != "-" {
				output = strings.TrimSuffix(args[0], ".svg") + ".png"
			}
			var out io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}
			if err := png.Encode(out, img); err != nil {
				return fmt.Errorf("failed to encode png: %w", err)
			}
			a.logger.Info("rendered", "file", args[0], "output", output, "width", w, "height", h)
			return nil
		},
	}
	cmd.Flags().Int("width", 0, "output width in pixels")
	cmd.Flags().Int("height", 0, "output height in pixels")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout")
	return cmd
}

// rasterSize chooses the image size from the intrinsic size of the
// document (iw, ih) and the requested one.
func rasterSize(iw, ih float64, cfg RasterConfig) (int, int, error) {
	w, h := float64(cfg.Width), float64(cfg.Height)
	switch {
	case w > 0 && h > 0:
	case w > 0 && iw > 0 && ih > 0:
		h = w * ih / iw
	case h > 0 && iw > 0 && ih > 0:
		w = h * iw / ih
	case w == 0 && h == 0:
		w, h = iw, ih
	}
	width, height := int(math.Ceil(w)), int(math.Ceil(h))
	if width <= 0 || height <= 0 {
		return 0, 0, svgraster.ErrNoSize
	}
	return width, height, nil
}
