package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/benoitkugler/svgtree/svgdom"
	"github.com/benoitkugler/svgtree/svgtree"
	"github.com/spf13/cobra"
)

// app is the state shared by the commands of one invocation.
type app struct {
	configPath string
	cfg        Config
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: DefaultConfig()}
	def := DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "svgtree",
		Short: "svgtree inspects and renders SVG documents",
		Long: `svgtree parses SVG documents into a tree of groups, viewports and shapes,
with <use> and clip-path references resolved.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(a.configPath)
			if err != nil {
				return err
			}
			cfg.overrideFromFlags(cmd)
			if err := cfg.Validate(); err != nil {
				return err
			}
			level, _ := cfg.Level()
			a.cfg = cfg
			a.logger = newLogger(cmd.ErrOrStderr(), level)
			return nil
		},
	}

	// Persistent flags (available to all commands)
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML configuration file")
	flags.String("error-mode", def.ErrorMode, "reaction to malformed input: ignore, warn or strict")
	flags.String("dom", def.DOM, "XML loader: xml or goxml")
	flags.String("log-level", def.LogLevel, "log level: debug, info, warn or error")

	rootCmd.AddCommand(newDumpCmd(a), newRasterCmd(a))
	return rootCmd
}

// Execute runs the root command and exits on error.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadTree parses the named file, or stdin for "-".
func (a *app) loadTree(cmd *cobra.Command, name string) (*svgtree.Tree, error) {
	var in io.Reader = cmd.InOrStdin()
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	var (
		doc *svgdom.Document
		err error
	)
	switch a.cfg.DOM {
	case "goxml":
		doc, err = svgdom.ParseGoxml(in)
	default:
		doc, err = svgdom.Parse(in)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	tree, err := svgtree.Parse(doc, a.cfg.Options(a.logger))
	if err != nil {
		return nil, err
	}
	a.logger.Debug("parsed document", "file", name, "issues", len(tree.Issues), "ids", len(tree.Index))
	return tree, nil
}
