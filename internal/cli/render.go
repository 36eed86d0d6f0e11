package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/entail/pkg/errors"
	"github.com/matzehuels/entail/pkg/render/nodelink"
)

// Supported render output formats.
const (
	formatDOT = "dot"
	formatSVG = "svg"
	formatPNG = "png"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string // output file path (derived from input if empty)
	format    string // output format: "dot", "svg", "png"
	highlight bool   // style source and sink terms distinctly
	rankdir   string // graphviz layout direction
}

// newRenderCmd creates the render command for visualizing a term graph
// as a node-link diagram.
func newRenderCmd(cfg *Config) *cobra.Command {
	opts := renderOpts{format: formatSVG, highlight: true, rankdir: "TB"}

	cmd := &cobra.Command{
		Use:   "render [rules-file]",
		Short: "Render the term graph as a node-link diagram",
		Long: `Render the term graph to Graphviz DOT, SVG, or PNG.

With --highlight (the default), source terms (base assumptions) get a
bold outline and sink terms (terminal conclusions) a grey fill.

Examples:
  entail render rules.txt                      # rules.svg
  entail render graph.json -f png -o out.png
  entail render rules.txt -f dot               # DOT markup`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cfg.rulesPath(argOrEmpty(args))
			if err != nil {
				return err
			}
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			if opts.output == "" {
				opts.output = firstNonEmpty(cfg.Output, derivedOutput(path, opts.format))
			}
			return runRender(cmd.Context(), path, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (derived from input if empty)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot, svg, png")
	cmd.Flags().BoolVar(&opts.highlight, "highlight", opts.highlight, "style source and sink terms distinctly")
	cmd.Flags().StringVar(&opts.rankdir, "rankdir", opts.rankdir, "layout direction: TB or LR")

	return cmd
}

// runRender loads the graph and writes it in the requested format.
func runRender(ctx context.Context, path string, opts *renderOpts) error {
	g, err := loadGraph(ctx, path)
	if err != nil {
		return err
	}

	dot := nodelink.ToDOT(g, nodelink.Options{
		Highlight: opts.highlight,
		RankDir:   opts.rankdir,
	})

	var data []byte
	switch opts.format {
	case formatDOT:
		data = []byte(dot)
	case formatSVG:
		if data, err = nodelink.RenderSVG(ctx, dot); err != nil {
			return err
		}
	case formatPNG:
		if data, err = nodelink.RenderPNG(ctx, dot); err != nil {
			return err
		}
	}

	if err := os.WriteFile(opts.output, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}

	printSuccess("Rendered %d terms and %d edges", g.TermCount(), g.EdgeCount())
	printFile(opts.output)
	return nil
}

// validateFormat rejects unknown output formats.
func validateFormat(format string) error {
	switch format {
	case formatDOT, formatSVG, formatPNG:
		return nil
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (supported: dot, svg, png)", format)
	}
}

// derivedOutput swaps the input file's extension for the render format.
func derivedOutput(input, format string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "." + format
}
