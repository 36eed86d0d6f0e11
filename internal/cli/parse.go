package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/entail/pkg/graph"
	pkgio "github.com/matzehuels/entail/pkg/io"
	"github.com/matzehuels/entail/pkg/rules"
)

// newParseCmd creates the parse command: load a rule file, build the term
// graph, and write it as JSON for later queries or rendering.
func newParseCmd(cfg *Config) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "parse [rules-file]",
		Short: "Parse a rule file and write the term graph as JSON",
		Long: `Parse a rule file and write the resulting term graph as JSON.

A rule file has one implication per line ("A & B -> C"); blank lines and
'#' comments are skipped. A malformed rule aborts the whole load. The JSON
output can be fed back into analyze, chain, render, explore, and serve.

Examples:
  entail parse rules.txt                 # graph JSON on stdout
  entail parse rules.txt -o graph.json   # write to a file`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cfg.rulesPath(argOrEmpty(args))
			if err != nil {
				return err
			}
			return runParse(cmd.Context(), path, firstNonEmpty(output, cfg.Output))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}

// runParse loads the rule file and writes the built graph as JSON.
func runParse(ctx context.Context, path, output string) error {
	logger := loggerFromContext(ctx)

	imps, err := rules.LoadFile(path)
	if err != nil {
		return err
	}
	logger.Infof("Loaded %d implications from %s", len(imps), path)

	prog := newProgress(logger)
	g := graph.Build(imps)
	prog.done(fmt.Sprintf("Built graph with %d terms and %d edges", g.TermCount(), g.EdgeCount()))

	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := pkgio.WriteJSON(g, out); err != nil {
		return err
	}
	if output != "" {
		logger.Infof("Wrote graph to %s", output)
	}
	return nil
}

// argOrEmpty returns the single positional argument, or "" when absent.
func argOrEmpty(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// firstNonEmpty returns the first non-empty string.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
