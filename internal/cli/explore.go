package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/entail/pkg/analysis"
	"github.com/matzehuels/entail/pkg/errors"
	"github.com/matzehuels/entail/pkg/graph"
)

// quit sentinels accepted by the plain prompt loop.
var quitWords = map[string]bool{"q": true, "quit": true, "exit": true}

// newExploreCmd creates the explore command: an interactive loop that
// repeatedly asks for a start term and prints its reachability report.
func newExploreCmd(cfg *Config) *cobra.Command {
	var (
		rulesFile string
		plain     bool
	)

	cmd := &cobra.Command{
		Use:   "explore [rules-file]",
		Short: "Interactively query what each term entails",
		Long: `Explore the term graph interactively.

By default a scrollable term list opens; selecting a term prints its
reachability report and returns to the list. With --plain, a simple
prompt loop reads term names instead: unknown terms prompt a retry and
'q', 'quit', or 'exit' ends the session.

Examples:
  entail explore rules.txt
  entail explore graph.json --plain`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cfg.rulesPath(firstNonEmpty(argOrEmpty(args), rulesFile))
			if err != nil {
				return err
			}

			g, err := loadGraph(cmd.Context(), path)
			if err != nil {
				return err
			}

			if plain {
				return explorePlain(cmd.Context(), g, cmd.InOrStdin())
			}
			return exploreList(g)
		},
	}

	cmd.Flags().StringVarP(&rulesFile, "rules", "r", "", "rule file or graph JSON to explore")
	cmd.Flags().BoolVar(&plain, "plain", false, "use a line-based prompt instead of the term list")

	return cmd
}

// exploreList runs the bubbletea term list until the user quits,
// printing a reachability report after each selection.
func exploreList(g *graph.Graph) error {
	for {
		model := newTermListModel(g.Terms())
		final, err := tea.NewProgram(model).Run()
		if err != nil {
			return err
		}

		selected := final.(termListModel).Selected
		if selected == "" {
			return nil
		}

		result, err := analysis.Analyze(g, selected)
		if err != nil {
			return err
		}
		printReachability(result)
		fmt.Println()
	}
}

// explorePlain runs the line-based prompt loop on in. Unknown terms are
// reported and the prompt repeats; parse of the rule set already
// guaranteed the graph, so the only recoverable failure is a missing term.
func explorePlain(ctx context.Context, g *graph.Graph, in io.Reader) error {
	logger := loggerFromContext(ctx)
	scanner := bufio.NewScanner(in)

	for {
		fmt.Print("Enter a start term to analyze (or 'q' to quit): ")
		if !scanner.Scan() {
			return scanner.Err()
		}

		start := strings.TrimSpace(scanner.Text())
		if start == "" {
			continue
		}
		if quitWords[strings.ToLower(start)] {
			return nil
		}

		result, err := analysis.Analyze(g, start)
		if err != nil {
			if errors.Is(err, errors.ErrCodeTermNotFound) {
				printError("Term %q is not in the graph. Try again.", start)
				continue
			}
			return err
		}

		printReachability(result)
		fmt.Println()
		logger.Debugf("Analyzed %s: %d reachable", start, result.Count())
	}
}
