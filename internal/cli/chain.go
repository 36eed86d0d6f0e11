package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/entail/pkg/analysis"
)

// newChainCmd creates the chain command: find the single longest
// shortest-derivation chain in the graph.
func newChainCmd(cfg *Config) *cobra.Command {
	var rulesFile string

	cmd := &cobra.Command{
		Use:   "chain [rules-file]",
		Short: "Find the longest implication chain in the rule set",
		Long: `Find the longest shortest-derivation chain across all pairs of
connected terms - the deepest conclusion the rule set supports.

Ties are broken deterministically: start terms are considered in
lexicographic order and the first maximal chain wins.

Examples:
  entail chain rules.txt
  entail chain graph.json`,
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

			printChain(analysis.LongestChain(g))
			return nil
		},
	}

	cmd.Flags().StringVarP(&rulesFile, "rules", "r", "", "rule file or graph JSON to query")

	return cmd
}
