package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/entail/pkg/analysis"
)

// newAnalyzeCmd creates the analyze command: report every term reachable
// from a start term together with a shortest derivation path to each.
func newAnalyzeCmd(cfg *Config) *cobra.Command {
	var rulesFile string

	cmd := &cobra.Command{
		Use:   "analyze <start-term>",
		Short: "Report everything a term entails, with shortest derivation paths",
		Long: `Report every term reachable from the start term via one or more
implications, together with a shortest derivation path to each.

Examples:
  entail analyze --rules rules.txt "CS101"
  entail analyze --rules graph.json "it rains"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cfg.rulesPath(rulesFile)
			if err != nil {
				return err
			}

			g, err := loadGraph(cmd.Context(), path)
			if err != nil {
				return err
			}

			result, err := analysis.Analyze(g, args[0])
			if err != nil {
				return err
			}

			printReachability(result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&rulesFile, "rules", "r", "", "rule file or graph JSON to query")

	return cmd
}
