package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/entail/pkg/buildinfo"
)

// Execute runs the entail CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands, configures
// logging based on the --verbose flag, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext. An optional --config file provides defaults for flags
// like the rules path; explicit flags always win.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configPath string
	)
	cfg := &Config{}

	root := &cobra.Command{
		Use:          "entail",
		Short:        "Entail analyzes implication rule sets as directed graphs",
		Long:         `Entail loads a text rule set of logical implications ("A & B -> C"), builds a directed graph of terms, and answers entailment queries over it: what a term implies, by which chain, and which conclusion sits at the end of the deepest chain.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			cmd.SetContext(withLogger(cmd.Context(), logger))

			loaded, err := LoadConfig(configPath)
			if err != nil {
				return err
			}
			*cfg = *loaded
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: $ENTAIL_CONFIG, then ~/.config/entail/config.toml)")

	root.AddCommand(newParseCmd(cfg))
	root.AddCommand(newAnalyzeCmd(cfg))
	root.AddCommand(newChainCmd(cfg))
	root.AddCommand(newRenderCmd(cfg))
	root.AddCommand(newExploreCmd(cfg))
	root.AddCommand(newServeCmd(cfg))

	return root.ExecuteContext(ctx)
}
