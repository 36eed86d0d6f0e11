package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/entail/internal/api"
)

// serveShutdownTimeout bounds graceful shutdown after the context ends.
const serveShutdownTimeout = 5 * time.Second

// newServeCmd creates the serve command: expose entailment queries over
// an HTTP JSON API. The graph is built once at startup and served
// immutably; restart the server to pick up rule changes.
func newServeCmd(cfg *Config) *cobra.Command {
	var (
		rulesFile string
		listen    string
	)

	cmd := &cobra.Command{
		Use:   "serve [rules-file]",
		Short: "Serve entailment queries over HTTP",
		Long: `Serve the term graph and its queries as an HTTP JSON API.

Endpoints:
  GET /healthz                   liveness probe
  GET /graph                     graph JSON (terms and edges)
  GET /terms                     sorted term list with counts
  GET /terms/{term}/reachable    reachability report for a term
  GET /chain                     the longest implication chain

Examples:
  entail serve rules.txt
  entail serve graph.json --listen :9000`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := cfg.rulesPath(firstNonEmpty(argOrEmpty(args), rulesFile))
			if err != nil {
				return err
			}
			return runServe(cmd.Context(), path, cfg.listenAddr(listen))
		},
	}

	cmd.Flags().StringVarP(&rulesFile, "rules", "r", "", "rule file or graph JSON to serve")
	cmd.Flags().StringVar(&listen, "listen", "", "listen address (default "+defaultListen+")")

	return cmd
}

// runServe builds the graph, then serves it until ctx is cancelled.
func runServe(ctx context.Context, path, addr string) error {
	logger := loggerFromContext(ctx)

	g, err := loadGraph(ctx, path)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    addr,
		Handler: api.NewHandler(g, logger),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("Serving %d terms on http://%s", g.TermCount(), addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serveShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
