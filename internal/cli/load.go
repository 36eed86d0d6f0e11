package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/matzehuels/entail/pkg/graph"
	pkgio "github.com/matzehuels/entail/pkg/io"
	"github.com/matzehuels/entail/pkg/rules"
)

// loadGraph loads a term graph from path. Files ending in .json are read
// as previously exported graph JSON; everything else is parsed as a rule
// file and built into a graph. Progress is logged either way.
func loadGraph(ctx context.Context, path string) (*graph.Graph, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	if strings.EqualFold(filepath.Ext(path), ".json") {
		g, err := pkgio.ImportJSON(path)
		if err != nil {
			return nil, err
		}
		prog.done(fmt.Sprintf("Imported graph with %d terms and %d edges from %s", g.TermCount(), g.EdgeCount(), path))
		return g, nil
	}

	imps, err := rules.LoadFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debugf("Loaded %d implications from %s", len(imps), path)

	g := graph.Build(imps)
	prog.done(fmt.Sprintf("Built graph with %d terms and %d edges from %d implications", g.TermCount(), g.EdgeCount(), len(imps)))
	return g, nil
}

// nopCloser wraps an io.Writer with a no-op Close method.
// It is used to make os.Stdout compatible with io.WriteCloser.
type nopCloser struct{ io.Writer }

// Close implements io.Closer with a no-op.
func (nopCloser) Close() error { return nil }

// openOutput returns a WriteCloser for the given path.
// If path is empty, it returns os.Stdout wrapped in nopCloser.
// Otherwise, it creates the file at path, overwriting if it exists.
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
