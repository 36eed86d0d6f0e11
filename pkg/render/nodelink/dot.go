package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/entail/pkg/graph"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Highlight marks source terms with a bold outline and sink terms with
	// a grey fill. When false, all terms render identically.
	Highlight bool

	// RankDir sets the Graphviz layout direction ("TB", "LR", ...).
	// Empty defaults to top-to-bottom.
	RankDir string
}

// ToDOT converts a term graph to Graphviz DOT format.
// Terms are emitted in lexicographic order and edges in insertion order, so
// the output is deterministic for a given graph. The resulting DOT string
// can be rendered with [RenderSVG] or [RenderPNG].
func ToDOT(g *graph.Graph, opts Options) string {
	rankdir := opts.RankDir
	if rankdir == "" {
		rankdir = "TB"
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", rankdir)
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, term := range g.Terms() {
		attrs := fmtAttrs(g, term, opts)
		fmt.Fprintf(&buf, "  %q [%s];\n", term, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(g *graph.Graph, term string, opts Options) []string {
	attrs := []string{fmt.Sprintf("label=%q", term)}
	if !opts.Highlight {
		return attrs
	}
	switch {
	case g.InDegree(term) == 0 && g.OutDegree(term) > 0:
		attrs = append(attrs, "penwidth=2")
	case g.OutDegree(term) == 0 && g.InDegree(term) > 0:
		attrs = append(attrs, "fillcolor=lightgrey")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
