package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/entail/pkg/graph"
)

type graphJSON struct {
	Terms []string   `json:"terms"`
	Edges []edgeJSON `json:"edges"`
}

type edgeJSON struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// WriteJSON encodes a term graph as JSON and writes it to w.
// Terms are emitted in lexicographic order and edges in insertion order,
// making the output deterministic. The result can be re-imported with
// [ReadJSON] for round-trip processing.
func WriteJSON(g *graph.Graph, w io.Writer) error {
	out := graphJSON{
		Terms: g.Terms(),
		Edges: make([]edgeJSON, len(g.Edges())),
	}
	for i, e := range g.Edges() {
		out.Edges[i] = edgeJSON{From: e.From, To: e.To}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a term graph to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(g *graph.Graph, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(g, f)
}
