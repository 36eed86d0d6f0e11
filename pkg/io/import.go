package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/entail/pkg/graph"
)

// ReadJSON decodes a JSON term graph from r.
//
// The input must be a JSON object with "terms" and "edges" arrays:
//
//	{
//	  "terms": ["A", "B"],
//	  "edges": [{"from": "A", "to": "B"}]
//	}
//
// Edge endpoints not listed in "terms" are created implicitly, mirroring
// the idempotent upsert semantics of graph construction. ReadJSON returns
// an error only when the JSON itself is malformed.
//
// The returned graph is independent of r and can be queried freely after
// ReadJSON returns. ReadJSON does not close r.
func ReadJSON(r io.Reader) (*graph.Graph, error) {
	var data graphJSON
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	g := graph.New()
	for _, term := range data.Terms {
		g.EnsureTerm(term)
	}
	for _, e := range data.Edges {
		g.EnsureEdge(e.From, e.To)
	}
	return g, nil
}

// ImportJSON reads the JSON file at path and returns the decoded graph.
// The error wraps the underlying cause with the file path for context.
func ImportJSON(path string) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
