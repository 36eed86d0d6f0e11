// Package io provides JSON import and export for implication term graphs.
//
// # Overview
//
// This package serializes a built term graph to and from a simple JSON
// format. The format is designed for:
//
//   - Passing graphs between entail commands (parse once, query many times)
//   - Integration with external tools that produce or consume graph data
//   - Round-trip preservation: export then re-import yields an identical graph
//
// # JSON Format
//
// The format has two required top-level arrays:
//
//	{
//	  "terms": ["A", "B", "C"],
//	  "edges": [
//	    {"from": "A", "to": "C"},
//	    {"from": "B", "to": "C"}
//	  ]
//	}
//
// Terms are emitted in lexicographic order and edges in insertion order, so
// exporting the same graph twice produces byte-identical output. Terms that
// appear only as edge endpoints are created on import, but listing every
// term keeps isolated terms (no edges at all) intact through a round trip.
//
// # Import
//
// Use [ImportJSON] to read a graph from a file path, or [ReadJSON] to read
// from any io.Reader:
//
//	g, err := io.ImportJSON("graph.json")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Graph construction itself cannot fail: term and edge insertion are
// idempotent, so only malformed JSON or unreadable files produce errors.
//
// # Export
//
// Use [ExportJSON] to write a graph to a file, or [WriteJSON] to write to
// any io.Writer.
package io
