// Package pkg provides the core libraries for Entail implication analysis.
//
// # Overview
//
// Entail loads a plain-text rule set of logical implications ("A & B -> C"),
// assembles it into a directed graph of terms, and answers entailment
// queries over that graph. The pkg directory is organized into:
//
//  1. [rules] - Rule parsing (lines → implications)
//  2. [graph] - The directed term graph built from implications
//  3. [analysis] - Reachability and longest-chain queries
//  4. [render] - Node-link visualization via Graphviz
//  5. [io] - Graph JSON import/export
//  6. [errors] - Structured error codes shared by CLI and API
//
// # Architecture
//
// The typical data flow through Entail:
//
//	Rule file
//	     ↓
//	[rules] package (parse lines into implications)
//	     ↓
//	[graph] package (fold implications into a term graph)
//	     ↓
//	[analysis] package (reachability, longest chain)
//	     ↓
//	CLI report / JSON / SVG output
//
// # Quick Start
//
// Load a rule set and find its deepest conclusion:
//
//	imps, err := rules.LoadFile("rules.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	g := graph.Build(imps)
//	chain := analysis.LongestChain(g)
//	fmt.Println(strings.Join(chain, " -> "))
//
// [rules]: github.com/matzehuels/entail/pkg/rules
// [graph]: github.com/matzehuels/entail/pkg/graph
// [analysis]: github.com/matzehuels/entail/pkg/analysis
// [render]: github.com/matzehuels/entail/pkg/render
// [io]: github.com/matzehuels/entail/pkg/io
// [errors]: github.com/matzehuels/entail/pkg/errors
package pkg
