// Package graph provides the directed term graph built from implication rules.
//
// # Overview
//
// Entail models a rule set as a directed graph: each term is a node, and each
// rule "A & B -> C" contributes the edges A→C and B→C. A chain of edges is a
// chain of implications, so graph traversal answers entailment queries.
//
// # Basic Usage
//
// Build a graph directly from parsed implications with [Build], or assemble
// one by hand with [Graph.EnsureTerm] and [Graph.EnsureEdge]:
//
//	g := graph.New()
//	g.EnsureEdge("A", "C")
//	g.EnsureEdge("B", "C")
//
// Both operations are idempotent: terms are created the first time they are
// mentioned, repeated inserts are no-ops, and two rules contributing the same
// (antecedent, consequent) pair collapse to a single edge. Every term that
// appears in any implication is a node, even when it has no edges elsewhere.
//
// Query the structure with [Graph.Children], [Graph.Parents], [Graph.Terms],
// and related methods.
//
// # Cycles
//
// The graph is not required to be acyclic. Rule sets may route implications
// back to an earlier term; construction never validates or rejects cycles,
// and all traversal in the [analysis] package is cycle-safe.
//
// # Determinism
//
// [Graph.Terms], [Graph.Sources], and [Graph.Sinks] return terms in
// lexicographic order, while adjacency lists and [Graph.Edges] preserve
// insertion order. Building the same rule set twice therefore yields
// identical iteration behavior, which keeps query tie-breaking reproducible.
//
// # Concurrency
//
// Graph instances are not safe for concurrent mutation. The intended
// lifecycle is build once, then treat as immutable: read-only queries may
// safely run from multiple goroutines after construction is complete.
//
// [analysis]: github.com/matzehuels/entail/pkg/analysis
package graph
