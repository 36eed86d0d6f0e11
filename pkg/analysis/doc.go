// Package analysis answers entailment queries over a term graph.
//
// Two queries are provided:
//
//   - [Analyze] computes, for a chosen start term, every term reachable from
//     it together with a shortest implication path to each.
//   - [LongestChain] finds, across all ordered pairs of connected terms, the
//     pair whose shortest path is longest and returns that path. This is the
//     deepest derivation the rule set supports - the conclusion of the
//     longest sorites.
//
// Both queries use queue-based breadth-first search with visited tracking,
// so cyclic rule sets terminate and paths are always minimum-hop. Analyze
// runs in O(V+E); LongestChain runs one BFS per start term, O(V·(V+E)),
// which is comfortable for the tens-to-hundreds of terms entail targets.
//
// Queries never mutate the graph, carry no state between calls, and cache
// nothing.
package analysis
