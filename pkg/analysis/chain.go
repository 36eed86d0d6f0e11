package analysis

import "github.com/matzehuels/entail/pkg/graph"

// LongestChain finds the longest shortest-derivation chain in the graph:
// across all ordered pairs of connected terms, the pair whose minimum-hop
// path is longest, returned as the full term sequence. This approximates
// the graph diameter restricted to reachable pairs and surfaces the
// deepest conclusion the rule set supports.
//
// Returns nil when the graph has no edges.
//
// Tie-breaking is deterministic: start terms are visited in lexicographic
// order and targets in BFS discovery order, and only a strictly longer
// chain replaces the incumbent, so the first maximal pair encountered wins.
//
// One BFS per start term gives O(V·(V+E)) time. Cyclic graphs are handled
// by the visited tracking inside the traversal.
func LongestChain(g *graph.Graph) []string {
	if g.EdgeCount() == 0 {
		return nil
	}

	var longest []string
	for _, start := range g.Terms() {
		prev, order := bfs(g, start)
		for _, target := range order {
			path := buildPath(prev, start, target)
			if len(path) > len(longest) {
				longest = path
			}
		}
	}
	return longest
}
