package analysis

import (
	"slices"

	"github.com/matzehuels/entail/pkg/errors"
	"github.com/matzehuels/entail/pkg/graph"
)

// Reachability holds the result of a single-source reachability query.
type Reachability struct {
	// Start is the term the query was run from.
	Start string

	// Paths maps each reachable term to a shortest implication path from
	// Start to it, including both endpoints. When multiple shortest paths
	// exist the one found first by BFS discovery order wins, which is
	// deterministic for a given graph.
	Paths map[string][]string
}

// Reachable returns the reachable terms in lexicographic order.
// Start itself is included only when a cycle routes back to it.
func (r *Reachability) Reachable() []string {
	terms := make([]string, 0, len(r.Paths))
	for id := range r.Paths {
		terms = append(terms, id)
	}
	slices.Sort(terms)
	return terms
}

// Count returns the number of reachable terms.
func (r *Reachability) Count() int { return len(r.Paths) }

// Path returns the shortest path from Start to the given term,
// or nil if the term is not reachable.
func (r *Reachability) Path(term string) []string { return r.Paths[term] }

// Analyze computes the set of terms reachable from start via one or more
// directed edges, together with a shortest (fewest-edge) path to each.
//
// Returns an error with code [errors.ErrCodeTermNotFound] if start is not a
// term in the graph.
//
// The start term is excluded from the result as the trivial zero-length
// case, but if a cycle routes back to it the nonzero-length return path is
// included like any other. A single breadth-first traversal with visited
// tracking bounds the work to O(V+E) and terminates on cyclic graphs.
func Analyze(g *graph.Graph, start string) (*Reachability, error) {
	if !g.HasTerm(start) {
		return nil, errors.New(errors.ErrCodeTermNotFound, "term %q is not in the graph", start)
	}

	prev, _ := bfs(g, start)

	result := &Reachability{Start: start, Paths: make(map[string][]string, len(prev))}
	for term := range prev {
		result.Paths[term] = buildPath(prev, start, term)
	}
	return result, nil
}

// bfs runs a breadth-first traversal from start and returns, for every term
// reached over at least one edge, its predecessor on a shortest path, plus
// the order in which terms were discovered.
//
// start itself appears as a key only when some edge leads back to it; its
// recorded predecessor then closes the cycle. This keeps the zero-length
// "path" to start out of the result while preserving genuine return paths.
func bfs(g *graph.Graph, start string) (prev map[string]string, order []string) {
	prev = make(map[string]string)
	queue := []string{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range g.Children(current) {
			if next == start {
				// A cycle back to the start: record the closing edge once,
				// but never re-expand the start term.
				if _, seen := prev[start]; !seen {
					prev[start] = current
					order = append(order, start)
				}
				continue
			}
			if _, seen := prev[next]; seen {
				continue
			}
			prev[next] = current
			order = append(order, next)
			queue = append(queue, next)
		}
	}

	return prev, order
}

// buildPath reconstructs the path from start to target by walking the
// predecessor map backwards.
func buildPath(prev map[string]string, start, target string) []string {
	path := []string{target}
	for at := prev[target]; ; at = prev[at] {
		path = append(path, at)
		if at == start {
			break
		}
	}
	slices.Reverse(path)
	return path
}
