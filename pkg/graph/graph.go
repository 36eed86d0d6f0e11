package graph

import (
	"slices"

	"github.com/matzehuels/entail/pkg/rules"
)

// Edge represents a directed implication edge between two terms.
type Edge struct {
	From string // Antecedent term
	To   string // Consequent term
}

// Graph is a directed graph over term identifiers.
//
// Terms are created implicitly the first time they appear in an EnsureTerm
// or EnsureEdge call, and edges have set semantics: inserting an existing
// (from, to) pair is a no-op. The zero value is not usable - use New.
//
// Graph is not safe for concurrent mutation; see the package documentation
// for the intended build-once lifecycle.
type Graph struct {
	terms    map[string]struct{}
	outgoing map[string][]string // term -> consequents, insertion order
	incoming map[string][]string // term -> antecedents, insertion order
	edges    []Edge              // insertion order
	edgeSet  map[Edge]struct{}
}

// New creates an empty term graph.
func New() *Graph {
	return &Graph{
		terms:    make(map[string]struct{}),
		outgoing: make(map[string][]string),
		incoming: make(map[string][]string),
		edgeSet:  make(map[Edge]struct{}),
	}
}

// Build folds a sequence of parsed implications into a directed graph.
//
// For each implication the consequent term is ensured first, then every
// antecedent term together with its antecedent→consequent edge. The result
// contains exactly the union of all terms mentioned across all implications
// and exactly one edge per distinct (antecedent, consequent) pair.
func Build(implications []rules.Implication) *Graph {
	g := New()
	for _, imp := range implications {
		g.EnsureTerm(imp.Consequent)
		for _, antecedent := range imp.Antecedents {
			g.EnsureTerm(antecedent)
			g.EnsureEdge(antecedent, imp.Consequent)
		}
	}
	return g
}

// EnsureTerm adds the term to the graph if it is not already present.
func (g *Graph) EnsureTerm(id string) {
	if _, ok := g.terms[id]; ok {
		return
	}
	g.terms[id] = struct{}{}
}

// EnsureEdge adds the directed edge from→to if it is not already present,
// creating either endpoint as needed. Repeated inserts of the same pair
// are no-ops, so edge multiplicity is always exactly one.
func (g *Graph) EnsureEdge(from, to string) {
	g.EnsureTerm(from)
	g.EnsureTerm(to)

	e := Edge{From: from, To: to}
	if _, ok := g.edgeSet[e]; ok {
		return
	}
	g.edgeSet[e] = struct{}{}
	g.edges = append(g.edges, e)
	g.outgoing[from] = append(g.outgoing[from], to)
	g.incoming[to] = append(g.incoming[to], from)
}

// HasTerm reports whether the term exists in the graph.
func (g *Graph) HasTerm(id string) bool {
	_, ok := g.terms[id]
	return ok
}

// HasEdge reports whether the directed edge from→to exists.
func (g *Graph) HasEdge(from, to string) bool {
	_, ok := g.edgeSet[Edge{From: from, To: to}]
	return ok
}

// Terms returns all term identifiers in lexicographic order.
func (g *Graph) Terms() []string {
	terms := make([]string, 0, len(g.terms))
	for id := range g.terms {
		terms = append(terms, id)
	}
	slices.Sort(terms)
	return terms
}

// Edges returns a copy of all edges in insertion order.
func (g *Graph) Edges() []Edge { return slices.Clone(g.edges) }

// TermCount returns the number of terms in the graph.
func (g *Graph) TermCount() int { return len(g.terms) }

// EdgeCount returns the number of distinct edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Children returns the consequent terms this term has edges to.
// The returned slice is a read-only view in insertion order; it is nil when
// the term has no outgoing edges or does not exist.
func (g *Graph) Children(id string) []string { return g.outgoing[id] }

// Parents returns the antecedent terms that have edges to this term.
// The returned slice is a read-only view in insertion order; it is nil when
// the term has no incoming edges or does not exist.
func (g *Graph) Parents(id string) []string { return g.incoming[id] }

// OutDegree returns the number of outgoing edges from the term.
// Returns 0 if the term doesn't exist.
func (g *Graph) OutDegree(id string) int { return len(g.outgoing[id]) }

// InDegree returns the number of incoming edges to the term.
// Returns 0 if the term doesn't exist.
func (g *Graph) InDegree(id string) int { return len(g.incoming[id]) }

// Sources returns terms with no incoming edges, in lexicographic order.
// These are base assumptions: terms no rule concludes.
func (g *Graph) Sources() []string {
	var sources []string
	for id := range g.terms {
		if len(g.incoming[id]) == 0 {
			sources = append(sources, id)
		}
	}
	slices.Sort(sources)
	return sources
}

// Sinks returns terms with no outgoing edges, in lexicographic order.
// These are terminal conclusions: terms that imply nothing further.
func (g *Graph) Sinks() []string {
	var sinks []string
	for id := range g.terms {
		if len(g.outgoing[id]) == 0 {
			sinks = append(sinks, id)
		}
	}
	slices.Sort(sinks)
	return sinks
}
