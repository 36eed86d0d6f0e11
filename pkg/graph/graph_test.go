package graph

import (
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/entail/pkg/rules"
)

// newRuleSet returns a fresh reader over a small fixed rule set.
func newRuleSet() io.Reader {
	return strings.NewReader("A & B -> C\nC -> D\nD -> E\nX -> Y\n")
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name      string
		imps      []rules.Implication
		wantTerms []string
		wantEdges []Edge
	}{
		{
			name:      "Empty",
			imps:      nil,
			wantTerms: []string{},
			wantEdges: nil,
		},
		{
			name: "Conjunction",
			imps: []rules.Implication{
				{Antecedents: []string{"A", "B"}, Consequent: "C"},
			},
			wantTerms: []string{"A", "B", "C"},
			wantEdges: []Edge{{From: "A", To: "C"}, {From: "B", To: "C"}},
		},
		{
			name: "DuplicatePairCollapses",
			imps: []rules.Implication{
				{Antecedents: []string{"A"}, Consequent: "B"},
				{Antecedents: []string{"A"}, Consequent: "B"},
			},
			wantTerms: []string{"A", "B"},
			wantEdges: []Edge{{From: "A", To: "B"}},
		},
		{
			name: "DuplicateAntecedentCollapses",
			imps: []rules.Implication{
				{Antecedents: []string{"A", "A"}, Consequent: "B"},
			},
			wantTerms: []string{"A", "B"},
			wantEdges: []Edge{{From: "A", To: "B"}},
		},
		{
			name: "Chain",
			imps: []rules.Implication{
				{Antecedents: []string{"A"}, Consequent: "B"},
				{Antecedents: []string{"B"}, Consequent: "C"},
			},
			wantTerms: []string{"A", "B", "C"},
			wantEdges: []Edge{{From: "A", To: "B"}, {From: "B", To: "C"}},
		},
		{
			name: "Cycle",
			imps: []rules.Implication{
				{Antecedents: []string{"A"}, Consequent: "B"},
				{Antecedents: []string{"B"}, Consequent: "A"},
			},
			wantTerms: []string{"A", "B"},
			wantEdges: []Edge{{From: "A", To: "B"}, {From: "B", To: "A"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Build(tt.imps)

			if got := g.Terms(); !reflect.DeepEqual(got, tt.wantTerms) {
				t.Errorf("Terms() = %v, want %v", got, tt.wantTerms)
			}
			if got := g.Edges(); !reflect.DeepEqual(got, tt.wantEdges) {
				t.Errorf("Edges() = %v, want %v", got, tt.wantEdges)
			}
		})
	}
}

func TestEnsureTermIdempotent(t *testing.T) {
	g := New()
	g.EnsureTerm("A")
	g.EnsureTerm("A")

	if got := g.TermCount(); got != 1 {
		t.Errorf("TermCount() = %d, want 1", got)
	}
	if !g.HasTerm("A") {
		t.Error("HasTerm(A) = false, want true")
	}
	if g.HasTerm("B") {
		t.Error("HasTerm(B) = true, want false")
	}
}

func TestEnsureEdgeIdempotent(t *testing.T) {
	g := New()
	g.EnsureEdge("A", "B")
	g.EnsureEdge("A", "B")

	if got := g.EdgeCount(); got != 1 {
		t.Errorf("EdgeCount() = %d, want 1", got)
	}
	if got := g.Children("A"); !reflect.DeepEqual(got, []string{"B"}) {
		t.Errorf("Children(A) = %v, want [B]", got)
	}
	if got := g.Parents("B"); !reflect.DeepEqual(got, []string{"A"}) {
		t.Errorf("Parents(B) = %v, want [A]", got)
	}
}

func TestEnsureEdgeCreatesEndpoints(t *testing.T) {
	g := New()
	g.EnsureEdge("A", "B")

	if !g.HasTerm("A") || !g.HasTerm("B") {
		t.Errorf("terms = %v, want both A and B present", g.Terms())
	}
	if !g.HasEdge("A", "B") {
		t.Error("HasEdge(A, B) = false, want true")
	}
	if g.HasEdge("B", "A") {
		t.Error("HasEdge(B, A) = true, want false")
	}
}

func TestIsolatedTermIsANode(t *testing.T) {
	// A terminal consequent with no further implications is still a node.
	g := Build([]rules.Implication{
		{Antecedents: []string{"A"}, Consequent: "B"},
	})
	g.EnsureTerm("lonely")

	if !g.HasTerm("lonely") {
		t.Fatal("HasTerm(lonely) = false, want true")
	}
	if got := g.OutDegree("lonely"); got != 0 {
		t.Errorf("OutDegree(lonely) = %d, want 0", got)
	}
	if got := g.InDegree("lonely"); got != 0 {
		t.Errorf("InDegree(lonely) = %d, want 0", got)
	}
}

func TestDegrees(t *testing.T) {
	g := Build([]rules.Implication{
		{Antecedents: []string{"A", "B"}, Consequent: "C"},
		{Antecedents: []string{"C"}, Consequent: "D"},
	})

	if got := g.OutDegree("A"); got != 1 {
		t.Errorf("OutDegree(A) = %d, want 1", got)
	}
	if got := g.InDegree("C"); got != 2 {
		t.Errorf("InDegree(C) = %d, want 2", got)
	}
	if got := g.OutDegree("missing"); got != 0 {
		t.Errorf("OutDegree(missing) = %d, want 0", got)
	}
}

func TestSourcesAndSinks(t *testing.T) {
	g := Build([]rules.Implication{
		{Antecedents: []string{"A", "B"}, Consequent: "C"},
		{Antecedents: []string{"C"}, Consequent: "D"},
	})

	if got, want := g.Sources(), []string{"A", "B"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Sources() = %v, want %v", got, want)
	}
	if got, want := g.Sinks(), []string{"D"}; !reflect.DeepEqual(got, want) {
		t.Errorf("Sinks() = %v, want %v", got, want)
	}
}

func TestBuildDeterminism(t *testing.T) {
	// Building the same rule set twice yields identical term and edge sets
	// in identical order.
	imps, err := rules.Parse(newRuleSet())
	if err != nil {
		t.Fatal(err)
	}
	imps2, err := rules.Parse(newRuleSet())
	if err != nil {
		t.Fatal(err)
	}

	g1 := Build(imps)
	g2 := Build(imps2)

	if !reflect.DeepEqual(g1.Terms(), g2.Terms()) {
		t.Errorf("terms differ: %v vs %v", g1.Terms(), g2.Terms())
	}
	if !reflect.DeepEqual(g1.Edges(), g2.Edges()) {
		t.Errorf("edges differ: %v vs %v", g1.Edges(), g2.Edges())
	}
}
