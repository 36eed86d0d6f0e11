package analysis_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/entail/pkg/analysis"
	"github.com/matzehuels/entail/pkg/graph"
	"github.com/matzehuels/entail/pkg/rules"
)

func ExampleAnalyze() {
	imps, _ := rules.Parse(strings.NewReader(`
		socrates is a man -> socrates is mortal
		socrates is mortal -> socrates will die
	`))
	g := graph.Build(imps)

	result, _ := analysis.Analyze(g, "socrates is a man")
	fmt.Println("Reachable:", result.Count())
	fmt.Println(strings.Join(result.Path("socrates will die"), " -> "))
	// Output:
	// Reachable: 2
	// socrates is a man -> socrates is mortal -> socrates will die
}

func ExampleLongestChain() {
	g := graph.New()
	g.EnsureEdge("A", "B")
	g.EnsureEdge("B", "C")
	g.EnsureEdge("C", "D")
	g.EnsureEdge("X", "Y")

	chain := analysis.LongestChain(g)
	fmt.Println(strings.Join(chain, " -> "))
	fmt.Printf("Concludes: %s -> %s\n", chain[0], chain[len(chain)-1])
	// Output:
	// A -> B -> C -> D
	// Concludes: A -> D
}
