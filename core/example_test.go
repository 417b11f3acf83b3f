package core_test

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

// ExampleGraph demonstrates building a small road map and querying it.
func ExampleGraph() {
	g := core.NewGraph[string]()
	_ = g.AddUndirectedEdge("A", "B", 4)
	_ = g.AddUndirectedEdge("A", "C", 2)
	_ = g.AddEdge("C", "D", 8) // one-way street

	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("C→D:", g.HasEdge("C", "D"), "D→C:", g.HasEdge("D", "C"))
	fmt.Println("Arcs:", g.EdgeCount())

	// Output:
	// Vertices: [A B C D]
	// C→D: true D→C: false
	// Arcs: 5
}

// ExampleGraph_literal shows that a map literal is a valid Graph.
func ExampleGraph_literal() {
	g := core.Graph[string]{
		"A": {"B": 4, "C": 2},
		"B": {"C": 1},
	}
	nbrs, _ := g.Neighbors("A")
	for _, e := range nbrs {
		fmt.Printf("%s→%s (%g)\n", e.From, e.To, e.Weight)
	}
	fmt.Println("dangling:", g.Dangling())

	// Output:
	// A→B (4)
	// A→C (2)
	// dangling: [C]
}
