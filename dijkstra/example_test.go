package dijkstra_test

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/dijkstra"
)

// ExampleDijkstra prints the distance and route to every vertex of a small
// undirected road map, sorted by vertex.
func ExampleDijkstra() {
	g := core.Graph[string]{
		"A": {"B": 4, "C": 2},
		"B": {"A": 4, "C": 1, "D": 5},
		"C": {"A": 2, "B": 1, "D": 8, "E": 10},
		"D": {"B": 5, "C": 8, "E": 2},
		"E": {"C": 10, "D": 2},
	}

	dist, prev, err := dijkstra.Dijkstra(g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, v := range dist.Vertices() {
		path, _ := dijkstra.ReconstructPath(prev, "A", v)
		fmt.Printf("%s\t%g\t%s\n", v, dist[v], path)
	}
	// Output:
	// A	0	A
	// B	3	A -> C -> B
	// C	2	A -> C
	// D	8	A -> C -> B -> D
	// E	10	A -> C -> B -> D -> E
}

// ExampleShortestPath stops as soon as the target is settled.
func ExampleShortestPath() {
	g := core.NewGraph[int]()
	_ = g.AddEdge(1, 2, 7)
	_ = g.AddEdge(1, 3, 2)
	_ = g.AddEdge(3, 2, 3)
	_ = g.AddEdge(2, 4, 1)
	g.AddVertex(5)

	path, cost, _ := dijkstra.ShortestPath(g, 1, 4)
	fmt.Println(path, cost)

	path, cost, _ = dijkstra.ShortestPath(g, 1, 5)
	fmt.Println(len(path), math.IsInf(cost, 1))
	// Output:
	// 1 -> 3 -> 2 -> 4 6
	// 0 true
}

func ExampleShortestPathTrees() {
	g := core.NewGraph[string]()
	_ = g.AddUndirectedEdge("x", "y", 1)
	_ = g.AddUndirectedEdge("y", "z", 2)

	trees, err := dijkstra.ShortestPathTrees(context.Background(), g, []string{"x", "z"})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, src := range []string{"x", "z"} {
		t := trees[src]
		fmt.Println(src, t.Dist)
	}
	// Output:
	// x map[x:0 y:1 z:3]
	// z map[x:3 y:2 z:0]
}

func ExampleReconstructPath() {
	prev := dijkstra.PredecessorMap[string]{"B": "A", "C": "B"}

	p, _ := dijkstra.ReconstructPath(prev, "A", "C")
	fmt.Println(p)

	p, _ = dijkstra.ReconstructPath(prev, "A", "Z")
	fmt.Println(len(p))

	_, err := dijkstra.ReconstructPath(dijkstra.PredecessorMap[string]{"B": "B"}, "A", "B")
	fmt.Println(err != nil)
	// Output:
	// A -> B -> C
	// 0
	// true
}
