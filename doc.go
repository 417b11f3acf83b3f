// Package sssp computes single-source shortest paths over weighted graphs
// with non-negative edge weights.
//
// The module is organized in three packages:
//
//	core/     — Graph[V], a plain adjacency map (vertex → neighbor → weight)
//	dijkstra/ — the engine: Dijkstra, ShortestPath, ShortestPathTrees, ReconstructPath
//	builder/  — deterministic graph fixtures (path, cycle, star, complete, grid, random)
//
// Quick example:
//
//	g := core.Graph[string]{
//		"A": {"B": 4, "C": 2},
//		"B": {"A": 4, "C": 1, "D": 5},
//		"C": {"A": 2, "B": 1, "D": 8},
//		"D": {"B": 5, "C": 8},
//	}
//	dist, prev, _ := dijkstra.Dijkstra(g, "A")
//	path, _ := dijkstra.ReconstructPath(prev, "A", "D")
//	fmt.Println(path, dist["D"]) // A -> C -> B -> D 8
//
// See examples/cityroute for a runnable route table.
//
//	go get github.com/katalvlaran/sssp
package sssp
