// Package dijkstra provides Dijkstra's single-source shortest-path algorithm
// on core.Graph values with non-negative edge weights, plus path reconstruction.
//
// Overview:
//
//   - Dijkstra computes the minimum-cost path from one source vertex to all
//     reachable vertices in O((V + E) log V) time, where V = |vertices| and E = |edges|.
//   - It relies on a binary min-heap frontier to always expand the next-closest vertex.
//   - ReconstructPath turns the predecessor map into an ordered start→end route.
//
// Key features:
//
//   - Functional options tune a run without changing the API signature.
//   - MaxDistance: vertices farther than the cap are left unreached.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable.
//   - ShortestPath: stops as soon as the target's distance is final.
//   - ShortestPathTrees: independent runs from several sources in parallel over one read-only graph.
//   - Stats and a slog.Logger expose what a run did.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is settled at most once.
//   - Each successful relaxation pushes one new frontier entry (up to E pushes).
//   - Space: O(V + E)
//   - O(V) for the distance, predecessor and settled maps.
//   - O(E) worst-case frontier entries under the “lazy decrease-key” strategy.
//
// Determinism:
//
//   - Frontier entries with equal distance are extracted in ascending vertex order,
//     so repeated runs yield identical distance AND predecessor maps.
//   - Correctness never depends on that order; among tied optimal paths any one may
//     be recorded.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:            the graph is nil.
//   - ErrOptionViolation:     an Option received an invalid value.
//   - ErrVertexNotFound:      the source (or target) is not a key of the graph.
//   - ErrNegativeWeight:      an edge weight is below zero (fast O(E) pre-scan).
//   - ErrBadWeight:           an edge weight is NaN.
//   - ErrCorruptPredecessors: ReconstructPath met a cycle or a chain not ending at start.
//
// An unreachable vertex is never an error: its distance is Infinity, it has no
// predecessor and its reconstructed path is empty.
//
// Negative weights:
//
//   - The relaxation order is only optimal for non-negative weights. Rather than
//     returning a silently wrong result, every entry point rejects them up front.
//
// Thread safety:
//
//   - A run owns its distance map, predecessor map and frontier exclusively.
//   - Any number of runs may share one graph as long as nobody mutates it meanwhile.
//
// Example usage:
//
//	dist, prev, err := dijkstra.Dijkstra(g, "A")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, _ := dijkstra.ReconstructPath(prev, "A", "D")
//	fmt.Println(path, dist["D"]) // A -> C -> B -> D 8
package dijkstra
