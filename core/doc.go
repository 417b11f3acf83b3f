// SPDX-License-Identifier: MIT
//
// Package core defines the weighted adjacency-map Graph consumed by the
// shortest-path algorithms of this module.
//
// A Graph is a plain map from a vertex to its adjacency map (neighbor → weight):
//
//	g := core.Graph[string]{
//	    "A": {"B": 4, "C": 2},
//	    "B": {"A": 4, "C": 1},
//	    "C": {"A": 2, "B": 1},
//	}
//
// Literals like the one above are consumed as-is. NewGraph together with
// AddVertex, AddEdge and AddUndirectedEdge builds the same structure
// programmatically; undirected edges are stored as two symmetric directed arcs.
//
// Vertex types are any cmp.Ordered type. Ordering is never needed for
// correctness; it only gives Vertices, Neighbors and Edges a stable,
// sorted output so that logs, examples and tests are deterministic.
//
// Errors:
//
//	ErrVertexNotFound  - requested vertex is not a key of the graph.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrNegativeWeight  - an edge weight is below zero.
//	ErrBadWeight       - an edge weight is NaN.
//
// Concurrency:
//
//	Graph carries no locks. Any number of goroutines may read the same graph
//	concurrently (for example several shortest-path runs), provided no
//	goroutine mutates it at the same time.
package core
