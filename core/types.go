// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Edge and the core sentinel errors.
// Determinism:
//   - Every listing method sorts by vertex order; map iteration order never leaks.

package core

import (
	"cmp"
	"errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex that is not a key of the graph.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")

	// ErrBadWeight indicates an edge weight that is not a number.
	ErrBadWeight = errors.New("core: edge weight is NaN")
)

// Graph maps every vertex to its outgoing adjacency: neighbor → edge weight.
//
// A neighbor does not have to appear as a key itself; such a vertex has no
// outgoing edges. Use NewGraph (or a literal) rather than a nil Graph when
// you intend to add vertices.
type Graph[V cmp.Ordered] map[V]map[V]float64

// Edge is a single weighted arc From→To, as reported by Graph.Edges.
type Edge[V cmp.Ordered] struct {
	From   V
	To     V
	Weight float64
}

// NewGraph returns an empty, ready-to-use graph.
func NewGraph[V cmp.Ordered]() Graph[V] {
	return make(Graph[V])
}
