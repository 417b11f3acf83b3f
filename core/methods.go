// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Graph construction and read-only queries.
// Determinism:
//   - Vertices() and Dangling() return IDs in ascending order.
//   - Neighbors() returns edges sorted by To asc; Edges() by (From, To) asc.
// Concurrency:
//   - No internal locking; see package doc.

package core

import (
	"fmt"
	"maps"
	"math"
	"slices"
)

// AddVertex ensures v is a key of g. Adding an existing vertex is a no-op.
// Complexity: O(1).
func (g Graph[V]) AddVertex(v V) {
	if _, ok := g[v]; !ok {
		g[v] = make(map[V]float64)
	}
}

// AddEdge stores the directed arc from→to with weight w, creating both
// endpoints as keys when absent. An existing arc is overwritten.
//
// Returns ErrNegativeWeight or ErrBadWeight (wrapped with the arc) and leaves
// g untouched when w is invalid.
// Complexity: O(1).
func (g Graph[V]) AddEdge(from, to V, w float64) error {
	if err := checkWeight(from, to, w); err != nil {
		return err
	}
	g.AddVertex(from)
	g.AddVertex(to)
	g[from][to] = w

	return nil
}

// AddUndirectedEdge stores u→v and v→u with the same weight.
// Complexity: O(1).
func (g Graph[V]) AddUndirectedEdge(u, v V, w float64) error {
	if err := g.AddEdge(u, v, w); err != nil {
		return err
	}

	return g.AddEdge(v, u, w)
}

// HasVertex reports whether v is a key of g.
func (g Graph[V]) HasVertex(v V) bool {
	_, ok := g[v]

	return ok
}

// HasEdge reports whether the arc from→to exists.
func (g Graph[V]) HasEdge(from, to V) bool {
	_, ok := g[from][to]

	return ok
}

// Weight returns the weight of from→to, or ErrEdgeNotFound.
func (g Graph[V]) Weight(from, to V) (float64, error) {
	w, ok := g[from][to]
	if !ok {
		return 0, fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, from, to)
	}

	return w, nil
}

// Vertices returns all keys of g in ascending order.
// Complexity: O(V log V).
func (g Graph[V]) Vertices() []V {
	return slices.Sorted(maps.Keys(g))
}

// Dangling returns, in ascending order, vertices that appear only as a
// neighbor and never as a key. Such vertices are reachable but have no
// outgoing edges.
// Complexity: O(E + D log D).
func (g Graph[V]) Dangling() []V {
	seen := make(map[V]struct{})
	for _, adj := range g {
		for v := range adj {
			if _, ok := g[v]; !ok {
				seen[v] = struct{}{}
			}
		}
	}

	return slices.Sorted(maps.Keys(seen))
}

// Neighbors returns the outgoing edges of v sorted by target.
// Returns ErrVertexNotFound if v is not a key.
// Complexity: O(d log d) for out-degree d.
func (g Graph[V]) Neighbors(v V) ([]Edge[V], error) {
	adj, ok := g[v]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, v)
	}
	out := make([]Edge[V], 0, len(adj))
	for _, to := range slices.Sorted(maps.Keys(adj)) {
		out = append(out, Edge[V]{From: v, To: to, Weight: adj[to]})
	}

	return out, nil
}

// Edges returns every arc of g sorted by (From, To).
// Undirected edges added with AddUndirectedEdge appear once per direction.
// Complexity: O(E log E).
func (g Graph[V]) Edges() []Edge[V] {
	out := make([]Edge[V], 0, g.EdgeCount())
	for _, from := range g.Vertices() {
		adj := g[from]
		for _, to := range slices.Sorted(maps.Keys(adj)) {
			out = append(out, Edge[V]{From: from, To: to, Weight: adj[to]})
		}
	}

	return out
}

// EdgeCount returns the number of arcs in g.
func (g Graph[V]) EdgeCount() int {
	n := 0
	for _, adj := range g {
		n += len(adj)
	}

	return n
}

// Validate checks every weight of g and returns the first offending arc in
// (From, To) order, wrapped around ErrNegativeWeight or ErrBadWeight.
// Complexity: O(E log E).
func (g Graph[V]) Validate() error {
	for _, e := range g.Edges() {
		if err := checkWeight(e.From, e.To, e.Weight); err != nil {
			return err
		}
	}

	return nil
}

// Clone returns a deep copy of g; the copy shares no maps with g.
func (g Graph[V]) Clone() Graph[V] {
	if g == nil {
		return nil
	}
	out := make(Graph[V], len(g))
	for v, adj := range g {
		out[v] = maps.Clone(adj)
		if out[v] == nil {
			out[v] = make(map[V]float64)
		}
	}

	return out
}

func checkWeight[V any](from, to V, w float64) error {
	switch {
	case math.IsNaN(w):
		return fmt.Errorf("%w: edge %v→%v", ErrBadWeight, from, to)
	case w < 0:
		return fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, from, to, w)
	}

	return nil
}
