// SPDX-License-Identifier: MIT
// Package core_test verifies Graph construction, sorted queries and weight validation.

package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sssp/core"
)

// buildTriangle returns the undirected triangle A—B(1), B—C(2), A—C(5).
func buildTriangle(t *testing.T) core.Graph[string] {
	t.Helper()
	g := core.NewGraph[string]()
	require.NoError(t, g.AddUndirectedEdge("A", "B", 1))
	require.NoError(t, g.AddUndirectedEdge("B", "C", 2))
	require.NoError(t, g.AddUndirectedEdge("A", "C", 5))

	return g
}

func TestGraph_AddVertex_Idempotent(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddVertex("A")
	require.NoError(t, g.AddEdge("A", "B", 3))
	g.AddVertex("A") // must not wipe the adjacency of A

	assert.True(t, g.HasEdge("A", "B"))
	assert.Equal(t, []string{"A", "B"}, g.Vertices())
}

func TestGraph_AddEdge_CreatesEndpoints(t *testing.T) {
	g := core.NewGraph[int]()
	require.NoError(t, g.AddEdge(1, 2, 0.5))

	assert.True(t, g.HasVertex(1))
	assert.True(t, g.HasVertex(2))
	assert.True(t, g.HasEdge(1, 2))
	assert.False(t, g.HasEdge(2, 1), "AddEdge is directed")
	assert.Equal(t, 1, g.EdgeCount())
}

func TestGraph_AddEdge_RejectsInvalidWeights(t *testing.T) {
	g := core.NewGraph[string]()

	err := g.AddEdge("A", "B", -1)
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
	assert.Contains(t, err.Error(), "A→B")

	err = g.AddEdge("A", "B", math.NaN())
	assert.ErrorIs(t, err, core.ErrBadWeight)

	assert.Empty(t, g, "rejected edges must leave the graph untouched")
}

func TestGraph_AddUndirectedEdge_Symmetric(t *testing.T) {
	g := buildTriangle(t)

	for _, pair := range [][2]string{{"A", "B"}, {"B", "C"}, {"A", "C"}} {
		w1, err := g.Weight(pair[0], pair[1])
		require.NoError(t, err)
		w2, err := g.Weight(pair[1], pair[0])
		require.NoError(t, err)
		assert.Equal(t, w1, w2, "%s—%s must be symmetric", pair[0], pair[1])
	}
	assert.Equal(t, 6, g.EdgeCount())
}

func TestGraph_Weight_Missing(t *testing.T) {
	g := buildTriangle(t)
	_, err := g.Weight("A", "Z")
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestGraph_Neighbors_Sorted(t *testing.T) {
	g := core.Graph[string]{
		"A": {"D": 1, "B": 2, "C": 3},
	}
	nbrs, err := g.Neighbors("A")
	require.NoError(t, err)
	require.Len(t, nbrs, 3)
	assert.Equal(t, "B", nbrs[0].To)
	assert.Equal(t, "C", nbrs[1].To)
	assert.Equal(t, "D", nbrs[2].To)
	assert.Equal(t, 2.0, nbrs[0].Weight)

	_, err = g.Neighbors("X")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_Edges_SortedByFromTo(t *testing.T) {
	g := core.Graph[string]{
		"B": {"A": 1},
		"A": {"C": 2, "B": 3},
	}
	assert.Equal(t, []core.Edge[string]{
		{From: "A", To: "B", Weight: 3},
		{From: "A", To: "C", Weight: 2},
		{From: "B", To: "A", Weight: 1},
	}, g.Edges())
}

func TestGraph_Dangling(t *testing.T) {
	g := core.Graph[string]{
		"A": {"B": 1, "Z": 2},
		"B": {"Y": 1},
	}
	assert.Equal(t, []string{"Y", "Z"}, g.Dangling())
	assert.Empty(t, buildTriangle(t).Dangling())
}

func TestGraph_Validate(t *testing.T) {
	assert.NoError(t, buildTriangle(t).Validate())

	// Literals bypass AddEdge, so Validate is the only guard.
	neg := core.Graph[string]{
		"A": {"B": 1},
		"B": {"C": -2},
	}
	err := neg.Validate()
	assert.ErrorIs(t, err, core.ErrNegativeWeight)
	assert.Contains(t, err.Error(), "B→C")

	nan := core.Graph[string]{"A": {"A": math.NaN()}}
	assert.ErrorIs(t, nan.Validate(), core.ErrBadWeight)

	// Zero and +Inf weights are admissible.
	ok := core.Graph[string]{"A": {"B": 0, "C": math.Inf(1)}}
	assert.NoError(t, ok.Validate())
}

func TestGraph_Clone_Deep(t *testing.T) {
	g := buildTriangle(t)
	c := g.Clone()
	assert.Equal(t, g, c)

	require.NoError(t, c.AddEdge("A", "B", 100))
	c.AddVertex("D")

	w, err := g.Weight("A", "B")
	require.NoError(t, err)
	assert.Equal(t, 1.0, w, "clone must not alias adjacency maps")
	assert.False(t, g.HasVertex("D"))

	var nilGraph core.Graph[string]
	assert.Nil(t, nilGraph.Clone())
}
