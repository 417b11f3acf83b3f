package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sssp/core"
	"github.com/katalvlaran/sssp/dijkstra"
)

func TestReconstructPath_StartEqualsEnd(t *testing.T) {
	// [start] regardless of what the map holds, even nil.
	path, err := dijkstra.ReconstructPath[string](nil, "A", "A")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Path[string]{"A"}, path)
}

func TestReconstructPath_NoPredecessorMeansNoPath(t *testing.T) {
	prev := dijkstra.PredecessorMap[string]{"B": "A"}
	path, err := dijkstra.ReconstructPath(prev, "A", "C")
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestReconstructPath_Chain(t *testing.T) {
	prev := dijkstra.PredecessorMap[string]{"B": "A", "C": "B", "D": "C"}
	path, err := dijkstra.ReconstructPath(prev, "A", "D")
	require.NoError(t, err)
	assert.Equal(t, dijkstra.Path[string]{"A", "B", "C", "D"}, path)

	// The map is only read.
	assert.Equal(t, dijkstra.PredecessorMap[string]{"B": "A", "C": "B", "D": "C"}, prev)
}

func TestReconstructPath_CorruptChains(t *testing.T) {
	cases := []struct {
		name string
		prev dijkstra.PredecessorMap[string]
		end  string
	}{
		{"two-cycle", dijkstra.PredecessorMap[string]{"B": "C", "C": "B"}, "B"},
		{"self-cycle", dijkstra.PredecessorMap[string]{"B": "B"}, "B"},
		{"cycle behind a tail", dijkstra.PredecessorMap[string]{"D": "C", "C": "B", "B": "C"}, "D"},
		{"start has a predecessor", dijkstra.PredecessorMap[string]{"B": "A", "A": "B"}, "B"},
		{"chain ends elsewhere", dijkstra.PredecessorMap[string]{"C": "B"}, "C"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path, err := dijkstra.ReconstructPath(tc.prev, "A", tc.end)
			assert.ErrorIs(t, err, dijkstra.ErrCorruptPredecessors)
			assert.Nil(t, path)
		})
	}
}

func TestPath_Cost(t *testing.T) {
	g := core.Graph[string]{
		"A": {"B": 1.5},
		"B": {"C": 2},
		"C": {},
	}
	cost, err := dijkstra.Path[string]{"A", "B", "C"}.Cost(g)
	require.NoError(t, err)
	assert.Equal(t, 3.5, cost)

	cost, err = dijkstra.Path[string]{"A"}.Cost(g)
	require.NoError(t, err)
	assert.Zero(t, cost)

	_, err = dijkstra.Path[string]{"C", "A"}.Cost(g)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
}

func TestPath_String(t *testing.T) {
	assert.Equal(t, "A -> C -> B -> D", dijkstra.Path[string]{"A", "C", "B", "D"}.String())
	assert.Equal(t, "7", dijkstra.Path[int]{7}.String())
	assert.Equal(t, "", dijkstra.Path[string](nil).String())
}
