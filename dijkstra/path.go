package dijkstra

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/sssp/core"
)

// Path is an ordered vertex sequence from a start vertex to an end vertex.
// An empty Path means no path exists.
type Path[V cmp.Ordered] []V

// ReconstructPath walks prev backward from end and returns the start→end route.
//
//   - end == start yields [start], whatever prev contains.
//   - end without a predecessor yields an empty path and a nil error:
//     end is unreachable, which is a normal outcome.
//   - a predecessor cycle, or a chain that stops at a vertex other than start,
//     yields ErrCorruptPredecessors instead of looping forever.
//
// prev is only read.
// Complexity: O(L) time and space for a path of L vertices.
func ReconstructPath[V cmp.Ordered](prev PredecessorMap[V], start, end V) (Path[V], error) {
	if end == start {
		return Path[V]{start}, nil
	}
	if _, ok := prev[end]; !ok {
		return nil, nil
	}

	path := Path[V]{end}
	seen := map[V]struct{}{end: {}}
	for cur := end; ; {
		p, ok := prev[cur]
		if !ok {
			break
		}
		if _, dup := seen[p]; dup {
			return nil, fmt.Errorf("%w: cycle through %v", ErrCorruptPredecessors, p)
		}
		seen[p] = struct{}{}
		path = append(path, p)
		cur = p
	}

	if last := path[len(path)-1]; last != start {
		return nil, fmt.Errorf("%w: chain from %v ends at %v, not %v", ErrCorruptPredecessors, end, last, start)
	}
	slices.Reverse(path)

	return path, nil
}

// Cost sums the weights of consecutive edges of p in g.
// A pair that is not an edge of g yields core.ErrEdgeNotFound.
func (p Path[V]) Cost(g core.Graph[V]) (float64, error) {
	total := 0.0
	for i := 1; i < len(p); i++ {
		w, err := g.Weight(p[i-1], p[i])
		if err != nil {
			return 0, err
		}
		total += w
	}

	return total, nil
}

// String renders p as "A -> B -> C".
func (p Path[V]) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = fmt.Sprint(v)
	}

	return strings.Join(parts, " -> ")
}
