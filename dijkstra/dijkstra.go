// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-heap frontier,
// relaxing edges and updating distances accordingly.
//
// Notes on implementation choices:
//
//   - We perform an upfront scan of all edges (O(E)) to detect negative or NaN weights and fail fast.
//   - We treat any edge with weight ≥ InfEdgeThreshold as an impassable “wall”.
//   - We never record a distance above MaxDistance.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
package dijkstra

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/sssp/core"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Returns:
//
//   - dist: every key of g mapped to its minimum distance (Infinity if unreachable).
//     Dangling neighbors (not keys of g) are never entered: they are
//     unreachable and appear in neither map.
//   - prev: prev[v] == u means one shortest path to v ends with the edge u→v.
//     The source and unreachable vertices have no key.
//   - err:  non-nil if inputs are invalid; no partial output is returned.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. All options must be valid (ErrOptionViolation).
//  3. g must contain source (ErrVertexNotFound).
//  4. No edge in g may have a negative (ErrNegativeWeight) or NaN (ErrBadWeight) weight.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra[V cmp.Ordered](g core.Graph[V], source V, opts ...Option) (DistanceMap[V], PredecessorMap[V], error) {
	cfg, err := prepare(g, opts)
	if err != nil {
		return nil, nil, err
	}
	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("%w: source %v", ErrVertexNotFound, source)
	}

	r := newRunner(g, source, cfg)
	if err = r.run(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// ShortestPath returns one shortest path from source to target and its total weight.
//
// The run stops as soon as target is settled, so vertices farther than target
// are not explored. An unreachable target yields an empty path, Infinity and a
// nil error. Validation is that of Dijkstra plus target must be a key of g.
func ShortestPath[V cmp.Ordered](g core.Graph[V], source, target V, opts ...Option) (Path[V], float64, error) {
	cfg, err := prepare(g, opts)
	if err != nil {
		return nil, Infinity, err
	}
	if !g.HasVertex(source) {
		return nil, Infinity, fmt.Errorf("%w: source %v", ErrVertexNotFound, source)
	}
	if !g.HasVertex(target) {
		return nil, Infinity, fmt.Errorf("%w: target %v", ErrVertexNotFound, target)
	}

	r := newRunner(g, source, cfg)
	r.target, r.hasTarget = target, true
	if err = r.run(); err != nil {
		return nil, Infinity, err
	}
	if !r.dist.Reachable(target) {
		return nil, Infinity, nil
	}

	path, err := ReconstructPath(r.prev, source, target)
	if err != nil {
		return nil, Infinity, err
	}

	return path, r.dist[target], nil
}

// prepare resolves options and runs every graph-level check that does not
// depend on a particular source.
func prepare[V cmp.Ordered](g core.Graph[V], opts []Option) (Options, error) {
	if g == nil {
		return Options{}, ErrNilGraph
	}
	cfg, err := resolveOptions(opts)
	if err != nil {
		return Options{}, err
	}
	if cfg.skipWeightScan {
		return cfg, nil
	}

	if err = g.Validate(); err != nil {
		switch {
		case errors.Is(err, core.ErrNegativeWeight):
			return Options{}, fmt.Errorf("%w: %w", ErrNegativeWeight, err)
		case errors.Is(err, core.ErrBadWeight):
			return Options{}, fmt.Errorf("%w: %w", ErrBadWeight, err)
		}

		return Options{}, err
	}

	return cfg, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V cmp.Ordered] struct {
	g       core.Graph[V]     // The input graph; read-only within Dijkstra.
	source  V                 // The run's only source.
	options Options           // Resolved configuration.
	log     *slog.Logger      // Debug tracing sink.
	dist    DistanceMap[V]    // Vertex → current best distance from source.
	prev    PredecessorMap[V] // Vertex → predecessor on the current best path.
	settled map[V]struct{}    // Vertices whose distance is final.
	front   *frontier[V]      // Lazy min-heap of tentative distances.
	stats   Stats

	target    V    // Early-exit vertex, meaningful only when hasTarget is set.
	hasTarget bool // Whether the run stops once target is settled.
}

// newRunner sets dist[v] = +∞ for every key, dist[source] = 0 and seeds the frontier.
func newRunner[V cmp.Ordered](g core.Graph[V], source V, cfg Options) *runner[V] {
	n := len(g)
	r := &runner[V]{
		g:       g,
		source:  source,
		options: cfg,
		log:     cfg.Logger,
		dist:    make(DistanceMap[V], n),
		prev:    make(PredecessorMap[V], n),
		settled: make(map[V]struct{}, n),
		front:   newFrontier[V](),
	}
	for v := range g {
		r.dist[v] = Infinity
	}
	r.dist[source] = 0
	r.push(source, 0)

	return r
}

// run drains the frontier, then publishes Stats.
//
// Loop termination conditions:
//
//   - The frontier becomes empty (all reachable vertices settled).
//   - The target, if any, is settled.
//   - The context is cancelled (returns context.Cause(ctx)).
func (r *runner[V]) run() error {
	ctx := r.options.Ctx
	r.log.DebugContext(ctx, "dijkstra: run started",
		slog.Any("source", r.source), slog.Int("vertices", len(r.g)))
	defer r.publishStats()

	for {
		select {
		case <-ctx.Done():
			r.log.DebugContext(ctx, "dijkstra: run cancelled",
				slog.Any("source", r.source), slog.Int("settled", r.stats.Settled))
			return context.Cause(ctx)
		default:
		}

		// 1) Pop the nearest entry; an empty frontier ends the run.
		item, ok := r.front.pop()
		if !ok {
			break
		}
		r.stats.Pops++

		// 2) Skip stale entries of already-settled vertices.
		u := item.vertex
		if _, done := r.settled[u]; done {
			r.stats.StalePops++
			continue
		}

		// 3) u's distance is final.
		r.settled[u] = struct{}{}
		r.stats.Settled++

		if r.hasTarget && u == r.target {
			r.log.DebugContext(ctx, "dijkstra: target settled",
				slog.Any("target", u), slog.Float64("distance", r.dist[u]))
			break
		}

		// 4) Relax all outgoing edges of u.
		r.relax(u)
	}

	r.log.DebugContext(ctx, "dijkstra: run finished",
		slog.Any("source", r.source),
		slog.Int("settled", r.stats.Settled),
		slog.Int("pushes", r.stats.Pushes),
		slog.Int("stale", r.stats.StalePops))

	return nil
}

// relax tries to improve every neighbor of u through u.
// Assumes r.dist[u] is final.
func (r *runner[V]) relax(u V) {
	du := r.dist[u]
	for v, w := range r.g[u] {
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		cand := du + w
		if cand > r.options.MaxDistance {
			continue
		}

		// Dangling neighbors (not keys of g) stay untracked.
		cur, ok := r.dist[v]
		if !ok || cand >= cur {
			continue
		}

		r.dist[v] = cand
		r.prev[v] = u
		r.stats.Relaxations++
		r.push(v, cand)
	}
}

func (r *runner[V]) push(v V, dist float64) {
	r.front.push(v, dist)
	r.stats.Pushes++
}

func (r *runner[V]) publishStats() {
	if r.options.Stats != nil {
		*r.options.Stats = r.stats
	}
}
