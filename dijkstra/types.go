// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
package dijkstra

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"math"
	"slices"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrVertexNotFound indicates that the source (or target) vertex is not a key of the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadWeight indicates that an edge weight is NaN.
	ErrBadWeight = errors.New("dijkstra: edge weight is not a number")

	// ErrOptionViolation indicates that an invalid Option value was supplied.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrCorruptPredecessors indicates that a predecessor map contains a cycle
	// or a chain that does not lead back to the requested start vertex.
	ErrCorruptPredecessors = errors.New("dijkstra: corrupt predecessor chain")
)

// Infinity is the distance recorded for vertices that were not reached.
var Infinity = math.Inf(1)

// DistanceMap maps each vertex to its minimal total edge weight from the source.
// Unreached vertices hold Infinity.
type DistanceMap[V cmp.Ordered] map[V]float64

// Reachable reports whether v was reached by the run.
func (d DistanceMap[V]) Reachable(v V) bool {
	dist, ok := d[v]

	return ok && !math.IsInf(dist, 1)
}

// Vertices returns every vertex of the map in ascending order.
func (d DistanceMap[V]) Vertices() []V {
	return slices.Sorted(maps.Keys(d))
}

// PredecessorMap maps a vertex to the vertex preceding it on the best-known path.
//
// "No predecessor" is represented by the absence of a key: the source and
// every unreached vertex have none.
type PredecessorMap[V cmp.Ordered] map[V]V

// Stats collects counters from a single run. Pass a pointer via WithStats.
type Stats struct {
	Pushes      int // frontier insertions, the seed included
	Pops        int // frontier extractions, stale ones included
	StalePops   int // extractions of already-settled vertices
	Settled     int // vertices whose distance became final
	Relaxations int // strict improvements of a recorded distance
}

// Options configures the behavior of the Dijkstra algorithm.
//
// MaxDistance      – distances above it are never recorded.
// InfEdgeThreshold – edges with weight ≥ this value are impassable.
// Parallelism      – worker limit for ShortestPathTrees.
type Options struct {
	Ctx              context.Context
	Logger           *slog.Logger
	Stats            *Stats
	MaxDistance      float64
	InfEdgeThreshold float64
	Parallelism      int

	// ctxSet reports whether Ctx came from WithContext rather than the default.
	ctxSet bool

	// skipWeightScan is set by ShortestPathTrees after it validated the graph once.
	skipWeightScan bool

	// err records the first invalid option; surfaced as ErrOptionViolation.
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// DefaultOptions returns the defaults:
//   - context.Background()
//   - a logger that discards every record
//   - no distance cap, no impassable edges
//   - Parallelism 0 (ShortestPathTrees uses GOMAXPROCS)
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}

// WithContext sets a context checked once per frontier extraction.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx, o.ctxSet = ctx, true
		}
	}
}

// WithLogger routes debug records of each run to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithStats makes the run fill s when it ends. s is left untouched if validation fails.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}

// WithMaxDistance stops exploration beyond max; farther vertices stay unreached.
// max must be ≥ 0.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.fail(fmt.Errorf("%w: MaxDistance must be non-negative, got %g", ErrOptionViolation, max))
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats every edge with weight ≥ threshold as impassable.
// threshold must be > 0.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if threshold <= 0 || math.IsNaN(threshold) {
			o.fail(fmt.Errorf("%w: InfEdgeThreshold must be positive, got %g", ErrOptionViolation, threshold))
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// WithParallelism bounds the number of concurrent runs in ShortestPathTrees.
func WithParallelism(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.fail(fmt.Errorf("%w: Parallelism must be ≥ 1, got %d", ErrOptionViolation, n))
			return
		}
		o.Parallelism = n
	}
}

// withoutWeightScan skips the O(E) weight pre-scan for a graph already validated.
func withoutWeightScan() Option {
	return func(o *Options) {
		o.skipWeightScan = true
	}
}

func (o *Options) fail(err error) {
	if o.err == nil {
		o.err = err
	}
}

func resolveOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.err
}
