package dijkstra

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/sssp/core"
)

// Tree is the output of one single-source run.
type Tree[V cmp.Ordered] struct {
	Source V
	Dist   DistanceMap[V]
	Prev   PredecessorMap[V]
}

// PathTo reconstructs the route from t.Source to v.
func (t *Tree[V]) PathTo(v V) (Path[V], error) {
	return ReconstructPath(t.Prev, t.Source, v)
}

// ShortestPathTrees runs one independent Dijkstra per distinct source and
// returns the trees keyed by source.
//
// Runs execute concurrently, at most Options.Parallelism at a time
// (GOMAXPROCS when unset). Every run owns its maps and frontier; g is only
// read and must not be mutated until the call returns. The graph is
// validated once up front. The first failing run cancels the others and its
// error is returned. WithStats is ignored here.
//
// ctx and a context passed with WithContext are both honored: cancelling
// either one stops every run. A nil ctx means only the option applies.
func ShortestPathTrees[V cmp.Ordered](ctx context.Context, g core.Graph[V], sources []V, opts ...Option) (map[V]*Tree[V], error) {
	cfg, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}
	for _, s := range sources {
		if !g.HasVertex(s) {
			return nil, fmt.Errorf("%w: source %v", ErrVertexNotFound, s)
		}
	}
	switch {
	case ctx == nil:
		ctx = cfg.Ctx
	case cfg.ctxSet:
		var cancel context.CancelCauseFunc
		ctx, cancel = context.WithCancelCause(ctx)
		defer cancel(nil)
		optCtx := cfg.Ctx
		if optCtx.Err() != nil {
			cancel(context.Cause(optCtx))
		}
		stop := context.AfterFunc(optCtx, func() { cancel(context.Cause(optCtx)) })
		defer stop()
	}

	uniq := slices.Clone(sources)
	slices.Sort(uniq)
	uniq = slices.Compact(uniq)

	limit := cfg.Parallelism
	if limit == 0 {
		limit = runtime.GOMAXPROCS(0)
	}
	cfg.Logger.DebugContext(ctx, "dijkstra: trees started",
		slog.Int("sources", len(uniq)), slog.Int("parallelism", limit))

	grp, gctx := errgroup.WithContext(ctx)
	grp.SetLimit(limit)

	runOpts := append(slices.Clone(opts),
		WithContext(gctx),
		withoutWeightScan(),
		func(o *Options) { o.Stats = nil },
	)
	trees := make([]*Tree[V], len(uniq))
	for i, s := range uniq {
		grp.Go(func() error {
			dist, prev, err := Dijkstra(g, s, runOpts...)
			if err != nil {
				return fmt.Errorf("dijkstra: tree from %v: %w", s, err)
			}
			trees[i] = &Tree[V]{Source: s, Dist: dist, Prev: prev}

			return nil
		})
	}
	if err = grp.Wait(); err != nil {
		return nil, err
	}

	out := make(map[V]*Tree[V], len(trees))
	for _, t := range trees {
		out[t.Source] = t
	}

	return out, nil
}
