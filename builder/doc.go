// SPDX-License-Identifier: MIT
//
// Package builder generates deterministic core.Graph[string] fixtures:
// paths, cycles, stars, complete graphs, grids and random sparse graphs.
//
// All constructors are composed through BuildGraph:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSeed(42), builder.WithWeightFn(builder.IntWeightFn(1, 9))},
//	    builder.RandomSparse(50, 0.1),
//	)
//
// Edges are undirected (stored as two symmetric arcs) unless WithDirected is
// given. The same options, seed and constructor order always produce the same
// graph, so fixtures are safe to use in golden tests and benchmarks.
package builder
