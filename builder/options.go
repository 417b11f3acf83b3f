// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Invalid inputs are recorded and surfaced by BuildGraph as ErrOptionViolation.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes the behavior of constructors by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the deterministic vertex ID generator: idx -> string.
func WithIDScheme(fn IDFn) BuilderOption {
	return func(c *builderConfig) {
		if fn == nil {
			c.fail(fmt.Errorf("WithIDScheme(nil): %w", ErrOptionViolation))
			return
		}
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders and weight draws.
func WithRand(r *rand.Rand) BuilderOption {
	return func(c *builderConfig) {
		if r == nil {
			c.fail(fmt.Errorf("WithRand(nil): %w", ErrOptionViolation))
			return
		}
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and benchmarks to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator.
func WithWeightFn(fn WeightFn) BuilderOption {
	return func(c *builderConfig) {
		if fn == nil {
			c.fail(fmt.Errorf("WithWeightFn(nil): %w", ErrOptionViolation))
			return
		}
		c.weightFn = fn
	}
}

// WithDirected stores each generated edge as a single arc u→v.
// By default edges are undirected (u→v and v→u with the same weight).
func WithDirected() BuilderOption {
	return func(c *builderConfig) {
		c.directed = true
	}
}

// WithExcelColumnIDs labels vertices "A".."Z","AA",...
func WithExcelColumnIDs() BuilderOption {
	return WithIDScheme(ExcelColumnIDFn)
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
// Example: WithSymbNumb("v") → "v0","v1",...
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}
