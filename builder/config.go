// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// config.go - resolved, immutable configuration shared by all constructors.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/sssp/core"
)

// builderConfig is resolved once per BuildGraph call and passed by value.
type builderConfig struct {
	idFn     IDFn       // vertex index → ID
	rng      *rand.Rand // nil unless WithSeed/WithRand
	weightFn WeightFn   // per-edge weight draw
	directed bool       // false ⇒ every edge is stored in both directions

	// err records the first invalid option; surfaced by BuildGraph.
	err error
}

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     DefaultIDFn,
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

func (c *builderConfig) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// addVertices inserts IDs idFn(0)..idFn(n-1) in ascending index order.
func (c builderConfig) addVertices(g core.Graph[string], n int) {
	for i := 0; i < n; i++ {
		g.AddVertex(c.idFn(i))
	}
}

// connect draws one weight and stores u→v (and v→u unless directed).
func (c builderConfig) connect(g core.Graph[string], method, u, v string) error {
	w := c.weightFn(c.rng)
	var err error
	if c.directed {
		err = g.AddEdge(u, v, w)
	} else {
		err = g.AddUndirectedEdge(u, v, w)
	}
	if err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
