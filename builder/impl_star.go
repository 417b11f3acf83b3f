// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_star.go - Star(n): hub idFn(0) joined to leaves idFn(1..n-1).
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Edges hub→leaf in ascending leaf order; mirrored unless directed.
//
// Complexity: O(n) time.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

const (
	methodStar      = "Star"
	minStarVertices = 2
)

// Star returns a Constructor that builds a star with n-1 leaves.
func Star(n int) Constructor {
	return func(g core.Graph[string], cfg builderConfig) error {
		if n < minStarVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarVertices, ErrTooFewVertices)
		}
		cfg.addVertices(g, n)
		hub := cfg.idFn(0)
		for i := 1; i < n; i++ {
			if err := cfg.connect(g, methodStar, hub, cfg.idFn(i)); err != nil {
				return err
			}
		}

		return nil
	}
}
