// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_complete.go - Complete(n): every pair of distinct vertices is joined.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Undirected: one draw per unordered pair {i<j}. Directed: one draw per ordered pair (i≠j).
//
// Complexity: O(n²) time.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

const (
	methodComplete      = "Complete"
	minCompleteVertices = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g core.Graph[string], cfg builderConfig) error {
		if n < minCompleteVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteVertices, ErrTooFewVertices)
		}
		cfg.addVertices(g, n)
		for i := 0; i < n; i++ {
			start := i + 1
			if cfg.directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j {
					continue
				}
				if err := cfg.connect(g, methodComplete, cfg.idFn(i), cfg.idFn(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
