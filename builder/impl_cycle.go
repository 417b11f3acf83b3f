// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_cycle.go - Cycle(n): a ring 0—1—…—(n-1)—0.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Edges i→(i+1) mod n in ascending i; mirrored unless directed.
//
// Complexity: O(n) time.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

const (
	methodCycle      = "Cycle"
	minCycleVertices = 3
)

// Cycle returns a Constructor that builds a ring of n vertices.
func Cycle(n int) Constructor {
	return func(g core.Graph[string], cfg builderConfig) error {
		if n < minCycleVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleVertices, ErrTooFewVertices)
		}
		cfg.addVertices(g, n)
		for i := 0; i < n; i++ {
			if err := cfg.connect(g, methodCycle, cfg.idFn(i), cfg.idFn((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}
