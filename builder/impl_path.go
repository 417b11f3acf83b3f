// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// impl_path.go - Path(n): a simple chain 0—1—…—(n-1).
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Vertices via cfg.idFn in ascending index order; edges i→i+1 (mirrored unless directed).
//
// Complexity: O(n) time.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sssp/core"
)

const (
	methodPath      = "Path"
	minPathVertices = 1
)

// Path returns a Constructor that builds a chain of n vertices.
func Path(n int) Constructor {
	return func(g core.Graph[string], cfg builderConfig) error {
		if n < minPathVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathVertices, ErrTooFewVertices)
		}
		cfg.addVertices(g, n)
		for i := 0; i+1 < n; i++ {
			if err := cfg.connect(g, methodPath, cfg.idFn(i), cfg.idFn(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}
