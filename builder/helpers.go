// SPDX-License-Identifier: MIT
// Package: lvtruss/builder
//
// helpers.go — shared building blocks for impl_*.go constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtruss/core"
)

// validateMin returns ErrTooFewVertices (wrapped with method context) when got < min.
func validateMin(method string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: n=%d < min=%d: %w", method, got, min, ErrTooFewVertices)
	}

	return nil
}

// addBlock appends n vertices and returns the first identifier of the block.
func addBlock(method string, g *core.Graph, n int) (int, error) {
	first, err := g.AddVertices(n)
	if err != nil {
		return 0, fmt.Errorf("%s: AddVertices(%d): %w", method, n, err)
	}

	return first, nil
}

// addEdge inserts {u,v} and wraps any core error with the method name.
func addEdge(method string, g *core.Graph, u, v int) error {
	if _, err := g.AddEdge(u, v); err != nil {
		return fmt.Errorf("%s: AddEdge(%d,%d): %w", method, u, v, err)
	}

	return nil
}
