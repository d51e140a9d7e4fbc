// SPDX-License-Identifier: MIT
// Package: lvtruss/builder
//
// impl_edges.go — Edges(pairs...) constructor.
//
// Contract:
//   • Adds no vertices; every endpoint must already exist
//     (core.ErrVertexOutOfRange otherwise).
//   • Emits pairs in argument order, so edge IDs follow that order.
//   • Loops and parallel pairs obey the graph's core flags.

package builder

import "github.com/katalvlaran/lvtruss/core"

const methodEdges = "Edges"

// Edges returns a Constructor that connects existing vertices with the given
// pairs. Combine with Vertices or a topology block to create the endpoints.
func Edges(pairs ...[2]int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, p := range pairs {
			if err := addEdge(methodEdges, g, p[0], p[1]); err != nil {
				return err
			}
		}

		return nil
	}
}

// Vertices returns a Constructor that appends n isolated vertices (n ≥ 0).
func Vertices(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		_, err := addBlock("Vertices", g, n)

		return err
	}
}
