// SPDX-License-Identifier: MIT
// Package: lvtruss/builder
//
// impl_complete.go — Complete(n) and CompleteBipartite(n1,n2) constructors.
//
// Contract:
//   • Complete: n ≥ 1; emits each unordered pair {i,j}, i<j, exactly once in
//     lexicographic order.
//   • CompleteBipartite: n1,n2 ≥ 1; left block first, then right block; edges
//     ordered by (left, right).
//   • Returns only wrapped sentinel/core errors; never panics at runtime.
//
// Complexity:
//   • Complete: O(n) vertices + O(n²) edges.
//   • CompleteBipartite: O(n1+n2) vertices + O(n1·n2) edges.

package builder

import "github.com/katalvlaran/lvtruss/core"

const (
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	minCompleteNodes        = 1
	minPartitionNodes       = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodComplete, n, minCompleteNodes); err != nil {
			return err
		}
		base, err := addBlock(methodComplete, g, n)
		if err != nil {
			return err
		}

		// Emit each unordered pair {i,j} with i<j in stable lexicographic order.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = addEdge(methodComplete, g, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// CompleteBipartite returns a Constructor that builds K_{n1,n2}.
// The resulting graph is triangle-free.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodCompleteBipartite, n1, minPartitionNodes); err != nil {
			return err
		}
		if err := validateMin(methodCompleteBipartite, n2, minPartitionNodes); err != nil {
			return err
		}
		left, err := addBlock(methodCompleteBipartite, g, n1+n2)
		if err != nil {
			return err
		}
		right := left + n1

		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if err = addEdge(methodCompleteBipartite, g, left+i, right+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
