// SPDX-License-Identifier: MIT
// Package: lvtruss/builder
//
// impl_path.go — Path(n) and Cycle(n) constructors.
//
// Contract:
//   • Path: n ≥ 2; edges {i,i+1} for i = 0..n-2 in ascending order.
//   • Cycle: n ≥ 3; the path edges followed by the closing edge {n-1,0}.
//
// Complexity:
//   • Time: O(n) vertices + O(n) edges. Space: O(1) extra.

package builder

import "github.com/katalvlaran/lvtruss/core"

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodPath, n, minPathNodes); err != nil {
			return err
		}
		base, err := addBlock(methodPath, g, n)
		if err != nil {
			return err
		}

		return chain(methodPath, g, base, n)
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n.
// C_3 is the only cycle that contains a triangle.
func Cycle(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodCycle, n, minCycleNodes); err != nil {
			return err
		}
		base, err := addBlock(methodCycle, g, n)
		if err != nil {
			return err
		}
		if err = chain(methodCycle, g, base, n); err != nil {
			return err
		}

		// close the ring
		return addEdge(methodCycle, g, base+n-1, base)
	}
}

// chain links base, base+1, ..., base+n-1 in order.
func chain(method string, g *core.Graph, base, n int) error {
	for i := 0; i+1 < n; i++ {
		if err := addEdge(method, g, base+i, base+i+1); err != nil {
			return err
		}
	}

	return nil
}
