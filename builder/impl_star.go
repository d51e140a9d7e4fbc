// SPDX-License-Identifier: MIT
// Package: lvtruss/builder
//
// impl_star.go - Star(n) and Wheel(n) constructors.
//
// Contract:
//   - The hub is the first vertex of the block (base); leaves/rim follow.
//   - Star: n ≥ 2; spokes hub→leaf in increasing leaf order.
//   - Wheel: n ≥ 4; rim cycle over base+1..base+n-1 first, then the spokes.
//
// Complexity:
//   - Star: O(n) vertices + O(n-1) edges.
//   - Wheel: O(n) vertices + O(2n-2) edges.

package builder

import "github.com/katalvlaran/lvtruss/core"

const (
	methodStar    = "Star"
	methodWheel   = "Wheel"
	minStarNodes  = 2
	minWheelNodes = 4
)

// Star returns a Constructor that builds a star topology with n vertices:
// one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodStar, n, minStarNodes); err != nil {
			return err
		}
		hub, err := addBlock(methodStar, g, n)
		if err != nil {
			return err
		}

		return spokes(methodStar, g, hub, n)
	}
}

// Wheel returns a Constructor that builds W_n: a hub joined to every vertex
// of an (n-1)-cycle. Every wheel edge lies on at least one triangle.
func Wheel(n int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(methodWheel, n, minWheelNodes); err != nil {
			return err
		}
		hub, err := addBlock(methodWheel, g, n)
		if err != nil {
			return err
		}

		// Rim: hub+1 .. hub+n-1 as a closed ring.
		if err = chain(methodWheel, g, hub+1, n-1); err != nil {
			return err
		}
		if err = addEdge(methodWheel, g, hub+n-1, hub+1); err != nil {
			return err
		}

		return spokes(methodWheel, g, hub, n)
	}
}

// spokes connects hub to hub+1..hub+n-1.
func spokes(method string, g *core.Graph, hub, n int) error {
	for i := 1; i < n; i++ {
		if err := addEdge(method, g, hub, hub+i); err != nil {
			return err
		}
	}

	return nil
}
