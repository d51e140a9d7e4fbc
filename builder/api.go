// SPDX-License-Identifier: MIT
// Package: lvtruss/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtruss/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Append their own vertex block (except Edges).
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	// Apply each constructor sequentially to preserve deterministic order & effects.
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
//	Complete(n)             K_n, n ≥ 1                       impl_complete.go
//	Path(n)                 P_n, n ≥ 2                       impl_path.go
//	Cycle(n)                C_n, n ≥ 3                       impl_path.go
//	Star(n)                 hub + n-1 leaves, n ≥ 2          impl_star.go
//	Wheel(n)                C_{n-1} + hub, n ≥ 4             impl_star.go
//	CompleteBipartite(a,b)  K_{a,b}, a,b ≥ 1                 impl_complete.go
//	RandomSparse(n,p)       G(n,p), n ≥ 1, p ∈ [0,1]         impl_random_sparse.go
//	Edges(pairs...)         explicit pairs on existing ids   impl_edges.go
//	Vertices(n)             n isolated vertices              impl_edges.go
