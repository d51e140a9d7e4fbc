// SPDX-License-Identifier: MIT
// Package: lvtruss/builder
//
// impl_random_sparse.go — RandomSparse(n,p) constructor (Erdős–Rényi G(n,p)).
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); p ∈ [0,1] (else ErrInvalidProbability).
//   • RNG required when 0 < p < 1 (else ErrNeedRandSource).
//   • p == 0 ⇒ no edges; p == 1 ⇒ K_n, both without touching the RNG.
//
// Determinism:
//   • Stable trial order: for each i asc, j asc with j>i.
//   • Deterministic outcomes for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvtruss/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi graph over
// n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Validate parameters early (zero side-effects on invalid input).
		if err := validateMin(methodRandomSparse, n, minRandomSparseVertices); err != nil {
			return err
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		// 2) Vertex block.
		base, err := addBlock(methodRandomSparse, g, n)
		if err != nil {
			return err
		}

		// 3) Bernoulli trials over unordered pairs {i,j}, i<j.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				keep := p == probMax
				if !keep && p > probMin {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err = addEdge(methodRandomSparse, g, base+i, base+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
