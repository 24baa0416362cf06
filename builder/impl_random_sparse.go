// SPDX-License-Identifier: MIT
// Package: lvmaze/builder
//
// impl_random_sparse.go: Erdős–Rényi-like RandomSparse(n, p) constructor.
//
// Contract:
//   • n ≥ 1, 0 ≤ p ≤ 1.
//   • 0 < p < 1 requires a random source (ErrNeedRandSource); p == 0 and
//     p == 1 are deterministic and draw nothing.
//   • Undirected: pairs i<j in ascending order. Directed: ordered pairs
//     i≠j in ascending order.
//   • Per candidate pair one NextFloat draw decides inclusion; on weighted
//     graphs the cost is drawn right after an accepted pair.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that includes each candidate edge
// independently with probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addIndexed(g, cfg, methodRandomSparse, n); err != nil {
			return err
		}

		include := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			default:
				return cfg.rng.NextFloat(0, 1) < p
			}
		}

		directed := g.Directed()
		for i := 0; i < n; i++ {
			j0 := i + 1
			if directed {
				j0 = 0
			}
			for j := j0; j < n; j++ {
				if i == j || !include() {
					continue
				}
				u, v := cfg.idFn(i), cfg.idFn(j)
				w := edgeCost(g, cfg)
				if err := g.AddEdge(u, v, w); err != nil {
					return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", methodRandomSparse, u, v, w, err)
				}
			}
		}

		return nil
	}
}
