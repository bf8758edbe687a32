// SPDX-License-Identifier: MIT
// Package: lvlnet/builder
//
// impl_uniform_random.go — implementation of UniformRandom(n, m).
//
// Canonical model:
//   - Simple undirected graph G(n, m): n nodes, exactly m distinct edges
//     sampled uniformly at random over all unordered pairs.
//   - Rejection sampling: each draw picks a fresh uniform pair, independent
//     of earlier draws; an existing edge skips the draw. This keeps every
//     pair equally likely (no bias toward early-chosen pairs, unlike
//     sequential scanning).
//   - m equal to the maximum n(n-1)/2 short-circuits to deterministic
//     complete wiring, avoiding wasted rejection sampling.
//
// Contract:
//   - Target graph must be undirected without self-edges (else ErrUnsupportedGraphMode).
//   - n ≥ 0, 0 ≤ m ≤ n(n-1)/2 (else ErrInvalidParameter).
//   - cfg.rng required only for the stochastic path 0 < m < max (else ErrNeedRandSource).
//   - Adds nodes via cfg.idFn in ascending index order (0..n-1).
//   - Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   - Time: O(n) nodes + expected O(m · max/(max-m+1)) draws; the complete
//     case is O(n²) exact.
//   - Space: O(n) for the identifier cache.
//
// Determinism:
//   - Fixed seed ⇒ identical edge set; the complete case needs no RNG.
//
// Termination:
//   - Probabilistic but almost-sure: m ≤ max guarantees a free pair exists
//     on every draw until exactly m edges are present.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlnet/core"
)

// UniformRandom returns a Constructor that samples a uniform random simple
// graph with n nodes and exactly m edges.
func UniformRandom(n, m int) Constructor {
	// The returned closure captures (n, m); Build supplies (g, cfg).
	return func(g *core.Graph, cfg builderConfig) error {
		// 1) Mode gate: the model is defined over undirected simple graphs.
		if !g.Undirected() || g.SelfEdgesAllowed() {
			return fmt.Errorf("%s: requires an undirected graph without self-edges: %w",
				MethodUniformRandom, ErrUnsupportedGraphMode)
		}

		// 2) Parameter validation (fail fast, zero side-effects on invalid input).
		if n < MinNodeCount {
			return fmt.Errorf("%s: node count %d is negative: %w",
				MethodUniformRandom, n, ErrInvalidParameter)
		}
		if m < MinEdgeCount {
			return fmt.Errorf("%s: edge count %d is negative: %w",
				MethodUniformRandom, m, ErrInvalidParameter)
		}
		maxEdges := n * (n - 1) / 2
		if m > maxEdges {
			return fmt.Errorf("%s: edge count %d exceeds maximum %d for %d nodes: %w",
				MethodUniformRandom, m, maxEdges, n, ErrInvalidParameter)
		}

		// 3) RNG is required only when sampling actually happens.
		if cfg.rng == nil && m > 0 && m < maxEdges {
			return fmt.Errorf("%s: rng is required: %w", MethodUniformRandom, ErrNeedRandSource)
		}

		// 4) Add all nodes deterministically via cfg.idFn, caching identifiers.
		ids := make([]core.NodeID, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := g.AddNode(ids[i]); err != nil {
				return fmt.Errorf("%s: AddNode(%v): %w", MethodUniformRandom, ids[i], err)
			}
		}
		if m == 0 {
			return nil
		}

		// 5) Saturated target: wire every pair deterministically.
		if m == maxEdges {
			for i := 0; i < n; i++ {
				for j := i + 1; j < n; j++ {
					if err := g.AddEdge(ids[i], ids[j]); err != nil {
						return fmt.Errorf("%s: AddEdge(%v,%v): %w",
							MethodUniformRandom, ids[i], ids[j], err)
					}
				}
			}

			return nil
		}

		// 6) Rejection sampling: uniform unordered pair per draw, skip on
		//    collision, stop at exactly m established edges.
		rng := cfg.rng
		established := 0
		for established < m {
			// Two distinct indices, uniform over ordered pairs; unordered
			// pairs inherit uniformity by symmetry.
			i := rng.Intn(n)
			j := rng.Intn(n - 1)
			if j >= i {
				j++
			}

			exists, err := g.EdgeExists(ids[i], ids[j])
			if err != nil {
				return fmt.Errorf("%s: EdgeExists(%v,%v): %w",
					MethodUniformRandom, ids[i], ids[j], err)
			}
			if exists {
				continue
			}

			if err = g.AddEdge(ids[i], ids[j]); err != nil {
				return fmt.Errorf("%s: AddEdge(%v,%v): %w",
					MethodUniformRandom, ids[i], ids[j], err)
			}
			established++
		}

		return nil
	}
}
