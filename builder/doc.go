// SPDX-License-Identifier: MIT

// Package builder provides deterministic, composable constructors that
// populate a core.Graph with synthetic network topologies.
//
// Two stochastic models are provided:
//
//   - UniformRandom(n, m): a uniform random-edge model — n nodes and exactly
//     m distinct undirected edges sampled uniformly over all pairs.
//   - ScaleFree(n, m): incremental preferential-attachment growth
//     (Barabási–Albert style) — n seed nodes, then n growth steps attaching
//     each new node to up to m existing nodes with probability proportional
//     to current degree.
//
// Usage follows a single orchestrator:
//
//	g, err := builder.Build(
//	    nil,                              // core.GraphOption (defaults: undirected, no self-edges)
//	    []builder.BuilderOption{builder.WithSeed(42)},
//	    builder.ScaleFree(10_000, 2),
//	)
//
// Determinism: identical inputs, options, seed, and constructor order yield
// identical graphs. Constructors never panic; they validate parameters early
// and return sentinel errors (ErrInvalidParameter, ErrNeedRandSource,
// ErrUnsupportedGraphMode, ErrConstructFailed) suitable for errors.Is.
package builder
