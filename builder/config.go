// SPDX-License-Identifier: MIT
// Package: lvlnet/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   - builderConfig is the single source of truth for all builder knobs.
//   - Defaults are deterministic and documented; no globals.
//   - newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   - idFn = numericID (core.IntID(0), core.IntID(1), ...)
//   - rng  = nil (stochastic paths then fail fast with ErrNeedRandSource)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/lvlnet/core"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// Vertex ID strategy: index -> identifier (deterministic).
	idFn func(int) core.NodeID
	// RNG for stochastic choices; nil means "no randomness available".
	rng *rand.Rand
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order (last-wins semantics).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn: numericID,
		rng:  nil,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// numericID renders an index as the numeric identifier core.IntID(i), the
// scheme both models use for their generated nodes (0..n-1, then n+i).
func numericID(i int) core.NodeID {
	return core.IntID(int64(i))
}
