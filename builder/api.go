// SPDX-License-Identifier: MIT
// Package: lvlnet/builder
//
// api.go — thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: Build(gopts, bopts, cons...). Creates g, resolves cfg,
//     runs constructors in order.
//   - Functional options (BuilderOption) resolve into an immutable
//     builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒
//     identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlnet/core"
)

// Constructor applies a graph mutation using the resolved builderConfig.
// Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Respect the target graph's mode flags without silent degrade.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// Build creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "Build: %w" and returned
// immediately; no partial cleanup is attempted.
//
// Complexity: O(len(bopts)) to resolve options plus the cost of each
// constructor.
func Build(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}

// Apply runs a single constructor against an existing graph with freshly
// resolved options. It returns sentinel errors; it never panics.
// Complexity: O(len(opts)) + cost of the constructor.
func Apply(g *core.Graph, con Constructor, opts ...BuilderOption) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	if con == nil {
		return fmt.Errorf("Apply: nil constructor: %w", ErrConstructFailed)
	}

	return con(g, newBuilderConfig(opts...))
}
