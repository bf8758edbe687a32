// SPDX-License-Identifier: MIT
// Package: lvlnet/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context via fmt.Errorf("...: %w", ErrX) with the
//     method-name constants from constants.go.
//   - Constructors MUST NOT panic at runtime; validation panics are confined
//     to option constructor functions (WithX...).

package builder

import "errors"

// ErrInvalidParameter indicates a negative or infeasible generator parameter,
// e.g. a negative node/edge count, or an edge target exceeding the maximum
// n(n-1)/2 possible for a simple undirected graph.
// Usage: if errors.Is(err, ErrInvalidParameter) { /* reject request */ }.
var ErrInvalidParameter = errors.New("builder: invalid parameter")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// non-nil *rand.Rand in the resolved builderConfig (set WithSeed/WithRand).
// Deterministic corner cases (m=0, or m equal to the maximum) do not draw
// and therefore do not require one.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrUnsupportedGraphMode indicates the invoked constructor is incompatible
// with the target core.Graph mode (both models are defined over undirected
// graphs without self-edges).
var ErrUnsupportedGraphMode = errors.New("builder: unsupported graph mode")

// ErrConstructFailed indicates orchestration failure outside a model's own
// parameter domain (nil constructor, nil graph).
var ErrConstructFailed = errors.New("builder: construction failed")
