// SPDX-License-Identifier: MIT

// Package builder: shared constants used across constructors, ensuring
// consistent error prefixes and validation bounds.
package builder

// Canonical constructor names, used to prefix errors with context.
const (
	// MethodUniformRandom is the canonical name for the UniformRandom constructor.
	MethodUniformRandom = "UniformRandom"
	// MethodScaleFree is the canonical name for the ScaleFree constructor.
	MethodScaleFree = "ScaleFree"
)

// MinNodeCount is the smallest admissible node count for both models.
// Zero is valid and yields an empty (or seed-only) graph.
const MinNodeCount = 0

// MinEdgeCount is the smallest admissible edge parameter for both models.
const MinEdgeCount = 0
