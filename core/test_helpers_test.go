// Package core_test contains test helpers for lvlnet/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep core tests stdlib-only (no third-party assertion frameworks).

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlnet/core"
)

// Common identifiers used across core tests.
var (
	ID0 = core.IntID(0)
	ID1 = core.IntID(1)
	ID2 = core.IntID(2)
	ID3 = core.IntID(3)

	IDAlpha = core.StringID("alpha")
	IDBeta  = core.StringID("beta")

	// IDOneText is StringID("1"): equal in rendering digits to IntID(1) but a
	// distinct identifier, used by ordering and rendering anchors.
	IDOneText = core.StringID("1")
)

// NewLoopGraph returns an undirected graph that permits self-edges.
func NewLoopGraph() *core.Graph {
	return core.NewGraph(core.WithSelfEdges())
}

// NewDirectedGraph returns a directed graph without self-edges.
func NewDirectedGraph() *core.Graph {
	return core.NewGraph(core.WithDirected(true))
}

// MustNoError fails the test if err != nil.
func MustNoError(t *testing.T, err error, op string) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s: unexpected error: %v", op, err)
	}
}

// MustErrorIs fails the test unless errors.Is(err, target).
func MustErrorIs(t *testing.T, err error, target error, op string) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("%s: error = %v, want errors.Is(_, %v)", op, err, target)
	}
}

// MustTrue fails the test unless cond holds.
func MustTrue(t *testing.T, cond bool, op string) {
	t.Helper()
	if !cond {
		t.Fatalf("%s: condition is false, want true", op)
	}
}

// MustFalse fails the test if cond holds.
func MustFalse(t *testing.T, cond bool, op string) {
	t.Helper()
	if cond {
		t.Fatalf("%s: condition is true, want false", op)
	}
}

// MustEqualInt fails the test unless got == want.
func MustEqualInt(t *testing.T, got, want int, op string) {
	t.Helper()
	if got != want {
		t.Fatalf("%s: got %d, want %d", op, got, want)
	}
}

// MustEqualIntSlice fails the test unless got and want match element-wise.
func MustEqualIntSlice(t *testing.T, got, want []int, op string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: len = %d, want %d (got %v, want %v)", op, len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("%s: index %d: got %d, want %d (got %v, want %v)", op, i, got[i], want[i], got, want)
		}
	}
}

// MustEdge asserts that EdgeExists(a,b) succeeds and reports want.
func MustEdge(t *testing.T, g *core.Graph, a, b core.Ref, want bool, op string) {
	t.Helper()
	got, err := g.EdgeExists(a, b)
	MustNoError(t, err, op)
	if got != want {
		t.Fatalf("%s: EdgeExists = %v, want %v", op, got, want)
	}
}
