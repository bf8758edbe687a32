// Package builder_test verifies orchestration (Build/Apply) and the
// configuration primitives (builderConfig and BuilderOption).
package builder_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvlnet/builder"
	"github.com/katalvlaran/lvlnet/core"
)

// TestBuild_NilConstructor verifies the orchestrator's defensive gate.
func TestBuild_NilConstructor(t *testing.T) {
	t.Parallel()

	_, err := builder.Build(nil, nil, nil)
	if !errors.Is(err, builder.ErrConstructFailed) {
		t.Fatalf("Build(nil constructor) error = %v, want ErrConstructFailed", err)
	}
}

// TestBuild_ComposesInOrder verifies constructor composition against one
// shared graph: two disjoint uniform blocks via distinct ID schemes.
func TestBuild_ComposesInOrder(t *testing.T) {
	t.Parallel()

	shifted := func(i int) core.NodeID { return core.IntID(int64(i + 100)) }

	g, err := builder.Build(nil,
		[]builder.BuilderOption{builder.WithSeed(7)},
		builder.UniformRandom(3, 3),
	)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err = builder.Apply(g, builder.UniformRandom(3, 3),
		builder.WithSeed(7), builder.WithIDScheme(shifted)); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if got := g.Size(); got != 6 {
		t.Fatalf("Size = %d, want 6", got)
	}
	if got := g.EdgeCount(); got != 6 {
		t.Fatalf("EdgeCount = %d, want 6", got)
	}
	if !g.HasNode(core.IntID(102)) {
		t.Fatalf("shifted ID scheme not applied")
	}
}

// TestApply_Defensive verifies Apply's nil gates.
func TestApply_Defensive(t *testing.T) {
	t.Parallel()

	if err := builder.Apply(nil, builder.UniformRandom(1, 0)); !errors.Is(err, builder.ErrConstructFailed) {
		t.Fatalf("Apply(nil graph) error = %v, want ErrConstructFailed", err)
	}
	if err := builder.Apply(core.NewGraph(), nil); !errors.Is(err, builder.ErrConstructFailed) {
		t.Fatalf("Apply(nil constructor) error = %v, want ErrConstructFailed", err)
	}
}

// TestOptions_PanicOnNil verifies the option-constructor panic policy.
func TestOptions_PanicOnNil(t *testing.T) {
	t.Parallel()

	mustPanic := func(name string, fn func()) {
		defer func() {
			if recover() == nil {
				t.Fatalf("%s: expected panic on nil input", name)
			}
		}()
		fn()
	}
	mustPanic("WithIDScheme(nil)", func() { builder.WithIDScheme(nil) })
	mustPanic("WithRand(nil)", func() { builder.WithRand(nil) })
}
