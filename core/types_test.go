// Package core_test verifies NodeID ordering, equality, and rendering
// contracts, the anchors every deterministic view depends on.

package core_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/lvlnet/core"
)

// TestNodeID_Equality verifies identity-of-value semantics: same kind and
// value compare equal; IntID(1) and StringID("1") stay distinct.
func TestNodeID_Equality(t *testing.T) {
	t.Parallel()

	MustTrue(t, core.IntID(7) == core.IntID(7), "IntID(7) == IntID(7)")
	MustTrue(t, core.StringID("x") == core.StringID("x"), `StringID("x") == StringID("x")`)
	MustFalse(t, core.IntID(1) == IDOneText, `IntID(1) == StringID("1")`)
	MustFalse(t, core.IntID(1) == core.IntID(2), "IntID(1) == IntID(2)")
}

// TestNodeID_Ordering verifies "numeric before string, then natural order
// within kind" over a mixed, shuffled identifier slice.
func TestNodeID_Ordering(t *testing.T) {
	t.Parallel()

	ids := []core.NodeID{
		core.StringID("beta"),
		core.IntID(10),
		core.StringID("alpha"),
		core.IntID(-3),
		core.StringID("1"),
		core.IntID(2),
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].Less(ids[j]) })

	want := []core.NodeID{
		core.IntID(-3),
		core.IntID(2),
		core.IntID(10),
		core.StringID("1"),
		core.StringID("alpha"),
		core.StringID("beta"),
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("sorted[%d] = %v, want %v (full: %v)", i, ids[i], want[i], ids)
		}
	}
}

// TestNodeID_Less_IsStrict verifies Less is irreflexive and asymmetric on
// equal values (required for sort stability guarantees).
func TestNodeID_Less_IsStrict(t *testing.T) {
	t.Parallel()

	MustFalse(t, core.IntID(4).Less(core.IntID(4)), "IntID(4) < IntID(4)")
	MustFalse(t, core.StringID("a").Less(core.StringID("a")), `"a" < "a"`)
	MustTrue(t, core.IntID(1024).Less(core.StringID("")), "any int < any string")
}

// TestNodeID_String verifies the rendering rule that keeps numeric and
// textual identifiers visually distinct.
func TestNodeID_String(t *testing.T) {
	t.Parallel()

	if got := core.IntID(42).String(); got != "42" {
		t.Fatalf("IntID(42).String() = %q, want \"42\"", got)
	}
	if got := core.StringID("42").String(); got != "'42'" {
		t.Fatalf("StringID(\"42\").String() = %q, want \"'42'\"", got)
	}
	if got := core.IntID(-1).String(); got != "-1" {
		t.Fatalf("IntID(-1).String() = %q, want \"-1\"", got)
	}
}

// TestNodeID_AsMapKey verifies NodeID comparability in map usage, the
// property the Graph node pool relies on.
func TestNodeID_AsMapKey(t *testing.T) {
	t.Parallel()

	seen := map[core.NodeID]int{
		core.IntID(1):      1,
		core.StringID("1"): 2,
	}
	MustEqualInt(t, seen[core.IntID(1)], 1, "lookup IntID(1)")
	MustEqualInt(t, seen[core.StringID("1")], 2, `lookup StringID("1")`)
	MustEqualInt(t, len(seen), 2, "distinct keys")
}
