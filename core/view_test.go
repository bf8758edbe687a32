// Package core_test verifies the deterministic view contracts: node
// ordering, edge enumeration, and textual rendering.

package core_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/lvlnet/core"
)

// TestGraph_Nodes_Ordering verifies numeric-before-string iteration order.
func TestGraph_Nodes_Ordering(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	for _, id := range []core.NodeID{IDBeta, ID2, IDOneText, ID0, IDAlpha} {
		MustNoError(t, g.AddNode(id), "AddNode")
	}

	want := []core.NodeID{ID0, ID2, IDOneText, IDAlpha, IDBeta}
	nodes := g.Nodes()
	MustEqualInt(t, len(nodes), len(want), "Nodes length")
	for i, n := range nodes {
		if n.ID() != want[i] {
			t.Fatalf("Nodes()[%d] = %v, want %v", i, n.ID(), want[i])
		}
	}
}

// TestGraph_Edges_Undirected verifies that undirected enumeration yields
// both orderings of every pair, in deterministic order.
func TestGraph_Edges_Undirected(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	MustNoError(t, g.AddNode(ID0), "AddNode(0)")
	MustNoError(t, g.AddNode(ID1), "AddNode(1)")
	MustNoError(t, g.AddNode(ID2), "AddNode(2)")
	MustNoError(t, g.AddEdge(ID0, ID1), "AddEdge(0,1)")
	MustNoError(t, g.AddEdge(ID1, ID2), "AddEdge(1,2)")

	want := [][2]core.NodeID{
		{ID0, ID1},
		{ID1, ID0},
		{ID1, ID2},
		{ID2, ID1},
	}
	got := g.Edges()
	MustEqualInt(t, len(got), len(want), "Edges length")
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Edges()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// TestGraph_Edges_Directed verifies one entry per directed edge and a single
// entry for a self-edge.
func TestGraph_Edges_Directed(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithDirected(true), core.WithSelfEdges())
	MustNoError(t, g.AddNode(ID0), "AddNode(0)")
	MustNoError(t, g.AddNode(ID1), "AddNode(1)")
	MustNoError(t, g.AddEdge(ID0, ID1), "AddEdge(0,1)")
	MustNoError(t, g.AddEdge(ID1, ID1), "AddEdge(1,1)")

	want := [][2]core.NodeID{
		{ID0, ID1},
		{ID1, ID1},
	}
	got := g.Edges()
	MustEqualInt(t, len(got), len(want), "Edges length")
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Edges()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// TestGraph_String verifies the adjacency rendering, including the empty
// case, right-aligned labels, and the quoted-string identifier form.
func TestGraph_String(t *testing.T) {
	t.Parallel()

	empty := core.NewGraph()
	if got := empty.String(); got != "Graph (undirected, no self-edges allowed): empty" {
		t.Fatalf("empty rendering = %q", got)
	}

	g := core.NewGraph()
	MustNoError(t, g.AddNode(ID1), "AddNode(1)")
	MustNoError(t, g.AddNode(core.StringID("2")), `AddNode("2")`)
	MustNoError(t, g.AddNode(IDAlpha), "AddNode(alpha)")
	MustNoError(t, g.AddEdge(ID1, core.StringID("2")), `AddEdge(1,"2")`)

	got := g.String()
	lines := strings.Split(got, "\n")
	want := []string{
		"Graph (undirected, no self-edges allowed):",
		"        1 <--> '2'",
		"      '2' <--> 1",
		"  'alpha' <--> no edges",
	}
	MustEqualInt(t, len(lines), len(want), "rendered line count")
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q\nfull:\n%s", i, lines[i], want[i], got)
		}
	}
}

// TestGraph_String_Directed verifies the directed arrow and flag wording.
func TestGraph_String_Directed(t *testing.T) {
	t.Parallel()

	g := core.NewGraph(core.WithDirected(true), core.WithSelfEdges())
	MustNoError(t, g.AddNode(ID0), "AddNode(0)")
	MustNoError(t, g.AddNode(ID1), "AddNode(1)")
	MustNoError(t, g.AddEdge(ID0, ID1), "AddEdge(0,1)")

	got := g.String()
	if !strings.HasPrefix(got, "Graph (directed, self-edges allowed):") {
		t.Fatalf("header = %q", got)
	}
	if !strings.Contains(got, "0 --> 1") {
		t.Fatalf("rendering misses directed arrow: %q", got)
	}
}

// TestNode_NeighborIDs verifies per-node sorted neighbor iteration.
func TestNode_NeighborIDs(t *testing.T) {
	t.Parallel()

	g := core.NewGraph()
	for _, id := range []core.NodeID{ID0, ID1, ID2, IDAlpha} {
		MustNoError(t, g.AddNode(id), "AddNode")
	}
	MustNoError(t, g.AddEdge(ID0, IDAlpha), "AddEdge(0,alpha)")
	MustNoError(t, g.AddEdge(ID0, ID2), "AddEdge(0,2)")
	MustNoError(t, g.AddEdge(ID0, ID1), "AddEdge(0,1)")

	n0, err := g.GetNode(ID0)
	MustNoError(t, err, "GetNode(0)")
	ids := n0.NeighborIDs()
	want := []core.NodeID{ID1, ID2, IDAlpha}
	MustEqualInt(t, len(ids), len(want), "NeighborIDs length")
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("NeighborIDs[%d] = %v, want %v", i, ids[i], want[i])
		}
	}
}
