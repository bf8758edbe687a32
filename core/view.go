// Package core: deterministic read-only views.
//
// Views never mutate the Graph. All orderings follow the NodeID rule
// (numbers before strings, natural order within kind), which makes textual
// rendering and edge export reproducible across runs.

package core

import (
	"sort"
	"strings"
)

const (
	undirectedArrow = "<-->"
	directedArrow   = "-->"

	noEdgesLabel = "no edges"
	emptyLabel   = "empty"

	// labelPadding keeps a visual gap between the longest identifier and its
	// arrow in String output.
	labelPadding = 2
)

// Nodes returns all nodes sorted by identifier.
// Complexity: O(V log V).
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id.Less(out[j].id) })

	return out
}

// NeighborIDs returns this node's neighbor identifiers sorted by the NodeID
// ordering rule.
// Complexity: O(d log d).
func (n *Node) NeighborIDs() []NodeID {
	out := make([]NodeID, 0, len(n.neighbors))
	for id := range n.neighbors {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// Edges enumerates all adjacency entries in deterministic order, as
// (from, to) identifier pairs. For directed graphs each edge appears once;
// for undirected graphs each edge appears as both orderings (a self-edge
// appears once). This is the serialization view for two-column edge-list
// export.
// Complexity: O(V log V + E log E).
func (g *Graph) Edges() [][2]NodeID {
	out := make([][2]NodeID, 0)
	for _, n := range g.Nodes() {
		for _, to := range n.NeighborIDs() {
			out = append(out, [2]NodeID{n.id, to})
		}
	}

	return out
}

// String renders the graph as a sorted adjacency list, one node per line,
// e.g.:
//
//	Graph (undirected, no self-edges allowed):
//	    1 <--> '2'
//	  '0' <--> no edges
//	  '2' <--> 1
//
// Node labels are right-aligned on the longest identifier; directed graphs
// use a one-way arrow.
// Complexity: O(V log V + E log E).
func (g *Graph) String() string {
	kind := "undirected"
	if !g.undirected {
		kind = "directed"
	}
	selfs := "no self-edges allowed"
	if g.allowSelfEdges {
		selfs = "self-edges allowed"
	}
	arrow := undirectedArrow
	if !g.undirected {
		arrow = directedArrow
	}

	var b strings.Builder
	b.WriteString("Graph (" + kind + ", " + selfs + "):")
	if len(g.nodes) == 0 {
		b.WriteString(" " + emptyLabel)

		return b.String()
	}

	// Longest identifier plus padding, for right-aligned labels.
	var width int
	for id := range g.nodes {
		if l := len(id.String()); l > width {
			width = l
		}
	}
	width += labelPadding

	for _, n := range g.Nodes() {
		label := n.id.String()
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", width-len(label)))
		b.WriteString(label)
		b.WriteString(" " + arrow + " ")

		ids := n.NeighborIDs()
		if len(ids) == 0 {
			b.WriteString(noEdgesLabel)
			continue
		}
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = id.String()
		}
		b.WriteString(strings.Join(parts, ", "))
	}

	return b.String()
}
