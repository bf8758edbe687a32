// Package core: Graph and Node method implementations.
//
// Node-level edge mutation touches a single adjacency set; the Graph-level
// operations route every reference through GetNode, validate against the
// configured flags, and maintain the symmetric-closure invariant for
// undirected graphs on every mutation, never lazily.

package core

import "fmt"

// ---------------------------------------------------------------------------
// Node methods
// ---------------------------------------------------------------------------

// ID returns this node's identifier.
func (n *Node) ID() NodeID { return n.id }

// Degree returns the number of distinct neighbors of this node.
// Complexity: O(1).
func (n *Node) Degree() int { return len(n.neighbors) }

// HasEdgeTo reports whether this node's adjacency set contains other.
// Complexity: O(1).
func (n *Node) HasEdgeTo(other Ref) bool {
	_, ok := n.neighbors[other.refID()]

	return ok
}

// AddEdge inserts other into this node's adjacency set. Only this node's
// side changes: callers orchestrating undirected symmetry must issue the
// call on both endpoints. Graph.AddEdge is the invariant-maintaining entry
// point; prefer it over node-level mutation.
// Returns ErrDuplicateEdge if the entry is already present.
// Complexity: O(1).
func (n *Node) AddEdge(other Ref) error {
	to := other.refID()
	if _, ok := n.neighbors[to]; ok {
		return fmt.Errorf("edge %v->%v already exists: %w", n.id, to, ErrDuplicateEdge)
	}
	n.neighbors[to] = struct{}{}

	return nil
}

// RemoveEdge deletes other from this node's adjacency set.
// Returns ErrMissingEdge if the entry is absent.
// Complexity: O(1).
func (n *Node) RemoveEdge(other Ref) error {
	to := other.refID()
	if _, ok := n.neighbors[to]; !ok {
		return fmt.Errorf("edge %v->%v does not exist: %w", n.id, to, ErrMissingEdge)
	}
	delete(n.neighbors, to)

	return nil
}

// ---------------------------------------------------------------------------
// Graph methods
// ---------------------------------------------------------------------------

// AddNode inserts a new, disconnected node with the given identifier.
// Returns ErrDuplicateNode if the identifier already exists; rejecting the
// insert protects an existing node's edges from silent overwrite.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id NodeID) error {
	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("node %v: %w", id, ErrDuplicateNode)
	}
	g.nodes[id] = newNode(id)

	return nil
}

// GetNode resolves an identifier or node reference to the canonical stored
// node. A *Node argument from another graph resolves by identifier, so
// external references never alias a stand-in object.
// Returns ErrNodeNotFound if the identifier is absent.
// Complexity: O(1).
func (g *Graph) GetNode(ref Ref) (*Node, error) {
	id := ref.refID()
	n, ok := g.nodes[id]
	if !ok {
		return nil, fmt.Errorf("node %v: %w", id, ErrNodeNotFound)
	}

	return n, nil
}

// HasNode reports whether a node with the given identifier exists.
// It never returns an error.
// Complexity: O(1).
func (g *Graph) HasNode(ref Ref) bool {
	_, ok := g.nodes[ref.refID()]

	return ok
}

// EdgeExists reports whether the edge a→b exists. For undirected graphs both
// directions are checked, a defensive double-check even though the symmetry
// invariant should guarantee they agree.
// Returns ErrNodeNotFound if either endpoint is absent.
// Complexity: O(1).
func (g *Graph) EdgeExists(a, b Ref) (bool, error) {
	na, err := g.GetNode(a)
	if err != nil {
		return false, err
	}
	nb, err := g.GetNode(b)
	if err != nil {
		return false, err
	}

	if g.undirected {
		return na.HasEdgeTo(nb) && nb.HasEdgeTo(na), nil
	}

	return na.HasEdgeTo(nb), nil
}

// AddEdge adds the edge a→b; when the graph is undirected and a≠b the
// symmetric entry b→a is added as well. The operation is atomic: all
// validation (endpoint resolution, self-edge policy, duplicate check against
// the canonical stored nodes) happens before the first adjacency mutation,
// so a rejected call leaves no one-directional remnant.
//
// Returns ErrNodeNotFound, ErrSelfEdgeNotAllowed, or ErrDuplicateEdge.
// Complexity: O(1).
func (g *Graph) AddEdge(a, b Ref) error {
	na, err := g.GetNode(a)
	if err != nil {
		return err
	}
	nb, err := g.GetNode(b)
	if err != nil {
		return err
	}

	if na == nb && !g.allowSelfEdges {
		return fmt.Errorf("edge %v->%v: %w", na.id, nb.id, ErrSelfEdgeNotAllowed)
	}

	// Duplicate gate before any mutation keeps the two-sided insert atomic.
	if err = na.AddEdge(nb); err != nil {
		return err
	}
	if g.undirected && na != nb {
		// The forward insert succeeded and the symmetry invariant holds, so
		// the mirror set cannot already contain na; this cannot fail.
		nb.neighbors[na.id] = struct{}{}
	}

	return nil
}

// RemoveEdge deletes the edge a→b, and for undirected graphs the symmetric
// entry b→a. Mirror of AddEdge: validation precedes mutation.
// Returns ErrNodeNotFound or ErrMissingEdge.
// Complexity: O(1).
func (g *Graph) RemoveEdge(a, b Ref) error {
	na, err := g.GetNode(a)
	if err != nil {
		return err
	}
	nb, err := g.GetNode(b)
	if err != nil {
		return err
	}

	if err = na.RemoveEdge(nb); err != nil {
		return err
	}
	if g.undirected && na != nb {
		delete(nb.neighbors, na.id)
	}

	return nil
}

// Size returns the number of nodes. Complexity: O(1).
func (g *Graph) Size() int { return len(g.nodes) }

// Undirected reports whether edges are symmetric.
func (g *Graph) Undirected() bool { return g.undirected }

// SelfEdgesAllowed reports whether a node may neighbor itself.
func (g *Graph) SelfEdgesAllowed() bool { return g.allowSelfEdges }

// EdgeCount returns the number of edges. Undirected pairs count once;
// directed adjacency entries count individually; a self-edge counts once
// regardless of directedness.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	var twice, selfs int
	for _, n := range g.nodes {
		d := len(n.neighbors)
		if _, ok := n.neighbors[n.id]; ok {
			selfs++
			d--
		}
		twice += d
	}
	if g.undirected {
		return twice/2 + selfs
	}

	return twice + selfs
}

// MaxDegree returns the highest node degree, 0 for an empty graph.
// Complexity: O(V).
func (g *Graph) MaxDegree() int {
	var max int
	for _, n := range g.nodes {
		if d := n.Degree(); d > max {
			max = d
		}
	}

	return max
}

// DegreeHistogram rebuilds the degree distribution from current graph state:
// index k counts the nodes of degree k. The result always spans 0..MaxDegree
// inclusive (a single zero bucket for the empty graph) and sums to Size.
// It is a derived view, never stored incrementally.
// Complexity: O(V).
func (g *Graph) DegreeHistogram() []int {
	histogram := make([]int, g.MaxDegree()+1)
	for _, n := range g.nodes {
		histogram[n.Degree()]++
	}

	return histogram
}

// NormalizedDegreeDistribution returns the degree histogram with each bucket
// divided by the node count. The empty graph's distribution is defined as
// the single-element sequence [1.0].
// Complexity: O(V).
func (g *Graph) NormalizedDegreeDistribution() []float64 {
	if g.Size() == 0 {
		return []float64{1.0}
	}
	counts := g.DegreeHistogram()
	out := make([]float64, len(counts))
	total := float64(g.Size())
	for k, c := range counts {
		out[k] = float64(c) / total
	}

	return out
}
