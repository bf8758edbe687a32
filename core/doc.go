// Package core defines the central Graph, Node, and NodeID types used by all
// lvlnet generators and statistics.
//
// A Graph owns a pool of nodes keyed by identifier. Node adjacency is stored
// as a set of identifier backlinks into that pool, never as owning pointers,
// so node lifetime is controlled by the Graph alone. Two immutable flags,
// chosen at construction time, determine edge semantics:
//
//   - undirected (default): every edge is kept as a symmetric pair of
//     adjacency entries, maintained eagerly on every mutation;
//   - self-edges (off by default): whether a node may neighbor itself.
//
// Identifiers form a small sum type: a NodeID is either an integer or a
// string. Integer identifiers order numerically and sort before any string
// identifier; string identifiers order lexicographically among themselves.
// This ordering drives every deterministic view (Nodes, Edges, String).
//
// Every mutating operation either fully succeeds, leaving all invariants
// intact, or returns a sentinel error without touching the graph:
//
//	ErrDuplicateNode      - a node with that identifier already exists.
//	ErrNodeNotFound       - an operation referenced an absent node.
//	ErrDuplicateEdge      - the edge already exists.
//	ErrMissingEdge        - the edge does not exist.
//	ErrSelfEdgeNotAllowed - self-edge attempted while self-edges are off.
//
// Construction and analysis are single-threaded by design: a graph is
// exclusively owned by its building code, then queried read-mostly. No
// internal locking is provided; confine each Graph to one goroutine.
package core
