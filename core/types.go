// Package core: type declarations and sentinel errors.
//
// This file declares NodeID, Ref, Node, Graph, GraphOption, the sentinel
// errors, and the NewGraph constructor. Method implementations live in
// methods.go; deterministic read-only views live in view.go.

package core

import (
	"errors"
	"strconv"
)

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateNode indicates an AddNode with an identifier that already exists.
	ErrDuplicateNode = errors.New("core: duplicate node identifier")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDuplicateEdge indicates the referenced edge already exists.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrMissingEdge indicates the referenced edge does not exist.
	ErrMissingEdge = errors.New("core: edge not found")

	// ErrSelfEdgeNotAllowed indicates a self-edge was attempted while the
	// graph was constructed without WithSelfEdges.
	ErrSelfEdgeNotAllowed = errors.New("core: self-edge not allowed")
)

// idKind discriminates the two NodeID variants. Integer identifiers carry
// the smaller kind value so that the (kind, value) tuple ordering sorts all
// integers before all strings.
type idKind uint8

const (
	kindInt idKind = iota
	kindText
)

// NodeID identifies a node within a Graph. It is a sum type over int64 and
// string: construct one with IntID or StringID. The zero value is IntID(0).
//
// NodeID is comparable; two NodeIDs are equal (==) iff they hold the same
// kind and the same value. It is used directly as a map key throughout core.
type NodeID struct {
	kind idKind
	num  int64
	text string
}

// IntID returns the numeric identifier v.
func IntID(v int64) NodeID { return NodeID{kind: kindInt, num: v} }

// StringID returns the textual identifier s.
func StringID(s string) NodeID { return NodeID{kind: kindText, text: s} }

// IsInt reports whether id holds the numeric variant.
func (id NodeID) IsInt() bool { return id.kind == kindInt }

// Int returns the numeric value; meaningful only when IsInt is true.
func (id NodeID) Int() int64 { return id.num }

// Text returns the string value; meaningful only when IsInt is false.
func (id NodeID) Text() string { return id.text }

// Less reports whether id orders before other: numeric identifiers compare
// numerically and sort before any string identifier; string identifiers
// compare lexicographically among themselves.
// Complexity: O(len) for strings, O(1) for numbers.
func (id NodeID) Less(other NodeID) bool {
	if id.kind != other.kind {
		return id.kind < other.kind
	}
	if id.kind == kindInt {
		return id.num < other.num
	}

	return id.text < other.text
}

// String renders the identifier: decimal for numbers, single-quoted for
// strings, so that IntID(1) and StringID("1") stay visually distinct in
// adjacency dumps.
func (id NodeID) String() string {
	if id.kind == kindInt {
		return strconv.FormatInt(id.num, 10)
	}

	return "'" + id.text + "'"
}

// Ref is the id-or-node union accepted by all Graph lookups. It is satisfied
// by NodeID and by *Node, and is sealed to this package: external callers
// can reference nodes but never substitute a stand-in of their own.
type Ref interface {
	refID() NodeID
}

func (id NodeID) refID() NodeID { return id }

func (n *Node) refID() NodeID { return n.id }

// Node is a vertex owned by exactly one Graph.
//
// Its adjacency set holds neighbor identifiers (backlinks into the owning
// Graph's node pool), not node pointers; the Graph is the sole owner of node
// lifetime. Nodes are equal iff their identifiers are equal.
type Node struct {
	id        NodeID
	neighbors map[NodeID]struct{}
}

// newNode allocates a node with an empty adjacency set.
func newNode(id NodeID) *Node {
	return &Node{id: id, neighbors: make(map[NodeID]struct{})}
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the graph's directedness (true = directed,
// false = undirected). Graphs are undirected by default.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.undirected = !directed }
}

// WithSelfEdges permits edges from a node to itself.
func WithSelfEdges() GraphOption {
	return func(g *Graph) { g.allowSelfEdges = true }
}

// Graph is the core in-memory graph structure: a pool of nodes keyed by
// identifier plus two flags fixed at construction time. All edge state lives
// in the nodes' adjacency sets; no separate edge entity exists.
type Graph struct {
	// Configuration flags, immutable after NewGraph.
	undirected     bool // symmetric adjacency maintained on every mutation
	allowSelfEdges bool // whether a node may neighbor itself

	// nodes maps identifier → Node; identifiers are unique.
	nodes map[NodeID]*Node
}

// NewGraph creates an empty Graph. By default the graph is undirected and
// disallows self-edges.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		undirected: true,
		nodes:      make(map[NodeID]*Node),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
