// Package graph: central type declarations, sentinel errors and the
// NewGraph constructor. Method implementations live in methods.go,
// node.go, connection.go and internals.go.
package graph

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an edge operation referenced a payload that
	// has no node in this graph.
	ErrNodeNotFound = errors.New("graph: node not found")

	// ErrEdgeExists indicates a connection between the given pair is already
	// present (multi-edges are not supported).
	ErrEdgeExists = errors.New("graph: edge already exists")

	// ErrLoopNotAllowed indicates a self-loop was attempted on a graph
	// constructed without WithLoops.
	ErrLoopNotAllowed = errors.New("graph: self-loop not allowed")
)

// WeightFunc computes the cost of a connection from its two endpoint
// payloads. It must be pure with respect to its arguments, but it may read
// external mutable state (e.g. live terrain costs): Connection.Weight
// re-evaluates it on every call.
type WeightFunc[V comparable] func(a, b V) float64

// ConstWeight returns a WeightFunc that ignores its endpoints and always
// yields w. Used by Connection.SetWeight and plain AddEdge.
func ConstWeight[V comparable](w float64) WeightFunc[V] {
	return func(V, V) float64 { return w }
}

// Kind tags a Connection as directed or undirected. Endpoint matching,
// adjacency mirroring and equality all dispatch on this tag.
type Kind uint8

const (
	// Undirected connections treat their endpoints as an unordered pair.
	Undirected Kind = iota
	// Directed connections run from A to B only.
	Directed
)

// String returns "directed" or "undirected" for diagnostics.
func (k Kind) String() string {
	if k == Directed {
		return "directed"
	}

	return "undirected"
}

// GraphOption configures a Graph before creation.
type GraphOption func(*config)

// config collects construction-time flags; both are immutable afterwards.
type config struct {
	directed   bool
	allowLoops bool
}

// WithDirected fixes the directedness of every connection the graph will
// create (true = directed, false = undirected). Default is undirected.
func WithDirected(directed bool) GraphOption {
	return func(c *config) { c.directed = directed }
}

// WithLoops permits self-loop connections (an edge from a node to itself).
func WithLoops() GraphOption {
	return func(c *config) { c.allowLoops = true }
}

// Graph is the aggregate owner of all nodes and connections.
//
// Nodes are cataloged by payload; order preserves insertion sequence and is
// the iteration order algorithms observe. runID backs the Algorithms()
// façade; it is a plain counter, so concurrent algorithm invocations on the
// same Graph are unsafe and must be externally serialized.
type Graph[V comparable] struct {
	directed   bool
	allowLoops bool

	nodes     map[V]*Node[V]
	order     []*Node[V] // insertion order; nil slots compacted on removal
	edgeCount int

	runID uint64
}

// NewGraph constructs an empty Graph with the given options.
// By default the graph is undirected and rejects self-loops.
// Complexity: O(1).
func NewGraph[V comparable](opts ...GraphOption) *Graph[V] {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[V]{
		directed:   cfg.directed,
		allowLoops: cfg.allowLoops,
		nodes:      make(map[V]*Node[V]),
	}
}

// Directed reports the directedness fixed at construction.
func (g *Graph[V]) Directed() bool { return g.directed }

// AllowsLoops reports whether self-loop connections are permitted.
func (g *Graph[V]) AllowsLoops() bool { return g.allowLoops }
