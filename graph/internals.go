// Package graph: the Algorithms façade and the Internals view.
//
// The public Graph surface is payload-oriented; algorithm packages instead
// walk raw *Node adjacency through Internals and stamp their traversals
// with run IDs handed out by Algorithms. Application code should not need
// either.
package graph

// Algorithms is the shared façade all algorithm runs go through. Its run-ID
// counter is monotonically increasing and never reused, letting every run
// reset per-node state lazily (Node.ResetRun) instead of sweeping the graph.
type Algorithms[V comparable] struct {
	g *Graph[V]
}

// Algorithms returns the façade for this graph.
func (g *Graph[V]) Algorithms() *Algorithms[V] {
	return &Algorithms[V]{g: g}
}

// RequestRunID returns a fresh run identifier. The counter is a plain
// integer: concurrent algorithm invocations on one Graph are unsafe and
// must be externally serialized.
func (a *Algorithms[V]) RequestRunID() uint64 {
	a.g.runID++

	return a.g.runID
}

// Internals exposes the raw node layer. Read-only with respect to graph
// structure: algorithm packages may flip per-run node state but must never
// add or remove nodes or connections through this view.
type Internals[V comparable] struct {
	g *Graph[V]
}

// Internals returns the raw-node view for algorithm implementations.
func (g *Graph[V]) Internals() *Internals[V] {
	return &Internals[V]{g: g}
}

// Nodes returns the node wrappers in insertion order. The slice is the
// graph's own backing array view; callers must not mutate it.
func (in *Internals[V]) Nodes() []*Node[V] {
	return in.g.order
}

// Node returns the wrapper for value and whether it exists.
func (in *Internals[V]) Node(value V) (*Node[V], bool) {
	n, ok := in.g.nodes[value]

	return n, ok
}
