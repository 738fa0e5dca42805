package graph

import "math"

// Node wraps a payload value and carries the adjacency and per-run algorithm
// state the traversal packages operate on. Nodes are created and destroyed
// only by their owning Graph; identity is the payload's own equality.
type Node[V comparable] struct {
	value V

	out []*Connection[V] // connections leaving this node
	in  []*Connection[V] // connections arriving; mirrors out when undirected

	// Epoch-stamped transient state. lastRun records the algorithm run that
	// last touched this node; ResetRun lazily reinitializes the fields below
	// when a new run arrives, so an algorithm pays only for nodes it visits.
	lastRun   uint64
	processed bool
	distance  float64
	parent    *Connection[V]
}

func newNode[V comparable](value V) *Node[V] {
	return &Node[V]{value: value, distance: math.Inf(1)}
}

// Value returns the wrapped payload.
func (n *Node[V]) Value() V { return n.value }

// OutEdges returns the live outgoing adjacency list. For undirected graphs
// this is the full neighbor set. Callers must not mutate the slice.
func (n *Node[V]) OutEdges() []*Connection[V] { return n.out }

// InEdges returns the live incoming adjacency list. For undirected graphs it
// holds the same connections as OutEdges.
func (n *Node[V]) InEdges() []*Connection[V] { return n.in }

// Degree returns the number of outgoing connections.
func (n *Node[V]) Degree() int { return len(n.out) }

// ResetRun lazily clears the per-run state when runID differs from the stamp
// of the last run that touched this node; otherwise it is a no-op. Distance
// resets to +Inf, parent to nil, processed to false.
// Complexity: O(1).
func (n *Node[V]) ResetRun(runID uint64) {
	if n.lastRun == runID {
		return
	}
	n.lastRun = runID
	n.processed = false
	n.distance = math.Inf(1)
	n.parent = nil
}

// Processed reports whether this node was fully visited in the current run.
func (n *Node[V]) Processed() bool { return n.processed }

// SetProcessed marks this node as fully visited in the current run.
func (n *Node[V]) SetProcessed(processed bool) { n.processed = processed }

// Distance returns the tentative path cost assigned in the current run
// (+Inf when untouched).
func (n *Node[V]) Distance() float64 { return n.distance }

// SetDistance records the tentative path cost for the current run.
func (n *Node[V]) SetDistance(d float64) { n.distance = d }

// Parent returns the connection this node was reached through in the
// current run, or nil for roots and untouched nodes.
func (n *Node[V]) Parent() *Connection[V] { return n.parent }

// SetParent records the connection this node was reached through.
func (n *Node[V]) SetParent(c *Connection[V]) { n.parent = c }

// detach removes c from the node's adjacency lists.
func (n *Node[V]) detach(c *Connection[V]) {
	n.out = removeConn(n.out, c)
	n.in = removeConn(n.in, c)
}

// removeConn deletes the first occurrence of c, preserving order so that
// traversal order stays deterministic after removals.
func removeConn[V comparable](conns []*Connection[V], c *Connection[V]) []*Connection[V] {
	for i, cand := range conns {
		if cand == c {
			return append(conns[:i], conns[i+1:]...)
		}
	}

	return conns
}
