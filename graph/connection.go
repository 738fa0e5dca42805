package graph

// Connection is a single edge between two nodes. It is a tagged variant:
// the Kind decides whether endpoint matching treats (a, b) as an ordered or
// an unordered pair. Connections are created only by Graph.AddEdge and
// always reference nodes of the graph that created them.
type Connection[V comparable] struct {
	kind   Kind
	a, b   *Node[V]
	weight WeightFunc[V]
}

func newConnection[V comparable](kind Kind, a, b *Node[V], fn WeightFunc[V]) *Connection[V] {
	return &Connection[V]{kind: kind, a: a, b: b, weight: fn}
}

// Kind reports whether this connection is Directed or Undirected.
func (c *Connection[V]) Kind() Kind { return c.kind }

// A returns the payload of the first endpoint (the source when directed).
func (c *Connection[V]) A() V { return c.a.value }

// B returns the payload of the second endpoint (the target when directed).
func (c *Connection[V]) B() V { return c.b.value }

// Weight evaluates the stored WeightFunc against the endpoint payloads.
// It recomputes on every call rather than caching, so weight functions that
// read mutable external state (dynamic terrain cost) stay correct without
// invalidation bookkeeping.
func (c *Connection[V]) Weight() float64 {
	return c.weight(c.a.value, c.b.value)
}

// SetWeight installs a constant-returning WeightFunc with the given value.
func (c *Connection[V]) SetWeight(w float64) {
	c.weight = ConstWeight[V](w)
}

// SetWeightFunc replaces the weight function.
func (c *Connection[V]) SetWeightFunc(fn WeightFunc[V]) {
	c.weight = fn
}

// HasEndpoints reports whether this connection joins u and v.
// Directed: true only for a==u && b==v. Undirected: true in either order.
// Complexity: O(1).
func (c *Connection[V]) HasEndpoints(u, v V) bool {
	if c.a.value == u && c.b.value == v {
		return true
	}
	if c.kind == Undirected {
		return c.a.value == v && c.b.value == u
	}

	return false
}

// Other returns the endpoint opposite to v. For a self-loop both endpoints
// are v and v itself is returned. The second result is false when v is not
// an endpoint at all.
func (c *Connection[V]) Other(v V) (V, bool) {
	switch {
	case c.a.value == v:
		return c.b.value, true
	case c.b.value == v:
		return c.a.value, true
	default:
		var zero V
		return zero, false
	}
}

// otherNode is the node-level counterpart of Other, used by the algorithm
// packages walking raw adjacency.
func (c *Connection[V]) otherNode(n *Node[V]) *Node[V] {
	if c.a == n {
		return c.b
	}

	return c.a
}

// NodeA returns the first endpoint's node wrapper. Intended for algorithm
// packages reaching the core through Graph.Internals.
func (c *Connection[V]) NodeA() *Node[V] { return c.a }

// NodeB returns the second endpoint's node wrapper.
func (c *Connection[V]) NodeB() *Node[V] { return c.b }

// Neighbor returns the node on the far side of c from n.
// For a self-loop it returns n itself.
func (c *Connection[V]) Neighbor(n *Node[V]) *Node[V] { return c.otherNode(n) }
