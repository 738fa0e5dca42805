// Package graph: Graph mutation and query methods.
//
// All operations are local: a failed call leaves the graph unchanged, and
// removal of a missing target is a reported no-op, never a crash.
package graph

// AddNode inserts a node wrapping value if none is present yet.
// Returns true when an insertion happened; re-adding an existing payload is
// an idempotent no-op returning false.
// Complexity: O(1) amortized.
func (g *Graph[V]) AddNode(value V) bool {
	if _, exists := g.nodes[value]; exists {
		return false
	}
	n := newNode(value)
	g.nodes[value] = n
	g.order = append(g.order, n)

	return true
}

// HasNode reports whether value has a node in this graph.
// Complexity: O(1).
func (g *Graph[V]) HasNode(value V) bool {
	_, exists := g.nodes[value]

	return exists
}

// RemoveNode deletes the node for value together with every incident
// connection, in both directions for directed graphs. Returns false (no-op)
// when value has no node; removing twice equals removing once.
// Complexity: O(deg(v) + N), with N for the insertion-order compaction.
func (g *Graph[V]) RemoveNode(value V) bool {
	n, exists := g.nodes[value]
	if !exists {
		return false
	}

	// 1) Collect the distinct incident connections. A connection can appear
	//    in both the out and in list (undirected mirroring, self-loops), so
	//    dedup before detaching.
	incident := make(map[*Connection[V]]struct{}, len(n.out)+len(n.in))
	for _, c := range n.out {
		incident[c] = struct{}{}
	}
	for _, c := range n.in {
		incident[c] = struct{}{}
	}

	// 2) Detach each from both endpoints and drop it from the edge count.
	for c := range incident {
		c.a.detach(c)
		c.b.detach(c)
		g.edgeCount--
	}

	// 3) Remove the node itself from catalog and insertion order.
	delete(g.nodes, value)
	for i, cand := range g.order {
		if cand == n {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	return true
}

// AddEdge creates a connection from u to v with a constant weight.
// See AddEdgeWeightFunc for the full policy.
func (g *Graph[V]) AddEdge(u, v V, weight float64) (*Connection[V], error) {
	return g.AddEdgeWeightFunc(u, v, ConstWeight[V](weight))
}

// AddEdgeWeightFunc creates a connection from u to v whose cost is computed
// by fn on every Weight() call.
//
// Policy: both endpoints must already be nodes (ErrNodeNotFound; edges are
// never auto-created onto missing nodes); at most one connection per
// ordered/unordered pair (ErrEdgeExists); self-loops require WithLoops
// (ErrLoopNotAllowed). The connection variant follows the graph's fixed
// directedness; undirected connections are registered in both endpoints'
// adjacency lists as a single shared object.
// Complexity: O(deg(u)) for the duplicate check.
func (g *Graph[V]) AddEdgeWeightFunc(u, v V, fn WeightFunc[V]) (*Connection[V], error) {
	// 1) Endpoint presence.
	nu, ok := g.nodes[u]
	if !ok {
		return nil, ErrNodeNotFound
	}
	nv, ok := g.nodes[v]
	if !ok {
		return nil, ErrNodeNotFound
	}

	// 2) Loop constraint.
	if u == v && !g.allowLoops {
		return nil, ErrLoopNotAllowed
	}

	// 3) Single-edge constraint: directed checks u→v only, undirected
	//    matches either orientation via HasEndpoints.
	for _, c := range nu.out {
		if c.HasEndpoints(u, v) {
			return nil, ErrEdgeExists
		}
	}

	// 4) Build the tagged variant and register adjacency.
	kind := Undirected
	if g.directed {
		kind = Directed
	}
	c := newConnection(kind, nu, nv, fn)

	nu.out = append(nu.out, c)
	nv.in = append(nv.in, c)
	if kind == Undirected && nu != nv {
		// Mirror so both endpoints see the same connection as outgoing and
		// incoming; loops are registered once above.
		nv.out = append(nv.out, c)
		nu.in = append(nu.in, c)
	}
	g.edgeCount++

	return c, nil
}

// RemoveEdge deletes the connection joining u and v. For directed graphs
// only u→v is removed; a v→u connection, if present, stays intact.
// Returns false (no-op) when no such connection exists.
// Complexity: O(deg(u) + deg(v)).
func (g *Graph[V]) RemoveEdge(u, v V) bool {
	nu, ok := g.nodes[u]
	if !ok {
		return false
	}
	for _, c := range nu.out {
		if c.HasEndpoints(u, v) {
			c.a.detach(c)
			c.b.detach(c)
			g.edgeCount--

			return true
		}
	}

	return false
}

// Edge returns the connection joining u and v (directed: u→v only) and
// whether it exists.
// Complexity: O(deg(u)).
func (g *Graph[V]) Edge(u, v V) (*Connection[V], bool) {
	nu, ok := g.nodes[u]
	if !ok {
		return nil, false
	}
	for _, c := range nu.out {
		if c.HasEndpoints(u, v) {
			return c, true
		}
	}

	return nil, false
}

// HasEdge reports whether a connection joins u and v (directed: u→v only).
func (g *Graph[V]) HasEdge(u, v V) bool {
	_, ok := g.Edge(u, v)

	return ok
}

// NodeCount returns the number of nodes.
func (g *Graph[V]) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of distinct connections; an undirected
// connection counts once even though both endpoints list it.
func (g *Graph[V]) EdgeCount() int { return g.edgeCount }

// Nodes returns the payloads in insertion order. The slice is a copy.
// Complexity: O(N).
func (g *Graph[V]) Nodes() []V {
	out := make([]V, len(g.order))
	for i, n := range g.order {
		out[i] = n.value
	}

	return out
}

// Connections returns every distinct connection in insertion order of their
// source node. The slice is a copy; the connections are live.
// Complexity: O(N + E).
func (g *Graph[V]) Connections() []*Connection[V] {
	out := make([]*Connection[V], 0, g.edgeCount)
	for _, n := range g.order {
		for _, c := range n.out {
			// Undirected connections appear in both endpoints' out lists;
			// take each at its original source only.
			if c.a == n {
				out = append(out, c)
			}
		}
	}

	return out
}
