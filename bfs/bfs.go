package bfs

import (
	"fmt"

	"github.com/ferntold/waygraph/graph"
)

// queueItem pairs a node with its ring depth in the FIFO frontier.
type queueItem[V comparable] struct {
	node  *graph.Node[V]
	depth int
}

// BFS performs breadth-first search on g starting from start.
//
// Nodes are visited in non-decreasing edge distance; Depth and Parent in
// the result describe a shortest unweighted path tree. Visitation is
// stamped with a fresh run ID from g.Algorithms, so repeated calls on a
// persistent graph only ever touch the nodes they reach.
// Complexity: O(V + E).
func BFS[V comparable](g *graph.Graph[V], start V, opts ...Option[V]) (*Result[V], error) {
	// 1. Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	startNode, ok := g.Internals().Node(start)
	if !ok {
		return nil, ErrStartNotFound
	}

	// 2. Apply options.
	o := DefaultOptions[V]()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Initialize result and frontier.
	size := g.NodeCount()
	res := &Result[V]{
		Order:   make([]V, 0, size),
		Depth:   make(map[V]int, size),
		Parent:  make(map[V]V, size),
		Visited: make(map[V]bool, size),
	}
	runID := g.Algorithms().RequestRunID()

	startNode.ResetRun(runID)
	startNode.SetProcessed(true)
	queue := []queueItem[V]{{node: startNode}}

	// 4. Drain the frontier ring by ring.
	for len(queue) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		item := queue[0]
		queue = queue[1:]
		v := item.node.Value()

		res.Order = append(res.Order, v)
		res.Depth[v] = item.depth
		res.Visited[v] = true

		if o.OnVisit != nil {
			if err := o.OnVisit(v, item.depth); err != nil {
				return nil, fmt.Errorf("bfs: OnVisit hook for %v: %w", v, err)
			}
		}

		// Depth limit: the next ring would exceed it, so do not enqueue.
		if o.MaxDepth >= 0 && item.depth >= o.MaxDepth {
			continue
		}

		// 5. Enqueue unvisited neighbors.
		for _, c := range item.node.OutEdges() {
			nbr := c.Neighbor(item.node)
			nbr.ResetRun(runID)
			if nbr.Processed() {
				continue
			}
			if o.FilterNeighbor != nil && !o.FilterNeighbor(v, nbr.Value()) {
				continue
			}

			nbr.SetProcessed(true)
			res.Parent[nbr.Value()] = v
			queue = append(queue, queueItem[V]{node: nbr, depth: item.depth + 1})
		}
	}

	return res, nil
}
