package dfs

import (
	"fmt"

	"github.com/ferntold/waygraph/graph"
)

// walker encapsulates state during one DFS invocation.
type walker[V comparable] struct {
	g     *graph.Graph[V]
	opts  Options[V]
	res   *Result[V]
	runID uint64
}

// DFS performs depth-first search on g. With WithFullTraversal it covers
// every disconnected component; otherwise it explores only the tree rooted
// at start. Visitation is stamped with a fresh run ID, so repeated calls on
// a persistent graph never pay for a global reset.
//
// Returns ErrNilGraph or ErrStartNotFound on invalid input, the context
// error on cancellation, and any error produced by a hook.
// Complexity: O(V + E).
func DFS[V comparable](g *graph.Graph[V], start V, opts ...Option[V]) (*Result[V], error) {
	// 1. Validate input graph.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 2. Apply options.
	o := DefaultOptions[V]()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Single-source mode: verify the start payload.
	startNode, ok := g.Internals().Node(start)
	if !ok && !o.FullTraversal {
		return nil, ErrStartNotFound
	}

	// 4. Initialize the result with capacity hints.
	size := g.NodeCount()
	w := &walker[V]{
		g:    g,
		opts: o,
		res: &Result[V]{
			Order:   make([]V, 0, size),
			Depth:   make(map[V]int, size),
			Parent:  make(map[V]V, size),
			Visited: make(map[V]bool, size),
		},
		runID: g.Algorithms().RequestRunID(),
	}

	// 5. Traverse: full forest or a single tree.
	if o.FullTraversal {
		for _, n := range g.Internals().Nodes() {
			n.ResetRun(w.runID)
			if n.Processed() {
				continue
			}
			if err := w.traverse(n, 0); err != nil {
				return w.res, err
			}
		}
	} else {
		startNode.ResetRun(w.runID)
		if err := w.traverse(startNode, 0); err != nil {
			return w.res, err
		}
	}

	return w.res, nil
}

// traverse visits n at the given depth and recurses into its neighbors.
// The caller must have called ResetRun on n for the current run.
func (w *walker[V]) traverse(n *graph.Node[V], depth int) error {
	// 1. Cancellation check.
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Depth limit.
	if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
		return nil
	}

	// 3. Mark visited and record discovery depth.
	v := n.Value()
	n.SetProcessed(true)
	w.res.Visited[v] = true
	w.res.Depth[v] = depth

	// 4. Pre-order hook.
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(v); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %v: %w", v, err)
		}
	}

	// 5. Explore each outgoing connection.
	for _, c := range n.OutEdges() {
		nbr := c.Neighbor(n)
		nbr.ResetRun(w.runID)
		if nbr.Processed() {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nbr.Value()) {
			w.res.SkippedNeighbors++
			continue
		}

		w.res.Parent[nbr.Value()] = v
		if err := w.traverse(nbr, depth+1); err != nil {
			return err
		}
	}

	// 6. Post-order hook, then record finish order.
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(v); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %v: %w", v, err)
		}
	}
	w.res.Order = append(w.res.Order, v)

	return nil
}
