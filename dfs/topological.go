package dfs

import (
	"context"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/ferntold/waygraph/graph"
)

// TopoOption configures optional behavior for TopologicalSort.
type TopoOption func(*topoOptions)

// topoOptions holds settings for TopologicalSort, currently cancellation.
type topoOptions struct {
	ctx context.Context
}

// WithCancelContext sets the cancellation context for the sort.
// A nil context is ignored.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// TopologicalSort computes a linear ordering of all nodes of the directed
// graph g such that for every connection u→v, u precedes v.
//
// Returns ErrNilGraph for a nil graph, ErrUndirectedGraph when g is
// undirected, ErrCycleDetected when g is not a DAG, and the context error
// on cancellation. Roots are tried in the graph's internal node order, so
// the ordering is deterministic for a given insertion sequence.
// Complexity: O(V + E) time, O(V) memory.
func TopologicalSort[V comparable](g *graph.Graph[V], options ...TopoOption) ([]V, error) {
	// 1. Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}

	// 2. Apply options.
	opts := topoOptions{ctx: context.Background()}
	for _, opt := range options {
		opt(&opts)
	}

	// 3. Iterative DFS collecting post-order; a back-edge to the active
	//    path means the graph is cyclic and has no topological order.
	runID := g.Algorithms().RequestRunID()
	onPath := hashset.New()
	post := make([]V, 0, g.NodeCount())

	for _, root := range g.Internals().Nodes() {
		root.ResetRun(runID)
		if root.Processed() {
			continue
		}

		stack := []*frame[V]{{node: root}}
		root.SetProcessed(true)
		onPath.Add(root)

		for len(stack) > 0 {
			select {
			case <-opts.ctx.Done():
				return nil, opts.ctx.Err()
			default:
			}

			top := stack[len(stack)-1]
			out := top.node.OutEdges()

			if top.next >= len(out) {
				// Fully expanded: record post-order and backtrack.
				onPath.Remove(top.node)
				post = append(post, top.node.Value())
				stack = stack[:len(stack)-1]
				continue
			}

			c := out[top.next]
			top.next++

			nbr := c.Neighbor(top.node)
			nbr.ResetRun(runID)
			if onPath.Contains(nbr) {
				return nil, ErrCycleDetected
			}
			if !nbr.Processed() {
				nbr.SetProcessed(true)
				onPath.Add(nbr)
				stack = append(stack, &frame[V]{node: nbr, via: c})
			}
		}
	}

	// 4. Reverse the post-order in place to obtain the topological order.
	for i, j := 0, len(post)-1; i < j; i, j = i+1, j-1 {
		post[i], post[j] = post[j], post[i]
	}

	return post, nil
}
