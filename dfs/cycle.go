package dfs

import (
	"github.com/emirpasic/gods/sets/hashset"

	"github.com/ferntold/waygraph/graph"
)

// DetectCycle reports whether g contains at least one cycle.
//
// The search tries every node as a DFS root in the graph's internal order,
// so cycles hidden in disconnected components are still found, and stops at
// the first back-edge to a node on the active path. For undirected graphs
// the exact connection just traversed is skipped (not merely the parent
// node), so a single undirected edge never reads as a two-cycle. A
// self-loop is its own ancestor the moment it is pushed and is therefore
// reported as a cycle.
//
// Unless the graph allows self-loops, a graph with fewer than 3 nodes or
// fewer than 3 edges cannot hold a cycle and is rejected up front.
//
// The DFS runs on an explicit work-stack of (node, arriving edge,
// edge index) frames: memory is bounded by the heap, never by call-stack
// depth, while the traversal order matches the recursive formulation.
//
// A nil graph is cycle-free. Complexity: O(V + E) time, O(V) memory.
func DetectCycle[V comparable](g *graph.Graph[V]) bool {
	// 1. Nil and trivial graphs hold no cycle. The size short-circuit is
	//    skipped for loop-permitting graphs: a self-loop is a cycle with a
	//    single node and a single edge.
	if g == nil {
		return false
	}
	if !g.AllowsLoops() && (g.NodeCount() < 3 || g.EdgeCount() < 3) {
		return false
	}

	// 2. Stamp this run. Nodes reset lazily as the search reaches them.
	runID := g.Algorithms().RequestRunID()

	// 3. Membership of the active DFS path needs O(1) average lookups.
	onPath := hashset.New()

	// 4. Try each node as a root; short-circuit on the first cycle.
	for _, root := range g.Internals().Nodes() {
		root.ResetRun(runID)
		if root.Processed() {
			continue
		}
		if cycleFrom(g, root, runID, onPath) {
			return true
		}
	}

	return false
}

// frame is one suspended position of the iterative DFS: the node being
// expanded, the connection it was entered through (nil at the root) and the
// index of its next unexamined outgoing connection.
type frame[V comparable] struct {
	node *graph.Node[V]
	via  *graph.Connection[V]
	next int
}

// cycleFrom runs the back-edge search from root. It returns true as soon as
// any expansion reaches a node already on the active path.
func cycleFrom[V comparable](g *graph.Graph[V], root *graph.Node[V], runID uint64, onPath *hashset.Set) bool {
	stack := []*frame[V]{{node: root}}
	root.SetProcessed(true)
	onPath.Add(root)

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		out := top.node.OutEdges()

		// Exhausted: backtrack. Removing the node from the active path here
		// keeps siblings in other branches from seeing it as an ancestor.
		if top.next >= len(out) {
			onPath.Remove(top.node)
			stack = stack[:len(stack)-1]
			continue
		}

		c := out[top.next]
		top.next++

		// Undirected: do not walk straight back through the connection we
		// arrived by. Comparing the connection itself (not the parent node)
		// keeps the check unambiguous.
		if !g.Directed() && c == top.via {
			continue
		}

		nbr := c.Neighbor(top.node)
		nbr.ResetRun(runID)

		// Back-edge to a node on the active path: cycle. This is also the
		// branch that catches self-loops.
		if onPath.Contains(nbr) {
			return true
		}

		if !nbr.Processed() {
			nbr.SetProcessed(true)
			onPath.Add(nbr)
			stack = append(stack, &frame[V]{node: nbr, via: c})
		}
	}

	return false
}
