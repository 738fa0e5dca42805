package astar

import (
	"fmt"

	"github.com/emirpasic/gods/trees/binaryheap"

	"github.com/ferntold/waygraph/graph"
)

// openItem is one open-list entry: a node together with the tentative cost
// it was pushed at (g) and its heap priority (f = g + heuristic).
// Lazy decrease-key means a node can have several entries; all but the one
// matching the node's current distance are stale.
type openItem[V comparable] struct {
	node *graph.Node[V]
	g    float64
	f    float64
}

// Path computes the minimum-cost path from start to goal in g, guided by
// the admissible heuristic h.
//
// Tentative costs and parent connections are kept in the nodes themselves,
// stamped with a fresh run ID, so repeated searches on a persistent graph
// reset only what they touch. Edge weights are evaluated through their
// WeightFunc during relaxation; a negative evaluation aborts with
// ErrNegativeWeight (weights are dynamic, so there is no meaningful
// pre-scan).
//
// Complexity: O((V + E) log V) time, O(V + E) memory.
func Path[V comparable](g *graph.Graph[V], start, goal V, h Heuristic[V], opts ...Option) (*Result[V], error) {
	// 1. Validate inputs.
	if g == nil {
		return nil, ErrNilGraph
	}
	if h == nil {
		return nil, ErrNilHeuristic
	}
	in := g.Internals()
	startNode, ok := in.Node(start)
	if !ok {
		return nil, fmt.Errorf("%w: start %v", ErrNodeNotFound, start)
	}
	goalNode, ok := in.Node(goal)
	if !ok {
		return nil, fmt.Errorf("%w: goal %v", ErrNodeNotFound, goal)
	}

	// 2. Apply options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	// 3. Fresh run: only nodes the search reaches get reset.
	runID := g.Algorithms().RequestRunID()
	startNode.ResetRun(runID)
	startNode.SetDistance(0)

	// 4. Open list: min-heap on f. Ties resolve on g (prefer the deeper
	//    entry) to keep expansion order stable.
	open := binaryheap.NewWith(func(a, b interface{}) int {
		ia, ib := a.(*openItem[V]), b.(*openItem[V])
		switch {
		case ia.f < ib.f:
			return -1
		case ia.f > ib.f:
			return 1
		case ia.g > ib.g:
			return -1
		case ia.g < ib.g:
			return 1
		default:
			return 0
		}
	})
	open.Push(&openItem[V]{node: startNode, g: 0, f: h(start, goal)})

	expanded := 0

	// 5. Main loop: expand the cheapest open node, relax its edges.
	for !open.Empty() {
		raw, _ := open.Pop()
		item := raw.(*openItem[V])
		n := item.node

		// Stale or already finalized entries are skipped, not removed.
		if n.Processed() || item.g > n.Distance() {
			continue
		}

		// Goal reached: its cost is final, reconstruct the path.
		if n == goalNode {
			return reconstruct(goalNode, expanded), nil
		}

		n.SetProcessed(true)
		expanded++

		for _, c := range n.OutEdges() {
			w := c.Weight()
			if w < 0 {
				return nil, fmt.Errorf("%w: %v→%v weight=%g", ErrNegativeWeight, c.A(), c.B(), w)
			}

			nbr := c.Neighbor(n)
			nbr.ResetRun(runID)
			if nbr.Processed() {
				continue
			}

			ng := n.Distance() + w
			if ng > o.MaxCost {
				continue
			}
			// Strict improvement only, to avoid churning equal-cost
			// duplicates through the heap.
			if ng >= nbr.Distance() {
				continue
			}

			nbr.SetDistance(ng)
			nbr.SetParent(c)
			open.Push(&openItem[V]{node: nbr, g: ng, f: ng + h(nbr.Value(), goal)})
		}
	}

	return nil, ErrNoPath
}

// reconstruct walks parent connections back from the goal and reverses the
// sequence into start→goal order.
func reconstruct[V comparable](goal *graph.Node[V], expanded int) *Result[V] {
	payloads := []V{goal.Value()}
	for n := goal; n.Parent() != nil; {
		c := n.Parent()
		n = c.Neighbor(n)
		payloads = append(payloads, n.Value())
	}
	for i, j := 0, len(payloads)-1; i < j; i, j = i+1, j-1 {
		payloads[i], payloads[j] = payloads[j], payloads[i]
	}

	return &Result[V]{
		Path:     payloads,
		Cost:     goal.Distance(),
		Expanded: expanded,
	}
}
