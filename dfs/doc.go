// Package dfs implements depth-first traversal, cycle detection and
// topological sort on a graph.Graph.
//
// What:
//
//   - DFS(g, start, opts...): traverse from a root, or the whole forest via
//     WithFullTraversal. Supports pre-/post-order hooks, cancellation via
//     context.Context, depth limiting and neighbor filtering.
//   - DetectCycle(g): report whether any simple cycle exists, in directed
//     or undirected graphs, across disconnected components. Uses an
//     explicit work-stack, so arbitrarily deep graphs cannot exhaust the
//     call stack.
//   - TopologicalSort(g): linear ordering of a directed acyclic graph;
//     ErrCycleDetected on cyclic input.
//
// Why:
//
//   - Dungeon connectivity checks, dependency ordering of map generation
//     passes, and loop detection in trigger graphs all reduce to these
//     three primitives.
//
// Visitation state lives on the nodes themselves, stamped with a run ID
// from Graph.Algorithms, so repeated calls touch only the nodes they reach.
//
// Complexity:
//
//   - DFS:             Time O(V+E), Memory O(V)
//   - DetectCycle:     Time O(V+E), Memory O(V) (work stack + membership set)
//   - TopologicalSort: Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrNilGraph          graph pointer is nil
//   - ErrStartNotFound     start payload has no node
//   - ErrUndirectedGraph   TopologicalSort on an undirected graph
//   - ErrCycleDetected     cycle found where a DAG is required
//   - context.Canceled     traversal canceled via context
package dfs
