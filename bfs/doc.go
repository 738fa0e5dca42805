// Package bfs implements breadth-first traversal on a graph.Graph.
//
// BFS explores nodes in rings of increasing edge distance from the start,
// which makes it the natural primitive for unweighted reachability: light
// radius, flood fill, "how many steps away is the exit".
//
// Supported knobs mirror the dfs package where they make sense:
// cancellation via context, OnVisit hook with error abort, MaxDepth and
// neighbor filtering. Visitation state is epoch-stamped on the nodes via
// Graph.Algorithms run IDs; no global reset ever happens.
//
// Complexity: O(V + E) time, O(V) memory.
//
// Errors:
//
//   - ErrNilGraph       graph pointer is nil
//   - ErrStartNotFound  start payload has no node
//   - context.Canceled  traversal canceled via context
package bfs
