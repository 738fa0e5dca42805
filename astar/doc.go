// Package astar implements A* shortest-path search on a graph.Graph with
// non-negative, dynamically computed edge weights.
//
// What:
//
//   - Path(g, start, goal, h, opts...): minimum-cost path from start to
//     goal, guided by an admissible Heuristic. With Zero[V]() the search
//     degrades to plain Dijkstra.
//   - Heuristic[V]: estimate of the remaining cost to the goal. It must be
//     admissible (never overestimate the true remaining cost) or the
//     returned path may be suboptimal.
//
// Why:
//
//   - Pathfinding on a persistent map graph happens every turn. Tentative
//     costs and parent links live in the core nodes' epoch-stamped fields,
//     so each search initializes only the nodes it actually reaches
//     instead of sweeping the whole map.
//   - Edge weights are re-evaluated through their WeightFunc during the
//     search, so dynamic terrain costs apply without rebuilding anything.
//
// The open list is a binary min-heap ordered by f = g + h, with the usual
// lazy-decrease-key strategy: improved entries are pushed again and stale
// ones skipped when popped.
//
// Complexity:
//
//   - Time:   O((V + E) log V)
//   - Memory: O(V + E)
//
// Errors:
//
//   - ErrNilGraph        graph pointer is nil
//   - ErrNilHeuristic    heuristic function is nil
//   - ErrNodeNotFound    start or goal payload has no node
//   - ErrNegativeWeight  a traversed edge evaluated to a negative cost
//   - ErrNoPath          goal is unreachable (or beyond WithMaxCost)
package astar
