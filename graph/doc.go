// Package graph provides the generic Node / Connection / Graph core used by
// every algorithm package in waygraph.
//
// What:
//
//   - Graph[V]: owner of all nodes and connections. Directedness is fixed at
//     construction (WithDirected); self-loops are opt-in (WithLoops).
//   - Node[V]: vertex wrapper around a user payload V, holding adjacency
//     lists and epoch-stamped per-run algorithm state.
//   - Connection[V]: a directed or undirected edge between two nodes,
//     carrying a WeightFunc that is re-evaluated on every Weight() call.
//   - WeightFunc[V]: pluggable pure cost function (a, b V) → float64.
//
// Why:
//
//   - Roguelike map graphs are mutated rarely but traversed constantly
//     (pathfinding every turn). Per-node epoch stamps let each algorithm run
//     reset only the nodes it touches instead of sweeping the whole graph.
//   - Recomputed weights keep dynamic terrain costs correct without any
//     cache-invalidation bookkeeping.
//
// Identity:
//
//   - Node identity is payload identity: V must be comparable, and the node
//     catalog is keyed by V. Two wrappers around equal payloads are the same
//     vertex.
//
// Edge policy (documented, applied consistently):
//
//   - AddEdge requires both endpoints to exist already (ErrNodeNotFound);
//     edges are never auto-created onto missing nodes.
//   - At most one connection per ordered (directed) or unordered
//     (undirected) pair: ErrEdgeExists on duplicates.
//   - Re-adding a node is an idempotent no-op; removing a missing node or
//     edge is a no-op reported via the bool return.
//
// Concurrency:
//
//   - None. A Graph is a single-threaded structure; algorithm runs on the
//     same Graph must be externally serialized.
//
// Errors:
//
//   - ErrNodeNotFound    edge endpoint is not a node of this graph
//   - ErrEdgeExists      connection between the pair already present
//   - ErrLoopNotAllowed  self-loop without WithLoops
package graph
