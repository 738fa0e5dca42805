// Package waygraph is a small graph toolkit for 2D game maps: build a
// generic node/edge graph over any comparable payload, then run traversal,
// cycle detection and heuristic pathfinding over it.
//
// What's inside:
//
//	graph/     — generic Graph, Node and Connection types; directed or
//	             undirected, with pluggable dynamic edge weights
//	dfs/       — depth-first traversal, cycle detection, topological sort
//	bfs/       — breadth-first traversal with ring distances
//	astar/     — A* / Dijkstra shortest paths with admissible heuristics
//	gridgraph/ — 2D terrain-cost grids converted into walkable graphs
//
// The packages share one execution model: graphs are mutated rarely and
// traversed constantly, so per-run algorithm state lives on the nodes,
// stamped with monotonically increasing run IDs. Each search resets only
// the nodes it touches; repeated pathfinding on a persistent map graph
// never pays for a graph-wide sweep.
//
// Quick sketch:
//
//	grid, _ := gridgraph.NewGrid(costs, gridgraph.DefaultOptions())
//	g := grid.ToGraph()
//	route, _ := astar.Path(g, from, to, gridgraph.Manhattan())
//
// Graphs are single-threaded structures: serialize mutation and algorithm
// runs externally if you share one across goroutines.
package waygraph
