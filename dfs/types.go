// Package dfs: options, result collector and sentinel errors.
package dfs

import (
	"context"
	"errors"
)

// Sentinel errors for DFS-family operations.
var (
	// ErrNilGraph is returned when a nil graph is passed to DFS or
	// TopologicalSort.
	ErrNilGraph = errors.New("dfs: graph is nil")

	// ErrStartNotFound indicates the start payload has no node in the graph.
	ErrStartNotFound = errors.New("dfs: start node not found")

	// ErrUndirectedGraph indicates TopologicalSort was invoked on an
	// undirected graph.
	ErrUndirectedGraph = errors.New("dfs: directed graph required")

	// ErrCycleDetected indicates a cycle was found where a DAG is required.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of DFS traversal.
type Option[V comparable] func(*Options[V])

// Options holds configurable parameters for DFS traversal.
// Complexity stays O(V+E) as long as hooks and filters are O(1).
type Options[V comparable] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, runs when a node is discovered (pre-order).
	// Returning an error aborts the traversal with that error.
	OnVisit func(v V) error

	// OnExit, if non-nil, runs after a node's descendants are fully
	// explored (post-order), before the node is appended to Result.Order.
	OnExit func(v V) error

	// MaxDepth, if non-negative, limits traversal to the given depth.
	// Depth 0 visits only the start node. Default -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is consulted before walking into a
	// neighbor. Return false to skip it; skips are counted in the result.
	FilterNeighbor func(v V) bool

	// FullTraversal restarts DFS from every unvisited node, covering
	// disconnected components. Default false.
	FullTraversal bool
}

// DefaultOptions returns Options with background context, no hooks, no
// depth limit, no filtering and single-source traversal.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the cancellation context. A nil context is ignored.
func WithContext[V comparable](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs a pre-order hook.
func WithOnVisit[V comparable](fn func(v V) error) Option[V] {
	return func(o *Options[V]) { o.OnVisit = fn }
}

// WithOnExit installs a post-order hook.
func WithOnExit[V comparable](fn func(v V) error) Option[V] {
	return func(o *Options[V]) { o.OnExit = fn }
}

// WithMaxDepth limits traversal depth; 0 visits only the start node.
func WithMaxDepth[V comparable](limit int) Option[V] {
	return func(o *Options[V]) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips neighbors for which fn returns false.
func WithFilterNeighbor[V comparable](fn func(v V) bool) Option[V] {
	return func(o *Options[V]) { o.FilterNeighbor = fn }
}

// WithFullTraversal covers disconnected components by restarting from
// every unvisited node.
func WithFullTraversal[V comparable]() Option[V] {
	return func(o *Options[V]) { o.FullTraversal = true }
}

// Result captures the outcome of a depth-first traversal.
type Result[V comparable] struct {
	// Order records payloads in finish (post-order) sequence.
	Order []V

	// Depth maps each visited payload to its edge distance from its root.
	Depth map[V]int

	// Parent maps each visited payload to the payload it was discovered
	// from. Roots do not appear.
	Parent map[V]V

	// Visited flags the payloads reached during the traversal.
	Visited map[V]bool

	// SkippedNeighbors counts neighbors rejected by FilterNeighbor.
	SkippedNeighbors int
}
