// Package bfs: options, result collector and sentinel errors.
package bfs

import (
	"context"
	"errors"
)

// Sentinel errors for BFS execution.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("bfs: graph is nil")

	// ErrStartNotFound is returned when the start payload is absent.
	ErrStartNotFound = errors.New("bfs: start node not found")
)

// Option configures BFS behavior via functional arguments.
type Option[V comparable] func(*Options[V])

// Options holds parameters and callbacks to customize BFS execution.
type Options[V comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a node with its ring depth. If it
	// returns an error, BFS aborts and propagates that error.
	OnVisit func(v V, depth int) error

	// MaxDepth, if non-negative, stops exploring beyond this ring.
	// Default -1 (no limit).
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor V) bool
}

// DefaultOptions returns Options with background context, no hook, no
// depth limit and no filtering.
func DefaultOptions[V comparable]() Options[V] {
	return Options[V]{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets a custom context for cancellation. Nil is ignored.
func WithContext[V comparable](ctx context.Context) Option[V] {
	return func(o *Options[V]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a visiting callback.
func WithOnVisit[V comparable](fn func(v V, depth int) error) Option[V] {
	return func(o *Options[V]) { o.OnVisit = fn }
}

// WithMaxDepth limits exploration to the given ring distance.
func WithMaxDepth[V comparable](limit int) Option[V] {
	return func(o *Options[V]) { o.MaxDepth = limit }
}

// WithFilterNeighbor skips edges for which fn returns false.
func WithFilterNeighbor[V comparable](fn func(curr, neighbor V) bool) Option[V] {
	return func(o *Options[V]) { o.FilterNeighbor = fn }
}

// Result captures the outcome of a breadth-first traversal.
type Result[V comparable] struct {
	// Order records payloads in visit sequence (ring by ring).
	Order []V

	// Depth maps each visited payload to its edge distance from the start.
	Depth map[V]int

	// Parent maps each visited payload to the payload it was discovered
	// from. The start node does not appear.
	Parent map[V]V

	// Visited flags the payloads reached during the traversal.
	Visited map[V]bool
}
