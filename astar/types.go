// Package astar: heuristic contract, options, result and sentinel errors.
package astar

import (
	"errors"
	"math"
)

// Sentinel errors for A* execution.
var (
	// ErrNilGraph is returned when a nil graph is passed to Path.
	ErrNilGraph = errors.New("astar: graph is nil")

	// ErrNilHeuristic is returned when the heuristic function is nil.
	ErrNilHeuristic = errors.New("astar: heuristic is nil")

	// ErrNodeNotFound indicates the start or goal payload has no node.
	ErrNodeNotFound = errors.New("astar: node not found")

	// ErrNegativeWeight indicates an edge's WeightFunc produced a negative
	// cost during the search.
	ErrNegativeWeight = errors.New("astar: negative edge weight")

	// ErrNoPath indicates the goal is unreachable from the start, or only
	// reachable at a cost above WithMaxCost.
	ErrNoPath = errors.New("astar: no path to goal")
)

// Heuristic estimates the remaining cost from v to goal. It must be
// admissible: for every v the estimate may not exceed the true minimal
// remaining cost, otherwise the search can return a suboptimal path.
type Heuristic[V comparable] func(v, goal V) float64

// Zero returns the all-zeroes heuristic, turning A* into Dijkstra.
func Zero[V comparable]() Heuristic[V] {
	return func(V, V) float64 { return 0 }
}

// Option configures optional behavior of the search.
type Option func(*Options)

// Options holds configurable parameters for a single search.
type Options struct {
	// MaxCost bounds the search: nodes whose tentative cost exceeds it are
	// never expanded, and a goal beyond it reports ErrNoPath.
	// Default +Inf.
	MaxCost float64
}

// DefaultOptions returns Options with no cost bound.
func DefaultOptions() Options {
	return Options{MaxCost: math.Inf(1)}
}

// WithMaxCost bounds exploration to paths of total cost ≤ limit.
func WithMaxCost(limit float64) Option {
	return func(o *Options) { o.MaxCost = limit }
}

// Result captures the outcome of a successful search.
type Result[V comparable] struct {
	// Path lists the payloads from start to goal inclusive.
	Path []V

	// Cost is the total weight along Path.
	Cost float64

	// Expanded counts the nodes whose edges were relaxed; a cheap measure
	// of how much of the map the heuristic let the search skip.
	Expanded int
}
