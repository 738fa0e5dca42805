// Package gridgraph: core types, options and sentinel errors.
package gridgraph

import (
	"errors"
	"math"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")

	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")

	// ErrNegativeCost indicates a negative terrain cost, which pathfinding
	// cannot handle.
	ErrNegativeCost = errors.New("gridgraph: terrain cost must be non-negative")
)

// Wall is the terrain cost marking a cell as impassable.
var Wall = math.Inf(1)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or
// including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Cell identifies one grid position. It is a comparable value type, so it
// serves directly as the payload of the converted graph.
type Cell struct {
	X, Y int
}

// Options contains tunable parameters for grid conversion.
type Options struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultOptions returns Options with orthogonal connectivity.
func DefaultOptions() Options {
	return Options{Conn: Conn4}
}
