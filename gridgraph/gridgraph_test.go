package gridgraph_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferntold/waygraph/astar"
	"github.com/ferntold/waygraph/gridgraph"
)

// TestNewGrid_Validation covers construction failures.
func TestNewGrid_Validation(t *testing.T) {
	_, err := gridgraph.NewGrid(nil, gridgraph.DefaultOptions())
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = gridgraph.NewGrid([][]float64{{}}, gridgraph.DefaultOptions())
	assert.ErrorIs(t, err, gridgraph.ErrEmptyGrid)

	_, err = gridgraph.NewGrid([][]float64{{1, 1}, {1}}, gridgraph.DefaultOptions())
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)

	_, err = gridgraph.NewGrid([][]float64{{1, -2}}, gridgraph.DefaultOptions())
	assert.ErrorIs(t, err, gridgraph.ErrNegativeCost)
}

// TestNewGrid_CopiesInput: mutating the source slice must not leak in.
func TestNewGrid_CopiesInput(t *testing.T) {
	src := [][]float64{{1, 1}}
	g, err := gridgraph.NewGrid(src, gridgraph.DefaultOptions())
	require.NoError(t, err)

	src[0][0] = 99
	c, err := g.Cost(0, 0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, c, 1e-9)
}

// TestToGraph_Conn4Topology: a 2×2 open floor yields 4 nodes and 4 edges.
func TestToGraph_Conn4Topology(t *testing.T) {
	g, err := gridgraph.NewGrid([][]float64{
		{1, 1},
		{1, 1},
	}, gridgraph.DefaultOptions())
	require.NoError(t, err)

	gr := g.ToGraph()
	assert.Equal(t, 4, gr.NodeCount())
	assert.Equal(t, 4, gr.EdgeCount()) // no diagonals under Conn4
	assert.True(t, gr.HasEdge(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 1, Y: 0}))
	assert.False(t, gr.HasEdge(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 1, Y: 1}))
}

// TestToGraph_Conn8AddsDiagonals: the same floor with diagonals.
func TestToGraph_Conn8AddsDiagonals(t *testing.T) {
	g, err := gridgraph.NewGrid([][]float64{
		{1, 1},
		{1, 1},
	}, gridgraph.Options{Conn: gridgraph.Conn8})
	require.NoError(t, err)

	gr := g.ToGraph()
	assert.Equal(t, 6, gr.EdgeCount()) // 4 orthogonal + 2 diagonal

	diag, ok := gr.Edge(gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 1, Y: 1})
	require.True(t, ok)
	assert.InDelta(t, math.Sqrt2, diag.Weight(), 1e-9)
}

// TestToGraph_WallsExcluded: impassable cells get no node.
func TestToGraph_WallsExcluded(t *testing.T) {
	g, err := gridgraph.NewGrid([][]float64{
		{1, gridgraph.Wall},
		{1, 1},
	}, gridgraph.DefaultOptions())
	require.NoError(t, err)

	gr := g.ToGraph()
	assert.Equal(t, 3, gr.NodeCount())
	assert.False(t, gr.HasNode(gridgraph.Cell{X: 1, Y: 0}))
}

// TestPathfinding_AroundWall: A* must route around a wall column.
func TestPathfinding_AroundWall(t *testing.T) {
	//  S # G      S=(0,0)  G=(2,0)  wall column at x=1,y=0..1
	//  . # .
	//  . . .
	g, err := gridgraph.NewGrid([][]float64{
		{1, gridgraph.Wall, 1},
		{1, gridgraph.Wall, 1},
		{1, 1, 1},
	}, gridgraph.DefaultOptions())
	require.NoError(t, err)

	gr := g.ToGraph()
	res, err := astar.Path(gr,
		gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 2, Y: 0},
		gridgraph.Manhattan(),
	)
	require.NoError(t, err)

	// Down the left side, across the bottom, up the right side: 6 steps.
	assert.InDelta(t, 6.0, res.Cost, 1e-9)
	assert.Equal(t, gridgraph.Cell{X: 0, Y: 0}, res.Path[0])
	assert.Equal(t, gridgraph.Cell{X: 2, Y: 0}, res.Path[len(res.Path)-1])
}

// TestPathfinding_DynamicTerrain: raising a cell's cost after conversion
// reroutes the very next search, with no graph rebuild.
func TestPathfinding_DynamicTerrain(t *testing.T) {
	// 3×3 open floor; direct route across the middle row first.
	g, err := gridgraph.NewGrid([][]float64{
		{1, 1, 1},
		{1, 1, 1},
		{1, 1, 1},
	}, gridgraph.DefaultOptions())
	require.NoError(t, err)
	gr := g.ToGraph()

	start, goal := gridgraph.Cell{X: 0, Y: 1}, gridgraph.Cell{X: 2, Y: 1}

	res, err := astar.Path(gr, start, goal, gridgraph.Manhattan())
	require.NoError(t, err)
	assert.InDelta(t, 2.0, res.Cost, 1e-9) // straight through (1,1)

	// Lava floods the center cell.
	require.NoError(t, g.SetCost(1, 1, 20))

	res, err = astar.Path(gr, start, goal, gridgraph.Manhattan())
	require.NoError(t, err)
	assert.InDelta(t, 4.0, res.Cost, 1e-9) // around via a corner row
	for _, c := range res.Path {
		assert.NotEqual(t, gridgraph.Cell{X: 1, Y: 1}, c)
	}
}

// TestPathfinding_PostConversionWall: a cell walled after conversion keeps
// its node but its edges evaluate to +Inf and stop being walkable.
func TestPathfinding_PostConversionWall(t *testing.T) {
	// 1×3 corridor; walling the middle cell cuts it.
	g, err := gridgraph.NewGrid([][]float64{
		{1, 1, 1},
	}, gridgraph.DefaultOptions())
	require.NoError(t, err)
	gr := g.ToGraph()

	require.NoError(t, g.SetCost(1, 0, gridgraph.Wall))

	_, err = astar.Path(gr,
		gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 2, Y: 0},
		gridgraph.Manhattan(),
	)
	assert.ErrorIs(t, err, astar.ErrNoPath)
}

// TestHeuristics_Admissible: on unit-cost grids neither heuristic may
// exceed the true remaining cost.
func TestHeuristics_Admissible(t *testing.T) {
	v, goal := gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 3, Y: 4}

	assert.InDelta(t, 7.0, gridgraph.Manhattan()(v, goal), 1e-9)
	assert.InDelta(t, 4.0, gridgraph.Chebyshev()(v, goal), 1e-9)
	// Chebyshev never exceeds Manhattan; both are admissible for their
	// respective movement models.
	assert.LessOrEqual(t, gridgraph.Chebyshev()(v, goal), gridgraph.Manhattan()(v, goal))
}

// ExampleGrid_ToGraph converts a tiny map and finds a route.
func ExampleGrid_ToGraph() {
	grid, _ := gridgraph.NewGrid([][]float64{
		{1, gridgraph.Wall, 1},
		{1, 1, 1},
	}, gridgraph.DefaultOptions())

	g := grid.ToGraph()
	res, _ := astar.Path(g,
		gridgraph.Cell{X: 0, Y: 0}, gridgraph.Cell{X: 2, Y: 0},
		gridgraph.Manhattan(),
	)

	fmt.Println("steps:", len(res.Path)-1)
	fmt.Println("cost:", res.Cost)
	// Output:
	// steps: 4
	// cost: 4
}
