// Package gridgraph treats a 2D terrain-cost map as a graph.
//
// Each cell carries a movement cost: 1 is plain floor, higher values are
// slow terrain (rubble, swamp), Wall is impassable. ToGraph converts the
// passable cells into an undirected graph.Graph[Cell] whose edge weights
// read the live grid on every evaluation: mutate terrain with SetCost and
// the very next pathfinding run sees the new costs, with nothing rebuilt.
//
// Manhattan and Chebyshev provide admissible astar heuristics for Conn4
// and Conn8 movement respectively, as long as every passable cost is ≥ 1.
package gridgraph

import (
	"math"

	"github.com/ferntold/waygraph/astar"
	"github.com/ferntold/waygraph/graph"
)

// conn4Offsets and conn8Offsets enumerate neighbor displacements.
var (
	conn4Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	conn8Offsets = [][2]int{
		{0, -1}, {1, -1}, {1, 0}, {1, 1},
		{0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
	}
)

// Grid is a rectangular terrain-cost field. Costs are mutable (SetCost);
// the graphs produced by ToGraph observe mutations through their weight
// functions.
type Grid struct {
	width, height int
	costs         [][]float64 // costs[y][x]
	conn          Connectivity
}

// NewGrid constructs a Grid from a non-empty rectangular cost field.
// The input is deep-copied. Costs must be non-negative; use Wall for
// impassable cells.
// Complexity: O(W×H).
func NewGrid(costs [][]float64, opts Options) (*Grid, error) {
	if len(costs) == 0 || len(costs[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(costs), len(costs[0])

	field := make([][]float64, h)
	for y, row := range costs {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for _, c := range row {
			if c < 0 {
				return nil, ErrNegativeCost
			}
		}
		field[y] = make([]float64, w)
		copy(field[y], row)
	}

	return &Grid{width: w, height: h, costs: field, conn: opts.Conn}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) lies within the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Cost returns the terrain cost at (x, y).
func (g *Grid) Cost(x, y int) (float64, error) {
	if !g.InBounds(x, y) {
		return 0, ErrOutOfBounds
	}

	return g.costs[y][x], nil
}

// SetCost mutates the terrain cost at (x, y). Graphs previously produced by
// ToGraph pick the change up on their next weight evaluation.
func (g *Grid) SetCost(x, y int, cost float64) error {
	if !g.InBounds(x, y) {
		return ErrOutOfBounds
	}
	if cost < 0 {
		return ErrNegativeCost
	}
	g.costs[y][x] = cost

	return nil
}

// Passable reports whether the cell at (x, y) can be entered.
func (g *Grid) Passable(x, y int) bool {
	return g.InBounds(x, y) && !math.IsInf(g.costs[y][x], 1)
}

// offsets returns the displacement set for the grid's connectivity.
func (g *Grid) offsets() [][2]int {
	if g.conn == Conn8 {
		return conn8Offsets
	}

	return conn4Offsets
}

// ToGraph converts the passable cells into an undirected graph whose nodes
// are Cells and whose edge weights are computed from the live grid:
// step length (1 orthogonal, √2 diagonal) times the mean terrain cost of
// the two cells. Cells impassable at conversion time get no node; cells
// walled afterwards keep their node but their edges evaluate to +Inf,
// which pathfinding treats as unwalkable.
// Complexity: O(W×H) nodes plus O(W×H×d) edge insertions.
func (g *Grid) ToGraph() *graph.Graph[Cell] {
	out := graph.NewGraph[Cell]()

	// 1. One node per passable cell, row-major order.
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.Passable(x, y) {
				out.AddNode(Cell{X: x, Y: y})
			}
		}
	}

	// 2. Connect neighbors. AddEdge rejects the mirrored duplicate of an
	//    undirected pair, which is exactly what we want here.
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.Passable(x, y) {
				continue
			}
			for _, d := range g.offsets() {
				nx, ny := x+d[0], y+d[1]
				if !g.Passable(nx, ny) {
					continue
				}

				step := 1.0
				if d[0] != 0 && d[1] != 0 {
					step = math.Sqrt2
				}
				_, _ = out.AddEdgeWeightFunc(
					Cell{X: x, Y: y}, Cell{X: nx, Y: ny},
					g.weightFunc(step),
				)
			}
		}
	}

	return out
}

// weightFunc closes over the grid, so every evaluation reads the current
// terrain costs.
func (g *Grid) weightFunc(step float64) graph.WeightFunc[Cell] {
	return func(a, b Cell) float64 {
		return step * (g.costs[a.Y][a.X] + g.costs[b.Y][b.X]) / 2
	}
}

// Manhattan returns the |dx|+|dy| heuristic: admissible for Conn4 movement
// when every passable cost is at least 1.
func Manhattan() astar.Heuristic[Cell] {
	return func(v, goal Cell) float64 {
		return math.Abs(float64(v.X-goal.X)) + math.Abs(float64(v.Y-goal.Y))
	}
}

// Chebyshev returns the max(|dx|,|dy|) heuristic: admissible for Conn8
// movement when every passable cost is at least 1.
func Chebyshev() astar.Heuristic[Cell] {
	return func(v, goal Cell) float64 {
		return math.Max(math.Abs(float64(v.X-goal.X)), math.Abs(float64(v.Y-goal.Y)))
	}
}
