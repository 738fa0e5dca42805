package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ferntold/waygraph/dfs"
	"github.com/ferntold/waygraph/graph"
)

// assertTopoOrder verifies that every edge of g points forward in order.
func assertTopoOrder(t *testing.T, g *graph.Graph[string], order []string) {
	t.Helper()
	pos := make(map[string]int, len(order))
	for i, v := range order {
		pos[v] = i
	}
	for _, c := range g.Connections() {
		assert.Less(t, pos[c.A()], pos[c.B()], "edge %s→%s out of order", c.A(), c.B())
	}
}

// TestTopologicalSort_Diamond: classic diamond dependency shape.
func TestTopologicalSort_Diamond(t *testing.T) {
	g := directed(t,
		[]string{"A", "B", "C", "D"},
		[][2]string{{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"}},
	)

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, 4)
	assertTopoOrder(t, g, order)
}

// TestTopologicalSort_CycleRejected: a DAG is required.
func TestTopologicalSort_CycleRejected(t *testing.T) {
	g := directed(t,
		[]string{"A", "B", "C"},
		[][2]string{{"A", "B"}, {"B", "C"}, {"C", "A"}},
	)

	_, err := dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrCycleDetected)
}

// TestTopologicalSort_UndirectedRejected: direction is required.
func TestTopologicalSort_UndirectedRejected(t *testing.T) {
	g := graph.NewGraph[string]()
	g.AddNode("A")

	_, err := dfs.TopologicalSort(g)
	assert.ErrorIs(t, err, dfs.ErrUndirectedGraph)
}

// TestTopologicalSort_NilGraph rejects nil input.
func TestTopologicalSort_NilGraph(t *testing.T) {
	_, err := dfs.TopologicalSort[string](nil)
	assert.ErrorIs(t, err, dfs.ErrNilGraph)
}

// TestTopologicalSort_Forest covers several disconnected DAGs at once.
func TestTopologicalSort_Forest(t *testing.T) {
	g := directed(t,
		[]string{"A", "B", "X", "Y"},
		[][2]string{{"A", "B"}, {"X", "Y"}},
	)

	order, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	require.Len(t, order, 4)
	assertTopoOrder(t, g, order)
}
