package graph_test

import (
	"fmt"

	"github.com/ferntold/waygraph/graph"
)

// ExampleNewGraph builds a small undirected way network and inspects it.
func ExampleNewGraph() {
	g := graph.NewGraph[string]()
	for _, room := range []string{"hall", "vault", "crypt"} {
		g.AddNode(room)
	}
	_, _ = g.AddEdge("hall", "vault", 1)
	_, _ = g.AddEdge("vault", "crypt", 2)

	fmt.Println("nodes:", g.NodeCount())
	fmt.Println("edges:", g.EdgeCount())
	fmt.Println("hall-vault both ways:", g.HasEdge("hall", "vault") && g.HasEdge("vault", "hall"))
	// Output:
	// nodes: 3
	// edges: 2
	// hall-vault both ways: true
}

// ExampleGraph_AddEdgeWeightFunc shows a dynamic weight that tracks
// external state between calls.
func ExampleGraph_AddEdgeWeightFunc() {
	g := graph.NewGraph[string]()
	g.AddNode("field")
	g.AddNode("swamp")

	flooded := false
	c, _ := g.AddEdgeWeightFunc("field", "swamp", func(_, _ string) float64 {
		if flooded {
			return 9
		}
		return 2
	})

	fmt.Println("dry:", c.Weight())
	flooded = true
	fmt.Println("flooded:", c.Weight())
	// Output:
	// dry: 2
	// flooded: 9
}
