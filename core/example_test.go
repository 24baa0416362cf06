package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/core"
)

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	g := core.NewUndirected()
	for _, id := range []string{"A", "B", "C"} {
		_ = g.AddVertex(id, nil)
	}
	_ = g.AddEdge("A", "B", core.DefaultCost)
	_ = g.AddEdge("B", "C", core.DefaultCost)

	nbs, _ := g.Neighbors("B")
	fmt.Println("Vertices:", g.Vertices())
	fmt.Println("Neighbors of B:", nbs)
	fmt.Println("Edge C→B exists?", g.HasEdge("C", "B"))
	fmt.Println("Duplicate A:", g.AddVertex("A", nil))

	// Output:
	// Vertices: [A B C]
	// Neighbors of B: [A C]
	// Edge C→B exists? true
	// Duplicate A: core: vertex already exists: "A"
}

// ExampleGraph_weighted shows cost-carrying edges with a grid payload.
func ExampleGraph_weighted() {
	g := core.NewWeightedUndirected()
	a, b := core.Point{X: 1, Y: 1}, core.Point{X: 2, Y: 1}
	_ = g.AddVertex(a.ID(), a)
	_ = g.AddVertex(b.ID(), b)
	_ = g.AddEdge(a.ID(), b.ID(), 3)
	_ = g.SetStart(a.ID())

	es, _ := g.Edges(b.ID())
	start, _ := g.Start()
	fmt.Printf("%s→%s cost %d, start %s\n", es[0].From, es[0].To, es[0].Cost, start)

	// Output:
	// 2,1→1,1 cost 3, start 1,1
}
