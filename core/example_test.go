package core_test

import (
	"fmt"

	"github.com/katalvlaran/meldheap/core"
)

// ExampleGraph_Neighbors builds a weighted triangle and lists the edges
// leaving one corner.
func ExampleGraph_Neighbors() {
	g := core.NewGraph(core.WithWeighted())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("B", "C", 2)
	_, _ = g.AddEdge("C", "A", 4)

	edges, _ := g.Neighbors("A")
	for _, e := range edges {
		fmt.Printf("%s A-%s %d\n", e.ID, e.Other("A"), e.Weight)
	}
	// Output:
	// e1 A-B 1
	// e3 A-C 4
}
