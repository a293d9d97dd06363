package roadgraph_test

import (
	"fmt"

	"github.com/katalvlaran/roadref/roadgraph"
)

// ExampleMemGraph builds a tiny network with one synthetic edge.
func ExampleMemGraph() {
	g := roadgraph.NewMemGraph()
	_, _ = g.AddEdge("a", "b", 50)
	_, _ = g.AddEdge("b", "c", 60)
	_, _ = g.AddFakeEdge("b", "d", 0)

	for _, e := range g.OutgoingEdges("b") {
		fmt.Println(e)
	}
	// Output:
	// #2(b→c, 60m)
	// #3(b→d, 0m, fake)
}
