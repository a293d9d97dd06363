// Package openlr_test provides runnable examples for the connector.
package openlr_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/roadref/openlr"
	"github.com/katalvlaran/roadref/roadgraph"
)

// ExamplePathsConnector_ConnectCandidates resolves a three-point reference
// over a small street:
//
//	j1 ─A(50)─> j2 ─M(20)─> j3 ─B(60)─> j4 ─C(40)─> j5
func ExamplePathsConnector_ConnectCandidates() {
	g := roadgraph.NewMemGraph()
	a, _ := g.AddEdge("j1", "j2", 50)
	_, _ = g.AddEdge("j2", "j3", 20)
	b, _ := g.AddEdge("j3", "j4", 60)
	c, _ := g.AddEdge("j4", "j5", 40)

	points := []openlr.LocationReferencePoint{
		{FunctionalRoadClass: openlr.FRC3, DistanceToNextPoint: 130},
		{FunctionalRoadClass: openlr.FRC3, DistanceToNextPoint: 100},
		{FunctionalRoadClass: openlr.FRC3},
	}
	candidates := [][]openlr.EdgeSequence{
		{{a}},
		{{b}},
		{{c}},
	}

	conn, err := openlr.NewPathsConnector(0.3, g, nil)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	parts, err := conn.ConnectCandidates(context.Background(), points, candidates)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for i, p := range parts {
		fmt.Printf("segment %d: %s (%gm)\n", i, p, p.Length())
	}
	fmt.Println("route:", openlr.Concat(parts))
	// Output:
	// segment 0: [#1 #2 #3] (130m)
	// segment 1: [#3 #4] (100m)
	// route: [#1 #2 #3 #4]
}

// ExampleOverlapLen shows a clean suffix/prefix overlap of two edges.
func ExampleOverlapLen() {
	e := func(id roadgraph.EdgeID, from, to roadgraph.Junction) roadgraph.Edge {
		return roadgraph.Edge{ID: id, Start: from, End: to, Length: 10}
	}
	a := openlr.EdgeSequence{e(1, "a", "b"), e(2, "b", "c"), e(3, "c", "d")}
	b := openlr.EdgeSequence{e(2, "b", "c"), e(3, "c", "d"), e(4, "d", "e")}

	n, ok := openlr.OverlapLen(a, b)
	fmt.Println(n, ok)
	// Output: 2 true
}
