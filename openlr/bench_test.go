package openlr_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/katalvlaran/roadref/openlr"
	"github.com/katalvlaran/roadref/roadgraph"
)

func gridCorners(b *testing.B, size int) (*roadgraph.MemGraph, roadgraph.Edge, roadgraph.Edge) {
	b.Helper()
	g, err := roadgraph.Build(nil, roadgraph.Grid(size, size, 100))
	if err != nil {
		b.Fatal(err)
	}
	src := g.OutgoingEdges(roadgraph.GridJunction(0, 0))[0]
	var dst roadgraph.Edge
	for _, e := range g.OutgoingEdges(roadgraph.GridJunction(size-1, size-2)) {
		if e.End == roadgraph.GridJunction(size-1, size-1) {
			dst = e
		}
	}
	return g, src, dst
}

// BenchmarkFind measures a corner-to-corner search on a 40x40 grid.
func BenchmarkFind(b *testing.B) {
	g, src, dst := gridCorners(b, 40)
	f := openlr.NewPathFinder(g, nil)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := f.Find(src, dst, openlr.FRC3, 8000); !ok {
			b.Fatal("path not found")
		}
	}
}

// BenchmarkConnectCandidates measures one bridged segment on a 40x40 grid.
func BenchmarkConnectCandidates(b *testing.B) {
	g, src, dst := gridCorners(b, 40)
	c, err := openlr.NewPathsConnector(0.3, g, nil)
	if err != nil {
		b.Fatal(err)
	}
	points := []openlr.LocationReferencePoint{{DistanceToNextPoint: 7800}, {}}
	cands := [][]openlr.EdgeSequence{{{src}}, {{dst}}}
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.ConnectCandidates(ctx, points, cands); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkFindAlongPath measures an end-to-end search on a 1000-junction
// two-way road, where every step also offers a U-turn.
func BenchmarkFindAlongPath(b *testing.B) {
	const n = 1000
	g, err := roadgraph.Build(nil, roadgraph.Path(n, 50))
	if err != nil {
		b.Fatal(err)
	}
	src := g.OutgoingEdges("0")[0]
	var dst roadgraph.Edge
	for _, e := range g.OutgoingEdges(roadgraph.Junction(strconv.Itoa(n - 2))) {
		if e.End == roadgraph.Junction(strconv.Itoa(n-1)) {
			dst = e
		}
	}
	f := openlr.NewPathFinder(g, nil)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := f.Find(src, dst, openlr.FRC3, n*50); !ok {
			b.Fatal("path not found")
		}
	}
}
