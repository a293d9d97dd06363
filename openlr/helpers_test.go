package openlr_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadref/openlr"
	"github.com/katalvlaran/roadref/roadgraph"
)

// network is a MemGraph plus a name → edge lookup for readable tests.
type network struct {
	t     *testing.T
	g     *roadgraph.MemGraph
	edges map[string]roadgraph.Edge
}

func newNetwork(t *testing.T) *network {
	t.Helper()
	return &network{t: t, g: roadgraph.NewMemGraph(), edges: make(map[string]roadgraph.Edge)}
}

func (n *network) road(name string, from, to roadgraph.Junction, length float64) roadgraph.Edge {
	n.t.Helper()
	e, err := n.g.AddEdge(from, to, length)
	require.NoError(n.t, err)
	n.edges[name] = e
	return e
}

func (n *network) fake(name string, from, to roadgraph.Junction, length float64) roadgraph.Edge {
	n.t.Helper()
	e, err := n.g.AddFakeEdge(from, to, length)
	require.NoError(n.t, err)
	n.edges[name] = e
	return e
}

// seq builds an EdgeSequence from edge names.
func (n *network) seq(names ...string) openlr.EdgeSequence {
	n.t.Helper()
	out := make(openlr.EdgeSequence, 0, len(names))
	for _, name := range names {
		e, ok := n.edges[name]
		require.True(n.t, ok, "unknown edge %q", name)
		out = append(out, e)
	}
	return out
}

// countingStats records IncNoShortestPathFound calls.
type countingStats struct{ n atomic.Int64 }

func (s *countingStats) IncNoShortestPathFound() { s.n.Add(1) }
