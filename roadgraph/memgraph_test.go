package roadgraph_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/roadref/roadgraph"
)

// MemGraphSuite groups tests for the in-memory road graph.
type MemGraphSuite struct {
	suite.Suite
	g *roadgraph.MemGraph
}

func (s *MemGraphSuite) SetupTest() {
	s.g = roadgraph.NewMemGraph()
}

// TestAddEdge_CreatesJunctions: endpoints appear implicitly.
func (s *MemGraphSuite) TestAddEdge_CreatesJunctions() {
	e, err := s.g.AddEdge("a", "b", 50)
	require.NoError(s.T(), err)
	require.Equal(s.T(), roadgraph.EdgeID(1), e.ID)
	require.True(s.T(), s.g.HasJunction("a"))
	require.True(s.T(), s.g.HasJunction("b"))
	require.Equal(s.T(), 2, s.g.JunctionCount())
	require.Equal(s.T(), 1, s.g.EdgeCount())
}

// TestAddEdge_Validation covers sentinel errors.
func (s *MemGraphSuite) TestAddEdge_Validation() {
	_, err := s.g.AddEdge("", "b", 1)
	require.ErrorIs(s.T(), err, roadgraph.ErrEmptyJunction)

	_, err = s.g.AddEdge("a", "b", -1)
	require.ErrorIs(s.T(), err, roadgraph.ErrNegativeLength)

	_, err = s.g.AddEdge("a", "b", math.NaN())
	require.ErrorIs(s.T(), err, roadgraph.ErrNegativeLength)

	_, err = s.g.AddEdge("a", "a", 1)
	require.ErrorIs(s.T(), err, roadgraph.ErrLoopNotAllowed)

	require.ErrorIs(s.T(), s.g.AddJunction(""), roadgraph.ErrEmptyJunction)
}

// TestLoops_Allowed: WithLoops lifts the self-loop restriction.
func (s *MemGraphSuite) TestLoops_Allowed() {
	g := roadgraph.NewMemGraph(roadgraph.WithLoops())
	e, err := g.AddEdge("a", "a", 3)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []roadgraph.Edge{e}, g.OutgoingEdges("a"))
	require.Equal(s.T(), []roadgraph.Edge{e}, g.IngoingEdges("a"))
}

// TestExplicitIDs: explicit IDs are honored and generated IDs skip them.
func (s *MemGraphSuite) TestExplicitIDs() {
	e5, err := s.g.AddEdge("a", "b", 1, roadgraph.WithEdgeID(5))
	require.NoError(s.T(), err)
	require.Equal(s.T(), roadgraph.EdgeID(5), e5.ID)

	_, err = s.g.AddEdge("b", "c", 1, roadgraph.WithEdgeID(5))
	require.True(s.T(), errors.Is(err, roadgraph.ErrDuplicateEdgeID))

	next, err := s.g.AddEdge("b", "c", 1)
	require.NoError(s.T(), err)
	require.Equal(s.T(), roadgraph.EdgeID(6), next.ID)

	low, err := s.g.AddEdge("c", "d", 1, roadgraph.WithEdgeID(2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), roadgraph.EdgeID(2), low.ID)

	got, err := s.g.Edge(2)
	require.NoError(s.T(), err)
	require.Equal(s.T(), low, got)

	_, err = s.g.Edge(99)
	require.ErrorIs(s.T(), err, roadgraph.ErrEdgeNotFound)
}

// TestOutgoingIngoing_Sorted: adjacency queries are deterministic.
func (s *MemGraphSuite) TestOutgoingIngoing_Sorted() {
	e3, _ := s.g.AddEdge("x", "c", 1, roadgraph.WithEdgeID(3))
	e1, _ := s.g.AddEdge("x", "a", 1, roadgraph.WithEdgeID(1))
	e2, _ := s.g.AddEdge("x", "b", 1, roadgraph.WithEdgeID(2))
	e4, _ := s.g.AddEdge("a", "c", 1, roadgraph.WithEdgeID(4))

	require.Equal(s.T(), []roadgraph.Edge{e1, e2, e3}, s.g.OutgoingEdges("x"))
	require.Equal(s.T(), []roadgraph.Edge{e3, e4}, s.g.IngoingEdges("c"))
	require.Nil(s.T(), s.g.OutgoingEdges("c"))
	require.Nil(s.T(), s.g.OutgoingEdges("missing"))
	require.Equal(s.T(), []roadgraph.Edge{e1, e2, e3, e4}, s.g.Edges())
	require.Equal(s.T(), []roadgraph.Junction{"a", "b", "c", "x"}, s.g.Junctions())
}

// TestFakeEdges: fake edges live next to real ones.
func (s *MemGraphSuite) TestFakeEdges() {
	road, err := s.g.AddEdge("a", "b", 10)
	require.NoError(s.T(), err)
	fake, err := s.g.AddFakeEdge("a", "c", 0)
	require.NoError(s.T(), err)

	require.False(s.T(), road.IsFake())
	require.True(s.T(), fake.IsFake())
	require.Equal(s.T(), []roadgraph.Edge{road, fake}, s.g.OutgoingEdges("a"))
}

// TestReturnedSlicesAreCopies: callers cannot corrupt the catalog.
func (s *MemGraphSuite) TestReturnedSlicesAreCopies() {
	_, _ = s.g.AddEdge("a", "b", 10)
	out := s.g.OutgoingEdges("a")
	out[0].Length = 999
	require.Equal(s.T(), 10.0, s.g.OutgoingEdges("a")[0].Length)
}

// TestUnknownLookups: unknown junctions have no edges, unknown IDs error.
func (s *MemGraphSuite) TestUnknownLookups() {
	_, err := s.g.AddEdge("a", "b", 10)
	require.NoError(s.T(), err)

	require.False(s.T(), s.g.HasJunction("zz"))
	require.Empty(s.T(), s.g.OutgoingEdges("zz"))
	require.Empty(s.T(), s.g.IngoingEdges("zz"))

	_, err = s.g.Edge(42)
	require.ErrorIs(s.T(), err, roadgraph.ErrEdgeNotFound)
}

func TestMemGraphSuite(t *testing.T) {
	suite.Run(t, new(MemGraphSuite))
}
