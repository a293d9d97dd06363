// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Junction, EdgeID and Edge value types, their total order, the Graph
//       read interface, sentinel errors and construction options.
// Determinism:
//   - Compare orders edges by (ID, Start, End, Fake, Length); it is the only
//     ordering used anywhere in the module.

package roadgraph

import (
	"cmp"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for road graph operations.
var (
	// ErrEmptyJunction indicates that a junction ID is the empty string.
	ErrEmptyJunction = errors.New("roadgraph: junction ID is empty")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("roadgraph: edge not found")

	// ErrNegativeLength indicates that an edge length is negative or NaN.
	ErrNegativeLength = errors.New("roadgraph: edge length must be non-negative")

	// ErrLoopNotAllowed indicates a self-loop was attempted when loops are disabled.
	ErrLoopNotAllowed = errors.New("roadgraph: self-loop not allowed")

	// ErrDuplicateEdgeID indicates that an explicitly requested edge ID is taken.
	ErrDuplicateEdgeID = errors.New("roadgraph: duplicate edge ID")
)

// Junction identifies a road junction (a graph vertex).
type Junction string

// EdgeID uniquely identifies an edge within one graph.
type EdgeID uint64

// Edge is an oriented arc of the road network going from Start to End.
//
// Edge is a comparable value type: equality is field-wise and an Edge may be
// used as a map key. Length is expressed in meters.
type Edge struct {
	// ID is unique within the owning graph.
	ID EdgeID

	// Start is the junction the edge leaves from.
	Start Junction

	// End is the junction the edge arrives at.
	End Junction

	// Length is the edge length in meters.
	Length float64

	// Fake marks a synthetic edge that is not part of the real network.
	Fake bool
}

// IsFake reports whether e is a synthetic edge.
func (e Edge) IsFake() bool { return e.Fake }

// Less reports whether e sorts before o under Compare.
func (e Edge) Less(o Edge) bool { return Compare(e, o) < 0 }

// String renders the edge as "#id(start→end, length m)" with a "fake" marker.
func (e Edge) String() string {
	if e.Fake {
		return fmt.Sprintf("#%d(%s→%s, %gm, fake)", e.ID, e.Start, e.End, e.Length)
	}

	return fmt.Sprintf("#%d(%s→%s, %gm)", e.ID, e.Start, e.End, e.Length)
}

// Compare returns -1, 0 or +1 depending on whether a sorts before, equal to,
// or after b. The order is lexicographic over (ID, Start, End, Fake, Length)
// with real edges before fake ones on otherwise equal keys.
//
// Compare(a, b) == 0 iff a == b, so the order is consistent with equality.
func Compare(a, b Edge) int {
	if c := cmp.Compare(a.ID, b.ID); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Start, b.Start); c != 0 {
		return c
	}
	if c := cmp.Compare(a.End, b.End); c != 0 {
		return c
	}
	if a.Fake != b.Fake {
		if !a.Fake {
			return -1
		}
		return 1
	}

	return cmp.Compare(a.Length, b.Length)
}

// Graph is the read interface the location-reference core needs.
//
// OutgoingEdges returns every edge leaving j. Implementations must return a
// deterministic order and must be safe for concurrent readers if callers
// share a Graph across goroutines.
type Graph interface {
	OutgoingEdges(j Junction) []Edge
}

// GraphOption configures a MemGraph before use.
type GraphOption func(g *MemGraph)

// WithLoops permits edges whose Start equals End.
func WithLoops() GraphOption {
	return func(g *MemGraph) { g.allowLoops = true }
}

// EdgeOption configures an individual edge when it is added.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	id    EdgeID
	hasID bool
	fake  bool
}

// WithEdgeID assigns an explicit ID instead of the next generated one.
// AddEdge returns ErrDuplicateEdgeID if the ID is already in use.
func WithEdgeID(id EdgeID) EdgeOption {
	return func(c *edgeConfig) {
		c.id = id
		c.hasID = true
	}
}

// WithFake marks the new edge as synthetic.
func WithFake() EdgeOption {
	return func(c *edgeConfig) { c.fake = true }
}

// validLength rejects negative, NaN and infinite lengths.
func validLength(l float64) bool {
	return l >= 0 && !math.IsInf(l, 1)
}
