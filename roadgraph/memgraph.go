// SPDX-License-Identifier: MIT
//
// File: memgraph.go
// Role: MemGraph, the thread-safe in-memory road network.
// Determinism:
//   - OutgoingEdges, IngoingEdges and Edges return edges sorted by Compare.
//   - Junctions returns IDs sorted lexicographically.
//   - Generated edge IDs are monotonic, starting at 1.
// Concurrency:
//   - All state is guarded by mu; queries take the read lock and return copies.

package roadgraph

import (
	"fmt"
	"slices"
	"sync"
)

// MemGraph is an in-memory, directed road network.
//
// Two-way roads are modeled as two edges, one per direction. Fake edges are
// stored alongside real ones and are returned by the same queries; callers
// tell them apart with Edge.IsFake.
type MemGraph struct {
	mu sync.RWMutex

	allowLoops bool

	nextID    EdgeID
	junctions map[Junction]struct{}
	edges     map[EdgeID]Edge

	// outgoing[j] and ingoing[j] hold edge IDs touching j, kept sorted by Compare.
	outgoing map[Junction][]EdgeID
	ingoing  map[Junction][]EdgeID
}

var _ Graph = (*MemGraph)(nil)

// NewMemGraph creates an empty graph. By default self-loops are rejected.
// Complexity: O(1).
func NewMemGraph(opts ...GraphOption) *MemGraph {
	g := &MemGraph{
		junctions: make(map[Junction]struct{}),
		edges:     make(map[EdgeID]Edge),
		outgoing:  make(map[Junction][]EdgeID),
		ingoing:   make(map[Junction][]EdgeID),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// AddJunction inserts j if it is not present yet. Adding an existing junction
// is a no-op.
func (g *MemGraph) AddJunction(j Junction) error {
	if j == "" {
		return ErrEmptyJunction
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.junctions[j] = struct{}{}

	return nil
}

// HasJunction reports whether j exists.
func (g *MemGraph) HasJunction(j Junction) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.junctions[j]

	return ok
}

// AddEdge adds a directed edge from→to with the given length, creating the
// endpoints if needed, and returns the stored Edge.
//
// Steps:
//  1. Validate junction IDs, length and the loop policy.
//  2. Apply options (explicit ID, fake flag).
//  3. Under the write lock: reserve the ID, store the edge, link adjacency.
//
// Complexity: O(d) where d is the degree of the endpoints (sorted insert).
// Concurrency: acquires the write lock for step 3 only.
func (g *MemGraph) AddEdge(from, to Junction, length float64, opts ...EdgeOption) (Edge, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return Edge{}, ErrEmptyJunction
	}
	if !validLength(length) {
		return Edge{}, fmt.Errorf("%w: %s→%s length=%g", ErrNegativeLength, from, to, length)
	}
	if from == to && !g.allowLoops {
		return Edge{}, ErrLoopNotAllowed
	}

	// 2) Apply options
	var cfg edgeConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Reserve the ID under lock
	g.mu.Lock()
	defer g.mu.Unlock()

	id := cfg.id
	if cfg.hasID {
		if _, taken := g.edges[id]; taken {
			return Edge{}, fmt.Errorf("%w: %d", ErrDuplicateEdgeID, id)
		}
		if id > g.nextID {
			g.nextID = id
		}
	} else {
		// skip IDs claimed explicitly earlier
		for {
			g.nextID++
			if _, taken := g.edges[g.nextID]; !taken {
				break
			}
		}
		id = g.nextID
	}

	// 4) Store the edge and link both adjacency lists in Compare order
	e := Edge{ID: id, Start: from, End: to, Length: length, Fake: cfg.fake}
	g.junctions[from] = struct{}{}
	g.junctions[to] = struct{}{}
	g.edges[id] = e
	g.outgoing[from] = g.insertSorted(g.outgoing[from], e)
	g.ingoing[to] = g.insertSorted(g.ingoing[to], e)

	return e, nil
}

// AddFakeEdge is shorthand for AddEdge(from, to, length, WithFake()).
func (g *MemGraph) AddFakeEdge(from, to Junction, length float64) (Edge, error) {
	return g.AddEdge(from, to, length, WithFake())
}

// insertSorted places e's ID into ids keeping Compare order. Caller holds mu.
func (g *MemGraph) insertSorted(ids []EdgeID, e Edge) []EdgeID {
	pos, _ := slices.BinarySearchFunc(ids, e, func(id EdgeID, target Edge) int {
		return Compare(g.edges[id], target)
	})

	return slices.Insert(ids, pos, e.ID)
}

// Edge returns the edge with the given ID.
// Complexity: O(1).
// Concurrency: read lock.
func (g *MemGraph) Edge(id EdgeID) (Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	e, ok := g.edges[id]
	if !ok {
		return Edge{}, fmt.Errorf("%w: %d", ErrEdgeNotFound, id)
	}

	return e, nil
}

// OutgoingEdges returns all edges leaving j, sorted by Compare. Unknown
// junctions have no outgoing edges.
// Complexity: O(d) for the copy.
// Concurrency: read lock.
func (g *MemGraph) OutgoingEdges(j Junction) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.resolve(g.outgoing[j])
}

// IngoingEdges returns all edges arriving at j, sorted by Compare.
func (g *MemGraph) IngoingEdges(j Junction) []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.resolve(g.ingoing[j])
}

func (g *MemGraph) resolve(ids []EdgeID) []Edge {
	if len(ids) == 0 {
		return nil
	}
	out := make([]Edge, len(ids))
	for i, id := range ids {
		out[i] = g.edges[id]
	}

	return out
}

// Edges returns every edge of the graph sorted by Compare.
// Complexity: O(E log E).
func (g *MemGraph) Edges() []Edge {
	g.mu.RLock()
	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	g.mu.RUnlock()
	slices.SortFunc(out, Compare)

	return out
}

// Junctions returns all junction IDs in lexicographic order.
func (g *MemGraph) Junctions() []Junction {
	g.mu.RLock()
	out := make([]Junction, 0, len(g.junctions))
	for j := range g.junctions {
		out = append(out, j)
	}
	g.mu.RUnlock()
	slices.Sort(out)

	return out
}

// EdgeCount returns the number of edges, fake ones included.
func (g *MemGraph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// JunctionCount returns the number of junctions.
func (g *MemGraph) JunctionCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.junctions)
}
