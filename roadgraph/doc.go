// Package roadgraph models the road network the location-reference core
// walks over: junctions connected by oriented, length-weighted edges.
//
// Overview:
//
//   - Edge is an immutable value type. Two edges are equal iff all of their
//     fields are equal, so an Edge can be used directly as a map key.
//   - Compare defines the total order used for sorting, set intersection and
//     deterministic tie-breaking in shortest-path search.
//   - Graph is the read-only interface consumed by package openlr. It has a
//     single method, OutgoingEdges.
//   - MemGraph is a thread-safe in-memory implementation of Graph with
//     support for synthetic ("fake") edges that bridge gaps the real network
//     does not cover.
//   - Grid and Path build small deterministic networks for tests, examples
//     and benchmarks.
//
// Thread safety:
//
//   - MemGraph guards its catalog and adjacency with a single sync.RWMutex.
//     Reads may proceed concurrently; mutations are serialized.
//   - Edges returned from any query are copies; mutating them has no effect
//     on the graph.
//
// Errors (sentinel):
//
//   - ErrEmptyJunction     a junction ID is the empty string.
//   - ErrEdgeNotFound      a query referenced an edge ID that does not exist.
//   - ErrNegativeLength    an edge length is negative (or NaN).
//   - ErrLoopNotAllowed    from == to while loops are disabled.
//   - ErrDuplicateEdgeID   an explicit edge ID is already taken.
package roadgraph
