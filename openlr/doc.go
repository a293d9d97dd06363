// Package openlr connects the per-point candidate paths of an OpenLR-style
// location reference into one concrete path through a road network.
//
// Overview:
//
//   - A location reference is an ordered list of LocationReferencePoint
//     values. Each point carries a functional road class and the expected
//     distance to the next point.
//   - For every point an upstream matching stage supplies candidate
//     EdgeSequence values: short paths that plausibly start or end near the
//     point.
//   - PathsConnector picks, for every consecutive pair of points, one
//     from-candidate, one to-candidate and a connecting sub-path such that the
//     stitched path length is within tolerance of the expected distance.
//
// Components (leaf first):
//
//   - Matcher (edge-sequence matcher): splices two sequences over a clean
//     suffix/prefix overlap, or bridges them with PathFinder.
//   - PathFinder: Dijkstra between two edges with a length budget of
//     maxLength + LengthSlack; lazy deletion, (score, edge) ordering.
//   - Validator: accepts a path iff |expected-length|/expected ≤ tolerance.
//   - PathsConnector: the per-segment double loop over candidate pairs with
//     fake-edge deferral: a validated path whose first or last edge is fake
//     is kept as a fallback while the loop keeps looking for a real one.
//
// Determinism:
//
//   - Candidates are tried in the order supplied; the first acceptable real
//     path wins. Ties in the shortest-path search break on roadgraph.Compare.
//
// Errors (sentinel):
//
//   - ErrNoConnection       a candidate pair cannot be stitched (local).
//   - ErrSegmentUnresolved  no candidate pair of a segment was accepted;
//     returned wrapped in *SegmentError.
//   - ErrNoPoints, ErrCandidateMismatch, ErrBadDistance,
//     ErrEmptyCandidate  invalid input.
//   - ErrBadTolerance, ErrNilGraph  invalid construction arguments.
//
// Thread safety:
//
//   - All search state lives on the stack of a single call. A PathsConnector
//     may be shared between goroutines as long as its Graph and Stats are
//     safe for concurrent use (roadgraph.MemGraph and stats.Stats are).
//
// The functional road class is threaded through every call but never used to
// filter or weight edges.
package openlr
