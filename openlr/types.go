// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Reference-point and edge-sequence types, sentinel errors, the Stats
//       collaborator interface.

package openlr

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/roadref/roadgraph"
)

// Sentinel errors.
var (
	// ErrNoConnection indicates that a from/to candidate pair cannot be stitched.
	ErrNoConnection = errors.New("openlr: candidates cannot be connected")

	// ErrSegmentUnresolved indicates that no candidate pair of a segment was accepted.
	ErrSegmentUnresolved = errors.New("openlr: segment unresolved")

	// ErrNoPoints indicates an empty location reference.
	ErrNoPoints = errors.New("openlr: no reference points")

	// ErrCandidateMismatch indicates that the number of candidate sets differs
	// from the number of reference points.
	ErrCandidateMismatch = errors.New("openlr: candidate sets do not match reference points")

	// ErrBadDistance indicates a negative, NaN or infinite distance to the next point.
	ErrBadDistance = errors.New("openlr: distance to next point must be finite and non-negative")

	// ErrEmptyCandidate indicates an empty candidate edge sequence.
	ErrEmptyCandidate = errors.New("openlr: empty candidate sequence")

	// ErrBadTolerance indicates a path length tolerance outside (0, 1].
	ErrBadTolerance = errors.New("openlr: path length tolerance must be in (0, 1]")

	// ErrNilGraph indicates a nil road graph.
	ErrNilGraph = errors.New("openlr: graph is nil")
)

// FunctionalRoadClass is the OpenLR road importance class, FRC0 (main roads)
// through FRC7 (other roads).
type FunctionalRoadClass uint8

// Functional road classes.
const (
	FRC0 FunctionalRoadClass = iota
	FRC1
	FRC2
	FRC3
	FRC4
	FRC5
	FRC6
	FRC7
)

// Valid reports whether c is one of FRC0..FRC7.
func (c FunctionalRoadClass) Valid() bool { return c <= FRC7 }

func (c FunctionalRoadClass) String() string {
	if !c.Valid() {
		return fmt.Sprintf("FRC(%d)", uint8(c))
	}

	return fmt.Sprintf("FRC%d", uint8(c))
}

// validDistance reports whether d is a usable expected segment length.
func validDistance(d float64) bool {
	return d >= 0 && !math.IsInf(d, 1)
}

// LocationReferencePoint is one point of a decoded location reference.
type LocationReferencePoint struct {
	// FunctionalRoadClass is the road class the path should follow.
	FunctionalRoadClass FunctionalRoadClass

	// DistanceToNextPoint is the expected path length to the next point, in
	// meters. It is ignored on the last point.
	DistanceToNextPoint float64
}

// EdgeSequence is an ordered, contiguous path of edges.
type EdgeSequence []roadgraph.Edge

// Front returns the first edge. It panics on an empty sequence.
func (s EdgeSequence) Front() roadgraph.Edge { return s[0] }

// Back returns the last edge. It panics on an empty sequence.
func (s EdgeSequence) Back() roadgraph.Edge { return s[len(s)-1] }

// Length returns the sum of edge lengths.
func (s EdgeSequence) Length() float64 {
	var total float64
	for _, e := range s {
		total += e.Length
	}

	return total
}

// HasDuplicates reports whether any edge occurs more than once.
func (s EdgeSequence) HasDuplicates() bool {
	seen := make(map[roadgraph.Edge]struct{}, len(s))
	for _, e := range s {
		if _, dup := seen[e]; dup {
			return true
		}
		seen[e] = struct{}{}
	}

	return false
}

// HasFakeBoundary reports whether the first or the last edge is fake.
// An empty sequence has no boundary.
func (s EdgeSequence) HasFakeBoundary() bool {
	if len(s) == 0 {
		return false
	}

	return s.Front().IsFake() || s.Back().IsFake()
}

// Clone returns an independent copy of s.
func (s EdgeSequence) Clone() EdgeSequence {
	if s == nil {
		return nil
	}

	return append(EdgeSequence(nil), s...)
}

// String renders the sequence as "[#1 #2 ...]" using edge IDs.
func (s EdgeSequence) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range s {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "#%d", e.ID)
	}
	b.WriteByte(']')

	return b.String()
}

// Concat joins per-segment paths into the path of the whole reference.
// Where the tail of the path built so far is a clean prefix of the next part
// (see OverlapLen), the shared edges are kept once.
func Concat(parts []EdgeSequence) EdgeSequence {
	var out EdgeSequence
	for _, p := range parts {
		if len(p) == 0 {
			continue
		}
		if k, ok := OverlapLen(out, p); ok {
			p = p[k:]
		}
		out = append(out, p...)
	}

	return out
}

// SegmentError reports the segment whose candidates could not be connected.
type SegmentError struct {
	// Index is the zero-based segment index.
	Index int
	// From and To are the indices of the reference points bounding the segment.
	From, To int
}

func (e *SegmentError) Error() string {
	return fmt.Sprintf("openlr: segment %d (points %d→%d): no candidate pair yields an accepted path",
		e.Index, e.From, e.To)
}

// Unwrap makes errors.Is(err, ErrSegmentUnresolved) hold.
func (e *SegmentError) Unwrap() error { return ErrSegmentUnresolved }

// Stats receives the counters the connector increments.
type Stats interface {
	// IncNoShortestPathFound records one ConnectCandidates call that failed
	// because a segment could not be resolved.
	IncNoShortestPathFound()
}

type noopStats struct{}

func (noopStats) IncNoShortestPathFound() {}
