// SPDX-License-Identifier: MIT
//
// File: matcher.go
// Role: Overlap detection between two edge sequences and the Connect
//       operation that splices or bridges them.
// Invariants:
//   - Inputs are expected to be free of repeated edges; Connect never returns
//     a sequence with a repeated edge.

package openlr

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/katalvlaran/roadref/roadgraph"
)

// intersectionLen counts the edges a and b have in common.
func intersectionLen(a, b EdgeSequence) int {
	sa := slices.Clone(a)
	sb := slices.Clone(b)
	slices.SortFunc(sa, roadgraph.Compare)
	slices.SortFunc(sb, roadgraph.Compare)

	n := 0
	for i, j := 0, 0; i < len(sa) && j < len(sb); {
		switch c := roadgraph.Compare(sa[i], sb[j]); {
		case c < 0:
			i++
		case c > 0:
			j++
		default:
			n++
			i++
			j++
		}
	}

	return n
}

// suffixEqualsPrefix reports whether the last n edges of a equal the first n
// edges of b, in order.
func suffixEqualsPrefix(a, b EdgeSequence, n int) bool {
	if n > len(a) || n > len(b) {
		return false
	}

	return slices.Equal(a[len(a)-n:], b[:n])
}

// OverlapLen returns the length of the run that is both a suffix of a and a
// prefix of b. ok is false when the common edges of a and b do not form such
// a run, in which case the sequences cannot be spliced.
func OverlapLen(a, b EdgeSequence) (n int, ok bool) {
	n = intersectionLen(a, b)
	if !suffixEqualsPrefix(a, b, n) {
		return 0, false
	}

	return n, true
}

// Matcher stitches a from-candidate to a to-candidate.
type Matcher struct {
	finder *PathFinder
	logger *slog.Logger
}

// NewMatcher returns a Matcher that bridges non-overlapping candidates with
// finder. A nil logger means slog.Default().
func NewMatcher(finder *PathFinder, logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}

	return &Matcher{finder: finder, logger: logger}
}

// Connect stitches from and to into one sequence.
//
// Steps:
//  1. If from ends with a clean, non-empty prefix of to, return
//     from ++ to[overlap:].
//  2. Otherwise search the shortest path from from.Back() to to.Front()
//     bounded by expected (+LengthSlack) and return
//     from[:len-1] ++ subPath ++ to[1:]; the boundary edges appear once, as
//     the endpoints of the sub-path.
//  3. A stitched sequence that would repeat an edge is refused.
//
// Errors:
//   - ErrEmptyCandidate if either input is empty.
//   - ErrNoConnection (wrapped) if no path exists within budget or the
//     result would repeat an edge.
func (m *Matcher) Connect(from, to EdgeSequence, frc FunctionalRoadClass, expected float64) (EdgeSequence, error) {
	if len(from) == 0 || len(to) == 0 {
		return nil, ErrEmptyCandidate
	}

	overlap, clean := OverlapLen(from, to)
	if clean && overlap > 0 {
		out := make(EdgeSequence, 0, len(from)+len(to)-overlap)
		out = append(out, from...)
		out = append(out, to[overlap:]...)
		return out, nil
	}
	if !clean {
		m.logger.Debug("candidates overlap without a clean suffix/prefix run",
			slog.String("from", from.String()),
			slog.String("to", to.String()))
	}

	sub, found := m.finder.Find(from.Back(), to.Front(), frc, expected)
	if !found {
		return nil, fmt.Errorf("%w: no path %s→%s within %gm",
			ErrNoConnection, from.Back(), to.Front(), expected+LengthSlack)
	}

	out := make(EdgeSequence, 0, len(from)+len(sub)+len(to)-2)
	out = append(out, from[:len(from)-1]...)
	out = append(out, sub...)
	out = append(out, to[1:]...)
	if out.HasDuplicates() {
		return nil, fmt.Errorf("%w: stitched path %s repeats an edge", ErrNoConnection, out)
	}

	return out, nil
}
