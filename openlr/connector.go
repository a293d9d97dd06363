// SPDX-License-Identifier: MIT
//
// File: connector.go
// Role: PathsConnector, the per-segment search over candidate pairs.
// Determinism:
//   - Pairs are tried from-major in the caller's order; the first validated
//     path without a fake boundary edge wins.
//   - Otherwise the first validated path with a fake boundary edge wins.

package openlr

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/roadref/roadgraph"
)

// PathsConnector resolves candidate paths of consecutive reference points
// into one accepted path per segment.
//
// Thread Safety: immutable after construction; safe for concurrent use if the
// graph and stats are.
type PathsConnector struct {
	tolerance float64
	graph     roadgraph.Graph
	stats     Stats

	matcher   *Matcher
	validator Validator
	logger    *slog.Logger
	tracer    trace.Tracer
}

// NewPathsConnector returns a connector that accepts stitched paths whose
// length deviates from the expected distance by at most tolerance (a
// fraction, e.g. 0.3 for 30%). A nil stats discards counters.
//
// Errors:
//   - ErrBadTolerance if tolerance is not in (0, 1].
//   - ErrNilGraph if g is nil.
func NewPathsConnector(tolerance float64, g roadgraph.Graph, stats Stats, opts ...Option) (*PathsConnector, error) {
	if !(tolerance > 0 && tolerance <= 1) {
		return nil, fmt.Errorf("%w: got %g", ErrBadTolerance, tolerance)
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if stats == nil {
		stats = noopStats{}
	}

	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &PathsConnector{
		tolerance: tolerance,
		graph:     g,
		stats:     stats,
		matcher:   NewMatcher(NewPathFinder(g, cfg.logger), cfg.logger),
		validator: NewValidator(cfg.logger),
		logger:    cfg.logger,
		tracer:    cfg.tracer,
	}, nil
}

// Tolerance returns the configured path length tolerance.
func (c *PathsConnector) Tolerance() float64 { return c.tolerance }

// ConnectCandidates resolves every segment (points[i-1], points[i]) and
// returns one path per segment, in order.
//
// candidates[i] holds the candidate sequences of points[i]. Each segment is
// resolved independently: the first failing segment aborts the call, the
// failure counter is incremented once, and no partial result is returned.
//
// ctx carries tracing only; the call does not block and is not cancellable.
//
// Errors:
//   - ErrNoPoints, ErrCandidateMismatch for malformed input.
//   - ErrBadDistance if any point but the last has a negative, NaN or
//     infinite DistanceToNextPoint.
//   - *SegmentError (errors.Is ErrSegmentUnresolved) for an unresolved segment.
func (c *PathsConnector) ConnectCandidates(ctx context.Context, points []LocationReferencePoint, candidates [][]EdgeSequence) ([]EdgeSequence, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if len(candidates) != len(points) {
		return nil, fmt.Errorf("%w: %d points, %d candidate sets", ErrCandidateMismatch, len(points), len(candidates))
	}
	// the last point's distance is never read
	for i, p := range points[:len(points)-1] {
		if !validDistance(p.DistanceToNextPoint) {
			return nil, fmt.Errorf("%w: point %d: %g", ErrBadDistance, i, p.DistanceToNextPoint)
		}
	}

	ctx, span := c.tracer.Start(ctx, "openlr.ConnectCandidates",
		trace.WithAttributes(
			attribute.Int("points", len(points)),
			attribute.Float64("tolerance", c.tolerance),
		))
	defer span.End()

	result := make([]EdgeSequence, len(points)-1)
	for i := 1; i < len(points); i++ {
		part, err := c.connectSegment(ctx, i-1, points[i-1], candidates[i-1], candidates[i])
		if err != nil {
			c.logger.Debug("no shortest path found", slog.Int("segment", i-1))
			c.stats.IncNoShortestPathFound()
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		result[i-1] = part
	}
	span.SetStatus(codes.Ok, "")

	return result, nil
}

// connectSegment runs the double loop over candidate pairs of one segment.
func (c *PathsConnector) connectSegment(ctx context.Context, idx int, point LocationReferencePoint, fromCandidates, toCandidates []EdgeSequence) (EdgeSequence, error) {
	_, span := c.tracer.Start(ctx, "openlr.connectSegment",
		trace.WithAttributes(
			attribute.Int("segment", idx),
			attribute.Int("from_candidates", len(fromCandidates)),
			attribute.Int("to_candidates", len(toCandidates)),
			attribute.Float64("distance_to_next", point.DistanceToNextPoint),
		))
	defer span.End()

	var (
		fakePath EdgeSequence
		tried    int
	)
	for _, from := range fromCandidates {
		for _, to := range toCandidates {
			tried++
			path, err := c.matcher.Connect(from, to, point.FunctionalRoadClass, point.DistanceToNextPoint)
			if err != nil {
				c.logger.Debug("candidate pair not connected",
					slog.Int("segment", idx),
					slog.String("reason", err.Error()))
				continue
			}
			if !c.validator.Validate(path, point.DistanceToNextPoint, c.tolerance) {
				continue
			}
			if path.HasFakeBoundary() {
				if fakePath == nil {
					fakePath = path
				}
				continue
			}

			span.SetAttributes(attribute.Int("pairs_tried", tried), attribute.Bool("fake_fallback", false))
			return path, nil
		}
	}

	span.SetAttributes(attribute.Int("pairs_tried", tried))
	if fakePath != nil {
		span.SetAttributes(attribute.Bool("fake_fallback", true))
		c.logger.Debug("accepting fake-edge path", slog.Int("segment", idx), slog.String("path", fakePath.String()))
		return fakePath, nil
	}

	err := &SegmentError{Index: idx, From: idx, To: idx + 1}
	span.SetStatus(codes.Error, err.Error())

	return nil, err
}
