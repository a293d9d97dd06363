package openlr

import (
	"log/slog"
	"math"
)

// Validator checks stitched paths against the expected segment length.
type Validator struct {
	logger *slog.Logger
}

// NewValidator returns a Validator that logs rejections at debug level.
// A nil logger means slog.Default().
func NewValidator(logger *slog.Logger) Validator {
	if logger == nil {
		logger = slog.Default()
	}

	return Validator{logger: logger}
}

// Deviation returns |expected - length| / expected for the path. An expected
// distance of zero yields 0 for an empty-length path and +Inf otherwise; a
// negative, NaN or infinite expected distance always yields +Inf.
func Deviation(path EdgeSequence, expected float64) float64 {
	if !validDistance(expected) {
		return math.Inf(1)
	}
	length := path.Length()
	if expected == 0 {
		if length == 0 {
			return 0
		}
		return math.Inf(1)
	}

	return math.Abs(expected-length) / expected
}

// Validate accepts path iff its relative length deviation from expected is
// at most tolerance. The boundary itself is accepted.
func (v Validator) Validate(path EdgeSequence, expected, tolerance float64) bool {
	logger := v.logger
	if logger == nil {
		logger = slog.Default()
	}
	dev := Deviation(path, expected)
	logger.Debug("validating path", slog.String("path", path.String()))

	if dev > tolerance {
		logger.Debug("path does not meet length constraints",
			slog.String("path", path.String()),
			slog.Float64("length", path.Length()),
			slog.Float64("expected", expected),
			slog.Float64("error", dev))
		return false
	}

	return true
}
