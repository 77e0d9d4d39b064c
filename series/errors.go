// Package series: sentinel error set (unified, consistent).
// All operations MUST return these sentinels and tests MUST check them via
// errors.Is. Wrapping with fmt.Errorf("ctx: %w", ErrX) is allowed at outer
// boundaries; callers still match with errors.Is.

package series

import "errors"

var (
	// ErrNilSequence is returned when a nil Sequence (or nil At function) is
	// passed where a value is required.
	ErrNilSequence = errors.New("series: nil sequence")

	// ErrBadShape is returned when requested dimensions are non-positive.
	ErrBadShape = errors.New("series: invalid shape")

	// ErrDimensionMismatch indicates sequences or vectors with incompatible
	// input/output dimensions.
	ErrDimensionMismatch = errors.New("series: dimension mismatch")

	// ErrMalformedSequence indicates a sequence whose degree-n coefficient does
	// not have arity n, or whose coefficient signature drifts from the declared
	// dimensions. A contract violation by the wrapped generator, not by data.
	ErrMalformedSequence = errors.New("series: coefficient arity or shape mismatch")

	// ErrNegativeIndex indicates a negative degree index.
	ErrNegativeIndex = errors.New("series: negative degree index")

	// ErrNegativeRadius indicates a negative value where a radius is required.
	ErrNegativeRadius = errors.New("series: radius must be non-negative")

	// ErrNaNInf signals a NaN or ±Inf where finite values are required
	// (evaluation points, certificate constants, radii).
	ErrNaNInf = errors.New("series: NaN or Inf encountered")

	// ErrOutOfRadius is returned when an evaluation point lies on or outside
	// the radius of convergence — a domain precondition, not a transient
	// failure; nothing is retried.
	ErrOutOfRadius = errors.New("series: evaluation point outside radius of convergence")

	// ErrBadCertificate indicates certificate data out of range
	// (C < 0, a ∉ (0,1), non-finite values).
	ErrBadCertificate = errors.New("series: invalid certificate data")

	// ErrBoundViolated is returned by certificate checkers when a sampled
	// coefficient breaks the claimed bound.
	ErrBoundViolated = errors.New("series: norm bound violated")

	// ErrNoConvergence is returned when the certified truncation depth needed
	// to reach the configured tolerance is unreachable (evaluation too close
	// to the boundary for the numeric policy).
	ErrNoConvergence = errors.New("series: tolerance not reachable within term budget")
)
