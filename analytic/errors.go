package analytic

import "errors"

// Sentinel errors. Match with errors.Is; spot-check failures carry sample
// context via wrapping.
var (
	// ErrNilFunction is returned when an Expansion has no function.
	ErrNilFunction = errors.New("analytic: nil function")

	// ErrNilSequence is returned when an Expansion has no coefficients.
	ErrNilSequence = errors.New("analytic: nil coefficient sequence")

	// ErrDimensionMismatch is returned when the center, function values or
	// coefficient dimensions disagree.
	ErrDimensionMismatch = errors.New("analytic: dimension mismatch")

	// ErrNaNInf is returned when the center or a sample point evaluates to a
	// non-finite value.
	ErrNaNInf = errors.New("analytic: non-finite value")

	// ErrBadRadius is returned for a non-positive radius, coefficients that
	// admit no positive radius, or a Shrink target outside (0, R].
	ErrBadRadius = errors.New("analytic: invalid radius")

	// ErrCenterMismatch is returned by the algebra when operand centers
	// differ.
	ErrCenterMismatch = errors.New("analytic: center mismatch")

	// ErrContractViolated is returned when a spot-check finds the function
	// and the truncated sum further apart than the tolerance.
	ErrContractViolated = errors.New("analytic: expansion contract violated")

	// ErrOutsideBall is returned when a re-expansion or membership target
	// does not lie strictly inside the ball.
	ErrOutsideBall = errors.New("analytic: point outside the ball")
)
