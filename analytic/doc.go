// Package analytic ties a concrete function to a power-series expansion on a
// ball: an Expansion asserts that F(x+y) = Σ pₙ(y,…,y) for every ‖y‖ < R
// around the center x. The package never derives coefficients from F — it
// verifies, combines, shrinks and re-centers expansions that the caller (or
// the shift package) already holds.
//
// # Contract checking
//
// The defining identity quantifies over a ball, so Validate checks it the
// only way a numeric library can: structurally (shapes, finiteness, a
// positive radius, coefficients that do not diverge immediately) and then by
// spot-checking F(x+y) against the truncated sum at pseudo-random sample
// points drawn inside the ball. Sampling is deterministic for a fixed seed.
// Points are confined to the part of the ball where summation is certifiable
// under the configured horizon, which may be smaller than R when the radius
// estimate is conservative.
//
// # Operations
//
//   - Validate / VerifyCoeffZero — contract and p₀ = F(center) spot-checks.
//   - Shrink — a smaller ball keeps the contract.
//   - AddExp / NegExp / SubExp — pointwise algebra on a common center; the
//     radius of the result is the minimum of the inputs.
//   - CoeffZero — the 0-ary coefficient, i.e. the value at the center.
//   - ReExpand — move the center by y with ‖y‖ < R through the shift
//     package; the new radius is at least R − ‖y‖ > 0, which is exactly the
//     openness of the analyticity domain.
//   - HasExpansionAt / AnalyticAt / AnalyticWithin — existence and ball
//     -sampling checks built from the above.
//
// # Errors
//
//	ErrNilFunction, ErrNilSequence, ErrDimensionMismatch, ErrNaNInf —
//	structural defects of the Expansion value.
//	ErrBadRadius        — radius not positive, not below the coefficient
//	                      radius, or a Shrink target outside (0, R].
//	ErrCenterMismatch   — algebra on expansions with different centers.
//	ErrContractViolated — a spot-check found F and the sum apart.
//	ErrOutsideBall      — ReExpand/AnalyticAt target not inside the ball.
package analytic
