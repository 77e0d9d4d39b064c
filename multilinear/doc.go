// Package multilinear provides the normed-space toolkit the power-series
// engine consumes: plain float64 vectors with a Euclidean norm, an n-linear
// Map abstraction E^n → F with an operator-norm bound, currying over an
// arbitrary subset of argument positions, and argument relabeling along a
// permutation.
//
// # The Map contract
//
// A Map is an n-linear function from (ℝ^inDim)^arity to ℝ^outDim. Every
// implementation guarantees:
//
//   - Apply is linear in each argument separately;
//   - Norm() returns a finite upper bound B on the operator norm, i.e.
//     ‖Apply(v₁,…,vₙ)‖ ≤ B·∏‖vᵢ‖ for all arguments;
//   - Curry(positions, values) freezes the chosen argument positions at the
//     given vectors and returns a map on the remaining positions whose norm
//     bound is sub-multiplicative: ≤ B·∏‖values‖.
//
// Norm() is a bound, not necessarily the exact operator norm: Dense reports a
// computable envelope, while Monomial (the 1-dimensional family c·v₁⋯vₙ) is
// exact. Every consumer in this module relies only on the upper-bound and
// sub-multiplicativity contracts, so the distinction never leaks.
//
// # Implementations
//
//	Constant  — 0-ary map holding a fixed vector (the p₀ coefficient shape).
//	Monomial  — scalar n-linear map c·v₁⋯vₙ on ℝ; exact norm |c|.
//	Dense     — tensor-backed n-linear map, flat row-major storage.
//	NewZero   — the zero map of any signature.
//	NewSum    — coefficient-wise sum; norm bound adds.
//	NewScaled — scalar multiple; norm bound scales by |c|.
//	NewRelabel— argument reindexing along a permutation; norm preserved.
//
// All values are immutable after construction; Curry and the combinators
// return fresh maps and never mutate their operands.
//
// Errors: strict sentinels (ErrNilMap, ErrArityMismatch, ErrDimensionMismatch,
// ErrBadShape, ErrBadPosition, ErrNaNInf), matched via errors.Is.
package multilinear
