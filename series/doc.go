// Package series implements formal multilinear power series: coefficient
// sequences p = (pₙ)ₙ of n-linear maps pₙ : Eⁿ → F, the extended-real radius
// of convergence of such a sequence, and evaluation of partial and full sums
// Σ pₙ(y,…,y) with certified truncation.
//
// # Radius of convergence
//
// radius(p) is the supremum of all r ≥ 0 such that ‖pₙ‖·rⁿ stays bounded —
// equivalently 1 / limsup ‖pₙ‖^(1/n). It is an extended non-negative real:
// the Radius type tags the infinite case explicitly and provides saturating
// arithmetic (∞ − finite = ∞), rather than punning on IEEE Inf.
//
// The estimator and the certificate checkers split the classical lemmas:
//
//   - ConvergenceRadius — numeric estimate of radius(p) from norm growth over
//     a sampling horizon; exact ∞ for sequences with recorded finite support.
//   - CheckNormBound(p, C, r)      — verifies ‖pₙ‖·rⁿ ≤ C; certifies r ≤ radius(p).
//   - CheckGeometricBound(p, a, C, r) — verifies ‖pₙ‖·rⁿ ≤ C·aⁿ with 0<a<1;
//     certifies r < radius(p) strictly (geometric decay leaves room to spare).
//   - GeometricDomination(p, r)    — the workhorse converse: for r < radius(p)
//     produces (a, C) with ‖pₙ‖·rⁿ ≤ C·aⁿ. Every summability argument in this
//     module — truncation, tail envelopes, re-expansion — runs through it.
//
// # Summation
//
// PartialSum(p, n, y) evaluates Σ_{k<n} pₖ(y,…,y) — a finite, always-defined
// sum. Sum(p, y) evaluates the full series under the checked precondition
// ‖y‖ < radius(p): the truncation depth is derived from the geometric
// domination certificate so the discarded tail is provably below the
// configured tolerance. Evaluating outside the radius is a domain error
// (ErrOutOfRadius), not a best-effort answer. The limit exists because the
// target ℝ^e is complete; implementations over incomplete targets would have
// to reject Sum outright.
//
// TailBound(p, r, n) returns the uniform envelope C·aⁿ/(1−a) valid for every
// ‖y‖ ≤ r — uniform convergence on closed sub-balls, which is what upgrades
// pointwise convergence to continuity of the sum on the open ball.
//
// # Numeric policy
//
// All estimators share a functional-option policy: WithHorizon (sampling
// depth), WithEpsilon (comparison slack), WithTolerance (truncation target).
// Defaults are documented constants; option constructors panic on nonsensical
// values (programmer error), never on data.
//
// Errors are strict sentinels (ErrNilSequence, ErrOutOfRadius,
// ErrBoundViolated, ErrBadCertificate, ErrNoConvergence, …), matched via
// errors.Is.
package series
