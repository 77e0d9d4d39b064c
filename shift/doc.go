// Package shift implements the change of origin for formal multilinear power
// series: given coefficients p = (pₙ) and a shift vector y strictly inside the
// disk of convergence, it constructs a new sequence q = Shift(p, y) with
//
//	Σₖ qₖ(z,…,z) = Σₙ pₙ(y+z,…,y+z)   whenever ‖y‖ + ‖z‖ < radius(p),
//
// so a function represented by p around x is represented by q around x+y.
//
// # Construction
//
// Each output coefficient is a double sum over frozen-position choices:
//
//	qₖ = Σ_{l≥0} Σ_{s ⊆ Fin(k+l), |s|=l}  p_{k+l} curried at s by y
//
// the positions in s are frozen at y, the complementary k positions stay
// free. This is the multinomial expansion f(x+y+z) = Σ pₙ(y+z,…) generalized
// to non-symmetric maps: an explicit subset selection replaces the binomial
// coefficient. The (k, l, s) index space is re-parametrized through the
// combin.Merge/Split bijection as the flat space (n, s ⊆ Fin(n)), which is
// what legitimizes rearranging the nested sum once absolute summability is
// established.
//
// # Summability and truncation
//
// One certificate is computed per Shift call: a radius ρ with ‖y‖ < ρ <
// radius(p) (midpoint; 2‖y‖+1 when the radius is infinite) and
// M = sup ‖pₙ‖·ρⁿ over the horizon. Writing β = ‖y‖/ρ < 1, operator-norm
// sub-multiplicativity of currying gives the per-level master bound
//
//	‖Σ_{|s|=l} term‖ ≤ (M/ρᵏ)·C(k+l, l)·βˡ·∏‖zᵢ‖
//
// and, folded over l with the binomial series Σ C(k+l,l)βˡ = (1−β)^−(k+1),
// the closed-form coefficient bound ‖qₖ‖ ≤ M / (ρᵏ·(1−β)^(k+1)). Hence the
// whole triple sum is absolutely — so unconditionally — summable, and
// radius(q) ≥ radius(p) − ‖y‖ (saturating; ∞ − finite = ∞).
//
// Evaluation truncates the l-sum when the certified tail drops below the
// configured tolerance: level-l+1 terms onward are dominated by a geometric
// progression once the term ratio β·(k+l+2)/(l+2) falls under 1. Coefficients
// whose entire closed-form bound is below tolerance short-circuit to zero
// without enumerating anything.
//
// # Parallelism
//
// The subset terms of one level are provably order-independent (absolute
// summability before any rearrangement), so Options.Workers > 1 fans the
// enumeration out across goroutines with a deterministic chunk-ordered
// reduction: repeated runs at one worker count are bit-identical, different
// counts agree up to summation rounding. Defaults stay sequential.
//
// # API
//
//	q, err := shift.Shift(p, y, shift.DefaultOptions())
//	r, err := shift.ShiftedRadius(p, y, shift.DefaultOptions())
//
// Complexity: evaluating qₖ to tolerance enumerates C(k+l, l) subsets per
// retained level — polynomial in the truncation level for fixed k, but
// intrinsically combinatorial in k; callers summing many coefficients rely on
// the short-circuit to cut the high degrees.
//
// # Errors
//
//	ErrNilSequence       — nil coefficient sequence.
//	ErrDimensionMismatch — shift vector incompatible with the sequence.
//	ErrNaNInf            — non-finite shift vector or evaluation arguments.
//	ErrShiftOutOfRadius  — ‖y‖ ≥ radius(p); the construction is not attempted.
//	ErrDegreeOverflow    — truncation would need degrees past the enumerable
//	                       ground set (combin.MaxGround).
package shift
