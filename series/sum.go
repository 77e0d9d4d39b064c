package series

import (
	"math"

	"github.com/katalvlaran/powser/multilinear"
)

// PartialSum evaluates the finite sum Σ_{k<n} pₖ(y,…,y).
//
// Always defined — no radius precondition — and continuous in y (each term is
// a continuous multilinear evaluation).
//
// Contracts: p non-nil, n ≥ 0, y finite with len(y) == p.InDim().
// Complexity: O(n) coefficient evaluations.
// Errors: ErrNilSequence, ErrNegativeIndex, ErrDimensionMismatch, ErrNaNInf,
// ErrMalformedSequence.
func PartialSum(p Sequence, n int, y multilinear.Vec) (multilinear.Vec, error) {
	if p == nil {
		return nil, ErrNilSequence
	}
	if n < 0 {
		return nil, ErrNegativeIndex
	}
	if len(y) != p.InDim() {
		return nil, ErrDimensionMismatch
	}
	if !multilinear.IsFinite(y) {
		return nil, ErrNaNInf
	}

	acc := multilinear.Zero(p.OutDim())
	args := make([]multilinear.Vec, 0, n)
	var k int
	for k = 0; k < n; k++ {
		m, err := p.At(k)
		if err != nil {
			return nil, err
		}
		if m.Arity() != k || m.InDim() != p.InDim() || m.OutDim() != p.OutDim() {
			return nil, ErrMalformedSequence
		}
		term, err := m.Apply(args...)
		if err != nil {
			return nil, err
		}
		if err = multilinear.Accumulate(acc, term); err != nil {
			return nil, err
		}
		args = append(args, y) // k+1 copies of y for the next degree
	}

	return acc, nil
}

// Sum evaluates the full series Σₙ pₙ(y,…,y) under the checked precondition
// ‖y‖ < radius(p).
//
// The truncation depth N is derived from the geometric-domination certificate
// (a, C) at r = ‖y‖: the discarded tail Σ_{n≥N} C·aⁿ = C·aᴺ/(1−a) is kept
// below the configured tolerance. When the required depth exceeds the term
// budget the evaluation is rejected (ErrNoConvergence) instead of returning
// an uncertified value.
//
// The limit exists because ℝ^e is complete; the completeness requirement is a
// documented precondition of the construction, automatic here.
//
// Contracts: p non-nil, y finite with len(y) == p.InDim(), ‖y‖ < radius(p).
// Errors: ErrNilSequence, ErrDimensionMismatch, ErrNaNInf, ErrOutOfRadius,
// ErrNoConvergence.
func Sum(p Sequence, y multilinear.Vec, opts ...Option) (multilinear.Vec, error) {
	if p == nil {
		return nil, ErrNilSequence
	}
	if len(y) != p.InDim() {
		return nil, ErrDimensionMismatch
	}
	if !multilinear.IsFinite(y) {
		return nil, ErrNaNInf
	}
	o := gatherOptions(opts...)

	// Boundary validation: out-of-radius evaluation is a domain error, caught
	// here rather than deep inside the loop.
	r := multilinear.Norm(y)
	a, C, err := GeometricDomination(p, r, opts...)
	if err != nil {
		return nil, err
	}

	n, err := termsForTolerance(a, C, o.tol)
	if err != nil {
		return nil, err
	}

	return PartialSum(p, n, y)
}

// TailBound returns the uniform remainder envelope valid on the closed
// sub-ball of radius r: for every ‖y‖ ≤ r and every n,
//
//	‖Σ p − PartialSum(p, n, y)‖ ≤ C·aⁿ/(1−a)
//
// with (a, C) the geometric-domination certificate at r. Uniformity in y is
// what upgrades pointwise to uniform convergence on sub-balls, and from there
// to continuity of the sum on the open ball via the standard shrinking
// exhaustion.
//
// Contracts: r ≥ 0 finite with r < radius(p); n ≥ 0.
// Errors: ErrNilSequence, ErrBadCertificate, ErrOutOfRadius, ErrNegativeIndex.
func TailBound(p Sequence, r float64, n int, opts ...Option) (float64, error) {
	if n < 0 {
		return 0, ErrNegativeIndex
	}
	a, C, err := GeometricDomination(p, r, opts...)
	if err != nil {
		return 0, err
	}

	return C * math.Pow(a, float64(n)) / (1 - a), nil
}

// termsForTolerance returns the smallest N with C·aᴺ/(1−a) ≤ tol, clamped to
// at least 1 and rejected past the term budget.
func termsForTolerance(a, C, tol float64) (int, error) {
	target := tol * (1 - a) / C
	if target >= 1 {
		return 1, nil
	}
	n := int(math.Ceil(math.Log(target) / math.Log(a)))
	if n < 1 {
		n = 1
	}
	if n > maxSumTerms {
		return 0, ErrNoConvergence
	}

	return n, nil
}
