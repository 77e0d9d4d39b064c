package series

import (
	"fmt"
	"math"
)

// ConvergenceRadius estimates radius(p) — the supremum of all r ≥ 0 such
// that ‖pₙ‖·rⁿ stays bounded, equivalently 1 / limsup ‖pₙ‖^(1/n).
//
// Estimation procedure:
//
//	Stage 1 (Exact path): a sequence with recorded finite support has
//	        ‖pₙ‖ = 0 past its bound, so the radius is exactly ∞.
//	Stage 2 (Sample): read ‖pₙ‖ for n < horizon.
//	Stage 3 (Estimate): take g = max ‖pₙ‖^(1/n) over the upper half of the
//	        window (the tail of the sample dominates the limsup; early
//	        coefficients only pollute the root estimate). g = 0 ⇒ ∞,
//	        otherwise radius ≈ 1/g.
//
// The result is a numeric estimate scoped to the horizon; exact conclusions
// come from the certificate checkers below.
//
// Contracts: p non-nil. Complexity: O(horizon) coefficient norms.
// Errors: ErrNilSequence, ErrNegativeIndex (malformed generator).
func ConvergenceRadius(p Sequence, opts ...Option) (Radius, error) {
	if p == nil {
		return Radius{}, ErrNilSequence
	}
	if fs, ok := p.(FiniteSupport); ok && fs.SupportBound() >= 0 {
		return InfRadius(), nil
	}
	o := gatherOptions(opts...)

	g := 0.0
	var n int
	for n = o.horizon / 2; n < o.horizon; n++ {
		if n == 0 {
			continue // the 0-th coefficient carries no growth information
		}
		m, err := p.At(n)
		if err != nil {
			return Radius{}, err
		}
		root := math.Pow(m.Norm(), 1/float64(n))
		if root > g {
			g = root
		}
	}
	if g == 0 {
		return InfRadius(), nil
	}

	return FiniteRadius(1 / g)
}

// CheckNormBound verifies the certificate "∀n: ‖pₙ‖·rⁿ ≤ C" over the horizon.
// A nil return certifies r ≤ radius(p): any caller who can exhibit such a C
// may conclude r is within the disk.
//
// Contracts: C ≥ 0 and r ≥ 0, both finite.
// Errors: ErrNilSequence, ErrBadCertificate, ErrBoundViolated (wrapped with
// the offending degree).
func CheckNormBound(p Sequence, C, r float64, opts ...Option) error {
	if p == nil {
		return ErrNilSequence
	}
	if !isFiniteNonNeg(C) || !isFiniteNonNeg(r) {
		return ErrBadCertificate
	}
	o := gatherOptions(opts...)

	var n int
	for n = 0; n < o.horizon; n++ {
		m, err := p.At(n)
		if err != nil {
			return err
		}
		if m.Norm()*math.Pow(r, float64(n)) > C*(1+o.eps)+o.eps {
			return fmt.Errorf("degree %d: %w", n, ErrBoundViolated)
		}
	}

	return nil
}

// CheckGeometricBound verifies "∀n: ‖pₙ‖·rⁿ ≤ C·aⁿ" with 0 < a < 1 over the
// horizon. A nil return certifies r < radius(p) strictly: geometric decay
// inside the bound implies room to spare (the sequence is bounded at the
// larger radius r/a as well).
//
// Contracts: 0 < a < 1, C ≥ 0, r ≥ 0, all finite.
// Errors: ErrNilSequence, ErrBadCertificate, ErrBoundViolated.
func CheckGeometricBound(p Sequence, a, C, r float64, opts ...Option) error {
	if p == nil {
		return ErrNilSequence
	}
	if math.IsNaN(a) || a <= 0 || a >= 1 {
		return ErrBadCertificate
	}
	if !isFiniteNonNeg(C) || !isFiniteNonNeg(r) {
		return ErrBadCertificate
	}
	o := gatherOptions(opts...)

	gain := 1.0
	var n int
	for n = 0; n < o.horizon; n++ {
		m, err := p.At(n)
		if err != nil {
			return err
		}
		if m.Norm()*math.Pow(r, float64(n)) > C*gain*(1+o.eps)+o.eps {
			return fmt.Errorf("degree %d: %w", n, ErrBoundViolated)
		}
		gain *= a
	}

	return nil
}

// GeometricDomination is the workhorse converse: for r strictly inside the
// radius it produces a certificate (a, C) with 0 < a < 1, C > 0 and
// ‖pₙ‖·rⁿ ≤ C·aⁿ for every sampled n. Every summability argument — full-sum
// truncation, uniform tail envelopes, the re-expansion master bound — runs
// through this lemma.
//
// Construction: pick r′ strictly between r and radius(p) (midpoint; 2r+1 when
// the radius is infinite), set a = r/r′ and C = sup ‖pₙ‖·r′ⁿ over the
// horizon. Then ‖pₙ‖·rⁿ = ‖pₙ‖·r′ⁿ·aⁿ ≤ C·aⁿ.
//
// Contracts: r ≥ 0 finite, and r < radius(p) (checked; ErrOutOfRadius).
// Complexity: O(horizon).
func GeometricDomination(p Sequence, r float64, opts ...Option) (a, C float64, err error) {
	if p == nil {
		return 0, 0, ErrNilSequence
	}
	if !isFiniteNonNeg(r) {
		return 0, 0, ErrBadCertificate
	}
	rad, err := ConvergenceRadius(p, opts...)
	if err != nil {
		return 0, 0, err
	}
	if !rad.GreaterThan(r) {
		return 0, 0, ErrOutOfRadius
	}
	o := gatherOptions(opts...)

	var rPrime float64
	if rad.IsInf() {
		rPrime = 2*r + 1
	} else {
		rPrime = (r + rad.Float()) / 2
	}
	if r == 0 {
		// Degenerate disk center: any a works; only C = ‖p₀‖ matters.
		a = 0.5
	} else {
		a = r / rPrime
	}

	C = 0
	var n int
	for n = 0; n < o.horizon; n++ {
		m, mErr := p.At(n)
		if mErr != nil {
			return 0, 0, mErr
		}
		v := m.Norm() * math.Pow(rPrime, float64(n))
		if v > C {
			C = v
		}
	}
	if C < 1 {
		C = 1 // keep the certificate strictly positive; still an upper bound
	}

	return a, C, nil
}

// isFiniteNonNeg reports whether x is finite and ≥ 0.
func isFiniteNonNeg(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0
}
