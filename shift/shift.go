// Package shift — entry points: certificate construction and the shifted
// sequence.
package shift

import (
	"math"

	"github.com/katalvlaran/powser/multilinear"
	"github.com/katalvlaran/powser/series"
)

// cert is the per-call summability certificate: a comparison radius ρ with
// ‖y‖ < ρ < radius(p), the domination constant M = sup ‖pₙ‖ρⁿ over the
// horizon, and the contraction ratio β = ‖y‖/ρ < 1.
type cert struct {
	rho  float64
	m    float64
	beta float64
}

// shifted is the lazily evaluated re-centered sequence. Coefficients are
// materialized on demand by At; nothing is enumerated until a coefficient is
// applied or its norm bound queried.
type shifted struct {
	p     series.Sequence
	y     multilinear.Vec
	yNorm float64
	opts  Options
	c     cert
	supp  int // source support bound, −1 when the source is not finitely supported
}

// finiteShifted re-exposes finite support: a polynomial re-centered is still
// a polynomial of the same degree, so the radius estimator stays exactly ∞.
type finiteShifted struct {
	shifted
}

// SupportBound reports the source's support bound, which survives the shift.
func (s *finiteShifted) SupportBound() int { return s.supp }

// Shift re-centers the series p at p's-origin + y and returns the coefficient
// sequence of the new expansion. The shift vector must lie strictly inside
// the estimated disk of convergence; otherwise ErrShiftOutOfRadius is
// returned. A zero shift returns p unchanged.
//
// Stage 1 (Validate): nil/dimension/finite checks and the radius gate.
// Stage 2 (Prepare): pick ρ strictly between ‖y‖ and the radius, sample
// M = sup ‖pₙ‖ρⁿ over the horizon.
// Stage 3 (Finalize): wrap everything in a lazy sequence.
func Shift(p series.Sequence, y multilinear.Vec, opts Options) (series.Sequence, error) {
	opts = opts.normalized()

	if p == nil {
		return nil, ErrNilSequence
	}
	if len(y) != p.InDim() {
		return nil, ErrDimensionMismatch
	}
	if !multilinear.IsFinite(y) {
		return nil, ErrNaNInf
	}

	yNorm := multilinear.Norm(y)
	if yNorm == 0 {
		// Re-centering at the same origin is the identity.
		return p, nil
	}

	rad, err := series.ConvergenceRadius(p, series.WithHorizon(opts.Horizon))
	if err != nil {
		return nil, err
	}
	if !rad.GreaterThan(yNorm) {
		return nil, ErrShiftOutOfRadius
	}

	c, err := buildCert(p, yNorm, rad, opts.Horizon)
	if err != nil {
		return nil, err
	}

	out := shifted{
		p:     p,
		y:     multilinear.Clone(y),
		yNorm: yNorm,
		opts:  opts,
		c:     c,
		supp:  -1,
	}
	if fp, ok := p.(series.FiniteSupport); ok {
		out.supp = fp.SupportBound()

		return &finiteShifted{shifted: out}, nil
	}

	return &out, nil
}

// ShiftedRadius returns the certified lower bound radius(p) − ‖y‖ for the
// radius of the re-centered sequence, saturating at zero and preserving ∞.
// The shift vector must not leave the closed disk.
func ShiftedRadius(p series.Sequence, y multilinear.Vec, opts Options) (series.Radius, error) {
	opts = opts.normalized()

	if p == nil {
		return series.Radius{}, ErrNilSequence
	}
	if len(y) != p.InDim() {
		return series.Radius{}, ErrDimensionMismatch
	}
	if !multilinear.IsFinite(y) {
		return series.Radius{}, ErrNaNInf
	}

	rad, err := series.ConvergenceRadius(p, series.WithHorizon(opts.Horizon))
	if err != nil {
		return series.Radius{}, err
	}

	yNorm := multilinear.Norm(y)
	if !rad.IsInf() && yNorm > rad.Float() {
		return series.Radius{}, ErrShiftOutOfRadius
	}

	return rad.SubSat(yNorm)
}

// buildCert picks the comparison radius and samples the domination constant.
// ‖y‖ < rad is already established by the caller.
func buildCert(p series.Sequence, yNorm float64, rad series.Radius, horizon int) (cert, error) {
	var rho float64
	if rad.IsInf() {
		rho = 2*yNorm + 1
	} else {
		rho = (yNorm + rad.Float()) / 2
	}

	// M = sup over the horizon of ‖pₙ‖ρⁿ, clamped to at least 1 so the
	// closed-form bounds stay positive.
	var (
		m    = 1.0
		pow  = 1.0
		n    int
		mMap multilinear.Map
		err  error
	)
	for n = 0; n < horizon; n++ {
		mMap, err = p.At(n)
		if err != nil {
			return cert{}, err
		}
		if v := mMap.Norm() * pow; v > m {
			m = v
		}
		pow *= rho
	}

	return cert{rho: rho, m: m, beta: yNorm / rho}, nil
}

// At returns the degree-k coefficient of the shifted expansion as a lazy
// multilinear map. Evaluation and norm queries happen against the stored
// certificate; see coeff.
func (s *shifted) At(k int) (multilinear.Map, error) {
	if k < 0 {
		return nil, series.ErrNegativeIndex
	}

	return &coeff{seq: s, k: k}, nil
}

// InDim returns the shared input dimension.
func (s *shifted) InDim() int { return s.p.InDim() }

// OutDim returns the shared output dimension.
func (s *shifted) OutDim() int { return s.p.OutDim() }

// normBound is the closed-form coefficient bound M / (ρᵏ·(1−β)^(k+1)).
func (s *shifted) normBound(k int) float64 {
	return s.c.m / (math.Pow(s.c.rho, float64(k)) * math.Pow(1-s.c.beta, float64(k+1)))
}
