// Package analytic — the Expansion value and its contract checks.
package analytic

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/powser/multilinear"
	"github.com/katalvlaran/powser/series"
)

// Func is the concrete side of an expansion: a pointwise function E → F.
type Func func(multilinear.Vec) (multilinear.Vec, error)

// Expansion asserts F(Center+y) = Σ pₙ(y,…,y) for all ‖y‖ < R. The fields
// are plain data; nothing is checked at construction — call Validate.
type Expansion struct {
	F      Func
	Coeffs series.Sequence
	Center multilinear.Vec
	R      series.Radius
}

// structural checks everything that needs no numerics.
func (e Expansion) structural() error {
	if e.F == nil {
		return ErrNilFunction
	}
	if e.Coeffs == nil {
		return ErrNilSequence
	}
	if len(e.Center) != e.Coeffs.InDim() {
		return ErrDimensionMismatch
	}
	if !multilinear.IsFinite(e.Center) {
		return ErrNaNInf
	}
	if e.R.IsZero() {
		return ErrBadRadius
	}

	return nil
}

// Validate checks the expansion contract.
//
// Stage 1 (Validate): structure — nil parts, shapes, finiteness, R > 0.
// Stage 2 (Prepare): estimate the coefficient radius; coefficients that
// admit no positive radius cannot back any ball.
// Stage 3 (Spot-check): draw sample points inside the certifiable part of
// the ball and compare F against the truncated sum within the tolerance.
// Errors: structural sentinels, ErrBadRadius, ErrContractViolated.
func (e Expansion) Validate(opts ...Option) error {
	if err := e.structural(); err != nil {
		return err
	}
	o := gatherOptions(opts...)

	est, err := series.ConvergenceRadius(e.Coeffs, series.WithHorizon(o.horizon))
	if err != nil {
		return err
	}
	if est.IsZero() {
		return fmt.Errorf("%w: coefficients admit no positive radius", ErrBadRadius)
	}

	rSample := sampleRadius(e.R, est)
	rng := rand.New(rand.NewSource(o.seed))
	innerTol := o.tol * innerTolFraction

	var (
		i    int
		y    multilinear.Vec
		x    multilinear.Vec
		want multilinear.Vec
		got  multilinear.Vec
	)
	for i = 0; i < o.samples; i++ {
		y = randomInBall(rng, len(e.Center), rSample)
		if x, err = multilinear.Add(e.Center, y); err != nil {
			return err
		}
		if want, err = e.F(x); err != nil {
			return fmt.Errorf("function at sample %d: %w", i, err)
		}
		if got, err = series.Sum(e.Coeffs, y,
			series.WithTolerance(innerTol), series.WithHorizon(o.horizon)); err != nil {
			return fmt.Errorf("sum at sample %d: %w", i, err)
		}
		if !multilinear.IsFinite(want) {
			return ErrNaNInf
		}
		if !multilinear.Equal(want, got, o.tol) {
			return fmt.Errorf("%w: sample %d at offset norm %g", ErrContractViolated, i, multilinear.Norm(y))
		}
	}

	return nil
}

// Shrink restricts the expansion to a smaller ball. The contract on the
// larger ball implies it on every 0 < r ≤ R.
// Errors: ErrBadRadius (r outside (0, R] or non-finite).
func (e Expansion) Shrink(r float64) (Expansion, error) {
	rad, err := series.FiniteRadius(r)
	if err != nil || rad.IsZero() || !rad.LessEq(e.R) {
		return Expansion{}, fmt.Errorf("%w: shrink to %g", ErrBadRadius, r)
	}

	out := e
	out.R = rad

	return out, nil
}

// CoeffZero returns the 0-ary coefficient, which the contract identifies
// with F(Center).
// Errors: ErrNilSequence, series.ErrMalformedSequence.
func (e Expansion) CoeffZero() (multilinear.Vec, error) {
	if e.Coeffs == nil {
		return nil, ErrNilSequence
	}
	p0, err := e.Coeffs.At(0)
	if err != nil {
		return nil, err
	}
	if p0.Arity() != 0 {
		return nil, series.ErrMalformedSequence
	}

	return p0.Apply()
}

// VerifyCoeffZero spot-checks p₀ = F(Center) within the tolerance.
// Errors: structural sentinels, ErrContractViolated.
func (e Expansion) VerifyCoeffZero(opts ...Option) error {
	if err := e.structural(); err != nil {
		return err
	}
	o := gatherOptions(opts...)

	v, err := e.CoeffZero()
	if err != nil {
		return err
	}
	w, err := e.F(e.Center)
	if err != nil {
		return err
	}
	if !multilinear.Equal(v, w, o.tol) {
		return fmt.Errorf("%w: p₀ differs from the center value", ErrContractViolated)
	}

	return nil
}

// sampleRadius picks the spot-check radius: strictly inside both the claimed
// ball and the horizon-certified disk.
func sampleRadius(r, est series.Radius) float64 {
	m := series.MinRadius(r, est)
	if m.IsInf() {
		return 1
	}

	return sampleShrink * m.Float()
}

// randomInBall draws a point with norm ≤ r, never exactly zero direction.
func randomInBall(rng *rand.Rand, dim int, r float64) multilinear.Vec {
	v := make(multilinear.Vec, dim)
	var i int
	for i = range v {
		v[i] = 2*rng.Float64() - 1
	}
	n := multilinear.Norm(v)
	if n == 0 {
		v[0] = 1
		n = 1
	}

	return multilinear.Scale(r*rng.Float64()/n, v)
}
