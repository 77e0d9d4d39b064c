// Package analytic — re-centering and membership checks. ReExpand is the
// constructive form of the openness of the analyticity domain: every point
// strictly inside the ball carries its own expansion of positive radius.
package analytic

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/powser/multilinear"
	"github.com/katalvlaran/powser/series"
	"github.com/katalvlaran/powser/shift"
)

// ReExpand moves the center by y with ‖y‖ < R. The same function F, the
// shifted coefficient sequence and the certified radius R − ‖y‖ > 0 form
// the new expansion.
// Errors: structural sentinels, ErrOutsideBall, shift sentinels.
func ReExpand(e Expansion, y multilinear.Vec, opts ...Option) (Expansion, error) {
	if err := e.structural(); err != nil {
		return Expansion{}, err
	}
	if len(y) != len(e.Center) {
		return Expansion{}, ErrDimensionMismatch
	}
	if !multilinear.IsFinite(y) {
		return Expansion{}, ErrNaNInf
	}
	o := gatherOptions(opts...)

	yNorm := multilinear.Norm(y)
	if !e.R.GreaterThan(yNorm) {
		return Expansion{}, ErrOutsideBall
	}

	so := shift.DefaultOptions()
	so.Tolerance = o.tol * innerTolFraction
	so.Horizon = o.horizon
	q, err := shift.Shift(e.Coeffs, y, so)
	if err != nil {
		return Expansion{}, err
	}

	center, err := multilinear.Add(e.Center, y)
	if err != nil {
		return Expansion{}, err
	}
	rad, err := e.R.SubSat(yNorm)
	if err != nil {
		return Expansion{}, err
	}

	return Expansion{F: e.F, Coeffs: q, Center: center, R: rad}, nil
}

// HasExpansionAt reports whether p backs an expansion of f around x with
// some positive radius: the coefficient radius must be positive and the
// contract must survive a spot-check on a trial ball.
// Errors: structural sentinels only; a failed spot-check is a false report.
func HasExpansionAt(f Func, p series.Sequence, x multilinear.Vec, opts ...Option) (bool, error) {
	if f == nil {
		return false, ErrNilFunction
	}
	if p == nil {
		return false, ErrNilSequence
	}
	o := gatherOptions(opts...)

	est, err := series.ConvergenceRadius(p, series.WithHorizon(o.horizon))
	if err != nil {
		return false, err
	}
	if est.IsZero() {
		return false, nil
	}

	trial := 1.0
	if !est.IsInf() {
		trial = est.Float() / 2
	}
	rad, err := series.FiniteRadius(trial)
	if err != nil {
		return false, err
	}

	e := Expansion{F: f, Coeffs: p, Center: x, R: rad}
	if err = e.Validate(opts...); err != nil {
		if errors.Is(err, ErrContractViolated) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// AnalyticAt reports whether x lies strictly inside the ball of e and the
// re-expansion at x passes its spot-check: a constructive membership test
// for the analyticity domain.
// Errors: structural sentinels; contract failures report false.
func AnalyticAt(e Expansion, x multilinear.Vec, opts ...Option) (bool, error) {
	if err := e.structural(); err != nil {
		return false, err
	}
	if len(x) != len(e.Center) {
		return false, ErrDimensionMismatch
	}

	y, err := multilinear.Sub(x, e.Center)
	if err != nil {
		return false, err
	}
	if !e.R.GreaterThan(multilinear.Norm(y)) {
		return false, nil
	}

	re, err := ReExpand(e, y, opts...)
	if err != nil {
		if errors.Is(err, shift.ErrShiftOutOfRadius) {
			return false, nil
		}

		return false, err
	}
	if err = re.Validate(opts...); err != nil {
		if errors.Is(err, ErrContractViolated) {
			return false, nil
		}

		return false, err
	}

	return true, nil
}

// AnalyticWithin samples points in the concentric ball of radius r and
// checks each through AnalyticAt: a sampled witness that the whole sub-ball
// sits in the analyticity domain.
// Errors: ErrBadRadius (r outside (0, R)), structural sentinels.
func AnalyticWithin(e Expansion, r float64, opts ...Option) (bool, error) {
	if err := e.structural(); err != nil {
		return false, err
	}
	if r <= 0 || !e.R.GreaterThan(r) {
		return false, ErrBadRadius
	}
	o := gatherOptions(opts...)

	rng := rand.New(rand.NewSource(o.seed))
	var (
		i  int
		x  multilinear.Vec
		ok bool
	)
	for i = 0; i < o.samples; i++ {
		y := randomInBall(rng, len(e.Center), r)
		var err error
		if x, err = multilinear.Add(e.Center, y); err != nil {
			return false, err
		}
		if ok, err = AnalyticAt(e, x, opts...); err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}
