// Package analytic — pointwise algebra on expansions sharing a center.
package analytic

import (
	"github.com/katalvlaran/powser/multilinear"
	"github.com/katalvlaran/powser/series"
)

// AddExp combines two expansions around the same center: functions add
// pointwise, coefficients add degree-wise, the radius is the minimum of the
// inputs. Validity of both operands implies validity of the result.
// Errors: ErrNilFunction, ErrNilSequence, ErrCenterMismatch, series shape
// sentinels.
func AddExp(a, b Expansion) (Expansion, error) {
	if a.F == nil || b.F == nil {
		return Expansion{}, ErrNilFunction
	}
	if a.Coeffs == nil || b.Coeffs == nil {
		return Expansion{}, ErrNilSequence
	}
	if len(a.Center) != len(b.Center) || !multilinear.Equal(a.Center, b.Center, 0) {
		return Expansion{}, ErrCenterMismatch
	}

	sum, err := series.Add(a.Coeffs, b.Coeffs)
	if err != nil {
		return Expansion{}, err
	}

	af, bf := a.F, b.F
	f := func(x multilinear.Vec) (multilinear.Vec, error) {
		u, err := af(x)
		if err != nil {
			return nil, err
		}
		v, err := bf(x)
		if err != nil {
			return nil, err
		}

		return multilinear.Add(u, v)
	}

	return Expansion{
		F:      f,
		Coeffs: sum,
		Center: multilinear.Clone(a.Center),
		R:      series.MinRadius(a.R, b.R),
	}, nil
}

// NegExp negates an expansion: function and coefficients flip sign, the ball
// is unchanged.
// Errors: ErrNilFunction, ErrNilSequence.
func NegExp(a Expansion) (Expansion, error) {
	if a.F == nil {
		return Expansion{}, ErrNilFunction
	}
	if a.Coeffs == nil {
		return Expansion{}, ErrNilSequence
	}

	neg, err := series.Neg(a.Coeffs)
	if err != nil {
		return Expansion{}, err
	}

	af := a.F
	f := func(x multilinear.Vec) (multilinear.Vec, error) {
		v, err := af(x)
		if err != nil {
			return nil, err
		}

		return multilinear.Scale(-1, v), nil
	}

	return Expansion{
		F:      f,
		Coeffs: neg,
		Center: multilinear.Clone(a.Center),
		R:      a.R,
	}, nil
}

// SubExp is AddExp(a, NegExp(b)).
func SubExp(a, b Expansion) (Expansion, error) {
	nb, err := NegExp(b)
	if err != nil {
		return Expansion{}, err
	}

	return AddExp(a, nb)
}
