// Package analytic_test shared fixtures: expansions of 1/(1−x) and eˣ
// around the origin, the classical scalar examples.
package analytic_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/powser/analytic"
	"github.com/katalvlaran/powser/multilinear"
	"github.com/katalvlaran/powser/series"
	"github.com/stretchr/testify/require"
)

// factorial returns n! as a float64 (exact through n = 20).
func factorial(n int) float64 {
	f := 1.0
	var i int
	for i = 2; i <= n; i++ {
		f *= float64(i)
	}

	return f
}

// coeffSeq builds the scalar sequence pₙ = Monomial(n, coeff(n)).
func coeffSeq(t *testing.T, coeff func(n int) float64) series.Sequence {
	t.Helper()
	s, err := series.New(1, 1, func(n int) (multilinear.Map, error) {
		m, err := multilinear.NewMonomial(n, coeff(n))
		if err != nil {
			return nil, err
		}

		return m, nil
	})
	require.NoError(t, err)

	return s
}

// geomExpansion is 1/(1−x) around 0 with coefficients Σ xⁿ, claimed on the
// ball of radius 0.75 (true radius 1).
func geomExpansion(t *testing.T) analytic.Expansion {
	t.Helper()
	rad, err := series.FiniteRadius(0.75)
	require.NoError(t, err)

	return analytic.Expansion{
		F: func(x multilinear.Vec) (multilinear.Vec, error) {
			return multilinear.Vec{1 / (1 - x[0])}, nil
		},
		Coeffs: coeffSeq(t, func(int) float64 { return 1 }),
		Center: multilinear.Vec{0},
		R:      rad,
	}
}

// expExpansion is eˣ around 0 with coefficients Σ xⁿ/n!, claimed on the
// whole space.
func expExpansion(t *testing.T) analytic.Expansion {
	t.Helper()

	return analytic.Expansion{
		F: func(x multilinear.Vec) (multilinear.Vec, error) {
			return multilinear.Vec{math.Exp(x[0])}, nil
		},
		Coeffs: coeffSeq(t, func(n int) float64 { return 1 / factorial(n) }),
		Center: multilinear.Vec{0},
		R:      series.InfRadius(),
	}
}
