// Package shift_test shared fixtures: the classical scalar coefficient
// families re-centering is usually demonstrated on, built from exact
// Monomial maps.
package shift_test

import (
	"testing"

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

// geomSeq is the geometric family pₙ = vⁿ; radius 1, sum 1/(1−v).
func geomSeq(t *testing.T) series.Sequence {
	return coeffSeq(t, func(int) float64 { return 1 })
}

// expSeq is the exponential family pₙ = vⁿ/n!; sum eᵛ.
func expSeq(t *testing.T) series.Sequence {
	return coeffSeq(t, func(n int) float64 { return 1 / factorial(n) })
}

// quadPoly is the finite-support sequence of c + b·v + a·v².
func quadPoly(t *testing.T, a, b, c float64) series.Sequence {
	t.Helper()
	p0, err := multilinear.NewConstant(1, multilinear.Vec{c})
	require.NoError(t, err)
	p1, err := multilinear.NewMonomial(1, b)
	require.NoError(t, err)
	p2, err := multilinear.NewMonomial(2, a)
	require.NoError(t, err)
	s, err := series.NewPolynomial(1, 1, p0, p1, p2)
	require.NoError(t, err)

	return s
}

// scalar wraps a float64 as a 1-dimensional vector.
func scalar(x float64) multilinear.Vec {
	return multilinear.Vec{x}
}
