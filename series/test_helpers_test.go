// Package series_test shared fixtures: classical one-variable coefficient
// families (geometric, exponential, polynomial) built on the exact Monomial
// maps, plus small numeric helpers.
package series_test

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

// geomSeq is the geometric family pₙ = vⁿ (all coefficients 1); radius 1,
// sum 1/(1−v).
func geomSeq(t *testing.T) series.Sequence {
	return coeffSeq(t, func(int) float64 { return 1 })
}

// scaledGeomSeq is pₙ = bⁿ·vⁿ; radius 1/b.
func scaledGeomSeq(t *testing.T, b float64) series.Sequence {
	return coeffSeq(t, func(n int) float64 {
		c := 1.0
		var i int
		for i = 0; i < n; i++ {
			c *= b
		}

		return c
	})
}

// expSeq is the exponential family pₙ = vⁿ/n!; infinite true radius.
func expSeq(t *testing.T) series.Sequence {
	return coeffSeq(t, func(n int) float64 { return 1 / factorial(n) })
}

// constPoly is the finite-support sequence with p₀ ≡ v and pₙ = 0 for n ≥ 1.
func constPoly(t *testing.T, v multilinear.Vec) series.Sequence {
	t.Helper()
	c, err := multilinear.NewConstant(len(v), v)
	require.NoError(t, err)
	s, err := series.NewPolynomial(len(v), len(v), c)
	require.NoError(t, err)

	return s
}

// scalar wraps a float64 as a 1-dimensional vector.
func scalar(x float64) multilinear.Vec {
	return multilinear.Vec{x}
}
