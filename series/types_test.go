package series_test

import (
	"testing"

	"github.com/katalvlaran/powser/multilinear"
	"github.com/katalvlaran/powser/series"
	"github.com/stretchr/testify/require"
)

func TestNew_Rejects(t *testing.T) {
	_, err := series.New(1, 1, nil)
	require.ErrorIs(t, err, series.ErrNilSequence)

	_, err = series.New(0, 1, func(int) (multilinear.Map, error) { return nil, nil })
	require.ErrorIs(t, err, series.ErrBadShape)

	_, err = series.New(1, -2, func(int) (multilinear.Map, error) { return nil, nil })
	require.ErrorIs(t, err, series.ErrBadShape)
}

func TestSequence_NegativeIndex(t *testing.T) {
	p := geomSeq(t)
	_, err := p.At(-1)
	require.ErrorIs(t, err, series.ErrNegativeIndex)

	q := constPoly(t, scalar(1))
	_, err = q.At(-3)
	require.ErrorIs(t, err, series.ErrNegativeIndex)
}

func TestNewPolynomial_ZeroPadding(t *testing.T) {
	c, err := multilinear.NewConstant(1, scalar(5))
	require.NoError(t, err)
	lin, err := multilinear.NewMonomial(1, 2)
	require.NoError(t, err)

	// p(v) = 5 + 2v, with a nil hole standing for the zero quadratic term.
	p, err := series.NewPolynomial(1, 1, c, lin, nil)
	require.NoError(t, err)

	m, err := p.At(2)
	require.NoError(t, err)
	require.Equal(t, 2, m.Arity())
	require.Equal(t, 0.0, m.Norm())

	// Degrees past the support are zero maps of matching arity.
	m, err = p.At(9)
	require.NoError(t, err)
	require.Equal(t, 9, m.Arity())
	require.Equal(t, 0.0, m.Norm())

	v, err := series.Sum(p, scalar(3))
	require.NoError(t, err)
	require.InDelta(t, 11.0, v[0], 1e-12)
}

func TestNewPolynomial_RejectsArityDrift(t *testing.T) {
	lin, err := multilinear.NewMonomial(1, 2)
	require.NoError(t, err)

	// A degree-0 slot holding an arity-1 map is malformed.
	_, err = series.NewPolynomial(1, 1, lin)
	require.ErrorIs(t, err, series.ErrMalformedSequence)

	_, err = series.NewPolynomial(0, 1)
	require.ErrorIs(t, err, series.ErrBadShape)
}

// TestSequence_MalformedGeneratorSurfaces: a generator whose arity drifts from
// the degree index is caught at the point of use, not silently summed.
func TestSequence_MalformedGeneratorSurfaces(t *testing.T) {
	bad, err := series.New(1, 1, func(n int) (multilinear.Map, error) {
		m, err := multilinear.NewMonomial(n+1, 1) // arity off by one
		if err != nil {
			return nil, err
		}

		return m, nil
	})
	require.NoError(t, err)

	_, err = series.PartialSum(bad, 3, scalar(0.5))
	require.ErrorIs(t, err, series.ErrMalformedSequence)
}
