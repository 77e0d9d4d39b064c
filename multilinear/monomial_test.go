package multilinear_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/powser/multilinear"
	"github.com/stretchr/testify/require"
)

func TestMonomial_Apply(t *testing.T) {
	m, err := multilinear.NewMonomial(3, 2)
	require.NoError(t, err)
	require.Equal(t, 3, m.Arity())
	require.Equal(t, 1, m.InDim())
	require.Equal(t, 1, m.OutDim())

	v, err := m.Apply(multilinear.Vec{2}, multilinear.Vec{3}, multilinear.Vec{0.5})
	require.NoError(t, err)
	require.Equal(t, multilinear.Vec{6}, v) // 2·2·3·0.5
}

func TestMonomial_NormExact(t *testing.T) {
	m, err := multilinear.NewMonomial(4, -1.5)
	require.NoError(t, err)
	require.Equal(t, 1.5, m.Norm())
}

func TestMonomial_ZeroArity(t *testing.T) {
	m, err := multilinear.NewMonomial(0, 7)
	require.NoError(t, err)
	v, err := m.Apply()
	require.NoError(t, err)
	require.Equal(t, multilinear.Vec{7}, v)
}

func TestMonomial_Rejects(t *testing.T) {
	_, err := multilinear.NewMonomial(-1, 1)
	require.ErrorIs(t, err, multilinear.ErrBadShape)

	_, err = multilinear.NewMonomial(2, math.NaN())
	require.ErrorIs(t, err, multilinear.ErrNaNInf)

	m, err := multilinear.NewMonomial(2, 1)
	require.NoError(t, err)
	_, err = m.Apply(multilinear.Vec{1})
	require.ErrorIs(t, err, multilinear.ErrArityMismatch)
	_, err = m.Apply(multilinear.Vec{1}, multilinear.Vec{1, 2})
	require.ErrorIs(t, err, multilinear.ErrDimensionMismatch)
}

func TestMonomial_CurryStaysExact(t *testing.T) {
	m, err := multilinear.NewMonomial(3, 4)
	require.NoError(t, err)

	// Freeze positions 0 and 2 at 0.5 each: coefficient becomes 4·0.5·0.5 = 1.
	c, err := m.Curry([]int{0, 2}, []multilinear.Vec{{0.5}, {0.5}})
	require.NoError(t, err)
	require.Equal(t, 1, c.Arity())
	require.Equal(t, 1.0, c.Norm())

	v, err := c.Apply(multilinear.Vec{3})
	require.NoError(t, err)
	require.Equal(t, multilinear.Vec{3}, v)

	// Sub-multiplicativity is equality for monomials.
	require.Equal(t, m.Norm()*0.5*0.5, c.Norm())
}

func TestMonomial_CurryRejects(t *testing.T) {
	m, err := multilinear.NewMonomial(2, 1)
	require.NoError(t, err)

	_, err = m.Curry([]int{0, 0}, []multilinear.Vec{{1}, {1}})
	require.ErrorIs(t, err, multilinear.ErrBadPosition)

	_, err = m.Curry([]int{5}, []multilinear.Vec{{1}})
	require.ErrorIs(t, err, multilinear.ErrBadPosition)

	_, err = m.Curry([]int{0}, []multilinear.Vec{{1, 2}})
	require.ErrorIs(t, err, multilinear.ErrDimensionMismatch)
}

func TestConstant_Basics(t *testing.T) {
	c, err := multilinear.NewConstant(3, multilinear.Vec{1, -2})
	require.NoError(t, err)
	require.Equal(t, 0, c.Arity())
	require.Equal(t, 3, c.InDim())
	require.Equal(t, 2, c.OutDim())
	require.InDelta(t, math.Sqrt(5), c.Norm(), 1e-12)

	v, err := c.Apply()
	require.NoError(t, err)
	require.Equal(t, multilinear.Vec{1, -2}, v)

	// Returned value is a copy: mutating it must not leak into the map.
	v[0] = 42
	v2, err := c.Apply()
	require.NoError(t, err)
	require.Equal(t, multilinear.Vec{1, -2}, v2)

	_, err = c.Apply(multilinear.Vec{1, 1, 1})
	require.ErrorIs(t, err, multilinear.ErrArityMismatch)

	_, err = c.Curry([]int{0}, []multilinear.Vec{{1, 1, 1}})
	require.ErrorIs(t, err, multilinear.ErrBadPosition)

	same, err := c.Curry(nil, nil)
	require.NoError(t, err)
	require.Equal(t, 0, same.Arity())
}
