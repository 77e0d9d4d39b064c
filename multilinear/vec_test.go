// Package multilinear_test exercises the vector helpers and map
// implementations via the public API.
package multilinear_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/powser/multilinear"
	"github.com/stretchr/testify/require"
)

func TestVec_AddSubScale(t *testing.T) {
	a := multilinear.Vec{1, 2, 3}
	b := multilinear.Vec{4, -1, 0.5}

	sum, err := multilinear.Add(a, b)
	require.NoError(t, err)
	require.Equal(t, multilinear.Vec{5, 1, 3.5}, sum)

	diff, err := multilinear.Sub(a, b)
	require.NoError(t, err)
	require.Equal(t, multilinear.Vec{-3, 3, 2.5}, diff)

	require.Equal(t, multilinear.Vec{2, 4, 6}, multilinear.Scale(2, a))

	// Operands untouched.
	require.Equal(t, multilinear.Vec{1, 2, 3}, a)
	require.Equal(t, multilinear.Vec{4, -1, 0.5}, b)
}

func TestVec_DimensionMismatch(t *testing.T) {
	_, err := multilinear.Add(multilinear.Vec{1}, multilinear.Vec{1, 2})
	require.ErrorIs(t, err, multilinear.ErrDimensionMismatch)

	_, err = multilinear.Sub(multilinear.Vec{1, 2, 3}, multilinear.Vec{1})
	require.ErrorIs(t, err, multilinear.ErrDimensionMismatch)

	err = multilinear.Accumulate(multilinear.Vec{1, 2}, multilinear.Vec{1})
	require.ErrorIs(t, err, multilinear.ErrDimensionMismatch)
}

func TestVec_Accumulate(t *testing.T) {
	dst := multilinear.Zero(3)
	require.NoError(t, multilinear.Accumulate(dst, multilinear.Vec{1, 1, 1}))
	require.NoError(t, multilinear.Accumulate(dst, multilinear.Vec{0.5, -1, 2}))
	require.Equal(t, multilinear.Vec{1.5, 0, 3}, dst)
}

func TestVec_Norm(t *testing.T) {
	require.Equal(t, 5.0, multilinear.Norm(multilinear.Vec{3, 4}))
	require.Equal(t, 0.0, multilinear.Norm(multilinear.Zero(4)))
	require.InDelta(t, math.Sqrt(3), multilinear.Norm(multilinear.Vec{1, 1, 1}), 1e-12)
}

func TestVec_EqualAndFinite(t *testing.T) {
	require.True(t, multilinear.Equal(multilinear.Vec{1, 2}, multilinear.Vec{1 + 1e-12, 2}, 1e-9))
	require.False(t, multilinear.Equal(multilinear.Vec{1, 2}, multilinear.Vec{1.1, 2}, 1e-9))
	require.False(t, multilinear.Equal(multilinear.Vec{1}, multilinear.Vec{1, 0}, 1e-9))

	require.True(t, multilinear.IsFinite(multilinear.Vec{1, -2, 0}))
	require.False(t, multilinear.IsFinite(multilinear.Vec{1, math.NaN()}))
	require.False(t, multilinear.IsFinite(multilinear.Vec{math.Inf(1)}))
}

func TestVec_CloneIsDeep(t *testing.T) {
	a := multilinear.Vec{1, 2}
	b := multilinear.Clone(a)
	b[0] = 99
	require.Equal(t, multilinear.Vec{1, 2}, a)
}
