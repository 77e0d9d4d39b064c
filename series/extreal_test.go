package series_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/powser/series"
	"github.com/stretchr/testify/require"
)

func TestRadius_FiniteConstruction(t *testing.T) {
	r, err := series.FiniteRadius(2.5)
	require.NoError(t, err)
	require.False(t, r.IsInf())
	require.Equal(t, 2.5, r.Float())

	zero, err := series.FiniteRadius(0)
	require.NoError(t, err)
	require.True(t, zero.IsZero())

	_, err = series.FiniteRadius(-1)
	require.ErrorIs(t, err, series.ErrNegativeRadius)
	_, err = series.FiniteRadius(math.NaN())
	require.ErrorIs(t, err, series.ErrNaNInf)
	_, err = series.FiniteRadius(math.Inf(1))
	require.ErrorIs(t, err, series.ErrNaNInf)
}

func TestRadius_Ordering(t *testing.T) {
	one, err := series.FiniteRadius(1)
	require.NoError(t, err)
	two, err := series.FiniteRadius(2)
	require.NoError(t, err)
	inf := series.InfRadius()

	require.True(t, one.Less(two))
	require.False(t, two.Less(one))
	require.True(t, one.Less(inf))
	require.False(t, inf.Less(one))
	require.False(t, inf.Less(inf))
	require.True(t, inf.LessEq(inf))

	require.Equal(t, one, series.MinRadius(one, two))
	require.Equal(t, one, series.MinRadius(inf, one))
	require.True(t, series.MinRadius(inf, inf).IsInf())
}

func TestRadius_GreaterThan(t *testing.T) {
	r, err := series.FiniteRadius(1)
	require.NoError(t, err)
	require.True(t, r.GreaterThan(0.999))
	require.False(t, r.GreaterThan(1)) // boundary is outside the open disk
	require.False(t, r.GreaterThan(2))
	require.False(t, r.GreaterThan(math.NaN()))

	inf := series.InfRadius()
	require.True(t, inf.GreaterThan(1e300))
	require.False(t, inf.GreaterThan(math.Inf(1)))
}

func TestRadius_SubSat(t *testing.T) {
	three, err := series.FiniteRadius(3)
	require.NoError(t, err)

	got, err := three.SubSat(1)
	require.NoError(t, err)
	require.Equal(t, 2.0, got.Float())

	// Saturates at zero.
	got, err = three.SubSat(5)
	require.NoError(t, err)
	require.True(t, got.IsZero())

	// ∞ − finite = ∞.
	got, err = series.InfRadius().SubSat(1e12)
	require.NoError(t, err)
	require.True(t, got.IsInf())

	_, err = three.SubSat(-1)
	require.ErrorIs(t, err, series.ErrNegativeRadius)
	_, err = three.SubSat(math.Inf(1))
	require.ErrorIs(t, err, series.ErrNaNInf)
}

func TestRadius_String(t *testing.T) {
	r, err := series.FiniteRadius(0.5)
	require.NoError(t, err)
	require.Equal(t, "0.5", r.String())
	require.Equal(t, "∞", series.InfRadius().String())
}
