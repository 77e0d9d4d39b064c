package combin_test

import (
	"testing"

	"github.com/katalvlaran/powser/combin"
	"github.com/stretchr/testify/require"
)

// TestBijection_ForwardInverse sweeps every (k, l, s) with k+l ≤ 8 and checks
// Split(Merge(k,l,s)) round-trips exactly.
func TestBijection_ForwardInverse(t *testing.T) {
	const maxN = 8
	var k, l int
	for k = 0; k <= maxN; k++ {
		for l = 0; k+l <= maxN; l++ {
			subs, err := combin.OfSize(k+l, l)
			require.NoError(t, err)
			for _, s := range subs {
				pair, err := combin.Merge(k, l, s)
				require.NoError(t, err)
				require.Equal(t, k+l, pair.N)
				require.Equal(t, s, pair.Set)

				tri, err := combin.Split(pair)
				require.NoError(t, err)
				require.Equal(t, k, tri.K)
				require.Equal(t, l, tri.L)
				require.Equal(t, l, tri.Frozen.Size)
				require.Equal(t, s, tri.Frozen.Set)
			}
		}
	}
}

// TestBijection_InverseForward sweeps every flat pair (n, s) with n ≤ 8 and
// checks Merge(Split(n,s)) round-trips exactly.
func TestBijection_InverseForward(t *testing.T) {
	const maxN = 8
	var n int
	for n = 0; n <= maxN; n++ {
		subs, err := combin.All(n)
		require.NoError(t, err)
		for _, s := range subs {
			tri, err := combin.Split(combin.Pair{N: n, Set: s})
			require.NoError(t, err)

			pair, err := combin.Merge(tri.K, tri.L, tri.Frozen.Set)
			require.NoError(t, err)
			require.Equal(t, n, pair.N)
			require.Equal(t, s, pair.Set)
		}
	}
}

// TestBijection_CoversFlatSpace checks that Merge over all (k, l, s) with
// k+l == n hits every subset of Fin(n) exactly once — the bijection is onto
// with no collisions, which is what justifies flattening the double sum.
func TestBijection_CoversFlatSpace(t *testing.T) {
	const n = 7
	seen := make(map[combin.Subset]bool)

	var l int
	for l = 0; l <= n; l++ {
		subs, err := combin.OfSize(n, l)
		require.NoError(t, err)
		for _, s := range subs {
			pair, err := combin.Merge(n-l, l, s)
			require.NoError(t, err)
			require.False(t, seen[pair.Set], "duplicate image %b", pair.Set)
			seen[pair.Set] = true
		}
	}
	require.Len(t, seen, 1<<n)
}

func TestMerge_Rejects(t *testing.T) {
	_, err := combin.Merge(-1, 0, 0)
	require.ErrorIs(t, err, combin.ErrSizeOutOfRange)

	_, err = combin.Merge(0, -1, 0)
	require.ErrorIs(t, err, combin.ErrSizeOutOfRange)

	_, err = combin.Merge(32, 32, 0)
	require.ErrorIs(t, err, combin.ErrGroundTooLarge)

	// Cardinality must match l.
	_, err = combin.Merge(2, 1, combin.Subset(0b011))
	require.ErrorIs(t, err, combin.ErrCardMismatch)
}

func TestSplit_Rejects(t *testing.T) {
	_, err := combin.Split(combin.Pair{N: 64, Set: 0})
	require.ErrorIs(t, err, combin.ErrGroundTooLarge)

	_, err = combin.Split(combin.Pair{N: 2, Set: combin.Subset(0b100)})
	require.ErrorIs(t, err, combin.ErrNotSubset)
}
