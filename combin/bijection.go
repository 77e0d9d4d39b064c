package combin

// This file implements the sigma bijection between the two index spaces of the
// change-of-origin double sum:
//
//	Σ_k Σ_l Σ_{s ⊆ Fin(k+l), |s|=l}   ≃   Σ_n Σ_{s ⊆ Fin(n)}
//
// Forward sends (k, l, s) to (k+l, s); the inverse recovers l as |s| and k as
// n − |s|. Re-indexing a double sum through this bijection is what legitimizes
// flattening the nested summation once absolute summability is established.

// Pair is a point of the flat index space: a ground-set width n together with
// an arbitrary subset of {0,…,n−1}.
type Pair struct {
	N   int
	Set Subset
}

// Triple is a point of the nested index space: k free positions, l frozen
// positions, and the size-l subset of {0,…,k+l−1} choosing which positions
// are frozen.
type Triple struct {
	K      int
	L      int
	Frozen Sized
}

// Merge maps (k, l, s) to the flat pair (k+l, s).
// Stage 1 (Validate): k, l ≥ 0, k+l ≤ MaxGround, s a valid size-l subset.
// Stage 2 (Finalize): return the pair.
// Errors: ErrSizeOutOfRange, ErrGroundTooLarge, ErrNotSubset, ErrCardMismatch.
func Merge(k, l int, s Subset) (Pair, error) {
	if k < 0 || l < 0 {
		return Pair{}, ErrSizeOutOfRange
	}
	if k+l > MaxGround {
		return Pair{}, ErrGroundTooLarge
	}
	sized, err := NewSized(k+l, l, s)
	if err != nil {
		return Pair{}, err
	}

	return Pair{N: k + l, Set: sized.Set}, nil
}

// Split maps the flat pair (n, s) back to (n−|s|, |s|, s).
// Errors: ErrGroundTooLarge, ErrNotSubset.
func Split(p Pair) (Triple, error) {
	if p.N < 0 || p.N > MaxGround {
		return Triple{}, ErrGroundTooLarge
	}
	if !p.Set.Within(p.N) {
		return Triple{}, ErrNotSubset
	}
	l := p.Set.Card()

	return Triple{
		K:      p.N - l,
		L:      l,
		Frozen: Sized{Size: l, Set: p.Set},
	}, nil
}
