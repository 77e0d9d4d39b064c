package combin

// All enumerates every subset of the ground set {0,…,n−1} in increasing mask
// order (∅ first, full set last). The order is deterministic and identical
// across runs, which keeps chunked parallel reductions reproducible.
//
// Contracts: 0 ≤ n ≤ MaxGround.
// Complexity: O(2ⁿ) time and memory.
func All(n int) ([]Subset, error) {
	if n < 0 || n > MaxGround {
		return nil, ErrGroundTooLarge
	}
	out := make([]Subset, 1<<uint(n))
	var m Subset
	for m = 0; int(m) < len(out); m++ {
		out[m] = m
	}

	return out, nil
}

// OfSize enumerates the subsets of {0,…,n−1} with exactly l members, in
// increasing mask order, via Gosper's hack (next bit-permutation of the same
// popcount).
//
// Contracts: 0 ≤ n ≤ MaxGround, 0 ≤ l ≤ n.
// Complexity: O(C(n,l)) emitted masks, O(1) per step.
func OfSize(n, l int) ([]Subset, error) {
	if n < 0 || n > MaxGround {
		return nil, ErrGroundTooLarge
	}
	if l < 0 || l > n {
		return nil, ErrSizeOutOfRange
	}
	if l == 0 {
		// The empty subset is the unique size-0 subset, even for n == 0.
		return []Subset{0}, nil
	}

	limit := uint64(1) << uint(n)
	out := make([]Subset, 0)
	v := uint64(1)<<uint(l) - 1 // smallest mask with l bits set
	for v < limit {
		out = append(out, Subset(v))
		// Gosper's hack: next larger integer with the same popcount.
		c := v & (^v + 1)
		r := v + c
		v = (((r ^ v) >> 2) / c) | r
	}

	return out, nil
}

// SizedOfSize enumerates OfSize(n, l) wrapped as validated Sized pairs.
// Complexity: O(C(n,l)).
func SizedOfSize(n, l int) ([]Sized, error) {
	masks, err := OfSize(n, l)
	if err != nil {
		return nil, err
	}
	out := make([]Sized, len(masks))
	var i int
	for i = range masks {
		// Masks produced by OfSize satisfy the invariant by construction.
		out[i] = Sized{Size: l, Set: masks[i]}
	}

	return out, nil
}
