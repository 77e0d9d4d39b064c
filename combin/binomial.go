package combin

// Binomial returns C(n, k) as a float64 via the multiplicative scheme,
// multiplying ratio factors in increasing order to keep intermediate values
// integral up to the float64 exact range.
//
// Contracts: n ≥ 0. Out-of-range k yields 0 (the combinatorial convention).
// Complexity: O(min(k, n−k)).
func Binomial(n, k int) float64 {
	if n < 0 || k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k // symmetry C(n,k) == C(n,n−k)
	}
	res := 1.0
	var i int
	for i = 1; i <= k; i++ {
		res = res * float64(n-k+i) / float64(i)
	}

	return res
}
