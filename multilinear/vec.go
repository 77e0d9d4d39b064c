package multilinear

import "math"

// Vec is a point of ℝ^d. Helpers below are value-semantic: none mutates its
// operands except Accumulate, whose in-place contract is explicit.
type Vec []float64

// Zero returns the zero vector of the given dimension.
// Complexity: O(dim).
func Zero(dim int) Vec {
	return make(Vec, dim)
}

// Clone returns a deep copy of v.
func Clone(v Vec) Vec {
	out := make(Vec, len(v))
	copy(out, v)

	return out
}

// Add returns a+b.
// Errors: ErrDimensionMismatch.
func Add(a, b Vec) (Vec, error) {
	if len(a) != len(b) {
		return nil, ErrDimensionMismatch
	}
	out := make(Vec, len(a))
	var i int
	for i = range a {
		out[i] = a[i] + b[i]
	}

	return out, nil
}

// Sub returns a−b.
// Errors: ErrDimensionMismatch.
func Sub(a, b Vec) (Vec, error) {
	if len(a) != len(b) {
		return nil, ErrDimensionMismatch
	}
	out := make(Vec, len(a))
	var i int
	for i = range a {
		out[i] = a[i] - b[i]
	}

	return out, nil
}

// Scale returns c·v.
func Scale(c float64, v Vec) Vec {
	out := make(Vec, len(v))
	var i int
	for i = range v {
		out[i] = c * v[i]
	}

	return out
}

// Accumulate adds src into dst in place (dst += src). The single mutating
// helper, used by summation loops to avoid per-term allocation.
// Errors: ErrDimensionMismatch.
func Accumulate(dst, src Vec) error {
	if len(dst) != len(src) {
		return ErrDimensionMismatch
	}
	var i int
	for i = range src {
		dst[i] += src[i]
	}

	return nil
}

// Norm returns the Euclidean norm ‖v‖₂.
// Complexity: O(dim).
func Norm(v Vec) float64 {
	var sum float64
	for _, x := range v {
		sum += x * x
	}

	return math.Sqrt(sum)
}

// Equal reports whether a and b have the same dimension and agree
// coordinate-wise within eps.
func Equal(a, b Vec, eps float64) bool {
	if len(a) != len(b) {
		return false
	}
	var i int
	for i = range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}

	return true
}

// IsFinite reports whether every coordinate is finite (no NaN, no ±Inf).
func IsFinite(v Vec) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
