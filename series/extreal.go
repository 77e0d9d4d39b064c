package series

import (
	"math"
	"strconv"
)

// Radius is an extended non-negative real in [0, ∞], the value space of a
// radius of convergence. The infinite case is tagged explicitly — comparisons
// and saturating arithmetic never route through IEEE Inf, so NaN can never
// leak out of a radius computation.
type Radius struct {
	val float64
	inf bool
}

// FiniteRadius builds a finite radius.
// Errors: ErrNegativeRadius (v < 0), ErrNaNInf (NaN or ±Inf).
func FiniteRadius(v float64) (Radius, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Radius{}, ErrNaNInf
	}
	if v < 0 {
		return Radius{}, ErrNegativeRadius
	}

	return Radius{val: v}, nil
}

// InfRadius returns the infinite radius.
func InfRadius() Radius {
	return Radius{inf: true}
}

// IsInf reports whether r is infinite.
func (r Radius) IsInf() bool { return r.inf }

// IsZero reports whether r is exactly zero.
func (r Radius) IsZero() bool { return !r.inf && r.val == 0 }

// Float returns the radius as a float64, mapping the infinite case to
// math.Inf(1). Intended for display and final comparisons only; internal
// arithmetic stays on the tagged representation.
func (r Radius) Float() float64 {
	if r.inf {
		return math.Inf(1)
	}

	return r.val
}

// Less reports r < o in the extended order (∞ is the top element).
func (r Radius) Less(o Radius) bool {
	if r.inf {
		return false
	}
	if o.inf {
		return true
	}

	return r.val < o.val
}

// LessEq reports r ≤ o in the extended order.
func (r Radius) LessEq(o Radius) bool {
	return !o.Less(r)
}

// GreaterThan reports x < r for a plain finite x — "x lies strictly inside
// the disk". An infinite radius contains every finite x.
func (r Radius) GreaterThan(x float64) bool {
	if math.IsNaN(x) {
		return false
	}
	if r.inf {
		return !math.IsInf(x, 1)
	}

	return x < r.val
}

// MinRadius returns the smaller of a and b in the extended order.
func MinRadius(a, b Radius) Radius {
	if a.Less(b) {
		return a
	}

	return b
}

// SubSat subtracts a finite non-negative x with saturation: ∞ − x = ∞ and
// finite differences clamp at 0. This is the shifted-radius arithmetic
// radius(q) ≥ radius(p) ⊖ ‖y‖.
// Errors: ErrNaNInf, ErrNegativeRadius.
func (r Radius) SubSat(x float64) (Radius, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return Radius{}, ErrNaNInf
	}
	if x < 0 {
		return Radius{}, ErrNegativeRadius
	}
	if r.inf {
		return r, nil
	}
	d := r.val - x
	if d < 0 {
		d = 0
	}

	return Radius{val: d}, nil
}

// String implements fmt.Stringer: "∞" for the infinite radius, %g otherwise.
func (r Radius) String() string {
	if r.inf {
		return "∞"
	}

	return strconv.FormatFloat(r.val, 'g', -1, 64)
}
