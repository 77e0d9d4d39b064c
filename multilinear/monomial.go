package multilinear

import "math"

// Monomial is the scalar n-linear map ℝ^n → ℝ given by c·v₁⋯vₙ.
// Its operator norm is exactly |c|, and currying stays inside the family:
// freezing positions at values y multiplies the coefficient by ∏yᵢ. That
// exactness makes Monomial the reference family for radius and shift tests
// (geometric coefficients, exponential coefficients 1/n!).
type Monomial struct {
	n     int
	coeff float64
}

// NewMonomial builds the arity-n monomial with coefficient c.
// Errors: ErrBadShape (n < 0), ErrNaNInf (non-finite c).
func NewMonomial(n int, c float64) (Monomial, error) {
	if n < 0 {
		return Monomial{}, ErrBadShape
	}
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return Monomial{}, ErrNaNInf
	}

	return Monomial{n: n, coeff: c}, nil
}

// Arity returns n.
func (m Monomial) Arity() int { return m.n }

// InDim returns 1 (scalar arguments).
func (m Monomial) InDim() int { return 1 }

// OutDim returns 1 (scalar values).
func (m Monomial) OutDim() int { return 1 }

// Coeff returns the coefficient c.
func (m Monomial) Coeff() float64 { return m.coeff }

// Norm returns |c| — exact, since sup over unit scalars of |c·v₁⋯vₙ| is |c|.
func (m Monomial) Norm() float64 { return math.Abs(m.coeff) }

// Apply evaluates c·v₁⋯vₙ.
// Complexity: O(n).
func (m Monomial) Apply(args ...Vec) (Vec, error) {
	if err := checkArgs(m.n, 1, args); err != nil {
		return nil, err
	}
	prod := m.coeff
	for _, v := range args {
		prod *= v[0]
	}

	return Vec{prod}, nil
}

// Curry folds the frozen scalars into the coefficient and drops arity,
// returning another Monomial. Positions must be distinct and in range;
// which positions are frozen is immaterial for a symmetric product.
// Errors: ErrBadPosition, ErrDimensionMismatch, ErrNaNInf.
func (m Monomial) Curry(positions []int, values []Vec) (Map, error) {
	if len(positions) != len(values) {
		return nil, ErrBadPosition
	}
	seen := make(map[int]bool, len(positions))
	c := m.coeff
	var i int
	for i = range positions {
		if positions[i] < 0 || positions[i] >= m.n || seen[positions[i]] {
			return nil, ErrBadPosition
		}
		seen[positions[i]] = true
		if len(values[i]) != 1 {
			return nil, ErrDimensionMismatch
		}
		if !IsFinite(values[i]) {
			return nil, ErrNaNInf
		}
		c *= values[i][0]
	}

	return NewMonomial(m.n-len(positions), c)
}

// Constant is a 0-ary map holding a fixed target vector — the shape of the
// p₀ coefficient, whose value a ball contract pins to f(center).
type Constant struct {
	inDim int
	val   Vec
}

// NewConstant builds a 0-ary map over ℝ^inDim with value v.
// Errors: ErrBadShape, ErrDimensionMismatch (empty v), ErrNaNInf.
func NewConstant(inDim int, v Vec) (Constant, error) {
	if inDim <= 0 {
		return Constant{}, ErrBadShape
	}
	if len(v) == 0 {
		return Constant{}, ErrDimensionMismatch
	}
	if !IsFinite(v) {
		return Constant{}, ErrNaNInf
	}

	return Constant{inDim: inDim, val: Clone(v)}, nil
}

// Arity returns 0.
func (c Constant) Arity() int { return 0 }

// InDim returns the declared argument dimension.
func (c Constant) InDim() int { return c.inDim }

// OutDim returns the value dimension.
func (c Constant) OutDim() int { return len(c.val) }

// Norm returns ‖value‖ — exact for a 0-ary map.
func (c Constant) Norm() float64 { return Norm(c.val) }

// Apply returns a copy of the held value; it accepts no arguments.
func (c Constant) Apply(args ...Vec) (Vec, error) {
	if len(args) != 0 {
		return nil, ErrArityMismatch
	}

	return Clone(c.val), nil
}

// Curry with an empty selection returns the map itself; any non-empty
// selection is out of range for a 0-ary map.
func (c Constant) Curry(positions []int, values []Vec) (Map, error) {
	if len(positions) != 0 || len(values) != 0 {
		return nil, ErrBadPosition
	}

	return c, nil
}
