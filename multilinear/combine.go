package multilinear

import "math"

// This file holds the Map combinators: zero, sum, scalar multiple, negation
// and argument relabeling. Each combinator preserves the Map contracts, and
// each documents how its norm bound is derived from its operands.

// zeroMap is the zero n-linear map of a fixed signature.
type zeroMap struct {
	arity, inDim, outDim int
}

// NewZero returns the zero map of the given signature. Sequences with finite
// support report it for every degree past their last coefficient.
// Errors: ErrBadShape.
func NewZero(arity, inDim, outDim int) (Map, error) {
	if arity < 0 || inDim <= 0 || outDim <= 0 {
		return nil, ErrBadShape
	}

	return zeroMap{arity: arity, inDim: inDim, outDim: outDim}, nil
}

func (z zeroMap) Arity() int    { return z.arity }
func (z zeroMap) InDim() int    { return z.inDim }
func (z zeroMap) OutDim() int   { return z.outDim }
func (z zeroMap) Norm() float64 { return 0 }

func (z zeroMap) Apply(args ...Vec) (Vec, error) {
	if err := checkArgs(z.arity, z.inDim, args); err != nil {
		return nil, err
	}

	return Zero(z.outDim), nil
}

func (z zeroMap) Curry(positions []int, values []Vec) (Map, error) {
	// Validate the selection through the generic wrapper, then collapse back
	// to a plain zero map of the reduced arity.
	if _, err := NewCurried(z, positions, values); err != nil {
		return nil, err
	}

	return NewZero(z.arity-len(positions), z.inDim, z.outDim)
}

// sumMap is the coefficient-wise sum of two maps of identical signature.
// Norm bound: ‖a+b‖ ≤ ‖a‖+‖b‖ (triangle inequality on operator norms) —
// exactly the inequality behind radius(p+q) ≥ min(radius(p), radius(q)).
type sumMap struct {
	a, b Map
}

// NewSum builds a+b.
// Errors: ErrNilMap, ErrArityMismatch, ErrDimensionMismatch.
func NewSum(a, b Map) (Map, error) {
	if a == nil || b == nil {
		return nil, ErrNilMap
	}
	if a.Arity() != b.Arity() {
		return nil, ErrArityMismatch
	}
	if a.InDim() != b.InDim() || a.OutDim() != b.OutDim() {
		return nil, ErrDimensionMismatch
	}

	return sumMap{a: a, b: b}, nil
}

func (s sumMap) Arity() int    { return s.a.Arity() }
func (s sumMap) InDim() int    { return s.a.InDim() }
func (s sumMap) OutDim() int   { return s.a.OutDim() }
func (s sumMap) Norm() float64 { return s.a.Norm() + s.b.Norm() }

func (s sumMap) Apply(args ...Vec) (Vec, error) {
	va, err := s.a.Apply(args...)
	if err != nil {
		return nil, err
	}
	vb, err := s.b.Apply(args...)
	if err != nil {
		return nil, err
	}

	return Add(va, vb)
}

// Curry distributes over the sum: (a+b)|_s = a|_s + b|_s.
func (s sumMap) Curry(positions []int, values []Vec) (Map, error) {
	ca, err := s.a.Curry(positions, values)
	if err != nil {
		return nil, err
	}
	cb, err := s.b.Curry(positions, values)
	if err != nil {
		return nil, err
	}

	return NewSum(ca, cb)
}

// scaledMap is c·m. Norm bound: |c|·‖m‖.
type scaledMap struct {
	c float64
	m Map
}

// NewScaled builds c·m.
// Errors: ErrNilMap, ErrNaNInf.
func NewScaled(c float64, m Map) (Map, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return nil, ErrNaNInf
	}

	return scaledMap{c: c, m: m}, nil
}

// NewNeg builds −m.
func NewNeg(m Map) (Map, error) {
	return NewScaled(-1, m)
}

func (s scaledMap) Arity() int    { return s.m.Arity() }
func (s scaledMap) InDim() int    { return s.m.InDim() }
func (s scaledMap) OutDim() int   { return s.m.OutDim() }
func (s scaledMap) Norm() float64 { return math.Abs(s.c) * s.m.Norm() }

func (s scaledMap) Apply(args ...Vec) (Vec, error) {
	v, err := s.m.Apply(args...)
	if err != nil {
		return nil, err
	}

	return Scale(s.c, v), nil
}

func (s scaledMap) Curry(positions []int, values []Vec) (Map, error) {
	cm, err := s.m.Curry(positions, values)
	if err != nil {
		return nil, err
	}

	return NewScaled(s.c, cm)
}

// relabeled reindexes arguments along a permutation: argument j of the
// relabeled map feeds position perm[j] of the base. This is the
// "composition along an index-relabeling bijection" surface the engine
// consumes; operator norms are invariant under relabeling.
type relabeled struct {
	m    Map
	perm []int
}

// NewRelabel builds the relabeled map. perm must be a permutation of
// {0,…,arity−1}.
// Errors: ErrNilMap, ErrBadPosition.
func NewRelabel(m Map, perm []int) (Map, error) {
	if m == nil {
		return nil, ErrNilMap
	}
	if len(perm) != m.Arity() {
		return nil, ErrBadPosition
	}
	seen := make([]bool, len(perm))
	var i int
	for i = range perm {
		if perm[i] < 0 || perm[i] >= len(perm) || seen[perm[i]] {
			return nil, ErrBadPosition
		}
		seen[perm[i]] = true
	}
	cp := make([]int, len(perm))
	copy(cp, perm)

	return relabeled{m: m, perm: cp}, nil
}

func (r relabeled) Arity() int    { return r.m.Arity() }
func (r relabeled) InDim() int    { return r.m.InDim() }
func (r relabeled) OutDim() int   { return r.m.OutDim() }
func (r relabeled) Norm() float64 { return r.m.Norm() }

func (r relabeled) Apply(args ...Vec) (Vec, error) {
	if err := checkArgs(r.Arity(), r.InDim(), args); err != nil {
		return nil, err
	}
	base := make([]Vec, len(args))
	var j int
	for j = range args {
		base[r.perm[j]] = args[j]
	}

	return r.m.Apply(base...)
}

func (r relabeled) Curry(positions []int, values []Vec) (Map, error) {
	return NewCurried(r, positions, values)
}
