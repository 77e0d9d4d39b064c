package multilinear

import "sort"

// curried is the generic Curry implementation: it wraps any base Map, records
// which base positions are frozen and at what values, and exposes the induced
// map on the free positions. Concrete types whose curried form has no closed
// shape (Dense, relabeled, curried itself) delegate here.
type curried struct {
	base Map
	pos  []int // frozen base positions, strictly ascending
	vals []Vec // vals[i] frozen at base position pos[i]
	free []int // remaining base positions, ascending; len == Arity()

	bound float64 // base.Norm()·∏‖vals‖, cached at construction
}

// NewCurried validates and builds the generic curried form of base.
// Stage 1 (Validate): base non-nil, positions distinct and in range, values
// finite with matching dimension.
// Stage 2 (Prepare): sort (position, value) pairs, derive the free-position
// table, cache the norm bound.
// Stage 3 (Finalize): return the wrapper.
// Errors: ErrNilMap, ErrBadPosition, ErrDimensionMismatch, ErrNaNInf.
// Complexity: O(a log a) for a = base.Arity().
func NewCurried(base Map, positions []int, values []Vec) (Map, error) {
	if base == nil {
		return nil, ErrNilMap
	}
	if len(positions) != len(values) {
		return nil, ErrBadPosition
	}
	arity := base.Arity()

	// Copy and co-sort by position so the wrapper owns its index tables.
	pos := make([]int, len(positions))
	copy(pos, positions)
	vals := make([]Vec, len(values))
	var i int
	for i = range values {
		if len(values[i]) != base.InDim() {
			return nil, ErrDimensionMismatch
		}
		if !IsFinite(values[i]) {
			return nil, ErrNaNInf
		}
		vals[i] = Clone(values[i])
	}
	sort.Sort(&posVals{pos: pos, vals: vals})

	// Range and distinctness checks on the sorted table.
	taken := make([]bool, arity)
	for i = range pos {
		if pos[i] < 0 || pos[i] >= arity || taken[pos[i]] {
			return nil, ErrBadPosition
		}
		taken[pos[i]] = true
	}

	// Free positions in original order.
	free := make([]int, 0, arity-len(pos))
	for i = 0; i < arity; i++ {
		if !taken[i] {
			free = append(free, i)
		}
	}

	bound := base.Norm()
	for i = range vals {
		bound *= Norm(vals[i])
	}

	return &curried{base: base, pos: pos, vals: vals, free: free, bound: bound}, nil
}

// posVals co-sorts frozen positions with their values.
type posVals struct {
	pos  []int
	vals []Vec
}

func (p *posVals) Len() int           { return len(p.pos) }
func (p *posVals) Less(i, j int) bool { return p.pos[i] < p.pos[j] }
func (p *posVals) Swap(i, j int) {
	p.pos[i], p.pos[j] = p.pos[j], p.pos[i]
	p.vals[i], p.vals[j] = p.vals[j], p.vals[i]
}

// Arity returns the number of free positions.
func (c *curried) Arity() int { return len(c.free) }

// InDim returns the argument dimension of the base map.
func (c *curried) InDim() int { return c.base.InDim() }

// OutDim returns the target dimension of the base map.
func (c *curried) OutDim() int { return c.base.OutDim() }

// Norm returns the cached sub-multiplicative bound base.Norm()·∏‖vals‖.
func (c *curried) Norm() float64 { return c.bound }

// Apply interleaves the free arguments with the frozen values into a full
// argument list for the base map.
// Complexity: O(arity) interleave + base Apply cost.
func (c *curried) Apply(args ...Vec) (Vec, error) {
	if err := checkArgs(c.Arity(), c.InDim(), args); err != nil {
		return nil, err
	}
	full := make([]Vec, c.base.Arity())
	var i int
	for i = range c.pos {
		full[c.pos[i]] = c.vals[i]
	}
	for i = range c.free {
		full[c.free[i]] = args[i]
	}

	return c.base.Apply(full...)
}

// Curry on an already-curried map folds the new frozen positions back onto
// base positions, so stacked currying stays a single wrapper deep.
func (c *curried) Curry(positions []int, values []Vec) (Map, error) {
	merged := make([]int, 0, len(c.pos)+len(positions))
	mvals := make([]Vec, 0, len(c.vals)+len(values))
	merged = append(merged, c.pos...)
	mvals = append(mvals, c.vals...)
	var i int
	for i = range positions {
		// Translate a free-slot index into the base position it stands for.
		if positions[i] < 0 || positions[i] >= len(c.free) {
			return nil, ErrBadPosition
		}
		merged = append(merged, c.free[positions[i]])
		if i >= len(values) {
			return nil, ErrBadPosition
		}
		mvals = append(mvals, values[i])
	}
	if len(positions) != len(values) {
		return nil, ErrBadPosition
	}

	return NewCurried(c.base, merged, mvals)
}
