package multilinear

import "math"

// Dense is a tensor-backed n-linear map (ℝ^inDim)^arity → ℝ^outDim.
// Entries are stored in a flat row-major slice indexed [out][i₁]…[iₙ]
// (the last argument index varies fastest), so evaluation reduces to
// repeated contiguous contractions.
type Dense struct {
	arity  int
	inDim  int
	outDim int
	data   []float64 // length outDim·inDim^arity
}

// NewDense creates the zero tensor map of the given signature.
// Stage 1 (Validate): arity ≥ 0, dims > 0, total size within range.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrBadShape.
// Complexity: O(outDim·inDim^arity) memory.
func NewDense(arity, inDim, outDim int) (*Dense, error) {
	if arity < 0 || inDim <= 0 || outDim <= 0 {
		return nil, ErrBadShape
	}
	size := outDim
	var i int
	for i = 0; i < arity; i++ {
		if size > math.MaxInt32/inDim {
			return nil, ErrBadShape
		}
		size *= inDim
	}

	return &Dense{arity: arity, inDim: inDim, outDim: outDim, data: make([]float64, size)}, nil
}

// Arity returns the number of arguments.
func (d *Dense) Arity() int { return d.arity }

// InDim returns the argument dimension.
func (d *Dense) InDim() int { return d.inDim }

// OutDim returns the target dimension.
func (d *Dense) OutDim() int { return d.outDim }

// indexOf computes the flat offset for (out, idx) or reports ErrBadIndex.
// Complexity: O(arity).
func (d *Dense) indexOf(out int, idx []int) (int, error) {
	if out < 0 || out >= d.outDim || len(idx) != d.arity {
		return 0, ErrBadIndex
	}
	flat := out
	var j int
	for j = 0; j < d.arity; j++ {
		if idx[j] < 0 || idx[j] >= d.inDim {
			return 0, ErrBadIndex
		}
		flat = flat*d.inDim + idx[j]
	}

	return flat, nil
}

// At retrieves the tensor entry for output coordinate out and argument
// multi-index idx.
// Errors: ErrBadIndex.
func (d *Dense) At(out int, idx []int) (float64, error) {
	flat, err := d.indexOf(out, idx)
	if err != nil {
		return 0, err
	}

	return d.data[flat], nil
}

// Set assigns v to the tensor entry for (out, idx).
// Errors: ErrBadIndex, ErrNaNInf.
func (d *Dense) Set(out int, idx []int, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNaNInf
	}
	flat, err := d.indexOf(out, idx)
	if err != nil {
		return err
	}
	d.data[flat] = v

	return nil
}

// Clone returns a deep copy of the tensor map.
// Complexity: O(len(data)).
func (d *Dense) Clone() *Dense {
	cp := make([]float64, len(d.data))
	copy(cp, d.data)

	return &Dense{arity: d.arity, inDim: d.inDim, outDim: d.outDim, data: cp}
}

// Apply evaluates the map by contracting the tensor with the arguments from
// the last to the first: each pass folds blocks of inDim consecutive entries
// against one argument, shrinking the working slice by a factor of inDim.
// Complexity: O(outDim·inDim^arity) time, O(outDim·inDim^(arity−1)) scratch.
func (d *Dense) Apply(args ...Vec) (Vec, error) {
	if err := checkArgs(d.arity, d.inDim, args); err != nil {
		return nil, err
	}

	cur := d.data
	var a int
	for a = d.arity - 1; a >= 0; a-- {
		v := args[a]
		next := make([]float64, len(cur)/d.inDim)
		var i, j int
		for i = range next {
			var s float64
			base := i * d.inDim
			for j = 0; j < d.inDim; j++ {
				s += cur[base+j] * v[j]
			}
			next[i] = s
		}
		cur = next
	}

	out := make(Vec, d.outDim)
	copy(out, cur)

	return out, nil
}

// Norm returns a computable operator-norm envelope: the Euclidean norm of the
// per-output-row sums of absolute entries. For unit-norm arguments each output
// coordinate is bounded by its row sum, so the value bounds the true operator
// norm from above.
// Complexity: O(len(data)).
func (d *Dense) Norm() float64 {
	rowLen := len(d.data) / d.outDim
	var sq float64
	var o, i int
	for o = 0; o < d.outDim; o++ {
		var row float64
		base := o * rowLen
		for i = 0; i < rowLen; i++ {
			row += math.Abs(d.data[base+i])
		}
		sq += row * row
	}

	return math.Sqrt(sq)
}

// Curry delegates to the generic wrapper; a contracted Dense tensor would be
// tighter but is never needed by the engine's bound bookkeeping.
func (d *Dense) Curry(positions []int, values []Vec) (Map, error) {
	return NewCurried(d, positions, values)
}
