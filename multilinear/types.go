package multilinear

// Map is an n-linear function (ℝ^InDim)^Arity → ℝ^OutDim with a computable
// operator-norm bound.
//
// Contracts every implementation must honor:
//   - Apply(v₁,…,vₙ) is linear in each argument separately;
//   - ‖Apply(v₁,…,vₙ)‖ ≤ Norm()·∏‖vᵢ‖ (Norm is a finite upper bound);
//   - Curry(positions, values) freezes the listed argument positions at the
//     given vectors; the result has arity Arity()−len(positions) and a norm
//     bound ≤ Norm()·∏‖values‖ (sub-multiplicativity of currying);
//   - values are never mutated; Maps are immutable once constructed.
type Map interface {
	// Arity returns the number of arguments n (0 for constants).
	Arity() int

	// InDim returns the dimension of the argument space E.
	InDim() int

	// OutDim returns the dimension of the target space F.
	OutDim() int

	// Apply evaluates the map at the given arguments.
	// Errors: ErrArityMismatch, ErrDimensionMismatch.
	Apply(args ...Vec) (Vec, error)

	// Norm returns a finite upper bound on the operator norm.
	Norm() float64

	// Curry freezes the listed argument positions (distinct, each in
	// [0,Arity())) at the corresponding values, returning the induced map on
	// the remaining positions in their original order.
	// Errors: ErrBadPosition, ErrDimensionMismatch, ErrNaNInf.
	Curry(positions []int, values []Vec) (Map, error)
}

// checkArgs validates an Apply argument list against a map signature.
// Shared by all implementations; O(arity·inDim).
func checkArgs(arity, inDim int, args []Vec) error {
	if len(args) != arity {
		return ErrArityMismatch
	}
	var i int
	for i = range args {
		if len(args[i]) != inDim {
			return ErrDimensionMismatch
		}
	}

	return nil
}
