// Package multilinear: sentinel error set.
// Algorithms MUST return these sentinels and tests MUST check them via
// errors.Is. Panics are reserved for programmer errors in private helpers.

package multilinear

import "errors"

var (
	// ErrNilMap is returned when a nil Map is passed where a value is required.
	ErrNilMap = errors.New("multilinear: nil map")

	// ErrArityMismatch indicates Apply received a number of arguments different
	// from the map's arity, or a combinator received maps of unequal arity.
	ErrArityMismatch = errors.New("multilinear: arity mismatch")

	// ErrDimensionMismatch indicates a vector whose length differs from the
	// expected input/output dimension.
	ErrDimensionMismatch = errors.New("multilinear: dimension mismatch")

	// ErrBadShape is returned when a requested map shape is invalid
	// (negative arity, non-positive dimensions).
	ErrBadShape = errors.New("multilinear: invalid shape")

	// ErrBadPosition indicates a curry/relabel position that is out of range,
	// duplicated, or otherwise not a valid selection of argument slots.
	ErrBadPosition = errors.New("multilinear: invalid argument position")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required
	// (coefficients, scale factors, frozen vectors).
	ErrNaNInf = errors.New("multilinear: NaN or Inf encountered")

	// ErrBadIndex indicates a tensor index outside the valid range.
	ErrBadIndex = errors.New("multilinear: tensor index out of range")
)
