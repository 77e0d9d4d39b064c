// Package shift — option set and sentinel errors.
//
// Options follows the plain-struct convention: construct with
// DefaultOptions(), then override fields before passing to Shift.
package shift

import "errors"

// Default knob values applied by DefaultOptions and by normalization of
// zero-valued fields.
const (
	// DefaultTolerance is the absolute truncation target for one coefficient
	// evaluation: the certified discarded tail stays below it.
	DefaultTolerance = 1e-10
	// DefaultHorizon is the sampling depth used for the radius estimate and
	// the domination constant M.
	DefaultHorizon = 64
	// DefaultWorkers keeps the subset fan-out sequential.
	DefaultWorkers = 1
)

// Sentinel errors. Match with errors.Is.
var (
	// ErrNilSequence is returned when the input sequence is nil.
	ErrNilSequence = errors.New("shift: nil sequence")

	// ErrDimensionMismatch is returned when the shift vector's dimension
	// differs from the sequence's input dimension.
	ErrDimensionMismatch = errors.New("shift: dimension mismatch")

	// ErrNaNInf is returned when the shift vector or evaluation arguments
	// contain NaN or ±Inf.
	ErrNaNInf = errors.New("shift: non-finite value")

	// ErrShiftOutOfRadius is returned when ‖y‖ is not strictly below the
	// estimated radius of convergence, so no summability certificate exists.
	ErrShiftOutOfRadius = errors.New("shift: vector outside radius of convergence")

	// ErrDegreeOverflow is returned when reaching the truncation tolerance
	// would require source degrees beyond the enumerable ground set.
	ErrDegreeOverflow = errors.New("shift: degree exceeds enumerable ground set")
)

// Options configures Shift. The zero value of any field is replaced by the
// corresponding default, so Options{} behaves like DefaultOptions().
type Options struct {
	// Tolerance is the absolute truncation target per coefficient
	// evaluation. Must be > 0 after normalization.
	Tolerance float64

	// Horizon is the number of leading coefficients sampled for the radius
	// estimate and the domination constant.
	Horizon int

	// Workers is the number of goroutines evaluating subset terms of one
	// level. 1 means sequential. The chunk layout and reduction order are
	// fixed for a given count, so repeated runs are bit-identical; distinct
	// counts may differ by summation rounding only.
	Workers int
}

// DefaultOptions returns the recommended configuration.
func DefaultOptions() Options {
	return Options{
		Tolerance: DefaultTolerance,
		Horizon:   DefaultHorizon,
		Workers:   DefaultWorkers,
	}
}

// normalized fills zero-valued fields with defaults and clamps Workers to at
// least one.
func (o Options) normalized() Options {
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.Horizon <= 0 {
		o.Horizon = DefaultHorizon
	}
	if o.Workers < 1 {
		o.Workers = DefaultWorkers
	}

	return o
}
