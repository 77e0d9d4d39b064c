// Package series: functional configuration for the numeric policy shared by
// the radius estimator, certificate checkers and summation.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: option fields are unexported; public APIs consume ...Option.

package series

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultHorizon is the number of leading coefficients sampled by the
	// radius estimator and certificate checkers. Every numeric conclusion in
	// this package is scoped to the horizon: it is a certificate over the
	// sampled prefix, standing in for the universally quantified lemma.
	DefaultHorizon = 64

	// DefaultEpsilon is the non-negative comparison slack used by bound
	// checks, protecting certificates from spurious last-ulp violations.
	DefaultEpsilon = 1e-9

	// DefaultTolerance is the truncation target for full sums: the certified
	// discarded tail is kept below this value.
	DefaultTolerance = 1e-10

	// maxSumTerms caps the certified truncation depth of a full sum; a depth
	// beyond it means the evaluation point sits too close to the boundary for
	// the configured tolerance (ErrNoConvergence).
	maxSumTerms = 1 << 20
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicHorizonInvalid   = "series: WithHorizon: horizon must be > 0"
	panicEpsilonInvalid   = "series: WithEpsilon: eps must be finite, non-negative"
	panicToleranceInvalid = "series: WithTolerance: tol must be finite, positive"
)

// ---------- Public option type (functional) ----------

// Option mutates the numeric policy. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*options)

// options stores the effective policy after applying Option setters. It is
// unexported to prevent external mutation; public entry points accept
// ...Option and resolve them via gatherOptions.
type options struct {
	horizon int     // > 0; DefaultHorizon
	eps     float64 // ≥ 0; DefaultEpsilon
	tol     float64 // > 0; DefaultTolerance
}

// WithHorizon sets the coefficient sampling depth.
func WithHorizon(h int) Option {
	if h <= 0 {
		panic(panicHorizonInvalid)
	}

	return func(o *options) { o.horizon = h }
}

// WithEpsilon sets the comparison slack for bound checks.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}

// WithTolerance sets the truncation target for full sums.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tol = tol }
}

// gatherOptions resolves defaults then applies setters in order.
func gatherOptions(opts ...Option) options {
	o := options{
		horizon: DefaultHorizon,
		eps:     DefaultEpsilon,
		tol:     DefaultTolerance,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
