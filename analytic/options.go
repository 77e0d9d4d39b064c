// Package analytic: functional configuration for the spot-check policy.
//
// Same conventions as the series options: unexported option storage,
// idempotent setters, panic only on nonsensical parameters.
package analytic

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultHorizon is the coefficient sampling depth forwarded to the
	// radius estimate and to re-expansion.
	DefaultHorizon = 64

	// DefaultTolerance is the comparison slack for contract spot-checks. It
	// is deliberately looser than the summation tolerance underneath: two
	// independent truncations meet in every comparison, and re-centered
	// coefficient sequences are only cheap to evaluate at modest accuracy.
	DefaultTolerance = 1e-4

	// DefaultSamples is the number of pseudo-random points per spot-check.
	DefaultSamples = 8

	// DefaultSeed makes sampling reproducible by default.
	DefaultSeed = 1

	// innerTolFraction scales the comparison tolerance down to obtain the
	// truncation target of the sums being compared.
	innerTolFraction = 0.1

	// sampleShrink keeps sample points well inside the certifiable part of
	// the ball: subset enumeration inside shifted coefficients grows
	// combinatorially toward the boundary, so spot-checks stay at a quarter
	// of the disk.
	sampleShrink = 0.25
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicHorizonInvalid   = "analytic: WithHorizon: horizon must be > 0"
	panicToleranceInvalid = "analytic: WithTolerance: tol must be finite, positive"
	panicSamplesInvalid   = "analytic: WithSamples: count must be > 0"
)

// ---------- Public option type (functional) ----------

// Option mutates the spot-check policy. Safe to apply repeatedly.
type Option func(*options)

type options struct {
	horizon int     // > 0; DefaultHorizon
	tol     float64 // > 0; DefaultTolerance
	samples int     // > 0; DefaultSamples
	seed    int64   // any; DefaultSeed
}

// WithHorizon sets the coefficient sampling depth.
func WithHorizon(h int) Option {
	if h <= 0 {
		panic(panicHorizonInvalid)
	}

	return func(o *options) { o.horizon = h }
}

// WithTolerance sets the comparison slack for spot-checks.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol <= 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *options) { o.tol = tol }
}

// WithSamples sets the number of sample points per spot-check.
func WithSamples(n int) Option {
	if n <= 0 {
		panic(panicSamplesInvalid)
	}

	return func(o *options) { o.samples = n }
}

// WithSeed fixes the sampling seed. Distinct seeds explore distinct points;
// any fixed seed is deterministic.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// gatherOptions resolves defaults then applies setters in order.
func gatherOptions(opts ...Option) options {
	o := options{
		horizon: DefaultHorizon,
		tol:     DefaultTolerance,
		samples: DefaultSamples,
		seed:    DefaultSeed,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
