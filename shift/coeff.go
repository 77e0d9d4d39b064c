// Package shift — lazy evaluation of one shifted coefficient.
package shift

import (
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/powser/combin"
	"github.com/katalvlaran/powser/multilinear"
	"github.com/katalvlaran/powser/series"
)

// minParallelSubsets gates the goroutine fan-out: levels with fewer subset
// terms than this are always evaluated sequentially.
const minParallelSubsets = 64

// coeff is the degree-k coefficient qₖ of a shifted expansion, as the
// truncated double sum over (level l, subset s) described in the package
// documentation. It is a multilinear.Map; evaluation accuracy is the
// certificate-backed Tolerance of the owning Shift call, so strictly
// speaking Apply realizes qₖ up to that absolute error.
type coeff struct {
	seq *shifted
	k   int
}

// Arity returns k.
func (c *coeff) Arity() int { return c.k }

// InDim returns the argument dimension of the source sequence.
func (c *coeff) InDim() int { return c.seq.p.InDim() }

// OutDim returns the target dimension of the source sequence.
func (c *coeff) OutDim() int { return c.seq.p.OutDim() }

// Norm returns the closed-form certificate bound M / (ρᵏ·(1−β)^(k+1)),
// obtained by folding the per-level master bounds with the binomial series.
// It dominates the exact operator norm of qₖ, which is what the radius
// estimate of the shifted sequence consumes.
func (c *coeff) Norm() float64 {
	return c.seq.normBound(c.k)
}

// Curry delegates to the generic position-freezing wrapper.
func (c *coeff) Curry(positions []int, values []multilinear.Vec) (multilinear.Map, error) {
	return multilinear.NewCurried(c, positions, values)
}

// Apply evaluates qₖ at the given arguments to within the configured
// tolerance.
//
// Stage 1 (Validate): argument shape and finiteness.
// Stage 2 (Prepare): the tail budget. Level l carries at most
// scale·C(k+l, l)·βˡ where scale = (M/ρᵏ)·∏‖zᵢ‖, and the level bounds sum
// to the closed form scale·(1−β)^−(k+1); the bound on everything not yet
// evaluated is therefore total − cum, maintained by the cheap recurrence
// t_{l+1} = t_l·β·(k+l+1)/(l+1).
// Stage 3 (Accumulate): walk levels — each sums p_{k+l} curried at every
// size-l subset by y — discarding the remainder as soon as its bound drops
// under tolerance. Zero source coefficients and exhausted finite support
// skip enumeration outright.
// Errors: multilinear.ErrArityMismatch, multilinear.ErrDimensionMismatch,
// ErrNaNInf, ErrDegreeOverflow.
func (c *coeff) Apply(args ...multilinear.Vec) (multilinear.Vec, error) {
	if len(args) != c.k {
		return nil, multilinear.ErrArityMismatch
	}
	inDim := c.InDim()
	prodZ := 1.0
	var i int
	for i = range args {
		if len(args[i]) != inDim {
			return nil, multilinear.ErrDimensionMismatch
		}
		if !multilinear.IsFinite(args[i]) {
			return nil, ErrNaNInf
		}
		prodZ *= multilinear.Norm(args[i])
	}

	var (
		acc   = multilinear.Zero(c.OutDim())
		beta  = c.seq.c.beta
		scale = c.seq.c.m / math.Pow(c.seq.c.rho, float64(c.k)) * prodZ
		total = math.Pow(1-beta, float64(-(c.k + 1)))
		cum   = 0.0
		t     = 1.0
		tol   = c.seq.opts.Tolerance
		l     int
		n     int
		pn    multilinear.Map
		lv    multilinear.Vec
		err   error
	)
	for l = 0; ; l++ {
		if scale*(total-cum) <= tol {
			break
		}
		n = c.k + l
		if c.seq.supp >= 0 && n >= c.seq.supp {
			break
		}
		if n > combin.MaxGround {
			return nil, fmt.Errorf("%w: need degree %d for tolerance %g", ErrDegreeOverflow, n, tol)
		}

		pn, err = c.seq.p.At(n)
		if err != nil {
			return nil, err
		}
		if pn.Arity() != n || pn.InDim() != inDim {
			return nil, series.ErrMalformedSequence
		}

		// A zero coefficient contributes nothing at any subset; its level
		// bound is still retired from the budget.
		if pn.Norm() != 0 {
			lv, err = c.level(pn, n, l, args)
			if err != nil {
				return nil, err
			}
			if err = multilinear.Accumulate(acc, lv); err != nil {
				return nil, err
			}
		}

		cum += t
		t *= beta * float64(c.k+l+1) / float64(l+1)
	}

	return acc, nil
}

// level sums p_{k+l} curried by y at every size-l subset of Fin(k+l) and
// applied to the free arguments. Subset order is the canonical enumeration
// order; the parallel path reduces per-chunk partials in that same order, so
// a given worker count always yields the same bits.
func (c *coeff) level(pn multilinear.Map, n, l int, args []multilinear.Vec) (multilinear.Vec, error) {
	if l == 0 {
		return pn.Apply(args...)
	}

	subs, err := combin.OfSize(n, l)
	if err != nil {
		return nil, err
	}
	frozen := make([]multilinear.Vec, l)
	var i int
	for i = range frozen {
		frozen[i] = c.seq.y
	}

	if c.seq.opts.Workers > 1 && len(subs) >= minParallelSubsets {
		return c.levelParallel(pn, subs, frozen, args)
	}

	return sumSubsets(pn, subs, frozen, args, c.OutDim())
}

// levelParallel splits the subset enumeration into contiguous chunks, one
// errgroup goroutine per chunk, then folds the partials in chunk order.
func (c *coeff) levelParallel(pn multilinear.Map, subs []combin.Subset, frozen, args []multilinear.Vec) (multilinear.Vec, error) {
	workers := c.seq.opts.Workers
	if workers > len(subs) {
		workers = len(subs)
	}

	var (
		g        errgroup.Group
		partials = make([]multilinear.Vec, workers)
		chunk    = (len(subs) + workers - 1) / workers
		w        int
	)
	for w = 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(subs) {
			hi = len(subs)
		}
		if lo >= hi {
			break
		}
		slot := w
		part := subs[lo:hi]
		g.Go(func() error {
			v, err := sumSubsets(pn, part, frozen, args, c.OutDim())
			if err != nil {
				return err
			}
			partials[slot] = v

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	acc := multilinear.Zero(c.OutDim())
	for w = range partials {
		if partials[w] == nil {
			continue
		}
		if err := multilinear.Accumulate(acc, partials[w]); err != nil {
			return nil, err
		}
	}

	return acc, nil
}

// sumSubsets is the sequential kernel shared by both paths.
func sumSubsets(pn multilinear.Map, subs []combin.Subset, frozen, args []multilinear.Vec, outDim int) (multilinear.Vec, error) {
	var (
		acc = multilinear.Zero(outDim)
		cur multilinear.Map
		v   multilinear.Vec
		err error
	)
	for _, s := range subs {
		cur, err = pn.Curry(s.Members(), frozen)
		if err != nil {
			return nil, err
		}
		v, err = cur.Apply(args...)
		if err != nil {
			return nil, err
		}
		if err = multilinear.Accumulate(acc, v); err != nil {
			return nil, err
		}
	}

	return acc, nil
}
