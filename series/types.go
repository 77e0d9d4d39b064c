package series

import "github.com/katalvlaran/powser/multilinear"

// Sequence is an immutable coefficient sequence p = (pₙ)ₙ≥0 of n-linear maps
// pₙ : (ℝ^InDim)ⁿ → ℝ^OutDim. Implementations own their coefficient maps;
// there is no shared mutation — sequences are value objects once constructed.
//
// Contract: At(n) returns a map with Arity() == n, InDim() == InDim() and
// OutDim() == OutDim(); violations surface as ErrMalformedSequence at the
// point of use.
type Sequence interface {
	// At returns the degree-n coefficient.
	// Errors: ErrNegativeIndex.
	At(n int) (multilinear.Map, error)

	// InDim returns the argument dimension of every coefficient.
	InDim() int

	// OutDim returns the target dimension of every coefficient.
	OutDim() int
}

// FiniteSupport is implemented by sequences that are zero past a known
// degree. ConvergenceRadius returns exactly ∞ for them without sampling.
type FiniteSupport interface {
	// SupportBound returns N such that pₙ = 0 for all n ≥ N.
	SupportBound() int
}

// funcSeq adapts a generator function to the Sequence interface.
type funcSeq struct {
	at     func(n int) (multilinear.Map, error)
	inDim  int
	outDim int
}

// New builds a sequence from a generator. The generator is retained, not
// memoized: callers evaluating the same degree repeatedly may wrap their own
// cache, but the engine itself samples each degree a bounded number of times.
// Errors: ErrNilSequence (nil generator), ErrBadShape.
func New(inDim, outDim int, at func(n int) (multilinear.Map, error)) (Sequence, error) {
	if at == nil {
		return nil, ErrNilSequence
	}
	if inDim <= 0 || outDim <= 0 {
		return nil, ErrBadShape
	}

	return &funcSeq{at: at, inDim: inDim, outDim: outDim}, nil
}

func (s *funcSeq) At(n int) (multilinear.Map, error) {
	if n < 0 {
		return nil, ErrNegativeIndex
	}

	return s.at(n)
}

func (s *funcSeq) InDim() int  { return s.inDim }
func (s *funcSeq) OutDim() int { return s.outDim }

// polySeq is a finite-support sequence backed by an explicit coefficient
// slice; degrees past the slice are the zero map. Radius is exactly ∞.
type polySeq struct {
	maps   []multilinear.Map
	inDim  int
	outDim int
}

// NewPolynomial builds the finite-support sequence with the given
// coefficients: maps[n] is the degree-n coefficient and must have arity n.
// Nil entries stand for the zero map of the right signature.
// Stage 1 (Validate): dimensions positive, each coefficient's signature.
// Stage 2 (Prepare): copy the slice (value semantics).
// Stage 3 (Finalize): return the sequence.
// Errors: ErrBadShape, ErrMalformedSequence.
func NewPolynomial(inDim, outDim int, maps ...multilinear.Map) (Sequence, error) {
	if inDim <= 0 || outDim <= 0 {
		return nil, ErrBadShape
	}
	cp := make([]multilinear.Map, len(maps))
	var n int
	for n = range maps {
		if maps[n] == nil {
			continue
		}
		if maps[n].Arity() != n || maps[n].InDim() != inDim || maps[n].OutDim() != outDim {
			return nil, ErrMalformedSequence
		}
		cp[n] = maps[n]
	}

	return &polySeq{maps: cp, inDim: inDim, outDim: outDim}, nil
}

func (s *polySeq) At(n int) (multilinear.Map, error) {
	if n < 0 {
		return nil, ErrNegativeIndex
	}
	if n >= len(s.maps) || s.maps[n] == nil {
		return multilinear.NewZero(n, s.inDim, s.outDim)
	}

	return s.maps[n], nil
}

func (s *polySeq) InDim() int  { return s.inDim }
func (s *polySeq) OutDim() int { return s.outDim }

// SupportBound reports the recorded support: coefficients at or past
// len(maps) are zero.
func (s *polySeq) SupportBound() int { return len(s.maps) }

// combSeq combines two sequences coefficient-wise through a Map combinator.
type combSeq struct {
	p, q Sequence
	comb func(a, b multilinear.Map) (multilinear.Map, error)
}

// Add returns the coefficient-wise sum p+q. Since ‖pₙ+qₙ‖ ≤ ‖pₙ‖+‖qₙ‖,
// radius(p+q) ≥ min(radius(p), radius(q)) — the additivity lower bound.
// Errors: ErrNilSequence, ErrDimensionMismatch.
func Add(p, q Sequence) (Sequence, error) {
	if p == nil || q == nil {
		return nil, ErrNilSequence
	}
	if p.InDim() != q.InDim() || p.OutDim() != q.OutDim() {
		return nil, ErrDimensionMismatch
	}
	out := &combSeq{p: p, q: q, comb: multilinear.NewSum}

	// Finite support is preserved under addition; keep it visible so the
	// radius estimator can stay exact.
	fp, okP := p.(FiniteSupport)
	fq, okQ := q.(FiniteSupport)
	if okP && okQ {
		bound := fp.SupportBound()
		if fq.SupportBound() > bound {
			bound = fq.SupportBound()
		}

		return &finiteCombSeq{combSeq: *out, bound: bound}, nil
	}

	return out, nil
}

// Sub returns the coefficient-wise difference p−q.
// Errors: ErrNilSequence, ErrDimensionMismatch.
func Sub(p, q Sequence) (Sequence, error) {
	nq, err := Neg(q)
	if err != nil {
		return nil, err
	}

	return Add(p, nq)
}

func (s *combSeq) At(n int) (multilinear.Map, error) {
	a, err := s.p.At(n)
	if err != nil {
		return nil, err
	}
	b, err := s.q.At(n)
	if err != nil {
		return nil, err
	}
	m, err := s.comb(a, b)
	if err != nil {
		// Signature drift between the two operands at this degree.
		return nil, ErrMalformedSequence
	}

	return m, nil
}

func (s *combSeq) InDim() int  { return s.p.InDim() }
func (s *combSeq) OutDim() int { return s.p.OutDim() }

// finiteCombSeq is a combSeq whose operands both have finite support.
type finiteCombSeq struct {
	combSeq
	bound int
}

// SupportBound reports the combined support bound.
func (s *finiteCombSeq) SupportBound() int { return s.bound }

// negSeq negates every coefficient.
type negSeq struct {
	p Sequence
}

// Neg returns the coefficient-wise negation −p; radius is unchanged.
// Errors: ErrNilSequence.
func Neg(p Sequence) (Sequence, error) {
	if p == nil {
		return nil, ErrNilSequence
	}
	if fp, ok := p.(FiniteSupport); ok {
		return &finiteNegSeq{negSeq: negSeq{p: p}, bound: fp.SupportBound()}, nil
	}

	return &negSeq{p: p}, nil
}

// finiteNegSeq preserves a recorded finite support through negation.
type finiteNegSeq struct {
	negSeq
	bound int
}

// SupportBound reports the operand's support bound.
func (s *finiteNegSeq) SupportBound() int { return s.bound }

func (s *negSeq) At(n int) (multilinear.Map, error) {
	m, err := s.p.At(n)
	if err != nil {
		return nil, err
	}

	return multilinear.NewNeg(m)
}

func (s *negSeq) InDim() int  { return s.p.InDim() }
func (s *negSeq) OutDim() int { return s.p.OutDim() }
