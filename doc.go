// Package powser is an in-memory engine for formal multilinear power series:
// represent a function as a sequence of n-linear maps pₙ : Eⁿ → F, certify the
// radius within which Σ pₙ(y,…,y) converges, evaluate the sum, and re-expand
// the series around a new base point inside the disk of convergence.
//
// 🚀 What is powser?
//
//	A deterministic, library-only toolkit that brings together:
//		• Multilinear primitives: n-linear maps, operator-norm bounds, currying
//		• Index combinatorics: bitmask subsets, sized enumeration, sigma bijections
//		• Radius estimation: norm-bound and geometric-decay certificates
//		• Summation: partial sums, full sums, uniform tail envelopes
//		• Ball contracts: expansions (f, p, x, r) with add/neg/sub/shrink
//		• Change of origin: re-expansion around x+y with a certified radius
//
// ✨ Why choose powser?
//
//   - Strict sentinels – every precondition violation is a typed error
//   - Deterministic – no global state, no implicit randomness
//   - Pure Go – no cgo; optional parallel reduction via goroutines
//   - Certified numerics – tail bounds are proven before truncation
//
// Under the hood, everything is organized under five subpackages:
//
//	multilinear/ — vectors, n-linear maps, operator norms, currying, relabeling
//	combin/      — subsets of {0..n-1}, sized enumeration, merge/split bijection
//	series/      — coefficient sequences, extended-real radius, summation
//	shift/       — change of origin (the combinatorial core)
//	analytic/    — ball-level expansion contracts and the openness corollary
//
// Quick sketch:
//
//	f(x+y+z) = Σₙ pₙ(y+z,…,y+z) = Σₖ qₖ(z,…,z)   where q = shift(p, y)
//
// Dive into each package's doc.go for algorithm outlines, complexity notes and
// worked examples.
//
//	go get github.com/katalvlaran/powser
package powser
