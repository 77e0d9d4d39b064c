// Package combin provides the index-set combinatorics the power-series engine
// is built on: bitmask subsets of a finite ground set {0,…,n−1}, deterministic
// enumeration of all subsets and of fixed-size subsets, binomial coefficients,
// and the sigma bijection
//
//	(k, l, s with |s|=l, s ⊆ {0..k+l−1})  ≃  (n, s with s ⊆ {0..n−1})
//
// that re-parametrizes the double sum appearing in the change-of-origin
// construction as a single flat sum (forward: (k,l,s) ↦ (k+l, s); inverse:
// (n,s) ↦ (n−|s|, |s|, s)).
//
// Representation:
//
//   - Subset is a uint64 bitmask; bit i set ⇔ position i is a member.
//     Ground sets are capped at MaxGround = 63 positions.
//   - Sized is a validated (size, set) pair with the invariant Set.Card()==Size,
//     enforced by NewSized — invalid pairs are never constructed.
//
// Enumeration orders are deterministic (increasing mask value), so every
// consumer — including parallel reductions that chunk the enumeration — sees a
// stable, reproducible term order.
//
// Errors:
//
//	ErrGroundTooLarge — ground-set width exceeds MaxGround.
//	ErrSizeOutOfRange — requested subset size is negative or exceeds the ground set.
//	ErrCardMismatch   — a (size, set) pair violates |set| == size.
//	ErrNotSubset      — a mask has bits outside the ground set.
package combin
