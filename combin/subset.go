package combin

import (
	"errors"
	"math/bits"
)

// MaxGround is the widest supported ground set {0,…,MaxGround−1}.
// Subsets are uint64 bitmasks, and one bit is kept in reserve so that
// (1<<n)−1 never overflows for any legal n.
const MaxGround = 63

var (
	// ErrGroundTooLarge is returned when a ground-set width exceeds MaxGround.
	ErrGroundTooLarge = errors.New("combin: ground set exceeds MaxGround positions")

	// ErrSizeOutOfRange is returned when a subset size is negative or larger
	// than the ground set it must live in.
	ErrSizeOutOfRange = errors.New("combin: subset size out of range")

	// ErrCardMismatch is returned by NewSized when |set| != size.
	ErrCardMismatch = errors.New("combin: cardinality does not match declared size")

	// ErrNotSubset is returned when a mask has member bits outside the ground set.
	ErrNotSubset = errors.New("combin: mask is not a subset of the ground set")
)

// Subset is a subset of a ground set {0,…,n−1}, stored as a bitmask:
// bit i is set iff position i is a member. The ground-set width n is carried
// by the operation that consumes the subset, not by the value itself.
type Subset uint64

// Card returns the number of members.
// Complexity: O(1) (hardware popcount).
func (s Subset) Card() int {
	return bits.OnesCount64(uint64(s))
}

// Contains reports whether position i is a member.
func (s Subset) Contains(i int) bool {
	return i >= 0 && i < 64 && s&(1<<uint(i)) != 0
}

// Members returns the member positions in increasing order.
// Complexity: O(|s|) using trailing-zero extraction.
func (s Subset) Members() []int {
	out := make([]int, 0, s.Card())
	for m := uint64(s); m != 0; m &= m - 1 {
		out = append(out, bits.TrailingZeros64(m))
	}

	return out
}

// Complement returns the complement of s inside the ground set {0,…,n−1}.
// Errors: ErrGroundTooLarge, ErrNotSubset.
func (s Subset) Complement(n int) (Subset, error) {
	if n < 0 || n > MaxGround {
		return 0, ErrGroundTooLarge
	}
	full := Subset(1<<uint(n)) - 1
	if s&^full != 0 {
		return 0, ErrNotSubset
	}

	return full &^ s, nil
}

// Within reports whether s is contained in the ground set {0,…,n−1}.
func (s Subset) Within(n int) bool {
	if n < 0 || n > MaxGround {
		return false
	}

	return s&^(Subset(1<<uint(n))-1) == 0
}

// Sized is a subset paired with its declared cardinality — the plain-struct
// rendition of a refinement type {s ⊆ Fin(n) | |s| = l}. The invariant
// Set.Card() == Size holds for every value produced by NewSized; code in this
// module never builds a Sized by struct literal outside the constructor.
type Sized struct {
	Size int
	Set  Subset
}

// NewSized validates and builds a Sized pair over the ground set {0,…,n−1}.
// Stage 1 (Validate): ground width, size range, membership, cardinality.
// Stage 2 (Finalize): return the pair.
// Errors: ErrGroundTooLarge, ErrSizeOutOfRange, ErrNotSubset, ErrCardMismatch.
func NewSized(n, size int, set Subset) (Sized, error) {
	if n < 0 || n > MaxGround {
		return Sized{}, ErrGroundTooLarge
	}
	if size < 0 || size > n {
		return Sized{}, ErrSizeOutOfRange
	}
	if !set.Within(n) {
		return Sized{}, ErrNotSubset
	}
	if set.Card() != size {
		return Sized{}, ErrCardMismatch
	}

	return Sized{Size: size, Set: set}, nil
}
