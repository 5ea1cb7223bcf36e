package scalar

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// IsPowerOf2 reports whether a is a non-zero power of two.
func IsPowerOf2[T constraints.Unsigned](a T) bool {
	return a != 0 && a&(a-1) == 0
}

// SmallestPowerOf2 returns the smallest power of two that is >= val.
// It returns 1 for val <= 1 and 0 when that power of two does not fit in T.
func SmallestPowerOf2[T constraints.Unsigned](val T) T {
	if val <= 1 {
		return 1
	}
	// Shifting by T's full width yields 0.
	return T(1) << bits.Len64(uint64(val-1))
}

// Shift returns the number of right shifts that reduce val to 1, which is
// floor(log2(val)). It returns -1 for val == 0.
func Shift[T constraints.Unsigned](val T) int {
	return bits.Len64(uint64(val)) - 1
}

// BitCount returns the number of set bits in val.
func BitCount[T constraints.Unsigned](val T) int {
	return bits.OnesCount64(uint64(val))
}

// SetBitCond sets the bits of mask in state when condition is positive and
// clears them when condition is zero or negative.
//
// The selection does not branch on condition: the sign of -condition is
// replicated across a full word and merged into state under mask.
func SetBitCond(state uint32, condition int32, mask uint32) uint32 {
	sel := uint32(-int64(condition) >> 63)
	return state ^ ((sel ^ state) & mask)
}
