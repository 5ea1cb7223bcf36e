package scalar

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Number is the set of types the helpers in this package operate on.
type Number interface {
	constraints.Integer | constraints.Float
}

// Min returns the smaller of a and b. When neither is less than the
// other, b is returned.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Min3 returns the smallest of a, b and c.
func Min3[T constraints.Ordered](a, b, c T) T {
	if a < b {
		return Min(a, c)
	}
	return Min(b, c)
}

// Max returns the larger of a and b. When neither is less than the
// other, a is returned.
func Max[T constraints.Ordered](a, b T) T {
	if a < b {
		return b
	}
	return a
}

// Max3 returns the largest of a, b and c.
func Max3[T constraints.Ordered](a, b, c T) T {
	if a < b {
		return Max(b, c)
	}
	return Max(a, c)
}

// Abs returns the absolute value of a.
func Abs[T Number](a T) T {
	if a < 0 {
		return -a
	}
	return a
}

// Sign returns 0 if a is zero, -1 if a is negative and 1 otherwise.
func Sign[T Number](a T) T {
	var zero T
	if a == zero {
		return zero
	}
	if a < zero {
		return zero - 1
	}
	return zero + 1
}

// Clamp limits value to the range [low, high].
// The result for low > high is Min(Max(value, low), high).
func Clamp[T constraints.Ordered](value, low, high T) T {
	return Min(Max(value, low), high)
}

// isFloat reports whether T is a floating point type.
func isFloat[T Number]() bool {
	half := 0.5
	return T(half) != 0
}

// isSigned reports whether T can hold negative values.
func isSigned[T Number]() bool {
	var zero T
	return zero-1 < zero
}

// DefaultTolerance returns the comparison tolerance used by IsEquals and
// IsZero for T: RoundingError32 for 32-bit floats, RoundingError64 for
// 64-bit floats and 0 for integers.
func DefaultTolerance[T Number]() T {
	if !isFloat[T]() {
		return 0
	}
	var zero T
	if unsafe.Sizeof(zero) == 4 {
		eps := RoundingError32
		return T(eps)
	}
	eps := RoundingError64
	return T(eps)
}
