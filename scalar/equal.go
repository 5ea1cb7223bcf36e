package scalar

// IsEquals reports whether a and b are equal within the default tolerance
// for T. Integers compare exactly.
func IsEquals[T Number](a, b T) bool {
	return IsEqualsTol(a, b, DefaultTolerance[T]())
}

// IsEqualsTol reports whether b lies in [a-tolerance, a+tolerance].
//
// The window is evaluated in T's arithmetic, so unsigned operands near zero
// or near the maximum wrap exactly as the equivalent uint32 expression does.
func IsEqualsTol[T Number](a, b, tolerance T) bool {
	return a+tolerance >= b && a-tolerance <= b
}

// IsZero reports whether a is zero within the default tolerance for T.
func IsZero[T Number](a T) bool {
	return IsZeroTol(a, DefaultTolerance[T]())
}

// IsZeroTol reports whether |a| <= tolerance.
func IsZeroTol[T Number](a, tolerance T) bool {
	switch {
	case isFloat[T]():
		return Abs(a) <= tolerance
	case isSigned[T]():
		return a >= -tolerance && a <= tolerance
	default:
		return a <= tolerance
	}
}

// IsZeroMasked reports whether the low 27 bits of a are at most tolerance.
//
// It ignores the sign bit and the top four magnitude bits, so large
// values such as 1<<27 and negative values such as -1<<31 test as zero.
// Use IsZeroTol for a magnitude test; this form exists for callers that
// need results identical to the legacy int32 check.
func IsZeroMasked(a, tolerance int32) bool {
	return a&0x7ffffff <= tolerance
}
