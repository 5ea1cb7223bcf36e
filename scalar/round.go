package scalar

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Round rounds x to the nearest integer using floor(x + 0.5).
//
// The addition happens in T's precision, matching floorf(x + 0.5f) for
// float32 operands. Half values round toward positive infinity:
// Round(2.5) == 3 and Round(-2.5) == -2.
func Round[T constraints.Float](x T) T {
	return T(math.Floor(float64(x + 0.5)))
}

// RoundPlaces rounds x to the given number of decimal places.
//
// The integer part is split off by truncation, the fraction is scaled by
// 10^decimalPlaces, rounded with Round and truncated, then scaled back and
// recombined. Results carry the precision artifacts of that two-step
// computation.
func RoundPlaces[T constraints.Float](x T, decimalPlaces int) T {
	ix := int(x)
	frac := x - T(ix)

	p := T(math.Pow(10, float64(decimalPlaces)))
	f := T(int(Round(frac * p)))
	f /= p

	return T(ix) + f
}
