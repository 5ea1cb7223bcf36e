// Package scalar provides comparison, rounding and bit helpers for the
// numeric types used by the matrix and vector code in gmath.
//
// # Tolerances
//
// Floating point comparisons use a symmetric tolerance window:
//
//	a - tolerance <= b <= a + tolerance
//
// The default tolerance depends on the operand type:
//   - float32: [RoundingError32] (0.00005)
//   - float64: [RoundingError64] (0.000005)
//   - integers: 0, so comparisons are exact unless a tolerance is given
//
// # Rounding
//
// [Round] uses floor(x + 0.5). Negative half values round toward positive
// infinity (Round(-2.5) == -2), which differs from [math.Round].
//
// All functions are pure and safe for concurrent use.
package scalar
