package gmath

import (
	"math"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/gmath/scalar"
)

// Vec2 represents a 2D vector with components of type T.
// It is a plain value type; copies are independent.
type Vec2[T scalar.Number] struct {
	X, Y T
}

// V2 is a convenience function to create a Vec2.
func V2[T scalar.Number](x, y T) Vec2[T] {
	return Vec2[T]{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2[T]) Add(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2[T]) Sub(w Vec2[T]) Vec2[T] {
	return Vec2[T]{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by s.
func (v Vec2[T]) Mul(s T) Vec2[T] {
	return Vec2[T]{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of two vectors.
func (v Vec2[T]) Dot(w Vec2[T]) T {
	return v.X*w.X + v.Y*w.Y
}

// LengthSq returns the squared length of the vector.
func (v Vec2[T]) LengthSq() T {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the Euclidean length of the vector.
// The square root is taken in float64; integer vectors truncate the result.
func (v Vec2[T]) Length() T {
	return T(math.Sqrt(float64(v.X)*float64(v.X) + float64(v.Y)*float64(v.Y)))
}

// IsZero returns true if both components are exactly zero.
func (v Vec2[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Approx returns true if both components differ from w's by at most epsilon.
func (v Vec2[T]) Approx(w Vec2[T], epsilon T) bool {
	return scalar.IsEqualsTol(v.X, w.X, epsilon) && scalar.IsEqualsTol(v.Y, w.Y, epsilon)
}

// Fixed converts the vector to a 26.6 fixed point position, rounding each
// component to the nearest 1/64.
func (v Vec2[T]) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(float64(v.X) * 64)),
		Y: fixed.Int26_6(math.Round(float64(v.Y) * 64)),
	}
}

// Vec2FromFixed converts a 26.6 fixed point position to a Vec2.
func Vec2FromFixed[T scalar.Number](p fixed.Point26_6) Vec2[T] {
	return Vec2[T]{
		X: T(float64(p.X) / 64),
		Y: T(float64(p.Y) / 64),
	}
}
