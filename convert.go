package gmath

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/gmath/scalar"
)

// Mat3 returns m as an f64.Mat3. Both types are row-major, so elements are
// copied in order.
func (m Matrix3[T]) Mat3() f64.Mat3 {
	var out f64.Mat3
	for i, v := range m {
		out[i] = float64(v)
	}
	return out
}

// Matrix3FromMat3 converts an f64.Mat3 to a Matrix3.
func Matrix3FromMat3[T scalar.Number](src f64.Mat3) Matrix3[T] {
	var m Matrix3[T]
	for i, v := range src {
		m[i] = T(v)
	}
	return m
}

// Mat3F32 returns m as an f32.Mat3.
func (m Matrix3[T]) Mat3F32() f32.Mat3 {
	var out f32.Mat3
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

// Matrix3FromMat3F32 converts an f32.Mat3 to a Matrix3.
func Matrix3FromMat3F32[T scalar.Number](src f32.Mat3) Matrix3[T] {
	var m Matrix3[T]
	for i, v := range src {
		m[i] = T(v)
	}
	return m
}

// Aff3 returns the affine part of m as an f64.Aff3, the 2x3 form used by
// golang.org/x/image/draw.Transformer:
//
//	x' = a[0]*x + a[1]*y + a[2]
//	y' = a[3]*x + a[4]*y + a[5]
//
// Because f64.Aff3 acts on column vectors, the linear block is transposed
// and the translation row becomes the last column. The third column of m
// is dropped.
func (m Matrix3[T]) Aff3() f64.Aff3 {
	return f64.Aff3{
		float64(m[0]), float64(m[3]), float64(m[6]),
		float64(m[1]), float64(m[4]), float64(m[7]),
	}
}

// Matrix3FromAff3 converts an f64.Aff3 to an affine Matrix3. It is the
// inverse of [Matrix3.Aff3] for matrices whose third column is (0, 0, 1).
func Matrix3FromAff3[T scalar.Number](a f64.Aff3) Matrix3[T] {
	return Matrix3[T]{
		T(a[0]), T(a[3]), 0,
		T(a[1]), T(a[4]), 0,
		T(a[2]), T(a[5]), 1,
	}
}
