// Package gmath provides the 2D transform math used by real-time graphics
// code: a generic 3x3 affine matrix and a small 2D vector type.
//
// # Overview
//
// [Matrix3] stores a 2D affine transform in homogeneous coordinates as nine
// row-major elements. It is a plain value type with no heap allocation.
// Transforms are composed with [Matrix3.Mul] and decomposed with
// [Matrix3.Translation], [Matrix3.Rotation] and [Matrix3.Scale].
//
//	import "github.com/gogpu/gmath"
//
//	m := gmath.NewMatrix3[float32]() // identity
//	m.SetRotation(math.Pi / 2)
//	m.SetTranslation(gmath.V2[float32](3, 4))
//
//	p := m.TransformPoint(gmath.V2[float32](1, 0))
//
// # Composition Order
//
// a.Mul(b) applies b first and a second. Swapping the operands changes the
// composed transform.
//
// # Numeric Types
//
// Matrix3 and Vec2 are generic over integer and floating point element
// types. Predicates such as [Matrix3.IsIdentity] compare floating point
// elements within a tolerance and integer elements exactly; see package
// [github.com/gogpu/gmath/scalar] for the comparison helpers.
//
// # Interoperability
//
// Matrices convert to and from the golang.org/x/image/math/f64 and f32
// matrix types, and to f64.Aff3 for use with golang.org/x/image/draw.
// Vectors convert to fixed.Point26_6 for glyph positioning.
//
// # Concurrency
//
// Values may be read concurrently. Mutating the same value from several
// goroutines requires external synchronization.
package gmath
