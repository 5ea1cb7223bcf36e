package gmath

import "github.com/gogpu/gmath/scalar"

// TransformOption configures a transform built by NewTransform.
//
// Example:
//
//	m := gmath.NewTransform(
//	    gmath.WithRotation[float32](math.Pi/4),
//	    gmath.WithScale(gmath.V2[float32](2, 2)),
//	    gmath.WithTranslation(gmath.V2[float32](10, 20)),
//	)
type TransformOption[T scalar.Number] func(*transformOptions[T])

// transformOptions holds the components collected from TransformOptions.
type transformOptions[T scalar.Number] struct {
	rotation    T
	hasRotation bool

	scale    Vec2[T]
	hasScale bool

	translation Vec2[T]
}

// WithRotation sets the rotation angle in radians.
func WithRotation[T scalar.Number](angle T) TransformOption[T] {
	return func(o *transformOptions[T]) {
		o.rotation = angle
		o.hasRotation = true
	}
}

// WithScale sets the per-axis scale factors.
func WithScale[T scalar.Number](v Vec2[T]) TransformOption[T] {
	return func(o *transformOptions[T]) {
		o.scale = v
		o.hasScale = true
	}
}

// WithTranslation sets the translation.
func WithTranslation[T scalar.Number](v Vec2[T]) TransformOption[T] {
	return func(o *transformOptions[T]) {
		o.translation = v
	}
}

// NewTransform builds a transform from the given options, starting from
// the identity. Regardless of option order, the result scales a point
// first, then rotates it, then translates it, so [Matrix3.Translation]
// and [Matrix3.Scale] recover the inputs. With no options the identity
// is returned.
func NewTransform[T scalar.Number](opts ...TransformOption[T]) Matrix3[T] {
	var o transformOptions[T]
	for _, opt := range opts {
		opt(&o)
	}

	m := Identity3[T]()
	if o.hasRotation {
		m.SetRotation(o.rotation)
	}
	if o.hasScale {
		m.PostScale(o.scale)
	}
	m.SetTranslation(o.translation)
	return m
}

// Translate creates a translation matrix.
func Translate[T scalar.Number](x, y T) Matrix3[T] {
	m := Identity3[T]()
	m.SetTranslation(Vec2[T]{X: x, Y: y})
	return m
}

// Scale creates a scaling matrix.
func Scale[T scalar.Number](sx, sy T) Matrix3[T] {
	m := Identity3[T]()
	m.SetScale(Vec2[T]{X: sx, Y: sy})
	return m
}

// Rotate creates a rotation matrix (angle in radians).
func Rotate[T scalar.Number](angle T) Matrix3[T] {
	m := Identity3[T]()
	m.SetRotation(angle)
	return m
}
