package gmath

import (
	"math"

	"github.com/gogpu/gmath/scalar"
)

// Matrix3 is a 3x3 matrix representing a 2D affine transformation in
// homogeneous coordinates. Elements are stored in row-major order, so
// m[row*3+col] is the element in the given row and column:
//
//	| a   b   0 |    indices 0 1 2
//	| c   d   0 |    indices 3 4 5
//	| tx  ty  1 |    indices 6 7 8
//
// Points are row vectors: [x y 1] * M, which gives
//
//	x' = a*x + c*y + tx
//	y' = b*x + d*y + ty
//
// The zero value is the zero matrix. Use [NewMatrix3] or [Identity3] for the
// identity. Any nine values form a valid Matrix3; [Matrix3.IsIdentity] and
// [Matrix3.IsAffine] are derived predicates.
//
// Indexing outside 0..8 (or a row or column outside 0..2) panics.
type Matrix3[T scalar.Number] [9]T

// Matrix is the single precision matrix used by most callers.
type Matrix = Matrix3[float32]

// Identity3 returns the identity matrix.
func Identity3[T scalar.Number]() Matrix3[T] {
	return Matrix3[T]{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// NewMatrix3 returns a new identity matrix.
func NewMatrix3[T scalar.Number]() Matrix3[T] {
	return Identity3[T]()
}

// Matrix3Of creates a matrix from nine values in row-major order.
func Matrix3Of[T scalar.Number](m0, m1, m2, m3, m4, m5, m6, m7, m8 T) Matrix3[T] {
	return Matrix3[T]{
		m0, m1, m2,
		m3, m4, m5,
		m6, m7, m8,
	}
}

// Matrix3FromSlice copies the first nine elements of src into a new matrix.
// It panics if src has fewer than nine elements.
func Matrix3FromSlice[T scalar.Number](src []T) Matrix3[T] {
	var m Matrix3[T]
	copy(m[:], src[:9])
	return m
}

// Set copies the first nine elements of src into m. A nil src leaves m
// unchanged.
func (m *Matrix3[T]) Set(src []T) {
	if src == nil {
		return
	}
	copy(m[:], src[:9])
}

// Fill sets every element to v.
func (m *Matrix3[T]) Fill(v T) {
	for i := range m {
		m[i] = v
	}
}

// At returns the element at the given row and column.
func (m Matrix3[T]) At(row, col int) T {
	return m[row*3+col]
}

// SetAt sets the element at the given row and column.
func (m *Matrix3[T]) SetAt(row, col int, v T) {
	m[row*3+col] = v
}

// Ptr returns a pointer to the element at the given row and column.
func (m *Matrix3[T]) Ptr(row, col int) *T {
	return &m[row*3+col]
}

// Equal reports whether all nine elements are exactly equal.
// It is equivalent to m == other.
func (m Matrix3[T]) Equal(other Matrix3[T]) bool {
	for i := range m {
		if m[i] != other[i] {
			return false
		}
	}
	return true
}

// Add returns the element-wise sum m + other.
func (m Matrix3[T]) Add(other Matrix3[T]) Matrix3[T] {
	m.AddAssign(other)
	return m
}

// AddAssign adds other to m element-wise.
func (m *Matrix3[T]) AddAssign(other Matrix3[T]) {
	for i := range m {
		m[i] += other[i]
	}
}

// Sub returns the element-wise difference m - other.
func (m Matrix3[T]) Sub(other Matrix3[T]) Matrix3[T] {
	m.SubAssign(other)
	return m
}

// SubAssign subtracts other from m element-wise.
func (m *Matrix3[T]) SubAssign(other Matrix3[T]) {
	for i := range m {
		m[i] -= other[i]
	}
}

// Mul returns the product m * other.
//
// The result applies other first and m second: for affine m and other and
// any point p, m.Mul(other).TransformPoint(p) equals
// m.TransformPoint(other.TransformPoint(p)).
// Swapping the operands changes the composed transform.
func (m Matrix3[T]) Mul(other Matrix3[T]) Matrix3[T] {
	a, b := &m, &other
	return Matrix3[T]{
		a[0]*b[0] + a[3]*b[1] + a[6]*b[2],
		a[1]*b[0] + a[4]*b[1] + a[7]*b[2],
		a[2]*b[0] + a[5]*b[1] + a[8]*b[2],
		a[0]*b[3] + a[3]*b[4] + a[6]*b[5],
		a[1]*b[3] + a[4]*b[4] + a[7]*b[5],
		a[2]*b[3] + a[5]*b[4] + a[8]*b[5],
		a[0]*b[6] + a[3]*b[7] + a[6]*b[8],
		a[1]*b[6] + a[4]*b[7] + a[7]*b[8],
		a[2]*b[6] + a[5]*b[7] + a[8]*b[8],
	}
}

// MulAssign sets m to m * other.
func (m *Matrix3[T]) MulAssign(other Matrix3[T]) {
	*m = m.Mul(other)
}

// MulScalar returns m with every element multiplied by s.
func (m Matrix3[T]) MulScalar(s T) Matrix3[T] {
	m.MulScalarAssign(s)
	return m
}

// MulScalarAssign multiplies every element of m by s.
func (m *Matrix3[T]) MulScalarAssign(s T) {
	for i := range m {
		m[i] *= s
	}
}

// MakeIdentity resets m to the identity matrix.
func (m *Matrix3[T]) MakeIdentity() {
	m[1], m[2], m[3] = 0, 0, 0
	m[5], m[6], m[7] = 0, 0, 0
	m[0], m[4], m[8] = 1, 1, 1
}

// IsIdentity returns true if the diagonal is one and every other element is
// zero, using the default tolerance for T.
func (m Matrix3[T]) IsIdentity() bool {
	if !scalar.IsEquals(m[0], 1) || !scalar.IsEquals(m[4], 1) || !scalar.IsEquals(m[8], 1) {
		return false
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j != i && !scalar.IsZero(m.At(i, j)) {
				return false
			}
		}
	}
	return true
}

// IsAffine returns true if the third column is (0, 0, 1) within the default
// tolerance for T.
func (m Matrix3[T]) IsAffine() bool {
	return scalar.IsZero(m[2]) && scalar.IsZero(m[5]) && scalar.IsEquals(m[8], 1)
}

// MakeInverse replaces m with its inverse when GetInverse succeeds and
// reports whether it did. On failure m is unchanged.
func (m *Matrix3[T]) MakeInverse() bool {
	var tmp Matrix3[T]
	if m.GetInverse(&tmp) {
		*m = tmp
		return true
	}
	return false
}

// GetInverse is the general 3x3 inverse hook. No general inverse is
// provided, so it always returns false and never writes to out.
// Use [Matrix3.InverseAffine] to invert affine transforms.
func (m Matrix3[T]) GetInverse(out *Matrix3[T]) bool {
	return false
}

// Determinant returns the determinant of the upper-left 2x2 linear block.
func (m Matrix3[T]) Determinant() T {
	return m[0]*m[4] - m[1]*m[3]
}

// InverseAffine returns the inverse of m treated as an affine transform:
// the 2x2 linear block is inverted and the translation corrected so that
// m.Mul(inv) is the identity. The third column of m is ignored and the
// result has (0, 0, 1) there.
//
// The computation is done in float64. The second result is false, and the
// identity is returned, when the determinant of the linear block is zero or
// at most scalar.RoundingError64 times the larger of |a*d| and |b*c|. The
// test is relative, so uniformly small scales still invert.
func (m Matrix3[T]) InverseAffine() (Matrix3[T], bool) {
	a, b := float64(m[0]), float64(m[1])
	c, d := float64(m[3]), float64(m[4])
	tx, ty := float64(m[6]), float64(m[7])

	ad, bc := a*d, b*c
	det := ad - bc
	if det == 0 || scalar.Abs(det) <= scalar.RoundingError64*scalar.Max(scalar.Abs(ad), scalar.Abs(bc)) {
		Logger().Debug("gmath: affine inverse of singular matrix", "det", det)
		return Identity3[T](), false
	}

	inv := 1 / det
	ia, ib := d*inv, -b*inv
	ic, id := -c*inv, a*inv

	return Matrix3[T]{
		T(ia), T(ib), 0,
		T(ic), T(id), 0,
		T(-(tx*ia + ty*ic)), T(-(tx*ib + ty*id)), 1,
	}, true
}

// MakeTransposed transposes m in place.
func (m *Matrix3[T]) MakeTransposed() {
	*m = m.Transposed()
}

// Transposed returns the transpose of m.
func (m Matrix3[T]) Transposed() Matrix3[T] {
	return Matrix3[T]{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// SetTranslation sets the translation row to v.
func (m *Matrix3[T]) SetTranslation(v Vec2[T]) {
	m[6] = v.X
	m[7] = v.Y
}

// Translation returns the translation row.
func (m Matrix3[T]) Translation() Vec2[T] {
	return Vec2[T]{X: m[6], Y: m[7]}
}

// SetRotation writes a rotation of angle radians into the linear block,
// replacing any scale or shear held there. Translation is unchanged.
func (m *Matrix3[T]) SetRotation(angle T) {
	sin, cos := math.Sincos(float64(angle))

	m[0] = T(cos)
	m[1] = T(-sin)

	m[3] = T(sin)
	m[4] = T(cos)
}

// Rotation returns the rotation angle in radians, normalized to [0, 2*pi).
//
// The angle is recovered from elements 3 and 0, each clamped to [-1, 1]
// first. It is exact only when the linear block is a pure rotation; a
// uniform scale below one is tolerated, while larger scales saturate the
// clamp.
func (m Matrix3[T]) Rotation() T {
	sin := scalar.Clamp(float64(m.At(1, 0)), -1, 1)
	cos := scalar.Clamp(float64(m.At(0, 0)), -1, 1)

	angle := math.Atan2(sin, cos)
	if angle < 0 {
		angle += 2 * math.Pi
	}
	return T(angle)
}

// PreScale multiplies elements 0, 3 and 6 by v.X and 1, 4 and 7 by v.Y.
// The result equals Scale(v.X, v.Y).Mul(m): points are transformed by m
// and then scaled, translation included.
func (m *Matrix3[T]) PreScale(v Vec2[T]) {
	m[0] *= v.X
	m[1] *= v.Y

	m[3] *= v.X
	m[4] *= v.Y

	m[6] *= v.X
	m[7] *= v.Y
}

// PostScale multiplies elements 0, 1 and 6 by v.X and 3, 4 and 7 by v.Y.
// For a matrix without translation the result equals
// m.Mul(Scale(v.X, v.Y)): points are scaled and then transformed by m.
// An existing translation is scaled by v as well.
func (m *Matrix3[T]) PostScale(v Vec2[T]) {
	m[0] *= v.X
	m[1] *= v.X

	m[3] *= v.Y
	m[4] *= v.Y

	m[6] *= v.X
	m[7] *= v.Y
}

// SetScale overwrites the diagonal of the linear block with v.
// Any rotation held in those elements is lost.
func (m *Matrix3[T]) SetScale(v Vec2[T]) {
	m[0] = v.X
	m[4] = v.Y
}

// Scale returns the lengths of the two basis axes of the linear block,
// (m[0], m[1]) and (m[3], m[4]). The result is exact for rotation combined
// with scale, but not under shear.
func (m Matrix3[T]) Scale() Vec2[T] {
	return Vec2[T]{
		X: Vec2[T]{X: m[0], Y: m[1]}.Length(),
		Y: Vec2[T]{X: m[3], Y: m[4]}.Length(),
	}
}

// TransformPoint applies the full transform, including translation, to p.
func (m Matrix3[T]) TransformPoint(p Vec2[T]) Vec2[T] {
	return Vec2[T]{
		X: p.X*m[0] + p.Y*m[3] + m[6],
		Y: p.X*m[1] + p.Y*m[4] + m[7],
	}
}

// TransformVector applies the linear block to v, ignoring translation.
func (m Matrix3[T]) TransformVector(v Vec2[T]) Vec2[T] {
	return Vec2[T]{
		X: v.X*m[0] + v.Y*m[3],
		Y: v.X*m[1] + v.Y*m[4],
	}
}
