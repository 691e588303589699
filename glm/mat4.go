package glm

import (
	"iter"
	"strings"
)

// Mat4 is a 4×4 column-major matrix: m[j] is column j and m[j][i] is the
// element in row i, column j. Translations live in column 3.
type Mat4[T Floats] [4]Vec4[T]

// Mat4Scalar returns s on the diagonal and zero elsewhere.
func Mat4Scalar[T Floats](s T) Mat4[T] {
	return Mat4[T]{
		{s, 0, 0, 0},
		{0, s, 0, 0},
		{0, 0, s, 0},
		{0, 0, 0, s},
	}
}

// Ident4 returns the 4×4 identity matrix.
func Ident4[T Floats]() Mat4[T] {
	return Mat4Scalar[T](1)
}

// NewMat4 takes sixteen scalars column by column: the first four form
// column 0.
func NewMat4[T Floats](
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 T,
) Mat4[T] {
	return Mat4[T]{
		{m00, m01, m02, m03},
		{m10, m11, m12, m13},
		{m20, m21, m22, m23},
		{m30, m31, m32, m33},
	}
}

// Mat4FromCols builds a matrix from its columns.
func Mat4FromCols[T Floats](c0, c1, c2, c3 Vec4[T]) Mat4[T] {
	return Mat4[T]{c0, c1, c2, c3}
}

// Mat4FromMat3 embeds m in the upper-left block. The new row and column are
// those of the identity.
func Mat4FromMat3[T Floats](m Mat3[T]) Mat4[T] {
	return Mat4[T]{
		Vec4FromVec3(m[0], 0),
		Vec4FromVec3(m[1], 0),
		Vec4FromVec3(m[2], 0),
		{0, 0, 0, 1},
	}
}

// ConvertMat4 converts every element of m to T.
func ConvertMat4[T, U Floats](m Mat4[U]) Mat4[T] {
	var r Mat4[T]
	for j := range m {
		r[j] = ConvertVec4[T](m[j])
	}
	return r
}

// Col returns column j. It panics if j is out of range; use At for a checked
// access.
func (m Mat4[T]) Col(j int) Vec4[T] { return m[j] }

// SetCol returns a copy of m with column j replaced by v.
func (m Mat4[T]) SetCol(j int, v Vec4[T]) Mat4[T] {
	m[j] = v
	return m
}

// Row returns row i.
func (m Mat4[T]) Row(i int) Vec4[T] {
	return Vec4[T]{m[0][i], m[1][i], m[2][i], m[3][i]}
}

// SetRow returns a copy of m with row i replaced by v.
func (m Mat4[T]) SetRow(i int, v Vec4[T]) Mat4[T] {
	for j := range m {
		m[j][i] = v[j]
	}
	return m
}

// At returns column j, or an error matching ErrOutOfRange if j is not in
// [0, 4).
func (m Mat4[T]) At(j int) (Vec4[T], error) {
	if err := checkIndex("Mat4"+typeTag[T](), j, 4); err != nil {
		return Vec4[T]{}, err
	}
	return m[j], nil
}

// Cols returns an iterator over (index, column) pairs.
func (m Mat4[T]) Cols() iter.Seq2[int, Vec4[T]] {
	return func(yield func(int, Vec4[T]) bool) {
		for j, c := range m {
			if !yield(j, c) {
				return
			}
		}
	}
}

// Neg returns -m.
func (m Mat4[T]) Neg() Mat4[T] {
	for j := range m {
		m[j] = m[j].Neg()
	}
	return m
}

// Add returns m + o.
func (m Mat4[T]) Add(o Mat4[T]) Mat4[T] {
	for j := range m {
		m[j] = m[j].Add(o[j])
	}
	return m
}

// Sub returns m - o.
func (m Mat4[T]) Sub(o Mat4[T]) Mat4[T] {
	for j := range m {
		m[j] = m[j].Sub(o[j])
	}
	return m
}

// AddScalar adds s to every element.
func (m Mat4[T]) AddScalar(s T) Mat4[T] {
	for j := range m {
		m[j] = m[j].AddScalar(s)
	}
	return m
}

// SubScalar subtracts s from every element.
func (m Mat4[T]) SubScalar(s T) Mat4[T] {
	for j := range m {
		m[j] = m[j].SubScalar(s)
	}
	return m
}

// MulScalar multiplies every element by s.
func (m Mat4[T]) MulScalar(s T) Mat4[T] {
	for j := range m {
		m[j] = m[j].MulScalar(s)
	}
	return m
}

// DivScalar divides every element by s.
func (m Mat4[T]) DivScalar(s T) Mat4[T] {
	for j := range m {
		m[j] = m[j].DivScalar(s)
	}
	return m
}

// ScalarSub returns s - m elementwise.
func (m Mat4[T]) ScalarSub(s T) Mat4[T] {
	for j := range m {
		m[j] = m[j].ScalarSub(s)
	}
	return m
}

// ScalarDiv returns s / m elementwise.
func (m Mat4[T]) ScalarDiv(s T) Mat4[T] {
	for j := range m {
		m[j] = m[j].ScalarDiv(s)
	}
	return m
}

// MulVec returns m·v, treating v as a column vector.
func (m Mat4[T]) MulVec(v Vec4[T]) Vec4[T] {
	return Vec4[T]{
		m[0][0]*v[0] + m[1][0]*v[1] + m[2][0]*v[2] + m[3][0]*v[3],
		m[0][1]*v[0] + m[1][1]*v[1] + m[2][1]*v[2] + m[3][1]*v[3],
		m[0][2]*v[0] + m[1][2]*v[1] + m[2][2]*v[2] + m[3][2]*v[3],
		m[0][3]*v[0] + m[1][3]*v[1] + m[2][3]*v[2] + m[3][3]*v[3],
	}
}

// VecMul returns v·m, treating v as a row vector.
func (m Mat4[T]) VecMul(v Vec4[T]) Vec4[T] {
	return Vec4[T]{v.Dot(m[0]), v.Dot(m[1]), v.Dot(m[2]), v.Dot(m[3])}
}

// Mul returns the matrix product m·o.
func (m Mat4[T]) Mul(o Mat4[T]) Mat4[T] {
	var r Mat4[T]
	for j := range o {
		r[j] = m.MulVec(o[j])
	}
	return r
}

// MulPoint transforms the point p (w = 1) and drops w without a perspective
// divide.
func (m Mat4[T]) MulPoint(p Vec3[T]) Vec3[T] {
	return Vec3FromVec4(m.MulVec(Vec4FromVec3(p, 1)))
}

// MulDir transforms the direction d (w = 0).
func (m Mat4[T]) MulDir(d Vec3[T]) Vec3[T] {
	return Vec3FromVec4(m.MulVec(Vec4FromVec3(d, 0)))
}

// Transpose swaps rows and columns.
func (m Mat4[T]) Transpose() Mat4[T] {
	return Mat4[T]{m.Row(0), m.Row(1), m.Row(2), m.Row(3)}
}

// Determinant expands along the first column using the six 2×2 minors of
// the lower two columns.
func (m Mat4[T]) Determinant() T {
	s00 := m[2][2]*m[3][3] - m[3][2]*m[2][3]
	s01 := m[2][1]*m[3][3] - m[3][1]*m[2][3]
	s02 := m[2][1]*m[3][2] - m[3][1]*m[2][2]
	s03 := m[2][0]*m[3][3] - m[3][0]*m[2][3]
	s04 := m[2][0]*m[3][2] - m[3][0]*m[2][2]
	s05 := m[2][0]*m[3][1] - m[3][0]*m[2][1]

	c0 := m[1][1]*s00 - m[1][2]*s01 + m[1][3]*s02
	c1 := -(m[1][0]*s00 - m[1][2]*s03 + m[1][3]*s04)
	c2 := m[1][0]*s01 - m[1][1]*s03 + m[1][3]*s05
	c3 := -(m[1][0]*s02 - m[1][1]*s04 + m[1][2]*s05)

	return m[0][0]*c0 + m[0][1]*c1 + m[0][2]*c2 + m[0][3]*c3
}

// Inverse returns the adjugate divided by the determinant. A singular matrix
// yields Inf and NaN elements.
func (m Mat4[T]) Inverse() Mat4[T] {
	coef00 := m[2][2]*m[3][3] - m[3][2]*m[2][3]
	coef02 := m[1][2]*m[3][3] - m[3][2]*m[1][3]
	coef03 := m[1][2]*m[2][3] - m[2][2]*m[1][3]

	coef04 := m[2][1]*m[3][3] - m[3][1]*m[2][3]
	coef06 := m[1][1]*m[3][3] - m[3][1]*m[1][3]
	coef07 := m[1][1]*m[2][3] - m[2][1]*m[1][3]

	coef08 := m[2][1]*m[3][2] - m[3][1]*m[2][2]
	coef10 := m[1][1]*m[3][2] - m[3][1]*m[1][2]
	coef11 := m[1][1]*m[2][2] - m[2][1]*m[1][2]

	coef12 := m[2][0]*m[3][3] - m[3][0]*m[2][3]
	coef14 := m[1][0]*m[3][3] - m[3][0]*m[1][3]
	coef15 := m[1][0]*m[2][3] - m[2][0]*m[1][3]

	coef16 := m[2][0]*m[3][2] - m[3][0]*m[2][2]
	coef18 := m[1][0]*m[3][2] - m[3][0]*m[1][2]
	coef19 := m[1][0]*m[2][2] - m[2][0]*m[1][2]

	coef20 := m[2][0]*m[3][1] - m[3][0]*m[2][1]
	coef22 := m[1][0]*m[3][1] - m[3][0]*m[1][1]
	coef23 := m[1][0]*m[2][1] - m[2][0]*m[1][1]

	fac0 := Vec4[T]{coef00, coef00, coef02, coef03}
	fac1 := Vec4[T]{coef04, coef04, coef06, coef07}
	fac2 := Vec4[T]{coef08, coef08, coef10, coef11}
	fac3 := Vec4[T]{coef12, coef12, coef14, coef15}
	fac4 := Vec4[T]{coef16, coef16, coef18, coef19}
	fac5 := Vec4[T]{coef20, coef20, coef22, coef23}

	v0 := Vec4[T]{m[1][0], m[0][0], m[0][0], m[0][0]}
	v1 := Vec4[T]{m[1][1], m[0][1], m[0][1], m[0][1]}
	v2 := Vec4[T]{m[1][2], m[0][2], m[0][2], m[0][2]}
	v3 := Vec4[T]{m[1][3], m[0][3], m[0][3], m[0][3]}

	inv0 := v1.Mul(fac0).Sub(v2.Mul(fac1)).Add(v3.Mul(fac2))
	inv1 := v0.Mul(fac0).Sub(v2.Mul(fac3)).Add(v3.Mul(fac4))
	inv2 := v0.Mul(fac1).Sub(v1.Mul(fac3)).Add(v3.Mul(fac5))
	inv3 := v0.Mul(fac2).Sub(v1.Mul(fac4)).Add(v2.Mul(fac5))

	signA := Vec4[T]{1, -1, 1, -1}
	signB := Vec4[T]{-1, 1, -1, 1}
	r := Mat4[T]{inv0.Mul(signA), inv1.Mul(signB), inv2.Mul(signA), inv3.Mul(signB)}

	row0 := Vec4[T]{r[0][0], r[1][0], r[2][0], r[3][0]}
	det := m[0].Dot(row0)
	return r.MulScalar(1 / det)
}

// EqualEpsilon reports whether every element of m is within eps of o.
func (m Mat4[T]) EqualEpsilon(o Mat4[T], eps T) bool {
	for j := range m {
		if !m[j].EqualEpsilon(o[j], eps).All() {
			return false
		}
	}
	return true
}

// String returns the matrix as "Mat4f((c00, ...), (c10, ...), ...)", one
// parenthesized group per column.
func (m Mat4[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Mat4")
	sb.WriteString(typeTag[T]())
	writeColumns(&sb, m[0][:], m[1][:], m[2][:], m[3][:])
	return sb.String()
}
