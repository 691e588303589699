package glm

import (
	"iter"
	"strings"
)

// Mat3 is a 3×3 column-major matrix: m[j] is column j and m[j][i] is the
// element in row i, column j.
type Mat3[T Floats] [3]Vec3[T]

// Mat3Scalar returns s on the diagonal and zero elsewhere.
func Mat3Scalar[T Floats](s T) Mat3[T] {
	return Mat3[T]{
		{s, 0, 0},
		{0, s, 0},
		{0, 0, s},
	}
}

// Ident3 returns the 3×3 identity matrix.
func Ident3[T Floats]() Mat3[T] {
	return Mat3Scalar[T](1)
}

// NewMat3 takes nine scalars column by column: the first three form
// column 0. The argument names are column-then-row.
func NewMat3[T Floats](
	m00, m01, m02,
	m10, m11, m12,
	m20, m21, m22 T,
) Mat3[T] {
	return Mat3[T]{
		{m00, m01, m02},
		{m10, m11, m12},
		{m20, m21, m22},
	}
}

// Mat3FromCols builds a matrix from its columns.
func Mat3FromCols[T Floats](c0, c1, c2 Vec3[T]) Mat3[T] {
	return Mat3[T]{c0, c1, c2}
}

// Mat3FromMat4 keeps the upper-left 3×3 block of m.
func Mat3FromMat4[T Floats](m Mat4[T]) Mat3[T] {
	return Mat3[T]{
		Vec3FromVec4(m[0]),
		Vec3FromVec4(m[1]),
		Vec3FromVec4(m[2]),
	}
}

// ConvertMat3 converts every element of m to T.
func ConvertMat3[T, U Floats](m Mat3[U]) Mat3[T] {
	var r Mat3[T]
	for j := range m {
		r[j] = ConvertVec3[T](m[j])
	}
	return r
}

// Col returns column j. It panics if j is out of range; use At for a checked
// access.
func (m Mat3[T]) Col(j int) Vec3[T] { return m[j] }

// SetCol returns a copy of m with column j replaced by v.
func (m Mat3[T]) SetCol(j int, v Vec3[T]) Mat3[T] {
	m[j] = v
	return m
}

// Row returns row i.
func (m Mat3[T]) Row(i int) Vec3[T] {
	return Vec3[T]{m[0][i], m[1][i], m[2][i]}
}

// SetRow returns a copy of m with row i replaced by v.
func (m Mat3[T]) SetRow(i int, v Vec3[T]) Mat3[T] {
	for j := range m {
		m[j][i] = v[j]
	}
	return m
}

// At returns column j, or an error matching ErrOutOfRange if j is not in
// [0, 3).
func (m Mat3[T]) At(j int) (Vec3[T], error) {
	if err := checkIndex("Mat3"+typeTag[T](), j, 3); err != nil {
		return Vec3[T]{}, err
	}
	return m[j], nil
}

// Cols returns an iterator over (index, column) pairs.
func (m Mat3[T]) Cols() iter.Seq2[int, Vec3[T]] {
	return func(yield func(int, Vec3[T]) bool) {
		for j, c := range m {
			if !yield(j, c) {
				return
			}
		}
	}
}

// Neg returns -m.
func (m Mat3[T]) Neg() Mat3[T] {
	for j := range m {
		m[j] = m[j].Neg()
	}
	return m
}

// Add returns m + o.
func (m Mat3[T]) Add(o Mat3[T]) Mat3[T] {
	for j := range m {
		m[j] = m[j].Add(o[j])
	}
	return m
}

// Sub returns m - o.
func (m Mat3[T]) Sub(o Mat3[T]) Mat3[T] {
	for j := range m {
		m[j] = m[j].Sub(o[j])
	}
	return m
}

// AddScalar adds s to every element.
func (m Mat3[T]) AddScalar(s T) Mat3[T] {
	for j := range m {
		m[j] = m[j].AddScalar(s)
	}
	return m
}

// SubScalar subtracts s from every element.
func (m Mat3[T]) SubScalar(s T) Mat3[T] {
	for j := range m {
		m[j] = m[j].SubScalar(s)
	}
	return m
}

// MulScalar multiplies every element by s.
func (m Mat3[T]) MulScalar(s T) Mat3[T] {
	for j := range m {
		m[j] = m[j].MulScalar(s)
	}
	return m
}

// DivScalar divides every element by s.
func (m Mat3[T]) DivScalar(s T) Mat3[T] {
	for j := range m {
		m[j] = m[j].DivScalar(s)
	}
	return m
}

// ScalarSub returns s - m elementwise.
func (m Mat3[T]) ScalarSub(s T) Mat3[T] {
	for j := range m {
		m[j] = m[j].ScalarSub(s)
	}
	return m
}

// ScalarDiv returns s / m elementwise.
func (m Mat3[T]) ScalarDiv(s T) Mat3[T] {
	for j := range m {
		m[j] = m[j].ScalarDiv(s)
	}
	return m
}

// MulVec returns m·v, treating v as a column vector:
// r[i] = Σj m[j][i]·v[j].
func (m Mat3[T]) MulVec(v Vec3[T]) Vec3[T] {
	return Vec3[T]{
		m[0][0]*v[0] + m[1][0]*v[1] + m[2][0]*v[2],
		m[0][1]*v[0] + m[1][1]*v[1] + m[2][1]*v[2],
		m[0][2]*v[0] + m[1][2]*v[1] + m[2][2]*v[2],
	}
}

// VecMul returns v·m, treating v as a row vector: r[j] = Dot(v, m[j]).
func (m Mat3[T]) VecMul(v Vec3[T]) Vec3[T] {
	return Vec3[T]{v.Dot(m[0]), v.Dot(m[1]), v.Dot(m[2])}
}

// Mul returns the matrix product m·o.
func (m Mat3[T]) Mul(o Mat3[T]) Mat3[T] {
	var r Mat3[T]
	for j := range o {
		r[j] = m.MulVec(o[j])
	}
	return r
}

// Transpose swaps rows and columns.
func (m Mat3[T]) Transpose() Mat3[T] {
	return Mat3[T]{m.Row(0), m.Row(1), m.Row(2)}
}

// Determinant returns the determinant by cofactor expansion along the first
// column.
func (m Mat3[T]) Determinant() T {
	return m[0][0]*(m[1][1]*m[2][2]-m[2][1]*m[1][2]) -
		m[1][0]*(m[0][1]*m[2][2]-m[2][1]*m[0][2]) +
		m[2][0]*(m[0][1]*m[1][2]-m[1][1]*m[0][2])
}

// Inverse returns the adjugate divided by the determinant. A singular matrix
// yields Inf and NaN elements.
func (m Mat3[T]) Inverse() Mat3[T] {
	inv := 1 / m.Determinant()
	return Mat3[T]{
		{
			(m[1][1]*m[2][2] - m[2][1]*m[1][2]) * inv,
			-(m[0][1]*m[2][2] - m[2][1]*m[0][2]) * inv,
			(m[0][1]*m[1][2] - m[1][1]*m[0][2]) * inv,
		},
		{
			-(m[1][0]*m[2][2] - m[2][0]*m[1][2]) * inv,
			(m[0][0]*m[2][2] - m[2][0]*m[0][2]) * inv,
			-(m[0][0]*m[1][2] - m[1][0]*m[0][2]) * inv,
		},
		{
			(m[1][0]*m[2][1] - m[2][0]*m[1][1]) * inv,
			-(m[0][0]*m[2][1] - m[2][0]*m[0][1]) * inv,
			(m[0][0]*m[1][1] - m[1][0]*m[0][1]) * inv,
		},
	}
}

// EqualEpsilon reports whether every element of m is within eps of o.
func (m Mat3[T]) EqualEpsilon(o Mat3[T], eps T) bool {
	for j := range m {
		if !m[j].EqualEpsilon(o[j], eps).All() {
			return false
		}
	}
	return true
}

// String returns the matrix as "Mat3f((c00, c01, c02), (c10, ...), ...)",
// one parenthesized group per column.
func (m Mat3[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Mat3")
	sb.WriteString(typeTag[T]())
	writeColumns(&sb, m[0][:], m[1][:], m[2][:])
	return sb.String()
}

// writeColumns writes "((c0...), (c1...), ...)" to sb.
func writeColumns[T Numbers](sb *strings.Builder, cols ...[]T) {
	sb.WriteByte('(')
	for j, c := range cols {
		if j > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('(')
		writeComponents(sb, c)
		sb.WriteByte(')')
	}
	sb.WriteByte(')')
}
