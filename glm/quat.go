package glm

import (
	"fmt"
	"iter"
	"strings"
)

// Quat is a quaternion w + xi + yj + zk. Fields are stored w first, and
// every constructor and indexed accessor uses the same w, x, y, z order.
// Unit quaternions represent rotations.
type Quat[T Floats] struct {
	W, X, Y, Z T
}

// NewQuat returns w + xi + yj + zk.
func NewQuat[T Floats](w, x, y, z T) Quat[T] {
	return Quat[T]{W: w, X: x, Y: y, Z: z}
}

// QuatFromParts returns the quaternion with scalar part w and vector part v.
func QuatFromParts[T Floats](w T, v Vec3[T]) Quat[T] {
	return Quat[T]{W: w, X: v[0], Y: v[1], Z: v[2]}
}

// IdentQuat returns the identity rotation (1, 0, 0, 0).
func IdentQuat[T Floats]() Quat[T] {
	return Quat[T]{W: 1}
}

// ConvertQuat converts every component of q to T.
func ConvertQuat[T, U Floats](q Quat[U]) Quat[T] {
	return Quat[T]{W: T(q.W), X: T(q.X), Y: T(q.Y), Z: T(q.Z)}
}

// Vec returns the vector part (x, y, z).
func (q Quat[T]) Vec() Vec3[T] {
	return Vec3[T]{q.X, q.Y, q.Z}
}

// At returns component i in w, x, y, z order, or an error matching
// ErrOutOfRange if i is not in [0, 4).
func (q Quat[T]) At(i int) (T, error) {
	if err := checkIndex("Quat"+typeTag[T](), i, 4); err != nil {
		return 0, err
	}
	return q.array()[i], nil
}

// All returns an iterator over (index, component) pairs in w, x, y, z order.
func (q Quat[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, c := range q.array() {
			if !yield(i, c) {
				return
			}
		}
	}
}

func (q Quat[T]) array() [4]T {
	return [4]T{q.W, q.X, q.Y, q.Z}
}

// Add returns the componentwise sum q + o.
func (q Quat[T]) Add(o Quat[T]) Quat[T] {
	return Quat[T]{q.W + o.W, q.X + o.X, q.Y + o.Y, q.Z + o.Z}
}

// Sub returns the componentwise difference q - o.
func (q Quat[T]) Sub(o Quat[T]) Quat[T] {
	return Quat[T]{q.W - o.W, q.X - o.X, q.Y - o.Y, q.Z - o.Z}
}

// Neg returns -q, which represents the same rotation as q.
func (q Quat[T]) Neg() Quat[T] {
	return Quat[T]{-q.W, -q.X, -q.Y, -q.Z}
}

// MulScalar multiplies every component by s.
func (q Quat[T]) MulScalar(s T) Quat[T] {
	return Quat[T]{q.W * s, q.X * s, q.Y * s, q.Z * s}
}

// DivScalar divides every component by s.
func (q Quat[T]) DivScalar(s T) Quat[T] {
	return Quat[T]{q.W / s, q.X / s, q.Y / s, q.Z / s}
}

// Mul returns the Hamilton product q·o. As rotations, the result applies o
// first and then q.
func (q Quat[T]) Mul(o Quat[T]) Quat[T] {
	return Quat[T]{
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y + q.Y*o.W + q.Z*o.X - q.X*o.Z,
		Z: q.W*o.Z + q.Z*o.W + q.X*o.Y - q.Y*o.X,
	}
}

// Rotate returns q·v·q⁻¹ for unit q, computed without building the
// conjugate.
func (q Quat[T]) Rotate(v Vec3[T]) Vec3[T] {
	qv := q.Vec()
	uv := qv.Cross(v)
	uuv := qv.Cross(uv)
	return v.Add(uv.MulScalar(q.W).Add(uuv).MulScalar(2))
}

// RotateVec4 rotates the xyz part of v and keeps w.
func (q Quat[T]) RotateVec4(v Vec4[T]) Vec4[T] {
	return Vec4FromVec3(q.Rotate(Vec3FromVec4(v)), v[3])
}

// InverseRotate is the row-vector form v·q, which applies the inverse
// rotation: it equals q.Inverse().Rotate(v).
func (q Quat[T]) InverseRotate(v Vec3[T]) Vec3[T] {
	return q.Inverse().Rotate(v)
}

// Conjugate negates the vector part.
func (q Quat[T]) Conjugate() Quat[T] {
	return Quat[T]{q.W, -q.X, -q.Y, -q.Z}
}

// Inverse returns Conjugate(q) / Dot(q, q). The zero quaternion yields NaN.
func (q Quat[T]) Inverse() Quat[T] {
	return q.Conjugate().DivScalar(q.Dot(q))
}

// Dot returns the four-dimensional dot product.
func (q Quat[T]) Dot(o Quat[T]) T {
	return q.W*o.W + q.X*o.X + q.Y*o.Y + q.Z*o.Z
}

// Length returns Sqrt(Dot(q, q)).
func (q Quat[T]) Length() T {
	return Sqrt(q.Dot(q))
}

// Normalize returns q scaled to unit length. Unlike vectors, a zero
// quaternion normalizes to the identity.
func (q Quat[T]) Normalize() Quat[T] {
	l := q.Length()
	if l <= 0 {
		return IdentQuat[T]()
	}
	return q.MulScalar(1 / l)
}

// Sqrt returns the principal square root r with r·r = q and r.W >= 0. For a
// negative real q the root is taken along the x axis.
func (q Quat[T]) Sqrt() Quat[T] {
	r := q.Length()
	d := r + q.W
	if d <= 0 {
		return Quat[T]{X: Sqrt(r)}
	}
	s := Sqrt(2 * d)
	return Quat[T]{W: d / s, X: q.X / s, Y: q.Y / s, Z: q.Z / s}
}

// Cross returns the quaternion cross product, built from the scalar and
// vector parts: (w1·w2 - v1·v2, w1·v2 + w2·v1 + v1×v2). On unit quaternions
// it agrees with Mul; Cross(0, q) is zero.
func (q Quat[T]) Cross(o Quat[T]) Quat[T] {
	v1, v2 := q.Vec(), o.Vec()
	return QuatFromParts(
		q.W*o.W-v1.Dot(v2),
		v2.MulScalar(q.W).Add(v1.MulScalar(o.W)).Add(v1.Cross(v2)),
	)
}

// Angle returns the rotation angle of unit q in radians, in [0, 2π].
func (q Quat[T]) Angle() T {
	// Near w = ±1 ACos loses precision, so go through the vector part.
	const cosHalf = 0.877582561890372716130286068203503191
	if Abs(q.W) > cosHalf {
		a := ASin(Sqrt(q.X*q.X+q.Y*q.Y+q.Z*q.Z)) * 2
		if q.W < 0 {
			return Pi[T]()*2 - a
		}
		return a
	}
	return ACos(q.W) * 2
}

// Axis returns the rotation axis of unit q. A rotation by zero has no
// axis and returns +Z.
func (q Quat[T]) Axis() Vec3[T] {
	t := 1 - q.W*q.W
	if t <= 0 {
		return Vec3[T]{0, 0, 1}
	}
	inv := 1 / Sqrt(t)
	return q.Vec().MulScalar(inv)
}

// Lerp blends q and o linearly and re-normalizes the result.
func (q Quat[T]) Lerp(o Quat[T], t T) Quat[T] {
	return q.Mix(o, t).Normalize()
}

// Mix is the plain componentwise blend q·(1-t) + o·t.
func (q Quat[T]) Mix(o Quat[T], t T) Quat[T] {
	return q.MulScalar(1 - t).Add(o.MulScalar(t))
}

// SLerp interpolates along the shorter great arc between q and o. When the
// quaternions are nearly parallel it falls back to Mix.
func (q Quat[T]) SLerp(o Quat[T], t T) Quat[T] {
	z, cosTheta := q.shortArc(o)
	if cosTheta > 1-Epsilon[T]() {
		return q.Mix(z, t)
	}
	angle := ACos(cosTheta)
	return q.MulScalar(Sin((1 - t) * angle)).
		Add(z.MulScalar(Sin(t * angle))).
		DivScalar(Sin(angle))
}

// SLerpSpin is SLerp with spin extra half-turns of the interpolation phase:
// spin = 0 matches SLerp and each unit adds π to the swept angle, so an
// even spin adds full revolutions.
func (q Quat[T]) SLerpSpin(o Quat[T], t T, spin int) Quat[T] {
	z, cosTheta := q.shortArc(o)
	if cosTheta > 1-Epsilon[T]() {
		return q.Mix(z, t)
	}
	angle := ACos(cosTheta)
	phi := angle + T(spin)*Pi[T]()
	return q.MulScalar(Sin(angle - t*phi)).
		Add(z.MulScalar(Sin(t * phi))).
		DivScalar(Sin(angle))
}

// shortArc returns o, negated if needed so that its dot product with q is
// non-negative, and that dot product.
func (q Quat[T]) shortArc(o Quat[T]) (Quat[T], T) {
	c := q.Dot(o)
	if c < 0 {
		return o.Neg(), -c
	}
	return o, c
}

// EqualEpsilon reports whether every component of q is within eps of o.
func (q Quat[T]) EqualEpsilon(o Quat[T], eps T) bool {
	return Abs(q.W-o.W) <= eps && Abs(q.X-o.X) <= eps &&
		Abs(q.Y-o.Y) <= eps && Abs(q.Z-o.Z) <= eps
}

// String returns the quaternion as "Quatf(w, {x, y, z})".
func (q Quat[T]) String() string {
	var sb strings.Builder
	sb.WriteString("Quat")
	sb.WriteString(typeTag[T]())
	fmt.Fprintf(&sb, "(%v, {", q.W)
	writeComponents(&sb, []T{q.X, q.Y, q.Z})
	sb.WriteString("})")
	return sb.String()
}

// AngleAxis returns the rotation of angle radians about the unit vector
// axis.
func AngleAxis[T Floats](angle T, axis Vec3[T]) Quat[T] {
	s := Sin(angle * 0.5)
	return QuatFromParts(Cos(angle*0.5), axis.MulScalar(s))
}

// QuatBetween returns the shortest-arc rotation taking the direction of u
// to the direction of v. Opposite vectors rotate by π about an arbitrary
// axis orthogonal to u.
func QuatBetween[T Floats](u, v Vec3[T]) Quat[T] {
	normUV := Sqrt(u.Dot(u) * v.Dot(v))
	re := normUV + u.Dot(v)
	var t Vec3[T]
	if re < 1e-6*normUV {
		re = 0
		if Abs(u[0]) > Abs(u[2]) {
			t = Vec3[T]{-u[1], u[0], 0}
		} else {
			t = Vec3[T]{0, -u[2], u[1]}
		}
	} else {
		t = u.Cross(v)
	}
	return QuatFromParts(re, t).Normalize()
}
