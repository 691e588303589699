package glm

// Affine transform builders. Each one post-multiplies: the returned matrix
// applies the new transform first and then m, matching m·T.

// Translate returns m·T(v), where T(v) translates by v.
func Translate[T Floats](m Mat4[T], v Vec3[T]) Mat4[T] {
	m[3] = m[0].MulScalar(v[0]).
		Add(m[1].MulScalar(v[1])).
		Add(m[2].MulScalar(v[2])).
		Add(m[3])
	return m
}

// Scale returns m·S(v), where S(v) scales each axis by the matching
// component of v.
func Scale[T Floats](m Mat4[T], v Vec3[T]) Mat4[T] {
	m[0] = m[0].MulScalar(v[0])
	m[1] = m[1].MulScalar(v[1])
	m[2] = m[2].MulScalar(v[2])
	return m
}

// Rotate returns m·R, where R rotates by angle radians about axis. The axis
// is normalized first; a zero axis yields NaN.
func Rotate[T Floats](m Mat4[T], angle T, axis Vec3[T]) Mat4[T] {
	c, s := Cos(angle), Sin(angle)
	a := axis.Normalize()
	tmp := a.MulScalar(1 - c)

	r := Mat3[T]{
		{c + tmp[0]*a[0], tmp[0]*a[1] + s*a[2], tmp[0]*a[2] - s*a[1]},
		{tmp[1]*a[0] - s*a[2], c + tmp[1]*a[1], tmp[1]*a[2] + s*a[0]},
		{tmp[2]*a[0] + s*a[1], tmp[2]*a[1] - s*a[0], c + tmp[2]*a[2]},
	}

	var out Mat4[T]
	for j := range 3 {
		out[j] = m[0].MulScalar(r[j][0]).
			Add(m[1].MulScalar(r[j][1])).
			Add(m[2].MulScalar(r[j][2]))
	}
	out[3] = m[3]
	return out
}

// RotateQuat returns q·AngleAxis(angle, axis). The axis is normalized when
// its length is off from one by more than 0.001.
func RotateQuat[T Floats](q Quat[T], angle T, axis Vec3[T]) Quat[T] {
	l := axis.Length()
	if Abs(l-1) > 0.001 {
		axis = axis.MulScalar(1 / l)
	}
	return q.Mul(AngleAxis(angle, axis))
}

// LookAt returns a right-handed view matrix placing the camera at eye,
// looking at center, with up as the approximate up direction.
func LookAt[T Floats](eye, center, up Vec3[T]) Mat4[T] {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)

	return Mat4[T]{
		{s[0], u[0], -f[0], 0},
		{s[1], u[1], -f[1], 0},
		{s[2], u[2], -f[2], 0},
		{-s.Dot(eye), -u.Dot(eye), f.Dot(eye), 1},
	}
}
