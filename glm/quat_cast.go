package glm

// Conversions between quaternions, rotation matrices and Euler angles.

// Mat3Cast returns the rotation matrix of unit q.
func (q Quat[T]) Mat3Cast() Mat3[T] {
	qxx, qyy, qzz := q.X*q.X, q.Y*q.Y, q.Z*q.Z
	qxz, qxy, qyz := q.X*q.Z, q.X*q.Y, q.Y*q.Z
	qwx, qwy, qwz := q.W*q.X, q.W*q.Y, q.W*q.Z

	return Mat3[T]{
		{1 - 2*(qyy+qzz), 2 * (qxy + qwz), 2 * (qxz - qwy)},
		{2 * (qxy - qwz), 1 - 2*(qxx+qzz), 2 * (qyz + qwx)},
		{2 * (qxz + qwy), 2 * (qyz - qwx), 1 - 2*(qxx+qyy)},
	}
}

// Mat4Cast returns the rotation matrix of unit q embedded in a 4×4 matrix.
func (q Quat[T]) Mat4Cast() Mat4[T] {
	return Mat4FromMat3(q.Mat3Cast())
}

// shepperdBranch names the component that dominates a rotation matrix's
// quaternion, which decides the formula used to extract the other three.
type shepperdBranch uint8

const (
	shepperdW shepperdBranch = iota // trace dominates
	shepperdX
	shepperdY
	shepperdZ
)

// shepperdSelect returns the dominant branch of m and 4c²-1 for its
// component c.
func shepperdSelect[T Floats](m Mat3[T]) (shepperdBranch, T) {
	fourW := m[0][0] + m[1][1] + m[2][2]
	fourX := m[0][0] - m[1][1] - m[2][2]
	fourY := m[1][1] - m[0][0] - m[2][2]
	fourZ := m[2][2] - m[0][0] - m[1][1]

	branch, biggest := shepperdW, fourW
	if fourX > biggest {
		branch, biggest = shepperdX, fourX
	}
	if fourY > biggest {
		branch, biggest = shepperdY, fourY
	}
	if fourZ > biggest {
		branch, biggest = shepperdZ, fourZ
	}
	return branch, biggest
}

// QuaternionCast extracts the unit quaternion of the rotation matrix m with
// Shepperd's method: the largest of |w|, |x|, |y|, |z| is recovered from the
// diagonal and the others from off-diagonal sums, so the division is never
// by a small number.
func QuaternionCast[T Floats](m Mat3[T]) Quat[T] {
	branch, biggest := shepperdSelect(m)
	v := Sqrt(biggest+1) * 0.5
	mult := 0.25 / v

	switch branch {
	case shepperdX:
		return Quat[T]{
			W: (m[1][2] - m[2][1]) * mult,
			X: v,
			Y: (m[0][1] + m[1][0]) * mult,
			Z: (m[2][0] + m[0][2]) * mult,
		}
	case shepperdY:
		return Quat[T]{
			W: (m[2][0] - m[0][2]) * mult,
			X: (m[0][1] + m[1][0]) * mult,
			Y: v,
			Z: (m[1][2] + m[2][1]) * mult,
		}
	case shepperdZ:
		return Quat[T]{
			W: (m[0][1] - m[1][0]) * mult,
			X: (m[2][0] + m[0][2]) * mult,
			Y: (m[1][2] + m[2][1]) * mult,
			Z: v,
		}
	default:
		return Quat[T]{
			W: v,
			X: (m[1][2] - m[2][1]) * mult,
			Y: (m[2][0] - m[0][2]) * mult,
			Z: (m[0][1] - m[1][0]) * mult,
		}
	}
}

// QuaternionCast4 extracts the rotation quaternion of the upper-left 3×3
// block of m.
func QuaternionCast4[T Floats](m Mat4[T]) Quat[T] {
	return QuaternionCast(Mat3FromMat4(m))
}

// EulerAngles returns (Pitch(q), Yaw(q), Roll(q)) in radians.
func (q Quat[T]) EulerAngles() Vec3[T] {
	return Vec3[T]{q.Pitch(), q.Yaw(), q.Roll()}
}

// Roll returns the rotation about the z axis.
func (q Quat[T]) Roll() T {
	y := 2 * (q.X*q.Y + q.W*q.Z)
	x := q.W*q.W + q.X*q.X - q.Y*q.Y - q.Z*q.Z
	if nearZero2(x, y) {
		return 0
	}
	return ATan2(y, x)
}

// Pitch returns the rotation about the x axis.
func (q Quat[T]) Pitch() T {
	y := 2 * (q.Y*q.Z + q.W*q.X)
	x := q.W*q.W - q.X*q.X - q.Y*q.Y + q.Z*q.Z
	if nearZero2(x, y) {
		// Gimbal lock: recover pitch from the x and w components alone.
		return 2 * ATan2(q.X, q.W)
	}
	return ATan2(y, x)
}

// Yaw returns the rotation about the y axis.
func (q Quat[T]) Yaw() T {
	return ASin(Clamp(-2*(q.X*q.Z-q.W*q.Y), -1, 1))
}

func nearZero2[T Floats](x, y T) bool {
	eps := Epsilon[T]()
	return Abs(x) <= eps && Abs(y) <= eps
}

// QuatFromEuler builds a quaternion from (pitch, yaw, roll) radians, the
// inverse of EulerAngles away from gimbal lock.
func QuatFromEuler[T Floats](euler Vec3[T]) Quat[T] {
	half := euler.MulScalar(0.5)
	c := half.Map(Cos[T])
	s := half.Map(Sin[T])
	return Quat[T]{
		W: c[0]*c[1]*c[2] + s[0]*s[1]*s[2],
		X: s[0]*c[1]*c[2] - c[0]*s[1]*s[2],
		Y: c[0]*s[1]*c[2] + s[0]*c[1]*s[2],
		Z: c[0]*c[1]*s[2] - s[0]*s[1]*c[2],
	}
}
