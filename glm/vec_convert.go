package glm

// Cross-arity constructors. Composition appends trailing scalars to a
// smaller vector; truncation drops the trailing components.

// Vec3FromVec2 returns (v.x, v.y, z).
func Vec3FromVec2[T Numbers](v Vec2[T], z T) Vec3[T] {
	return Vec3[T]{v[0], v[1], z}
}

// Vec4FromVec3 returns (v.x, v.y, v.z, w).
func Vec4FromVec3[T Numbers](v Vec3[T], w T) Vec4[T] {
	return Vec4[T]{v[0], v[1], v[2], w}
}

// Vec4FromVec2 returns (v.x, v.y, z, w).
func Vec4FromVec2[T Numbers](v Vec2[T], z, w T) Vec4[T] {
	return Vec4[T]{v[0], v[1], z, w}
}

// Vec4FromVec2s returns (a.x, a.y, b.x, b.y).
func Vec4FromVec2s[T Numbers](a, b Vec2[T]) Vec4[T] {
	return Vec4[T]{a[0], a[1], b[0], b[1]}
}

// Vec2FromVec3 returns (v.x, v.y).
func Vec2FromVec3[T Numbers](v Vec3[T]) Vec2[T] {
	return Vec2[T]{v[0], v[1]}
}

// Vec2FromVec4 returns (v.x, v.y).
func Vec2FromVec4[T Numbers](v Vec4[T]) Vec2[T] {
	return Vec2[T]{v[0], v[1]}
}

// Vec3FromVec4 returns (v.x, v.y, v.z).
func Vec3FromVec4[T Numbers](v Vec4[T]) Vec3[T] {
	return Vec3[T]{v[0], v[1], v[2]}
}

// Cross returns the right-handed cross product v × o. Parallel or zero
// inputs give the zero vector.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*o[2] - o[1]*v[2],
		v[2]*o[0] - o[2]*v[0],
		v[0]*o[1] - o[0]*v[1],
	}
}

// Cross is the function form of Vec3.Cross.
func Cross[T Numbers](a, b Vec3[T]) Vec3[T] {
	return a.Cross(b)
}

// OuterProduct3 returns the 3×3 matrix whose column j is a·b[j].
func OuterProduct3[T Floats](a, b Vec3[T]) Mat3[T] {
	var m Mat3[T]
	for j := range m {
		m[j] = a.MulScalar(b[j])
	}
	return m
}

// OuterProduct4 returns the 4×4 matrix whose column j is a·b[j].
func OuterProduct4[T Floats](a, b Vec4[T]) Mat4[T] {
	var m Mat4[T]
	for j := range m {
		m[j] = a.MulScalar(b[j])
	}
	return m
}
