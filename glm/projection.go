package glm

// Projection matrices. All are column-major and right-handed (the camera
// looks down -z) and map view depth to clip-space z in [0, 1]: near lands
// on 0 and far on 1. The ReverseZ variants swap near and far, so near lands
// on 1, which spreads float depth precision evenly over distance.
//
// Degenerate inputs (zero field of view, near == far, left == right) are
// not rejected; the divisions produce Inf and NaN elements.

// Perspective returns a perspective projection with vertical field of view
// fovY radians and the given width/height aspect ratio.
func Perspective[T Floats](fovY, aspect, near, far T) Mat4[T] {
	tanHalf := Tan(fovY / 2)

	var m Mat4[T]
	m[0][0] = 1 / (aspect * tanHalf)
	m[1][1] = 1 / tanHalf
	m[2][2] = far / (near - far)
	m[2][3] = -1
	m[3][2] = -(far * near) / (far - near)
	return m
}

// PerspectiveReverseZ is Perspective with near and far swapped.
func PerspectiveReverseZ[T Floats](fovY, aspect, near, far T) Mat4[T] {
	return Perspective(fovY, aspect, far, near)
}

// PerspectiveInfinite is the limit of Perspective as far goes to infinity.
func PerspectiveInfinite[T Floats](fovY, aspect, near T) Mat4[T] {
	tanHalf := Tan(fovY / 2)

	var m Mat4[T]
	m[0][0] = 1 / (aspect * tanHalf)
	m[1][1] = 1 / tanHalf
	m[2][2] = -1
	m[2][3] = -1
	m[3][2] = -near
	return m
}

// Orthographic returns a parallel projection of the given view box.
func Orthographic[T Floats](left, right, bottom, top, near, far T) Mat4[T] {
	m := Ident4[T]()
	m[0][0] = 2 / (right - left)
	m[1][1] = 2 / (top - bottom)
	m[2][2] = -1 / (far - near)
	m[3][0] = -(right + left) / (right - left)
	m[3][1] = -(top + bottom) / (top - bottom)
	m[3][2] = -near / (far - near)
	return m
}

// OrthographicReverseZ is Orthographic with near and far swapped.
func OrthographicReverseZ[T Floats](left, right, bottom, top, near, far T) Mat4[T] {
	return Orthographic(left, right, bottom, top, far, near)
}

// Frustum returns a perspective projection of the view frustum whose near
// plane spans [left, right]×[bottom, top].
func Frustum[T Floats](left, right, bottom, top, near, far T) Mat4[T] {
	var m Mat4[T]
	m[0][0] = 2 * near / (right - left)
	m[1][1] = 2 * near / (top - bottom)
	m[2][0] = (right + left) / (right - left)
	m[2][1] = (top + bottom) / (top - bottom)
	m[2][2] = far / (near - far)
	m[2][3] = -1
	m[3][2] = -(far * near) / (far - near)
	return m
}

// FrustumReverseZ is Frustum with near and far swapped in the depth terms
// only. The x and y scale still come from the near plane the edges were
// given on.
func FrustumReverseZ[T Floats](left, right, bottom, top, near, far T) Mat4[T] {
	m := Frustum(left, right, bottom, top, near, far)
	m[2][2] = near / (far - near)
	m[3][2] = (far * near) / (far - near)
	return m
}
