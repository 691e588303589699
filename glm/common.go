package glm

import "math"

// Epsilon returns the machine epsilon of T: 2^-23 for float32 and 2^-52 for
// float64.
func Epsilon[T Floats]() T {
	if isFloat32[T]() {
		return T(0x1p-23)
	}
	return T(0x1p-52)
}

// isFloat32 reports whether T is a 4-byte float, including named types.
func isFloat32[T Floats]() bool {
	// float32(1+2^-30) rounds back to 1, float64 keeps it.
	var x T = 1
	x += 0x1p-30
	return x == 1
}

// Pi returns π rounded to T.
func Pi[T Floats]() T {
	return T(math.Pi)
}

// Radians converts degrees to radians.
func Radians[T Floats](degrees T) T {
	return degrees * T(math.Pi/180)
}

// Degrees converts radians to degrees.
func Degrees[T Floats](radians T) T {
	return radians * T(180/math.Pi)
}

// IsNaN reports whether x is a NaN.
func IsNaN[T Floats](x T) bool {
	return x != x
}

// IsInf reports whether x is an infinity of the given sign: sign > 0 checks
// +Inf, sign < 0 checks -Inf, sign == 0 checks either.
func IsInf[T Floats](x T, sign int) bool {
	return math.IsInf(float64(x), sign)
}

// Abs returns the absolute value of x. For floats the sign bit is cleared,
// so Abs(-0) = +0 and Abs(NaN) is a NaN.
func Abs[T Numbers](x T) T {
	if isFloat[T]() {
		return T(math.Abs(float64(x)))
	}
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1 according to the sign of x. NaN is returned
// unchanged.
func Sign[T Numbers](x T) T {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return T(0) - 1
	default:
		return x
	}
}

// Min returns the smaller of a and b. If either is NaN the result is NaN.
func Min[T Numbers](a, b T) T {
	return min(a, b)
}

// Max returns the larger of a and b. If either is NaN the result is NaN.
func Max[T Numbers](a, b T) T {
	return max(a, b)
}

// Clamp returns x limited to [lo, hi].
func Clamp[T Numbers](x, lo, hi T) T {
	return min(max(x, lo), hi)
}

// Mod returns the remainder of x/y. For floats it is x - y·Floor(x/y), which
// has the sign of y; for integers it is Go's truncated remainder. Integer
// modulo by zero panics like the % operator.
func Mod[T Numbers](x, y T) T {
	if isFloat[T]() {
		fx, fy := float64(x), float64(y)
		return T(fx - fy*float64(Floor(fx/fy)))
	}
	if isUnsigned[T]() {
		return T(uint64(x) % uint64(y))
	}
	return T(int64(x) % int64(y))
}

// Fract returns x - Floor(x).
func Fract[T Floats](x T) T {
	return x - Floor(x)
}

// Lerp returns the linear blend x·(1-a) + y·a. Lerp(x, y, 0) == x and
// Lerp(x, y, 1) == y for finite x and y.
func Lerp[T Floats](x, y, a T) T {
	return x*(1-a) + y*a
}

// Mix is an alias of Lerp using the GLSL name.
func Mix[T Floats](x, y, a T) T {
	return Lerp(x, y, a)
}

// Step returns 0 if x < edge and 1 otherwise.
func Step[T Numbers](edge, x T) T {
	if x < edge {
		return 0
	}
	return 1
}

// SmoothStep performs Hermite interpolation between 0 and 1 when
// edge0 < x < edge1.
func SmoothStep[T Floats](edge0, edge1, x T) T {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// EqualEpsilon reports whether |a-b| <= eps.
func EqualEpsilon[T Floats](a, b, eps T) bool {
	return Abs(a-b) <= eps
}

// sqrtN is Sqrt for any numeric type. Integers are evaluated in float64 and
// truncated back.
func sqrtN[T Numbers](x T) T {
	return T(Sqrt(float64(x)))
}
