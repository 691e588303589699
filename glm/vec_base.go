package glm

import (
	"fmt"
	"math"
	"strings"
	"unsafe"
)

// This file provides the per-component kernels shared by the generated
// vector types (vec2_gen.go, vec3_gen.go, vec4_gen.go) and the matrix and
// quaternion types. Bitwise operations work on any Numbers type: integers use
// the usual operators and floats operate on their IEEE-754 bit pattern.

// toBits returns the raw bits of a. Integers are sign- or zero-extended.
func toBits[T Numbers](a T) uint64 {
	if isFloat[T]() {
		if unsafe.Sizeof(a) == 4 {
			return uint64(math.Float32bits(float32(a)))
		}
		return math.Float64bits(float64(a))
	}
	if isUnsigned[T]() {
		return uint64(a)
	}
	return uint64(int64(a))
}

// fromBits is the inverse of toBits. Integer conversion keeps the low bits.
func fromBits[T Numbers](u uint64) T {
	var zero T
	if isFloat[T]() {
		if unsafe.Sizeof(zero) == 4 {
			return T(math.Float32frombits(uint32(u)))
		}
		return T(math.Float64frombits(u))
	}
	if isUnsigned[T]() {
		return T(u)
	}
	return T(int64(u))
}

func bitAnd[T Numbers](a, b T) T {
	return fromBits[T](toBits(a) & toBits(b))
}

func bitOr[T Numbers](a, b T) T {
	return fromBits[T](toBits(a) | toBits(b))
}

func bitXor[T Numbers](a, b T) T {
	return fromBits[T](toBits(a) ^ toBits(b))
}

func bitNot[T Numbers](a T) T {
	return fromBits[T](^toBits(a))
}

// shiftLeft shifts the bits of a left by n.
func shiftLeft[T Numbers](a T, n uint) T {
	return fromBits[T](toBits(a) << n)
}

// shiftRight is arithmetic for signed integers and logical otherwise.
func shiftRight[T Numbers](a T, n uint) T {
	if !isFloat[T]() && !isUnsigned[T]() {
		return fromBits[T](uint64(int64(toBits(a)) >> n))
	}
	return fromBits[T](toBits(a) >> n)
}

// shiftCount converts a component to a shift count. Negative counts are
// treated as zero.
func shiftCount[T Numbers](c T) uint {
	if c < 0 {
		return 0
	}
	return uint(c)
}

// lerpN blends numeric components in float64 and converts back.
func lerpN[T Numbers](a, b, t T) T {
	if isFloat[T]() {
		return a*(1-t) + b*t
	}
	fa, fb, ft := float64(a), float64(b), float64(t)
	return T(fa*(1-ft) + fb*ft)
}

func floorN[T Numbers](a T) T {
	if isFloat[T]() {
		return T(Floor(float64(a)))
	}
	return a
}

func ceilN[T Numbers](a T) T {
	if isFloat[T]() {
		return T(Ceil(float64(a)))
	}
	return a
}

func roundN[T Numbers](a T) T {
	if isFloat[T]() {
		return T(Round(float64(a)))
	}
	return a
}

// writeComponents writes "c0, c1, ..." to sb.
func writeComponents[T Numbers](sb *strings.Builder, comps []T) {
	for i, c := range comps {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(sb, c)
	}
}

// writeBools writes "b0, b1, ..." to sb.
func writeBools(sb *strings.Builder, comps []bool) {
	for i, c := range comps {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprint(sb, c)
	}
}
