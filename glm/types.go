// Package glm provides fixed-size linear algebra for graphics code: 2, 3 and
// 4 component vectors, 3×3 and 4×4 column-major matrices, quaternions, and a
// library of generic scalar math functions.
//
// Every transcendental scalar function has two implementations: a portable
// constant-evaluation path written in pure Go that gives the same bits on
// every platform, and a runtime path backed by the host math package. The
// two agree within the tolerance reported by Tolerance. The constant path is
// selected with GLM_CONSTEVAL=1 or SetEvalPath(EvalConst).
//
// Basic usage:
//
//	import "github.com/ajroetker/go-glm/glm"
//
//	proj := glm.Perspective(glm.Radians[float32](45), 4.0/3.0, 0.1, 100)
//	model := glm.Translate(glm.Ident4[float32](), glm.NewVec3[float32](1, 1, 1))
//	mvp := proj.Mul(model)
//	p := mvp.MulVec(glm.NewVec4[float32](0, 0, 0, 1))
//
// Numeric edge cases are never errors: dividing by a zero length, inverting a
// singular matrix, or taking Log2 of a negative number produce NaN or Inf the
// way IEEE-754 arithmetic does. The only error the package returns is
// ErrOutOfRange from the checked At accessors.
package glm

import "reflect"

//go:generate go run ../cmd/glmgen -output . -pkg glm -arities 2,3,4

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Numbers is a constraint for all scalar types a vector can hold.
type Numbers interface {
	Floats | Integers
}

// typeTag returns the suffix used by String for scalar type T.
func typeTag[T Numbers]() string {
	switch reflect.TypeFor[T]().Kind() {
	case reflect.Float32:
		return "f"
	case reflect.Float64:
		return "d"
	case reflect.Int8:
		return "i8"
	case reflect.Int16:
		return "i16"
	case reflect.Int32:
		return "i32"
	case reflect.Int64:
		return "i64"
	case reflect.Uint8:
		return "u8"
	case reflect.Uint16:
		return "u16"
	case reflect.Uint32:
		return "u32"
	case reflect.Uint64:
		return "u64"
	default:
		return "?"
	}
}

// isFloat reports whether T is a floating-point type. It works for named
// types too (type Meters float32), which a type switch would miss.
func isFloat[T Numbers]() bool {
	var half T = 1
	half /= 2
	return half != 0
}

// isUnsigned reports whether T is an unsigned integer type.
func isUnsigned[T Numbers]() bool {
	var m T
	m--
	return m > 0
}
