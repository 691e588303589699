package glm

import "math"

// Scalar math functions. Each one evaluates either the constant-evaluation
// kernel (scalar_const.go) or the host math package, depending on
// CurrentEvalPath. float32 arguments are widened to float64, evaluated, and
// rounded once on the way back.

// tolerances holds the maximum relative difference between the constant and
// runtime paths for float64 results. Zero means bit-identical.
var tolerances = map[string]float64{
	"Sqrt":      0,
	"FrExp":     0,
	"LdExp":     0,
	"Modf":      0,
	"Round":     0,
	"RoundEven": 0,
	"Floor":     0,
	"Ceil":      0,
	"Trunc":     0,
	"Fma":       0x1p-52,
	"Sin":       1e-13,
	"Cos":       1e-13,
	"Tan":       1e-13,
	"ASin":      1e-13,
	"ACos":      1e-13,
	"ATan":      1e-13,
	"ATan2":     1e-13,
	"SinH":      1e-13,
	"CosH":      1e-13,
	"TanH":      1e-13,
	"ASinH":     1e-13,
	"ACosH":     1e-13,
	"ATanH":     1e-13,
	"Exp":       1e-13,
	"Exp2":      1e-13,
	"Log":       1e-13,
	"Log2":      1e-13,
	"Pow":       1e-12,
}

// absFloor is the absolute difference always accepted between the two paths
// of an inexact function. Results near zero (Sin near a multiple of π, Log2
// just above 1) carry an absolute rather than a relative error.
const absFloor = 1e-15

// Tolerance returns the relative tolerance within which the constant and
// runtime paths of the named function agree for float64 arguments. For
// functions with a non-zero tolerance a difference of at most 1e-15 is also
// accepted, for results near zero. For Tan that absolute bound is scaled by
// 1+t², t the result, since near a pole the derivative of tan magnifies the
// last bit of the reduced argument. Both paths always agree on NaN, ±Inf and
// ±0 results. For float32 the paths agree within one float32 ulp. Unknown
// names return -1.
func Tolerance(name string) float64 {
	if t, ok := tolerances[name]; ok {
		return t
	}
	return -1
}

// Sqrt returns the square root of x.
// Sqrt(+Inf) = +Inf, Sqrt(±0) = ±0, Sqrt(x < 0) = NaN, Sqrt(NaN) = NaN.
func Sqrt[T Floats](x T) T {
	if constEval.Load() {
		return T(constSqrt(float64(x)))
	}
	return T(math.Sqrt(float64(x)))
}

// InverseSqrt returns 1/Sqrt(x).
func InverseSqrt[T Floats](x T) T {
	return 1 / Sqrt(x)
}

// Sin returns the sine of the radian argument x.
func Sin[T Floats](x T) T {
	if constEval.Load() {
		return T(constSin(float64(x)))
	}
	return T(math.Sin(float64(x)))
}

// Cos returns the cosine of the radian argument x.
func Cos[T Floats](x T) T {
	if constEval.Load() {
		return T(constCos(float64(x)))
	}
	return T(math.Cos(float64(x)))
}

// Tan returns the tangent of the radian argument x.
func Tan[T Floats](x T) T {
	if constEval.Load() {
		return T(constTan(float64(x)))
	}
	return T(math.Tan(float64(x)))
}

// ASin returns the arcsine of x in radians. ASin(|x| > 1) = NaN.
// Both paths evaluate atan(x/√((1-x)(1+x))), which keeps full precision
// near ±1.
func ASin[T Floats](x T) T {
	if constEval.Load() {
		return T(constAsin(float64(x)))
	}
	return T(hostAsin(float64(x)))
}

// ACos returns the arccosine of x in radians. ACos(|x| > 1) = NaN.
// Both paths evaluate 2·atan(√((1-x)/(1+x))), which keeps full relative
// precision near 1.
func ACos[T Floats](x T) T {
	if constEval.Load() {
		return T(constAcos(float64(x)))
	}
	return T(hostAcos(float64(x)))
}

// ATan returns the arctangent of x in radians. ATan(±Inf) = NaN.
func ATan[T Floats](x T) T {
	if math.IsInf(float64(x), 0) {
		return T(math.NaN())
	}
	if constEval.Load() {
		return T(constAtan(float64(x)))
	}
	return T(math.Atan(float64(x)))
}

// ATan2 returns the arctangent of y/x, using the signs of the two to pick
// the quadrant.
func ATan2[T Floats](y, x T) T {
	if constEval.Load() {
		return T(constAtan2(float64(y), float64(x)))
	}
	return T(math.Atan2(float64(y), float64(x)))
}

// SinH returns the hyperbolic sine of x.
func SinH[T Floats](x T) T {
	if constEval.Load() {
		return T(constSinh(float64(x)))
	}
	return T(hostSinh(float64(x)))
}

// CosH returns the hyperbolic cosine of x.
func CosH[T Floats](x T) T {
	if constEval.Load() {
		return T(constCosh(float64(x)))
	}
	return T(hostCosh(float64(x)))
}

// TanH returns the hyperbolic tangent of x.
func TanH[T Floats](x T) T {
	if constEval.Load() {
		return T(constTanh(float64(x)))
	}
	return T(math.Tanh(float64(x)))
}

// ASinH returns the inverse hyperbolic sine of x.
func ASinH[T Floats](x T) T {
	if constEval.Load() {
		return T(constAsinh(float64(x)))
	}
	return T(math.Asinh(float64(x)))
}

// ACosH returns the inverse hyperbolic cosine of x. ACosH(x < 1) = NaN.
func ACosH[T Floats](x T) T {
	if constEval.Load() {
		return T(constAcosh(float64(x)))
	}
	return T(math.Acosh(float64(x)))
}

// ATanH returns the inverse hyperbolic tangent of x.
// ATanH(±1) = ±Inf, ATanH(|x| > 1) = NaN.
func ATanH[T Floats](x T) T {
	if constEval.Load() {
		return T(constAtanh(float64(x)))
	}
	return T(math.Atanh(float64(x)))
}

// Exp returns e^x.
func Exp[T Floats](x T) T {
	if constEval.Load() {
		return T(constExp(float64(x)))
	}
	return T(hostExp(float64(x)))
}

// Exp2 returns 2^x.
func Exp2[T Floats](x T) T {
	if constEval.Load() {
		return T(constExp2(float64(x)))
	}
	return T(math.Exp2(float64(x)))
}

// Log returns the natural logarithm of x.
// Log(0) = -Inf, Log(x < 0) = NaN, Log(+Inf) = +Inf.
func Log[T Floats](x T) T {
	if constEval.Load() {
		return T(constLog(float64(x)))
	}
	return T(hostLog(float64(x)))
}

// Log2 returns the binary logarithm of x.
// Log2(±0) = +Inf, Log2(x < 0) = NaN, Log2(+Inf) = +Inf.
func Log2[T Floats](x T) T {
	if x == 0 {
		return T(math.Inf(1))
	}
	if constEval.Load() {
		return T(constLog2(float64(x)))
	}
	return T(math.Log2(float64(x)))
}

// Pow returns x^y with the IEEE-754 special cases of math.Pow.
func Pow[T Floats](x, y T) T {
	if constEval.Load() {
		return T(constPow(float64(x), float64(y)))
	}
	return T(math.Pow(float64(x), float64(y)))
}

// FrExp breaks x into a normalized fraction and an integral power of two:
// x = frac × 2^exp with |frac| in [0.5, 1). For ±0, ±Inf and NaN it returns
// (x, 0).
func FrExp[T Floats](x T) (frac T, exp int) {
	var f float64
	if constEval.Load() {
		f, exp = constFrexp(float64(x))
	} else {
		f, exp = math.Frexp(float64(x))
	}
	return T(f), exp
}

// LdExp is the inverse of FrExp: it returns frac × 2^exp.
func LdExp[T Floats](frac T, exp int) T {
	if constEval.Load() {
		return T(constLdexp(float64(frac), exp))
	}
	return T(math.Ldexp(float64(frac), exp))
}

// Modf returns the integer and fractional parts of x, both with the sign of
// x. Modf(±Inf) = (±Inf, NaN) and Modf(NaN) = (NaN, NaN).
func Modf[T Floats](x T) (integral, frac T) {
	var i, f float64
	if constEval.Load() {
		i, f = constModf(float64(x))
	} else {
		i, f = math.Modf(float64(x))
	}
	return T(i), T(f)
}

// Round returns the nearest integer, rounding half away from zero.
func Round[T Floats](x T) T {
	if constEval.Load() {
		return T(constRound(float64(x)))
	}
	return T(math.Round(float64(x)))
}

// RoundEven returns the nearest integer, rounding ties to even.
func RoundEven[T Floats](x T) T {
	if constEval.Load() {
		return T(constRoundEven(float64(x)))
	}
	return T(math.RoundToEven(float64(x)))
}

// Floor returns the greatest integer value less than or equal to x.
func Floor[T Floats](x T) T {
	if constEval.Load() {
		return T(constFloor(float64(x)))
	}
	return T(math.Floor(float64(x)))
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil[T Floats](x T) T {
	if constEval.Load() {
		return T(constCeil(float64(x)))
	}
	return T(math.Ceil(float64(x)))
}

// Trunc returns the integer value of x.
func Trunc[T Floats](x T) T {
	if constEval.Load() {
		return T(constTrunc(float64(x)))
	}
	return T(math.Trunc(float64(x)))
}

// Fma returns a*b + c. The constant path is always fused and correctly
// rounded. The runtime path uses the hardware instruction when HasFMA
// reports one and a plain multiply-add otherwise, so the two paths differ by
// at most one rounding.
func Fma[T Floats](a, b, c T) T {
	if constEval.Load() {
		return T(constFma(float64(a), float64(b), float64(c)))
	}
	if hasFMA {
		return T(math.FMA(float64(a), float64(b), float64(c)))
	}
	return T(float64(a)*float64(b) + float64(c))
}

// The host wrappers below keep the runtime path on the host math package
// while matching the constant kernels at the edges where some host
// implementations lose range: subnormal logarithms and exponentials within a
// few units of the overflow threshold.

// hostExpScaled returns e^x × 2^s with the scale applied after range
// reduction.
func hostExpScaled(x float64, s int) float64 {
	if x > 2*expOverflow {
		return math.Inf(1)
	}
	k := math.RoundToEven(x * invLn2)
	r := (x - k*ln2Hi) - k*ln2Lo
	return math.Ldexp(math.Exp(r), int(k)+s)
}

func hostExp(x float64) float64 {
	if (x > 708 && x <= expOverflow) || (x < -708 && x >= expUnderflow) {
		return hostExpScaled(x, 0)
	}
	return math.Exp(x)
}

func hostSinh(x float64) float64 {
	if ax := math.Abs(x); ax > 708 {
		return math.Copysign(hostExpScaled(ax, -1), x)
	}
	return math.Sinh(x)
}

func hostCosh(x float64) float64 {
	if ax := math.Abs(x); ax > 708 {
		return hostExpScaled(ax, -1)
	}
	return math.Cosh(x)
}

func hostLog(x float64) float64 {
	if x > 0 && x < 0x1p-1022 {
		// 2^52 lifts every subnormal into the normal range.
		return (math.Log(x*0x1p52) - 52*ln2Hi) - 52*ln2Lo
	}
	return math.Log(x)
}

func hostAsin(x float64) float64 {
	if x == 0 {
		return x
	}
	return math.Atan(x / math.Sqrt((1-x)*(1+x)))
}

func hostAcos(x float64) float64 {
	return 2 * math.Atan(math.Sqrt((1-x)/(1+x)))
}
