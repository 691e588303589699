package glm

import (
	"math"
	"math/big"
	"sync"
)

// This file provides the constant-evaluation kernels behind the scalar math
// functions. They are written in portable Go using only float64 arithmetic,
// bit manipulation, and (for very large trig arguments and Fma) math/big, so
// they produce the same bits on every platform. None of them call the
// transcendental functions of the math package; the math package is only used
// for bit reinterpretation and NaN/Inf construction.

const (
	f64Shift = 52
	f64Mask  = 0x7ff
	f64Bias  = 1023
)

// Constants for range reduction (Cody-Waite splits, fdlibm values).
var (
	ln2Hi  = 6.93147180369123816490e-01
	ln2Lo  = 1.90821492927058770002e-10
	invLn2 = 1.44269504088896338700e+00
	ln2    = 0.693147180559945309417232121458176568

	// π/2 split into three 33-bit pieces: k*pio2_1 and k*pio2_2 are exact
	// for |k| < 2^20.
	pio2_1 = 1.57079632673412561417e+00
	pio2_2 = 6.07710050630396597660e-11
	pio2_3 = 2.02226624871116645580e-21

	pio2Hi = 1.5707963267948966
	pio2Lo = 6.123233995736766e-17
	twoPi  = 0.636619772367581343075535053490057448 // 2/π

	expOverflow  = 7.09782712893383973096e+02
	expUnderflow = -7.45133219101941108420e+02

	// |x| below this uses Cody-Waite reduction, above it the exact reduction.
	trigReduceThreshold = float64(1 << 19)
)

func isNaN64(x float64) bool   { return x != x }
func isInf64(x float64) bool   { return x > math.MaxFloat64 || x < -math.MaxFloat64 }
func signbit64(x float64) bool { return math.Float64bits(x)&(1<<63) != 0 }

func copysign64(x, sign float64) float64 {
	const signBit = 1 << 63
	return math.Float64frombits(math.Float64bits(x)&^signBit | math.Float64bits(sign)&signBit)
}

func abs64(x float64) float64 {
	return math.Float64frombits(math.Float64bits(x) &^ (1 << 63))
}

// =============================================================================
// Decomposition and rounding
// =============================================================================

// constFrexp breaks x into a fraction in [0.5, 1) and a power of two.
// ±0, ±Inf and NaN are returned unchanged with exponent 0.
func constFrexp(x float64) (frac float64, exp int) {
	if x == 0 || isNaN64(x) || isInf64(x) {
		return x, 0
	}
	b := math.Float64bits(x)
	if b>>f64Shift&f64Mask == 0 {
		// Subnormal: scale into the normal range first.
		x *= 1 << 52
		b = math.Float64bits(x)
		exp = -52
	}
	exp += int(b>>f64Shift&f64Mask) - (f64Bias - 1)
	b &^= f64Mask << f64Shift
	b |= (f64Bias - 1) << f64Shift
	return math.Float64frombits(b), exp
}

// constLdexp returns frac × 2^exp, rounding once if the result is subnormal.
func constLdexp(frac float64, exp int) float64 {
	if frac == 0 || isNaN64(frac) || isInf64(frac) {
		return frac
	}
	m, e := constFrexp(frac)
	exp += e
	// m is in [0.5, 1): the biased exponent of the result is exp + 1022.
	biased := exp + f64Bias - 1
	switch {
	case biased >= f64Mask:
		return copysign64(math.Inf(1), frac)
	case biased > 0:
		b := math.Float64bits(m)&^(f64Mask<<f64Shift) | uint64(biased)<<f64Shift
		return math.Float64frombits(b)
	case biased+54 <= 0:
		// Below half the smallest subnormal.
		return copysign64(0, frac)
	default:
		b := math.Float64bits(m)&^(f64Mask<<f64Shift) | uint64(biased+54)<<f64Shift
		return math.Float64frombits(b) * 0x1p-54
	}
}

// constTrunc clears the fractional bits of x.
func constTrunc(x float64) float64 {
	if x == 0 || isNaN64(x) || isInf64(x) {
		return x
	}
	b := math.Float64bits(x)
	e := int(b>>f64Shift&f64Mask) - f64Bias
	switch {
	case e < 0:
		return copysign64(0, x)
	case e >= f64Shift:
		return x
	}
	b &^= 1<<(f64Shift-uint(e)) - 1
	return math.Float64frombits(b)
}

func constFloor(x float64) float64 {
	t := constTrunc(x)
	if x < 0 && t != x {
		return t - 1
	}
	return t
}

func constCeil(x float64) float64 {
	t := constTrunc(x)
	if x > 0 && t != x {
		return t + 1
	}
	return t
}

// constRound rounds half away from zero.
func constRound(x float64) float64 {
	t := constTrunc(x)
	if abs64(x-t) >= 0.5 {
		return t + copysign64(1, x)
	}
	return t
}

// constRoundEven rounds half to even.
func constRoundEven(x float64) float64 {
	t := constTrunc(x)
	d := abs64(x - t)
	if d > 0.5 || (d == 0.5 && constTrunc(t/2)*2 != t) {
		return t + copysign64(1, x)
	}
	return t
}

// constModf returns integer and fractional parts with the sign of x.
// ±Inf yields (±Inf, NaN); NaN yields (NaN, NaN).
func constModf(x float64) (integral, frac float64) {
	switch {
	case isNaN64(x):
		return x, x
	case isInf64(x):
		return x, math.NaN()
	}
	integral = constTrunc(x)
	return integral, copysign64(x-integral, x)
}

// constSqrt computes a correctly rounded square root bit by bit, so it
// matches hardware square root exactly.
func constSqrt(x float64) float64 {
	switch {
	case x == 0 || isNaN64(x) || x > math.MaxFloat64:
		return x
	case x < 0:
		return math.NaN()
	}
	ix := math.Float64bits(x)
	exp := int(ix >> f64Shift & f64Mask)
	if exp == 0 {
		// Normalize subnormal input.
		for ix&(1<<f64Shift) == 0 {
			ix <<= 1
			exp--
		}
		exp++
	}
	exp -= f64Bias
	ix &^= f64Mask << f64Shift
	ix |= 1 << f64Shift
	if exp&1 == 1 {
		ix <<= 1
	}
	exp >>= 1

	ix <<= 1
	var q, s uint64
	r := uint64(1 << (f64Shift + 1))
	for r != 0 {
		t := s + r
		if t <= ix {
			s = t + r
			ix -= t
			q += r
		}
		ix <<= 1
		r >>= 1
	}
	if ix != 0 {
		q += q & 1
	}
	ix = q>>1 + uint64(exp-1+f64Bias)<<f64Shift
	return math.Float64frombits(ix)
}

// =============================================================================
// Exponential and logarithm
// =============================================================================

// expKernel returns e^r for |r| <= ln(2)/2 with a degree-14 Taylor
// polynomial in Horner form: 1 + r(1 + r/2(1 + r/3(...))).
func expKernel(r float64) float64 {
	p := 1.0
	for n := 14; n >= 1; n-- {
		p = 1 + r/float64(n)*p
	}
	return p
}

func constExp(x float64) float64 {
	switch {
	case isNaN64(x) || x > math.MaxFloat64:
		return x
	case x < -math.MaxFloat64:
		return 0
	case x > expOverflow:
		return math.Inf(1)
	case x < expUnderflow:
		return 0
	case x == 0:
		return 1
	}
	return constExpScaled(x, 0)
}

// constExpScaled returns e^x × 2^s for finite x. The scale is applied to the
// exponent after reduction, so e^x/2 stays finite up to x = ln(2·MaxFloat64).
func constExpScaled(x float64, s int) float64 {
	if x > 2*expOverflow {
		return math.Inf(1)
	}
	// x = k*ln2 + r, |r| <= ln2/2
	k := constRoundEven(x * invLn2)
	r := (x - k*ln2Hi) - k*ln2Lo
	return constLdexp(expKernel(r), int(k)+s)
}

func constExp2(x float64) float64 {
	switch {
	case isNaN64(x) || x > math.MaxFloat64:
		return x
	case x < -math.MaxFloat64:
		return 0
	case x >= 1024:
		return math.Inf(1)
	case x < -1075:
		return 0
	}
	// x = k + f, |f| <= 1/2; 2^f = e^(f*ln2)
	k := constRoundEven(x)
	f := x - k
	if f == 0 {
		return constLdexp(1, int(k))
	}
	return constLdexp(expKernel(f*ln2), int(k))
}

// logKernel returns ln(m) for m in [√½, √2) using the atanh series
// ln(m) = 2s(1 + s²/3 + s⁴/5 + ...), s = (m-1)/(m+1), |s| <= 0.1716.
func logKernel(m float64) float64 {
	s := (m - 1) / (m + 1)
	s2 := s * s
	p := 0.0
	for n := 13; n >= 0; n-- {
		p = p*s2 + 1/float64(2*n+1)
	}
	return 2 * s * p
}

// logSplit returns e and m with x = m × 2^e and m in [√½, √2).
func logSplit(x float64) (m float64, e int) {
	m, e = constFrexp(x)
	if m < math.Sqrt2/2 {
		m *= 2
		e--
	}
	return m, e
}

func constLog(x float64) float64 {
	switch {
	case isNaN64(x) || x > math.MaxFloat64:
		return x
	case x < 0:
		return math.NaN()
	case x == 0:
		return math.Inf(-1)
	}
	m, e := logSplit(x)
	k := float64(e)
	return k*ln2Hi + (logKernel(m) + k*ln2Lo)
}

func constLog2(x float64) float64 {
	switch {
	case isNaN64(x) || x > math.MaxFloat64:
		return x
	case x < 0:
		return math.NaN()
	case x == 0:
		return math.Inf(-1)
	}
	m, e := logSplit(x)
	if m == 1 {
		return float64(e)
	}
	return float64(e) + logKernel(m)*invLn2
}

// constLog1p computes ln(1+u) without losing the low bits of small u.
func constLog1p(u float64) float64 {
	w := 1 + u
	if w == 1 {
		return u
	}
	return constLog(w) * (u / (w - 1))
}

// constPow follows the IEEE-754 pow special cases, then evaluates
// 2^(y*log2|x|).
func constPow(x, y float64) float64 {
	switch {
	case y == 0 || x == 1:
		return 1
	case y == 1:
		return x
	case isNaN64(x) || isNaN64(y):
		return math.NaN()
	case x == 0:
		switch {
		case y < 0:
			if signbit64(x) && isOddInt(y) {
				return math.Inf(-1)
			}
			return math.Inf(1)
		case y > 0:
			if signbit64(x) && isOddInt(y) {
				return x
			}
			return 0
		}
	case isInf64(y):
		switch {
		case x == -1:
			return 1
		case (abs64(x) < 1) == (y > 0):
			return 0
		default:
			return math.Inf(1)
		}
	case isInf64(x):
		if x < 0 {
			return constPow(1/x, -y) // Pow(-0, -y)
		}
		if y < 0 {
			return 0
		}
		return math.Inf(1)
	case x < 0 && constTrunc(y) != y:
		return math.NaN()
	}
	r := constExp2(y * constLog2(abs64(x)))
	if x < 0 && isOddInt(y) {
		return -r
	}
	return r
}

func isOddInt(y float64) bool {
	if abs64(y) >= 1<<53 {
		return false
	}
	i, f := constModf(y)
	return f == 0 && int64(i)&1 == 1
}

// =============================================================================
// Trigonometric
// =============================================================================

// sinKernel returns sin(r) for |r| <= π/4:
// r(1 - r²/(2·3)(1 - r²/(4·5)(1 - ...))).
func sinKernel(r float64) float64 {
	r2 := r * r
	s := 1.0
	for n := 9; n >= 1; n-- {
		s = 1 - r2/float64((2*n)*(2*n+1))*s
	}
	return r * s
}

// cosKernel returns cos(r) for |r| <= π/4:
// 1 - r²/(1·2)(1 - r²/(3·4)(1 - ...)).
func cosKernel(r float64) float64 {
	r2 := r * r
	c := 1.0
	for n := 9; n >= 1; n-- {
		c = 1 - r2/float64((2*n-1)*(2*n))*c
	}
	return c
}

// trigReduce returns r and k with x = k·π/2 + r, |r| <= π/4, for finite
// x >= 0. k is returned modulo 4.
func trigReduce(x float64) (r float64, k int) {
	if x < trigReduceThreshold {
		kf := constRoundEven(x * twoPi)
		r = ((x - kf*pio2_1) - kf*pio2_2) - kf*pio2_3
		return r, int(int64(kf) & 3)
	}
	return bigTrigReduce(x)
}

// bigPiOnce computes π/2 and 2/π once to bigTrigPrec bits. This is enough
// to reduce any finite float64 exactly: the largest float64 has 1024 integer
// bits and the reduced value needs 53 more plus guard bits.
var (
	bigPiOnce    sync.Once
	bigHalfPi    *big.Float
	bigTwoOverPi *big.Float
)

const bigTrigPrec = 1400

// bigAtanInv returns atan(1/n) to bigTrigPrec bits using the Gregory series.
func bigAtanInv(n int64) *big.Float {
	prec := uint(bigTrigPrec + 64)
	x := new(big.Float).SetPrec(prec).Quo(big.NewFloat(1).SetPrec(prec), new(big.Float).SetPrec(prec).SetInt64(n))
	x2 := new(big.Float).SetPrec(prec).Mul(x, x)
	sum := new(big.Float).SetPrec(prec).Set(x)
	term := new(big.Float).SetPrec(prec).Set(x)
	eps := new(big.Float).SetPrec(prec).SetMantExp(big.NewFloat(1), -int(prec))
	for k := int64(1); ; k++ {
		term.Mul(term, x2)
		t := new(big.Float).SetPrec(prec).Quo(term, new(big.Float).SetPrec(prec).SetInt64(2*k+1))
		if k&1 == 1 {
			sum.Sub(sum, t)
		} else {
			sum.Add(sum, t)
		}
		if t.Cmp(eps) < 0 {
			break
		}
	}
	return sum
}

func initBigPi() {
	prec := uint(bigTrigPrec + 64)
	// Machin: π/4 = 4·atan(1/5) - atan(1/239)
	a := bigAtanInv(5)
	a.Mul(a, new(big.Float).SetPrec(prec).SetInt64(4))
	a.Sub(a, bigAtanInv(239))
	// a = π/4
	bigHalfPi = new(big.Float).SetPrec(prec).Mul(a, big.NewFloat(2))
	bigTwoOverPi = new(big.Float).SetPrec(prec).Quo(big.NewFloat(1).SetPrec(prec), bigHalfPi)
}

// bigTrigReduce reduces x exactly using arbitrary precision, in the spirit of
// Payne-Hanek reduction.
func bigTrigReduce(x float64) (r float64, k int) {
	bigPiOnce.Do(initBigPi)
	prec := uint(bigTrigPrec + 64)
	t := new(big.Float).SetPrec(prec).SetFloat64(x)
	t.Mul(t, bigTwoOverPi)

	q, _ := t.Int(nil)
	frac := new(big.Float).SetPrec(prec).SetInt(q)
	frac.Sub(t, frac)
	if frac.Cmp(big.NewFloat(0.5)) >= 0 {
		q.Add(q, big.NewInt(1))
		frac.Sub(frac, big.NewFloat(1))
	}
	frac.Mul(frac, bigHalfPi)
	r, _ = frac.Float64()
	k = int(new(big.Int).And(q, big.NewInt(3)).Int64())
	return r, k
}

func constSin(x float64) float64 {
	if isNaN64(x) || isInf64(x) {
		return math.NaN()
	}
	if x == 0 {
		return x
	}
	neg := x < 0
	if neg {
		x = -x
	}
	r, k := trigReduce(x)
	var s float64
	switch k {
	case 0:
		s = sinKernel(r)
	case 1:
		s = cosKernel(r)
	case 2:
		s = -sinKernel(r)
	default:
		s = -cosKernel(r)
	}
	if neg {
		return -s
	}
	return s
}

func constCos(x float64) float64 {
	if isNaN64(x) || isInf64(x) {
		return math.NaN()
	}
	r, k := trigReduce(abs64(x))
	switch k {
	case 0:
		return cosKernel(r)
	case 1:
		return -sinKernel(r)
	case 2:
		return -cosKernel(r)
	default:
		return sinKernel(r)
	}
}

func constTan(x float64) float64 {
	if isNaN64(x) || isInf64(x) {
		return math.NaN()
	}
	if x == 0 {
		return x
	}
	neg := x < 0
	if neg {
		x = -x
	}
	r, k := trigReduce(x)
	var t float64
	if k&1 == 0 {
		t = sinKernel(r) / cosKernel(r)
	} else {
		t = -cosKernel(r) / sinKernel(r)
	}
	if neg {
		return -t
	}
	return t
}

// atanKernel returns atan(t) for t in [0, 1]. Three argument halvings
// atan(t) = 2·atan(t / (1 + √(1+t²))) bring t below 0.1, where the series
// t - t³/3 + t⁵/5 - ... converges quickly.
func atanKernel(t float64) float64 {
	for range 3 {
		t = t / (1 + constSqrt(1+t*t))
	}
	t2 := t * t
	p := 0.0
	for n := 12; n >= 0; n-- {
		c := 1 / float64(2*n+1)
		if n&1 == 1 {
			c = -c
		}
		p = p*t2 + c
	}
	return 8 * t * p
}

func constAtan(x float64) float64 {
	// atan(x) rounds to x below 2^-28; the halvings would underflow
	// subnormal x.
	if isNaN64(x) || abs64(x) < 0x1p-28 {
		return x
	}
	neg := x < 0
	if neg {
		x = -x
	}
	var r float64
	if x > 1 {
		r = pio2Hi - (atanKernel(1/x) - pio2Lo)
	} else {
		r = atanKernel(x)
	}
	if neg {
		return -r
	}
	return r
}

func constAtan2(y, x float64) float64 {
	switch {
	case isNaN64(y) || isNaN64(x):
		return math.NaN()
	case y == 0:
		if x >= 0 && !signbit64(x) {
			return copysign64(0, y)
		}
		return copysign64(math.Pi, y)
	case x == 0:
		return copysign64(math.Pi/2, y)
	case isInf64(x):
		if x > 0 {
			if isInf64(y) {
				return copysign64(math.Pi/4, y)
			}
			return copysign64(0, y)
		}
		if isInf64(y) {
			return copysign64(3*math.Pi/4, y)
		}
		return copysign64(math.Pi, y)
	case isInf64(y):
		return copysign64(math.Pi/2, y)
	}
	q := constAtan(y / x)
	if x < 0 {
		if q <= 0 {
			return q + math.Pi
		}
		return q - math.Pi
	}
	return q
}

func constAsin(x float64) float64 {
	switch {
	case isNaN64(x) || x > 1 || x < -1:
		return math.NaN()
	case abs64(x) < 0x1p-28:
		return x
	}
	return constAtan(x / constSqrt((1-x)*(1+x)))
}

func constAcos(x float64) float64 {
	if isNaN64(x) || x > 1 || x < -1 {
		return math.NaN()
	}
	return 2 * constAtan(constSqrt((1-x)/(1+x)))
}

// =============================================================================
// Hyperbolic
// =============================================================================

// sinhSeries returns sinh(x) for |x| < 0.625: x + x³/3! + x⁵/5! + ...
func sinhSeries(x float64) float64 {
	x2 := x * x
	s := 1.0
	for n := 11; n >= 1; n-- {
		s = 1 + x2/float64((2*n)*(2*n+1))*s
	}
	return x * s
}

func constSinh(x float64) float64 {
	if isNaN64(x) || isInf64(x) || x == 0 {
		return x
	}
	ax := abs64(x)
	var r float64
	switch {
	case ax < 0.625:
		return sinhSeries(x)
	case ax > 21:
		r = constExpScaled(ax, -1)
	default:
		e := constExp(ax)
		r = (e - 1/e) * 0.5
	}
	return copysign64(r, x)
}

func constCosh(x float64) float64 {
	if isNaN64(x) {
		return x
	}
	ax := abs64(x)
	if ax > 21 {
		return constExpScaled(ax, -1)
	}
	e := constExp(ax)
	return (e + 1/e) * 0.5
}

func constTanh(x float64) float64 {
	if isNaN64(x) || x == 0 {
		return x
	}
	ax := abs64(x)
	var r float64
	switch {
	case ax > 44:
		r = 1
	case ax >= 0.625:
		r = 1 - 2/(constExp(2*ax)+1)
	default:
		s := sinhSeries(ax)
		r = s / constSqrt(1+s*s)
	}
	return copysign64(r, x)
}

func constAsinh(x float64) float64 {
	if isNaN64(x) || isInf64(x) || x == 0 {
		return x
	}
	ax := abs64(x)
	var r float64
	switch {
	case ax > 1<<28:
		r = constLog(ax) + ln2
	case ax < 0.5:
		// x - (1/2)x³/3 + (1·3)/(2·4)x⁵/5 - ...
		x2 := ax * ax
		c, p, sum := 1.0, ax, ax
		for n := 1; n <= 30; n++ {
			c *= -float64(2*n-1) / float64(2*n)
			p *= x2
			sum += c * p / float64(2*n+1)
		}
		r = sum
	default:
		r = constLog(ax + constSqrt(ax*ax+1))
	}
	return copysign64(r, x)
}

func constAcosh(x float64) float64 {
	switch {
	case isNaN64(x) || x < 1:
		return math.NaN()
	case x == 1:
		return 0
	case x > 1<<28:
		return constLog(x) + ln2
	case x > 2:
		return constLog(2*x - 1/(x+constSqrt(x*x-1)))
	}
	t := x - 1
	return constLog1p(t + constSqrt(2*t+t*t))
}

func constAtanh(x float64) float64 {
	switch {
	case isNaN64(x) || x > 1 || x < -1:
		return math.NaN()
	case x == 1:
		return math.Inf(1)
	case x == -1:
		return math.Inf(-1)
	case x == 0:
		return x
	}
	ax := abs64(x)
	var r float64
	if ax < 0.5 {
		x2 := ax * ax
		p := 0.0
		for n := 28; n >= 0; n-- {
			p = p*x2 + 1/float64(2*n+1)
		}
		r = ax * p
	} else {
		r = 0.5 * constLog1p(2*ax/(1-ax))
	}
	return copysign64(r, x)
}

// =============================================================================
// Fused multiply-add
// =============================================================================

// fmaPrec is wide enough to hold a*b + c exactly for any finite float64
// operands, so the single rounding happens in Float64().
const fmaPrec = 3300

func constFma(a, b, c float64) float64 {
	switch {
	case isNaN64(a) || isNaN64(b) || isNaN64(c) || isInf64(a) || isInf64(b):
		return a*b + c
	case isInf64(c):
		return c
	case a == 0 || b == 0:
		return a*b + c
	}
	p := new(big.Float).SetPrec(fmaPrec).SetFloat64(a)
	p.Mul(p, new(big.Float).SetFloat64(b))
	p.Add(p, new(big.Float).SetFloat64(c))
	// Exact cancellation leaves +0 in p, as IEEE round-to-nearest does.
	r, _ := p.Float64()
	return r
}
