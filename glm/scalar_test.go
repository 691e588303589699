package glm

import (
	"math"
	"testing"
)

// usePath switches the evaluation path for the duration of a test.
func usePath(tb testing.TB, p EvalPath) {
	tb.Helper()
	prev := SetEvalPath(p)
	tb.Cleanup(func() { SetEvalPath(prev) })
}

// bothPaths evaluates f on the constant path and then on the runtime path.
func bothPaths[R any](tb testing.TB, f func() R) (constRes, runtimeRes R) {
	tb.Helper()
	prev := SetEvalPath(EvalConst)
	defer SetEvalPath(prev)
	constRes = f()
	SetEvalPath(EvalRuntime)
	runtimeRes = f()
	return constRes, runtimeRes
}

// sameClass reports whether a and b are both NaN, equal infinities, or
// equal zeros of the same sign.
func sameClass(a, b float64) (special, ok bool) {
	switch {
	case math.IsNaN(a) || math.IsNaN(b):
		return true, math.IsNaN(a) && math.IsNaN(b)
	case math.IsInf(a, 0) || math.IsInf(b, 0):
		return true, a == b
	case a == 0 || b == 0:
		return true, a == b && math.Signbit(a) == math.Signbit(b)
	}
	return false, false
}

// within reports whether c and r agree under the contract of Tolerance:
// relative tol, with an absolute floor for inexact functions.
func within(c, r, tol, floor float64) bool {
	diff := math.Abs(c - r)
	if tol > 0 && diff <= floor {
		return true
	}
	return diff <= tol*math.Abs(r)
}

// floorFor returns the absolute floor of name at result r. Tan's floor
// grows with its derivative 1+r² near the poles.
func floorFor(name string, r float64) float64 {
	if name == "Tan" {
		return absFloor * (1 + r*r)
	}
	return absFloor
}

// agree64 checks the constant result c against the runtime result r.
func agree64(t *testing.T, name string, x, c, r, tol float64) {
	t.Helper()
	if special, ok := sameClass(c, r); special {
		if !ok {
			t.Errorf("%s(%v): const %v, runtime %v", name, x, c, r)
		}
		return
	}
	if !within(c, r, tol, floorFor(name, r)) {
		diff := math.Abs(c - r)
		t.Errorf("%s(%v): const %v, runtime %v (rel diff %.3g > %g)", name, x, c, r, diff/math.Abs(r), tol)
	}
}

// agree32 checks that float32 results differ by at most one ulp.
func agree32(t *testing.T, name string, x float32, c, r float32) {
	t.Helper()
	if special, ok := sameClass(float64(c), float64(r)); special {
		if !ok {
			t.Errorf("%s[float32](%v): const %v, runtime %v", name, x, c, r)
		}
		return
	}
	if diff := math.Abs(float64(c - r)); diff > float64(Epsilon[float32]())*math.Abs(float64(r)) {
		t.Errorf("%s[float32](%v): const %v, runtime %v", name, x, c, r)
	}
}

// Representative inputs shared by the unary functions: normal values of
// several magnitudes, ±0, subnormals, ±Inf, NaN and the float64 extremes.
var edgeInputs = []float64{
	0, math.Copysign(0, -1),
	math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64,
	1e-310, -1e-310, 0x1p-1030, 0x1p-1022, 1e-300, 1e-20, 1e-8,
	0.1, 0.25, 0.5, 0.75, 0.9999, 0.9999999, 1 - 0x1p-53, 1, 1.0001, 1.5, 2, math.E, 3, math.Pi, 4, 10,
	-0.1, -0.5, -0.9999999, -1, -2, -math.Pi, -10,
	100, 700, -700, 708.5, 709.5, 710, -709.5, -710, -740,
	1e6, 123456.789, 1e15, 1.66e69, 1e100, -1e100,
	math.MaxFloat64, -math.MaxFloat64,
	math.Inf(1), math.Inf(-1), math.NaN(),
}

type unaryFunc struct {
	name string
	f64  func(float64) float64
	f32  func(float32) float32
}

var unaryFuncs = []unaryFunc{
	{"Sqrt", Sqrt[float64], Sqrt[float32]},
	{"Sin", Sin[float64], Sin[float32]},
	{"Cos", Cos[float64], Cos[float32]},
	{"Tan", Tan[float64], Tan[float32]},
	{"ASin", ASin[float64], ASin[float32]},
	{"ACos", ACos[float64], ACos[float32]},
	{"ATan", ATan[float64], ATan[float32]},
	{"SinH", SinH[float64], SinH[float32]},
	{"CosH", CosH[float64], CosH[float32]},
	{"TanH", TanH[float64], TanH[float32]},
	{"ASinH", ASinH[float64], ASinH[float32]},
	{"ACosH", ACosH[float64], ACosH[float32]},
	{"ATanH", ATanH[float64], ATanH[float32]},
	{"Exp", Exp[float64], Exp[float32]},
	{"Exp2", Exp2[float64], Exp2[float32]},
	{"Log", Log[float64], Log[float32]},
	{"Log2", Log2[float64], Log2[float32]},
	{"Round", Round[float64], Round[float32]},
	{"RoundEven", RoundEven[float64], RoundEven[float32]},
	{"Floor", Floor[float64], Floor[float32]},
	{"Ceil", Ceil[float64], Ceil[float32]},
	{"Trunc", Trunc[float64], Trunc[float32]},
}

func TestConstRuntimeAgreement(t *testing.T) {
	for _, fn := range unaryFuncs {
		t.Run(fn.name, func(t *testing.T) {
			tol := Tolerance(fn.name)
			if tol < 0 {
				t.Fatalf("Tolerance(%q) unknown", fn.name)
			}
			for _, x := range edgeInputs {
				c, r := bothPaths(t, func() float64 { return fn.f64(x) })
				agree64(t, fn.name, x, c, r, tol)

				x32 := float32(x)
				c32, r32 := bothPaths(t, func() float32 { return fn.f32(x32) })
				agree32(t, fn.name, x32, c32, r32)
			}
		})
	}
}

// TestConstRuntimeAgreementSweep walks a dense grid so range-reduction
// boundaries are crossed many times. The narrow ranges sit on the Tan pole,
// the ends of the ASin/ACos domain and the Exp overflow threshold.
func TestConstRuntimeAgreementSweep(t *testing.T) {
	sweeps := []struct {
		lo, hi float64
	}{
		{-20, 20},
		{-1, 1},
		{0, 1000},
		{0.999999, 1},
		{-1, -0.999999},
		{math.Pi/2 - 1e-9, math.Pi/2 + 1e-9},
		{707, 711},
		{-746, -707},
	}
	for _, fn := range unaryFuncs {
		tol := Tolerance(fn.name)
		for _, s := range sweeps {
			const steps = 2000
			for i := range steps + 1 {
				x := s.lo + (s.hi-s.lo)*float64(i)/steps
				c, r := bothPaths(t, func() float64 { return fn.f64(x) })
				agree64(t, fn.name, x, c, r, tol)
			}
		}
	}
}

func TestATan2Agreement(t *testing.T) {
	vals := []float64{0, math.Copysign(0, -1), 1, -1, 0.5, -3, 1e-300, math.Inf(1), math.Inf(-1), math.NaN()}
	for _, y := range vals {
		for _, x := range vals {
			c, r := bothPaths(t, func() float64 { return ATan2(y, x) })
			if special, ok := sameClass(c, r); special {
				if !ok {
					t.Errorf("ATan2(%v, %v): const %v, runtime %v", y, x, c, r)
				}
				continue
			}
			if !within(c, r, Tolerance("ATan2"), absFloor) {
				t.Errorf("ATan2(%v, %v): const %v, runtime %v", y, x, c, r)
			}
		}
	}
}

func TestPowAgreement(t *testing.T) {
	xs := []float64{0, math.Copysign(0, -1), 0.5, 1, 2, 10, -2, -8, 1e-10, 1e10, math.Inf(1), math.Inf(-1), math.NaN()}
	ys := []float64{0, 0.5, -0.5, 1, -1, 2, 3, -3, 1.0 / 3, 10, 20.5, math.Inf(1), math.Inf(-1), math.NaN()}
	for _, x := range xs {
		for _, y := range ys {
			c, r := bothPaths(t, func() float64 { return Pow(x, y) })
			if special, ok := sameClass(c, r); special {
				if !ok {
					t.Errorf("Pow(%v, %v): const %v, runtime %v", x, y, c, r)
				}
				continue
			}
			if !within(c, r, Tolerance("Pow"), absFloor) {
				t.Errorf("Pow(%v, %v): const %v, runtime %v", x, y, c, r)
			}
		}
	}
}

func TestDecompositionExact(t *testing.T) {
	for _, x := range edgeInputs {
		cf, rf := bothPaths(t, func() [2]float64 {
			f, e := FrExp(x)
			return [2]float64{f, float64(e)}
		})
		if math.Float64bits(cf[0]) != math.Float64bits(rf[0]) && !(math.IsNaN(cf[0]) && math.IsNaN(rf[0])) || cf[1] != rf[1] {
			t.Errorf("FrExp(%v): const %v, runtime %v", x, cf, rf)
		}

		cm, rm := bothPaths(t, func() [2]float64 {
			i, f := Modf(x)
			return [2]float64{i, f}
		})
		for k := range cm {
			if special, ok := sameClass(cm[k], rm[k]); (special && !ok) || (!special && cm[k] != rm[k]) {
				t.Errorf("Modf(%v): const %v, runtime %v", x, cm, rm)
			}
		}
	}

	for _, e := range []int{-1080, -1074, -1050, -1022, -1, 0, 1, 52, 1023, 1024, 2000} {
		for _, f := range []float64{0.5, 0.75, -0.999, 1, 3} {
			c, r := bothPaths(t, func() float64 { return LdExp(f, e) })
			if c != r {
				t.Errorf("LdExp(%v, %d): const %v, runtime %v", f, e, c, r)
			}
		}
	}
}

func TestDomainEdges(t *testing.T) {
	inf, nan := math.Inf(1), math.NaN()
	for _, path := range []EvalPath{EvalConst, EvalRuntime} {
		t.Run(path.String(), func(t *testing.T) {
			usePath(t, path)

			nanCases := []struct {
				name string
				got  float64
			}{
				{"ACosH(0.5)", ACosH(0.5)},
				{"ACosH(-Inf)", ACosH(-inf)},
				{"ASin(2)", ASin(2.0)},
				{"ASin(+Inf)", ASin(inf)},
				{"ASin(-Inf)", ASin(-inf)},
				{"ASin(NaN)", ASin(nan)},
				{"ATan(NaN)", ATan(nan)},
				{"ATan(+Inf)", ATan(inf)},
				{"ATan(-Inf)", ATan(-inf)},
				{"Sqrt(-1)", Sqrt(-1.0)},
				{"Log2(-1)", Log2(-1.0)},
				{"Log(-1)", Log(-1.0)},
				{"ATanH(2)", ATanH(2.0)},
				{"Sin(Inf)", Sin(inf)},
				{"Cos(-Inf)", Cos(-inf)},
			}
			for _, c := range nanCases {
				if !math.IsNaN(c.got) {
					t.Errorf("%s = %v, want NaN", c.name, c.got)
				}
			}

			if got := Sqrt(inf); got != inf {
				t.Errorf("Sqrt(+Inf) = %v, want +Inf", got)
			}
			if got := Sqrt(math.Copysign(0, -1)); got != 0 || !math.Signbit(got) {
				t.Errorf("Sqrt(-0) = %v, want -0", got)
			}
			if got := Log2(0.0); !math.IsInf(got, 1) {
				t.Errorf("Log2(0) = %v, want +Inf", got)
			}
			if got := Log2(math.Copysign(0, -1)); !math.IsInf(got, 1) {
				t.Errorf("Log2(-0) = %v, want +Inf", got)
			}
			if got := Log2(float32(0)); !math.IsInf(float64(got), 1) {
				t.Errorf("Log2[float32](0) = %v, want +Inf", got)
			}
			if got := ATanH(1.0); !math.IsInf(got, 1) {
				t.Errorf("ATanH(1) = %v, want +Inf", got)
			}
			if got := ATan(float32(inf)); !math.IsNaN(float64(got)) {
				t.Errorf("ATan[float32](+Inf) = %v, want NaN", got)
			}
			if got := ATan2(1.0, 0.0); got != math.Pi/2 {
				t.Errorf("ATan2(1, 0) = %v, want π/2", got)
			}

			for _, x := range []float64{0, inf, -inf, nan} {
				f, e := FrExp(x)
				if e != 0 || !(f == x || math.IsNaN(x) && math.IsNaN(f)) {
					t.Errorf("FrExp(%v) = (%v, %d), want (%v, 0)", x, f, e, x)
				}
			}
			if f, e := FrExp(8.0); f != 0.5 || e != 4 {
				t.Errorf("FrExp(8) = (%v, %d), want (0.5, 4)", f, e)
			}
			if i, f := Modf(inf); i != inf || !math.IsNaN(f) {
				t.Errorf("Modf(+Inf) = (%v, %v), want (+Inf, NaN)", i, f)
			}
			if i, f := Modf(-3.25); i != -3 || f != -0.25 {
				t.Errorf("Modf(-3.25) = (%v, %v), want (-3, -0.25)", i, f)
			}
			if got := LdExp(1.0, -1074); got != math.SmallestNonzeroFloat64 {
				t.Errorf("LdExp(1, -1074) = %v, want %v", got, math.SmallestNonzeroFloat64)
			}

			rounding := []struct {
				x, round, even float64
			}{
				{2.5, 3, 2},
				{3.5, 4, 4},
				{-2.5, -3, -2},
				{0.49999999999999994, 0, 0},
				{1e300, 1e300, 1e300},
			}
			for _, r := range rounding {
				if got := Round(r.x); got != r.round {
					t.Errorf("Round(%v) = %v, want %v", r.x, got, r.round)
				}
				if got := RoundEven(r.x); got != r.even {
					t.Errorf("RoundEven(%v) = %v, want %v", r.x, got, r.even)
				}
			}
		})
	}
}

func TestExtremeArguments(t *testing.T) {
	// acos(1-h) = 2·asin(√(h/2)); the series to s⁵ is exact to double
	// precision for s near 7e-4.
	s := math.Sqrt2 * 0x1p-11
	acosNearOne := 2 * (s + s*s*s/6 + 3*s*s*s*s*s/40)

	for _, path := range []EvalPath{EvalConst, EvalRuntime} {
		t.Run(path.String(), func(t *testing.T) {
			usePath(t, path)

			identity := []struct {
				name string
				got  float64
				want float64
			}{
				{"ATan(1e-310)", ATan(1e-310), 1e-310},
				{"ATan(-5e-324)", ATan(-math.SmallestNonzeroFloat64), -math.SmallestNonzeroFloat64},
				{"ASin(-1e-310)", ASin(-1e-310), -1e-310},
				{"ASin(5e-324)", ASin(math.SmallestNonzeroFloat64), math.SmallestNonzeroFloat64},
				{"ASin(-0)", ASin(math.Copysign(0, -1)), math.Copysign(0, -1)},
				{"ACos(1)", ACos(1.0), 0},
				{"ACos(-1)", ACos(-1.0), math.Pi},
			}
			for _, c := range identity {
				if c.got != c.want || math.Signbit(c.got) != math.Signbit(c.want) {
					t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
				}
			}

			near := []struct {
				name      string
				got, want float64
				tol       float64
			}{
				{"Log(1e-310)", Log(1e-310), -713.8013788281542, 1e-15},
				{"Log(5e-324)", Log(math.SmallestNonzeroFloat64), -1074 * math.Ln2, 1e-15},
				{"Log(0x1p-1030)", Log(0x1p-1030), -1030 * math.Ln2, 1e-15},
				{"Exp(709.5)", Exp(709.5), 1.3549863193146328e+308, 1e-13},
				{"SinH(710)/Exp(709.5)", SinH(710.0) / Exp(709.5), math.Sqrt(math.E) / 2, 1e-13},
				{"CosH(-710)/Exp(709.5)", CosH(-710.0) / Exp(709.5), math.Sqrt(math.E) / 2, 1e-13},
				{"SinH(-709.9)/SinH(709.9)", SinH(-709.9) / SinH(709.9), -1, 0},
				{"ACos(1-2^-20)", ACos(1 - 0x1p-20), acosNearOne, 1e-14},
				{"ASin(1-2^-20)", ASin(1 - 0x1p-20), math.Pi/2 - acosNearOne, 1e-15},
			}
			for _, c := range near {
				if math.IsInf(c.got, 0) || math.IsNaN(c.got) || math.Abs(c.got-c.want) > c.tol*math.Abs(c.want) {
					t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
				}
			}

			if got := Exp(-740.0); got == 0 || got > 1e-320 {
				t.Errorf("Exp(-740) = %v, want a subnormal", got)
			}
			if got := Exp(710.0); !math.IsInf(got, 1) {
				t.Errorf("Exp(710) = %v, want +Inf", got)
			}
			if got := CosH(711.0); !math.IsInf(got, 1) {
				t.Errorf("CosH(711) = %v, want +Inf", got)
			}
		})
	}

	// Near a pole the two paths may differ by the derivative of tan times
	// an ulp of the reduced argument, never more.
	for _, x := range []float64{1.66e69, math.Pi / 2, 3 * math.Pi / 2, 1e22} {
		c, r := bothPaths(t, func() float64 { return Tan(x) })
		if math.Signbit(c) != math.Signbit(r) || !within(c, r, Tolerance("Tan"), floorFor("Tan", r)) {
			t.Errorf("Tan(%v): const %v, runtime %v", x, c, r)
		}
	}
}

func TestFma(t *testing.T) {
	usePath(t, EvalConst)

	// (1+2^-30)(1-2^-30) - 1 = -2^-60 exactly; an unfused multiply-add
	// rounds the product to 1 first and returns 0.
	a, b := 1+0x1p-30, 1-0x1p-30
	if got, want := Fma(a, b, -1), math.FMA(a, b, -1); got != want || got != -0x1p-60 {
		t.Errorf("Fma(%v, %v, -1) = %v, want %v", a, b, got, want)
	}

	cases := [][3]float64{
		{2, 3, 4},
		{1e308, 10, -1e308},
		{1e-200, 1e-200, 0},
		{-1e-200, 1e-200, 0},
		{0.1, 0.2, 0.3},
		{math.Inf(1), 0, 1},
		{math.Inf(1), 1, math.Inf(-1)},
		{1, 1, math.Inf(-1)},
		{math.MaxFloat64, 2, -math.MaxFloat64},
	}
	for _, c := range cases {
		got, want := Fma(c[0], c[1], c[2]), math.FMA(c[0], c[1], c[2])
		if special, ok := sameClass(got, want); (special && !ok) || (!special && got != want) {
			t.Errorf("Fma(%v, %v, %v) = %v, want %v", c[0], c[1], c[2], got, want)
		}
	}

	usePath(t, EvalRuntime)
	got := Fma(a, b, -1)
	if HasFMA() && got != -0x1p-60 {
		t.Errorf("runtime Fma with hardware FMA = %v, want %v", got, -0x1p-60)
	}
	if math.Abs(got-(-0x1p-60)) > Tolerance("Fma") {
		t.Errorf("runtime Fma = %v, outside tolerance", got)
	}
}

func TestInverseSqrt(t *testing.T) {
	for _, x := range []float64{1, 4, 0.25, 2} {
		if got, want := InverseSqrt(x), 1/math.Sqrt(x); got != want {
			t.Errorf("InverseSqrt(%v) = %v, want %v", x, got, want)
		}
	}
	if got := InverseSqrt(0.0); !math.IsInf(got, 1) {
		t.Errorf("InverseSqrt(0) = %v, want +Inf", got)
	}
}

func TestTolerance(t *testing.T) {
	tests := []struct {
		name string
		want float64
	}{
		{"Sqrt", 0},
		{"Floor", 0},
		{"Sin", 1e-13},
		{"Pow", 1e-12},
		{"NoSuchFunc", -1},
	}
	for _, tt := range tests {
		if got := Tolerance(tt.name); got != tt.want {
			t.Errorf("Tolerance(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// Named scalar types work with every function.
type meters float32

func TestNamedFloatType(t *testing.T) {
	if got := Sqrt(meters(16)); got != 4 {
		t.Errorf("Sqrt(meters(16)) = %v, want 4", got)
	}
	if got := Epsilon[meters](); got != 0x1p-23 {
		t.Errorf("Epsilon[meters]() = %v, want 2^-23", got)
	}
}
